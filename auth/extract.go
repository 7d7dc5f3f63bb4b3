package auth

import (
	"net/http"
	"strings"
)

// CookieName is the cookie that carries the session token for browser clients
const CookieName = "access_token"

// TokenSource says where a token was found
type TokenSource int

const (
	SourceNone TokenSource = iota
	SourceHeader
	SourceCookie
)

// BearerToken returns the token from an "Authorization: Bearer <token>" header.
func BearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	tok := strings.TrimSpace(parts[1])
	return tok, tok != ""
}

// ExtractToken returns the request's token. A bearer header takes precedence over the cookie.
func ExtractToken(r *http.Request) (string, TokenSource) {
	if tok, ok := BearerToken(r); ok {
		return tok, SourceHeader
	}
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		return c.Value, SourceCookie
	}
	return "", SourceNone
}
