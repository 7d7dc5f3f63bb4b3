package auth

import (
	"net/http"
	"strings"

	"github.com/jrsteele09/go-job-tracker/token"
	"github.com/rs/zerolog/hlog"
)

// Access is the classification the gatekeeper gives a request path
type Access int

const (
	Protected Access = iota
	Public
)

func (a Access) String() string {
	if a == Public {
		return "public"
	}
	return "protected"
}

var publicPaths = map[string]struct{}{
	"/":             {},
	"/login":        {},
	"/register":     {},
	"/signup":       {},
	"/ping":         {},
	"/api/login":    {},
	"/api/register": {},
}

const (
	staticRoot   = "/static"
	staticPrefix = staticRoot + "/"
)

// Classify reports whether path may be served without a token.
func Classify(path string) Access {
	if _, ok := publicPaths[path]; ok {
		return Public
	}
	if path == staticRoot || strings.HasPrefix(path, staticPrefix) {
		return Public
	}
	return Protected
}

// Gatekeeper is the coarse perimeter in front of every route. Browser requests without a valid
// cookie are redirected to the login page; requests presenting a bearer header get a 401 instead.
// It never attaches an identity to the request.
type Gatekeeper struct {
	tokens    *token.Service
	loginPath string
}

func NewGatekeeper(tokens *token.Service, loginPath string) *Gatekeeper {
	return &Gatekeeper{tokens: tokens, loginPath: loginPath}
}

// Middleware lets public paths through and otherwise requires a valid session cookie, redirecting
// to the login page when it is missing or invalid. A bearer header, when present, is checked instead
// of the cookie and answered with 401 rather than a redirect.
func (g *Gatekeeper) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if Classify(r.URL.Path) == Public {
			next.ServeHTTP(w, r)
			return
		}

		raw, source := ExtractToken(r)
		if source == SourceHeader {
			if _, ok := g.tokens.Verify(raw); !ok {
				hlog.FromRequest(r).Debug().Str("path", r.URL.Path).Msg("gatekeeper: rejected bearer token")
				WriteUnauthorized(w)
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		if source == SourceNone {
			http.Redirect(w, r, g.loginPath, http.StatusSeeOther)
			return
		}
		if _, ok := g.tokens.Verify(raw); !ok {
			hlog.FromRequest(r).Debug().Str("path", r.URL.Path).Msg("gatekeeper: rejected cookie")
			http.Redirect(w, r, g.loginPath, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
