package auth

import (
	"context"
	"net/http"

	"github.com/jrsteele09/go-job-tracker/internal/errors"
	"github.com/jrsteele09/go-job-tracker/token"
	"github.com/jrsteele09/go-job-tracker/users"
	"github.com/rs/zerolog/hlog"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// ContextKeyUser stores the authenticated *users.User for one request
const ContextKeyUser ContextKey = "user"

// Guard is the per-route authorization boundary. It re-verifies the token on every request and
// resolves it to a user, failing with a structured 401 rather than a redirect.
type Guard struct {
	tokens   *token.Service
	resolver *Resolver
}

func NewGuard(tokens *token.Service, resolver *Resolver) *Guard {
	return &Guard{tokens: tokens, resolver: resolver}
}

// Authenticate resolves the request's user. A missing or invalid token, or a token for an unknown
// user, all yield errors.ErrUnauthenticated. Repository failures are returned unchanged.
func (g *Guard) Authenticate(r *http.Request) (*users.User, error) {
	raw, source := ExtractToken(r)
	if source == SourceNone {
		return nil, errors.ErrUnauthenticated
	}
	claims, ok := g.tokens.Verify(raw)
	if !ok {
		return nil, errors.ErrUnauthenticated
	}
	u, err := g.resolver.Resolve(r.Context(), claims)
	if err != nil {
		if errors.Is(err, errors.ErrUserNotFound) {
			return nil, errors.ErrUnauthenticated
		}
		return nil, err
	}
	return u, nil
}

// Require wraps next so it only runs with an authenticated user in the request context.
func (g *Guard) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, err := g.Authenticate(r)
		if err != nil {
			if errors.Is(err, errors.ErrUnauthenticated) {
				WriteUnauthorized(w)
				return
			}
			hlog.FromRequest(r).Error().Err(err).Msg("guard: resolving user")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
	})
}

func WithUser(ctx context.Context, u *users.User) context.Context {
	return context.WithValue(ctx, ContextKeyUser, u)
}

// CurrentUser returns the user stored by Require.
func CurrentUser(ctx context.Context) (*users.User, bool) {
	u, ok := ctx.Value(ContextKeyUser).(*users.User)
	return u, ok && u != nil
}
