package auth

import (
	"context"

	"github.com/jrsteele09/go-job-tracker/internal/errors"
	"github.com/jrsteele09/go-job-tracker/token"
	"github.com/jrsteele09/go-job-tracker/users"
)

// Resolver maps a verified token's subject to the stored user. Every call is a fresh lookup.
type Resolver struct {
	users users.UserRepo
}

func NewResolver(repo users.UserRepo) *Resolver {
	return &Resolver{users: repo}
}

// Resolve returns errors.ErrUserNotFound when the subject is empty or no user has that exact username.
// Other repository failures are returned wrapped.
func (r *Resolver) Resolve(ctx context.Context, claims *token.Claims) (*users.User, error) {
	if claims == nil || claims.Subject == "" {
		return nil, errors.ErrUserNotFound
	}
	u, err := r.users.GetByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, errors.ErrUserNotFound) {
			return nil, errors.ErrUserNotFound
		}
		return nil, errors.Wrapf(err, "resolve %q", claims.Subject)
	}
	return u, nil
}
