package server

import (
	"net/http"

	"github.com/jrsteele09/go-job-tracker/auth"
	"github.com/jrsteele09/go-job-tracker/users"
)

// RequireUser adapts the route guard to the per-route middleware chain. Handlers behind it can
// read the user with requestUser.
func (s *Server) RequireUser(next http.HandlerFunc) http.HandlerFunc {
	return s.guard.Require(next).ServeHTTP
}

// requestUser returns the user attached by RequireUser, writing a 401 when there is none.
func requestUser(w http.ResponseWriter, r *http.Request) (*users.User, bool) {
	u, ok := auth.CurrentUser(r.Context())
	if !ok {
		auth.WriteUnauthorized(w)
		return nil, false
	}
	return u, true
}
