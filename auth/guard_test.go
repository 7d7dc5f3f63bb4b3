package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jrsteele09/go-job-tracker/auth"
	"github.com/jrsteele09/go-job-tracker/internal/errors"
	"github.com/jrsteele09/go-job-tracker/users"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	f := setupTestFixture(t)
	registered, valid := f.registerUser(t)
	expired, err := f.tokens.IssueWithTTL(testUsername, 0)
	require.NoError(t, err)
	ghost, err := f.tokens.Issue("ghost")
	require.NoError(t, err)

	t.Run("cookie", func(t *testing.T) {
		u, err := f.guard.Authenticate(withCookie(httptest.NewRequest("GET", "/", nil), valid))
		require.NoError(t, err)
		require.Equal(t, registered.ID, u.ID)
	})

	t.Run("header", func(t *testing.T) {
		u, err := f.guard.Authenticate(withBearer(httptest.NewRequest("GET", "/", nil), valid))
		require.NoError(t, err)
		require.Equal(t, registered.ID, u.ID)
	})

	t.Run("header takes precedence", func(t *testing.T) {
		r := withBearer(withCookie(httptest.NewRequest("GET", "/", nil), valid), "junk")
		_, err := f.guard.Authenticate(r)
		require.ErrorIs(t, err, errors.ErrUnauthenticated)
	})

	for name, r := range map[string]*http.Request{
		"missing":      httptest.NewRequest("GET", "/", nil),
		"malformed":    withCookie(httptest.NewRequest("GET", "/", nil), "junk"),
		"expired":      withCookie(httptest.NewRequest("GET", "/", nil), expired),
		"unknown user": withBearer(httptest.NewRequest("GET", "/", nil), ghost),
	} {
		t.Run(name, func(t *testing.T) {
			u, err := f.guard.Authenticate(r)
			require.ErrorIs(t, err, errors.ErrUnauthenticated)
			require.Nil(t, u)
		})
	}
}

func TestRequire(t *testing.T) {
	f := setupTestFixture(t)
	registered, valid := f.registerUser(t)

	var seen *users.User
	h := f.guard.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = auth.CurrentUser(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := serve(h, withCookie(httptest.NewRequest("GET", "/api/me", nil), valid))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	require.Equal(t, registered.ID, seen.ID)

	rec = serve(h, httptest.NewRequest("GET", "/api/me", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
	require.JSONEq(t, `{"detail":"Could not validate credentials"}`, rec.Body.String())

	broken := auth.NewGuard(f.tokens, auth.NewResolver(brokenRepo{}))
	rec = serve(broken.Require(okHandler()), withCookie(httptest.NewRequest("GET", "/api/me", nil), valid))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
