package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jrsteele09/go-job-tracker/auth"
	"github.com/jrsteele09/go-job-tracker/token"
	"github.com/jrsteele09/go-job-tracker/users"
	fakeuserrepo "github.com/jrsteele09/go-job-tracker/users/repofake"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	secretStr        = "1234"
	testUsername     = "johndoe"
	testUserEmail    = "john@x.com"
	testUserPassword = "securepass"
)

// testFixture holds all test dependencies
type testFixture struct {
	userRepo   *fakeuserrepo.FakeUserRepo
	tokens     *token.Service
	service    *auth.Service
	resolver   *auth.Resolver
	guard      *auth.Guard
	gatekeeper *auth.Gatekeeper
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()

	ur := fakeuserrepo.NewFakeUserRepo()
	tokens := token.NewService(token.NewHMACSigner(secretStr), 30*time.Minute)
	resolver := auth.NewResolver(ur)

	return &testFixture{
		userRepo:   ur,
		tokens:     tokens,
		service:    auth.NewService(ur, users.NewCredentialStore(bcrypt.MinCost), tokens),
		resolver:   resolver,
		guard:      auth.NewGuard(tokens, resolver),
		gatekeeper: auth.NewGatekeeper(tokens, "/login"),
	}
}

// registerUser registers the default user and returns a token for it
func (f *testFixture) registerUser(t *testing.T) (*users.User, string) {
	t.Helper()
	u, err := f.service.Register(context.Background(), auth.RegisterRequest{
		Username: testUsername,
		Email:    testUserEmail,
		Password: testUserPassword,
	})
	require.NoError(t, err)
	tok, err := f.tokens.Issue(u.Username)
	require.NoError(t, err)
	return u, tok
}

func withCookie(r *http.Request, value string) *http.Request {
	r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: value})
	return r
}

func withBearer(r *http.Request, value string) *http.Request {
	r.Header.Set("Authorization", "Bearer "+value)
	return r
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func serve(h http.Handler, r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	return rec
}
