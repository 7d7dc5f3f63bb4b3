package server

import (
	"net/http"

	"github.com/jrsteele09/go-job-tracker/internal/errors"
	"github.com/rs/zerolog/hlog"
)

const invalidLoginMessage = "Invalid username or password"

// LoginPageHandler displays the login page (GET /login)
func (s *Server) LoginPageHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("login.html")

	return func(w http.ResponseWriter, r *http.Request) {
		data := s.pageData("Login")
		data.Form["username"] = r.URL.Query().Get("username")
		renderPage(w, r, tmpl, http.StatusOK, data)
	}
}

// LoginSubmissionHandler checks the form credentials, stores the token in the session cookie and
// sends the browser to the dashboard.
func (s *Server) LoginSubmissionHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("login.html")

	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}
		username := r.FormValue("username")
		password := r.FormValue("password")

		tok, _, err := s.auth.Login(r.Context(), username, password)
		if err != nil {
			if !errors.Is(err, errors.ErrInvalidCredentials) {
				hlog.FromRequest(r).Error().Err(err).Msg("login failed")
			}
			if isXHRRequest(r) {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": invalidLoginMessage})
				return
			}
			data := s.pageData("Login")
			data.Error = invalidLoginMessage
			data.Form["username"] = username
			renderPage(w, r, tmpl, http.StatusOK, data)
			return
		}

		s.setTokenCookie(w, r, tok, s.auth.CookieMaxAge())
		redirectSuccess(w, r, RouteDashboard)
	}
}

// LogoutHandler drops the session cookie. The token itself stays valid until it expires.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.clearTokenCookie(w, r)
		redirectSuccess(w, r, RouteIndex)
	}
}
