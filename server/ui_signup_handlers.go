package server

import (
	"net/http"

	"github.com/jrsteele09/go-job-tracker/auth"
	"github.com/jrsteele09/go-job-tracker/internal/errors"
	"github.com/jrsteele09/go-job-tracker/internal/validation"
	"github.com/rs/zerolog/hlog"
)

const duplicateSignupMessage = "User already exists. Try a different username or email."

// SignupGetHandler renders the registration page
func (s *Server) SignupGetHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("register.html")

	return func(w http.ResponseWriter, r *http.Request) {
		renderPage(w, r, tmpl, http.StatusOK, s.pageData("Register"))
	}
}

// SignupPostHandler handles registration form submission
func (s *Server) SignupPostHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("register.html")

	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}
		req := auth.RegisterRequest{
			Username: r.FormValue("username"),
			Email:    r.FormValue("email"),
			Password: r.FormValue("password"),
		}

		_, err := s.auth.Register(r.Context(), req)
		if err == nil {
			redirectSuccess(w, r, RouteLogin)
			return
		}

		data := s.pageData("Register")
		data.Form["username"] = req.Username
		data.Form["email"] = req.Email
		status := http.StatusOK
		switch {
		case errors.Is(err, errors.ErrDuplicateRegistration):
			data.Error = duplicateSignupMessage
		case errors.Is(err, errors.ErrValidation):
			data.Error = validation.Message(err)
			status = http.StatusBadRequest
		default:
			hlog.FromRequest(r).Error().Err(err).Msg("registration failed")
			data.Error = "Registration failed. Please try again."
			status = http.StatusInternalServerError
		}
		renderPage(w, r, tmpl, status, data)
	}
}
