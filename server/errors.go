package server

import (
	"encoding/json"
	"net/http"

	"github.com/jrsteele09/go-job-tracker/auth"
	"github.com/jrsteele09/go-job-tracker/internal/errors"
	"github.com/jrsteele09/go-job-tracker/internal/validation"
	"github.com/rs/zerolog/hlog"
)

const (
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeJSON = "application/json"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

// writeAPIError maps the error taxonomy onto HTTP responses for JSON routes.
func writeAPIError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, errors.ErrValidation):
		writeDetail(w, http.StatusBadRequest, validation.Message(err))
	case errors.Is(err, errors.ErrDuplicateRegistration):
		writeDetail(w, http.StatusConflict, "Username or email already registered")
	case errors.Is(err, errors.ErrNotFound):
		writeDetail(w, http.StatusNotFound, "Not found")
	case errors.Is(err, errors.ErrInvalidCredentials):
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeDetail(w, http.StatusUnauthorized, "Incorrect username or password")
	case errors.Is(err, errors.ErrUnauthenticated):
		auth.WriteUnauthorized(w)
	case errors.Is(err, errors.ErrForbidden):
		writeDetail(w, http.StatusForbidden, "Forbidden")
	default:
		hlog.FromRequest(r).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
	}
}
