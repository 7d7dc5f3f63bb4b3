package server

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/jrsteele09/go-job-tracker/auth"
	"github.com/jrsteele09/go-job-tracker/internal/errors"
	"github.com/jrsteele09/go-job-tracker/jobs"
)

const maxBodyBytes = 1 << 20

// TokenResponse is returned by a successful API login
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(v); err != nil {
		return fmt.Errorf("%w: invalid JSON body", errors.ErrValidation)
	}
	return nil
}

func isJSONRequest(r *http.Request) bool {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return mediaType == contentTypeJSON
}

func (s *Server) APIRegisterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req auth.RegisterRequest
		if err := decodeJSON(r, &req); err != nil {
			writeAPIError(w, r, err)
			return
		}
		u, err := s.auth.Register(r.Context(), req)
		if err != nil {
			writeAPIError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, u)
	}
}

// APILoginHandler accepts JSON or form-encoded credentials. The token is returned in the body and
// also set as the session cookie.
func (s *Server) APILoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req auth.LoginRequest
		if isJSONRequest(r) {
			if err := decodeJSON(r, &req); err != nil {
				writeAPIError(w, r, err)
				return
			}
		} else {
			if err := r.ParseForm(); err != nil {
				writeDetail(w, http.StatusBadRequest, "Invalid form data")
				return
			}
			req.Username = r.FormValue("username")
			req.Password = r.FormValue("password")
		}

		tok, _, err := s.auth.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			writeAPIError(w, r, err)
			return
		}
		s.setTokenCookie(w, r, tok, s.auth.CookieMaxAge())
		writeJSON(w, http.StatusOK, TokenResponse{AccessToken: tok, TokenType: "bearer"})
	}
}

func (s *Server) MeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := requestUser(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, u)
	}
}

func (s *Server) APIListJobsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := requestUser(w, r)
		if !ok {
			return
		}
		list, err := s.jobs.List(r.Context(), u.ID, r.URL.Query().Get("status"))
		if err != nil {
			writeAPIError(w, r, err)
			return
		}
		if list == nil {
			list = []*jobs.Job{}
		}
		writeJSON(w, http.StatusOK, list)
	}
}

func (s *Server) APICreateJobHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := requestUser(w, r)
		if !ok {
			return
		}
		var in jobs.Input
		if err := decodeJSON(r, &in); err != nil {
			writeAPIError(w, r, err)
			return
		}
		job, err := s.jobs.Create(r.Context(), u.ID, in)
		if err != nil {
			writeAPIError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, job)
	}
}

func (s *Server) APIGetJobHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := requestUser(w, r)
		if !ok {
			return
		}
		id, err := jobIDParam(r)
		if err != nil {
			writeAPIError(w, r, err)
			return
		}
		job, err := s.jobs.Get(r.Context(), u.ID, id)
		if err != nil {
			writeAPIError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, job)
	}
}

// APIUpdateJobHandler serves PUT and PATCH. Both are partial: absent fields are left unchanged.
func (s *Server) APIUpdateJobHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := requestUser(w, r)
		if !ok {
			return
		}
		id, err := jobIDParam(r)
		if err != nil {
			writeAPIError(w, r, err)
			return
		}
		var patch jobs.Patch
		if err := decodeJSON(r, &patch); err != nil {
			writeAPIError(w, r, err)
			return
		}
		job, err := s.jobs.Update(r.Context(), u.ID, id, patch)
		if err != nil {
			writeAPIError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, job)
	}
}

func (s *Server) APIDeleteJobHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := requestUser(w, r)
		if !ok {
			return
		}
		id, err := jobIDParam(r)
		if err != nil {
			writeAPIError(w, r, err)
			return
		}
		if err := s.jobs.Delete(r.Context(), u.ID, id); err != nil {
			writeAPIError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
