package server

import (
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/jrsteele09/go-job-tracker/internal/errors"
	"github.com/jrsteele09/go-job-tracker/internal/utils"
	"github.com/jrsteele09/go-job-tracker/internal/validation"
	"github.com/jrsteele09/go-job-tracker/jobs"
	"github.com/rs/zerolog/hlog"
)

// JobFormData backs the add and edit forms
type JobFormData struct {
	ID       int64
	Action   string
	Statuses []jobs.Status
}

var jobFormFields = []string{"title", "company", "location", "link", "status", "applied_date", "notes"}

func (s *Server) AddJobGetHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("job_form.html")

	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := requestUser(w, r)
		if !ok {
			return
		}
		data := s.jobFormPage("Add Job", u.Username, 0)
		data.Form["status"] = string(jobs.StatusApplied)
		data.Form["applied_date"] = jobs.Today().String()
		renderPage(w, r, tmpl, http.StatusOK, data)
	}
}

func (s *Server) AddJobPostHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("job_form.html")

	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := requestUser(w, r)
		if !ok {
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		in, err := jobInputFromForm(r)
		if err == nil {
			_, err = s.jobs.Create(r.Context(), u.ID, in)
		}
		if err != nil {
			s.renderJobFormError(w, r, tmpl, s.jobFormPage("Add Job", u.Username, 0), err)
			return
		}
		redirectSuccess(w, r, RouteDashboard)
	}
}

// EditJobGetHandler shows the edit form. A job the user does not own is treated as missing and
// sends them back to the dashboard.
func (s *Server) EditJobGetHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("job_form.html")

	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := requestUser(w, r)
		if !ok {
			return
		}
		id, err := jobIDParam(r)
		if err != nil {
			redirectSuccess(w, r, RouteDashboard)
			return
		}
		job, err := s.jobs.Get(r.Context(), u.ID, id)
		if err != nil {
			s.redirectJobError(w, r, err)
			return
		}

		data := s.jobFormPage("Edit Job", u.Username, id)
		data.Form = jobFormValues(job)
		renderPage(w, r, tmpl, http.StatusOK, data)
	}
}

func (s *Server) EditJobPostHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("job_form.html")

	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := requestUser(w, r)
		if !ok {
			return
		}
		id, err := jobIDParam(r)
		if err != nil {
			redirectSuccess(w, r, RouteDashboard)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		patch, err := jobPatchFromForm(r)
		if err == nil {
			_, err = s.jobs.Update(r.Context(), u.ID, id, patch)
		}
		if err != nil {
			if errors.Is(err, errors.ErrValidation) {
				s.renderJobFormError(w, r, tmpl, s.jobFormPage("Edit Job", u.Username, id), err)
				return
			}
			s.redirectJobError(w, r, err)
			return
		}
		redirectSuccess(w, r, RouteDashboard)
	}
}

func (s *Server) DeleteJobPostHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := requestUser(w, r)
		if !ok {
			return
		}
		id, err := jobIDParam(r)
		if err != nil {
			redirectSuccess(w, r, RouteDashboard)
			return
		}
		if err := s.jobs.Delete(r.Context(), u.ID, id); err != nil {
			s.redirectJobError(w, r, err)
			return
		}
		redirectSuccess(w, r, RouteDashboard)
	}
}

func (s *Server) jobFormPage(title, username string, id int64) PageData {
	data := s.pageData(title)
	data.Username = username
	action := RouteAddJob
	if id != 0 {
		action = editJobPathPrefix + strconv.FormatInt(id, 10)
	}
	data.Data = JobFormData{ID: id, Action: action, Statuses: jobs.Statuses}
	return data
}

func (s *Server) renderJobFormError(w http.ResponseWriter, r *http.Request, tmpl *template.Template, data PageData, err error) {
	if !errors.Is(err, errors.ErrValidation) {
		hlog.FromRequest(r).Error().Err(err).Msg("saving job")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	for _, field := range jobFormFields {
		data.Form[field] = r.FormValue(field)
	}
	data.Error = validation.Message(err)
	renderPage(w, r, tmpl, http.StatusBadRequest, data)
}

// redirectJobError sends missing and foreign jobs back to the dashboard
func (s *Server) redirectJobError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, errors.ErrNotFound) {
		redirectSuccess(w, r, RouteDashboard)
		return
	}
	hlog.FromRequest(r).Error().Err(err).Msg("job request failed")
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func jobIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid job id", errors.ErrValidation)
	}
	return id, nil
}

func formDate(r *http.Request) (*jobs.Date, error) {
	raw := strings.TrimSpace(r.FormValue("applied_date"))
	if raw == "" {
		return nil, nil
	}
	d, err := jobs.ParseDate(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: applied_date must be a date (YYYY-MM-DD)", errors.ErrValidation)
	}
	return &d, nil
}

func formString(r *http.Request, field string) *string {
	return utils.Ptr(r.FormValue(field))
}

func jobInputFromForm(r *http.Request) (jobs.Input, error) {
	date, err := formDate(r)
	if err != nil {
		return jobs.Input{}, err
	}
	return jobs.Input{
		Title:       r.FormValue("title"),
		Company:     r.FormValue("company"),
		Location:    formString(r, "location"),
		Link:        formString(r, "link"),
		Status:      r.FormValue("status"),
		AppliedDate: date,
		Notes:       formString(r, "notes"),
	}, nil
}

// jobPatchFromForm replaces every submitted field. A blank status or date keeps the stored value.
func jobPatchFromForm(r *http.Request) (jobs.Patch, error) {
	date, err := formDate(r)
	if err != nil {
		return jobs.Patch{}, err
	}
	patch := jobs.Patch{
		Title:       formString(r, "title"),
		Company:     formString(r, "company"),
		Location:    formString(r, "location"),
		Link:        formString(r, "link"),
		AppliedDate: date,
		Notes:       formString(r, "notes"),
	}
	if status := strings.TrimSpace(r.FormValue("status")); status != "" {
		patch.Status = &status
	}
	return patch, nil
}

func jobFormValues(j *jobs.Job) map[string]string {
	return map[string]string{
		"title":        j.Title,
		"company":      j.Company,
		"location":     jobs.Deref(j.Location),
		"link":         jobs.Deref(j.Link),
		"status":       string(j.Status),
		"applied_date": j.AppliedDate.String(),
		"notes":        jobs.Deref(j.Notes),
	}
}
