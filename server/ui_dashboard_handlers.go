package server

import (
	"bytes"
	"io"
	"net/http"

	"github.com/jrsteele09/go-job-tracker/charts"
	"github.com/jrsteele09/go-job-tracker/internal/errors"
	"github.com/jrsteele09/go-job-tracker/jobs"
	"github.com/rs/zerolog/hlog"
)

type DashboardData struct {
	Jobs     []*jobs.Job
	Summary  []jobs.SummaryEntry
	Statuses []jobs.Status
	Filter   string
	HasJobs  bool
}

// DashboardHandler lists the user's jobs, optionally filtered by ?status=, with a per-status summary
// of every job they own.
func (s *Server) DashboardHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("dashboard.html")

	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := requestUser(w, r)
		if !ok {
			return
		}
		all, err := s.jobs.List(r.Context(), u.ID, "")
		if err != nil {
			hlog.FromRequest(r).Error().Err(err).Msg("dashboard: listing jobs")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		filter := r.URL.Query().Get("status")
		data := s.pageData("Dashboard")
		data.Username = u.Username
		data.Data = DashboardData{
			Jobs:     jobs.FilterByStatus(all, filter),
			Summary:  jobs.Summarise(all).Entries(),
			Statuses: jobs.Statuses,
			Filter:   filter,
			HasJobs:  len(all) > 0,
		}
		renderPage(w, r, tmpl, http.StatusOK, data)
	}
}

func (s *Server) StatusChartHandler() http.HandlerFunc {
	return s.chartHandler(charts.StatusChart)
}

func (s *Server) TimelineChartHandler() http.HandlerFunc {
	return s.chartHandler(charts.TimeChart)
}

// chartHandler renders a PNG over all of the user's jobs. A user with no jobs gets a 404.
func (s *Server) chartHandler(render func(io.Writer, []*jobs.Job) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := requestUser(w, r)
		if !ok {
			return
		}
		list, err := s.jobs.List(r.Context(), u.ID, "")
		if err != nil {
			writeAPIError(w, r, err)
			return
		}

		var buf bytes.Buffer
		if err := render(&buf, list); err != nil {
			if errors.Is(err, charts.ErrNoData) {
				http.NotFound(w, r)
				return
			}
			writeAPIError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", charts.ContentType)
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(buf.Bytes())
	}
}
