package server

import (
	"bytes"
	"io"
	"net/http"
	"strconv"

	"github.com/jrsteele09/go-job-tracker/exports"
	"github.com/jrsteele09/go-job-tracker/jobs"
)

func (s *Server) ExportCSVHandler() http.HandlerFunc {
	return s.exportHandler(exports.CSV, exports.CSVFilename, exports.CSVContentType)
}

func (s *Server) ExportPDFHandler() http.HandlerFunc {
	return s.exportHandler(exports.PDF, exports.PDFFilename, exports.PDFContentType)
}

// exportHandler renders the user's jobs (honouring ?status=) into memory first so a failed render
// can still be reported with a proper status code.
func (s *Server) exportHandler(render func(io.Writer, []*jobs.Job) error, filename, contentType string) http.HandlerFunc {
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

		var buf bytes.Buffer
		if err := render(&buf, list); err != nil {
			writeAPIError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		_, _ = w.Write(buf.Bytes())
	}
}
