// Package exports renders a user's jobs as downloadable CSV and PDF files.
package exports

import (
	"encoding/csv"
	"io"

	"github.com/jrsteele09/go-job-tracker/internal/errors"
	"github.com/jrsteele09/go-job-tracker/jobs"
)

const (
	CSVFilename    = "job_applications.csv"
	CSVContentType = "text/csv"
)

var csvHeader = []string{"Title", "Company", "Location", "Link", "Status", "Applied Date", "Notes"}

// CSV writes one header row followed by one row per job. Unset optional fields are empty.
func CSV(w io.Writer, list []*jobs.Job) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return errors.Wrapf(err, "csv header")
	}
	for _, j := range list {
		row := []string{
			j.Title,
			j.Company,
			jobs.Deref(j.Location),
			jobs.Deref(j.Link),
			string(j.Status),
			j.AppliedDate.String(),
			jobs.Deref(j.Notes),
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrapf(err, "csv row %d", j.ID)
		}
	}
	cw.Flush()
	return cw.Error()
}
