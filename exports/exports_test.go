package exports_test

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jrsteele09/go-job-tracker/exports"
	"github.com/jrsteele09/go-job-tracker/jobs"
	"github.com/stretchr/testify/require"
)

func sampleJobs() []*jobs.Job {
	loc := "Remote"
	link := "https://acme.example/jobs/1"
	notes := "Recruiter said \"call back\", maybe Friday"
	return []*jobs.Job{
		{
			ID: 1, Title: "Backend Intern", Company: "Acme", Location: &loc, Link: &link,
			Status: jobs.StatusInterviewing, AppliedDate: jobs.NewDate(time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)), Notes: &notes,
		},
		{
			ID: 2, Title: "SRE", Company: "Initech", Status: jobs.StatusApplied,
			AppliedDate: jobs.NewDate(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)),
		},
	}
}

func TestCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, exports.CSV(&buf, sampleJobs()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, []string{"Title", "Company", "Location", "Link", "Status", "Applied Date", "Notes"}, records[0])
	require.Equal(t, []string{
		"Backend Intern", "Acme", "Remote", "https://acme.example/jobs/1", "Interviewing", "2024-05-06",
		"Recruiter said \"call back\", maybe Friday",
	}, records[1])
	require.Equal(t, []string{"SRE", "Initech", "", "", "Applied", "2024-04-01", ""}, records[2])
}

func TestCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, exports.CSV(&buf, nil))
	require.Equal(t, "Title,Company,Location,Link,Status,Applied Date,Notes\n", buf.String())
}

func TestPDF(t *testing.T) {
	t.Run("small report", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, exports.PDF(&buf, sampleJobs()))
		require.True(t, strings.HasPrefix(buf.String(), "%PDF-"))
	})

	t.Run("empty report", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, exports.PDF(&buf, nil))
		require.True(t, strings.HasPrefix(buf.String(), "%PDF-"))
	})

	t.Run("spans pages", func(t *testing.T) {
		long := strings.Repeat("follow up with the hiring manager ", 6)
		list := make([]*jobs.Job, 0, 120)
		for i := 0; i < 120; i++ {
			n := long
			list = append(list, &jobs.Job{
				ID: int64(i), Title: fmt.Sprintf("Role %d", i), Company: "Café Ünïcode",
				Status: jobs.StatusSaved, AppliedDate: jobs.Today(), Notes: &n,
			})
		}
		var small, big bytes.Buffer
		require.NoError(t, exports.PDF(&small, list[:1]))
		require.NoError(t, exports.PDF(&big, list))
		require.Greater(t, big.Len(), small.Len())
	})
}
