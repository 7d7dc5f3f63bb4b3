// Package jobs stores a user's job applications. Every operation is keyed by the owning user and
// ownership is checked in exactly one place, Service.owned.
package jobs

import (
	"sort"
	"strings"

	"github.com/jrsteele09/go-job-tracker/internal/utils"
)

type Status string

const (
	StatusApplied       Status = "Applied"
	StatusInterviewing  Status = "Interviewing"
	StatusOfferReceived Status = "Offer Received"
	StatusRejected      Status = "Rejected"
	StatusSaved         Status = "Saved"
)

// Statuses lists the known statuses in display order
var Statuses = []Status{StatusApplied, StatusInterviewing, StatusOfferReceived, StatusRejected, StatusSaved}

// ParseStatus matches s case-insensitively against the known statuses.
func ParseStatus(s string) (Status, bool) {
	s = strings.TrimSpace(s)
	for _, st := range Statuses {
		if strings.EqualFold(string(st), s) {
			return st, true
		}
	}
	return Status(s), false
}

// Job is one application. Optional fields are nil when unset.
type Job struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"user_id"`
	Title       string  `json:"title" validate:"required,max=255"`
	Company     string  `json:"company" validate:"required,max=255"`
	Location    *string `json:"location" validate:"omitempty,max=255"`
	Link        *string `json:"link" validate:"omitempty,http_url"`
	Status      Status  `json:"status" validate:"oneof=Applied Interviewing 'Offer Received' Rejected Saved"`
	AppliedDate Date    `json:"applied_date"`
	Notes       *string `json:"notes"`
}

// OwnedBy is the row ownership predicate.
func (j *Job) OwnedBy(userID int64) bool {
	return j != nil && j.UserID == userID
}

func (j *Job) Clone() *Job {
	c := *j
	c.Location = utils.Clone(j.Location)
	c.Link = utils.Clone(j.Link)
	c.Notes = utils.Clone(j.Notes)
	return &c
}

// Input is the payload for creating a job. Status defaults to Applied and AppliedDate to today.
type Input struct {
	Title       string  `json:"title"`
	Company     string  `json:"company"`
	Location    *string `json:"location"`
	Link        *string `json:"link"`
	Status      string  `json:"status"`
	AppliedDate *Date   `json:"applied_date"`
	Notes       *string `json:"notes"`
}

func (in Input) toJob(ownerID int64) *Job {
	j := &Job{
		UserID:   ownerID,
		Title:    strings.TrimSpace(in.Title),
		Company:  strings.TrimSpace(in.Company),
		Location: optional(in.Location),
		Link:     optional(in.Link),
		Status:   StatusApplied,
		Notes:    optional(in.Notes),
	}
	if strings.TrimSpace(in.Status) != "" {
		j.Status, _ = ParseStatus(in.Status)
	}
	if in.AppliedDate != nil && !in.AppliedDate.IsZero() {
		j.AppliedDate = *in.AppliedDate
	} else {
		j.AppliedDate = Today()
	}
	return j
}

// Patch is a partial update. Nil fields are left unchanged; an empty string clears an optional field.
type Patch struct {
	Title       *string `json:"title"`
	Company     *string `json:"company"`
	Location    *string `json:"location"`
	Link        *string `json:"link"`
	Status      *string `json:"status"`
	AppliedDate *Date   `json:"applied_date"`
	Notes       *string `json:"notes"`
}

func (p Patch) apply(j *Job) {
	if p.Title != nil {
		j.Title = strings.TrimSpace(*p.Title)
	}
	if p.Company != nil {
		j.Company = strings.TrimSpace(*p.Company)
	}
	if p.Location != nil {
		j.Location = optional(p.Location)
	}
	if p.Link != nil {
		j.Link = optional(p.Link)
	}
	if p.Status != nil {
		j.Status, _ = ParseStatus(*p.Status)
	}
	if p.AppliedDate != nil && !p.AppliedDate.IsZero() {
		j.AppliedDate = *p.AppliedDate
	}
	if p.Notes != nil {
		j.Notes = optional(p.Notes)
	}
}

// optional trims s and maps blank to nil
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// Deref returns the value of an optional field, or "" when unset.
func Deref(s *string) string {
	return utils.Value(s)
}

// Summary counts a user's jobs per known status.
type Summary struct {
	Total  int
	Counts map[Status]int
}

type SummaryEntry struct {
	Label string
	Count int
}

// Entries returns Total followed by each known status, in display order.
func (s Summary) Entries() []SummaryEntry {
	entries := []SummaryEntry{{Label: "Total", Count: s.Total}}
	for _, st := range Statuses {
		entries = append(entries, SummaryEntry{Label: string(st), Count: s.Counts[st]})
	}
	return entries
}

func Summarise(jobs []*Job) Summary {
	s := Summary{Total: len(jobs), Counts: make(map[Status]int, len(Statuses))}
	for _, st := range Statuses {
		s.Counts[st] = 0
	}
	for _, j := range jobs {
		if _, known := s.Counts[j.Status]; known {
			s.Counts[j.Status]++
		}
	}
	return s
}

// FilterByStatus keeps jobs whose status matches status case-insensitively. An empty status or
// "all" keeps everything.
func FilterByStatus(jobs []*Job, status string) []*Job {
	status = strings.TrimSpace(status)
	if status == "" || strings.EqualFold(status, "all") {
		return jobs
	}
	filtered := make([]*Job, 0, len(jobs))
	for _, j := range jobs {
		if strings.EqualFold(string(j.Status), status) {
			filtered = append(filtered, j)
		}
	}
	return filtered
}

// SortNewestFirst orders by applied date then id, both descending.
func SortNewestFirst(jobs []*Job) {
	sort.Slice(jobs, func(a, b int) bool {
		da, db := jobs[a].AppliedDate, jobs[b].AppliedDate
		if !da.Equal(db.Time) {
			return da.After(db.Time)
		}
		return jobs[a].ID > jobs[b].ID
	})
}
