package jobs_test

import (
	"context"
	"testing"
	"time"

	"github.com/jrsteele09/go-job-tracker/internal/errors"
	"github.com/jrsteele09/go-job-tracker/jobs"
	fakejobrepo "github.com/jrsteele09/go-job-tracker/jobs/repofake"
	"github.com/stretchr/testify/require"
)

const (
	alice int64 = 1
	bob   int64 = 2
)

func strPtr(s string) *string { return &s }

func datePtr(y int, m time.Month, d int) *jobs.Date {
	dt := jobs.NewDate(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
	return &dt
}

func setupService(t *testing.T) *jobs.Service {
	t.Helper()
	return jobs.NewService(fakejobrepo.NewFakeJobRepo())
}

func TestCreate(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	t.Run("defaults", func(t *testing.T) {
		j, err := svc.Create(ctx, alice, jobs.Input{Title: " Backend Intern ", Company: "Acme"})
		require.NoError(t, err)
		require.NotZero(t, j.ID)
		require.Equal(t, alice, j.UserID)
		require.Equal(t, "Backend Intern", j.Title)
		require.Equal(t, jobs.StatusApplied, j.Status)
		require.Equal(t, jobs.Today(), j.AppliedDate)
		require.Nil(t, j.Location)
	})

	t.Run("status is matched case-insensitively", func(t *testing.T) {
		j, err := svc.Create(ctx, alice, jobs.Input{Title: "SRE", Company: "Acme", Status: "offer received"})
		require.NoError(t, err)
		require.Equal(t, jobs.StatusOfferReceived, j.Status)
	})

	t.Run("blank optionals become nil", func(t *testing.T) {
		j, err := svc.Create(ctx, alice, jobs.Input{Title: "SRE", Company: "Acme", Link: strPtr("  "), Notes: strPtr("")})
		require.NoError(t, err)
		require.Nil(t, j.Link)
		require.Nil(t, j.Notes)
	})

	t.Run("validation", func(t *testing.T) {
		bad := []jobs.Input{
			{Company: "Acme"},
			{Title: "SRE"},
			{Title: "SRE", Company: "Acme", Status: "Ghosted"},
			{Title: "SRE", Company: "Acme", Link: strPtr("not a url")},
			{Title: "SRE", Company: "Acme", Link: strPtr("ftp://example.com/job")},
		}
		for _, in := range bad {
			_, err := svc.Create(ctx, alice, in)
			require.ErrorIs(t, err, errors.ErrValidation, "%+v", in)
		}
	})
}

func TestListFilterAndOrder(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, alice, jobs.Input{Title: "A", Company: "X", AppliedDate: datePtr(2024, 1, 1)})
	require.NoError(t, err)
	_, err = svc.Create(ctx, alice, jobs.Input{Title: "B", Company: "X", Status: "Rejected", AppliedDate: datePtr(2024, 3, 1)})
	require.NoError(t, err)
	_, err = svc.Create(ctx, alice, jobs.Input{Title: "C", Company: "X", AppliedDate: datePtr(2024, 3, 1)})
	require.NoError(t, err)
	_, err = svc.Create(ctx, bob, jobs.Input{Title: "Bob's", Company: "Y"})
	require.NoError(t, err)

	all, err := svc.List(ctx, alice, "")
	require.NoError(t, err)
	require.Equal(t, []string{"C", "B", "A"}, titles(all))

	all, err = svc.List(ctx, alice, "ALL")
	require.NoError(t, err)
	require.Len(t, all, 3)

	rejected, err := svc.List(ctx, alice, "rejected")
	require.NoError(t, err)
	require.Equal(t, []string{"B"}, titles(rejected))

	none, err := svc.List(ctx, alice, "Saved")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestOwnership(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	j, err := svc.Create(ctx, alice, jobs.Input{Title: "Mine", Company: "Acme"})
	require.NoError(t, err)

	_, err = svc.Get(ctx, bob, j.ID)
	require.ErrorIs(t, err, errors.ErrNotFound)

	_, err = svc.Update(ctx, bob, j.ID, jobs.Patch{Title: strPtr("Stolen")})
	require.ErrorIs(t, err, errors.ErrNotFound)

	err = svc.Delete(ctx, bob, j.ID)
	require.ErrorIs(t, err, errors.ErrNotFound)

	bobs, err := svc.List(ctx, bob, "")
	require.NoError(t, err)
	require.Empty(t, bobs)

	got, err := svc.Get(ctx, alice, j.ID)
	require.NoError(t, err)
	require.Equal(t, "Mine", got.Title)

	_, err = svc.Get(ctx, alice, 9999)
	require.ErrorIs(t, err, errors.ErrNotFound)
}

func TestUpdate(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	j, err := svc.Create(ctx, alice, jobs.Input{Title: "SRE", Company: "Acme", Location: strPtr("Remote"), Notes: strPtr("call back")})
	require.NoError(t, err)

	t.Run("partial", func(t *testing.T) {
		updated, err := svc.Update(ctx, alice, j.ID, jobs.Patch{Status: strPtr("interviewing"), AppliedDate: datePtr(2024, 2, 2)})
		require.NoError(t, err)
		require.Equal(t, jobs.StatusInterviewing, updated.Status)
		require.Equal(t, "SRE", updated.Title)
		require.Equal(t, "Remote", jobs.Deref(updated.Location))
		require.Equal(t, "2024-02-02", updated.AppliedDate.String())
	})

	t.Run("clear optional", func(t *testing.T) {
		updated, err := svc.Update(ctx, alice, j.ID, jobs.Patch{Notes: strPtr("")})
		require.NoError(t, err)
		require.Nil(t, updated.Notes)
	})

	t.Run("invalid patch is not saved", func(t *testing.T) {
		_, err := svc.Update(ctx, alice, j.ID, jobs.Patch{Title: strPtr("")})
		require.ErrorIs(t, err, errors.ErrValidation)

		got, err := svc.Get(ctx, alice, j.ID)
		require.NoError(t, err)
		require.Equal(t, "SRE", got.Title)
	})
}

func TestDelete(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	j, err := svc.Create(ctx, alice, jobs.Input{Title: "SRE", Company: "Acme"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, alice, j.ID))
	_, err = svc.Get(ctx, alice, j.ID)
	require.ErrorIs(t, err, errors.ErrNotFound)
	require.ErrorIs(t, svc.Delete(ctx, alice, j.ID), errors.ErrNotFound)
}

func TestSummarise(t *testing.T) {
	list := []*jobs.Job{
		{Status: jobs.StatusApplied},
		{Status: jobs.StatusApplied},
		{Status: jobs.StatusRejected},
		{Status: "Legacy"},
	}
	s := jobs.Summarise(list)
	require.Equal(t, 4, s.Total)
	require.Equal(t, 2, s.Counts[jobs.StatusApplied])
	require.Equal(t, 1, s.Counts[jobs.StatusRejected])
	require.Equal(t, 0, s.Counts[jobs.StatusSaved])

	entries := s.Entries()
	require.Len(t, entries, 6)
	require.Equal(t, jobs.SummaryEntry{Label: "Total", Count: 4}, entries[0])
	require.Equal(t, jobs.SummaryEntry{Label: "Offer Received", Count: 0}, entries[3])
}

func TestOwnedBy(t *testing.T) {
	j := &jobs.Job{UserID: alice}
	require.True(t, j.OwnedBy(alice))
	require.False(t, j.OwnedBy(bob))

	var missing *jobs.Job
	require.False(t, missing.OwnedBy(alice))
}

func titles(list []*jobs.Job) []string {
	out := make([]string, 0, len(list))
	for _, j := range list {
		out = append(out, j.Title)
	}
	return out
}
