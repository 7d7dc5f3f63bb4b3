package fakeuserrepo_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/jrsteele09/go-job-tracker/internal/errors"
	fakeuserrepo "github.com/jrsteele09/go-job-tracker/users/repofake"
	"github.com/stretchr/testify/require"
)

func TestInsertUniqueness(t *testing.T) {
	repo := fakeuserrepo.NewFakeUserRepo()
	ctx := context.Background()

	_, err := repo.Insert(ctx, "johndoe", "john@x.com", "h")
	require.NoError(t, err)

	_, err = repo.Insert(ctx, "johndoe", "other@x.com", "h")
	require.True(t, errors.Is(err, errors.ErrDuplicateRegistration))

	_, err = repo.Insert(ctx, "other", "john@x.com", "h")
	require.True(t, errors.Is(err, errors.ErrDuplicateRegistration))

	// usernames are case-sensitive
	_, err = repo.Insert(ctx, "JohnDoe", "john2@x.com", "h")
	require.NoError(t, err)
	require.Equal(t, 2, repo.Count())
}

func TestConcurrentInsert(t *testing.T) {
	repo := fakeuserrepo.NewFakeUserRepo()

	const workers = 20
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.Insert(context.Background(), "johndoe", fmt.Sprintf("john%d@x.com", i), "h")
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	successes := 0
	for err := range errs {
		if err == nil {
			successes++
			continue
		}
		require.True(t, errors.Is(err, errors.ErrDuplicateRegistration))
	}
	require.Equal(t, 1, successes)
	require.Equal(t, 1, repo.Count())
}

func TestLookups(t *testing.T) {
	repo := fakeuserrepo.NewFakeUserRepo()
	ctx := context.Background()

	u, err := repo.Insert(ctx, "johndoe", "john@x.com", "h")
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "johndoe", got.Username)

	_, err = repo.GetByUsername(ctx, "JOHNDOE")
	require.True(t, errors.Is(err, errors.ErrUserNotFound))

	_, err = repo.GetByID(ctx, 999)
	require.True(t, errors.Is(err, errors.ErrUserNotFound))
}
