package fakejobrepo

import (
	"context"
	"sync"

	"github.com/jrsteele09/go-job-tracker/internal/errors"
	"github.com/jrsteele09/go-job-tracker/jobs"
)

var _ jobs.Repo = (*FakeJobRepo)(nil)

// FakeJobRepo is an in-memory jobs.Repo. Stored jobs are copied in and out.
type FakeJobRepo struct {
	jobs   map[int64]*jobs.Job
	nextID int64
	lock   sync.RWMutex
}

func NewFakeJobRepo() *FakeJobRepo {
	return &FakeJobRepo{jobs: make(map[int64]*jobs.Job)}
}

func (r *FakeJobRepo) Create(_ context.Context, job *jobs.Job) (*jobs.Job, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.nextID++
	stored := job.Clone()
	stored.ID = r.nextID
	r.jobs[stored.ID] = stored
	return stored.Clone(), nil
}

func (r *FakeJobRepo) ListByOwner(_ context.Context, ownerID int64) ([]*jobs.Job, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	list := make([]*jobs.Job, 0)
	for _, j := range r.jobs {
		if j.UserID == ownerID {
			list = append(list, j.Clone())
		}
	}
	jobs.SortNewestFirst(list)
	return list, nil
}

func (r *FakeJobRepo) Get(_ context.Context, id int64) (*jobs.Job, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	j, ok := r.jobs[id]
	if !ok {
		return nil, errors.ErrNotFound
	}
	return j.Clone(), nil
}

func (r *FakeJobRepo) Update(_ context.Context, id int64, mutate func(*jobs.Job) error) (*jobs.Job, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	j, ok := r.jobs[id]
	if !ok {
		return nil, errors.ErrNotFound
	}
	working := j.Clone()
	if err := mutate(working); err != nil {
		return nil, err
	}
	working.ID = id
	r.jobs[id] = working
	return working.Clone(), nil
}

func (r *FakeJobRepo) Delete(_ context.Context, id int64) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.jobs[id]; !ok {
		return errors.ErrNotFound
	}
	delete(r.jobs, id)
	return nil
}
