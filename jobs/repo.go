package jobs

import "context"

// Repo persists jobs. It does not check ownership; callers go through Service.
// Get and Update return errors.ErrNotFound for a missing id.
type Repo interface {
	Create(ctx context.Context, job *Job) (*Job, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*Job, error)
	Get(ctx context.Context, id int64) (*Job, error)
	// Update loads the job, applies mutate and saves the result atomically. The update is
	// abandoned when mutate returns an error.
	Update(ctx context.Context, id int64, mutate func(*Job) error) (*Job, error)
	Delete(ctx context.Context, id int64) error
}
