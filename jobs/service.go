package jobs

import (
	"context"

	"github.com/jrsteele09/go-job-tracker/internal/errors"
	"github.com/jrsteele09/go-job-tracker/internal/validation"
	"github.com/rs/zerolog/log"
)

// Service applies validation and row ownership on top of a Repo.
type Service struct {
	repo     Repo
	validate *validation.Validator
}

func NewService(repo Repo) *Service {
	return &Service{repo: repo, validate: validation.New()}
}

// owned is the single ownership check. A job owned by someone else is reported exactly like a
// missing one.
func (s *Service) owned(j *Job, ownerID int64) error {
	if !j.OwnedBy(ownerID) {
		return errors.ErrNotFound
	}
	return nil
}

func (s *Service) Create(ctx context.Context, ownerID int64, in Input) (*Job, error) {
	j := in.toJob(ownerID)
	if err := s.validate.Struct(j); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, j)
	if err != nil {
		return nil, errors.Wrapf(err, "create job")
	}
	log.Ctx(ctx).Debug().Int64("user_id", ownerID).Int64("job_id", created.ID).Msg("job created")
	return created, nil
}

// List returns the owner's jobs, newest first, filtered by status ("" or "all" for every job).
func (s *Service) List(ctx context.Context, ownerID int64, status string) ([]*Job, error) {
	all, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrapf(err, "list jobs")
	}
	SortNewestFirst(all)
	return FilterByStatus(all, status), nil
}

func (s *Service) Get(ctx context.Context, ownerID, id int64) (*Job, error) {
	j, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.owned(j, ownerID); err != nil {
		return nil, err
	}
	return j, nil
}

func (s *Service) Update(ctx context.Context, ownerID, id int64, patch Patch) (*Job, error) {
	return s.repo.Update(ctx, id, func(j *Job) error {
		if err := s.owned(j, ownerID); err != nil {
			return err
		}
		patch.apply(j)
		j.UserID = ownerID
		return s.validate.Struct(j)
	})
}

func (s *Service) Delete(ctx context.Context, ownerID, id int64) error {
	if _, err := s.Get(ctx, ownerID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	log.Ctx(ctx).Debug().Int64("user_id", ownerID).Int64("job_id", id).Msg("job deleted")
	return nil
}
