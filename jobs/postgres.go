package jobs

import (
	"context"
	"database/sql"
	"time"

	"github.com/jrsteele09/go-job-tracker/internal/db"
	"github.com/jrsteele09/go-job-tracker/internal/errors"
)

var _ Repo = (*PostgresRepo)(nil)

type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(conn *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: conn}
}

const jobColumns = `id, user_id, title, company, location, link, status, applied_date, notes`

func (r *PostgresRepo) Create(ctx context.Context, job *Job) (*Job, error) {
	query :=
		`INSERT INTO jobs (user_id, title, company, location, link, status, applied_date, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`

	created := job.Clone()
	err := r.db.QueryRowContext(ctx, query,
		job.UserID, job.Title, job.Company, nullString(job.Location), nullString(job.Link),
		string(job.Status), job.AppliedDate.Time, nullString(job.Notes),
	).Scan(&created.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "db error")
	}
	return created, nil
}

func (r *PostgresRepo) ListByOwner(ctx context.Context, ownerID int64) ([]*Job, error) {
	query :=
		`SELECT ` + jobColumns + ` FROM jobs
		 WHERE user_id = $1
		 ORDER BY applied_date DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, errors.Wrapf(err, "db error")
	}
	defer rows.Close()

	list := make([]*Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, j)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "db error")
	}
	return list, nil
}

func (r *PostgresRepo) Get(ctx context.Context, id int64) (*Job, error) {
	return getJob(ctx, r.db, id, false)
}

// Update locks the row for the duration of mutate.
func (r *PostgresRepo) Update(ctx context.Context, id int64, mutate func(*Job) error) (*Job, error) {
	var updated *Job
	err := db.WithTx(ctx, r.db, nil, func(ctx context.Context, tx db.DBTX) error {
		j, err := getJob(ctx, tx, id, true)
		if err != nil {
			return err
		}
		if err := mutate(j); err != nil {
			return err
		}

		query :=
			`UPDATE jobs
			 SET title = $1, company = $2, location = $3, link = $4, status = $5, applied_date = $6, notes = $7
			 WHERE id = $8`

		if _, err := tx.ExecContext(ctx, query,
			j.Title, j.Company, nullString(j.Location), nullString(j.Link),
			string(j.Status), j.AppliedDate.Time, nullString(j.Notes), id,
		); err != nil {
			return errors.Wrapf(err, "db error")
		}
		updated = j
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return errors.Wrapf(err, "db error")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errors.ErrNotFound
	}
	return nil
}

func getJob(ctx context.Context, q db.DBTX, id int64, forUpdate bool) (*Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	j, err := scanJob(q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.ErrNotFound
		}
		return nil, err
	}
	return j, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanJob(row scanner) (*Job, error) {
	var (
		j                     Job
		location, link, notes sql.NullString
		status                string
		applied               time.Time
	)
	err := row.Scan(&j.ID, &j.UserID, &j.Title, &j.Company, &location, &link, &status, &applied, &notes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, errors.Wrapf(err, "db error")
	}
	j.Location = fromNull(location)
	j.Link = fromNull(link)
	j.Notes = fromNull(notes)
	j.Status = Status(status)
	j.AppliedDate = NewDate(applied)
	return &j, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNull(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}
