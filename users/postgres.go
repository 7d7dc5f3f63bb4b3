package users

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jrsteele09/go-job-tracker/internal/db"
	"github.com/jrsteele09/go-job-tracker/internal/errors"
)

const pgUniqueViolation = "23505"

var _ UserRepo = (*PostgresRepo)(nil)

type PostgresRepo struct {
	db db.DBTX
}

func NewPostgresRepo(conn db.DBTX) *PostgresRepo {
	return &PostgresRepo{db: conn}
}

// Insert relies on the users_username_key and users_email_key constraints so concurrent
// registrations for the same name cannot both succeed.
func (r *PostgresRepo) Insert(ctx context.Context, username, email, passwordHash string) (*User, error) {
	query :=
		`INSERT INTO users (username, email, hashed_password)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`

	u := &User{Username: username, Email: email, PasswordHash: passwordHash}
	err := r.db.QueryRowContext(ctx, query, username, email, passwordHash).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, errors.Wrapf(errors.ErrDuplicateRegistration, "constraint %s", pgErr.ConstraintName)
		}
		return nil, errors.Wrapf(err, "db error")
	}
	u.CreatedAt = u.CreatedAt.UTC()
	return u, nil
}

func (r *PostgresRepo) GetByUsername(ctx context.Context, username string) (*User, error) {
	query :=
		`SELECT id, username, email, hashed_password, created_at FROM users
		 WHERE username = $1`

	return r.scanOne(r.db.QueryRowContext(ctx, query, username))
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int64) (*User, error) {
	query :=
		`SELECT id, username, email, hashed_password, created_at FROM users
		 WHERE id = $1`

	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepo) scanOne(row *sql.Row) (*User, error) {
	u := &User{}
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.ErrUserNotFound
		}
		return nil, errors.Wrapf(err, "db error")
	}
	u.CreatedAt = u.CreatedAt.UTC()
	return u, nil
}
