package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jrsteele09/go-job-tracker/internal/db"
	"github.com/stretchr/testify/require"
)

func TestWithTx(t *testing.T) {
	t.Run("commits on success", func(t *testing.T) {
		conn, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer conn.Close()

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE jobs").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err = db.WithTx(context.Background(), conn, nil, func(ctx context.Context, tx db.DBTX) error {
			_, err := tx.ExecContext(ctx, "UPDATE jobs SET status = 'Saved'")
			return err
		})
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on error", func(t *testing.T) {
		conn, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer conn.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		boom := errors.New("boom")
		err = db.WithTx(context.Background(), conn, nil, func(ctx context.Context, tx db.DBTX) error {
			return boom
		})
		require.ErrorIs(t, err, boom)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back and re-panics", func(t *testing.T) {
		conn, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer conn.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		require.Panics(t, func() {
			_ = db.WithTx(context.Background(), conn, nil, func(ctx context.Context, tx db.DBTX) error {
				panic("kaput")
			})
		})
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin failure", func(t *testing.T) {
		conn, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer conn.Close()

		mock.ExpectBegin().WillReturnError(errors.New("no conn"))

		called := false
		err = db.WithTx(context.Background(), conn, nil, func(ctx context.Context, tx db.DBTX) error {
			called = true
			return nil
		})
		require.Error(t, err)
		require.False(t, called)
	})
}

func TestOpenRequiresDSN(t *testing.T) {
	_, err := db.Open(context.Background(), "")
	require.Error(t, err)
}
