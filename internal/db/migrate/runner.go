// Package migrate applies the embedded schema migrations with golang-migrate.
package migrate

import (
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jrsteele09/go-job-tracker/internal/db"
	"github.com/jrsteele09/go-job-tracker/internal/errors"
	"github.com/rs/zerolog/log"
)

const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

// ErrNoChange is returned when there is nothing to apply in the requested direction.
var ErrNoChange = migrate.ErrNoChange

// Run applies migrations in the given direction. Already being at the target version is not an error.
func Run(dsn string, direction string) error {
	if dsn == "" {
		return errors.Wrapf(errors.ErrValidation, "migrate: DATABASE_URL is not set")
	}
	if direction != DirectionUp && direction != DirectionDown {
		return errors.Wrapf(errors.ErrValidation, "migrate: direction must be %s or %s, got %q", DirectionUp, DirectionDown, direction)
	}

	src, err := iofs.New(db.MigrationFS, "migrations")
	if err != nil {
		return errors.Wrapf(err, "migrate: source")
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, dsn)
	if err != nil {
		return errors.Wrapf(err, "migrate")
	}
	defer func() { _, _ = m.Close() }()

	switch direction {
	case DirectionUp:
		err = m.Up()
	case DirectionDown:
		err = m.Down()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrapf(err, "migrate %s", direction)
	}

	version, dirty, verr := m.Version()
	log.Info().Err(verr).Uint("version", version).Bool("dirty", dirty).Str("direction", direction).Msg("migrations applied")
	return nil
}
