package db

import "embed"

// MigrationFS holds the schema migrations applied by the migrate runner.
//
//go:embed migrations/*.sql
var MigrationFS embed.FS
