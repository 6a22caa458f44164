package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed server/*.sql client/*.sql
var embedMigrations embed.FS

// Migrate applies all pending server-side migrations (the PostgreSQL
// ledger_records schema) to db.
func Migrate(db *sql.DB) error {
	serverFS, err := fs.Sub(embedMigrations, "server")
	if err != nil {
		return fmt.Errorf("migration error reading embedded server migrations: %w", err)
	}
	goose.SetBaseFS(serverFS)

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// MigrateClient applies all pending client-side migrations (the SQLite
// cached_records and pending_mutations schema) to db.
func MigrateClient(db *sql.DB) error {
	clientFS, err := fs.Sub(embedMigrations, "client")
	if err != nil {
		return fmt.Errorf("migration error reading embedded client migrations: %w", err)
	}
	goose.SetBaseFS(clientFS)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
