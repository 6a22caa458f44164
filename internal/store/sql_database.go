package store

import (
	"database/sql"
	"fmt"

	"github.com/dokanlabs/dokan-hisab/internal/logger"
	"github.com/dokanlabs/dokan-hisab/migrations"
)

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// wrapStorageError wraps a driver error with the given sentinel, adding
// [ErrRetryableStorage] when the connection's classifier marks the failure
// as transient. Repositories call it on every Exec/Query failure so callers
// can decide between surfacing the error and retrying.
func (db *DB) wrapStorageError(sentinel, err error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w: %w", ErrRetryableStorage, sentinel, err)
	}

	return fmt.Errorf("%w: %w", sentinel, err)
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

func (db *DB) MigrateClient() error {
	return migrations.MigrateClient(db.DB)
}
