package store

import (
	"context"
	"fmt"
	"time"

	"github.com/dokanlabs/dokan-hisab/internal/logger"
	"github.com/dokanlabs/dokan-hisab/models"
)

// recordRepository is the PostgreSQL-backed implementation of
// [RecordRepository]. It executes all ledger-record operations directly
// against the "ledger_records" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (owner_scope, record_type, record_id).
type recordRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewRecordRepository constructs a [RecordRepository] backed by the provided
// database connection and logger.
func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	return &recordRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

// UpsertRecord implements [RecordRepository]. The write is last-write-wins:
// a prior payload for the same (owner_scope, record_type, record_id) key is
// overwritten, and a soft-deleted row is revived.
func (r *recordRepository) UpsertRecord(ctx context.Context, record models.Record) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertRecordQuery(ctx, record, r.now().UTC())
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.UpsertRecord").
			Str("owner_scope", record.OwnerScope).
			Str("record_type", string(record.Type)).
			Msg("failed to build upsert query")
		return err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.UpsertRecord").
			Str("owner_scope", record.OwnerScope).
			Str("record_type", string(record.Type)).
			Str("record_id", record.ID).
			Msg("failed to execute upsert for ledger record")
		return r.wrapStorageError(ErrExecutingStatement, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.UpsertRecord").
			Str("record_id", record.ID).
			Msg("failed to get rows affected after upsert")
		return fmt.Errorf("failed to get rows affected (record_id=%s): %w", record.ID, err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w (record_id=%s)", ErrRecordNotSaved, record.ID)
	}

	return nil
}

// GetRecords implements [RecordRepository]. Soft-deleted rows are excluded;
// callers that need tombstones pull them through a future dedicated method,
// not this one.
func (r *recordRepository) GetRecords(ctx context.Context, ownerScope string, recordType models.RecordType) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRecordsQuery(ctx, ownerScope, recordType)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.GetRecords").
			Str("owner_scope", ownerScope).
			Msg("failed to build select query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.GetRecords").
			Str("owner_scope", ownerScope).
			Str("record_type", string(recordType)).
			Msg("failed to execute query for getting ledger records")
		return nil, r.wrapStorageError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.Record, 0, 50)

	for rows.Next() {
		var (
			record  models.Record
			deleted bool
		)

		scanErr := rows.Scan(
			&record.OwnerScope,
			&record.Type,
			&record.ID,
			&record.Payload,
			&record.UpdatedAt,
			&deleted,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "recordRepository.GetRecords").
				Str("owner_scope", ownerScope).
				Msg("failed to scan ledger record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "recordRepository.GetRecords").
			Str("owner_scope", ownerScope).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating ledger record rows: %w", rowsErr)
	}

	return records, nil
}

// DeleteRecord implements [RecordRepository]. It soft-deletes the row so
// that clients pulling a later snapshot can observe the removal.
func (r *recordRepository) DeleteRecord(ctx context.Context, ownerScope string, recordType models.RecordType, recordID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSoftDeleteRecordQuery(ctx, ownerScope, recordType, recordID, r.now().UTC())
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.DeleteRecord").
			Str("owner_scope", ownerScope).
			Msg("failed to build soft delete query")
		return err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.DeleteRecord").
			Str("owner_scope", ownerScope).
			Str("record_type", string(recordType)).
			Str("record_id", recordID).
			Msg("failed to execute soft delete for ledger record")
		return r.wrapStorageError(ErrExecutingStatement, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.DeleteRecord").
			Str("record_id", recordID).
			Msg("failed to get rows affected after soft delete")
		return fmt.Errorf("failed to get rows affected (record_id=%s): %w", recordID, err)
	}

	if rowsAffected == 0 {
		log.Warn().
			Str("func", "recordRepository.DeleteRecord").
			Str("owner_scope", ownerScope).
			Str("record_id", recordID).
			Msg("no rows affected during soft delete: record not found")
		return fmt.Errorf("%w (record_id=%s)", ErrRecordNotFound, recordID)
	}

	return nil
}
