package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/dokanlabs/dokan-hisab/internal/config"
	"github.com/dokanlabs/dokan-hisab/internal/logger"
	"github.com/dokanlabs/dokan-hisab/models"
)

// localStore is the SQLite-backed implementation of [LocalStore]. The
// underlying database is opened and migrated lazily on first use, so
// constructing the store never fails; a broken device storage surfaces as
// [ErrStorageUnavailable] from the first operation instead.
type localStore struct {
	cfg        config.ClientStorage
	ownerScope string
	logger     *logger.Logger

	once    sync.Once
	db      *DB
	initErr error
}

// NewLocalStore constructs a [LocalStore] bound to ownerScope. The SQLite
// file at cfg.Path is created and migrated on the first operation.
func NewLocalStore(cfg config.ClientStorage, ownerScope string, logger *logger.Logger) LocalStore {
	return &localStore{
		cfg:        cfg,
		ownerScope: ownerScope,
		logger:     logger,
	}
}

// newLocalStoreFromDB wires a store directly to an already opened connection.
// Used by tests to inject sqlmock.
func newLocalStoreFromDB(db *DB, ownerScope string, logger *logger.Logger) *localStore {
	s := &localStore{
		ownerScope: ownerScope,
		logger:     logger,
	}
	s.once.Do(func() { s.db = db })
	return s
}

// ensure opens and migrates the database exactly once. Repeated calls after
// a failed init keep returning the original error; the queue and cache stay
// unusable until the process restarts with working storage.
func (s *localStore) ensure(ctx context.Context) (*DB, error) {
	s.once.Do(func() {
		db, err := NewConnectSQLite(ctx, s.cfg, s.logger)
		if err != nil {
			s.initErr = fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
			return
		}

		if err := db.MigrateClient(); err != nil {
			db.Close()
			s.initErr = fmt.Errorf("%w: migration failed: %w", ErrStorageUnavailable, err)
			return
		}

		s.db = db
	})

	if s.initErr != nil {
		return nil, s.initErr
	}

	return s.db, nil
}

func (s *localStore) PutRecord(ctx context.Context, record models.Record) error {
	log := logger.FromContext(ctx)

	db, err := s.ensure(ctx)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, putCachedRecord,
		s.ownerScope,
		string(record.Type),
		record.ID,
		[]byte(record.Payload),
		record.UpdatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "localStore.PutRecord").
			Str("record_type", string(record.Type)).
			Str("record_id", record.ID).
			Msg("failed to execute upsert for cached record")
		return fmt.Errorf("%w: failed to cache record (record_id=%s): %w", ErrStorageUnavailable, record.ID, err)
	}

	return nil
}

func (s *localStore) GetRecords(ctx context.Context, recordType models.RecordType) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	db, err := s.ensure(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, getCachedRecords, s.ownerScope, string(recordType))
	if err != nil {
		log.Err(err).
			Str("func", "localStore.GetRecords").
			Str("record_type", string(recordType)).
			Msg("failed to execute query for getting cached records")
		return nil, fmt.Errorf("%w: failed to query cached records: %w", ErrStorageUnavailable, err)
	}
	defer rows.Close()

	records := make([]models.Record, 0)

	for rows.Next() {
		var (
			record  models.Record
			payload []byte
		)

		scanErr := rows.Scan(
			&record.OwnerScope,
			&record.Type,
			&record.ID,
			&payload,
			&record.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "localStore.GetRecords").
				Str("record_type", string(recordType)).
				Msg("failed to scan cached record row")
			return nil, fmt.Errorf("%w: failed to scan cached record row: %w", ErrStorageUnavailable, scanErr)
		}

		record.Payload = payload
		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "localStore.GetRecords").
			Str("record_type", string(recordType)).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: error iterating cached record rows: %w", ErrStorageUnavailable, rowsErr)
	}

	return records, nil
}

func (s *localStore) DeleteRecord(ctx context.Context, recordType models.RecordType, recordID string) error {
	log := logger.FromContext(ctx)

	db, err := s.ensure(ctx)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, deleteCachedRecord, s.ownerScope, string(recordType), recordID)
	if err != nil {
		log.Err(err).
			Str("func", "localStore.DeleteRecord").
			Str("record_type", string(recordType)).
			Str("record_id", recordID).
			Msg("failed to execute delete for cached record")
		return fmt.Errorf("%w: failed to delete cached record (record_id=%s): %w", ErrStorageUnavailable, recordID, err)
	}

	return nil
}

func (s *localStore) EnqueueMutation(ctx context.Context, mutation models.PendingMutation) error {
	log := logger.FromContext(ctx)

	db, err := s.ensure(ctx)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, enqueuePendingMutation,
		mutation.MutationID,
		s.ownerScope,
		string(mutation.RecordType),
		mutation.RecordID,
		string(mutation.Operation),
		[]byte(mutation.Payload),
		mutation.EnqueuedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "localStore.EnqueueMutation").
			Str("mutation_id", mutation.MutationID).
			Str("operation", string(mutation.Operation)).
			Msg("failed to enqueue pending mutation")
		return fmt.Errorf("%w: failed to enqueue mutation (mutation_id=%s): %w", ErrStorageUnavailable, mutation.MutationID, err)
	}

	return nil
}

func (s *localStore) ListPendingMutations(ctx context.Context) ([]models.PendingMutation, error) {
	log := logger.FromContext(ctx)

	db, err := s.ensure(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, getPendingMutations, s.ownerScope)
	if err != nil {
		log.Err(err).
			Str("func", "localStore.ListPendingMutations").
			Msg("failed to execute query for pending mutations")
		return nil, fmt.Errorf("%w: failed to query pending mutations: %w", ErrStorageUnavailable, err)
	}
	defer rows.Close()

	mutations := make([]models.PendingMutation, 0)

	for rows.Next() {
		var (
			mutation models.PendingMutation
			payload  []byte
		)

		scanErr := rows.Scan(
			&mutation.MutationID,
			&mutation.OwnerScope,
			&mutation.RecordType,
			&mutation.RecordID,
			&mutation.Operation,
			&payload,
			&mutation.EnqueuedAt,
			&mutation.Reconciled,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "localStore.ListPendingMutations").
				Msg("failed to scan pending mutation row")
			return nil, fmt.Errorf("%w: failed to scan pending mutation row: %w", ErrStorageUnavailable, scanErr)
		}

		mutation.Payload = payload
		mutations = append(mutations, mutation)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "localStore.ListPendingMutations").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: error iterating pending mutation rows: %w", ErrStorageUnavailable, rowsErr)
	}

	return mutations, nil
}

func (s *localStore) MarkReconciled(ctx context.Context, mutationID string) error {
	log := logger.FromContext(ctx)

	db, err := s.ensure(ctx)
	if err != nil {
		return err
	}

	// Zero rows affected means the mutation is unknown or already
	// reconciled; both are fine.
	_, err = db.ExecContext(ctx, markMutationReconciled, mutationID, s.ownerScope)
	if err != nil {
		log.Err(err).
			Str("func", "localStore.MarkReconciled").
			Str("mutation_id", mutationID).
			Msg("failed to mark mutation reconciled")
		return fmt.Errorf("%w: failed to mark mutation reconciled (mutation_id=%s): %w", ErrStorageUnavailable, mutationID, err)
	}

	return nil
}

func (s *localStore) PurgeReconciled(ctx context.Context) error {
	log := logger.FromContext(ctx)

	db, err := s.ensure(ctx)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, purgeReconciledMutations, s.ownerScope)
	if err != nil {
		log.Err(err).
			Str("func", "localStore.PurgeReconciled").
			Msg("failed to purge reconciled mutations")
		return fmt.Errorf("%w: failed to purge reconciled mutations: %w", ErrStorageUnavailable, err)
	}

	return nil
}

func (s *localStore) CountPending(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	db, err := s.ensure(ctx)
	if err != nil {
		return 0, err
	}

	var count int
	row := db.QueryRowContext(ctx, countPendingMutations, s.ownerScope)
	if scanErr := row.Scan(&count); scanErr != nil {
		log.Err(scanErr).
			Str("func", "localStore.CountPending").
			Msg("failed to count pending mutations")
		return 0, fmt.Errorf("%w: failed to count pending mutations: %w", ErrStorageUnavailable, scanErr)
	}

	return count, nil
}

func (s *localStore) ClearCache(ctx context.Context) error {
	log := logger.FromContext(ctx)

	db, err := s.ensure(ctx)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, deleteAllCachedRecords, s.ownerScope)
	if err != nil {
		log.Err(err).
			Str("func", "localStore.ClearCache").
			Msg("failed to clear cached records")
		return fmt.Errorf("%w: failed to clear cached records: %w", ErrStorageUnavailable, err)
	}

	return nil
}

func (s *localStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
