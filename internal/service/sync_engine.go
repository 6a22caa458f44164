package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dokanlabs/dokan-hisab/internal/adapter"
	"github.com/dokanlabs/dokan-hisab/internal/logger"
	"github.com/dokanlabs/dokan-hisab/internal/store"
	"github.com/dokanlabs/dokan-hisab/models"
)

// syncEngine is the concrete [SyncEngine]. One run at a time: the isSyncing
// flag is checked and set under mu, so a trigger firing mid-run is dropped
// instead of starting an overlapping batch.
type syncEngine struct {
	store  store.LocalStore
	remote adapter.RemoteAccess
	conn   ConnectivitySource
	logger *logger.Logger
	now    func() time.Time

	mu                  sync.Mutex
	isSyncing           bool
	lastSyncCompletedAt time.Time
	failedMutationIDs   []string
}

// NewSyncEngine constructs a [SyncEngine] over the given local store, remote
// adapter, and connectivity source.
func NewSyncEngine(localStore store.LocalStore, remote adapter.RemoteAccess, conn ConnectivitySource, logger *logger.Logger) SyncEngine {
	return &syncEngine{
		store:  localStore,
		remote: remote,
		conn:   conn,
		logger: logger,
		now:    time.Now,
	}
}

// RunSync implements [SyncEngine].
func (e *syncEngine) RunSync(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if !e.conn.CurrentState().IsOnline {
		return nil
	}

	e.mu.Lock()
	if e.isSyncing {
		e.mu.Unlock()
		log.Debug().Str("func", "syncEngine.RunSync").Msg("sync already running, trigger dropped")
		return nil
	}
	e.isSyncing = true
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.isSyncing = false
		e.mu.Unlock()
	}()

	// The batch is fixed at this point: mutations enqueued while the run is
	// in flight wait for the next run.
	mutations, err := e.store.ListPendingMutations(ctx)
	if err != nil {
		return fmt.Errorf("list pending mutations: %w", err)
	}

	failed := make([]string, 0)

	for _, mutation := range mutations {
		if err := e.apply(ctx, mutation); err != nil {
			log.Err(err).
				Str("func", "syncEngine.RunSync").
				Str("mutation_id", mutation.MutationID).
				Str("operation", string(mutation.Operation)).
				Str("record_id", mutation.RecordID).
				Msg("mutation replay failed, will retry on next run")
			failed = append(failed, mutation.MutationID)
			continue
		}

		if err := e.store.MarkReconciled(ctx, mutation.MutationID); err != nil {
			log.Err(err).
				Str("func", "syncEngine.RunSync").
				Str("mutation_id", mutation.MutationID).
				Msg("failed to mark mutation reconciled")
			failed = append(failed, mutation.MutationID)
		}
	}

	// Completion is only stamped after a full pass over the batch. A run
	// aborted before replaying anything leaves the previous completion time
	// and failed ids in place.
	e.mu.Lock()
	e.failedMutationIDs = failed
	e.lastSyncCompletedAt = e.now()
	e.mu.Unlock()

	if err := e.store.PurgeReconciled(ctx); err != nil {
		log.Err(err).Str("func", "syncEngine.RunSync").Msg("failed to purge reconciled mutations")
	}

	log.Info().
		Str("func", "syncEngine.RunSync").
		Int("replayed", len(mutations)-len(failed)).
		Int("failed", len(failed)).
		Msg("sync run completed")

	return nil
}

// ForceSync implements [SyncEngine].
func (e *syncEngine) ForceSync(ctx context.Context) error {
	if !e.conn.CurrentState().IsOnline {
		return ErrOffline
	}

	return e.RunSync(ctx)
}

// PullSnapshot implements [SyncEngine]. Records fetched before a local write
// failure are still cached (best effort).
func (e *syncEngine) PullSnapshot(ctx context.Context, recordType models.RecordType) error {
	log := logger.FromContext(ctx)

	records, err := e.remote.FetchAll(ctx, recordType)
	if err != nil {
		return fmt.Errorf("pull snapshot for %s: %w", recordType, err)
	}

	for _, record := range records {
		if err := e.store.PutRecord(ctx, record); err != nil {
			log.Err(err).
				Str("func", "syncEngine.PullSnapshot").
				Str("record_type", string(recordType)).
				Str("record_id", record.ID).
				Msg("failed to cache snapshot record")
		}
	}

	return nil
}

// Status implements [SyncEngine].
func (e *syncEngine) Status(ctx context.Context) (models.SyncStatus, error) {
	count, err := e.store.CountPending(ctx)
	if err != nil {
		return models.SyncStatus{}, fmt.Errorf("count pending mutations: %w", err)
	}

	conn := e.conn.CurrentState()

	e.mu.Lock()
	defer e.mu.Unlock()

	return models.SyncStatus{
		IsOnline:            conn.IsOnline,
		LastOnlineAt:        conn.LastOnlineAt,
		IsSyncing:           e.isSyncing,
		PendingCount:        count,
		LastSyncCompletedAt: e.lastSyncCompletedAt,
		FailedMutationIDs:   append([]string(nil), e.failedMutationIDs...),
	}, nil
}

// apply dispatches one queued mutation to the remote store by operation
// kind.
func (e *syncEngine) apply(ctx context.Context, mutation models.PendingMutation) error {
	switch mutation.Operation {
	case models.OperationCreate:
		return e.remote.Create(ctx, mutation.Record())
	case models.OperationUpdate:
		return e.remote.Update(ctx, mutation.Record())
	case models.OperationDelete:
		return e.remote.Delete(ctx, mutation.RecordType, mutation.RecordID)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOperation, mutation.Operation)
	}
}
