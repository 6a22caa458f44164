package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dokanlabs/dokan-hisab/internal/adapter"
	"github.com/dokanlabs/dokan-hisab/internal/logger"
	"github.com/dokanlabs/dokan-hisab/internal/store"
	"github.com/dokanlabs/dokan-hisab/models"
)

// ledgerService is the concrete [Ledger] facade. It is bound to one owner
// scope and stamps it on every record and mutation it produces, so nothing
// downstream depends on an ambient current-shop value.
type ledgerService struct {
	store      store.LocalStore
	remote     adapter.RemoteAccess
	conn       ConnectivitySource
	ids        IDGenerator
	ownerScope string
	logger     *logger.Logger
	now        func() time.Time
}

// NewLedgerService constructs the read/write facade for one owner scope.
func NewLedgerService(localStore store.LocalStore, remote adapter.RemoteAccess, conn ConnectivitySource, ids IDGenerator, ownerScope string, logger *logger.Logger) Ledger {
	return &ledgerService{
		store:      localStore,
		remote:     remote,
		conn:       conn,
		ids:        ids,
		ownerScope: ownerScope,
		logger:     logger,
		now:        time.Now,
	}
}

// Read implements [Ledger]. A remote failure degrades to the cache instead
// of propagating; only a broken local store surfaces an error.
func (l *ledgerService) Read(ctx context.Context, recordType models.RecordType) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	if !recordType.Valid() {
		return nil, fmt.Errorf("invalid record type %q", recordType)
	}

	if l.conn.CurrentState().IsOnline {
		records, err := l.remote.FetchAll(ctx, recordType)
		if err == nil {
			for _, record := range records {
				if putErr := l.store.PutRecord(ctx, record); putErr != nil {
					log.Err(putErr).
						Str("func", "ledgerService.Read").
						Str("record_type", string(recordType)).
						Str("record_id", record.ID).
						Msg("failed to mirror remote record into cache")
				}
			}
			return records, nil
		}

		log.Warn().Err(err).
			Str("func", "ledgerService.Read").
			Str("record_type", string(recordType)).
			Msg("remote read failed, falling back to cache")
	}

	return l.store.GetRecords(ctx, recordType)
}

// Write implements [Ledger]. The returned record is what the caller should
// render: the remote-confirmed record online, the locally synthesized copy
// otherwise.
func (l *ledgerService) Write(ctx context.Context, operation models.OperationKind, record models.Record) (models.Record, error) {
	log := logger.FromContext(ctx)

	if !operation.Valid() {
		return models.Record{}, fmt.Errorf("%w: %q", ErrUnknownOperation, operation)
	}
	if !record.Type.Valid() {
		return models.Record{}, fmt.Errorf("invalid record type %q", record.Type)
	}

	record.OwnerScope = l.ownerScope
	record.UpdatedAt = l.now()
	if operation == models.OperationCreate && record.ID == "" {
		record.ID = l.ids.Generate()
	}
	if record.ID == "" {
		return models.Record{}, fmt.Errorf("record id required for %s", operation)
	}

	if l.conn.CurrentState().IsOnline {
		err := l.applyRemote(ctx, operation, record)
		if err == nil {
			if mirrorErr := l.mirrorLocally(ctx, operation, record); mirrorErr != nil {
				log.Err(mirrorErr).
					Str("func", "ledgerService.Write").
					Str("record_id", record.ID).
					Msg("failed to mirror remote write into cache")
			}
			return record, nil
		}

		log.Warn().Err(err).
			Str("func", "ledgerService.Write").
			Str("operation", string(operation)).
			Str("record_id", record.ID).
			Msg("remote write failed, queueing mutation")
	}

	// Offline path: the local write must stick before the caller is told it
	// succeeded. A storage failure here means the write did not happen.
	if err := l.mirrorLocally(ctx, operation, record); err != nil {
		return models.Record{}, err
	}

	mutation := models.PendingMutation{
		MutationID: l.ids.Generate(),
		RecordType: record.Type,
		RecordID:   record.ID,
		OwnerScope: l.ownerScope,
		Operation:  operation,
		Payload:    record.Payload,
		EnqueuedAt: l.now(),
	}
	if err := l.store.EnqueueMutation(ctx, mutation); err != nil {
		return models.Record{}, err
	}

	return record, nil
}

func (l *ledgerService) applyRemote(ctx context.Context, operation models.OperationKind, record models.Record) error {
	switch operation {
	case models.OperationCreate:
		return l.remote.Create(ctx, record)
	case models.OperationUpdate:
		return l.remote.Update(ctx, record)
	case models.OperationDelete:
		return l.remote.Delete(ctx, record.Type, record.ID)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOperation, operation)
	}
}

func (l *ledgerService) mirrorLocally(ctx context.Context, operation models.OperationKind, record models.Record) error {
	if operation == models.OperationDelete {
		return l.store.DeleteRecord(ctx, record.Type, record.ID)
	}
	return l.store.PutRecord(ctx, record)
}
