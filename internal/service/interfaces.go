package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/dokanlabs/dokan-hisab/models"
)

// ConnectivitySource is the read side of the network monitor: a synchronous,
// non-blocking connectivity snapshot.
type ConnectivitySource interface {
	CurrentState() models.ConnectivityState
}

// TransitionNotifier registers handlers fired exactly once per connectivity
// transition. The network monitor implements it.
type TransitionNotifier interface {
	OnOnline(handler func())
	OnOffline(handler func())
}

// SyncEngine drives convergence between the local pending-mutation queue and
// the remote ledger store.
type SyncEngine interface {
	// RunSync drains the pending-mutation queue against the remote store.
	// It is a silent no-op when the device is offline or a run is already in
	// flight; at most one run is ever active. A failed mutation is recorded
	// and the batch continues. Mutations enqueued while the run is in flight
	// are left for the next run.
	RunSync(ctx context.Context) error

	// ForceSync is RunSync for an explicit user action: it returns
	// [ErrOffline] instead of silently no-oping when the device is offline.
	ForceSync(ctx context.Context) error

	// PullSnapshot fetches all remote records of recordType and mirrors them
	// into the local cache, best effort per record. The remote fetch error
	// propagates; it is not part of the mutation-replay path.
	PullSnapshot(ctx context.Context, recordType models.RecordType) error

	// Status reports the engine and connectivity state for display.
	Status(ctx context.Context) (models.SyncStatus, error)
}

// Ledger is the single entry point UI-level data hooks use. Neither
// operation ever fails merely because the device is offline; they degrade to
// the local cache instead.
type Ledger interface {
	// Read returns all records of recordType: the remote result mirrored
	// into the cache when online, the cached copies otherwise.
	Read(ctx context.Context, recordType models.RecordType) ([]models.Record, error)

	// Write applies one create, update, or delete. Online it goes to the
	// remote store and is mirrored locally; offline (or on remote failure)
	// the record is stored locally and a pending mutation is enqueued. The
	// returned record carries the generated id for creates.
	Write(ctx context.Context, operation models.OperationKind, record models.Record) (models.Record, error)
}

// SyncJob is the background trigger policy around a [SyncEngine]: a
// reconnect-driven run with a short debounce plus a recurring safety-net
// ticker.
type SyncJob interface {
	// Start launches the background triggers. Any previously running job is
	// stopped before the new one begins.
	Start(ctx context.Context)

	// Stop signals the background goroutines to exit and blocks until they
	// have fully terminated.
	Stop()
}

// IDGenerator produces identifiers for offline-created records and queued
// mutations.
type IDGenerator interface {
	Generate() string
}
