package store

//go:generate mockgen -source=client_interfaces.go -destination=../mock/local_store_mock.go -package=mock

import (
	"context"

	"github.com/dokanlabs/dokan-hisab/models"
)

// LocalStore is the client-side durable cache and pending-mutation queue.
// One LocalStore is bound to a single owner scope for its whole lifetime.
//
// Every method reports device-level storage failures by wrapping
// [ErrStorageUnavailable]; connectivity problems never surface here.
type LocalStore interface {
	// PutRecord inserts or overwrites one cached record.
	PutRecord(ctx context.Context, record models.Record) error

	// GetRecords returns all cached records of the given type, oldest update
	// first. Returns an empty slice when the cache holds none.
	GetRecords(ctx context.Context, recordType models.RecordType) ([]models.Record, error)

	// DeleteRecord removes one record from the cache. Deleting a record that
	// is not cached is not an error.
	DeleteRecord(ctx context.Context, recordType models.RecordType, recordID string) error

	// EnqueueMutation appends one mutation to the tail of the pending queue.
	EnqueueMutation(ctx context.Context, mutation models.PendingMutation) error

	// ListPendingMutations returns all unreconciled mutations in enqueue
	// order, oldest first.
	ListPendingMutations(ctx context.Context) ([]models.PendingMutation, error)

	// MarkReconciled flips one mutation to reconciled. Marking an already
	// reconciled or unknown mutation is a no-op.
	MarkReconciled(ctx context.Context, mutationID string) error

	// PurgeReconciled deletes all reconciled mutations from the queue.
	PurgeReconciled(ctx context.Context) error

	// CountPending returns the number of unreconciled mutations.
	CountPending(ctx context.Context) (int, error)

	// ClearCache removes every cached record for the store's owner scope.
	// The pending queue is left untouched.
	ClearCache(ctx context.Context) error

	// Close releases the underlying database connection. Close on a store
	// that was never initialised is a no-op.
	Close() error
}
