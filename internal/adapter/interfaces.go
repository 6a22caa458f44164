package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_access_mock.go -package=mock

import (
	"context"

	"github.com/dokanlabs/dokan-hisab/models"
)

// RemoteAccess is the remote ledger API as the client sees it. The sync
// engine replays queued mutations through it and the facade uses it for
// direct online reads and writes.
//
// Every operation is scoped by the owner scope the adapter was constructed
// with; failures are returned as errors wrapping the sentinels in errors.go.
type RemoteAccess interface {
	// Create stores a new ledger record remotely. The record keeps its
	// client-generated id.
	Create(ctx context.Context, record models.Record) error

	// Update overwrites the remote record with the same id. Last write wins.
	Update(ctx context.Context, record models.Record) error

	// Delete removes one remote record.
	Delete(ctx context.Context, recordType models.RecordType, recordID string) error

	// FetchAll returns every live remote record of the given type for the
	// adapter's owner scope.
	FetchAll(ctx context.Context, recordType models.RecordType) ([]models.Record, error)

	// Ping checks that the remote API is reachable. Used by the
	// connectivity prober.
	Ping(ctx context.Context) error
}
