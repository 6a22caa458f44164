package store

//go:generate mockgen -source=interfaces.go -destination=../mock/record_repository_mock.go -package=mock

import (
	"context"

	"github.com/dokanlabs/dokan-hisab/models"
)

// RecordRepository is the server-side persistence contract for ledger
// records. Implementations are scoped by owner on every call; there is no
// ambient "current shop".
type RecordRepository interface {
	// UpsertRecord inserts or overwrites one ledger record keyed by
	// (owner_scope, record_type, record_id). Last write wins.
	UpsertRecord(ctx context.Context, record models.Record) error

	// GetRecords returns all live (non-deleted) records of the given type
	// belonging to ownerScope. Returns an empty slice when none exist.
	GetRecords(ctx context.Context, ownerScope string, recordType models.RecordType) ([]models.Record, error)

	// DeleteRecord soft-deletes one record. Returns [ErrRecordNotFound] if
	// no matching record exists.
	DeleteRecord(ctx context.Context, ownerScope string, recordType models.RecordType, recordID string) error
}
