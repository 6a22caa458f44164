package models

import (
	"encoding/json"
	"time"
)

// OperationKind is the kind of write a pending mutation carries.
type OperationKind string

const (
	OperationCreate OperationKind = "create"
	OperationUpdate OperationKind = "update"
	OperationDelete OperationKind = "delete"
)

// Valid reports whether k is a known operation kind.
func (k OperationKind) Valid() bool {
	switch k {
	case OperationCreate, OperationUpdate, OperationDelete:
		return true
	}
	return false
}

// PendingMutation is a locally queued write that has not yet been confirmed
// by the remote store. Mutations are replayed in EnqueuedAt order; Reconciled
// flips false to true exactly once and never reverses.
type PendingMutation struct {
	MutationID string          `json:"mutation_id"`
	RecordType RecordType      `json:"record_type"`
	RecordID   string          `json:"record_id"`
	OwnerScope string          `json:"owner_scope"`
	Operation  OperationKind   `json:"operation"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	EnqueuedAt time.Time       `json:"enqueued_at"`
	Reconciled bool            `json:"reconciled"`
}

// Record rebuilds the ledger record this mutation describes, for replay
// against the remote store.
func (m PendingMutation) Record() Record {
	return Record{
		Type:       m.RecordType,
		ID:         m.RecordID,
		OwnerScope: m.OwnerScope,
		Payload:    m.Payload,
		UpdatedAt:  m.EnqueuedAt,
	}
}
