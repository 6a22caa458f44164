// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dokan Labs

package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/dokanlabs/dokan-hisab/models"
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// positional placeholders ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ledgerRecordColumns lists the columns selected for a full ledger record.
var ledgerRecordColumns = []string{
	"owner_scope",
	"record_type",
	"record_id",
	"payload",
	"updated_at",
	"deleted",
}

// buildSelectRecordsQuery builds the SELECT returning all live records of one
// type for one owner scope.
func buildSelectRecordsQuery(_ context.Context, ownerScope string, recordType models.RecordType) (string, []any, error) {
	query, args, err := psql.
		Select(ledgerRecordColumns...).
		From("ledger_records").
		Where(sq.Eq{
			"owner_scope": ownerScope,
			"record_type": string(recordType),
			"deleted":     false,
		}).
		OrderBy("updated_at ASC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpsertRecordQuery builds the last-write-wins upsert for one ledger
// record. A record re-created after a soft delete comes back alive.
func buildUpsertRecordQuery(_ context.Context, record models.Record, now time.Time) (string, []any, error) {
	query, args, err := psql.
		Insert("ledger_records").
		Columns(ledgerRecordColumns...).
		Values(record.OwnerScope, string(record.Type), record.ID, []byte(record.Payload), now, false).
		Suffix(`ON CONFLICT (owner_scope, record_type, record_id)
			DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at, deleted = false`).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSoftDeleteRecordQuery builds the UPDATE marking one record deleted.
// The row is kept so offline clients can observe the removal on a later pull.
func buildSoftDeleteRecordQuery(_ context.Context, ownerScope string, recordType models.RecordType, recordID string, now time.Time) (string, []any, error) {
	query, args, err := psql.
		Update("ledger_records").
		Set("deleted", true).
		Set("updated_at", now).
		Where(sq.Eq{
			"owner_scope": ownerScope,
			"record_type": string(recordType),
			"record_id":   recordID,
		}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
