// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dokan Labs

package store

const (
	putCachedRecord = `
		INSERT INTO cached_records (
			owner_scope,
			record_type,
			record_id,
			payload,
			updated_at
		) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (owner_scope, record_type, record_id)
		DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at;`

	getCachedRecords = `
		SELECT
			owner_scope,
			record_type,
			record_id,
			payload,
			updated_at
		FROM cached_records
		WHERE owner_scope = $1 AND record_type = $2
		ORDER BY updated_at ASC;`

	deleteCachedRecord = `
		DELETE FROM cached_records
		WHERE owner_scope = $1 AND record_type = $2 AND record_id = $3;`

	deleteAllCachedRecords = `
		DELETE FROM cached_records
		WHERE owner_scope = $1;`

	enqueuePendingMutation = `
		INSERT INTO pending_mutations (
			mutation_id,
			owner_scope,
			record_type,
			record_id,
			operation,
			payload,
			enqueued_at,
			reconciled
		) VALUES ($1, $2, $3, $4, $5, $6, $7, false);`

	getPendingMutations = `
		SELECT
			mutation_id,
			owner_scope,
			record_type,
			record_id,
			operation,
			payload,
			enqueued_at,
			reconciled
		FROM pending_mutations
		WHERE owner_scope = $1 AND reconciled = false
		ORDER BY enqueued_at ASC, mutation_id ASC;`

	markMutationReconciled = `
		UPDATE pending_mutations
		SET reconciled = true
		WHERE mutation_id = $1 AND owner_scope = $2;`

	purgeReconciledMutations = `
		DELETE FROM pending_mutations
		WHERE owner_scope = $1 AND reconciled = true;`

	countPendingMutations = `
		SELECT count(*)
		FROM pending_mutations
		WHERE owner_scope = $1 AND reconciled = false;`
)
