package store

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dokanlabs/dokan-hisab/internal/config"
	"github.com/dokanlabs/dokan-hisab/internal/logger"
	"github.com/dokanlabs/dokan-hisab/models"
)

func newTestLocalStore(t *testing.T) (*localStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	s := newLocalStoreFromDB(&DB{DB: db, logger: logger.Nop()}, "shop-1", logger.Nop())
	return s, mock
}

func TestLocalStore_PutRecord(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	record := models.Record{
		Type:       models.RecordTypeProduct,
		ID:         "prod-1",
		OwnerScope: "shop-1",
		Payload:    []byte(`{"name":"Chal","unit":"kg"}`),
		UpdatedAt:  now,
	}

	t.Run("success: record cached", func(t *testing.T) {
		s, mock := newTestLocalStore(t)

		mock.ExpectExec(regexp.QuoteMeta(putCachedRecord)).
			WithArgs("shop-1", "product", "prod-1", []byte(`{"name":"Chal","unit":"kg"}`), now).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, s.PutRecord(testContext(), record))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: exec failure wraps storage error", func(t *testing.T) {
		s, mock := newTestLocalStore(t)

		mock.ExpectExec(regexp.QuoteMeta(putCachedRecord)).
			WillReturnError(errors.New("disk I/O error"))

		err := s.PutRecord(testContext(), record)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrStorageUnavailable)
	})
}

func TestLocalStore_GetRecords(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	cachedColumns := []string{"owner_scope", "record_type", "record_id", "payload", "updated_at"}

	t.Run("success: records come back oldest update first", func(t *testing.T) {
		s, mock := newTestLocalStore(t)

		rows := sqlmock.NewRows(cachedColumns).
			AddRow("shop-1", "customer", "cust-1", []byte(`{"name":"Rahim"}`), now.Add(-time.Hour)).
			AddRow("shop-1", "customer", "cust-2", []byte(`{"name":"Karim"}`), now)

		mock.ExpectQuery(regexp.QuoteMeta(getCachedRecords)).
			WithArgs("shop-1", "customer").
			WillReturnRows(rows)

		records, err := s.GetRecords(testContext(), models.RecordTypeCustomer)
		require.NoError(t, err)

		require.Len(t, records, 2)
		assert.Equal(t, "cust-1", records[0].ID)
		assert.Equal(t, "cust-2", records[1].ID)
		assert.JSONEq(t, `{"name":"Rahim"}`, string(records[0].Payload))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success: empty cache yields empty slice", func(t *testing.T) {
		s, mock := newTestLocalStore(t)

		mock.ExpectQuery(regexp.QuoteMeta(getCachedRecords)).
			WithArgs("shop-1", "customer").
			WillReturnRows(sqlmock.NewRows(cachedColumns))

		records, err := s.GetRecords(testContext(), models.RecordTypeCustomer)
		require.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})

	t.Run("error: query failure wraps storage error", func(t *testing.T) {
		s, mock := newTestLocalStore(t)

		mock.ExpectQuery(regexp.QuoteMeta(getCachedRecords)).
			WillReturnError(errors.New("database is locked"))

		_, err := s.GetRecords(testContext(), models.RecordTypeCustomer)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrStorageUnavailable)
	})
}

func TestLocalStore_EnqueueMutation(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	mutation := models.PendingMutation{
		MutationID: "mut-1",
		RecordType: models.RecordTypeSale,
		RecordID:   "sale-1",
		OwnerScope: "shop-1",
		Operation:  models.OperationCreate,
		Payload:    []byte(`{"total_amount":"120"}`),
		EnqueuedAt: now,
	}

	t.Run("success: mutation appended", func(t *testing.T) {
		s, mock := newTestLocalStore(t)

		mock.ExpectExec(regexp.QuoteMeta(enqueuePendingMutation)).
			WithArgs("mut-1", "shop-1", "sale", "sale-1", "create", []byte(`{"total_amount":"120"}`), now).
			WillReturnResult(sqlmock.NewResult(1, 1))

		require.NoError(t, s.EnqueueMutation(testContext(), mutation))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: insert failure wraps storage error", func(t *testing.T) {
		s, mock := newTestLocalStore(t)

		mock.ExpectExec(regexp.QuoteMeta(enqueuePendingMutation)).
			WillReturnError(errors.New("disk full"))

		err := s.EnqueueMutation(testContext(), mutation)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrStorageUnavailable)
	})
}

func TestLocalStore_ListPendingMutations(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	mutationColumns := []string{
		"mutation_id", "owner_scope", "record_type", "record_id",
		"operation", "payload", "enqueued_at", "reconciled",
	}

	t.Run("success: mutations in enqueue order", func(t *testing.T) {
		s, mock := newTestLocalStore(t)

		rows := sqlmock.NewRows(mutationColumns).
			AddRow("mut-1", "shop-1", "sale", "sale-1", "create", []byte(`{"total_amount":"120"}`), now.Add(-time.Minute), false).
			AddRow("mut-2", "shop-1", "sale", "sale-1", "update", []byte(`{"total_amount":"150"}`), now, false)

		mock.ExpectQuery(regexp.QuoteMeta(getPendingMutations)).
			WithArgs("shop-1").
			WillReturnRows(rows)

		mutations, err := s.ListPendingMutations(testContext())
		require.NoError(t, err)

		require.Len(t, mutations, 2)
		assert.Equal(t, "mut-1", mutations[0].MutationID)
		assert.Equal(t, "mut-2", mutations[1].MutationID)
		assert.Equal(t, models.OperationCreate, mutations[0].Operation)
		assert.Equal(t, models.OperationUpdate, mutations[1].Operation)
		assert.True(t, mutations[0].EnqueuedAt.Before(mutations[1].EnqueuedAt))
	})

	t.Run("success: delete mutation carries no payload", func(t *testing.T) {
		s, mock := newTestLocalStore(t)

		rows := sqlmock.NewRows(mutationColumns).
			AddRow("mut-3", "shop-1", "customer", "cust-1", "delete", nil, now, false)

		mock.ExpectQuery(regexp.QuoteMeta(getPendingMutations)).
			WithArgs("shop-1").
			WillReturnRows(rows)

		mutations, err := s.ListPendingMutations(testContext())
		require.NoError(t, err)

		require.Len(t, mutations, 1)
		assert.Equal(t, models.OperationDelete, mutations[0].Operation)
		assert.Empty(t, mutations[0].Payload)
	})

	t.Run("error: query failure wraps storage error", func(t *testing.T) {
		s, mock := newTestLocalStore(t)

		mock.ExpectQuery(regexp.QuoteMeta(getPendingMutations)).
			WillReturnError(errors.New("database is locked"))

		_, err := s.ListPendingMutations(testContext())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrStorageUnavailable)
	})
}

func TestLocalStore_MarkReconciled(t *testing.T) {
	t.Run("success: mutation marked", func(t *testing.T) {
		s, mock := newTestLocalStore(t)

		mock.ExpectExec(regexp.QuoteMeta(markMutationReconciled)).
			WithArgs("mut-1", "shop-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, s.MarkReconciled(testContext(), "mut-1"))
	})

	t.Run("success: marking unknown mutation is a no-op", func(t *testing.T) {
		s, mock := newTestLocalStore(t)

		mock.ExpectExec(regexp.QuoteMeta(markMutationReconciled)).
			WithArgs("mut-gone", "shop-1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		require.NoError(t, s.MarkReconciled(testContext(), "mut-gone"))
	})

	t.Run("error: exec failure wraps storage error", func(t *testing.T) {
		s, mock := newTestLocalStore(t)

		mock.ExpectExec(regexp.QuoteMeta(markMutationReconciled)).
			WillReturnError(errors.New("disk I/O error"))

		err := s.MarkReconciled(testContext(), "mut-1")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrStorageUnavailable)
	})
}

func TestLocalStore_PurgeReconciled(t *testing.T) {
	s, mock := newTestLocalStore(t)

	mock.ExpectExec(regexp.QuoteMeta(purgeReconciledMutations)).
		WithArgs("shop-1").
		WillReturnResult(sqlmock.NewResult(0, 4))

	require.NoError(t, s.PurgeReconciled(testContext()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalStore_CountPending(t *testing.T) {
	t.Run("success: count returned", func(t *testing.T) {
		s, mock := newTestLocalStore(t)

		mock.ExpectQuery(regexp.QuoteMeta(countPendingMutations)).
			WithArgs("shop-1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

		count, err := s.CountPending(testContext())
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("error: scan failure wraps storage error", func(t *testing.T) {
		s, mock := newTestLocalStore(t)

		mock.ExpectQuery(regexp.QuoteMeta(countPendingMutations)).
			WillReturnError(errors.New("database is locked"))

		_, err := s.CountPending(testContext())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrStorageUnavailable)
	})
}

func TestLocalStore_ClearCache(t *testing.T) {
	s, mock := newTestLocalStore(t)

	mock.ExpectExec(regexp.QuoteMeta(deleteAllCachedRecords)).
		WithArgs("shop-1").
		WillReturnResult(sqlmock.NewResult(0, 7))

	require.NoError(t, s.ClearCache(testContext()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalStore_CloseWithoutInit(t *testing.T) {
	s := NewLocalStore(config.ClientStorage{Path: "unused.db"}, "shop-1", logger.Nop())
	assert.NoError(t, s.Close())
}

func TestLocalStore_InitFailureIsSticky(t *testing.T) {
	// A regular file where the database directory should be makes the lazy
	// open fail on every path through it.
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("plain file"), 0o600))

	s := NewLocalStore(config.ClientStorage{Path: filepath.Join(blocker, "cache.db")}, "shop-1", logger.Nop())

	err := s.PutRecord(testContext(), models.Record{
		Type:       models.RecordTypeSale,
		ID:         "sale-1",
		OwnerScope: "shop-1",
		Payload:    []byte(`{"total_amount":"100"}`),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorageUnavailable)

	// The failed open is remembered, not retried: the next operation reports
	// the same condition.
	_, err = s.GetRecords(testContext(), models.RecordTypeSale)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}
