package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dokanlabs/dokan-hisab/internal/logger"
	"github.com/dokanlabs/dokan-hisab/internal/mock"
	"github.com/dokanlabs/dokan-hisab/internal/store"
	"github.com/dokanlabs/dokan-hisab/internal/validators"
	"github.com/dokanlabs/dokan-hisab/models"
)

func newTestHandler(t *testing.T) (*Handler, *mock.MockRecordRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockRecordRepository(ctrl)
	h := NewHandler(&store.Storages{RecordRepository: repo}, validators.NewRecordValidator(), logger.Nop())
	return h, repo
}

func doRequest(h *Handler, method, target, ownerScope string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if ownerScope != "" {
		req.Header.Set("X-Owner-Scope", ownerScope)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func TestListRecords(t *testing.T) {
	t.Run("success: records returned as json array", func(t *testing.T) {
		h, repo := newTestHandler(t)

		stored := []models.Record{
			{
				Type:       models.RecordTypeCustomer,
				ID:         "cust-1",
				OwnerScope: "shop-1",
				Payload:    []byte(`{"name":"Rahim","due_amount":"350"}`),
				UpdatedAt:  time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC),
			},
		}
		repo.EXPECT().
			GetRecords(gomock.Any(), "shop-1", models.RecordTypeCustomer).
			Return(stored, nil)

		rec := doRequest(h, http.MethodGet, "/api/records/customer", "shop-1", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var got []models.Record
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "cust-1", got[0].ID)
	})

	t.Run("success: empty list stays an array", func(t *testing.T) {
		h, repo := newTestHandler(t)

		repo.EXPECT().
			GetRecords(gomock.Any(), "shop-1", models.RecordTypeSale).
			Return([]models.Record{}, nil)

		rec := doRequest(h, http.MethodGet, "/api/records/sale", "shop-1", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("error: missing owner scope header", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rec := doRequest(h, http.MethodGet, "/api/records/customer", "", nil)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "owner scope required")
	})

	t.Run("error: unknown record type", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rec := doRequest(h, http.MethodGet, "/api/records/invoice", "shop-1", nil)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("error: storage failure maps to 500", func(t *testing.T) {
		h, repo := newTestHandler(t)

		repo.EXPECT().
			GetRecords(gomock.Any(), "shop-1", models.RecordTypeCustomer).
			Return(nil, fmt.Errorf("%w: connection refused", store.ErrExecutingQuery))

		rec := doRequest(h, http.MethodGet, "/api/records/customer", "shop-1", nil)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestCreateRecord(t *testing.T) {
	body := []byte(`{"id":"prod-1","payload":{"name":"Chal","unit":"kg","selling_price":"75"}}`)

	t.Run("success: record stored and echoed back", func(t *testing.T) {
		h, repo := newTestHandler(t)

		repo.EXPECT().
			UpsertRecord(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, record models.Record) error {
				assert.Equal(t, models.RecordTypeProduct, record.Type)
				assert.Equal(t, "prod-1", record.ID)
				assert.Equal(t, "shop-1", record.OwnerScope)
				assert.False(t, record.UpdatedAt.IsZero())
				return nil
			})

		rec := doRequest(h, http.MethodPost, "/api/records/product", "shop-1", body)

		require.Equal(t, http.StatusCreated, rec.Code)

		var got models.Record
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "prod-1", got.ID)
		assert.Equal(t, "shop-1", got.OwnerScope)
	})

	t.Run("error: malformed json body", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rec := doRequest(h, http.MethodPost, "/api/records/product", "shop-1", []byte(`{"id":`))

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("error: missing id rejected", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rec := doRequest(h, http.MethodPost, "/api/records/product", "shop-1",
			[]byte(`{"payload":{"name":"Chal"}}`))

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("error: payload failing validation rejected", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rec := doRequest(h, http.MethodPost, "/api/records/product", "shop-1",
			[]byte(`{"id":"prod-1","payload":{"name":"Chal","stock_qty":"-4"}}`))

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("error: storage failure maps to 500", func(t *testing.T) {
		h, repo := newTestHandler(t)

		repo.EXPECT().
			UpsertRecord(gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("%w: no rows affected", store.ErrRecordNotSaved))

		rec := doRequest(h, http.MethodPost, "/api/records/product", "shop-1", body)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestUpdateRecord(t *testing.T) {
	t.Run("success: id from url wins over body", func(t *testing.T) {
		h, repo := newTestHandler(t)

		repo.EXPECT().
			UpsertRecord(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, record models.Record) error {
				assert.Equal(t, "exp-1", record.ID)
				return nil
			})

		rec := doRequest(h, http.MethodPut, "/api/records/expense/exp-1", "shop-1",
			[]byte(`{"id":"something-else","payload":{"amount":"250"}}`))

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("success: updating a record the server never saw still upserts", func(t *testing.T) {
		h, repo := newTestHandler(t)

		repo.EXPECT().UpsertRecord(gomock.Any(), gomock.Any()).Return(nil)

		rec := doRequest(h, http.MethodPut, "/api/records/expense/exp-9", "shop-1",
			[]byte(`{"payload":{"amount":"90"}}`))

		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestDeleteRecord(t *testing.T) {
	t.Run("success: record deleted", func(t *testing.T) {
		h, repo := newTestHandler(t)

		repo.EXPECT().
			DeleteRecord(gomock.Any(), "shop-1", models.RecordTypeCustomer, "cust-1").
			Return(nil)

		rec := doRequest(h, http.MethodDelete, "/api/records/customer/cust-1", "shop-1", nil)

		require.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("success: deleting an unknown record is idempotent", func(t *testing.T) {
		h, repo := newTestHandler(t)

		repo.EXPECT().
			DeleteRecord(gomock.Any(), "shop-1", models.RecordTypeCustomer, "cust-gone").
			Return(store.ErrRecordNotFound)

		rec := doRequest(h, http.MethodDelete, "/api/records/customer/cust-gone", "shop-1", nil)

		require.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("error: storage failure maps to 500", func(t *testing.T) {
		h, repo := newTestHandler(t)

		repo.EXPECT().
			DeleteRecord(gomock.Any(), "shop-1", models.RecordTypeCustomer, "cust-1").
			Return(errors.New("connection refused"))

		rec := doRequest(h, http.MethodDelete, "/api/records/customer/cust-1", "shop-1", nil)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
