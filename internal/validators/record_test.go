package validators

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dokanlabs/dokan-hisab/models"
)

func validSaleRecord() models.Record {
	return models.Record{
		Type:       models.RecordTypeSale,
		ID:         "sale-1",
		OwnerScope: "shop-1",
		Payload:    []byte(`{"total_amount":"1200","paid_amount":"1000","due_amount":"200"}`),
		UpdatedAt:  time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC),
	}
}

func TestRecordValidator_Validate_Record(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	t.Run("success: full sale record", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validSaleRecord()))
	})

	t.Run("success: pointer receiver accepted", func(t *testing.T) {
		record := validSaleRecord()
		require.NoError(t, v.Validate(ctx, &record))
	})

	tests := []struct {
		name    string
		mutate  func(*models.Record)
		wantErr error
	}{
		{
			name:    "unknown record type",
			mutate:  func(r *models.Record) { r.Type = "invoice" },
			wantErr: ErrInvalidRecordType,
		},
		{
			name:    "missing id",
			mutate:  func(r *models.Record) { r.ID = "" },
			wantErr: ErrMissingRecordID,
		},
		{
			name:    "missing owner scope",
			mutate:  func(r *models.Record) { r.OwnerScope = "" },
			wantErr: ErrMissingOwnerScope,
		},
		{
			name:    "empty payload",
			mutate:  func(r *models.Record) { r.Payload = nil },
			wantErr: ErrInvalidPayload,
		},
		{
			name:    "malformed payload json",
			mutate:  func(r *models.Record) { r.Payload = []byte(`{"total_amount":`) },
			wantErr: ErrInvalidPayload,
		},
		{
			name:    "negative paid amount",
			mutate:  func(r *models.Record) { r.Payload = []byte(`{"total_amount":"100","paid_amount":"-5"}`) },
			wantErr: ErrNegativeAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := validSaleRecord()
			tt.mutate(&record)

			err := v.Validate(ctx, record)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRecordValidator_Validate_PayloadRules(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	tests := []struct {
		name       string
		recordType models.RecordType
		payload    string
		wantErr    error
	}{
		{
			name:       "customer needs a name",
			recordType: models.RecordTypeCustomer,
			payload:    `{"phone":"01711111111"}`,
			wantErr:    ErrMissingPayloadName,
		},
		{
			name:       "customer with name and dues is fine",
			recordType: models.RecordTypeCustomer,
			payload:    `{"name":"Rahim","due_amount":"350"}`,
		},
		{
			name:       "product needs a name",
			recordType: models.RecordTypeProduct,
			payload:    `{"unit":"kg","selling_price":"75"}`,
			wantErr:    ErrMissingPayloadName,
		},
		{
			name:       "product negative stock rejected",
			recordType: models.RecordTypeProduct,
			payload:    `{"name":"Chal","stock_qty":"-2"}`,
			wantErr:    ErrNegativeAmount,
		},
		{
			name:       "sale item with negative qty rejected",
			recordType: models.RecordTypeSale,
			payload:    `{"total_amount":"50","items":[{"name":"Dal","qty":"-1","unit_price":"50"}]}`,
			wantErr:    ErrNegativeAmount,
		},
		{
			name:       "expense amount may be zero",
			recordType: models.RecordTypeExpense,
			payload:    `{"category":"van","amount":"0"}`,
		},
		{
			name:       "collection negative amount rejected",
			recordType: models.RecordTypeCollection,
			payload:    `{"customer_id":"cust-1","amount":"-100"}`,
			wantErr:    ErrNegativeAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, models.Record{
				Type:       tt.recordType,
				ID:         "rec-1",
				OwnerScope: "shop-1",
				Payload:    []byte(tt.payload),
			})

			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRecordValidator_Validate_Mutation(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	valid := models.PendingMutation{
		MutationID: "mut-1",
		RecordType: models.RecordTypeExpense,
		RecordID:   "exp-1",
		OwnerScope: "shop-1",
		Operation:  models.OperationCreate,
		Payload:    []byte(`{"amount":"250"}`),
		EnqueuedAt: time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC),
	}

	t.Run("success: full create mutation", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, valid))
	})

	t.Run("success: delete mutation without payload", func(t *testing.T) {
		mutation := valid
		mutation.Operation = models.OperationDelete
		mutation.Payload = nil
		require.NoError(t, v.Validate(ctx, mutation))
	})

	t.Run("error: unknown operation", func(t *testing.T) {
		mutation := valid
		mutation.Operation = "merge"
		assert.ErrorIs(t, v.Validate(ctx, mutation), ErrInvalidOperation)
	})

	t.Run("error: missing mutation id", func(t *testing.T) {
		mutation := valid
		mutation.MutationID = ""
		assert.ErrorIs(t, v.Validate(ctx, mutation), ErrMissingMutationID)
	})

	t.Run("error: zero enqueue time", func(t *testing.T) {
		mutation := valid
		mutation.EnqueuedAt = time.Time{}
		assert.ErrorIs(t, v.Validate(ctx, mutation), ErrMissingEnqueuedAt)
	})
}

func TestRecordValidator_Validate_UnsupportedType(t *testing.T) {
	v := NewRecordValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}

func TestRecordValidator_Validate_FieldScoping(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	// Only the type field is checked, so the missing id passes.
	record := validSaleRecord()
	record.ID = ""
	require.NoError(t, v.Validate(ctx, record, FieldType))

	assert.ErrorIs(t, v.Validate(ctx, record, "hash"), ErrUnknownField)
}
