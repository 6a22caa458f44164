package validators

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dokanlabs/dokan-hisab/models"
)

const (
	FieldType       = "type"
	FieldID         = "id"
	FieldOwnerScope = "owner_scope"
	FieldPayload    = "payload"
	FieldMutationID = "mutation_id"
	FieldOperation  = "operation"
	FieldEnqueuedAt = "enqueued_at"
)

type RecordValidator struct {
}

func NewRecordValidator() Validator {
	return &RecordValidator{}
}

func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Record:
		return v.validateRecord(ctx, value, fields...)
	case *models.Record:
		return v.validateRecord(ctx, *value, fields...)

	case models.PendingMutation:
		return v.validateMutation(ctx, value, fields...)
	case *models.PendingMutation:
		return v.validateMutation(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validateRecord(_ context.Context, record models.Record, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldType, FieldID, FieldOwnerScope, FieldPayload}
	}

	for _, f := range fields {
		switch f {
		case FieldType:
			if !record.Type.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidRecordType, record.Type)
			}
		case FieldID:
			if record.ID == "" {
				return ErrMissingRecordID
			}
		case FieldOwnerScope:
			if record.OwnerScope == "" {
				return ErrMissingOwnerScope
			}
		case FieldPayload:
			if err := validatePayload(record.Type, record.Payload); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateMutation(ctx context.Context, mutation models.PendingMutation, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMutationID, FieldType, FieldID, FieldOwnerScope, FieldOperation, FieldPayload, FieldEnqueuedAt}
	}

	for _, f := range fields {
		switch f {
		case FieldMutationID:
			if mutation.MutationID == "" {
				return ErrMissingMutationID
			}
		case FieldType:
			if !mutation.RecordType.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidRecordType, mutation.RecordType)
			}
		case FieldID:
			if mutation.RecordID == "" {
				return ErrMissingRecordID
			}
		case FieldOwnerScope:
			if mutation.OwnerScope == "" {
				return ErrMissingOwnerScope
			}
		case FieldOperation:
			if !mutation.Operation.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidOperation, mutation.Operation)
			}
		case FieldPayload:
			// Delete mutations carry no payload.
			if mutation.Operation == models.OperationDelete {
				continue
			}
			if err := validatePayload(mutation.RecordType, mutation.Payload); err != nil {
				return err
			}
		case FieldEnqueuedAt:
			if mutation.EnqueuedAt.IsZero() {
				return ErrMissingEnqueuedAt
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePayload decodes the raw payload into the typed struct for the
// record type and checks the business rules that hold for every shop:
// names on customers and products, no negative taka amounts anywhere.
func validatePayload(recordType models.RecordType, payload json.RawMessage) error {
	if len(payload) == 0 {
		return fmt.Errorf("%w: empty payload", ErrInvalidPayload)
	}

	switch recordType {
	case models.RecordTypeCustomer:
		var p models.CustomerPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
		}
		if p.Name == "" {
			return ErrMissingPayloadName
		}
		if p.DueAmount.IsNegative() || p.TotalPaid.IsNegative() {
			return ErrNegativeAmount
		}

	case models.RecordTypeProduct:
		var p models.ProductPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
		}
		if p.Name == "" {
			return ErrMissingPayloadName
		}
		if p.PurchasePrice.IsNegative() || p.SellingPrice.IsNegative() || p.StockQty.IsNegative() {
			return ErrNegativeAmount
		}

	case models.RecordTypeSale:
		var p models.SalePayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
		}
		if p.TotalAmount.IsNegative() || p.PaidAmount.IsNegative() || p.DueAmount.IsNegative() {
			return ErrNegativeAmount
		}
		for _, item := range p.Items {
			if item.Qty.IsNegative() || item.UnitPrice.IsNegative() {
				return ErrNegativeAmount
			}
		}

	case models.RecordTypeExpense:
		var p models.ExpensePayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
		}
		if p.Amount.IsNegative() {
			return ErrNegativeAmount
		}

	case models.RecordTypeCollection:
		var p models.CollectionPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
		}
		if p.Amount.IsNegative() {
			return ErrNegativeAmount
		}

	default:
		return fmt.Errorf("%w: %q", ErrInvalidRecordType, recordType)
	}

	return nil
}
