// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dokan Labs

package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// RecordType identifies one of the fixed ledger record kinds a shop keeps.
type RecordType string

const (
	RecordTypeCustomer   RecordType = "customer"
	RecordTypeProduct    RecordType = "product"
	RecordTypeSale       RecordType = "sale"
	RecordTypeExpense    RecordType = "expense"
	RecordTypeCollection RecordType = "collection"
)

// RecordTypes lists every supported record type in a stable order.
var RecordTypes = []RecordType{
	RecordTypeCustomer,
	RecordTypeProduct,
	RecordTypeSale,
	RecordTypeExpense,
	RecordTypeCollection,
}

// Valid reports whether t is one of the supported record types.
func (t RecordType) Valid() bool {
	switch t {
	case RecordTypeCustomer, RecordTypeProduct, RecordTypeSale,
		RecordTypeExpense, RecordTypeCollection:
		return true
	}
	return false
}

// Record is one ledger entry as it travels between the client cache and the
// remote store. The sync core treats Payload as opaque JSON; only the facade
// and the server validate it against the typed payload structs below.
//
// OwnerScope is always carried on the record itself. Nothing in the sync path
// may rely on an ambient "current shop" value.
type Record struct {
	Type       RecordType      `json:"type"`
	ID         string          `json:"id"`
	OwnerScope string          `json:"owner_scope"`
	Payload    json.RawMessage `json:"payload"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// CustomerPayload describes a credit customer of the shop.
type CustomerPayload struct {
	Name      string          `json:"name"`
	Phone     string          `json:"phone,omitempty"`
	Address   string          `json:"address,omitempty"`
	DueAmount decimal.Decimal `json:"due_amount"`
	TotalPaid decimal.Decimal `json:"total_paid"`
	Note      string          `json:"note,omitempty"`
}

// ProductPayload describes an item the shop sells.
type ProductPayload struct {
	Name          string          `json:"name"`
	Unit          string          `json:"unit,omitempty"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	StockQty      decimal.Decimal `json:"stock_qty"`
}

// SalePayload describes one sale, cash or on credit.
type SalePayload struct {
	CustomerID  string          `json:"customer_id,omitempty"`
	Items       []SaleItem      `json:"items,omitempty"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	PaidAmount  decimal.Decimal `json:"paid_amount"`
	DueAmount   decimal.Decimal `json:"due_amount"`
	SoldAt      time.Time       `json:"sold_at"`
	Note        string          `json:"note,omitempty"`
}

// SaleItem is one line of a sale.
type SaleItem struct {
	ProductID string          `json:"product_id,omitempty"`
	Name      string          `json:"name"`
	Qty       decimal.Decimal `json:"qty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// ExpensePayload describes a shop expense.
type ExpensePayload struct {
	Category string          `json:"category,omitempty"`
	Amount   decimal.Decimal `json:"amount"`
	SpentAt  time.Time       `json:"spent_at"`
	Note     string          `json:"note,omitempty"`
}

// CollectionPayload describes a due collection from a credit customer.
type CollectionPayload struct {
	CustomerID  string          `json:"customer_id"`
	Amount      decimal.Decimal `json:"amount"`
	CollectedAt time.Time       `json:"collected_at"`
	Note        string          `json:"note,omitempty"`
}
