package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Document is the persisted shape of a stock document row. One table holds
// all three kinds; kind-specific optional columns stay NULL for the others.
type Document struct {
	DocumentID     string          `json:"documentID"`
	Kind           string          `json:"kind"`
	DocumentNo     string          `json:"documentNo"`
	WarehouseID    string          `json:"warehouseID"`
	CounterpartyID *string         `json:"counterpartyID"`
	SourceOrderID  *string         `json:"sourceOrderID"`
	SourceDocID    *string         `json:"sourceDocID"`
	Status         string          `json:"status"`
	PaymentStatus  *string         `json:"paymentStatus"`
	Reason         string          `json:"reason"`
	Notes          string          `json:"notes"`
	TotalVAT       decimal.Decimal `json:"totalVat"`
	ApproverID     *string         `json:"approverID"`
	ApprovedAt     *time.Time      `json:"approvedAt"`
	AuditFields
}

// LineItem is the persisted shape of a document line.
type LineItem struct {
	LineItemID    string          `json:"lineItemID"`
	DocumentID    string          `json:"documentID"`
	LineNo        int             `json:"lineNo"`
	ProductUnitID string          `json:"productUnitID"`
	Quantity      int64           `json:"quantity"`
	UnitAmount    decimal.Decimal `json:"unitAmount"`
	VATRate       decimal.Decimal `json:"vatRate"`
}
