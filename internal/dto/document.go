package dto

import (
	"time"

	"github.com/bvtvshop/inventory_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LineItemRequest is one document line as sent by the console. UnitAmount is
// the unit cost for goods receipts and the flat per-line refund/return amount
// for returns.
type LineItemRequest struct {
	ProductUnitID string          `json:"productUnitID" binding:"required"`
	Quantity      int64           `json:"quantity" binding:"required,gt=0"`
	UnitAmount    decimal.Decimal `json:"unitAmount"`
}

// CreateGoodsReceiptRequest creates a goods receipt in DRAFT.
type CreateGoodsReceiptRequest struct {
	WarehouseID   string            `json:"warehouseID" binding:"required"`
	SupplierID    *string           `json:"supplierID"`
	PaymentStatus *string           `json:"paymentStatus"`
	Notes         string            `json:"notes"`
	Items         []LineItemRequest `json:"items" binding:"required,min=1,dive"`
}

// CreateCustomerReturnRequest creates a customer return in DRAFT. When
// OrderID is set and Items is empty, lines are prefilled from the order.
type CreateCustomerReturnRequest struct {
	WarehouseID string            `json:"warehouseID" binding:"required"`
	CustomerID  *string           `json:"customerID"`
	OrderID     *string           `json:"orderID"`
	Reason      string            `json:"reason"`
	Items       []LineItemRequest `json:"items" binding:"omitempty,dive"`
}

// CreateSupplierReturnRequest creates a supplier return in DRAFT. When
// ReceiptID is set and Items is empty, lines and the VAT total are prefilled
// from the source goods receipt.
type CreateSupplierReturnRequest struct {
	WarehouseID string            `json:"warehouseID" binding:"required"`
	SupplierID  *string           `json:"supplierID"`
	ReceiptID   *string           `json:"receiptID"`
	Reason      string            `json:"reason"`
	TotalVAT    *decimal.Decimal  `json:"totalVat"`
	Items       []LineItemRequest `json:"items" binding:"omitempty,dive"`
}

// UpdateDocumentRequest edits a DRAFT document of any kind. Nil fields are
// left unchanged; a non-nil Items replaces the full line set.
type UpdateDocumentRequest struct {
	WarehouseID    *string            `json:"warehouseID"`
	CounterpartyID *string            `json:"counterpartyID"`
	PaymentStatus  *string            `json:"paymentStatus"`
	Reason         *string            `json:"reason"`
	Notes          *string            `json:"notes"`
	TotalVAT       *decimal.Decimal   `json:"totalVat"`
	Items          *[]LineItemRequest `json:"items" binding:"omitempty,dive"`
}

// RejectRequest carries the rejection reason. Mandatory for supplier returns.
type RejectRequest struct {
	Reason string `json:"reason"`
}

// TotalsResponse reports the derived monetary totals of a document.
type TotalsResponse struct {
	Amount decimal.Decimal `json:"amount"`
	VAT    decimal.Decimal `json:"vat"`
	Grand  decimal.Decimal `json:"grand"`
}

// LineItemResponse is one document line in a response.
type LineItemResponse struct {
	LineItemID    string          `json:"lineItemID"`
	LineNo        int             `json:"lineNo"`
	ProductUnitID string          `json:"productUnitID"`
	Quantity      int64           `json:"quantity"`
	UnitAmount    decimal.Decimal `json:"unitAmount"`
	VATRate       decimal.Decimal `json:"vatRate"`
}

// DocumentResponse is the full document representation.
type DocumentResponse struct {
	DocumentID     string             `json:"documentID"`
	Kind           string             `json:"kind"`
	DocumentNo     string             `json:"documentNo"`
	WarehouseID    string             `json:"warehouseID"`
	CounterpartyID *string            `json:"counterpartyID,omitempty"`
	SourceOrderID  *string            `json:"sourceOrderID,omitempty"`
	SourceDocID    *string            `json:"sourceDocID,omitempty"`
	Status         string             `json:"status"`
	PaymentStatus  *string            `json:"paymentStatus,omitempty"`
	Reason         string             `json:"reason,omitempty"`
	Notes          string             `json:"notes,omitempty"`
	Totals         TotalsResponse     `json:"totals"`
	Items          []LineItemResponse `json:"items"`
	ApproverID     *string            `json:"approverID,omitempty"`
	ApprovedAt     *time.Time         `json:"approvedAt,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
	CreatedBy      string             `json:"createdBy"`
	LastUpdatedAt  time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy  string             `json:"lastUpdatedBy"`
}

// TransitionResponse reports the outcome of a lifecycle transition: the new
// document state plus the ledger entries the transition created, if any.
type TransitionResponse struct {
	Document    DocumentResponse `json:"document"`
	MovementIDs []string         `json:"movementIDs,omitempty"`
}

// ListDocumentsParams paginates and filters a document list.
type ListDocumentsParams struct {
	Status    string  `form:"status"`
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListDocumentsResponse is one page of documents.
type ListDocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// ToDocumentResponse converts a domain document, computing totals.
func ToDocumentResponse(d *domain.Document) DocumentResponse {
	totals := d.ComputeTotals()
	items := make([]LineItemResponse, len(d.Lines))
	for i, l := range d.Lines {
		items[i] = LineItemResponse{
			LineItemID:    l.LineItemID,
			LineNo:        l.LineNo,
			ProductUnitID: l.ProductUnitID,
			Quantity:      l.Quantity,
			UnitAmount:    l.UnitAmount,
			VATRate:       l.VATRate,
		}
	}
	var paymentStatus *string
	if d.PaymentStatus != nil {
		s := string(*d.PaymentStatus)
		paymentStatus = &s
	}
	return DocumentResponse{
		DocumentID:     d.DocumentID,
		Kind:           string(d.Kind),
		DocumentNo:     d.DocumentNo,
		WarehouseID:    d.WarehouseID,
		CounterpartyID: d.CounterpartyID,
		SourceOrderID:  d.SourceOrderID,
		SourceDocID:    d.SourceDocID,
		Status:         string(d.Status),
		PaymentStatus:  paymentStatus,
		Reason:         d.Reason,
		Notes:          d.Notes,
		Totals: TotalsResponse{
			Amount: totals.Amount,
			VAT:    totals.VAT,
			Grand:  totals.Grand,
		},
		Items:         items,
		ApproverID:    d.ApproverID,
		ApprovedAt:    d.ApprovedAt,
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
		LastUpdatedAt: d.LastUpdatedAt,
		LastUpdatedBy: d.LastUpdatedBy,
	}
}
