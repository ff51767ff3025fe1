package domain

import (
	"fmt"
	"time"

	"github.com/bvtvshop/inventory_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// DocumentKind tags the variant of a stock document. The three kinds share
// one record shape; the kind selects the applicable transition table and
// totals formula.
type DocumentKind string

const (
	KindGoodsReceipt   DocumentKind = "GOODS_RECEIPT"
	KindCustomerReturn DocumentKind = "CUSTOMER_RETURN"
	KindSupplierReturn DocumentKind = "SUPPLIER_RETURN"
)

// ReferenceType returns the ledger reference table name for the kind.
func (k DocumentKind) ReferenceType() string {
	switch k {
	case KindGoodsReceipt:
		return RefGoodsReceipts
	case KindCustomerReturn:
		return RefCustomerReturns
	case KindSupplierReturn:
		return RefSupplierReturns
	}
	return ""
}

// DocumentStatus is the lifecycle state of a document.
type DocumentStatus string

const (
	StatusDraft     DocumentStatus = "DRAFT"
	StatusPending   DocumentStatus = "PENDING"
	StatusConfirmed DocumentStatus = "CONFIRMED"
	StatusApproved  DocumentStatus = "APPROVED"
	StatusInTransit DocumentStatus = "IN_TRANSIT"
	StatusCompleted DocumentStatus = "COMPLETED"
	StatusRejected  DocumentStatus = "REJECTED"
	StatusCancelled DocumentStatus = "CANCELLED"
)

// IsTerminal reports whether the status accepts no further transitions.
func (s DocumentStatus) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// PaymentStatus tracks settlement of a goods receipt. It has no stock effect.
type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "UNPAID"
	PaymentPaid   PaymentStatus = "PAID"
)

// LineItem is one line of a document. Owned exclusively by its parent; the
// VAT rate is snapshotted from the product unit at line creation time so
// totals never change retroactively.
//
// UnitAmount is the unit cost for goods receipts and the flat per-line
// refund/return amount for the two return kinds.
type LineItem struct {
	LineItemID    string          `json:"lineItemID"` // Primary Key (e.g., UUID)
	DocumentID    string          `json:"documentID"`
	LineNo        int             `json:"lineNo"` // 1-based ordinal, part of the posting idempotency key
	ProductUnitID string          `json:"productUnitID"`
	Quantity      int64           `json:"quantity"`   // > 0
	UnitAmount    decimal.Decimal `json:"unitAmount"` // >= 0
	VATRate       decimal.Decimal `json:"vatRate"`    // snapshot, fraction
}

// DocumentTotals are the derived monetary totals of a document.
type DocumentTotals struct {
	Amount decimal.Decimal `json:"amount"`
	VAT    decimal.Decimal `json:"vat"`
	Grand  decimal.Decimal `json:"grand"`
}

// Document is a stock document: a goods receipt, a customer return, or a
// supplier return, depending on Kind.
type Document struct {
	DocumentID     string         `json:"documentID"` // Primary Key (e.g., UUID)
	Kind           DocumentKind   `json:"kind"`
	DocumentNo     string         `json:"documentNo"` // human-readable sequence number, immutable after first persist
	WarehouseID    string         `json:"warehouseID"`
	CounterpartyID *string        `json:"counterpartyID,omitempty"` // supplier or customer profile
	SourceOrderID  *string        `json:"sourceOrderID,omitempty"`  // customer return only
	SourceDocID    *string        `json:"sourceDocID,omitempty"`    // supplier return only: originating goods receipt
	Status         DocumentStatus `json:"status"`
	PaymentStatus  *PaymentStatus `json:"paymentStatus,omitempty"` // goods receipt only
	Reason         string         `json:"reason"`                  // return reason / rejection reason
	Notes          string         `json:"notes"`
	TotalVAT       decimal.Decimal `json:"totalVat"` // supplier return: document-level VAT being reversed
	Lines          []LineItem      `json:"lines"`
	ApproverID     *string         `json:"approverID,omitempty"`
	ApprovedAt     *time.Time      `json:"approvedAt,omitempty"`
	AuditFields
}

// Editable reports whether line mutators are currently legal.
func (d *Document) Editable() bool {
	return d.Status == StatusDraft
}

// AddLine appends a line item. Legal only while the document is in DRAFT.
func (d *Document) AddLine(item LineItem) error {
	if !d.Editable() {
		return fmt.Errorf("%w: cannot add line while status is %s", apperrors.ErrInvalidState, d.Status)
	}
	item.DocumentID = d.DocumentID
	item.LineNo = len(d.Lines) + 1
	d.Lines = append(d.Lines, item)
	return nil
}

// RemoveLine deletes the line at the given zero-based index and renumbers the
// remaining lines. Legal only while the document is in DRAFT.
func (d *Document) RemoveLine(index int) error {
	if !d.Editable() {
		return fmt.Errorf("%w: cannot remove line while status is %s", apperrors.ErrInvalidState, d.Status)
	}
	if index < 0 || index >= len(d.Lines) {
		return fmt.Errorf("%w: line index %d out of range", apperrors.ErrValidation, index)
	}
	d.Lines = append(d.Lines[:index], d.Lines[index+1:]...)
	for i := range d.Lines {
		d.Lines[i].LineNo = i + 1
	}
	return nil
}

// UpdateLine replaces the mutable fields of the line at the given zero-based
// index. The VAT rate snapshot is kept unless the product changes, in which
// case the caller must supply the new snapshot. Legal only in DRAFT.
func (d *Document) UpdateLine(index int, item LineItem) error {
	if !d.Editable() {
		return fmt.Errorf("%w: cannot update line while status is %s", apperrors.ErrInvalidState, d.Status)
	}
	if index < 0 || index >= len(d.Lines) {
		return fmt.Errorf("%w: line index %d out of range", apperrors.ErrValidation, index)
	}
	existing := &d.Lines[index]
	existing.ProductUnitID = item.ProductUnitID
	existing.Quantity = item.Quantity
	existing.UnitAmount = item.UnitAmount
	existing.VATRate = item.VATRate
	return nil
}

// ComputeTotals derives the monetary totals for the document's current lines.
// Pure over the line items (plus the document-level VAT for supplier
// returns); insertion order is irrelevant.
func (d *Document) ComputeTotals() DocumentTotals {
	amount := decimal.Zero
	vat := decimal.Zero
	switch d.Kind {
	case KindGoodsReceipt:
		// Per-line: amount = qty x unit cost, VAT = amount x snapshot rate.
		for _, l := range d.Lines {
			lineAmount := l.UnitAmount.Mul(decimal.NewFromInt(l.Quantity))
			amount = amount.Add(lineAmount)
			vat = vat.Add(lineAmount.Mul(l.VATRate))
		}
	case KindCustomerReturn:
		// Simple sum of flat per-line refund amounts, no VAT split.
		for _, l := range d.Lines {
			amount = amount.Add(l.UnitAmount)
		}
	case KindSupplierReturn:
		// Per-line return amounts plus one document-level VAT field.
		for _, l := range d.Lines {
			amount = amount.Add(l.UnitAmount)
		}
		vat = d.TotalVAT
	}
	return DocumentTotals{Amount: amount, VAT: vat, Grand: amount.Add(vat)}
}

// PrefillFromOrder copies order lines into a customer return: product,
// quantity, and refund = unit price x quantity. One-time copy, not a live
// link.
func (d *Document) PrefillFromOrder(order Order) error {
	if d.Kind != KindCustomerReturn {
		return fmt.Errorf("%w: only customer returns prefill from orders", apperrors.ErrValidation)
	}
	if !d.Editable() {
		return fmt.Errorf("%w: cannot prefill while status is %s", apperrors.ErrInvalidState, d.Status)
	}
	d.SourceOrderID = &order.OrderID
	d.Lines = d.Lines[:0]
	for _, it := range order.Items {
		if err := d.AddLine(LineItem{
			ProductUnitID: it.ProductUnitID,
			Quantity:      it.Quantity,
			UnitAmount:    it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity)),
		}); err != nil {
			return err
		}
	}
	return nil
}

// PrefillFromReceipt copies goods receipt lines into a supplier return:
// product, quantity, amount = unit cost x quantity, plus the receipt's VAT
// total. One-time copy, not a live link.
func (d *Document) PrefillFromReceipt(receipt Document) error {
	if d.Kind != KindSupplierReturn {
		return fmt.Errorf("%w: only supplier returns prefill from receipts", apperrors.ErrValidation)
	}
	if receipt.Kind != KindGoodsReceipt {
		return fmt.Errorf("%w: source document %s is not a goods receipt", apperrors.ErrValidation, receipt.DocumentID)
	}
	if !d.Editable() {
		return fmt.Errorf("%w: cannot prefill while status is %s", apperrors.ErrInvalidState, d.Status)
	}
	d.SourceDocID = &receipt.DocumentID
	d.Lines = d.Lines[:0]
	for _, l := range receipt.Lines {
		if err := d.AddLine(LineItem{
			ProductUnitID: l.ProductUnitID,
			Quantity:      l.Quantity,
			UnitAmount:    l.UnitAmount.Mul(decimal.NewFromInt(l.Quantity)),
			VATRate:       l.VATRate,
		}); err != nil {
			return err
		}
	}
	d.TotalVAT = receipt.ComputeTotals().VAT
	return nil
}
