package domain

import "time"

// MovementType enumerates the causes of a stock change. The polarity (inbound
// vs outbound) is derived from the type; the stored quantity is always
// positive.
type MovementType string

const (
	MovementPurchase      MovementType = "PURCHASE"
	MovementSale          MovementType = "SALE"
	MovementReturnIn      MovementType = "RETURN_IN"
	MovementReturnOut     MovementType = "RETURN_OUT"
	MovementTransferIn    MovementType = "TRANSFER_IN"
	MovementTransferOut   MovementType = "TRANSFER_OUT"
	MovementConversionIn  MovementType = "CONVERSION_IN"
	MovementConversionOut MovementType = "CONVERSION_OUT"
	MovementAdjustmentPos MovementType = "ADJUSTMENT_POS"
	MovementAdjustmentNeg MovementType = "ADJUSTMENT_NEG"
)

// MovementDirection is the sign a movement type applies to the balance.
type MovementDirection int

const (
	DirectionInbound  MovementDirection = 1
	DirectionOutbound MovementDirection = -1
)

// Direction returns the polarity of the movement type. Unknown types return 0.
func (t MovementType) Direction() MovementDirection {
	switch t {
	case MovementPurchase, MovementReturnIn, MovementTransferIn, MovementConversionIn, MovementAdjustmentPos:
		return DirectionInbound
	case MovementSale, MovementReturnOut, MovementTransferOut, MovementConversionOut, MovementAdjustmentNeg:
		return DirectionOutbound
	}
	return 0
}

// Valid reports whether t is a known movement type.
func (t MovementType) Valid() bool {
	return t.Direction() != 0
}

// Opposite returns the compensating movement type of the same cause with the
// reversed polarity. Used when reversing a posted document.
func (t MovementType) Opposite() MovementType {
	switch t {
	case MovementPurchase:
		return MovementReturnOut
	case MovementSale:
		return MovementReturnIn
	case MovementReturnIn:
		return MovementReturnOut
	case MovementReturnOut:
		return MovementReturnIn
	case MovementTransferIn:
		return MovementTransferOut
	case MovementTransferOut:
		return MovementTransferIn
	case MovementConversionIn:
		return MovementConversionOut
	case MovementConversionOut:
		return MovementConversionIn
	case MovementAdjustmentPos:
		return MovementAdjustmentNeg
	case MovementAdjustmentNeg:
		return MovementAdjustmentPos
	}
	return t
}

// InventoryMovement is one immutable ledger entry. Corrections are made by
// posting a compensating entry of the opposite type, never by mutation.
type InventoryMovement struct {
	MovementID    string       `json:"movementID"` // Primary Key (e.g., UUID)
	ProductUnitID string       `json:"productUnitID"`
	WarehouseID   string       `json:"warehouseID"`
	Type          MovementType `json:"type"`
	Quantity      int64        `json:"quantity"` // always positive; sign derives from Type
	ReferenceType string       `json:"referenceType"` // originating table, e.g. "goods_receipts"
	ReferenceID   string       `json:"referenceID"`   // originating document id
	LineNo        int          `json:"lineNo"`        // line ordinal within the originating document
	Notes         string       `json:"notes"`
	CreatedAt     time.Time    `json:"createdAt"`
	CreatedBy     string       `json:"createdBy"`
}

// MovementDraft is a not-yet-posted ledger entry. The (ReferenceType,
// ReferenceID, LineNo) triple is the idempotency key guarding against
// double-posting.
type MovementDraft struct {
	ProductUnitID string
	WarehouseID   string
	Type          MovementType
	Quantity      int64
	ReferenceType string
	ReferenceID   string
	LineNo        int
	Notes         string
}

// StockBalance is the materialized projection of the ledger for one
// (product unit, warehouse) pair. It must always equal the signed sum of all
// movements for that pair.
type StockBalance struct {
	ProductUnitID string    `json:"productUnitID"`
	WarehouseID   string    `json:"warehouseID"`
	Quantity      int64     `json:"quantity"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Reference types for ledger entries created by document postings. Reversal
// entries keep the same reference id and line ordinal under the _reversal
// variant so a second reversal trips the duplicate guard.
const (
	RefGoodsReceipts           = "goods_receipts"
	RefCustomerReturns         = "customer_returns"
	RefSupplierReturns         = "supplier_returns"
	RefGoodsReceiptsReversal   = "goods_receipts_reversal"
	RefCustomerReturnsReversal = "customer_returns_reversal"
	RefSupplierReturnsReversal = "supplier_returns_reversal"
	RefManual                  = "manual"
)

// ReversalReferenceType maps a posting reference type to its reversal variant.
func ReversalReferenceType(ref string) string {
	switch ref {
	case RefGoodsReceipts:
		return RefGoodsReceiptsReversal
	case RefCustomerReturns:
		return RefCustomerReturnsReversal
	case RefSupplierReturns:
		return RefSupplierReturnsReversal
	}
	return ref + "_reversal"
}
