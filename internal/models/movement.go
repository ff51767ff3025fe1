package models

import "time"

// InventoryMovement is the persisted shape of one ledger entry. Rows are
// insert-only; there is no update path.
type InventoryMovement struct {
	MovementID    string    `json:"movementID"`
	ProductUnitID string    `json:"productUnitID"`
	WarehouseID   string    `json:"warehouseID"`
	Type          string    `json:"type"`
	Quantity      int64     `json:"quantity"`
	ReferenceType string    `json:"referenceType"`
	ReferenceID   string    `json:"referenceID"`
	LineNo        int       `json:"lineNo"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
}

// StockBalance is the materialized (product unit, warehouse) projection row.
type StockBalance struct {
	ProductUnitID string    `json:"productUnitID"`
	WarehouseID   string    `json:"warehouseID"`
	Quantity      int64     `json:"quantity"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
