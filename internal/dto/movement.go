package dto

import (
	"time"

	"github.com/bvtvshop/inventory_backend/internal/core/domain"
)

// CreateMovementRequest posts one manual ledger entry (stock correction,
// transfer or conversion leg). Document postings never use this path.
type CreateMovementRequest struct {
	ProductUnitID string `json:"productUnitID" binding:"required"`
	WarehouseID   string `json:"warehouseID" binding:"required"`
	Type          string `json:"type" binding:"required,movementtype"`
	Quantity      int64  `json:"quantity" binding:"required,gt=0"`
	Notes         string `json:"notes"`
}

// MovementResponse is one ledger entry in a response.
type MovementResponse struct {
	MovementID    string    `json:"movementID"`
	ProductUnitID string    `json:"productUnitID"`
	WarehouseID   string    `json:"warehouseID"`
	Type          string    `json:"type"`
	Quantity      int64     `json:"quantity"`
	ReferenceType string    `json:"referenceType,omitempty"`
	ReferenceID   string    `json:"referenceID,omitempty"`
	LineNo        int       `json:"lineNo,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
}

// ListMovementsParams filters and paginates the ledger history read.
type ListMovementsParams struct {
	ProductUnitID string  `form:"productUnitID"`
	WarehouseID   string  `form:"warehouseID"`
	Limit         int     `form:"limit"`
	NextToken     *string `form:"nextToken"`
}

// ListMovementsResponse is one page of ledger entries.
type ListMovementsResponse struct {
	Movements []MovementResponse `json:"movements"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// BalanceResponse reports the current projected stock for a pair.
type BalanceResponse struct {
	ProductUnitID string `json:"productUnitID"`
	WarehouseID   string `json:"warehouseID"`
	Quantity      int64  `json:"quantity"`
}

// ToMovementResponse converts a domain movement.
func ToMovementResponse(m domain.InventoryMovement) MovementResponse {
	return MovementResponse{
		MovementID:    m.MovementID,
		ProductUnitID: m.ProductUnitID,
		WarehouseID:   m.WarehouseID,
		Type:          string(m.Type),
		Quantity:      m.Quantity,
		ReferenceType: m.ReferenceType,
		ReferenceID:   m.ReferenceID,
		LineNo:        m.LineNo,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
	}
}

// ToMovementResponses converts a slice of domain movements.
func ToMovementResponses(ms []domain.InventoryMovement) []MovementResponse {
	out := make([]MovementResponse, len(ms))
	for i, m := range ms {
		out[i] = ToMovementResponse(m)
	}
	return out
}
