package services

import (
	"context"

	"github.com/bvtvshop/inventory_backend/internal/core/domain"
	"github.com/bvtvshop/inventory_backend/internal/dto"
)

// LedgerSvcFacade exposes the stock ledger: history reads, balance
// projections, and manual (non-document) postings.
type LedgerSvcFacade interface {
	// PostManualMovement appends one admin-initiated ledger entry
	// (adjustment, transfer leg, conversion leg). Admin-only.
	PostManualMovement(ctx context.Context, req dto.CreateMovementRequest, actor domain.Actor) (*domain.InventoryMovement, error)

	// ListMovements returns ledger history ordered by creation time
	// ascending, filterable by product unit and warehouse.
	ListMovements(ctx context.Context, params dto.ListMovementsParams) ([]domain.InventoryMovement, *string, error)

	// GetBalance returns the current signed-sum projection for the pair.
	GetBalance(ctx context.Context, productUnitID, warehouseID string) (int64, error)
}
