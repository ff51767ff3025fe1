package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bvtvshop/inventory_backend/internal/apperrors"
	"github.com/bvtvshop/inventory_backend/internal/core/domain"
	portsrepo "github.com/bvtvshop/inventory_backend/internal/core/ports/repositories"
	portssvc "github.com/bvtvshop/inventory_backend/internal/core/ports/services"
	"github.com/bvtvshop/inventory_backend/internal/dto"
)

const defaultMovementListLimit = 50

// ledgerService provides read access to the movement ledger and the manual
// posting path. Document postings never pass through here; they go through
// the posting coordinator so the status advance and the ledger batch commit
// together.
type ledgerService struct {
	BaseService
	movementRepo  portsrepo.MovementRepositoryFacade
	productRepo   portsrepo.ProductUnitRepositoryFacade
	warehouseRepo portsrepo.WarehouseRepositoryFacade
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(movementRepo portsrepo.MovementRepositoryFacade, productRepo portsrepo.ProductUnitRepositoryFacade, warehouseRepo portsrepo.WarehouseRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		movementRepo:  movementRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// documentReservedTypes are movement types only the posting coordinator may
// write; a manual entry with one of these would break the audit trail back to
// its document.
var documentReservedTypes = map[domain.MovementType]bool{
	domain.MovementPurchase:  true,
	domain.MovementReturnIn:  true,
	domain.MovementReturnOut: true,
}

// PostManualMovement appends one admin-initiated ledger entry.
func (s *ledgerService) PostManualMovement(ctx context.Context, req dto.CreateMovementRequest, actor domain.Actor) (*domain.InventoryMovement, error) {
	logger := s.GetLogger(ctx)

	if !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: manual ledger postings require the ADMIN role", apperrors.ErrForbidden)
	}

	movementType := domain.MovementType(req.Type)
	if !movementType.Valid() {
		return nil, fmt.Errorf("%w: unknown movement type %q", apperrors.ErrValidation, req.Type)
	}
	if documentReservedTypes[movementType] {
		return nil, fmt.Errorf("%w: movement type %s is posted by document transitions only", apperrors.ErrValidation, movementType)
	}
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
	}

	unit, err := s.productRepo.FindProductUnitByID(ctx, req.ProductUnitID)
	if err != nil {
		return nil, fmt.Errorf("failed to find product unit %s: %w", req.ProductUnitID, err)
	}
	if !unit.IsActive {
		return nil, fmt.Errorf("%w: product unit %s is inactive", apperrors.ErrValidation, req.ProductUnitID)
	}
	if _, err := s.warehouseRepo.FindWarehouseByID(ctx, req.WarehouseID); err != nil {
		return nil, fmt.Errorf("failed to find warehouse %s: %w", req.WarehouseID, err)
	}

	draft := domain.MovementDraft{
		ProductUnitID: req.ProductUnitID,
		WarehouseID:   req.WarehouseID,
		Type:          movementType,
		Quantity:      req.Quantity,
		ReferenceType: domain.RefManual,
		ReferenceID:   uuid.NewString(),
		LineNo:        1,
		Notes:         req.Notes,
	}

	movements, err := s.movementRepo.PostMovements(ctx, []domain.MovementDraft{draft}, actor.UserID, time.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to post manual movement", "product_unit_id", req.ProductUnitID, "warehouse_id", req.WarehouseID)
		return nil, err
	}

	logger.Info("Manual movement posted", "movement_id", movements[0].MovementID, "type", string(movementType), "quantity", req.Quantity)
	return &movements[0], nil
}

// ListMovements returns ledger history ordered by creation time ascending.
func (s *ledgerService) ListMovements(ctx context.Context, params dto.ListMovementsParams) ([]domain.InventoryMovement, *string, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultMovementListLimit
	}
	filter := portsrepo.ListMovementsFilter{
		ProductUnitID: params.ProductUnitID,
		WarehouseID:   params.WarehouseID,
		Limit:         limit,
		NextToken:     params.NextToken,
	}
	movements, nextToken, err := s.movementRepo.ListMovements(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list movements")
		return nil, nil, err
	}
	return movements, nextToken, nil
}

// GetBalance returns the current signed-sum projection for the pair. Pairs
// with no movement history report zero, not a missing row.
func (s *ledgerService) GetBalance(ctx context.Context, productUnitID, warehouseID string) (int64, error) {
	balance, err := s.movementRepo.GetBalance(ctx, productUnitID, warehouseID)
	if err != nil {
		s.LogError(ctx, err, "Failed to get balance", "product_unit_id", productUnitID, "warehouse_id", warehouseID)
		return 0, err
	}
	return balance, nil
}
