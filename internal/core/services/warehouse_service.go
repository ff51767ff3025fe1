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

// warehouseService manages warehouse reference data.
type warehouseService struct {
	BaseService
	warehouseRepo portsrepo.WarehouseRepositoryFacade
}

// NewWarehouseService creates a new WarehouseService.
func NewWarehouseService(warehouseRepo portsrepo.WarehouseRepositoryFacade) portssvc.WarehouseSvcFacade {
	return &warehouseService{warehouseRepo: warehouseRepo}
}

var _ portssvc.WarehouseSvcFacade = (*warehouseService)(nil)

func (s *warehouseService) CreateWarehouse(ctx context.Context, req dto.CreateWarehouseRequest, actor domain.Actor) (*domain.Warehouse, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: creating warehouses requires the ADMIN role", apperrors.ErrForbidden)
	}

	now := time.Now()
	warehouse := domain.Warehouse{
		WarehouseID: uuid.NewString(),
		Name:        req.Name,
		Address:     req.Address,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}
	if err := s.warehouseRepo.SaveWarehouse(ctx, warehouse); err != nil {
		s.LogError(ctx, err, "Failed to save warehouse", "name", req.Name)
		return nil, err
	}
	return &warehouse, nil
}

func (s *warehouseService) UpdateWarehouse(ctx context.Context, warehouseID string, req dto.UpdateWarehouseRequest, actor domain.Actor) (*domain.Warehouse, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: updating warehouses requires the ADMIN role", apperrors.ErrForbidden)
	}

	warehouse, err := s.warehouseRepo.FindWarehouseByID(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		warehouse.Name = *req.Name
	}
	if req.Address != nil {
		warehouse.Address = *req.Address
	}
	if req.IsActive != nil {
		warehouse.IsActive = *req.IsActive
	}
	warehouse.LastUpdatedAt = time.Now()
	warehouse.LastUpdatedBy = actor.UserID

	if err := s.warehouseRepo.UpdateWarehouse(ctx, *warehouse); err != nil {
		s.LogError(ctx, err, "Failed to update warehouse", "warehouse_id", warehouseID)
		return nil, err
	}
	return warehouse, nil
}

func (s *warehouseService) GetWarehouseByID(ctx context.Context, warehouseID string) (*domain.Warehouse, error) {
	return s.warehouseRepo.FindWarehouseByID(ctx, warehouseID)
}

func (s *warehouseService) ListWarehouses(ctx context.Context, limit, offset int) ([]domain.Warehouse, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.warehouseRepo.ListWarehouses(ctx, limit, offset)
}
