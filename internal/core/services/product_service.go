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

// productUnitService manages product unit reference data.
type productUnitService struct {
	BaseService
	productRepo portsrepo.ProductUnitRepositoryFacade
}

// NewProductUnitService creates a new ProductUnitService.
func NewProductUnitService(productRepo portsrepo.ProductUnitRepositoryFacade) portssvc.ProductUnitSvcFacade {
	return &productUnitService{productRepo: productRepo}
}

var _ portssvc.ProductUnitSvcFacade = (*productUnitService)(nil)

func (s *productUnitService) CreateProductUnit(ctx context.Context, req dto.CreateProductUnitRequest, actor domain.Actor) (*domain.ProductUnit, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: creating product units requires the ADMIN role", apperrors.ErrForbidden)
	}
	if req.VATRate.IsNegative() {
		return nil, fmt.Errorf("%w: VAT rate must not be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	unit := domain.ProductUnit{
		ProductUnitID: uuid.NewString(),
		SKU:           req.SKU,
		Name:          req.Name,
		Unit:          req.Unit,
		VATRate:       req.VATRate,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}
	if err := s.productRepo.SaveProductUnit(ctx, unit); err != nil {
		s.LogError(ctx, err, "Failed to save product unit", "sku", req.SKU)
		return nil, err
	}
	return &unit, nil
}

// UpdateProductUnit edits a product unit. Existing document lines keep their
// VAT rate snapshot when the rate changes here.
func (s *productUnitService) UpdateProductUnit(ctx context.Context, productUnitID string, req dto.UpdateProductUnitRequest, actor domain.Actor) (*domain.ProductUnit, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: updating product units requires the ADMIN role", apperrors.ErrForbidden)
	}

	unit, err := s.productRepo.FindProductUnitByID(ctx, productUnitID)
	if err != nil {
		return nil, err
	}
	if req.SKU != nil {
		unit.SKU = *req.SKU
	}
	if req.Name != nil {
		unit.Name = *req.Name
	}
	if req.Unit != nil {
		unit.Unit = *req.Unit
	}
	if req.VATRate != nil {
		if req.VATRate.IsNegative() {
			return nil, fmt.Errorf("%w: VAT rate must not be negative", apperrors.ErrValidation)
		}
		unit.VATRate = *req.VATRate
	}
	if req.IsActive != nil {
		unit.IsActive = *req.IsActive
	}
	unit.LastUpdatedAt = time.Now()
	unit.LastUpdatedBy = actor.UserID

	if err := s.productRepo.UpdateProductUnit(ctx, *unit); err != nil {
		s.LogError(ctx, err, "Failed to update product unit", "product_unit_id", productUnitID)
		return nil, err
	}
	return unit, nil
}

func (s *productUnitService) GetProductUnitByID(ctx context.Context, productUnitID string) (*domain.ProductUnit, error) {
	return s.productRepo.FindProductUnitByID(ctx, productUnitID)
}

func (s *productUnitService) ListProductUnits(ctx context.Context, limit, offset int) ([]domain.ProductUnit, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.productRepo.ListProductUnits(ctx, limit, offset)
}
