package services

import (
	"context"

	"github.com/bvtvshop/inventory_backend/internal/core/domain"
	"github.com/bvtvshop/inventory_backend/internal/dto"
)

// ProductUnitSvcFacade exposes product unit reference data.
type ProductUnitSvcFacade interface {
	CreateProductUnit(ctx context.Context, req dto.CreateProductUnitRequest, actor domain.Actor) (*domain.ProductUnit, error)
	UpdateProductUnit(ctx context.Context, productUnitID string, req dto.UpdateProductUnitRequest, actor domain.Actor) (*domain.ProductUnit, error)
	GetProductUnitByID(ctx context.Context, productUnitID string) (*domain.ProductUnit, error)
	ListProductUnits(ctx context.Context, limit, offset int) ([]domain.ProductUnit, error)
}

// WarehouseSvcFacade exposes warehouse reference data.
type WarehouseSvcFacade interface {
	CreateWarehouse(ctx context.Context, req dto.CreateWarehouseRequest, actor domain.Actor) (*domain.Warehouse, error)
	UpdateWarehouse(ctx context.Context, warehouseID string, req dto.UpdateWarehouseRequest, actor domain.Actor) (*domain.Warehouse, error)
	GetWarehouseByID(ctx context.Context, warehouseID string) (*domain.Warehouse, error)
	ListWarehouses(ctx context.Context, limit, offset int) ([]domain.Warehouse, error)
}

// ProfileSvcFacade exposes counterparty profiles.
type ProfileSvcFacade interface {
	CreateProfile(ctx context.Context, req dto.CreateProfileRequest, actor domain.Actor) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, profileID string, req dto.UpdateProfileRequest, actor domain.Actor) (*domain.Profile, error)
	GetProfileByID(ctx context.Context, profileID string) (*domain.Profile, error)
	ListProfiles(ctx context.Context, params dto.ListProfilesParams) ([]domain.Profile, error)
}

// OrderSvcFacade exposes read-only order lookups for return prefill.
type OrderSvcFacade interface {
	ListOrdersByCustomer(ctx context.Context, customerID string) ([]domain.Order, error)
}
