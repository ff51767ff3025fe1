package repositories

import (
	"context"

	"github.com/bvtvshop/inventory_backend/internal/core/domain"
)

// ProductUnitRepositoryFacade defines persistence for product unit reference
// data.
type ProductUnitRepositoryFacade interface {
	FindProductUnitByID(ctx context.Context, productUnitID string) (*domain.ProductUnit, error)
	// FindProductUnitsByIDs returns the found units keyed by id; missing ids
	// are simply absent from the map.
	FindProductUnitsByIDs(ctx context.Context, productUnitIDs []string) (map[string]domain.ProductUnit, error)
	ListProductUnits(ctx context.Context, limit int, offset int) ([]domain.ProductUnit, error)
	SaveProductUnit(ctx context.Context, unit domain.ProductUnit) error
	UpdateProductUnit(ctx context.Context, unit domain.ProductUnit) error
}

// WarehouseRepositoryFacade defines persistence for warehouse reference data.
type WarehouseRepositoryFacade interface {
	FindWarehouseByID(ctx context.Context, warehouseID string) (*domain.Warehouse, error)
	ListWarehouses(ctx context.Context, limit int, offset int) ([]domain.Warehouse, error)
	SaveWarehouse(ctx context.Context, warehouse domain.Warehouse) error
	UpdateWarehouse(ctx context.Context, warehouse domain.Warehouse) error
}

// ProfileRepositoryFacade defines persistence for counterparty profiles.
type ProfileRepositoryFacade interface {
	FindProfileByID(ctx context.Context, profileID string) (*domain.Profile, error)
	// ListProfiles filters by role when role is non-empty.
	ListProfiles(ctx context.Context, role domain.UserRole, limit int, offset int) ([]domain.Profile, error)
	SaveProfile(ctx context.Context, profile domain.Profile) error
	UpdateProfile(ctx context.Context, profile domain.Profile) error
}

// OrderRepositoryFacade defines read-only access to orders for return
// prefill.
type OrderRepositoryFacade interface {
	FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID string) ([]domain.Order, error)
}
