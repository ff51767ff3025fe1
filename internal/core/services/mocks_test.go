package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/bvtvshop/inventory_backend/internal/core/domain"
	portsrepo "github.com/bvtvshop/inventory_backend/internal/core/ports/repositories"
)

// MockDocumentRepository is a mock type for the DocumentRepositoryFacade interface
type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) FindDocumentByID(ctx context.Context, kind domain.DocumentKind, documentID string) (*domain.Document, error) {
	args := m.Called(ctx, kind, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentRepository) ListDocuments(ctx context.Context, kind domain.DocumentKind, filter portsrepo.ListDocumentsFilter) ([]domain.Document, *string, error) {
	args := m.Called(ctx, kind, filter)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.Document), next, args.Error(2)
}

func (m *MockDocumentRepository) NextDocumentNo(ctx context.Context, kind domain.DocumentKind) (string, error) {
	args := m.Called(ctx, kind)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentRepository) SaveDocument(ctx context.Context, doc domain.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockDocumentRepository) ReplaceDocument(ctx context.Context, doc domain.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockDocumentRepository) TransitionDocument(ctx context.Context, documentID string, from, to domain.DocumentStatus, reason string, actorID string, now time.Time) error {
	args := m.Called(ctx, documentID, from, to, reason, actorID, now)
	return args.Error(0)
}

// MockMovementRepository is a mock type for the MovementRepositoryFacade interface
type MockMovementRepository struct {
	mock.Mock
}

func (m *MockMovementRepository) ListMovements(ctx context.Context, filter portsrepo.ListMovementsFilter) ([]domain.InventoryMovement, *string, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.InventoryMovement), next, args.Error(2)
}

func (m *MockMovementRepository) FindMovementsByReference(ctx context.Context, referenceType, referenceID string) ([]domain.InventoryMovement, error) {
	args := m.Called(ctx, referenceType, referenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryMovement), args.Error(1)
}

func (m *MockMovementRepository) GetBalance(ctx context.Context, productUnitID, warehouseID string) (int64, error) {
	args := m.Called(ctx, productUnitID, warehouseID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMovementRepository) PostMovements(ctx context.Context, drafts []domain.MovementDraft, createdBy string, now time.Time) ([]domain.InventoryMovement, error) {
	args := m.Called(ctx, drafts, createdBy, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryMovement), args.Error(1)
}

func (m *MockMovementRepository) PostDocumentTransition(ctx context.Context, p portsrepo.PostTransitionParams) ([]domain.InventoryMovement, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryMovement), args.Error(1)
}

func (m *MockMovementRepository) ReverseDocumentPostings(ctx context.Context, p portsrepo.ReverseTransitionParams) ([]domain.InventoryMovement, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryMovement), args.Error(1)
}

// MockProductUnitRepository is a mock type for the ProductUnitRepositoryFacade interface
type MockProductUnitRepository struct {
	mock.Mock
}

func (m *MockProductUnitRepository) FindProductUnitByID(ctx context.Context, productUnitID string) (*domain.ProductUnit, error) {
	args := m.Called(ctx, productUnitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductUnit), args.Error(1)
}

func (m *MockProductUnitRepository) FindProductUnitsByIDs(ctx context.Context, productUnitIDs []string) (map[string]domain.ProductUnit, error) {
	args := m.Called(ctx, productUnitIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.ProductUnit), args.Error(1)
}

func (m *MockProductUnitRepository) ListProductUnits(ctx context.Context, limit int, offset int) ([]domain.ProductUnit, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProductUnit), args.Error(1)
}

func (m *MockProductUnitRepository) SaveProductUnit(ctx context.Context, unit domain.ProductUnit) error {
	args := m.Called(ctx, unit)
	return args.Error(0)
}

func (m *MockProductUnitRepository) UpdateProductUnit(ctx context.Context, unit domain.ProductUnit) error {
	args := m.Called(ctx, unit)
	return args.Error(0)
}

// MockWarehouseRepository is a mock type for the WarehouseRepositoryFacade interface
type MockWarehouseRepository struct {
	mock.Mock
}

func (m *MockWarehouseRepository) FindWarehouseByID(ctx context.Context, warehouseID string) (*domain.Warehouse, error) {
	args := m.Called(ctx, warehouseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) ListWarehouses(ctx context.Context, limit int, offset int) ([]domain.Warehouse, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) SaveWarehouse(ctx context.Context, warehouse domain.Warehouse) error {
	args := m.Called(ctx, warehouse)
	return args.Error(0)
}

func (m *MockWarehouseRepository) UpdateWarehouse(ctx context.Context, warehouse domain.Warehouse) error {
	args := m.Called(ctx, warehouse)
	return args.Error(0)
}

// MockProfileRepository is a mock type for the ProfileRepositoryFacade interface
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindProfileByID(ctx context.Context, profileID string) (*domain.Profile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) ListProfiles(ctx context.Context, role domain.UserRole, limit int, offset int) ([]domain.Profile, error) {
	args := m.Called(ctx, role, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) SaveProfile(ctx context.Context, profile domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) UpdateProfile(ctx context.Context, profile domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

// MockOrderRepository is a mock type for the OrderRepositoryFacade interface
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) ListOrdersByCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}
