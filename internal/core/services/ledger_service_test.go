package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bvtvshop/inventory_backend/internal/apperrors"
	"github.com/bvtvshop/inventory_backend/internal/core/domain"
	portsrepo "github.com/bvtvshop/inventory_backend/internal/core/ports/repositories"
	portssvc "github.com/bvtvshop/inventory_backend/internal/core/ports/services"
	"github.com/bvtvshop/inventory_backend/internal/core/services"
	"github.com/bvtvshop/inventory_backend/internal/dto"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockMovementRepo  *MockMovementRepository
	mockProductRepo   *MockProductUnitRepository
	mockWarehouseRepo *MockWarehouseRepository
	service           portssvc.LedgerSvcFacade

	admin domain.Actor
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockMovementRepo = new(MockMovementRepository)
	suite.mockProductRepo = new(MockProductUnitRepository)
	suite.mockWarehouseRepo = new(MockWarehouseRepository)
	suite.service = services.NewLedgerService(suite.mockMovementRepo, suite.mockProductRepo, suite.mockWarehouseRepo)
	suite.admin = domain.Actor{UserID: "admin-1", Role: domain.RoleAdmin}
}

func (suite *LedgerServiceTestSuite) TestPostManualMovement_Success() {
	ctx := context.Background()
	req := dto.CreateMovementRequest{
		ProductUnitID: "pu-1",
		WarehouseID:   "wh-1",
		Type:          string(domain.MovementAdjustmentPos),
		Quantity:      5,
		Notes:         "annual stocktake surplus",
	}
	posted := []domain.InventoryMovement{
		{MovementID: "m-1", ProductUnitID: "pu-1", WarehouseID: "wh-1", Type: domain.MovementAdjustmentPos, Quantity: 5, ReferenceType: domain.RefManual},
	}

	suite.mockProductRepo.On("FindProductUnitByID", ctx, "pu-1").
		Return(&domain.ProductUnit{ProductUnitID: "pu-1", IsActive: true}, nil).Once()
	suite.mockWarehouseRepo.On("FindWarehouseByID", ctx, "wh-1").
		Return(&domain.Warehouse{WarehouseID: "wh-1", IsActive: true}, nil).Once()
	suite.mockMovementRepo.On("PostMovements", ctx, mock.MatchedBy(func(drafts []domain.MovementDraft) bool {
		return len(drafts) == 1 &&
			drafts[0].Type == domain.MovementAdjustmentPos &&
			drafts[0].ReferenceType == domain.RefManual &&
			drafts[0].ReferenceID != "" &&
			drafts[0].LineNo == 1
	}), suite.admin.UserID, mock.AnythingOfType("time.Time")).Return(posted, nil).Once()

	movement, err := suite.service.PostManualMovement(ctx, req, suite.admin)

	suite.Require().NoError(err)
	suite.Require().NotNil(movement)
	suite.Equal("m-1", movement.MovementID)
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestPostManualMovement_RequiresAdmin() {
	ctx := context.Background()
	staff := domain.Actor{UserID: "staff-1", Role: domain.RoleStaff}

	_, err := suite.service.PostManualMovement(ctx, dto.CreateMovementRequest{
		ProductUnitID: "pu-1",
		WarehouseID:   "wh-1",
		Type:          string(domain.MovementAdjustmentNeg),
		Quantity:      1,
	}, staff)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "PostMovements", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestPostManualMovement_DocumentReservedTypeRejected() {
	ctx := context.Background()

	for _, reserved := range []domain.MovementType{domain.MovementPurchase, domain.MovementReturnIn, domain.MovementReturnOut} {
		_, err := suite.service.PostManualMovement(ctx, dto.CreateMovementRequest{
			ProductUnitID: "pu-1",
			WarehouseID:   "wh-1",
			Type:          string(reserved),
			Quantity:      1,
		}, suite.admin)
		suite.Require().ErrorIs(err, apperrors.ErrValidation, "type %s must be reserved to document postings", reserved)
	}
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "PostMovements", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestPostManualMovement_UnknownType() {
	ctx := context.Background()

	_, err := suite.service.PostManualMovement(ctx, dto.CreateMovementRequest{
		ProductUnitID: "pu-1",
		WarehouseID:   "wh-1",
		Type:          "RECOUNT",
		Quantity:      1,
	}, suite.admin)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestPostManualMovement_InactiveProduct() {
	ctx := context.Background()

	suite.mockProductRepo.On("FindProductUnitByID", ctx, "pu-1").
		Return(&domain.ProductUnit{ProductUnitID: "pu-1", IsActive: false}, nil).Once()

	_, err := suite.service.PostManualMovement(ctx, dto.CreateMovementRequest{
		ProductUnitID: "pu-1",
		WarehouseID:   "wh-1",
		Type:          string(domain.MovementTransferIn),
		Quantity:      2,
	}, suite.admin)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "PostMovements", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestListMovements_DefaultLimit() {
	ctx := context.Background()
	movements := []domain.InventoryMovement{{MovementID: "m-1"}}

	suite.mockMovementRepo.On("ListMovements", ctx, portsrepo.ListMovementsFilter{
		ProductUnitID: "pu-1",
		Limit:         50,
	}).Return(movements, nil, nil).Once()

	got, next, err := suite.service.ListMovements(ctx, dto.ListMovementsParams{ProductUnitID: "pu-1"})

	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.Nil(next)
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestGetBalance() {
	ctx := context.Background()

	suite.mockMovementRepo.On("GetBalance", ctx, "pu-1", "wh-1").Return(int64(13), nil).Once()

	balance, err := suite.service.GetBalance(ctx, "pu-1", "wh-1")

	suite.Require().NoError(err)
	suite.Equal(int64(13), balance)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
