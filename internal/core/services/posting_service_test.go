package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bvtvshop/inventory_backend/internal/apperrors"
	"github.com/bvtvshop/inventory_backend/internal/core/domain"
	portsrepo "github.com/bvtvshop/inventory_backend/internal/core/ports/repositories"
	portssvc "github.com/bvtvshop/inventory_backend/internal/core/ports/services"
	"github.com/bvtvshop/inventory_backend/internal/core/services"
)

type PostingServiceTestSuite struct {
	suite.Suite
	mockDocumentRepo *MockDocumentRepository
	mockMovementRepo *MockMovementRepository
	mockProductRepo  *MockProductUnitRepository
	service          portssvc.PostingSvcFacade

	admin domain.Actor
	staff domain.Actor
}

func (suite *PostingServiceTestSuite) SetupTest() {
	suite.mockDocumentRepo = new(MockDocumentRepository)
	suite.mockMovementRepo = new(MockMovementRepository)
	suite.mockProductRepo = new(MockProductUnitRepository)
	suite.service = services.NewPostingService(suite.mockDocumentRepo, suite.mockMovementRepo, suite.mockProductRepo)
	suite.admin = domain.Actor{UserID: "admin-1", Role: domain.RoleAdmin}
	suite.staff = domain.Actor{UserID: "staff-1", Role: domain.RoleStaff}
}

func (suite *PostingServiceTestSuite) goodsReceipt(status domain.DocumentStatus) *domain.Document {
	return &domain.Document{
		DocumentID:  "gr-1",
		Kind:        domain.KindGoodsReceipt,
		DocumentNo:  "GR-000001",
		WarehouseID: "wh-1",
		Status:      status,
		Lines: []domain.LineItem{
			{
				LineItemID:    "li-1",
				DocumentID:    "gr-1",
				LineNo:        1,
				ProductUnitID: "pu-1",
				Quantity:      10,
				UnitAmount:    decimal.NewFromInt(1000),
				VATRate:       decimal.NewFromFloat(0.10),
			},
		},
	}
}

func (suite *PostingServiceTestSuite) activeUnits(ids ...string) map[string]domain.ProductUnit {
	units := make(map[string]domain.ProductUnit, len(ids))
	for _, id := range ids {
		units[id] = domain.ProductUnit{ProductUnitID: id, IsActive: true}
	}
	return units
}

func (suite *PostingServiceTestSuite) TestConfirmGoodsReceipt_PostsPurchase() {
	ctx := context.Background()
	draft := suite.goodsReceipt(domain.StatusDraft)
	confirmed := suite.goodsReceipt(domain.StatusConfirmed)
	posted := []domain.InventoryMovement{
		{MovementID: "m-1", ProductUnitID: "pu-1", WarehouseID: "wh-1", Type: domain.MovementPurchase, Quantity: 10},
	}

	suite.mockDocumentRepo.On("FindDocumentByID", ctx, domain.KindGoodsReceipt, "gr-1").Return(draft, nil).Once()
	suite.mockProductRepo.On("FindProductUnitsByIDs", ctx, []string{"pu-1"}).Return(suite.activeUnits("pu-1"), nil).Once()
	suite.mockMovementRepo.On("PostDocumentTransition", ctx, mock.MatchedBy(func(p portsrepo.PostTransitionParams) bool {
		return p.DocumentID == "gr-1" &&
			p.FromStatus == domain.StatusDraft &&
			p.ToStatus == domain.StatusConfirmed &&
			len(p.Drafts) == 1 &&
			p.Drafts[0].Type == domain.MovementPurchase &&
			p.Drafts[0].Quantity == 10 &&
			p.Drafts[0].ReferenceType == domain.RefGoodsReceipts &&
			p.Drafts[0].ReferenceID == "gr-1" &&
			p.Drafts[0].LineNo == 1
	})).Return(posted, nil).Once()
	suite.mockDocumentRepo.On("FindDocumentByID", ctx, domain.KindGoodsReceipt, "gr-1").Return(confirmed, nil).Once()

	result, err := suite.service.Transition(ctx, domain.KindGoodsReceipt, "gr-1", domain.ActionConfirm, "", suite.admin)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal(domain.StatusConfirmed, result.Document.Status)
	suite.Require().Len(result.Movements, 1)
	suite.Equal(domain.MovementPurchase, result.Movements[0].Type)
	suite.mockDocumentRepo.AssertExpectations(suite.T())
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestConfirm_RequiresAdmin() {
	ctx := context.Background()

	_, err := suite.service.Transition(ctx, domain.KindGoodsReceipt, "gr-1", domain.ActionConfirm, "", suite.staff)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockDocumentRepo.AssertNotCalled(suite.T(), "FindDocumentByID", mock.Anything, mock.Anything, mock.Anything)
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "PostDocumentTransition", mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestConfirm_AlreadyConfirmedIsInvalidState() {
	ctx := context.Background()
	confirmed := suite.goodsReceipt(domain.StatusConfirmed)

	suite.mockDocumentRepo.On("FindDocumentByID", ctx, domain.KindGoodsReceipt, "gr-1").Return(confirmed, nil).Once()

	_, err := suite.service.Transition(ctx, domain.KindGoodsReceipt, "gr-1", domain.ActionConfirm, "", suite.admin)

	suite.Require().ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "PostDocumentTransition", mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestConfirm_ZeroLinesRejected() {
	ctx := context.Background()
	draft := suite.goodsReceipt(domain.StatusDraft)
	draft.Lines = nil

	suite.mockDocumentRepo.On("FindDocumentByID", ctx, domain.KindGoodsReceipt, "gr-1").Return(draft, nil).Once()

	_, err := suite.service.Transition(ctx, domain.KindGoodsReceipt, "gr-1", domain.ActionConfirm, "", suite.admin)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "PostDocumentTransition", mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestSubmitCustomerReturn_OpenToAuthor() {
	ctx := context.Background()
	draft := &domain.Document{
		DocumentID: "cr-1",
		Kind:       domain.KindCustomerReturn,
		Status:     domain.StatusDraft,
		Lines:      []domain.LineItem{{LineNo: 1, ProductUnitID: "pu-1", Quantity: 3, UnitAmount: decimal.NewFromInt(300)}},
	}
	pending := &domain.Document{DocumentID: "cr-1", Kind: domain.KindCustomerReturn, Status: domain.StatusPending}

	suite.mockDocumentRepo.On("FindDocumentByID", ctx, domain.KindCustomerReturn, "cr-1").Return(draft, nil).Once()
	suite.mockDocumentRepo.On("TransitionDocument", ctx, "cr-1", domain.StatusDraft, domain.StatusPending, "", suite.staff.UserID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockDocumentRepo.On("FindDocumentByID", ctx, domain.KindCustomerReturn, "cr-1").Return(pending, nil).Once()

	result, err := suite.service.Transition(ctx, domain.KindCustomerReturn, "cr-1", domain.ActionSubmit, "", suite.staff)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPending, result.Document.Status)
	suite.Empty(result.Movements, "submit has no stock effect")
	suite.mockDocumentRepo.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestApproveCustomerReturn_PostsReturnIn() {
	ctx := context.Background()
	pending := &domain.Document{
		DocumentID:  "cr-1",
		Kind:        domain.KindCustomerReturn,
		WarehouseID: "wh-1",
		Status:      domain.StatusPending,
		Lines:       []domain.LineItem{{LineNo: 1, ProductUnitID: "pu-1", Quantity: 3, UnitAmount: decimal.NewFromInt(300)}},
	}
	approved := &domain.Document{DocumentID: "cr-1", Kind: domain.KindCustomerReturn, Status: domain.StatusApproved}
	posted := []domain.InventoryMovement{
		{MovementID: "m-2", ProductUnitID: "pu-1", WarehouseID: "wh-1", Type: domain.MovementReturnIn, Quantity: 3},
	}

	suite.mockDocumentRepo.On("FindDocumentByID", ctx, domain.KindCustomerReturn, "cr-1").Return(pending, nil).Once()
	suite.mockProductRepo.On("FindProductUnitsByIDs", ctx, []string{"pu-1"}).Return(suite.activeUnits("pu-1"), nil).Once()
	suite.mockMovementRepo.On("PostDocumentTransition", ctx, mock.MatchedBy(func(p portsrepo.PostTransitionParams) bool {
		return p.ToStatus == domain.StatusApproved &&
			len(p.Drafts) == 1 &&
			p.Drafts[0].Type == domain.MovementReturnIn &&
			p.Drafts[0].ReferenceType == domain.RefCustomerReturns
	})).Return(posted, nil).Once()
	suite.mockDocumentRepo.On("FindDocumentByID", ctx, domain.KindCustomerReturn, "cr-1").Return(approved, nil).Once()

	result, err := suite.service.Transition(ctx, domain.KindCustomerReturn, "cr-1", domain.ActionApprove, "", suite.admin)

	suite.Require().NoError(err)
	suite.Require().Len(result.Movements, 1)
	suite.Equal(domain.MovementReturnIn, result.Movements[0].Type)
}

func (suite *PostingServiceTestSuite) TestApproveSupplierReturn_InsufficientStock() {
	ctx := context.Background()
	pending := &domain.Document{
		DocumentID:  "sr-1",
		Kind:        domain.KindSupplierReturn,
		WarehouseID: "wh-1",
		Status:      domain.StatusPending,
		Lines:       []domain.LineItem{{LineNo: 1, ProductUnitID: "pu-1", Quantity: 15, UnitAmount: decimal.NewFromInt(100)}},
	}

	suite.mockDocumentRepo.On("FindDocumentByID", ctx, domain.KindSupplierReturn, "sr-1").Return(pending, nil).Once()
	suite.mockProductRepo.On("FindProductUnitsByIDs", ctx, []string{"pu-1"}).Return(suite.activeUnits("pu-1"), nil).Once()
	suite.mockMovementRepo.On("GetBalance", ctx, "pu-1", "wh-1").Return(int64(10), nil).Once()

	_, err := suite.service.Transition(ctx, domain.KindSupplierReturn, "sr-1", domain.ActionApprove, "", suite.admin)

	suite.Require().ErrorIs(err, apperrors.ErrInsufficientStock)
	suite.Contains(err.Error(), "have 10, need 15")
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "PostDocumentTransition", mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestRejectSupplierReturn_RequiresReason() {
	ctx := context.Background()
	pending := &domain.Document{
		DocumentID: "sr-1",
		Kind:       domain.KindSupplierReturn,
		Status:     domain.StatusPending,
		Lines:      []domain.LineItem{{LineNo: 1, ProductUnitID: "pu-1", Quantity: 1, UnitAmount: decimal.NewFromInt(50)}},
	}

	suite.mockDocumentRepo.On("FindDocumentByID", ctx, domain.KindSupplierReturn, "sr-1").Return(pending, nil).Once()

	_, err := suite.service.Transition(ctx, domain.KindSupplierReturn, "sr-1", domain.ActionReject, "   ", suite.admin)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockDocumentRepo.AssertNotCalled(suite.T(), "TransitionDocument", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestRejectSupplierReturn_WithReason() {
	ctx := context.Background()
	pending := &domain.Document{
		DocumentID: "sr-1",
		Kind:       domain.KindSupplierReturn,
		Status:     domain.StatusPending,
		Lines:      []domain.LineItem{{LineNo: 1, ProductUnitID: "pu-1", Quantity: 1, UnitAmount: decimal.NewFromInt(50)}},
	}
	rejected := &domain.Document{DocumentID: "sr-1", Kind: domain.KindSupplierReturn, Status: domain.StatusRejected, Reason: "damaged in our warehouse"}

	suite.mockDocumentRepo.On("FindDocumentByID", ctx, domain.KindSupplierReturn, "sr-1").Return(pending, nil).Once()
	suite.mockDocumentRepo.On("TransitionDocument", ctx, "sr-1", domain.StatusPending, domain.StatusRejected, "damaged in our warehouse", suite.admin.UserID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockDocumentRepo.On("FindDocumentByID", ctx, domain.KindSupplierReturn, "sr-1").Return(rejected, nil).Once()

	result, err := suite.service.Transition(ctx, domain.KindSupplierReturn, "sr-1", domain.ActionReject, "damaged in our warehouse", suite.admin)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusRejected, result.Document.Status)
	suite.Empty(result.Movements)
}

func (suite *PostingServiceTestSuite) TestCancelAfterPost_ReversesLedger() {
	ctx := context.Background()
	approved := &domain.Document{
		DocumentID:  "cr-1",
		Kind:        domain.KindCustomerReturn,
		WarehouseID: "wh-1",
		Status:      domain.StatusApproved,
		Lines:       []domain.LineItem{{LineNo: 1, ProductUnitID: "pu-1", Quantity: 3, UnitAmount: decimal.NewFromInt(300)}},
	}
	cancelled := &domain.Document{DocumentID: "cr-1", Kind: domain.KindCustomerReturn, Status: domain.StatusCancelled}
	reversals := []domain.InventoryMovement{
		{
			MovementID:    "m-9",
			ProductUnitID: "pu-1",
			WarehouseID:   "wh-1",
			Type:          domain.MovementReturnOut,
			Quantity:      3,
			ReferenceType: domain.RefCustomerReturnsReversal,
			ReferenceID:   "cr-1",
			LineNo:        1,
		},
	}

	suite.mockDocumentRepo.On("FindDocumentByID", ctx, domain.KindCustomerReturn, "cr-1").Return(approved, nil).Once()
	suite.mockMovementRepo.On("ReverseDocumentPostings", ctx, mock.MatchedBy(func(p portsrepo.ReverseTransitionParams) bool {
		return p.DocumentID == "cr-1" &&
			p.FromStatus == domain.StatusApproved &&
			p.ToStatus == domain.StatusCancelled
	})).Return(reversals, nil).Once()
	suite.mockDocumentRepo.On("FindDocumentByID", ctx, domain.KindCustomerReturn, "cr-1").Return(cancelled, nil).Once()

	result, err := suite.service.Transition(ctx, domain.KindCustomerReturn, "cr-1", domain.ActionCancel, "", suite.admin)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusCancelled, result.Document.Status)
	suite.Require().Len(result.Movements, 1)
	suite.Equal(domain.MovementReturnOut, result.Movements[0].Type, "reversal flips the posted polarity")
	suite.Equal(domain.RefCustomerReturnsReversal, result.Movements[0].ReferenceType)
}

func (suite *PostingServiceTestSuite) TestCancelTwice_Conflicts() {
	ctx := context.Background()
	cancelled := &domain.Document{DocumentID: "gr-1", Kind: domain.KindGoodsReceipt, Status: domain.StatusCancelled}

	suite.mockDocumentRepo.On("FindDocumentByID", ctx, domain.KindGoodsReceipt, "gr-1").Return(cancelled, nil).Once()

	_, err := suite.service.Transition(ctx, domain.KindGoodsReceipt, "gr-1", domain.ActionCancel, "", suite.admin)

	suite.Require().ErrorIs(err, apperrors.ErrConflict)
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "ReverseDocumentPostings", mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestCancelDraft_NoLedgerTouch() {
	ctx := context.Background()
	draft := suite.goodsReceipt(domain.StatusDraft)
	cancelled := suite.goodsReceipt(domain.StatusCancelled)

	suite.mockDocumentRepo.On("FindDocumentByID", ctx, domain.KindGoodsReceipt, "gr-1").Return(draft, nil).Once()
	suite.mockDocumentRepo.On("TransitionDocument", ctx, "gr-1", domain.StatusDraft, domain.StatusCancelled, "", suite.admin.UserID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockDocumentRepo.On("FindDocumentByID", ctx, domain.KindGoodsReceipt, "gr-1").Return(cancelled, nil).Once()

	result, err := suite.service.Transition(ctx, domain.KindGoodsReceipt, "gr-1", domain.ActionCancel, "", suite.admin)

	suite.Require().NoError(err)
	suite.Empty(result.Movements, "a draft has posted nothing, so cancel reverses nothing")
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "ReverseDocumentPostings", mock.Anything, mock.Anything)
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "PostDocumentTransition", mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestConfirm_InactiveProductRejected() {
	ctx := context.Background()
	draft := suite.goodsReceipt(domain.StatusDraft)
	units := map[string]domain.ProductUnit{
		"pu-1": {ProductUnitID: "pu-1", IsActive: false},
	}

	suite.mockDocumentRepo.On("FindDocumentByID", ctx, domain.KindGoodsReceipt, "gr-1").Return(draft, nil).Once()
	suite.mockProductRepo.On("FindProductUnitsByIDs", ctx, []string{"pu-1"}).Return(units, nil).Once()

	_, err := suite.service.Transition(ctx, domain.KindGoodsReceipt, "gr-1", domain.ActionConfirm, "", suite.admin)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "inactive")
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "PostDocumentTransition", mock.Anything, mock.Anything)
}

func TestPostingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PostingServiceTestSuite))
}
