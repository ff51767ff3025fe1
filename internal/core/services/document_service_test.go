package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bvtvshop/inventory_backend/internal/apperrors"
	"github.com/bvtvshop/inventory_backend/internal/core/domain"
	portssvc "github.com/bvtvshop/inventory_backend/internal/core/ports/services"
	"github.com/bvtvshop/inventory_backend/internal/core/services"
	"github.com/bvtvshop/inventory_backend/internal/dto"
)

type DocumentServiceTestSuite struct {
	suite.Suite
	mockDocumentRepo  *MockDocumentRepository
	mockProductRepo   *MockProductUnitRepository
	mockWarehouseRepo *MockWarehouseRepository
	mockProfileRepo   *MockProfileRepository
	mockOrderRepo     *MockOrderRepository
	service           portssvc.DocumentSvcFacade

	actor domain.Actor
}

func (suite *DocumentServiceTestSuite) SetupTest() {
	suite.mockDocumentRepo = new(MockDocumentRepository)
	suite.mockProductRepo = new(MockProductUnitRepository)
	suite.mockWarehouseRepo = new(MockWarehouseRepository)
	suite.mockProfileRepo = new(MockProfileRepository)
	suite.mockOrderRepo = new(MockOrderRepository)
	suite.service = services.NewDocumentService(
		suite.mockDocumentRepo,
		suite.mockProductRepo,
		suite.mockWarehouseRepo,
		suite.mockProfileRepo,
		suite.mockOrderRepo,
	)
	suite.actor = domain.Actor{UserID: "staff-1", Role: domain.RoleStaff}
}

func (suite *DocumentServiceTestSuite) expectActiveWarehouse(id string) {
	suite.mockWarehouseRepo.On("FindWarehouseByID", mock.Anything, id).
		Return(&domain.Warehouse{WarehouseID: id, IsActive: true}, nil).Once()
}

func (suite *DocumentServiceTestSuite) TestCreateGoodsReceipt_Success() {
	ctx := context.Background()
	req := dto.CreateGoodsReceiptRequest{
		WarehouseID: "wh-1",
		Notes:       "first spring delivery",
		Items: []dto.LineItemRequest{
			{ProductUnitID: "pu-1", Quantity: 10, UnitAmount: decimal.NewFromInt(1000)},
		},
	}
	units := map[string]domain.ProductUnit{
		"pu-1": {ProductUnitID: "pu-1", IsActive: true, VATRate: decimal.NewFromFloat(0.10)},
	}

	suite.expectActiveWarehouse("wh-1")
	suite.mockProductRepo.On("FindProductUnitsByIDs", ctx, []string{"pu-1"}).Return(units, nil).Once()
	suite.mockDocumentRepo.On("NextDocumentNo", ctx, domain.KindGoodsReceipt).Return("GR-000001", nil).Once()
	suite.mockDocumentRepo.On("SaveDocument", ctx, mock.AnythingOfType("domain.Document")).Return(nil).Once()

	doc, err := suite.service.CreateGoodsReceipt(ctx, req, suite.actor)

	suite.Require().NoError(err)
	suite.Require().NotNil(doc)
	suite.NotEmpty(doc.DocumentID)
	suite.Equal("GR-000001", doc.DocumentNo)
	suite.Equal(domain.StatusDraft, doc.Status)
	suite.Require().NotNil(doc.PaymentStatus)
	suite.Equal(domain.PaymentUnpaid, *doc.PaymentStatus, "payment status defaults to UNPAID")
	suite.Require().Len(doc.Lines, 1)
	suite.True(decimal.NewFromFloat(0.10).Equal(doc.Lines[0].VATRate), "VAT rate is snapshotted from the product unit")
	suite.Equal(suite.actor.UserID, doc.CreatedBy)
	suite.mockDocumentRepo.AssertExpectations(suite.T())
}

func (suite *DocumentServiceTestSuite) TestCreateGoodsReceipt_CollectsAllLineProblems() {
	ctx := context.Background()
	req := dto.CreateGoodsReceiptRequest{
		WarehouseID: "wh-1",
		Items: []dto.LineItemRequest{
			{ProductUnitID: "pu-missing", Quantity: 1, UnitAmount: decimal.NewFromInt(10)},
			{ProductUnitID: "pu-inactive", Quantity: 1, UnitAmount: decimal.NewFromInt(10)},
		},
	}
	units := map[string]domain.ProductUnit{
		"pu-inactive": {ProductUnitID: "pu-inactive", IsActive: false},
	}

	suite.expectActiveWarehouse("wh-1")
	suite.mockProductRepo.On("FindProductUnitsByIDs", ctx, []string{"pu-missing", "pu-inactive"}).Return(units, nil).Once()

	_, err := suite.service.CreateGoodsReceipt(ctx, req, suite.actor)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "line 1: product unit pu-missing not found")
	suite.Contains(err.Error(), "line 2: product unit pu-inactive is inactive")
	suite.mockDocumentRepo.AssertNotCalled(suite.T(), "SaveDocument", mock.Anything, mock.Anything)
}

func (suite *DocumentServiceTestSuite) TestCreateGoodsReceipt_InactiveWarehouse() {
	ctx := context.Background()
	suite.mockWarehouseRepo.On("FindWarehouseByID", ctx, "wh-closed").
		Return(&domain.Warehouse{WarehouseID: "wh-closed", IsActive: false}, nil).Once()

	_, err := suite.service.CreateGoodsReceipt(ctx, dto.CreateGoodsReceiptRequest{
		WarehouseID: "wh-closed",
		Items:       []dto.LineItemRequest{{ProductUnitID: "pu-1", Quantity: 1}},
	}, suite.actor)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *DocumentServiceTestSuite) TestCreateCustomerReturn_PrefillsFromOrder() {
	ctx := context.Background()
	orderID := "order-1"
	order := &domain.Order{
		OrderID:    orderID,
		CustomerID: "cust-1",
		Items: []domain.OrderItem{
			{ProductUnitID: "pu-1", Quantity: 2, UnitPrice: decimal.NewFromInt(150)},
		},
	}

	suite.expectActiveWarehouse("wh-1")
	suite.mockDocumentRepo.On("NextDocumentNo", ctx, domain.KindCustomerReturn).Return("CR-000001", nil).Once()
	suite.mockOrderRepo.On("FindOrderByID", ctx, orderID).Return(order, nil).Once()
	suite.mockDocumentRepo.On("SaveDocument", ctx, mock.AnythingOfType("domain.Document")).Return(nil).Once()

	doc, err := suite.service.CreateCustomerReturn(ctx, dto.CreateCustomerReturnRequest{
		WarehouseID: "wh-1",
		OrderID:     &orderID,
		Reason:      "wrong size",
	}, suite.actor)

	suite.Require().NoError(err)
	suite.Require().Len(doc.Lines, 1)
	suite.True(decimal.NewFromInt(300).Equal(doc.Lines[0].UnitAmount), "refund is unit price x quantity, got %s", doc.Lines[0].UnitAmount)
	suite.Require().NotNil(doc.SourceOrderID)
	suite.Equal(orderID, *doc.SourceOrderID)
	suite.Require().NotNil(doc.CounterpartyID)
	suite.Equal("cust-1", *doc.CounterpartyID, "counterparty falls back to the order's customer")
}

func (suite *DocumentServiceTestSuite) TestCreateCustomerReturn_NeedsItemsOrOrder() {
	ctx := context.Background()
	suite.expectActiveWarehouse("wh-1")
	suite.mockDocumentRepo.On("NextDocumentNo", ctx, domain.KindCustomerReturn).Return("CR-000002", nil).Once()

	_, err := suite.service.CreateCustomerReturn(ctx, dto.CreateCustomerReturnRequest{WarehouseID: "wh-1"}, suite.actor)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockDocumentRepo.AssertNotCalled(suite.T(), "SaveDocument", mock.Anything, mock.Anything)
}

func (suite *DocumentServiceTestSuite) TestCreateSupplierReturn_PrefillsFromReceipt() {
	ctx := context.Background()
	receiptID := "gr-1"
	supplierID := "supp-1"
	receipt := &domain.Document{
		DocumentID:     receiptID,
		Kind:           domain.KindGoodsReceipt,
		Status:         domain.StatusConfirmed,
		CounterpartyID: &supplierID,
		Lines: []domain.LineItem{
			{LineNo: 1, ProductUnitID: "pu-1", Quantity: 10, UnitAmount: decimal.NewFromInt(100), VATRate: decimal.NewFromFloat(0.10)},
		},
	}

	suite.expectActiveWarehouse("wh-1")
	suite.mockDocumentRepo.On("NextDocumentNo", ctx, domain.KindSupplierReturn).Return("SR-000001", nil).Once()
	suite.mockDocumentRepo.On("FindDocumentByID", ctx, domain.KindGoodsReceipt, receiptID).Return(receipt, nil).Once()
	suite.mockDocumentRepo.On("SaveDocument", ctx, mock.AnythingOfType("domain.Document")).Return(nil).Once()

	doc, err := suite.service.CreateSupplierReturn(ctx, dto.CreateSupplierReturnRequest{
		WarehouseID: "wh-1",
		ReceiptID:   &receiptID,
		Reason:      "failed quality inspection",
	}, suite.actor)

	suite.Require().NoError(err)
	suite.Require().Len(doc.Lines, 1)
	suite.True(decimal.NewFromInt(1000).Equal(doc.Lines[0].UnitAmount), "got %s", doc.Lines[0].UnitAmount)
	suite.True(decimal.NewFromInt(100).Equal(doc.TotalVAT), "VAT total carries over from the receipt, got %s", doc.TotalVAT)
	suite.Require().NotNil(doc.CounterpartyID)
	suite.Equal(supplierID, *doc.CounterpartyID, "supplier falls back to the receipt's counterparty")
}

func (suite *DocumentServiceTestSuite) TestUpdateDocument_OnlyDraftEditable() {
	ctx := context.Background()
	confirmed := &domain.Document{
		DocumentID: "gr-1",
		Kind:       domain.KindGoodsReceipt,
		Status:     domain.StatusConfirmed,
	}
	notes := "late edit"

	suite.mockDocumentRepo.On("FindDocumentByID", ctx, domain.KindGoodsReceipt, "gr-1").Return(confirmed, nil).Once()

	_, err := suite.service.UpdateDocument(ctx, domain.KindGoodsReceipt, "gr-1", dto.UpdateDocumentRequest{Notes: &notes}, suite.actor)

	suite.Require().ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockDocumentRepo.AssertNotCalled(suite.T(), "ReplaceDocument", mock.Anything, mock.Anything)
}

func (suite *DocumentServiceTestSuite) TestUpdateDocument_PaymentStatusIsReceiptOnly() {
	ctx := context.Background()
	draft := &domain.Document{
		DocumentID: "cr-1",
		Kind:       domain.KindCustomerReturn,
		Status:     domain.StatusDraft,
	}
	paid := string(domain.PaymentPaid)

	suite.mockDocumentRepo.On("FindDocumentByID", ctx, domain.KindCustomerReturn, "cr-1").Return(draft, nil).Once()

	_, err := suite.service.UpdateDocument(ctx, domain.KindCustomerReturn, "cr-1", dto.UpdateDocumentRequest{PaymentStatus: &paid}, suite.actor)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *DocumentServiceTestSuite) TestUpdateDocument_ReplacesLineSet() {
	ctx := context.Background()
	draft := &domain.Document{
		DocumentID: "gr-1",
		Kind:       domain.KindGoodsReceipt,
		Status:     domain.StatusDraft,
		Lines: []domain.LineItem{
			{LineItemID: "li-old", LineNo: 1, ProductUnitID: "pu-old", Quantity: 1, UnitAmount: decimal.NewFromInt(5)},
		},
	}
	items := []dto.LineItemRequest{
		{ProductUnitID: "pu-1", Quantity: 4, UnitAmount: decimal.NewFromInt(25)},
		{ProductUnitID: "pu-2", Quantity: 2, UnitAmount: decimal.NewFromInt(75)},
	}
	units := map[string]domain.ProductUnit{
		"pu-1": {ProductUnitID: "pu-1", IsActive: true, VATRate: decimal.NewFromFloat(0.08)},
		"pu-2": {ProductUnitID: "pu-2", IsActive: true, VATRate: decimal.Zero},
	}

	suite.mockDocumentRepo.On("FindDocumentByID", ctx, domain.KindGoodsReceipt, "gr-1").Return(draft, nil).Once()
	suite.mockProductRepo.On("FindProductUnitsByIDs", ctx, []string{"pu-1", "pu-2"}).Return(units, nil).Once()
	suite.mockDocumentRepo.On("ReplaceDocument", ctx, mock.AnythingOfType("domain.Document")).Return(nil).Once()

	doc, err := suite.service.UpdateDocument(ctx, domain.KindGoodsReceipt, "gr-1", dto.UpdateDocumentRequest{Items: &items}, suite.actor)

	suite.Require().NoError(err)
	suite.Require().Len(doc.Lines, 2)
	suite.Equal("pu-1", doc.Lines[0].ProductUnitID)
	suite.Equal(1, doc.Lines[0].LineNo)
	suite.Equal(2, doc.Lines[1].LineNo)
	suite.True(decimal.NewFromFloat(0.08).Equal(doc.Lines[0].VATRate))
	suite.Equal(suite.actor.UserID, doc.LastUpdatedBy)
}

func (suite *DocumentServiceTestSuite) TestListDocuments_RejectsUnknownStatus() {
	ctx := context.Background()

	_, _, err := suite.service.ListDocuments(ctx, domain.KindGoodsReceipt, dto.ListDocumentsParams{Status: "SHIPPED"})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockDocumentRepo.AssertNotCalled(suite.T(), "ListDocuments", mock.Anything, mock.Anything, mock.Anything)
}

func TestDocumentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentServiceTestSuite))
}
