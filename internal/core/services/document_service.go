package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bvtvshop/inventory_backend/internal/apperrors"
	"github.com/bvtvshop/inventory_backend/internal/core/domain"
	portsrepo "github.com/bvtvshop/inventory_backend/internal/core/ports/repositories"
	portssvc "github.com/bvtvshop/inventory_backend/internal/core/ports/services"
	"github.com/bvtvshop/inventory_backend/internal/dto"
)

const defaultDocumentListLimit = 20

// documentService composes stock documents: creation in DRAFT, edits while
// DRAFT, and reads. Lifecycle transitions live on the posting coordinator.
type documentService struct {
	BaseService
	documentRepo  portsrepo.DocumentRepositoryFacade
	productRepo   portsrepo.ProductUnitRepositoryFacade
	warehouseRepo portsrepo.WarehouseRepositoryFacade
	profileRepo   portsrepo.ProfileRepositoryFacade
	orderRepo     portsrepo.OrderRepositoryFacade
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(
	documentRepo portsrepo.DocumentRepositoryFacade,
	productRepo portsrepo.ProductUnitRepositoryFacade,
	warehouseRepo portsrepo.WarehouseRepositoryFacade,
	profileRepo portsrepo.ProfileRepositoryFacade,
	orderRepo portsrepo.OrderRepositoryFacade,
) portssvc.DocumentSvcFacade {
	return &documentService{
		documentRepo:  documentRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		profileRepo:   profileRepo,
		orderRepo:     orderRepo,
	}
}

var _ portssvc.DocumentSvcFacade = (*documentService)(nil)

// resolveLines validates the requested lines and snapshots the current VAT
// rate of each product unit. Validation failures are collected so the caller
// sees every offending line at once, not just the first.
func (s *documentService) resolveLines(ctx context.Context, items []dto.LineItemRequest, snapshotVAT bool) ([]domain.LineItem, error) {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductUnitID)
	}
	units, err := s.productRepo.FindProductUnitsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load product units: %w", err)
	}

	var problems []string
	lines := make([]domain.LineItem, 0, len(items))
	for i, it := range items {
		lineNo := i + 1
		unit, ok := units[it.ProductUnitID]
		if !ok {
			problems = append(problems, fmt.Sprintf("line %d: product unit %s not found", lineNo, it.ProductUnitID))
			continue
		}
		if !unit.IsActive {
			problems = append(problems, fmt.Sprintf("line %d: product unit %s is inactive", lineNo, it.ProductUnitID))
		}
		if it.Quantity <= 0 {
			problems = append(problems, fmt.Sprintf("line %d: quantity must be positive", lineNo))
		}
		if it.UnitAmount.IsNegative() {
			problems = append(problems, fmt.Sprintf("line %d: amount must not be negative", lineNo))
		}
		vatRate := decimal.Zero
		if snapshotVAT {
			vatRate = unit.VATRate
		}
		lines = append(lines, domain.LineItem{
			LineItemID:    uuid.NewString(),
			LineNo:        lineNo,
			ProductUnitID: it.ProductUnitID,
			Quantity:      it.Quantity,
			UnitAmount:    it.UnitAmount,
			VATRate:       vatRate,
		})
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(problems, "; "))
	}
	return lines, nil
}

func (s *documentService) checkWarehouse(ctx context.Context, warehouseID string) error {
	warehouse, err := s.warehouseRepo.FindWarehouseByID(ctx, warehouseID)
	if err != nil {
		return fmt.Errorf("failed to find warehouse %s: %w", warehouseID, err)
	}
	if !warehouse.IsActive {
		return fmt.Errorf("%w: warehouse %s is inactive", apperrors.ErrValidation, warehouseID)
	}
	return nil
}

func (s *documentService) checkCounterparty(ctx context.Context, profileID *string) error {
	if profileID == nil || *profileID == "" {
		return nil
	}
	if _, err := s.profileRepo.FindProfileByID(ctx, *profileID); err != nil {
		return fmt.Errorf("failed to find counterparty profile %s: %w", *profileID, err)
	}
	return nil
}

// newDraft assembles the shared header of a new document in DRAFT.
func (s *documentService) newDraft(ctx context.Context, kind domain.DocumentKind, warehouseID string, actor domain.Actor) (domain.Document, error) {
	documentNo, err := s.documentRepo.NextDocumentNo(ctx, kind)
	if err != nil {
		return domain.Document{}, fmt.Errorf("failed to reserve document number: %w", err)
	}
	now := time.Now()
	return domain.Document{
		DocumentID:  uuid.NewString(),
		Kind:        kind,
		DocumentNo:  documentNo,
		WarehouseID: warehouseID,
		Status:      domain.StatusDraft,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}, nil
}

// CreateGoodsReceipt creates a goods receipt in DRAFT.
func (s *documentService) CreateGoodsReceipt(ctx context.Context, req dto.CreateGoodsReceiptRequest, actor domain.Actor) (*domain.Document, error) {
	logger := s.GetLogger(ctx)

	if err := s.checkWarehouse(ctx, req.WarehouseID); err != nil {
		return nil, err
	}
	if err := s.checkCounterparty(ctx, req.SupplierID); err != nil {
		return nil, err
	}
	lines, err := s.resolveLines(ctx, req.Items, true)
	if err != nil {
		return nil, err
	}

	doc, err := s.newDraft(ctx, domain.KindGoodsReceipt, req.WarehouseID, actor)
	if err != nil {
		return nil, err
	}
	doc.CounterpartyID = req.SupplierID
	doc.Notes = req.Notes

	paymentStatus := domain.PaymentUnpaid
	if req.PaymentStatus != nil {
		switch domain.PaymentStatus(*req.PaymentStatus) {
		case domain.PaymentUnpaid, domain.PaymentPaid:
			paymentStatus = domain.PaymentStatus(*req.PaymentStatus)
		default:
			return nil, fmt.Errorf("%w: unknown payment status %q", apperrors.ErrValidation, *req.PaymentStatus)
		}
	}
	doc.PaymentStatus = &paymentStatus

	for _, line := range lines {
		if err := doc.AddLine(line); err != nil {
			return nil, err
		}
	}

	if err := s.documentRepo.SaveDocument(ctx, doc); err != nil {
		s.LogError(ctx, err, "Failed to save goods receipt")
		return nil, err
	}
	logger.Info("Goods receipt created", "document_id", doc.DocumentID, "document_no", doc.DocumentNo)
	return &doc, nil
}

// CreateCustomerReturn creates a customer return in DRAFT. With an order
// reference and no explicit items the lines are prefilled from the order.
func (s *documentService) CreateCustomerReturn(ctx context.Context, req dto.CreateCustomerReturnRequest, actor domain.Actor) (*domain.Document, error) {
	logger := s.GetLogger(ctx)

	if err := s.checkWarehouse(ctx, req.WarehouseID); err != nil {
		return nil, err
	}
	if err := s.checkCounterparty(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	doc, err := s.newDraft(ctx, domain.KindCustomerReturn, req.WarehouseID, actor)
	if err != nil {
		return nil, err
	}
	doc.CounterpartyID = req.CustomerID
	doc.Reason = req.Reason

	switch {
	case req.OrderID != nil && len(req.Items) == 0:
		order, err := s.orderRepo.FindOrderByID(ctx, *req.OrderID)
		if err != nil {
			return nil, fmt.Errorf("failed to find order %s: %w", *req.OrderID, err)
		}
		if err := doc.PrefillFromOrder(*order); err != nil {
			return nil, err
		}
		if doc.CounterpartyID == nil {
			doc.CounterpartyID = &order.CustomerID
		}
	case len(req.Items) > 0:
		lines, err := s.resolveLines(ctx, req.Items, false)
		if err != nil {
			return nil, err
		}
		for _, line := range lines {
			if err := doc.AddLine(line); err != nil {
				return nil, err
			}
		}
		doc.SourceOrderID = req.OrderID
	default:
		return nil, fmt.Errorf("%w: either items or an order reference is required", apperrors.ErrValidation)
	}

	if err := s.documentRepo.SaveDocument(ctx, doc); err != nil {
		s.LogError(ctx, err, "Failed to save customer return")
		return nil, err
	}
	logger.Info("Customer return created", "document_id", doc.DocumentID, "document_no", doc.DocumentNo)
	return &doc, nil
}

// CreateSupplierReturn creates a supplier return in DRAFT. With a receipt
// reference and no explicit items the lines and VAT total are prefilled from
// the source goods receipt.
func (s *documentService) CreateSupplierReturn(ctx context.Context, req dto.CreateSupplierReturnRequest, actor domain.Actor) (*domain.Document, error) {
	logger := s.GetLogger(ctx)

	if err := s.checkWarehouse(ctx, req.WarehouseID); err != nil {
		return nil, err
	}
	if err := s.checkCounterparty(ctx, req.SupplierID); err != nil {
		return nil, err
	}

	doc, err := s.newDraft(ctx, domain.KindSupplierReturn, req.WarehouseID, actor)
	if err != nil {
		return nil, err
	}
	doc.CounterpartyID = req.SupplierID
	doc.Reason = req.Reason

	switch {
	case req.ReceiptID != nil && len(req.Items) == 0:
		receipt, err := s.documentRepo.FindDocumentByID(ctx, domain.KindGoodsReceipt, *req.ReceiptID)
		if err != nil {
			return nil, fmt.Errorf("failed to find goods receipt %s: %w", *req.ReceiptID, err)
		}
		if err := doc.PrefillFromReceipt(*receipt); err != nil {
			return nil, err
		}
		if doc.CounterpartyID == nil {
			doc.CounterpartyID = receipt.CounterpartyID
		}
	case len(req.Items) > 0:
		lines, err := s.resolveLines(ctx, req.Items, false)
		if err != nil {
			return nil, err
		}
		for _, line := range lines {
			if err := doc.AddLine(line); err != nil {
				return nil, err
			}
		}
		doc.SourceDocID = req.ReceiptID
		if req.TotalVAT != nil {
			if req.TotalVAT.IsNegative() {
				return nil, fmt.Errorf("%w: total VAT must not be negative", apperrors.ErrValidation)
			}
			doc.TotalVAT = *req.TotalVAT
		}
	default:
		return nil, fmt.Errorf("%w: either items or a goods receipt reference is required", apperrors.ErrValidation)
	}

	if err := s.documentRepo.SaveDocument(ctx, doc); err != nil {
		s.LogError(ctx, err, "Failed to save supplier return")
		return nil, err
	}
	logger.Info("Supplier return created", "document_id", doc.DocumentID, "document_no", doc.DocumentNo)
	return &doc, nil
}

// UpdateDocument rewrites the mutable fields of a DRAFT document.
func (s *documentService) UpdateDocument(ctx context.Context, kind domain.DocumentKind, documentID string, req dto.UpdateDocumentRequest, actor domain.Actor) (*domain.Document, error) {
	logger := s.GetLogger(ctx)

	doc, err := s.documentRepo.FindDocumentByID(ctx, kind, documentID)
	if err != nil {
		return nil, err
	}
	if !doc.Editable() {
		return nil, fmt.Errorf("%w: document %s is %s; only DRAFT documents can be edited", apperrors.ErrInvalidState, documentID, doc.Status)
	}

	if req.WarehouseID != nil {
		if err := s.checkWarehouse(ctx, *req.WarehouseID); err != nil {
			return nil, err
		}
		doc.WarehouseID = *req.WarehouseID
	}
	if req.CounterpartyID != nil {
		if err := s.checkCounterparty(ctx, req.CounterpartyID); err != nil {
			return nil, err
		}
		doc.CounterpartyID = req.CounterpartyID
	}
	if req.PaymentStatus != nil {
		if kind != domain.KindGoodsReceipt {
			return nil, fmt.Errorf("%w: payment status applies to goods receipts only", apperrors.ErrValidation)
		}
		switch domain.PaymentStatus(*req.PaymentStatus) {
		case domain.PaymentUnpaid, domain.PaymentPaid:
			paymentStatus := domain.PaymentStatus(*req.PaymentStatus)
			doc.PaymentStatus = &paymentStatus
		default:
			return nil, fmt.Errorf("%w: unknown payment status %q", apperrors.ErrValidation, *req.PaymentStatus)
		}
	}
	if req.Reason != nil {
		doc.Reason = *req.Reason
	}
	if req.Notes != nil {
		doc.Notes = *req.Notes
	}
	if req.TotalVAT != nil {
		if kind != domain.KindSupplierReturn {
			return nil, fmt.Errorf("%w: a document-level VAT total applies to supplier returns only", apperrors.ErrValidation)
		}
		if req.TotalVAT.IsNegative() {
			return nil, fmt.Errorf("%w: total VAT must not be negative", apperrors.ErrValidation)
		}
		doc.TotalVAT = *req.TotalVAT
	}
	if req.Items != nil {
		lines, err := s.resolveLines(ctx, *req.Items, kind == domain.KindGoodsReceipt)
		if err != nil {
			return nil, err
		}
		doc.Lines = doc.Lines[:0]
		for _, line := range lines {
			if err := doc.AddLine(line); err != nil {
				return nil, err
			}
		}
	}

	doc.LastUpdatedAt = time.Now()
	doc.LastUpdatedBy = actor.UserID

	if err := s.documentRepo.ReplaceDocument(ctx, *doc); err != nil {
		s.LogError(ctx, err, "Failed to update document", "document_id", documentID)
		return nil, err
	}
	logger.Info("Document updated", "document_id", documentID, "kind", string(kind))
	return doc, nil
}

// GetDocument retrieves a document of the given kind with its lines.
func (s *documentService) GetDocument(ctx context.Context, kind domain.DocumentKind, documentID string) (*domain.Document, error) {
	doc, err := s.documentRepo.FindDocumentByID(ctx, kind, documentID)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// ListDocuments retrieves one kind of document, newest first.
func (s *documentService) ListDocuments(ctx context.Context, kind domain.DocumentKind, params dto.ListDocumentsParams) ([]domain.Document, *string, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultDocumentListLimit
	}
	var status domain.DocumentStatus
	if params.Status != "" {
		status = domain.DocumentStatus(params.Status)
		switch status {
		case domain.StatusDraft, domain.StatusPending, domain.StatusConfirmed, domain.StatusApproved,
			domain.StatusInTransit, domain.StatusCompleted, domain.StatusRejected, domain.StatusCancelled:
		default:
			return nil, nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, params.Status)
		}
	}
	docs, nextToken, err := s.documentRepo.ListDocuments(ctx, kind, portsrepo.ListDocumentsFilter{
		Status:    status,
		Limit:     limit,
		NextToken: params.NextToken,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list documents", "kind", string(kind))
		return nil, nil, err
	}
	return docs, nextToken, nil
}
