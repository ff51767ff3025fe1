package services

import (
	"context"

	"github.com/bvtvshop/inventory_backend/internal/core/domain"
	"github.com/bvtvshop/inventory_backend/internal/dto"
)

// DocumentSvcFacade exposes document composition: creation in DRAFT, edits
// while DRAFT, and reads. Lifecycle transitions live on PostingSvcFacade.
type DocumentSvcFacade interface {
	CreateGoodsReceipt(ctx context.Context, req dto.CreateGoodsReceiptRequest, actor domain.Actor) (*domain.Document, error)
	CreateCustomerReturn(ctx context.Context, req dto.CreateCustomerReturnRequest, actor domain.Actor) (*domain.Document, error)
	CreateSupplierReturn(ctx context.Context, req dto.CreateSupplierReturnRequest, actor domain.Actor) (*domain.Document, error)

	// UpdateDocument rewrites the mutable fields of a DRAFT document of the
	// given kind. Fails with ErrInvalidState once the document left DRAFT.
	UpdateDocument(ctx context.Context, kind domain.DocumentKind, documentID string, req dto.UpdateDocumentRequest, actor domain.Actor) (*domain.Document, error)

	GetDocument(ctx context.Context, kind domain.DocumentKind, documentID string) (*domain.Document, error)
	ListDocuments(ctx context.Context, kind domain.DocumentKind, params dto.ListDocumentsParams) ([]domain.Document, *string, error)
}

// TransitionResult is the outcome of a lifecycle transition.
type TransitionResult struct {
	Document  domain.Document
	Movements []domain.InventoryMovement
}

// PostingSvcFacade is the posting coordinator: the transactional boundary
// that validates, checks stock, posts ledger entries and advances status as
// one unit.
type PostingSvcFacade interface {
	// Transition applies the requested action to the document. For posting
	// transitions it appends one ledger entry per line; for a cancel after
	// posting it appends compensating entries. Reason is stored for reject
	// (mandatory for supplier returns).
	Transition(ctx context.Context, kind domain.DocumentKind, documentID string, action domain.TransitionAction, reason string, actor domain.Actor) (*TransitionResult, error)
}
