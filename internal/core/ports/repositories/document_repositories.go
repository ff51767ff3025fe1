package repositories

import (
	"context"
	"time"

	"github.com/bvtvshop/inventory_backend/internal/core/domain"
)

// ListDocumentsFilter narrows and paginates a document list read.
type ListDocumentsFilter struct {
	Status    domain.DocumentStatus
	Limit     int
	NextToken *string
}

// DocumentReader defines read operations for stock documents.
type DocumentReader interface {
	// FindDocumentByID retrieves a document of the given kind with its lines.
	FindDocumentByID(ctx context.Context, kind domain.DocumentKind, documentID string) (*domain.Document, error)

	// ListDocuments retrieves documents of one kind, newest first, with
	// keyset pagination.
	ListDocuments(ctx context.Context, kind domain.DocumentKind, filter ListDocumentsFilter) ([]domain.Document, *string, error)
}

// DocumentWriter defines write operations for stock documents.
type DocumentWriter interface {
	// NextDocumentNo reserves the next human-readable sequence number for the
	// kind.
	NextDocumentNo(ctx context.Context, kind domain.DocumentKind) (string, error)

	// SaveDocument persists a new document and its lines.
	SaveDocument(ctx context.Context, doc domain.Document) error

	// ReplaceDocument rewrites the mutable header fields and the full line
	// set of a DRAFT document. Fails with ErrInvalidState if the row is no
	// longer in DRAFT.
	ReplaceDocument(ctx context.Context, doc domain.Document) error

	// TransitionDocument advances the status with an optimistic from-status
	// check for transitions that carry no stock effect. Zero affected rows
	// surface as ErrConflict.
	TransitionDocument(ctx context.Context, documentID string, from, to domain.DocumentStatus, reason string, actorID string, now time.Time) error
}

// DocumentRepositoryFacade combines all document repository interfaces.
type DocumentRepositoryFacade interface {
	DocumentReader
	DocumentWriter
}
