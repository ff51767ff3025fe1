package repositories

import (
	"context"
	"time"

	"github.com/bvtvshop/inventory_backend/internal/core/domain"
)

// ListMovementsFilter narrows and paginates a ledger history read.
type ListMovementsFilter struct {
	ProductUnitID string
	WarehouseID   string
	Limit         int
	NextToken     *string
}

// PostTransitionParams carries everything one posting transition writes
// atomically: the optimistic document status advance plus the ledger batch.
type PostTransitionParams struct {
	DocumentID string
	Kind       domain.DocumentKind
	FromStatus domain.DocumentStatus
	ToStatus   domain.DocumentStatus
	Drafts     []domain.MovementDraft
	ApproverID string
	ActorID    string
	Now        time.Time
}

// ReverseTransitionParams carries a compensating reversal: look up the
// document's posted movements, post one opposite entry per original, and
// advance the status, all in one transaction.
type ReverseTransitionParams struct {
	DocumentID string
	Kind       domain.DocumentKind
	FromStatus domain.DocumentStatus
	ToStatus   domain.DocumentStatus
	ActorID    string
	Now        time.Time
}

// LedgerReader defines read operations over the movement ledger.
type LedgerReader interface {
	// ListMovements returns ledger entries ordered by creation time ascending
	// with keyset pagination. Pure read; no cursor state is retained.
	ListMovements(ctx context.Context, filter ListMovementsFilter) ([]domain.InventoryMovement, *string, error)

	// FindMovementsByReference returns all entries carrying the given
	// back-reference, ordered by line ordinal.
	FindMovementsByReference(ctx context.Context, referenceType, referenceID string) ([]domain.InventoryMovement, error)

	// GetBalance returns the materialized signed-sum projection for the pair.
	// A pair with no movements has balance zero.
	GetBalance(ctx context.Context, productUnitID, warehouseID string) (int64, error)
}

// LedgerWriter defines append operations over the movement ledger.
type LedgerWriter interface {
	// PostMovements appends the batch as a single atomic unit, locking and
	// updating the affected balances. Fails the whole batch with
	// ErrInsufficientStock if any balance would go negative and with
	// ErrConflict if any (reference type, reference id, line ordinal) already
	// exists.
	PostMovements(ctx context.Context, drafts []domain.MovementDraft, createdBy string, now time.Time) ([]domain.InventoryMovement, error)

	// PostDocumentTransition atomically advances the document status (failing
	// with ErrConflict when the optimistic from-status check loses) and posts
	// the ledger batch for it.
	PostDocumentTransition(ctx context.Context, p PostTransitionParams) ([]domain.InventoryMovement, error)

	// ReverseDocumentPostings atomically posts compensating entries for every
	// movement previously posted by the document and advances its status.
	// Fails with ErrConflict if the postings were already reversed.
	ReverseDocumentPostings(ctx context.Context, p ReverseTransitionParams) ([]domain.InventoryMovement, error)
}

// MovementRepositoryFacade combines ledger reads and writes.
type MovementRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
