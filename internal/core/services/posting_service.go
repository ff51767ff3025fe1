package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bvtvshop/inventory_backend/internal/apperrors"
	"github.com/bvtvshop/inventory_backend/internal/core/domain"
	portsrepo "github.com/bvtvshop/inventory_backend/internal/core/ports/repositories"
	portssvc "github.com/bvtvshop/inventory_backend/internal/core/ports/services"
	"github.com/bvtvshop/inventory_backend/internal/utils/stock"
)

// postingService is the posting coordinator. A transition that carries stock
// effect commits the status advance and the ledger batch in one transaction;
// nothing here mutates stock outside that boundary.
type postingService struct {
	BaseService
	documentRepo portsrepo.DocumentRepositoryFacade
	movementRepo portsrepo.MovementRepositoryFacade
	productRepo  portsrepo.ProductUnitRepositoryFacade
}

// NewPostingService creates a new PostingService.
func NewPostingService(documentRepo portsrepo.DocumentRepositoryFacade, movementRepo portsrepo.MovementRepositoryFacade, productRepo portsrepo.ProductUnitRepositoryFacade) portssvc.PostingSvcFacade {
	return &postingService{
		documentRepo: documentRepo,
		movementRepo: movementRepo,
		productRepo:  productRepo,
	}
}

var _ portssvc.PostingSvcFacade = (*postingService)(nil)

// adminOnlyActions are transitions reserved to the administrative role.
// Submitting a draft for approval is open to its author.
var adminOnlyActions = map[domain.TransitionAction]bool{
	domain.ActionConfirm: true,
	domain.ActionApprove: true,
	domain.ActionReject:  true,
	domain.ActionCancel:  true,
}

// Transition applies the requested lifecycle action to the document.
func (s *postingService) Transition(ctx context.Context, kind domain.DocumentKind, documentID string, action domain.TransitionAction, reason string, actor domain.Actor) (*portssvc.TransitionResult, error) {
	logger := s.GetLogger(ctx)

	if adminOnlyActions[action] && !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: action %q requires the ADMIN role", apperrors.ErrForbidden, action)
	}

	doc, err := s.documentRepo.FindDocumentByID(ctx, kind, documentID)
	if err != nil {
		return nil, err
	}

	// Cancelling twice is a conflict, not an illegal transition: the first
	// cancel won and the second caller is acting on stale state.
	if action == domain.ActionCancel && doc.Status == domain.StatusCancelled {
		return nil, fmt.Errorf("%w: document %s is already cancelled", apperrors.ErrConflict, documentID)
	}

	next, err := domain.NextStatus(kind, doc.Status, action)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidState, err)
	}

	if action == domain.ActionReject && kind == domain.KindSupplierReturn && strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("%w: rejecting a supplier return requires a reason", apperrors.ErrValidation)
	}

	now := time.Now()
	var movements []domain.InventoryMovement

	movementType, posts := domain.PostingMovementType(kind, action, next)
	switch {
	case posts:
		movements, err = s.post(ctx, doc, next, movementType, actor, now)
	case action == domain.ActionCancel && doc.Status == domain.PostedStatus(kind):
		// The document holds posted stock; cancelling must compensate every
		// ledger entry it produced, atomically with the status advance.
		movements, err = s.movementRepo.ReverseDocumentPostings(ctx, portsrepo.ReverseTransitionParams{
			DocumentID: documentID,
			Kind:       kind,
			FromStatus: doc.Status,
			ToStatus:   next,
			ActorID:    actor.UserID,
			Now:        now,
		})
	default:
		err = s.documentRepo.TransitionDocument(ctx, documentID, doc.Status, next, reason, actor.UserID, now)
	}
	if err != nil {
		s.LogError(ctx, err, "Transition failed", "document_id", documentID, "action", string(action), "from", string(doc.Status), "to", string(next))
		return nil, err
	}

	updated, err := s.documentRepo.FindDocumentByID(ctx, kind, documentID)
	if err != nil {
		return nil, fmt.Errorf("transition committed but reload failed for document %s: %w", documentID, err)
	}

	logger.Info("Document transitioned",
		"document_id", documentID,
		"kind", string(kind),
		"action", string(action),
		"from", string(doc.Status),
		"to", string(updated.Status),
		"movements", len(movements),
	)
	return &portssvc.TransitionResult{Document: *updated, Movements: movements}, nil
}

// post validates the document's lines, pre-checks outbound stock, and commits
// the posting transition: one ledger entry per line plus the optimistic
// status advance, in one transaction.
func (s *postingService) post(ctx context.Context, doc *domain.Document, next domain.DocumentStatus, movementType domain.MovementType, actor domain.Actor, now time.Time) ([]domain.InventoryMovement, error) {
	if len(doc.Lines) == 0 {
		return nil, fmt.Errorf("%w: document %s has no lines to post", apperrors.ErrValidation, doc.DocumentID)
	}
	if err := s.validateLines(ctx, doc); err != nil {
		return nil, err
	}

	drafts := make([]domain.MovementDraft, 0, len(doc.Lines))
	for _, line := range doc.Lines {
		drafts = append(drafts, domain.MovementDraft{
			ProductUnitID: line.ProductUnitID,
			WarehouseID:   doc.WarehouseID,
			Type:          movementType,
			Quantity:      line.Quantity,
			ReferenceType: doc.Kind.ReferenceType(),
			ReferenceID:   doc.DocumentID,
			LineNo:        line.LineNo,
		})
	}

	if movementType.Direction() == domain.DirectionOutbound {
		if err := s.checkAvailability(ctx, drafts); err != nil {
			return nil, err
		}
	}

	return s.movementRepo.PostDocumentTransition(ctx, portsrepo.PostTransitionParams{
		DocumentID: doc.DocumentID,
		Kind:       doc.Kind,
		FromStatus: doc.Status,
		ToStatus:   next,
		Drafts:     drafts,
		ApproverID: actor.UserID,
		ActorID:    actor.UserID,
		Now:        now,
	})
}

// validateLines re-checks every line at posting time and reports all
// offending lines in one error. Drafts can sit for days; a product that was
// active at composition time may not be any more.
func (s *postingService) validateLines(ctx context.Context, doc *domain.Document) error {
	ids := make([]string, 0, len(doc.Lines))
	for _, line := range doc.Lines {
		ids = append(ids, line.ProductUnitID)
	}
	units, err := s.productRepo.FindProductUnitsByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to load product units: %w", err)
	}

	var problems []string
	for _, line := range doc.Lines {
		unit, ok := units[line.ProductUnitID]
		if !ok {
			problems = append(problems, fmt.Sprintf("line %d: product unit %s not found", line.LineNo, line.ProductUnitID))
			continue
		}
		if !unit.IsActive {
			problems = append(problems, fmt.Sprintf("line %d: product unit %s is inactive", line.LineNo, line.ProductUnitID))
		}
		if line.Quantity <= 0 {
			problems = append(problems, fmt.Sprintf("line %d: quantity must be positive", line.LineNo))
		}
		if line.UnitAmount.IsNegative() {
			problems = append(problems, fmt.Sprintf("line %d: amount must not be negative", line.LineNo))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(problems, "; "))
	}
	return nil
}

// checkAvailability pre-checks that every affected balance covers the
// outbound batch and reports every shortfall at once. The transaction in the
// repository re-checks under lock; this read exists to fail fast with a
// complete answer instead of aborting on the first short row.
func (s *postingService) checkAvailability(ctx context.Context, drafts []domain.MovementDraft) error {
	changes, err := stock.BalanceChanges(drafts)
	if err != nil {
		return err
	}

	var shortfalls []string
	for key, change := range changes {
		if change >= 0 {
			continue
		}
		balance, err := s.movementRepo.GetBalance(ctx, key.ProductUnitID, key.WarehouseID)
		if err != nil {
			return fmt.Errorf("failed to read balance for product unit %s in warehouse %s: %w", key.ProductUnitID, key.WarehouseID, err)
		}
		if balance+change < 0 {
			shortfalls = append(shortfalls, stock.ShortfallDetail(key, balance, -change))
		}
	}
	if len(shortfalls) > 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrInsufficientStock, strings.Join(shortfalls, "; "))
	}
	return nil
}
