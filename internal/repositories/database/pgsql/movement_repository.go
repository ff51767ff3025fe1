package pgsql

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bvtvshop/inventory_backend/internal/apperrors"
	"github.com/bvtvshop/inventory_backend/internal/core/domain"
	portsrepo "github.com/bvtvshop/inventory_backend/internal/core/ports/repositories"
	"github.com/bvtvshop/inventory_backend/internal/models"
	"github.com/bvtvshop/inventory_backend/internal/utils/mapping"
	"github.com/bvtvshop/inventory_backend/internal/utils/pagination"
	"github.com/bvtvshop/inventory_backend/internal/utils/stock"
)

// uqMovementReference is the unique index on (reference_type, reference_id,
// line_no). It is the ledger's idempotency guard: a duplicate posting or a
// second reversal trips it.
const uqMovementReference = "uq_inventory_movements_reference"

type PgxMovementRepository struct {
	BaseRepository
}

// newPgxMovementRepository creates a new repository for the movement ledger
// and its materialized balances.
func newPgxMovementRepository(pool *pgxpool.Pool) portsrepo.MovementRepositoryFacade {
	return &PgxMovementRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.MovementRepositoryFacade = (*PgxMovementRepository)(nil)

const movementColumns = `movement_id, product_unit_id, warehouse_id, movement_type, quantity, reference_type, reference_id, line_no, notes, created_at, created_by`

func scanMovement(rows pgx.Rows) (models.InventoryMovement, error) {
	var m models.InventoryMovement
	err := rows.Scan(
		&m.MovementID,
		&m.ProductUnitID,
		&m.WarehouseID,
		&m.Type,
		&m.Quantity,
		&m.ReferenceType,
		&m.ReferenceID,
		&m.LineNo,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	return m, err
}

// ListMovements retrieves ledger entries ordered by creation time ascending
// using token-based pagination.
func (r *PgxMovementRepository) ListMovements(ctx context.Context, filter portsrepo.ListMovementsFilter) ([]domain.InventoryMovement, *string, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	// Fetch one extra row to know whether a next page exists.
	fetchLimit := limit + 1

	query := `SELECT ` + movementColumns + ` FROM inventory_movements WHERE 1=1`
	args := []interface{}{}

	if filter.ProductUnitID != "" {
		args = append(args, filter.ProductUnitID)
		query += ` AND product_unit_id = $` + strconv.Itoa(len(args))
	}
	if filter.WarehouseID != "" {
		args = append(args, filter.WarehouseID)
		query += ` AND warehouse_id = $` + strconv.Itoa(len(args))
	}
	if filter.NextToken != nil && *filter.NextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeToken(*filter.NextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastCreatedAt, lastID)
		query += ` AND (created_at, movement_id) > ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, fetchLimit)
	query += ` ORDER BY created_at ASC, movement_id ASC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, translateError(err, "failed to query movements")
	}
	defer rows.Close()

	modelMovements := []models.InventoryMovement{}
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan movement row", err)
		}
		modelMovements = append(modelMovements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, translateError(err, "error iterating movement rows")
	}

	var nextToken *string
	if len(modelMovements) > limit {
		modelMovements = modelMovements[:limit]
		last := modelMovements[len(modelMovements)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.MovementID)
		nextToken = &token
	}

	return mapping.ToDomainMovementSlice(modelMovements), nextToken, nil
}

// FindMovementsByReference retrieves all entries carrying the given
// back-reference, ordered by line ordinal.
func (r *PgxMovementRepository) FindMovementsByReference(ctx context.Context, referenceType, referenceID string) ([]domain.InventoryMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM inventory_movements WHERE reference_type = $1 AND reference_id = $2 ORDER BY line_no;`
	rows, err := r.Pool.Query(ctx, query, referenceType, referenceID)
	if err != nil {
		return nil, translateError(err, "failed to query movements by reference")
	}
	defer rows.Close()

	modelMovements := []models.InventoryMovement{}
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan movement row", err)
		}
		modelMovements = append(modelMovements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "error iterating movement rows")
	}

	return mapping.ToDomainMovementSlice(modelMovements), nil
}

// GetBalance returns the materialized projection for the pair. A missing row
// means no movement ever touched the pair, which is balance zero.
func (r *PgxMovementRepository) GetBalance(ctx context.Context, productUnitID, warehouseID string) (int64, error) {
	query := `SELECT quantity FROM stock_balances WHERE product_unit_id = $1 AND warehouse_id = $2;`
	var quantity int64
	err := r.Pool.QueryRow(ctx, query, productUnitID, warehouseID).Scan(&quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, translateError(err, "failed to query stock balance")
	}
	return quantity, nil
}

// PostMovements appends the batch as one transaction.
func (r *PgxMovementRepository) PostMovements(ctx context.Context, drafts []domain.MovementDraft, createdBy string, now time.Time) ([]domain.InventoryMovement, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	movements, err := r.postBatchInTx(ctx, tx, drafts, createdBy, now)
	if err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return movements, nil
}

// PostDocumentTransition advances the document status and posts the ledger
// batch as one transaction. The optimistic from-status check on the UPDATE is
// what serializes concurrent transitions of the same document: the loser
// matches zero rows and gets ErrConflict.
func (r *PgxMovementRepository) PostDocumentTransition(ctx context.Context, p portsrepo.PostTransitionParams) ([]domain.InventoryMovement, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	if err := advanceDocumentStatus(ctx, tx, p.DocumentID, p.FromStatus, p.ToStatus, "", p.ApproverID, p.ActorID, p.Now); err != nil {
		return nil, err
	}

	movements, err := r.postBatchInTx(ctx, tx, p.Drafts, p.ActorID, p.Now)
	if err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return movements, nil
}

// ReverseDocumentPostings posts one compensating entry per original movement
// and advances the status, all in one transaction. Reversal entries reuse the
// original reference id and line ordinal under the _reversal reference type,
// so a second reversal hits the duplicate guard and fails with ErrConflict.
func (r *PgxMovementRepository) ReverseDocumentPostings(ctx context.Context, p portsrepo.ReverseTransitionParams) ([]domain.InventoryMovement, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	if err := advanceDocumentStatus(ctx, tx, p.DocumentID, p.FromStatus, p.ToStatus, "", "", p.ActorID, p.Now); err != nil {
		return nil, err
	}

	referenceType := p.Kind.ReferenceType()
	query := `SELECT ` + movementColumns + ` FROM inventory_movements WHERE reference_type = $1 AND reference_id = $2 ORDER BY line_no;`
	rows, err := tx.Query(ctx, query, referenceType, p.DocumentID)
	if err != nil {
		return nil, translateError(err, "failed to query postings for reversal")
	}
	originals := []models.InventoryMovement{}
	for rows.Next() {
		m, scanErr := scanMovement(rows)
		if scanErr != nil {
			rows.Close()
			return nil, apperrors.NewAppError(500, "failed to scan movement row", scanErr)
		}
		originals = append(originals, m)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "error iterating movement rows")
	}
	if len(originals) == 0 {
		return nil, apperrors.NewAppError(500, "document "+p.DocumentID+" holds no postings to reverse", nil)
	}

	drafts := make([]domain.MovementDraft, 0, len(originals))
	for _, original := range originals {
		drafts = append(drafts, domain.MovementDraft{
			ProductUnitID: original.ProductUnitID,
			WarehouseID:   original.WarehouseID,
			Type:          domain.MovementType(original.Type).Opposite(),
			Quantity:      original.Quantity,
			ReferenceType: domain.ReversalReferenceType(original.ReferenceType),
			ReferenceID:   original.ReferenceID,
			LineNo:        original.LineNo,
			Notes:         "reversal of movement " + original.MovementID,
		})
	}

	movements, err := r.postBatchInTx(ctx, tx, drafts, p.ActorID, p.Now)
	if err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return movements, nil
}

// postBatchInTx locks the affected balances, verifies nothing goes negative,
// inserts the ledger rows and writes the updated balances. Balance rows are
// locked in sorted key order to keep concurrent batches from deadlocking.
func (r *PgxMovementRepository) postBatchInTx(ctx context.Context, tx pgx.Tx, drafts []domain.MovementDraft, createdBy string, now time.Time) ([]domain.InventoryMovement, error) {
	if len(drafts) == 0 {
		return nil, apperrors.NewAppError(500, "empty movement batch", nil)
	}

	changes, err := stock.BalanceChanges(drafts)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to aggregate balance changes", err)
	}

	keys := make([]stock.BalanceKey, 0, len(changes))
	for key := range changes {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].ProductUnitID != keys[j].ProductUnitID {
			return keys[i].ProductUnitID < keys[j].ProductUnitID
		}
		return keys[i].WarehouseID < keys[j].WarehouseID
	})

	ensureQuery := `
		INSERT INTO stock_balances (product_unit_id, warehouse_id, quantity, updated_at)
		VALUES ($1, $2, 0, $3)
		ON CONFLICT (product_unit_id, warehouse_id) DO NOTHING;
	`
	lockQuery := `SELECT quantity FROM stock_balances WHERE product_unit_id = $1 AND warehouse_id = $2 FOR UPDATE;`
	updateQuery := `UPDATE stock_balances SET quantity = $3, updated_at = $4 WHERE product_unit_id = $1 AND warehouse_id = $2;`

	for _, key := range keys {
		if _, err := tx.Exec(ctx, ensureQuery, key.ProductUnitID, key.WarehouseID, now); err != nil {
			return nil, translateError(err, "failed to ensure stock balance row")
		}
		var current int64
		if err := tx.QueryRow(ctx, lockQuery, key.ProductUnitID, key.WarehouseID).Scan(&current); err != nil {
			return nil, translateError(err, "failed to lock stock balance row")
		}
		next := current + changes[key]
		if next < 0 {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrInsufficientStock, stock.ShortfallDetail(key, current, -changes[key]))
		}
		if _, err := tx.Exec(ctx, updateQuery, key.ProductUnitID, key.WarehouseID, next, now); err != nil {
			return nil, translateError(err, "failed to update stock balance row")
		}
	}

	insertQuery := `
		INSERT INTO inventory_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	batch := &pgx.Batch{}
	movements := make([]domain.InventoryMovement, 0, len(drafts))
	for _, draft := range drafts {
		movement := domain.InventoryMovement{
			MovementID:    uuid.NewString(),
			ProductUnitID: draft.ProductUnitID,
			WarehouseID:   draft.WarehouseID,
			Type:          draft.Type,
			Quantity:      draft.Quantity,
			ReferenceType: draft.ReferenceType,
			ReferenceID:   draft.ReferenceID,
			LineNo:        draft.LineNo,
			Notes:         draft.Notes,
			CreatedAt:     now,
			CreatedBy:     createdBy,
		}
		movements = append(movements, movement)

		m := mapping.ToModelMovement(movement)
		batch.Queue(insertQuery,
			m.MovementID,
			m.ProductUnitID,
			m.WarehouseID,
			m.Type,
			m.Quantity,
			m.ReferenceType,
			m.ReferenceID,
			m.LineNo,
			m.Notes,
			m.CreatedAt,
			m.CreatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		if isUniqueViolation(err, uqMovementReference) || isUniqueViolation(err, "") {
			return nil, apperrors.ErrConflict
		}
		return nil, translateError(err, "failed to execute movement insert batch")
	}

	return movements, nil
}
