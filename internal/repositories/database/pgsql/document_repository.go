package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bvtvshop/inventory_backend/internal/apperrors"
	"github.com/bvtvshop/inventory_backend/internal/core/domain"
	portsrepo "github.com/bvtvshop/inventory_backend/internal/core/ports/repositories"
	"github.com/bvtvshop/inventory_backend/internal/models"
	"github.com/bvtvshop/inventory_backend/internal/utils/mapping"
	"github.com/bvtvshop/inventory_backend/internal/utils/pagination"
)

type PgxDocumentRepository struct {
	BaseRepository
}

// newPgxDocumentRepository creates a new repository for stock documents and
// their lines.
func newPgxDocumentRepository(pool *pgxpool.Pool) portsrepo.DocumentRepositoryFacade {
	return &PgxDocumentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.DocumentRepositoryFacade = (*PgxDocumentRepository)(nil)

const documentColumns = `document_id, kind, document_no, warehouse_id, counterparty_id, source_order_id, source_doc_id, status, payment_status, reason, notes, total_vat, approver_id, approved_at, created_at, created_by, last_updated_at, last_updated_by`

const lineItemColumns = `line_item_id, document_id, line_no, product_unit_id, quantity, unit_amount, vat_rate`

// documentNoSequences maps each kind to its dedicated Postgres sequence and
// human-readable prefix.
var documentNoSequences = map[domain.DocumentKind]struct {
	sequence string
	prefix   string
}{
	domain.KindGoodsReceipt:   {"goods_receipt_no_seq", "GR"},
	domain.KindCustomerReturn: {"customer_return_no_seq", "CR"},
	domain.KindSupplierReturn: {"supplier_return_no_seq", "SR"},
}

func scanDocumentRow(row pgx.Row) (models.Document, error) {
	var m models.Document
	err := row.Scan(
		&m.DocumentID,
		&m.Kind,
		&m.DocumentNo,
		&m.WarehouseID,
		&m.CounterpartyID,
		&m.SourceOrderID,
		&m.SourceDocID,
		&m.Status,
		&m.PaymentStatus,
		&m.Reason,
		&m.Notes,
		&m.TotalVAT,
		&m.ApproverID,
		&m.ApprovedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// NextDocumentNo reserves the next human-readable sequence number for the
// kind, e.g. GR-000042. Numbers reserved for documents that are later
// cancelled leave gaps, which is acceptable.
func (r *PgxDocumentRepository) NextDocumentNo(ctx context.Context, kind domain.DocumentKind) (string, error) {
	seq, ok := documentNoSequences[kind]
	if !ok {
		return "", apperrors.NewAppError(500, "unknown document kind "+string(kind), nil)
	}
	var n int64
	if err := r.Pool.QueryRow(ctx, `SELECT nextval($1);`, seq.sequence).Scan(&n); err != nil {
		return "", translateError(err, "failed to reserve document number")
	}
	return fmt.Sprintf("%s-%06d", seq.prefix, n), nil
}

// SaveDocument persists a new document and its lines in one transaction.
func (r *PgxDocumentRepository) SaveDocument(ctx context.Context, doc domain.Document) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelDocument(doc)
	insertQuery := `
		INSERT INTO stock_documents (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err = tx.Exec(ctx, insertQuery,
		m.DocumentID,
		m.Kind,
		m.DocumentNo,
		m.WarehouseID,
		m.CounterpartyID,
		m.SourceOrderID,
		m.SourceDocID,
		m.Status,
		m.PaymentStatus,
		m.Reason,
		m.Notes,
		m.TotalVAT,
		m.ApproverID,
		m.ApprovedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err, "") {
			return apperrors.ErrDuplicate
		}
		return translateError(err, "failed to insert document "+m.DocumentID)
	}

	if err := insertLinesInTx(ctx, tx, doc); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// ReplaceDocument rewrites the mutable header fields and the full line set of
// a DRAFT document. The status predicate on the UPDATE keeps a concurrent
// transition from racing the edit.
func (r *PgxDocumentRepository) ReplaceDocument(ctx context.Context, doc domain.Document) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelDocument(doc)
	updateQuery := `
		UPDATE stock_documents
		SET warehouse_id = $2, counterparty_id = $3, source_order_id = $4, source_doc_id = $5,
		    payment_status = $6, reason = $7, notes = $8, total_vat = $9,
		    last_updated_at = $10, last_updated_by = $11
		WHERE document_id = $1 AND status = 'DRAFT';
	`
	tag, err := tx.Exec(ctx, updateQuery,
		m.DocumentID,
		m.WarehouseID,
		m.CounterpartyID,
		m.SourceOrderID,
		m.SourceDocID,
		m.PaymentStatus,
		m.Reason,
		m.Notes,
		m.TotalVAT,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateError(err, "failed to update document "+m.DocumentID)
	}
	if tag.RowsAffected() == 0 {
		// Either the row is gone or it left DRAFT under us.
		var status string
		err := tx.QueryRow(ctx, `SELECT status FROM stock_documents WHERE document_id = $1;`, m.DocumentID).Scan(&status)
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		if err != nil {
			return translateError(err, "failed to check document status")
		}
		return fmt.Errorf("%w: document %s is %s", apperrors.ErrInvalidState, m.DocumentID, status)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM document_line_items WHERE document_id = $1;`, m.DocumentID); err != nil {
		return translateError(err, "failed to delete document lines")
	}
	if err := insertLinesInTx(ctx, tx, doc); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// TransitionDocument advances the status for transitions without stock
// effect. Zero affected rows mean a concurrent transition won the race.
func (r *PgxDocumentRepository) TransitionDocument(ctx context.Context, documentID string, from, to domain.DocumentStatus, reason string, actorID string, now time.Time) error {
	return advanceDocumentStatus(ctx, r.Pool, documentID, from, to, reason, "", actorID, now)
}

// FindDocumentByID retrieves a document of the given kind with its lines.
func (r *PgxDocumentRepository) FindDocumentByID(ctx context.Context, kind domain.DocumentKind, documentID string) (*domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM stock_documents WHERE document_id = $1 AND kind = $2;`
	m, err := scanDocumentRow(r.Pool.QueryRow(ctx, query, documentID, string(kind)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateError(err, "failed to find document "+documentID)
	}

	lines, err := r.findLines(ctx, documentID)
	if err != nil {
		return nil, err
	}

	doc := mapping.ToDomainDocument(m, lines)
	return &doc, nil
}

// ListDocuments retrieves documents of one kind, newest first, with keyset
// pagination on (created_at, document_id).
func (r *PgxDocumentRepository) ListDocuments(ctx context.Context, kind domain.DocumentKind, filter portsrepo.ListDocumentsFilter) ([]domain.Document, *string, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	query := `SELECT ` + documentColumns + ` FROM stock_documents WHERE kind = $1`
	args := []interface{}{string(kind)}

	if filter.Status != "" {
		args = append(args, string(filter.Status))
		query += ` AND status = $` + strconv.Itoa(len(args))
	}
	if filter.NextToken != nil && *filter.NextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeToken(*filter.NextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastCreatedAt, lastID)
		query += ` AND (created_at, document_id) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, fetchLimit)
	query += ` ORDER BY created_at DESC, document_id DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, translateError(err, "failed to query documents")
	}
	defer rows.Close()

	modelDocs := []models.Document{}
	for rows.Next() {
		m, err := scanDocumentRow(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan document row", err)
		}
		modelDocs = append(modelDocs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, translateError(err, "error iterating document rows")
	}

	var nextToken *string
	if len(modelDocs) > limit {
		modelDocs = modelDocs[:limit]
		last := modelDocs[len(modelDocs)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.DocumentID)
		nextToken = &token
	}

	linesByDoc, err := r.findLinesForDocuments(ctx, modelDocs)
	if err != nil {
		return nil, nil, err
	}

	docs := make([]domain.Document, 0, len(modelDocs))
	for _, m := range modelDocs {
		docs = append(docs, mapping.ToDomainDocument(m, linesByDoc[m.DocumentID]))
	}
	return docs, nextToken, nil
}

func (r *PgxDocumentRepository) findLines(ctx context.Context, documentID string) ([]models.LineItem, error) {
	query := `SELECT ` + lineItemColumns + ` FROM document_line_items WHERE document_id = $1 ORDER BY line_no;`
	rows, err := r.Pool.Query(ctx, query, documentID)
	if err != nil {
		return nil, translateError(err, "failed to query document lines")
	}
	defer rows.Close()

	lines := []models.LineItem{}
	for rows.Next() {
		var l models.LineItem
		if err := rows.Scan(&l.LineItemID, &l.DocumentID, &l.LineNo, &l.ProductUnitID, &l.Quantity, &l.UnitAmount, &l.VATRate); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line item row", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "error iterating line item rows")
	}
	return lines, nil
}

func (r *PgxDocumentRepository) findLinesForDocuments(ctx context.Context, docs []models.Document) (map[string][]models.LineItem, error) {
	linesByDoc := make(map[string][]models.LineItem, len(docs))
	if len(docs) == 0 {
		return linesByDoc, nil
	}
	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.DocumentID)
	}

	query := `SELECT ` + lineItemColumns + ` FROM document_line_items WHERE document_id = ANY($1) ORDER BY document_id, line_no;`
	rows, err := r.Pool.Query(ctx, query, ids)
	if err != nil {
		return nil, translateError(err, "failed to query document lines")
	}
	defer rows.Close()

	for rows.Next() {
		var l models.LineItem
		if err := rows.Scan(&l.LineItemID, &l.DocumentID, &l.LineNo, &l.ProductUnitID, &l.Quantity, &l.UnitAmount, &l.VATRate); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line item row", err)
		}
		linesByDoc[l.DocumentID] = append(linesByDoc[l.DocumentID], l)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "error iterating line item rows")
	}
	return linesByDoc, nil
}

func insertLinesInTx(ctx context.Context, tx pgx.Tx, doc domain.Document) error {
	if len(doc.Lines) == 0 {
		return nil
	}
	insertQuery := `
		INSERT INTO document_line_items (` + lineItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	batch := &pgx.Batch{}
	for _, line := range doc.Lines {
		l := mapping.ToModelLineItem(line)
		l.DocumentID = doc.DocumentID
		batch.Queue(insertQuery, l.LineItemID, l.DocumentID, l.LineNo, l.ProductUnitID, l.Quantity, l.UnitAmount, l.VATRate)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return translateError(err, "failed to execute line item insert batch")
	}
	return nil
}

// execer is satisfied by both *pgxpool.Pool and pgx.Tx, so the status
// advance can run standalone or inside a posting transaction.
type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// advanceDocumentStatus performs the optimistic status UPDATE. Zero affected
// rows mean the from-status predicate did not match, which is a lost race.
func advanceDocumentStatus(ctx context.Context, db execer, documentID string, from, to domain.DocumentStatus, reason, approverID, actorID string, now time.Time) error {
	query := `
		UPDATE stock_documents
		SET status = $3, last_updated_at = $4, last_updated_by = $5
	`
	args := []interface{}{documentID, string(from), string(to), now, actorID}

	if reason != "" {
		args = append(args, reason)
		query += `, reason = $` + strconv.Itoa(len(args))
	}
	if approverID != "" {
		args = append(args, approverID, now)
		query += `, approver_id = $` + strconv.Itoa(len(args)-1) + `, approved_at = $` + strconv.Itoa(len(args))
	}
	query += ` WHERE document_id = $1 AND status = $2;`

	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return translateError(err, "failed to transition document "+documentID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}
	return nil
}
