package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bvtvshop/inventory_backend/internal/apperrors"
	"github.com/bvtvshop/inventory_backend/internal/core/domain"
	portsrepo "github.com/bvtvshop/inventory_backend/internal/core/ports/repositories"
	"github.com/bvtvshop/inventory_backend/internal/models"
	"github.com/bvtvshop/inventory_backend/internal/utils/mapping"
)

type PgxProductUnitRepository struct {
	BaseRepository
}

// newPgxProductUnitRepository creates a new repository for product unit
// reference data.
func newPgxProductUnitRepository(pool *pgxpool.Pool) portsrepo.ProductUnitRepositoryFacade {
	return &PgxProductUnitRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ProductUnitRepositoryFacade = (*PgxProductUnitRepository)(nil)

const productUnitColumns = `product_unit_id, sku, name, unit, vat_rate, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanProductUnit(row pgx.Row) (models.ProductUnit, error) {
	var m models.ProductUnit
	err := row.Scan(
		&m.ProductUnitID,
		&m.SKU,
		&m.Name,
		&m.Unit,
		&m.VATRate,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxProductUnitRepository) FindProductUnitByID(ctx context.Context, productUnitID string) (*domain.ProductUnit, error) {
	query := `SELECT ` + productUnitColumns + ` FROM product_units WHERE product_unit_id = $1;`
	m, err := scanProductUnit(r.Pool.QueryRow(ctx, query, productUnitID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateError(err, "failed to find product unit "+productUnitID)
	}
	unit := mapping.ToDomainProductUnit(m)
	return &unit, nil
}

// FindProductUnitsByIDs returns the found units keyed by id; missing ids are
// absent from the map, not an error.
func (r *PgxProductUnitRepository) FindProductUnitsByIDs(ctx context.Context, productUnitIDs []string) (map[string]domain.ProductUnit, error) {
	units := make(map[string]domain.ProductUnit, len(productUnitIDs))
	if len(productUnitIDs) == 0 {
		return units, nil
	}

	query := `SELECT ` + productUnitColumns + ` FROM product_units WHERE product_unit_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, productUnitIDs)
	if err != nil {
		return nil, translateError(err, "failed to query product units")
	}
	defer rows.Close()

	for rows.Next() {
		m, err := scanProductUnit(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan product unit row", err)
		}
		units[m.ProductUnitID] = mapping.ToDomainProductUnit(m)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "error iterating product unit rows")
	}
	return units, nil
}

func (r *PgxProductUnitRepository) ListProductUnits(ctx context.Context, limit int, offset int) ([]domain.ProductUnit, error) {
	query := `SELECT ` + productUnitColumns + ` FROM product_units ORDER BY name LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, translateError(err, "failed to query product units")
	}
	defer rows.Close()

	units := []domain.ProductUnit{}
	for rows.Next() {
		m, err := scanProductUnit(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan product unit row", err)
		}
		units = append(units, mapping.ToDomainProductUnit(m))
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "error iterating product unit rows")
	}
	return units, nil
}

func (r *PgxProductUnitRepository) SaveProductUnit(ctx context.Context, unit domain.ProductUnit) error {
	m := mapping.ToModelProductUnit(unit)
	query := `
		INSERT INTO product_units (` + productUnitColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProductUnitID, m.SKU, m.Name, m.Unit, m.VATRate, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err, "") {
			return apperrors.ErrDuplicate
		}
		return translateError(err, "failed to insert product unit "+m.ProductUnitID)
	}
	return nil
}

func (r *PgxProductUnitRepository) UpdateProductUnit(ctx context.Context, unit domain.ProductUnit) error {
	m := mapping.ToModelProductUnit(unit)
	query := `
		UPDATE product_units
		SET sku = $2, name = $3, unit = $4, vat_rate = $5, is_active = $6, last_updated_at = $7, last_updated_by = $8
		WHERE product_unit_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ProductUnitID, m.SKU, m.Name, m.Unit, m.VATRate, m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err, "") {
			return apperrors.ErrDuplicate
		}
		return translateError(err, "failed to update product unit "+m.ProductUnitID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
