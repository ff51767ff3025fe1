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

type PgxWarehouseRepository struct {
	BaseRepository
}

// newPgxWarehouseRepository creates a new repository for warehouse reference
// data.
func newPgxWarehouseRepository(pool *pgxpool.Pool) portsrepo.WarehouseRepositoryFacade {
	return &PgxWarehouseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.WarehouseRepositoryFacade = (*PgxWarehouseRepository)(nil)

const warehouseColumns = `warehouse_id, name, address, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanWarehouse(row pgx.Row) (models.Warehouse, error) {
	var m models.Warehouse
	err := row.Scan(
		&m.WarehouseID,
		&m.Name,
		&m.Address,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxWarehouseRepository) FindWarehouseByID(ctx context.Context, warehouseID string) (*domain.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + ` FROM warehouses WHERE warehouse_id = $1;`
	m, err := scanWarehouse(r.Pool.QueryRow(ctx, query, warehouseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateError(err, "failed to find warehouse "+warehouseID)
	}
	warehouse := mapping.ToDomainWarehouse(m)
	return &warehouse, nil
}

func (r *PgxWarehouseRepository) ListWarehouses(ctx context.Context, limit int, offset int) ([]domain.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + ` FROM warehouses ORDER BY name LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, translateError(err, "failed to query warehouses")
	}
	defer rows.Close()

	warehouses := []domain.Warehouse{}
	for rows.Next() {
		m, err := scanWarehouse(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan warehouse row", err)
		}
		warehouses = append(warehouses, mapping.ToDomainWarehouse(m))
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "error iterating warehouse rows")
	}
	return warehouses, nil
}

func (r *PgxWarehouseRepository) SaveWarehouse(ctx context.Context, warehouse domain.Warehouse) error {
	m := mapping.ToModelWarehouse(warehouse)
	query := `
		INSERT INTO warehouses (` + warehouseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.WarehouseID, m.Name, m.Address, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err, "") {
			return apperrors.ErrDuplicate
		}
		return translateError(err, "failed to insert warehouse "+m.WarehouseID)
	}
	return nil
}

func (r *PgxWarehouseRepository) UpdateWarehouse(ctx context.Context, warehouse domain.Warehouse) error {
	m := mapping.ToModelWarehouse(warehouse)
	query := `
		UPDATE warehouses
		SET name = $2, address = $3, is_active = $4, last_updated_at = $5, last_updated_by = $6
		WHERE warehouse_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.WarehouseID, m.Name, m.Address, m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateError(err, "failed to update warehouse "+m.WarehouseID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
