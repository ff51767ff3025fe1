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

type PgxOrderRepository struct {
	BaseRepository
}

// newPgxOrderRepository creates a read-only repository over the storefront's
// order tables. No write path exists here on purpose.
func newPgxOrderRepository(pool *pgxpool.Pool) portsrepo.OrderRepositoryFacade {
	return &PgxOrderRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.OrderRepositoryFacade = (*PgxOrderRepository)(nil)

const orderColumns = `order_id, customer_id, status, ordered_at`

const orderItemColumns = `order_item_id, order_id, product_unit_id, quantity, unit_price`

func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_id = $1;`
	var m models.Order
	err := r.Pool.QueryRow(ctx, query, orderID).Scan(&m.OrderID, &m.CustomerID, &m.Status, &m.OrderedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateError(err, "failed to find order "+orderID)
	}

	items, err := r.findItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	order := mapping.ToDomainOrder(m, items)
	return &order, nil
}

func (r *PgxOrderRepository) ListOrdersByCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE customer_id = $1 ORDER BY ordered_at DESC;`
	rows, err := r.Pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, translateError(err, "failed to query orders")
	}
	defer rows.Close()

	modelOrders := []models.Order{}
	for rows.Next() {
		var m models.Order
		if err := rows.Scan(&m.OrderID, &m.CustomerID, &m.Status, &m.OrderedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan order row", err)
		}
		modelOrders = append(modelOrders, m)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "error iterating order rows")
	}

	orders := make([]domain.Order, 0, len(modelOrders))
	for _, m := range modelOrders {
		items, err := r.findItems(ctx, m.OrderID)
		if err != nil {
			return nil, err
		}
		orders = append(orders, mapping.ToDomainOrder(m, items))
	}
	return orders, nil
}

func (r *PgxOrderRepository) findItems(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	query := `SELECT ` + orderItemColumns + ` FROM order_items WHERE order_id = $1 ORDER BY order_item_id;`
	rows, err := r.Pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, translateError(err, "failed to query order items")
	}
	defer rows.Close()

	items := []models.OrderItem{}
	for rows.Next() {
		var it models.OrderItem
		if err := rows.Scan(&it.OrderItemID, &it.OrderID, &it.ProductUnitID, &it.Quantity, &it.UnitPrice); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan order item row", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "error iterating order item rows")
	}
	return items, nil
}
