package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is read-only reference data used to prefill customer returns.
type Order struct {
	OrderID    string      `json:"orderID"` // Primary Key (e.g., UUID)
	CustomerID string      `json:"customerID"`
	Status     string      `json:"status"`
	OrderedAt  time.Time   `json:"orderedAt"`
	Items      []OrderItem `json:"items"`
}

// OrderItem is a single line of an order.
type OrderItem struct {
	OrderItemID   string          `json:"orderItemID"`
	OrderID       string          `json:"orderID"`
	ProductUnitID string          `json:"productUnitID"`
	Quantity      int64           `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
}
