package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the persisted shape of an order header (read-only here).
type Order struct {
	OrderID    string    `json:"orderID"`
	CustomerID string    `json:"customerID"`
	Status     string    `json:"status"`
	OrderedAt  time.Time `json:"orderedAt"`
}

// OrderItem is the persisted shape of an order line (read-only here).
type OrderItem struct {
	OrderItemID   string          `json:"orderItemID"`
	OrderID       string          `json:"orderID"`
	ProductUnitID string          `json:"productUnitID"`
	Quantity      int64           `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
}
