package dto

import (
	"time"

	"github.com/bvtvshop/inventory_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OrderItemResponse is one order line in a response.
type OrderItemResponse struct {
	OrderItemID   string          `json:"orderItemID"`
	ProductUnitID string          `json:"productUnitID"`
	Quantity      int64           `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
}

// OrderResponse is an order with its lines, served for return prefill.
type OrderResponse struct {
	OrderID    string              `json:"orderID"`
	CustomerID string              `json:"customerID"`
	Status     string              `json:"status"`
	OrderedAt  time.Time           `json:"orderedAt"`
	Items      []OrderItemResponse `json:"items"`
}

// ToOrderResponse converts a domain order.
func ToOrderResponse(o *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, it := range o.Items {
		items[i] = OrderItemResponse{
			OrderItemID:   it.OrderItemID,
			ProductUnitID: it.ProductUnitID,
			Quantity:      it.Quantity,
			UnitPrice:     it.UnitPrice,
		}
	}
	return OrderResponse{
		OrderID:    o.OrderID,
		CustomerID: o.CustomerID,
		Status:     o.Status,
		OrderedAt:  o.OrderedAt,
		Items:      items,
	}
}
