package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/bvtvshop/inventory_backend/internal/core/ports/services"
	"github.com/bvtvshop/inventory_backend/internal/dto"
)

// OrderHandler serves read-only order lookups for customer return prefill.
type OrderHandler struct {
	orderService portssvc.OrderSvcFacade
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderService portssvc.OrderSvcFacade) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// registerOrderRoutes registers order specific routes
func registerOrderRoutes(group *gin.RouterGroup, orderService portssvc.OrderSvcFacade) {
	h := NewOrderHandler(orderService)
	group.GET("/orders/by-customer/:customerID", h.ListByCustomer)
}

// ListByCustomer godoc
// @Summary List a customer's orders
// @Description Returns the customer's orders with lines, for return prefill.
// @Tags orders
// @Produce json
// @Param customerID path string true "Customer profile ID"
// @Success 200 {array} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /orders/by-customer/{customerID} [get]
// @Security BearerAuth
func (h *OrderHandler) ListByCustomer(c *gin.Context) {
	customerID := c.Param("customerID")
	if customerID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "customerID is required"})
		return
	}
	orders, err := h.orderService.ListOrdersByCustomer(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.OrderResponse, len(orders))
	for i := range orders {
		out[i] = dto.ToOrderResponse(&orders[i])
	}
	c.JSON(http.StatusOK, out)
}
