package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/bvtvshop/inventory_backend/internal/core/ports/services"
	"github.com/bvtvshop/inventory_backend/internal/dto"
)

// MovementHandler handles HTTP requests for the stock ledger.
type MovementHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// NewMovementHandler creates a new MovementHandler.
func NewMovementHandler(ledgerService portssvc.LedgerSvcFacade) *MovementHandler {
	return &MovementHandler{ledgerService: ledgerService}
}

// registerMovementRoutes registers ledger specific routes
func registerMovementRoutes(group *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := NewMovementHandler(ledgerService)
	movements := group.Group("/inventory-movements")
	{
		movements.POST("", h.Create)
		movements.GET("", h.List)
		movements.GET("/balance", h.GetBalance)
	}
}

// Create godoc
// @Summary Post a manual ledger entry
// @Description Appends one admin-initiated movement (adjustment, transfer leg, conversion leg). Document postings never use this path.
// @Tags movements
// @Accept json
// @Produce json
// @Param movement body dto.CreateMovementRequest true "Movement"
// @Success 201 {object} dto.MovementResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse "Insufficient stock"
// @Router /inventory-movements [post]
// @Security BearerAuth
func (h *MovementHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	movement, err := h.ledgerService.PostManualMovement(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToMovementResponse(*movement))
}

// List godoc
// @Summary List ledger entries
// @Description Returns ledger history ordered by creation time ascending.
// @Tags movements
// @Produce json
// @Param productUnitID query string false "Filter by product unit"
// @Param warehouseID query string false "Filter by warehouse"
// @Param limit query int false "Page size"
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListMovementsResponse
// @Router /inventory-movements [get]
// @Security BearerAuth
func (h *MovementHandler) List(c *gin.Context) {
	var params dto.ListMovementsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters"})
		return
	}
	movements, nextToken, err := h.ledgerService.ListMovements(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListMovementsResponse{
		Movements: dto.ToMovementResponses(movements),
		NextToken: nextToken,
	})
}

// GetBalance godoc
// @Summary Get the projected stock for a pair
// @Description Returns the signed-sum balance for one (product unit, warehouse) pair. Pairs with no history report zero.
// @Tags movements
// @Produce json
// @Param productUnitID query string true "Product unit ID"
// @Param warehouseID query string true "Warehouse ID"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /inventory-movements/balance [get]
// @Security BearerAuth
func (h *MovementHandler) GetBalance(c *gin.Context) {
	productUnitID := c.Query("productUnitID")
	warehouseID := c.Query("warehouseID")
	if productUnitID == "" || warehouseID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "productUnitID and warehouseID are required"})
		return
	}
	quantity, err := h.ledgerService.GetBalance(c.Request.Context(), productUnitID, warehouseID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{
		ProductUnitID: productUnitID,
		WarehouseID:   warehouseID,
		Quantity:      quantity,
	})
}
