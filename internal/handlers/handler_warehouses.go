package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/bvtvshop/inventory_backend/internal/core/ports/services"
	"github.com/bvtvshop/inventory_backend/internal/dto"
)

// WarehouseHandler handles HTTP requests for warehouse reference data.
type WarehouseHandler struct {
	warehouseService portssvc.WarehouseSvcFacade
}

// NewWarehouseHandler creates a new WarehouseHandler.
func NewWarehouseHandler(warehouseService portssvc.WarehouseSvcFacade) *WarehouseHandler {
	return &WarehouseHandler{warehouseService: warehouseService}
}

// registerWarehouseRoutes registers warehouse specific routes
func registerWarehouseRoutes(group *gin.RouterGroup, warehouseService portssvc.WarehouseSvcFacade) {
	h := NewWarehouseHandler(warehouseService)
	warehouses := group.Group("/warehouses")
	{
		warehouses.POST("", h.Create)
		warehouses.GET("", h.List)
		warehouses.GET("/:warehouseID", h.Get)
		warehouses.PUT("/:warehouseID", h.Update)
	}
}

// Create godoc
// @Summary Create a warehouse
// @Tags warehouses
// @Accept json
// @Produce json
// @Param warehouse body dto.CreateWarehouseRequest true "Warehouse"
// @Success 201 {object} dto.WarehouseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /warehouses [post]
// @Security BearerAuth
func (h *WarehouseHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	warehouse, err := h.warehouseService.CreateWarehouse(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToWarehouseResponse(warehouse))
}

// List godoc
// @Summary List warehouses
// @Tags warehouses
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} dto.WarehouseResponse
// @Router /warehouses [get]
// @Security BearerAuth
func (h *WarehouseHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	warehouses, err := h.warehouseService.ListWarehouses(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.WarehouseResponse, len(warehouses))
	for i := range warehouses {
		out[i] = dto.ToWarehouseResponse(&warehouses[i])
	}
	c.JSON(http.StatusOK, out)
}

// Get godoc
// @Summary Get a warehouse
// @Tags warehouses
// @Produce json
// @Param warehouseID path string true "Warehouse ID"
// @Success 200 {object} dto.WarehouseResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /warehouses/{warehouseID} [get]
// @Security BearerAuth
func (h *WarehouseHandler) Get(c *gin.Context) {
	warehouse, err := h.warehouseService.GetWarehouseByID(c.Request.Context(), c.Param("warehouseID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToWarehouseResponse(warehouse))
}

// Update godoc
// @Summary Update a warehouse
// @Tags warehouses
// @Accept json
// @Produce json
// @Param warehouseID path string true "Warehouse ID"
// @Param warehouse body dto.UpdateWarehouseRequest true "Fields to change"
// @Success 200 {object} dto.WarehouseResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /warehouses/{warehouseID} [put]
// @Security BearerAuth
func (h *WarehouseHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpdateWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	warehouse, err := h.warehouseService.UpdateWarehouse(c.Request.Context(), c.Param("warehouseID"), req, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToWarehouseResponse(warehouse))
}
