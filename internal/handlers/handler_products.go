package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/bvtvshop/inventory_backend/internal/core/ports/services"
	"github.com/bvtvshop/inventory_backend/internal/dto"
)

// ProductUnitHandler handles HTTP requests for product unit reference data.
type ProductUnitHandler struct {
	productService portssvc.ProductUnitSvcFacade
}

// NewProductUnitHandler creates a new ProductUnitHandler.
func NewProductUnitHandler(productService portssvc.ProductUnitSvcFacade) *ProductUnitHandler {
	return &ProductUnitHandler{productService: productService}
}

// registerProductUnitRoutes registers product unit specific routes
func registerProductUnitRoutes(group *gin.RouterGroup, productService portssvc.ProductUnitSvcFacade) {
	h := NewProductUnitHandler(productService)
	products := group.Group("/product-units")
	{
		products.POST("", h.Create)
		products.GET("", h.List)
		products.GET("/:productUnitID", h.Get)
		products.PUT("/:productUnitID", h.Update)
	}
}

// Create godoc
// @Summary Create a product unit
// @Tags product-units
// @Accept json
// @Produce json
// @Param product body dto.CreateProductUnitRequest true "Product Unit"
// @Success 201 {object} dto.ProductUnitResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "SKU already exists"
// @Router /product-units [post]
// @Security BearerAuth
func (h *ProductUnitHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateProductUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	unit, err := h.productService.CreateProductUnit(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToProductUnitResponse(unit))
}

// List godoc
// @Summary List product units
// @Tags product-units
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} dto.ProductUnitResponse
// @Router /product-units [get]
// @Security BearerAuth
func (h *ProductUnitHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	units, err := h.productService.ListProductUnits(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.ProductUnitResponse, len(units))
	for i := range units {
		out[i] = dto.ToProductUnitResponse(&units[i])
	}
	c.JSON(http.StatusOK, out)
}

// Get godoc
// @Summary Get a product unit
// @Tags product-units
// @Produce json
// @Param productUnitID path string true "Product Unit ID"
// @Success 200 {object} dto.ProductUnitResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /product-units/{productUnitID} [get]
// @Security BearerAuth
func (h *ProductUnitHandler) Get(c *gin.Context) {
	unit, err := h.productService.GetProductUnitByID(c.Request.Context(), c.Param("productUnitID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProductUnitResponse(unit))
}

// Update godoc
// @Summary Update a product unit
// @Description Updates a product unit. Existing document lines keep their VAT rate snapshot.
// @Tags product-units
// @Accept json
// @Produce json
// @Param productUnitID path string true "Product Unit ID"
// @Param product body dto.UpdateProductUnitRequest true "Fields to change"
// @Success 200 {object} dto.ProductUnitResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /product-units/{productUnitID} [put]
// @Security BearerAuth
func (h *ProductUnitHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpdateProductUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	unit, err := h.productService.UpdateProductUnit(c.Request.Context(), c.Param("productUnitID"), req, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProductUnitResponse(unit))
}
