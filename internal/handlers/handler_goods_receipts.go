package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bvtvshop/inventory_backend/internal/core/domain"
	portssvc "github.com/bvtvshop/inventory_backend/internal/core/ports/services"
	"github.com/bvtvshop/inventory_backend/internal/dto"
)

// GoodsReceiptHandler handles HTTP requests for goods receipts.
type GoodsReceiptHandler struct {
	documentHandler
}

// NewGoodsReceiptHandler creates a new GoodsReceiptHandler.
func NewGoodsReceiptHandler(documentService portssvc.DocumentSvcFacade, postingService portssvc.PostingSvcFacade) *GoodsReceiptHandler {
	return &GoodsReceiptHandler{documentHandler{
		kind:            domain.KindGoodsReceipt,
		documentService: documentService,
		postingService:  postingService,
	}}
}

// registerGoodsReceiptRoutes registers goods receipt specific routes
func registerGoodsReceiptRoutes(group *gin.RouterGroup, documentService portssvc.DocumentSvcFacade, postingService portssvc.PostingSvcFacade) {
	h := NewGoodsReceiptHandler(documentService, postingService)
	receipts := group.Group("/goods-receipts")
	{
		receipts.POST("", h.Create)
		receipts.GET("", h.List)
		receipts.GET("/:documentID", h.Get)
		receipts.PUT("/:documentID", h.Update)
		receipts.POST("/:documentID/confirm", h.Confirm)
		receipts.POST("/:documentID/cancel", h.Cancel)
	}
}

// Create godoc
// @Summary Create a goods receipt
// @Description Creates a goods receipt in DRAFT. Line VAT rates are snapshotted from the product units.
// @Tags goods-receipts
// @Accept json
// @Produce json
// @Param receipt body dto.CreateGoodsReceiptRequest true "Goods Receipt"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /goods-receipts [post]
// @Security BearerAuth
func (h *GoodsReceiptHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateGoodsReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	doc, err := h.documentService.CreateGoodsReceipt(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToDocumentResponse(doc))
}

// List godoc
// @Summary List goods receipts
// @Tags goods-receipts
// @Produce json
// @Param status query string false "Filter by status"
// @Param limit query int false "Page size"
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListDocumentsResponse
// @Router /goods-receipts [get]
// @Security BearerAuth
func (h *GoodsReceiptHandler) List(c *gin.Context) { h.listDocuments(c) }

// Get godoc
// @Summary Get a goods receipt
// @Tags goods-receipts
// @Produce json
// @Param documentID path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /goods-receipts/{documentID} [get]
// @Security BearerAuth
func (h *GoodsReceiptHandler) Get(c *gin.Context) { h.getDocument(c) }

// Update godoc
// @Summary Update a DRAFT goods receipt
// @Tags goods-receipts
// @Accept json
// @Produce json
// @Param documentID path string true "Document ID"
// @Param receipt body dto.UpdateDocumentRequest true "Fields to change"
// @Success 200 {object} dto.DocumentResponse
// @Failure 422 {object} dto.ErrorResponse "Document is no longer DRAFT"
// @Router /goods-receipts/{documentID} [put]
// @Security BearerAuth
func (h *GoodsReceiptHandler) Update(c *gin.Context) { h.updateDocument(c) }

// Confirm godoc
// @Summary Confirm a goods receipt
// @Description Confirms the receipt and posts one PURCHASE ledger entry per line.
// @Tags goods-receipts
// @Produce json
// @Param documentID path string true "Document ID"
// @Success 200 {object} dto.TransitionResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Concurrent transition won"
// @Failure 422 {object} dto.ErrorResponse
// @Router /goods-receipts/{documentID}/confirm [post]
// @Security BearerAuth
func (h *GoodsReceiptHandler) Confirm(c *gin.Context) { h.transition(domain.ActionConfirm)(c) }

// Cancel godoc
// @Summary Cancel a goods receipt
// @Description Cancels the receipt. A confirmed receipt gets compensating RETURN_OUT entries.
// @Tags goods-receipts
// @Produce json
// @Param documentID path string true "Document ID"
// @Success 200 {object} dto.TransitionResponse
// @Failure 409 {object} dto.ErrorResponse "Already cancelled or reversal raced"
// @Failure 422 {object} dto.ErrorResponse
// @Router /goods-receipts/{documentID}/cancel [post]
// @Security BearerAuth
func (h *GoodsReceiptHandler) Cancel(c *gin.Context) { h.transition(domain.ActionCancel)(c) }
