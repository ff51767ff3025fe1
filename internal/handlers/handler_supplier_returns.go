package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bvtvshop/inventory_backend/internal/core/domain"
	portssvc "github.com/bvtvshop/inventory_backend/internal/core/ports/services"
	"github.com/bvtvshop/inventory_backend/internal/dto"
)

// SupplierReturnHandler handles HTTP requests for supplier returns.
type SupplierReturnHandler struct {
	documentHandler
}

// NewSupplierReturnHandler creates a new SupplierReturnHandler.
func NewSupplierReturnHandler(documentService portssvc.DocumentSvcFacade, postingService portssvc.PostingSvcFacade) *SupplierReturnHandler {
	return &SupplierReturnHandler{documentHandler{
		kind:            domain.KindSupplierReturn,
		documentService: documentService,
		postingService:  postingService,
	}}
}

// registerSupplierReturnRoutes registers supplier return specific routes
func registerSupplierReturnRoutes(group *gin.RouterGroup, documentService portssvc.DocumentSvcFacade, postingService portssvc.PostingSvcFacade) {
	h := NewSupplierReturnHandler(documentService, postingService)
	returns := group.Group("/supplier-returns")
	{
		returns.POST("", h.Create)
		returns.GET("", h.List)
		returns.GET("/:documentID", h.Get)
		returns.PUT("/:documentID", h.Update)
		returns.POST("/:documentID/submit", h.Submit)
		returns.POST("/:documentID/approve", h.Approve)
		returns.POST("/:documentID/reject", h.Reject)
		returns.POST("/:documentID/cancel", h.Cancel)
	}
}

// Create godoc
// @Summary Create a supplier return
// @Description Creates a supplier return in DRAFT. With a receiptID and no items, lines and the VAT total are prefilled from the goods receipt.
// @Tags supplier-returns
// @Accept json
// @Produce json
// @Param return body dto.CreateSupplierReturnRequest true "Supplier Return"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /supplier-returns [post]
// @Security BearerAuth
func (h *SupplierReturnHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateSupplierReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	doc, err := h.documentService.CreateSupplierReturn(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToDocumentResponse(doc))
}

// List godoc
// @Summary List supplier returns
// @Tags supplier-returns
// @Produce json
// @Param status query string false "Filter by status"
// @Param limit query int false "Page size"
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListDocumentsResponse
// @Router /supplier-returns [get]
// @Security BearerAuth
func (h *SupplierReturnHandler) List(c *gin.Context) { h.listDocuments(c) }

// Get godoc
// @Summary Get a supplier return
// @Tags supplier-returns
// @Produce json
// @Param documentID path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /supplier-returns/{documentID} [get]
// @Security BearerAuth
func (h *SupplierReturnHandler) Get(c *gin.Context) { h.getDocument(c) }

// Update godoc
// @Summary Update a DRAFT supplier return
// @Tags supplier-returns
// @Accept json
// @Produce json
// @Param documentID path string true "Document ID"
// @Param return body dto.UpdateDocumentRequest true "Fields to change"
// @Success 200 {object} dto.DocumentResponse
// @Failure 422 {object} dto.ErrorResponse "Document is no longer DRAFT"
// @Router /supplier-returns/{documentID} [put]
// @Security BearerAuth
func (h *SupplierReturnHandler) Update(c *gin.Context) { h.updateDocument(c) }

// Submit godoc
// @Summary Submit a supplier return for approval
// @Tags supplier-returns
// @Produce json
// @Param documentID path string true "Document ID"
// @Success 200 {object} dto.TransitionResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /supplier-returns/{documentID}/submit [post]
// @Security BearerAuth
func (h *SupplierReturnHandler) Submit(c *gin.Context) { h.transition(domain.ActionSubmit)(c) }

// Approve godoc
// @Summary Approve a supplier return
// @Description Approves the return and posts one RETURN_OUT ledger entry per line. Fails with 422 when stock does not cover the return.
// @Tags supplier-returns
// @Produce json
// @Param documentID path string true "Document ID"
// @Success 200 {object} dto.TransitionResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Concurrent transition won"
// @Failure 422 {object} dto.ErrorResponse "Insufficient stock or illegal transition"
// @Router /supplier-returns/{documentID}/approve [post]
// @Security BearerAuth
func (h *SupplierReturnHandler) Approve(c *gin.Context) { h.transition(domain.ActionApprove)(c) }

// Reject godoc
// @Summary Reject a supplier return
// @Description Rejects the return. A reason is mandatory.
// @Tags supplier-returns
// @Accept json
// @Produce json
// @Param documentID path string true "Document ID"
// @Param body body dto.RejectRequest true "Rejection reason"
// @Success 200 {object} dto.TransitionResponse
// @Failure 400 {object} dto.ErrorResponse "Missing reason"
// @Failure 403 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /supplier-returns/{documentID}/reject [post]
// @Security BearerAuth
func (h *SupplierReturnHandler) Reject(c *gin.Context) { h.transition(domain.ActionReject)(c) }

// Cancel godoc
// @Summary Cancel a supplier return
// @Description Cancels the return. An approved return gets compensating RETURN_IN entries.
// @Tags supplier-returns
// @Produce json
// @Param documentID path string true "Document ID"
// @Success 200 {object} dto.TransitionResponse
// @Failure 409 {object} dto.ErrorResponse "Already cancelled or reversal raced"
// @Failure 422 {object} dto.ErrorResponse
// @Router /supplier-returns/{documentID}/cancel [post]
// @Security BearerAuth
func (h *SupplierReturnHandler) Cancel(c *gin.Context) { h.transition(domain.ActionCancel)(c) }
