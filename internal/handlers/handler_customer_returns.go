package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bvtvshop/inventory_backend/internal/core/domain"
	portssvc "github.com/bvtvshop/inventory_backend/internal/core/ports/services"
	"github.com/bvtvshop/inventory_backend/internal/dto"
)

// CustomerReturnHandler handles HTTP requests for customer returns.
type CustomerReturnHandler struct {
	documentHandler
}

// NewCustomerReturnHandler creates a new CustomerReturnHandler.
func NewCustomerReturnHandler(documentService portssvc.DocumentSvcFacade, postingService portssvc.PostingSvcFacade) *CustomerReturnHandler {
	return &CustomerReturnHandler{documentHandler{
		kind:            domain.KindCustomerReturn,
		documentService: documentService,
		postingService:  postingService,
	}}
}

// registerCustomerReturnRoutes registers customer return specific routes
func registerCustomerReturnRoutes(group *gin.RouterGroup, documentService portssvc.DocumentSvcFacade, postingService portssvc.PostingSvcFacade) {
	h := NewCustomerReturnHandler(documentService, postingService)
	returns := group.Group("/customer-returns")
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
// @Summary Create a customer return
// @Description Creates a customer return in DRAFT. With an orderID and no items, lines are prefilled from the order.
// @Tags customer-returns
// @Accept json
// @Produce json
// @Param return body dto.CreateCustomerReturnRequest true "Customer Return"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /customer-returns [post]
// @Security BearerAuth
func (h *CustomerReturnHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateCustomerReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	doc, err := h.documentService.CreateCustomerReturn(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToDocumentResponse(doc))
}

// List godoc
// @Summary List customer returns
// @Tags customer-returns
// @Produce json
// @Param status query string false "Filter by status"
// @Param limit query int false "Page size"
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListDocumentsResponse
// @Router /customer-returns [get]
// @Security BearerAuth
func (h *CustomerReturnHandler) List(c *gin.Context) { h.listDocuments(c) }

// Get godoc
// @Summary Get a customer return
// @Tags customer-returns
// @Produce json
// @Param documentID path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /customer-returns/{documentID} [get]
// @Security BearerAuth
func (h *CustomerReturnHandler) Get(c *gin.Context) { h.getDocument(c) }

// Update godoc
// @Summary Update a DRAFT customer return
// @Tags customer-returns
// @Accept json
// @Produce json
// @Param documentID path string true "Document ID"
// @Param return body dto.UpdateDocumentRequest true "Fields to change"
// @Success 200 {object} dto.DocumentResponse
// @Failure 422 {object} dto.ErrorResponse "Document is no longer DRAFT"
// @Router /customer-returns/{documentID} [put]
// @Security BearerAuth
func (h *CustomerReturnHandler) Update(c *gin.Context) { h.updateDocument(c) }

// Submit godoc
// @Summary Submit a customer return for approval
// @Tags customer-returns
// @Produce json
// @Param documentID path string true "Document ID"
// @Success 200 {object} dto.TransitionResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /customer-returns/{documentID}/submit [post]
// @Security BearerAuth
func (h *CustomerReturnHandler) Submit(c *gin.Context) { h.transition(domain.ActionSubmit)(c) }

// Approve godoc
// @Summary Approve a customer return
// @Description Approves the return and posts one RETURN_IN ledger entry per line.
// @Tags customer-returns
// @Produce json
// @Param documentID path string true "Document ID"
// @Success 200 {object} dto.TransitionResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Concurrent transition won"
// @Failure 422 {object} dto.ErrorResponse
// @Router /customer-returns/{documentID}/approve [post]
// @Security BearerAuth
func (h *CustomerReturnHandler) Approve(c *gin.Context) { h.transition(domain.ActionApprove)(c) }

// Reject godoc
// @Summary Reject a customer return
// @Tags customer-returns
// @Accept json
// @Produce json
// @Param documentID path string true "Document ID"
// @Param body body dto.RejectRequest false "Rejection reason"
// @Success 200 {object} dto.TransitionResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /customer-returns/{documentID}/reject [post]
// @Security BearerAuth
func (h *CustomerReturnHandler) Reject(c *gin.Context) { h.transition(domain.ActionReject)(c) }

// Cancel godoc
// @Summary Cancel a customer return
// @Description Cancels the return. An approved return gets compensating RETURN_OUT entries.
// @Tags customer-returns
// @Produce json
// @Param documentID path string true "Document ID"
// @Success 200 {object} dto.TransitionResponse
// @Failure 409 {object} dto.ErrorResponse "Already cancelled or reversal raced"
// @Failure 422 {object} dto.ErrorResponse
// @Router /customer-returns/{documentID}/cancel [post]
// @Security BearerAuth
func (h *CustomerReturnHandler) Cancel(c *gin.Context) { h.transition(domain.ActionCancel)(c) }
