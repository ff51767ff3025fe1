package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bvtvshop/inventory_backend/internal/core/domain"
	portssvc "github.com/bvtvshop/inventory_backend/internal/core/ports/services"
	"github.com/bvtvshop/inventory_backend/internal/dto"
)

// documentHandler carries the document plumbing shared by the three kinds.
// Each kind-specific handler embeds it with its kind fixed, so the route
// methods stay thin annotated wrappers.
type documentHandler struct {
	kind            domain.DocumentKind
	documentService portssvc.DocumentSvcFacade
	postingService  portssvc.PostingSvcFacade
}

func (h *documentHandler) getDocument(c *gin.Context) {
	documentID := c.Param("documentID")
	doc, err := h.documentService.GetDocument(c.Request.Context(), h.kind, documentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

func (h *documentHandler) listDocuments(c *gin.Context) {
	var params dto.ListDocumentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters"})
		return
	}
	docs, nextToken, err := h.documentService.ListDocuments(c.Request.Context(), h.kind, params)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.DocumentResponse, len(docs))
	for i := range docs {
		out[i] = dto.ToDocumentResponse(&docs[i])
	}
	c.JSON(http.StatusOK, dto.ListDocumentsResponse{Documents: out, NextToken: nextToken})
}

func (h *documentHandler) updateDocument(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	documentID := c.Param("documentID")

	var req dto.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	doc, err := h.documentService.UpdateDocument(c.Request.Context(), h.kind, documentID, req, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

// transition returns a handler applying the given lifecycle action. The
// request body is optional and only carries the reason (mandatory when
// rejecting a supplier return).
func (h *documentHandler) transition(action domain.TransitionAction) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := requireActor(c)
		if !ok {
			return
		}
		documentID := c.Param("documentID")

		var req dto.RejectRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
				return
			}
		}

		result, err := h.postingService.Transition(c.Request.Context(), h.kind, documentID, action, req.Reason, actor)
		if err != nil {
			respondError(c, err)
			return
		}

		movementIDs := make([]string, len(result.Movements))
		for i, m := range result.Movements {
			movementIDs[i] = m.MovementID
		}
		c.JSON(http.StatusOK, dto.TransitionResponse{
			Document:    dto.ToDocumentResponse(&result.Document),
			MovementIDs: movementIDs,
		})
	}
}
