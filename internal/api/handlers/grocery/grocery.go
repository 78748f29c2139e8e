package grocery

import (
	"net/http"

	"homechef/internal/api/handlers"
	groceryService "homechef/internal/core/grocery"
	"homechef/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// Handler serves the grocery list endpoints.
type Handler struct {
	service *groceryService.Service
}

// NewHandler creates a grocery handler.
func NewHandler(service *groceryService.Service) *Handler {
	return &Handler{service: service}
}

// ItemRequest carries one manually added grocery entry.
type ItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// SatisfiedRequest carries the check-off state.
type SatisfiedRequest struct {
	Satisfied bool `json:"satisfied"`
}

// List handles GET /grocery.
func (h *Handler) List(c *gin.Context) {
	items, err := h.service.ListGrocery(c.Request.Context())
	if err != nil {
		handlers.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// Add handles POST /grocery.
func (h *Handler) Add(c *gin.Context) {
	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlers.RespondError(c, common.ValidationError("invalid request body: "+err.Error()))
		return
	}

	if err := h.service.AddGroceryItem(c.Request.Context(), req.Name, req.Quantity, req.Unit); err != nil {
		handlers.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Remove handles DELETE /grocery/:id.
func (h *Handler) Remove(c *gin.Context) {
	id, ok := handlers.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.RemoveGroceryItem(c.Request.Context(), id); err != nil {
		handlers.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SetSatisfied handles PUT /grocery/:id/satisfied.
func (h *Handler) SetSatisfied(c *gin.Context) {
	id, ok := handlers.ParseID(c, "id")
	if !ok {
		return
	}

	var req SatisfiedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlers.RespondError(c, common.ValidationError("invalid request body: "+err.Error()))
		return
	}

	if err := h.service.SetSatisfied(c.Request.Context(), id, req.Satisfied); err != nil {
		handlers.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Clear handles DELETE /grocery.
func (h *Handler) Clear(c *gin.Context) {
	if err := h.service.ClearGroceryList(c.Request.Context()); err != nil {
		handlers.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Reconcile handles POST /grocery/reconcile/:recipeID: append the missing
// ingredients for a recipe to the grocery list.
func (h *Handler) Reconcile(c *gin.Context) {
	recipeID, ok := handlers.ParseID(c, "recipeID")
	if !ok {
		return
	}

	added, err := h.service.Reconcile(c.Request.Context(), recipeID)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"added": added})
}

// Export handles GET /grocery/export: the list as a plain-text checklist.
func (h *Handler) Export(c *gin.Context) {
	text, err := h.service.ExportText(c.Request.Context())
	if err != nil {
		handlers.RespondError(c, err)
		return
	}

	c.String(http.StatusOK, text)
}
