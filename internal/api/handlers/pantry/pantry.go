package pantry

import (
	"net/http"

	"homechef/internal/api/handlers"
	"homechef/internal/core/grocery"
	"homechef/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// Handler serves the pantry endpoints.
type Handler struct {
	service *grocery.Service
}

// NewHandler creates a pantry handler.
func NewHandler(service *grocery.Service) *Handler {
	return &Handler{service: service}
}

// ItemRequest carries one pantry entry.
type ItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// List handles GET /pantry.
func (h *Handler) List(c *gin.Context) {
	items, err := h.service.ListPantry(c.Request.Context())
	if err != nil {
		handlers.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// Add handles POST /pantry. Adding an existing ingredient replaces its
// quantity.
func (h *Handler) Add(c *gin.Context) {
	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlers.RespondError(c, common.ValidationError("invalid request body: "+err.Error()))
		return
	}

	if err := h.service.AddPantryItem(c.Request.Context(), req.Name, req.Quantity, req.Unit); err != nil {
		handlers.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Remove handles DELETE /pantry/:name.
func (h *Handler) Remove(c *gin.Context) {
	if err := h.service.RemovePantryItem(c.Request.Context(), c.Param("name")); err != nil {
		handlers.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
