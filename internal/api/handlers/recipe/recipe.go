package recipe

import (
	"net/http"
	"strings"

	"homechef/internal/api/handlers"
	recipeStore "homechef/internal/core/recipe"
	"homechef/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves the recipe catalog endpoints.
type Handler struct {
	store *recipeStore.Store
}

// NewHandler creates a recipe handler.
func NewHandler(store *recipeStore.Store) *Handler {
	return &Handler{store: store}
}

// MatchRequest carries the comma-separated or listed ingredients the user
// has available.
type MatchRequest struct {
	Ingredients []string `json:"ingredients" binding:"required"`
}

// NotesRequest carries recipe notes text.
type NotesRequest struct {
	Text string `json:"text"`
}

// FavoriteRequest carries the favorite flag.
type FavoriteRequest struct {
	Favorite bool `json:"favorite"`
}

// Create handles POST /recipes.
func (h *Handler) Create(c *gin.Context) {
	var input recipeStore.RecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		handlers.RespondError(c, common.ValidationError("invalid request body: "+err.Error()))
		return
	}

	id, err := h.store.Create(c.Request.Context(), input)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// Get handles GET /recipes/:id.
func (h *Handler) Get(c *gin.Context) {
	id, ok := handlers.ParseID(c, "id")
	if !ok {
		return
	}

	rec, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rec)
}

// List handles GET /recipes with optional favorites and search filters.
func (h *Handler) List(c *gin.Context) {
	filter := recipeStore.Filter{
		FavoriteOnly: c.Query("favorites") == "true",
		SearchText:   c.Query("search"),
	}

	recipes, err := h.store.List(c.Request.Context(), filter)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// Update handles PUT /recipes/:id.
func (h *Handler) Update(c *gin.Context) {
	id, ok := handlers.ParseID(c, "id")
	if !ok {
		return
	}

	var input recipeStore.UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		handlers.RespondError(c, common.ValidationError("invalid request body: "+err.Error()))
		return
	}

	if err := h.store.Update(c.Request.Context(), id, input); err != nil {
		handlers.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /recipes/:id. Deleting twice succeeds both times.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := handlers.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		handlers.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Match handles POST /recipes/match: score the catalog against available
// ingredients.
func (h *Handler) Match(c *gin.Context) {
	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlers.RespondError(c, common.ValidationError("invalid request body: "+err.Error()))
		return
	}

	// Accept a single comma-separated entry the way the desktop UI sends it.
	ingredients := req.Ingredients
	if len(ingredients) == 1 && strings.Contains(ingredients[0], ",") {
		ingredients = strings.Split(ingredients[0], ",")
	}

	matches, err := h.store.FindMatching(c.Request.Context(), ingredients)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}

	common.LogInfo("recipe match computed",
		zap.Int("ingredients", len(ingredients)),
		zap.Int("matches", len(matches)),
	)
	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

// SetFavorite handles PUT /recipes/:id/favorite.
func (h *Handler) SetFavorite(c *gin.Context) {
	id, ok := handlers.ParseID(c, "id")
	if !ok {
		return
	}

	var req FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlers.RespondError(c, common.ValidationError("invalid request body: "+err.Error()))
		return
	}

	if err := h.store.SetFavorite(c.Request.Context(), id, req.Favorite); err != nil {
		handlers.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetNotes handles GET /recipes/:id/notes.
func (h *Handler) GetNotes(c *gin.Context) {
	id, ok := handlers.ParseID(c, "id")
	if !ok {
		return
	}

	text, err := h.store.GetNotes(c.Request.Context(), id)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"text": text})
}

// SetNotes handles PUT /recipes/:id/notes.
func (h *Handler) SetNotes(c *gin.Context) {
	id, ok := handlers.ParseID(c, "id")
	if !ok {
		return
	}

	var req NotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlers.RespondError(c, common.ValidationError("invalid request body: "+err.Error()))
		return
	}

	if err := h.store.SetNotes(c.Request.Context(), id, req.Text); err != nil {
		handlers.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
