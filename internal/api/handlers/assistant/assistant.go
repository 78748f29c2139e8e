package assistant

import (
	"net/http"

	"homechef/internal/api/handlers"
	"homechef/internal/core/ai/provider"
	aiService "homechef/internal/core/ai/service"
	recipeStore "homechef/internal/core/recipe"
	"homechef/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler serves the AI suggestion and chat endpoints. Remote failures come
// back as non-fatal JSON errors; the rest of the API keeps working.
type Handler struct {
	suggestions *aiService.SuggestionService
	recipes     *recipeStore.Store
}

// NewHandler creates an assistant handler.
func NewHandler(suggestions *aiService.SuggestionService, recipes *recipeStore.Store) *Handler {
	return &Handler{
		suggestions: suggestions,
		recipes:     recipes,
	}
}

// SuggestRequest carries the on-hand ingredients.
type SuggestRequest struct {
	Ingredients []string `json:"ingredients" binding:"required"`
}

// ChatRequest carries one conversation turn. History is echoed back by the
// client on every call; the server holds no conversation state.
type ChatRequest struct {
	History  []provider.Message `json:"history"`
	Message  string             `json:"message" binding:"required"`
	RecipeID *uint              `json:"recipe_id,omitempty"`
}

// Suggest handles POST /assistant/suggest.
func (h *Handler) Suggest(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}

	var req SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlers.RespondError(c, common.ValidationError("invalid request body: "+err.Error()))
		return
	}

	common.LogInfo("processing suggestion request",
		zap.String("request_id", requestID),
		zap.Int("ingredients", len(req.Ingredients)),
	)

	result, err := h.suggestions.SuggestFromIngredients(c.Request.Context(), req.Ingredients)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Chat handles POST /assistant/chat.
func (h *Handler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlers.RespondError(c, common.ValidationError("invalid request body: "+err.Error()))
		return
	}

	var recipeContext *recipeStore.Recipe
	if req.RecipeID != nil {
		rec, err := h.recipes.Get(c.Request.Context(), *req.RecipeID)
		if err != nil {
			handlers.RespondError(c, err)
			return
		}
		recipeContext = rec
	}

	reply, err := h.suggestions.Chat(c.Request.Context(), req.History, req.Message, recipeContext)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
