// Package web is the simplified web-form rendering of the application: the
// same store and assistant operations as the JSON API, served as plain HTML
// forms for browsers.
package web

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"homechef/internal/api/middleware"
	"homechef/internal/core/ai/provider"
	aiService "homechef/internal/core/ai/service"
	groceryService "homechef/internal/core/grocery"
	recipeStore "homechef/internal/core/recipe"
	"homechef/internal/infrastructure/config"
	"homechef/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// pageData feeds the single page template.
type pageData struct {
	Search        string
	FavoritesOnly bool
	Recipes       []recipeStore.Recipe
	Pantry        []groceryService.PantryItem
	Grocery       []groceryService.GroceryItem
	Suggestion    *aiService.SuggestionResult
	ChatReply     string
	Error         string
}

// Handler serves the web-form pages.
type Handler struct {
	recipes     *recipeStore.Store
	groceries   *groceryService.Service
	suggestions *aiService.SuggestionService
}

// SetupRouter builds the gin engine for the web-form surface.
func SetupRouter(cfg *config.Config, db *gorm.DB, generator provider.Generator) *gin.Engine {
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	recipes := recipeStore.NewStore(db)
	h := &Handler{
		recipes:     recipes,
		groceries:   groceryService.NewService(db, recipes),
		suggestions: aiService.NewSuggestionService(generator, recipes),
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.SetHTMLTemplate(pageTemplate)

	router.GET("/", h.Index)

	router.POST("/recipes", h.AddRecipe)
	router.POST("/recipes/:id/delete", h.DeleteRecipe)
	router.POST("/recipes/:id/favorite", h.ToggleFavorite)

	router.POST("/pantry", h.AddPantry)
	router.POST("/pantry/remove", h.RemovePantry)

	router.POST("/grocery", h.AddGrocery)
	router.POST("/grocery/clear", h.ClearGrocery)
	router.POST("/grocery/:id/delete", h.RemoveGrocery)
	router.POST("/grocery/:id/toggle", h.ToggleGrocery)
	router.POST("/grocery/reconcile/:id", h.Reconcile)
	router.GET("/grocery/export", h.ExportGrocery)

	router.POST("/suggest", h.Suggest)
	router.POST("/chat", h.Chat)

	return router
}

// Index renders the page. Errors from earlier actions arrive via the err
// query parameter so the page itself always renders.
func (h *Handler) Index(c *gin.Context) {
	h.render(c, pageData{Error: c.Query("err")})
}

func (h *Handler) render(c *gin.Context, data pageData) {
	ctx := c.Request.Context()
	data.Search = c.Query("search")
	data.FavoritesOnly = c.Query("favorites") == "true"

	recipes, err := h.recipes.List(ctx, recipeStore.Filter{
		FavoriteOnly: data.FavoritesOnly,
		SearchText:   data.Search,
	})
	if err != nil && data.Error == "" {
		data.Error = err.Error()
	}
	data.Recipes = recipes

	if pantry, err := h.groceries.ListPantry(ctx); err == nil {
		data.Pantry = pantry
	}
	if grocery, err := h.groceries.ListGrocery(ctx); err == nil {
		data.Grocery = grocery
	}

	c.HTML(http.StatusOK, "index", data)
}

func (h *Handler) AddRecipe(c *gin.Context) {
	input := recipeStore.RecipeInput{
		Name:        c.PostForm("name"),
		Steps:       splitLines(c.PostForm("steps")),
		Ingredients: parseIngredientLines(c.PostForm("ingredients")),
		Difficulty:  recipeStore.Difficulty(c.PostForm("difficulty")),
	}
	if minutes, err := strconv.Atoi(c.PostForm("cook_time")); err == nil {
		input.CookTime = minutes
	}

	if _, err := h.recipes.Create(c.Request.Context(), input); err != nil {
		redirectError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) DeleteRecipe(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.recipes.Delete(c.Request.Context(), id); err != nil {
		redirectError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) ToggleFavorite(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	rec, err := h.recipes.Get(c.Request.Context(), id)
	if err != nil {
		redirectError(c, err)
		return
	}
	if err := h.recipes.SetFavorite(c.Request.Context(), id, !rec.Favorite); err != nil {
		redirectError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) AddPantry(c *gin.Context) {
	quantity, _ := strconv.ParseFloat(c.PostForm("quantity"), 64)
	if err := h.groceries.AddPantryItem(c.Request.Context(), c.PostForm("name"), quantity, c.PostForm("unit")); err != nil {
		redirectError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) RemovePantry(c *gin.Context) {
	if err := h.groceries.RemovePantryItem(c.Request.Context(), c.PostForm("name")); err != nil {
		redirectError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) AddGrocery(c *gin.Context) {
	quantity, _ := strconv.ParseFloat(c.PostForm("quantity"), 64)
	if err := h.groceries.AddGroceryItem(c.Request.Context(), c.PostForm("name"), quantity, c.PostForm("unit")); err != nil {
		redirectError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) ClearGrocery(c *gin.Context) {
	if err := h.groceries.ClearGroceryList(c.Request.Context()); err != nil {
		redirectError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) RemoveGrocery(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.groceries.RemoveGroceryItem(c.Request.Context(), id); err != nil {
		redirectError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) ToggleGrocery(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	items, err := h.groceries.ListGrocery(c.Request.Context())
	if err != nil {
		redirectError(c, err)
		return
	}
	for _, item := range items {
		if item.ID == id {
			if err := h.groceries.SetSatisfied(c.Request.Context(), id, !item.Satisfied); err != nil {
				redirectError(c, err)
				return
			}
			break
		}
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) Reconcile(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := h.groceries.Reconcile(c.Request.Context(), id); err != nil {
		redirectError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) ExportGrocery(c *gin.Context) {
	text, err := h.groceries.ExportText(c.Request.Context())
	if err != nil {
		redirectError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="grocery-list.txt"`)
	c.String(http.StatusOK, text)
}

// Suggest renders the page inline with the assistant's answer. A remote
// failure shows as a banner; the rest of the page stays usable.
func (h *Handler) Suggest(c *gin.Context) {
	ingredients := splitComma(c.PostForm("ingredients"))

	result, err := h.suggestions.SuggestFromIngredients(c.Request.Context(), ingredients)
	if err != nil {
		h.render(c, pageData{Error: err.Error()})
		return
	}
	h.render(c, pageData{Suggestion: result})
}

func (h *Handler) Chat(c *gin.Context) {
	reply, err := h.suggestions.Chat(c.Request.Context(), nil, c.PostForm("message"), nil)
	if err != nil {
		h.render(c, pageData{Error: err.Error()})
		return
	}
	h.render(c, pageData{ChatReply: reply})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		redirectError(c, common.ValidationError("invalid id"))
		return 0, false
	}
	return uint(id), true
}

func redirectError(c *gin.Context, err error) {
	c.Redirect(http.StatusSeeOther, "/?err="+url.QueryEscape(err.Error()))
}

func splitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func splitComma(text string) []string {
	var out []string
	for _, part := range strings.Split(text, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parseIngredientLines reads "name, quantity, unit" lines; quantity and
// unit are optional.
func parseIngredientLines(text string) []recipeStore.IngredientInput {
	var out []recipeStore.IngredientInput
	for _, line := range splitLines(text) {
		parts := strings.Split(line, ",")
		in := recipeStore.IngredientInput{Name: strings.TrimSpace(parts[0])}
		if len(parts) > 1 {
			in.Quantity, _ = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		}
		if len(parts) > 2 {
			in.Unit = strings.TrimSpace(parts[2])
		}
		out = append(out, in)
	}
	return out
}
