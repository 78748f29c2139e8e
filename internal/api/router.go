package api

import (
	"context"
	"time"

	assistantHandler "homechef/internal/api/handlers/assistant"
	groceryHandler "homechef/internal/api/handlers/grocery"
	"homechef/internal/api/handlers/health"
	pantryHandler "homechef/internal/api/handlers/pantry"
	recipeHandler "homechef/internal/api/handlers/recipe"
	"homechef/internal/api/middleware"
	"homechef/internal/core/ai/provider"
	aiService "homechef/internal/core/ai/service"
	groceryService "homechef/internal/core/grocery"
	recipeStore "homechef/internal/core/recipe"
	"homechef/internal/infrastructure/config"
	"homechef/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	// Upper bound per request; the remote call carries its own tighter
	// timeout from config.
	timeoutDuration = 120 * time.Second
	// Request body limit (1MB). Payloads here are small JSON documents.
	maxBodySize = 1 << 20
)

// SetupRouter wires stores, services and handlers onto a gin engine.
func SetupRouter(cfg *config.Config, db *gorm.DB, generator provider.Generator) *gin.Engine {
	common.LogInfo("starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(maxBodySize))

	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	recipes := recipeStore.NewStore(db)
	groceries := groceryService.NewService(db, recipes)
	suggestions := aiService.NewSuggestionService(generator, recipes)

	recipeH := recipeHandler.NewHandler(recipes)
	pantryH := pantryHandler.NewHandler(groceries)
	groceryH := groceryHandler.NewHandler(groceries)
	assistantH := assistantHandler.NewHandler(suggestions, recipes)

	router.GET("/health", health.Check(cfg.App.Version))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/recipes", recipeH.Create)
		v1.GET("/recipes", recipeH.List)
		v1.POST("/recipes/match", recipeH.Match)
		v1.GET("/recipes/:id", recipeH.Get)
		v1.PUT("/recipes/:id", recipeH.Update)
		v1.DELETE("/recipes/:id", recipeH.Delete)
		v1.PUT("/recipes/:id/favorite", recipeH.SetFavorite)
		v1.GET("/recipes/:id/notes", recipeH.GetNotes)
		v1.PUT("/recipes/:id/notes", recipeH.SetNotes)

		v1.GET("/pantry", pantryH.List)
		v1.POST("/pantry", pantryH.Add)
		v1.DELETE("/pantry/:name", pantryH.Remove)

		v1.GET("/grocery", groceryH.List)
		v1.POST("/grocery", groceryH.Add)
		v1.DELETE("/grocery", groceryH.Clear)
		v1.GET("/grocery/export", groceryH.Export)
		v1.POST("/grocery/reconcile/:recipeID", groceryH.Reconcile)
		v1.DELETE("/grocery/:id", groceryH.Remove)
		v1.PUT("/grocery/:id/satisfied", groceryH.SetSatisfied)

		v1.POST("/assistant/suggest", assistantH.Suggest)
		v1.POST("/assistant/chat", assistantH.Chat)
	}

	common.LogInfo("router setup complete")
	return router
}
