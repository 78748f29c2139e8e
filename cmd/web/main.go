package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homechef/internal/core/ai/openrouter"
	"homechef/internal/core/recipe"
	"homechef/internal/infrastructure/config"
	"homechef/internal/infrastructure/database"
	"homechef/internal/pkg/common"
	"homechef/internal/web"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// The web entry serves the simplified form rendering on top of the same
// database file and remote assistant as the API entry.
func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := common.InitLogger(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		common.LogError("Failed to open database", zap.Error(err))
		os.Exit(1)
	}
	defer database.Close(db)

	if err := recipe.NewStore(db).SeedSampleData(context.Background()); err != nil {
		common.LogError("Failed to seed sample data", zap.Error(err))
		os.Exit(1)
	}

	generator := openrouter.NewClient(cfg)

	router := web.SetupRouter(cfg, db, generator)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		common.LogInfo("starting web interface",
			zap.String("version", cfg.App.Version),
			zap.Int("port", cfg.Server.Port),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			common.LogError("Failed to start server", zap.Error(err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("Server forced to shutdown", zap.Error(err))
		os.Exit(1)
	}

	common.LogInfo("Server exited")
}
