package database

import (
	"fmt"

	"homechef/internal/core/grocery"
	"homechef/internal/core/recipe"
	"homechef/internal/pkg/common"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the SQLite file at path and creates the schema on first
// run. The returned handle is passed explicitly to every store; there is no
// package-level connection.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	common.LogInfo("database connection established", zap.String("path", path))

	if err := db.AutoMigrate(
		&recipe.Recipe{},
		&recipe.RecipeStep{},
		&recipe.RecipeIngredient{},
		&recipe.RecipeNote{},
		&grocery.PantryItem{},
		&grocery.GroceryItem{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		common.LogWarn("failed to retrieve sql.DB for close", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		common.LogWarn("error closing the database connection", zap.Error(err))
	}
}
