package recipe

import (
	"context"
	"fmt"

	"homechef/internal/pkg/common"

	"go.uber.org/zap"
)

// sampleRecipes is inserted on first run so the catalog is not empty.
var sampleRecipes = []RecipeInput{
	{
		Name: "Simple Crepes",
		Ingredients: []IngredientInput{
			{Name: "flour", Quantity: 1, Unit: "cup"},
			{Name: "eggs", Quantity: 2},
			{Name: "milk", Quantity: 0.5, Unit: "cup"},
			{Name: "water", Quantity: 0.5, Unit: "cup"},
			{Name: "salt", Quantity: 1, Unit: "pinch"},
			{Name: "butter", Quantity: 1, Unit: "tbsp"},
		},
		Steps: []string{
			"Whisk flour and eggs.",
			"Gradually add milk and water while whisking.",
			"Add salt and melted butter; whisk until smooth.",
			"Heat a lightly oiled pan, pour batter, cook each side 1-2 minutes.",
		},
		CookTime:   20,
		Difficulty: DifficultyEasy,
	},
	{
		Name: "Pasta Aglio e Olio",
		Ingredients: []IngredientInput{
			{Name: "spaghetti", Quantity: 200, Unit: "g"},
			{Name: "garlic", Quantity: 3, Unit: "cloves"},
			{Name: "olive oil", Quantity: 4, Unit: "tbsp"},
			{Name: "red pepper flakes", Quantity: 1, Unit: "pinch"},
			{Name: "salt", Quantity: 1, Unit: "pinch"},
			{Name: "parsley", Quantity: 1, Unit: "handful"},
		},
		Steps: []string{
			"Cook spaghetti until al dente.",
			"Gently cook sliced garlic in olive oil; add pepper flakes.",
			"Toss pasta with oil, season with salt, finish with parsley.",
		},
		CookTime:   15,
		Difficulty: DifficultyEasy,
	},
	{
		Name: "Veggie Omelette",
		Ingredients: []IngredientInput{
			{Name: "eggs", Quantity: 3},
			{Name: "milk", Quantity: 0.25, Unit: "cup"},
			{Name: "bell pepper", Quantity: 0.25, Unit: "cup"},
			{Name: "onion", Quantity: 0.25, Unit: "cup"},
			{Name: "salt", Quantity: 1, Unit: "pinch"},
			{Name: "pepper", Quantity: 1, Unit: "pinch"},
			{Name: "olive oil", Quantity: 1, Unit: "tbsp"},
		},
		Steps: []string{
			"Whisk eggs with milk, salt, pepper.",
			"Saute peppers and onions in oil.",
			"Pour eggs, cook until set; fold and serve.",
		},
		CookTime:   10,
		Difficulty: DifficultyEasy,
	},
}

// SeedSampleData inserts the sample recipes when the store is empty.
// Running it again is a no-op.
func (s *Store) SeedSampleData(ctx context.Context) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&Recipe{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count recipes: %w", wrapStorage(err))
	}
	if count > 0 {
		return nil
	}

	for _, sample := range sampleRecipes {
		if _, err := s.Create(ctx, sample); err != nil {
			return fmt.Errorf("seed sample data: %w", err)
		}
	}

	common.LogInfo("sample recipes seeded", zap.Int("count", len(sampleRecipes)))
	return nil
}
