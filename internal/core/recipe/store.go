package recipe

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"homechef/internal/pkg/common"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store persists recipes in the shared SQLite database. The *gorm.DB handle
// is injected; every operation runs as its own short transaction.
type Store struct {
	db *gorm.DB
}

// NewStore creates a recipe store on top of db.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Create validates input and inserts a new recipe with its steps and
// ingredients. Ingredient names are normalized on write.
func (s *Store) Create(ctx context.Context, input RecipeInput) (uint, error) {
	rec, err := buildRecipe(input)
	if err != nil {
		return 0, err
	}

	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return 0, fmt.Errorf("create recipe: %w", wrapStorage(err))
	}

	common.LogInfo("recipe created",
		zap.Uint("id", rec.ID),
		zap.String("name", rec.Name),
	)
	return rec.ID, nil
}

// Get returns the recipe with the given id, ordered steps and ingredients
// included.
func (s *Store) Get(ctx context.Context, id uint) (*Recipe, error) {
	var rec Recipe
	err := s.preloaded(ctx).First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("recipe %d: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get recipe %d: %w", id, wrapStorage(err))
	}
	return &rec, nil
}

// List returns recipes ordered by name ascending. SearchText matches
// case-insensitively against the recipe name or any ingredient name.
func (s *Store) List(ctx context.Context, filter Filter) ([]Recipe, error) {
	query := s.preloaded(ctx).Order("name ASC")

	if filter.FavoriteOnly {
		query = query.Where("favorite = ?", true)
	}
	if search := strings.TrimSpace(filter.SearchText); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR id IN (SELECT recipe_id FROM recipe_ingredients WHERE LOWER(name) LIKE ?)",
			like, like,
		)
	}

	var recipes []Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("list recipes: %w", wrapStorage(err))
	}
	return recipes, nil
}

// Update applies the non-nil fields of input to an existing recipe. Steps and
// ingredients, when provided, replace the previous lists entirely.
func (s *Store) Update(ctx context.Context, id uint, input UpdateInput) error {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return common.ValidationError("recipe name must not be empty")
	}
	if input.Ingredients != nil && len(input.Ingredients) == 0 {
		return common.ValidationError("recipe must have at least one ingredient")
	}
	if input.Difficulty != nil && !input.Difficulty.Valid() {
		return common.ValidationError("difficulty must be easy, medium or hard")
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec Recipe
		if err := tx.First(&rec, id).Error; err != nil {
			return err
		}

		if input.Name != nil {
			rec.Name = strings.TrimSpace(*input.Name)
		}
		if input.CookTime != nil {
			rec.CookTime = *input.CookTime
		}
		if input.Difficulty != nil {
			rec.Difficulty = *input.Difficulty
		}
		if input.Favorite != nil {
			rec.Favorite = *input.Favorite
		}

		if input.Steps != nil {
			if err := tx.Where("recipe_id = ?", id).Delete(&RecipeStep{}).Error; err != nil {
				return err
			}
			rec.Steps = buildSteps(id, input.Steps)
		}
		if input.Ingredients != nil {
			if err := tx.Where("recipe_id = ?", id).Delete(&RecipeIngredient{}).Error; err != nil {
				return err
			}
			ings, err := buildIngredients(id, input.Ingredients)
			if err != nil {
				return err
			}
			rec.Ingredients = ings
		}

		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(&rec).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("recipe %d: %w", id, common.ErrNotFound)
	}
	if err != nil {
		var ce *common.CustomError
		if errors.As(err, &ce) {
			return err
		}
		return fmt.Errorf("update recipe %d: %w", id, wrapStorage(err))
	}
	return nil
}

// SetFavorite flips the favorite flag on a recipe.
func (s *Store) SetFavorite(ctx context.Context, id uint, favorite bool) error {
	res := s.db.WithContext(ctx).Model(&Recipe{}).Where("id = ?", id).Update("favorite", favorite)
	if res.Error != nil {
		return fmt.Errorf("set favorite %d: %w", id, wrapStorage(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("recipe %d: %w", id, common.ErrNotFound)
	}
	return nil
}

// Delete removes a recipe and its dependents. Deleting an absent recipe is
// not an error.
func (s *Store) Delete(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&RecipeStep{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&RecipeNote{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Recipe{}, id).Error
	})
	if err != nil {
		return fmt.Errorf("delete recipe %d: %w", id, wrapStorage(err))
	}
	return nil
}

// FindMatching scores every recipe against the available ingredient names
// and returns those with at least one match, best score first, ties broken
// by name.
func (s *Store) FindMatching(ctx context.Context, available []string) ([]Match, error) {
	have := make(map[string]bool, len(available))
	for _, name := range available {
		if n := NormalizeName(name); n != "" {
			have[n] = true
		}
	}

	recipes, err := s.List(ctx, Filter{})
	if err != nil {
		return nil, err
	}

	var matches []Match
	for _, rec := range recipes {
		if len(rec.Ingredients) == 0 {
			continue
		}
		matched := 0
		for _, ing := range rec.Ingredients {
			if have[ing.Name] {
				matched++
			}
		}
		if matched == 0 {
			continue
		}
		matches = append(matches, Match{
			Recipe: rec,
			Score:  float64(matched) / float64(len(rec.Ingredients)),
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Recipe.Name < matches[j].Recipe.Name
	})

	return matches, nil
}

// GetNotes returns the notes attached to a recipe, empty when none exist.
func (s *Store) GetNotes(ctx context.Context, recipeID uint) (string, error) {
	var note RecipeNote
	err := s.db.WithContext(ctx).First(&note, "recipe_id = ?", recipeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get notes for recipe %d: %w", recipeID, wrapStorage(err))
	}
	return note.Text, nil
}

// SetNotes creates or replaces the notes attached to a recipe.
func (s *Store) SetNotes(ctx context.Context, recipeID uint, text string) error {
	note := RecipeNote{RecipeID: recipeID, Text: text}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "recipe_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"text"}),
	}).Create(&note).Error
	if err != nil {
		return fmt.Errorf("set notes for recipe %d: %w", recipeID, wrapStorage(err))
	}
	return nil
}

func (s *Store) preloaded(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		})
}

func buildRecipe(input RecipeInput) (*Recipe, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, common.ValidationError("recipe name must not be empty")
	}
	if len(input.Ingredients) == 0 {
		return nil, common.ValidationError("recipe must have at least one ingredient")
	}

	difficulty := input.Difficulty
	if difficulty == "" {
		difficulty = DifficultyEasy
	}
	if !difficulty.Valid() {
		return nil, common.ValidationError("difficulty must be easy, medium or hard")
	}

	ingredients, err := buildIngredients(0, input.Ingredients)
	if err != nil {
		return nil, err
	}

	return &Recipe{
		Name:        name,
		Steps:       buildSteps(0, input.Steps),
		Ingredients: ingredients,
		CookTime:    input.CookTime,
		Difficulty:  difficulty,
	}, nil
}

func buildSteps(recipeID uint, steps []string) []RecipeStep {
	out := make([]RecipeStep, 0, len(steps))
	for i, text := range steps {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		out = append(out, RecipeStep{RecipeID: recipeID, Position: i, Text: text})
	}
	return out
}

func buildIngredients(recipeID uint, inputs []IngredientInput) ([]RecipeIngredient, error) {
	out := make([]RecipeIngredient, 0, len(inputs))
	for i, in := range inputs {
		name := NormalizeName(in.Name)
		if name == "" {
			return nil, common.ValidationError("ingredient name must not be empty")
		}
		out = append(out, RecipeIngredient{
			RecipeID: recipeID,
			Position: i,
			Name:     name,
			Quantity: in.Quantity,
			Unit:     strings.TrimSpace(in.Unit),
		})
	}
	return out, nil
}

func wrapStorage(err error) error {
	return fmt.Errorf("%w: %s", common.ErrStorage, err.Error())
}
