package recipe

import (
	"strings"
	"time"
)

// Difficulty is the recipe difficulty level.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the known difficulty levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Recipe is a stored recipe with its ordered steps and ingredient list.
type Recipe struct {
	ID          uint               `gorm:"primaryKey" json:"id"`
	Name        string             `gorm:"not null;index" json:"name"`
	Steps       []RecipeStep       `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"steps"`
	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients"`
	CookTime    int                `json:"cook_time"` // minutes
	Difficulty  Difficulty         `json:"difficulty"`
	Favorite    bool               `json:"favorite"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// RecipeStep is one instruction in a recipe, ordered by Position.
type RecipeStep struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	RecipeID uint   `gorm:"index" json:"-"`
	Position int    `json:"position"`
	Text     string `gorm:"not null" json:"text"`
}

// RecipeIngredient links a recipe to an ingredient by normalized name.
// The name is the join key shared with pantry and grocery entries.
type RecipeIngredient struct {
	ID       uint    `gorm:"primaryKey" json:"-"`
	RecipeID uint    `gorm:"index" json:"-"`
	Position int     `json:"position"`
	Name     string  `gorm:"not null;index" json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// RecipeNote is free-form user text attached to a recipe.
type RecipeNote struct {
	RecipeID uint   `gorm:"primaryKey" json:"recipe_id"`
	Text     string `json:"text"`
}

// IngredientInput is an ingredient as entered by the user.
type IngredientInput struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// RecipeInput carries the fields for creating a recipe.
type RecipeInput struct {
	Name        string            `json:"name"`
	Steps       []string          `json:"steps"`
	Ingredients []IngredientInput `json:"ingredients"`
	CookTime    int               `json:"cook_time"`
	Difficulty  Difficulty        `json:"difficulty"`
}

// UpdateInput carries partial updates; nil fields keep their current value.
type UpdateInput struct {
	Name        *string           `json:"name,omitempty"`
	Steps       []string          `json:"steps,omitempty"`
	Ingredients []IngredientInput `json:"ingredients,omitempty"`
	CookTime    *int              `json:"cook_time,omitempty"`
	Difficulty  *Difficulty       `json:"difficulty,omitempty"`
	Favorite    *bool             `json:"favorite,omitempty"`
}

// Filter narrows ListRecipes results.
type Filter struct {
	FavoriteOnly bool
	SearchText   string
}

// Match pairs a recipe with its ingredient match score.
type Match struct {
	Recipe Recipe  `json:"recipe"`
	Score  float64 `json:"score"`
}

// NormalizeName lowercases an ingredient name and collapses whitespace.
// Matching across recipes, pantry and grocery is literal equality on the
// normalized form; plurals and unit synonyms are not folded.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}
