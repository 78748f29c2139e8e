package grocery

import (
	"context"
	"fmt"
	"strings"

	"homechef/internal/core/recipe"
	"homechef/internal/pkg/common"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Service owns the pantry and grocery tables and computes the shortfall
// between a recipe's requirements and pantry stock.
type Service struct {
	db      *gorm.DB
	recipes *recipe.Store
}

// NewService creates a grocery service sharing the database handle with the
// recipe store.
func NewService(db *gorm.DB, recipes *recipe.Store) *Service {
	return &Service{db: db, recipes: recipes}
}

// ListPantry returns pantry items ordered by name.
func (s *Service) ListPantry(ctx context.Context) ([]PantryItem, error) {
	var items []PantryItem
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list pantry: %w", wrapStorage(err))
	}
	return items, nil
}

// AddPantryItem inserts or replaces the pantry entry for an ingredient.
func (s *Service) AddPantryItem(ctx context.Context, name string, quantity float64, unit string) error {
	normalized := recipe.NormalizeName(name)
	if normalized == "" {
		return common.ValidationError("pantry item name must not be empty")
	}
	if quantity < 0 {
		return common.ValidationError("pantry quantity must not be negative")
	}

	item := PantryItem{Name: normalized, Quantity: quantity, Unit: strings.TrimSpace(unit)}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity", "unit"}),
	}).Create(&item).Error
	if err != nil {
		return fmt.Errorf("add pantry item %q: %w", normalized, wrapStorage(err))
	}
	return nil
}

// RemovePantryItem deletes a pantry entry by name. Removing an absent item
// is not an error.
func (s *Service) RemovePantryItem(ctx context.Context, name string) error {
	normalized := recipe.NormalizeName(name)
	if err := s.db.WithContext(ctx).Where("name = ?", normalized).Delete(&PantryItem{}).Error; err != nil {
		return fmt.Errorf("remove pantry item %q: %w", normalized, wrapStorage(err))
	}
	return nil
}

// Reconcile computes the grocery items needed to cook a recipe given current
// pantry stock and appends them to the persistent grocery list. Existing
// unrelated grocery items are left untouched. The appended items are
// returned.
func (s *Service) Reconcile(ctx context.Context, recipeID uint) ([]GroceryItem, error) {
	rec, err := s.recipes.Get(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	pantry, err := s.ListPantry(ctx)
	if err != nil {
		return nil, err
	}
	onHand := make(map[string]float64, len(pantry))
	for _, item := range pantry {
		onHand[item.Name] = item.Quantity
	}

	var needed []GroceryItem
	for _, ing := range rec.Ingredients {
		available, ok := onHand[ing.Name]
		if !ok {
			needed = append(needed, GroceryItem{Name: ing.Name, Quantity: ing.Quantity, Unit: ing.Unit})
			continue
		}
		if available < ing.Quantity {
			needed = append(needed, GroceryItem{Name: ing.Name, Quantity: ing.Quantity - available, Unit: ing.Unit})
		}
	}

	// Non-nil so the list serializes as [] when the pantry covers everything.
	if len(needed) == 0 {
		return []GroceryItem{}, nil
	}

	if err := s.db.WithContext(ctx).Create(&needed).Error; err != nil {
		return nil, fmt.Errorf("append grocery items: %w", wrapStorage(err))
	}

	common.LogInfo("grocery list reconciled",
		zap.Uint("recipe_id", recipeID),
		zap.Int("items_added", len(needed)),
	)
	return needed, nil
}

// ListGrocery returns grocery items ordered by name.
func (s *Service) ListGrocery(ctx context.Context) ([]GroceryItem, error) {
	var items []GroceryItem
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list grocery: %w", wrapStorage(err))
	}
	return items, nil
}

// AddGroceryItem appends a manually entered grocery item.
func (s *Service) AddGroceryItem(ctx context.Context, name string, quantity float64, unit string) error {
	normalized := recipe.NormalizeName(name)
	if normalized == "" {
		return common.ValidationError("grocery item name must not be empty")
	}

	item := GroceryItem{Name: normalized, Quantity: quantity, Unit: strings.TrimSpace(unit)}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return fmt.Errorf("add grocery item %q: %w", normalized, wrapStorage(err))
	}
	return nil
}

// RemoveGroceryItem deletes one grocery item by id. Removing an absent item
// is not an error.
func (s *Service) RemoveGroceryItem(ctx context.Context, id uint) error {
	if err := s.db.WithContext(ctx).Delete(&GroceryItem{}, id).Error; err != nil {
		return fmt.Errorf("remove grocery item %d: %w", id, wrapStorage(err))
	}
	return nil
}

// SetSatisfied updates the check-off state of a grocery item.
func (s *Service) SetSatisfied(ctx context.Context, id uint, satisfied bool) error {
	res := s.db.WithContext(ctx).Model(&GroceryItem{}).Where("id = ?", id).Update("satisfied", satisfied)
	if res.Error != nil {
		return fmt.Errorf("set satisfied %d: %w", id, wrapStorage(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("grocery item %d: %w", id, common.ErrNotFound)
	}
	return nil
}

// ClearGroceryList removes all grocery items unconditionally.
func (s *Service) ClearGroceryList(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Where("1 = 1").Delete(&GroceryItem{}).Error; err != nil {
		return fmt.Errorf("clear grocery list: %w", wrapStorage(err))
	}
	return nil
}

// ExportText renders the grocery list as a plain-text checklist.
func (s *Service) ExportText(ctx context.Context) (string, error) {
	items, err := s.ListGrocery(ctx)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i, item := range items {
		if i > 0 {
			sb.WriteString("\n")
		}
		mark := " "
		if item.Satisfied {
			mark = "x"
		}
		if item.Quantity > 0 {
			fmt.Fprintf(&sb, "[%s] %s (%s)", mark, item.Name, formatQuantity(item.Quantity, item.Unit))
		} else {
			fmt.Fprintf(&sb, "[%s] %s", mark, item.Name)
		}
	}
	return sb.String(), nil
}

func formatQuantity(quantity float64, unit string) string {
	q := strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", quantity), "0"), ".")
	if unit == "" {
		return q
	}
	return q + " " + unit
}

func wrapStorage(err error) error {
	return fmt.Errorf("%w: %s", common.ErrStorage, err.Error())
}
