package grocery

import "time"

// PantryItem is an ingredient the user has on hand. Name is stored
// normalized and is unique within the pantry.
type PantryItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;uniqueIndex" json:"name"`
	Quantity  float64   `json:"quantity"`
	Unit      string    `json:"unit"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GroceryItem is a shopping list entry. Reconciliation appends entries for
// recipe ingredients the pantry cannot cover; Satisfied is the user's
// check-off state.
type GroceryItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;index" json:"name"`
	Quantity  float64   `json:"quantity"`
	Unit      string    `json:"unit"`
	Satisfied bool      `json:"satisfied"`
	CreatedAt time.Time `json:"created_at"`
}
