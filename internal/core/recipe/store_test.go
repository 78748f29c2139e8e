package recipe

import (
	"context"
	"path/filepath"
	"testing"

	"homechef/internal/pkg/common"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&Recipe{}, &RecipeStep{}, &RecipeIngredient{}, &RecipeNote{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return NewStore(db)
}

func pancakesInput() RecipeInput {
	return RecipeInput{
		Name: "Pancakes",
		Ingredients: []IngredientInput{
			{Name: "Flour", Quantity: 2, Unit: "cups"},
			{Name: "egg", Quantity: 1},
			{Name: "milk", Quantity: 1, Unit: "cup"},
		},
		Steps:      []string{"Mix everything.", "Fry in a pan."},
		CookTime:   15,
		Difficulty: DifficultyEasy,
	}
}

func TestCreateAndGetRoundtrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.Create(ctx, pancakesInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	rec, err := store.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.Name != "Pancakes" {
		t.Errorf("name = %q, want Pancakes", rec.Name)
	}
	if rec.CookTime != 15 {
		t.Errorf("cook time = %d, want 15", rec.CookTime)
	}
	if rec.Difficulty != DifficultyEasy {
		t.Errorf("difficulty = %q, want easy", rec.Difficulty)
	}
	if len(rec.Ingredients) != 3 {
		t.Fatalf("got %d ingredients, want 3", len(rec.Ingredients))
	}
	// Names are normalized on write.
	if rec.Ingredients[0].Name != "flour" {
		t.Errorf("ingredient[0] = %q, want flour", rec.Ingredients[0].Name)
	}
	if rec.Ingredients[0].Quantity != 2 || rec.Ingredients[0].Unit != "cups" {
		t.Errorf("ingredient[0] quantity/unit = %v %q", rec.Ingredients[0].Quantity, rec.Ingredients[0].Unit)
	}
	if len(rec.Steps) != 2 || rec.Steps[0].Text != "Mix everything." || rec.Steps[1].Text != "Fry in a pan." {
		t.Errorf("steps out of order: %+v", rec.Steps)
	}
}

func TestCreateValidation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Create(ctx, RecipeInput{Name: "  ", Ingredients: []IngredientInput{{Name: "egg"}}})
	if !common.IsValidation(err) {
		t.Errorf("empty name: got %v, want validation error", err)
	}

	_, err = store.Create(ctx, RecipeInput{Name: "Toast"})
	if !common.IsValidation(err) {
		t.Errorf("no ingredients: got %v, want validation error", err)
	}

	_, err = store.Create(ctx, RecipeInput{
		Name:        "Toast",
		Ingredients: []IngredientInput{{Name: "bread"}},
		Difficulty:  Difficulty("impossible"),
	})
	if !common.IsValidation(err) {
		t.Errorf("bad difficulty: got %v, want validation error", err)
	}
}

func TestGetNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), 42)
	if !common.IsNotFound(err) {
		t.Fatalf("got %v, want not found", err)
	}
}

func TestDeleteIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.Create(ctx, pancakesInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := store.Delete(ctx, id); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := store.Delete(ctx, id); err != nil {
		t.Fatalf("second delete: %v", err)
	}

	if _, err := store.Get(ctx, id); !common.IsNotFound(err) {
		t.Fatalf("get after delete: got %v, want not found", err)
	}
}

func TestListFilters(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.Create(ctx, pancakesInput()); err != nil {
		t.Fatalf("create: %v", err)
	}
	id2, err := store.Create(ctx, RecipeInput{
		Name:        "Aioli",
		Ingredients: []IngredientInput{{Name: "garlic"}, {Name: "olive oil"}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.SetFavorite(ctx, id2, true); err != nil {
		t.Fatalf("set favorite: %v", err)
	}

	all, err := store.List(ctx, Filter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 || all[0].Name != "Aioli" || all[1].Name != "Pancakes" {
		t.Fatalf("list not ordered by name: %+v", all)
	}

	favorites, err := store.List(ctx, Filter{FavoriteOnly: true})
	if err != nil {
		t.Fatalf("list favorites: %v", err)
	}
	if len(favorites) != 1 || favorites[0].Name != "Aioli" {
		t.Fatalf("favorites = %+v, want only Aioli", favorites)
	}

	// Search matches recipe names case-insensitively.
	byName, err := store.List(ctx, Filter{SearchText: "panc"})
	if err != nil {
		t.Fatalf("search by name: %v", err)
	}
	if len(byName) != 1 || byName[0].Name != "Pancakes" {
		t.Fatalf("search panc = %+v", byName)
	}

	// Search also matches ingredient names.
	byIngredient, err := store.List(ctx, Filter{SearchText: "GARLIC"})
	if err != nil {
		t.Fatalf("search by ingredient: %v", err)
	}
	if len(byIngredient) != 1 || byIngredient[0].Name != "Aioli" {
		t.Fatalf("search GARLIC = %+v", byIngredient)
	}
}

func TestUpdate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.Create(ctx, pancakesInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newName := "Fluffy Pancakes"
	hard := DifficultyHard
	if err := store.Update(ctx, id, UpdateInput{Name: &newName, Difficulty: &hard}); err != nil {
		t.Fatalf("update: %v", err)
	}

	rec, err := store.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.Name != "Fluffy Pancakes" || rec.Difficulty != DifficultyHard {
		t.Errorf("update not applied: %+v", rec)
	}
	if len(rec.Ingredients) != 3 {
		t.Errorf("ingredients should be untouched, got %d", len(rec.Ingredients))
	}

	if err := store.Update(ctx, id, UpdateInput{
		Ingredients: []IngredientInput{{Name: "flour", Quantity: 3, Unit: "cups"}},
	}); err != nil {
		t.Fatalf("replace ingredients: %v", err)
	}
	rec, err = store.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(rec.Ingredients) != 1 || rec.Ingredients[0].Quantity != 3 {
		t.Errorf("ingredients not replaced: %+v", rec.Ingredients)
	}

	if err := store.Update(ctx, 9999, UpdateInput{Name: &newName}); !common.IsNotFound(err) {
		t.Fatalf("update absent: got %v, want not found", err)
	}
}

func TestFindMatching(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// Requires egg, flour, sugar: 2 of 3 available.
	if _, err := store.Create(ctx, RecipeInput{
		Name:        "Sponge Cake",
		Ingredients: []IngredientInput{{Name: "egg"}, {Name: "flour"}, {Name: "sugar"}},
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	// Requires exactly egg, flour: full match.
	if _, err := store.Create(ctx, RecipeInput{
		Name:        "Flatbread",
		Ingredients: []IngredientInput{{Name: "egg"}, {Name: "flour"}},
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	// No overlap: excluded.
	if _, err := store.Create(ctx, RecipeInput{
		Name:        "Salad",
		Ingredients: []IngredientInput{{Name: "lettuce"}},
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	matches, err := store.FindMatching(ctx, []string{"Egg", " flour "})
	if err != nil {
		t.Fatalf("find matching: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2: %+v", len(matches), matches)
	}
	if matches[0].Recipe.Name != "Flatbread" || matches[0].Score != 1.0 {
		t.Errorf("matches[0] = %s score %v, want Flatbread 1.0", matches[0].Recipe.Name, matches[0].Score)
	}
	if matches[1].Recipe.Name != "Sponge Cake" {
		t.Errorf("matches[1] = %s, want Sponge Cake", matches[1].Recipe.Name)
	}
	if got, want := matches[1].Score, 2.0/3.0; got != want {
		t.Errorf("matches[1] score = %v, want %v", got, want)
	}
}

func TestFindMatchingTieBreak(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"Zucchini Fritters", "Apple Fritters"} {
		if _, err := store.Create(ctx, RecipeInput{
			Name:        name,
			Ingredients: []IngredientInput{{Name: "flour"}, {Name: "egg"}},
		}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	matches, err := store.FindMatching(ctx, []string{"flour", "egg"})
	if err != nil {
		t.Fatalf("find matching: %v", err)
	}
	if len(matches) != 2 || matches[0].Recipe.Name != "Apple Fritters" {
		t.Fatalf("equal scores should sort by name: %+v", matches)
	}
}

func TestSeedSampleDataIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.SeedSampleData(ctx); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	first, err := store.List(ctx, Filter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(first) == 0 {
		t.Fatal("seed inserted nothing")
	}

	if err := store.SeedSampleData(ctx); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	second, err := store.List(ctx, Filter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("recipe count changed after second seed: %d -> %d", len(first), len(second))
	}
}

func TestNotesUpsert(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.Create(ctx, pancakesInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	text, err := store.GetNotes(ctx, id)
	if err != nil {
		t.Fatalf("get notes: %v", err)
	}
	if text != "" {
		t.Fatalf("expected empty notes, got %q", text)
	}

	if err := store.SetNotes(ctx, id, "double the milk"); err != nil {
		t.Fatalf("set notes: %v", err)
	}
	if err := store.SetNotes(ctx, id, "triple the milk"); err != nil {
		t.Fatalf("replace notes: %v", err)
	}

	text, err = store.GetNotes(ctx, id)
	if err != nil {
		t.Fatalf("get notes: %v", err)
	}
	if text != "triple the milk" {
		t.Fatalf("notes = %q, want replacement", text)
	}
}

func TestNormalizeName(t *testing.T) {
	cases := map[string]string{
		"  Olive   Oil ": "olive oil",
		"EGGS":           "eggs",
		"milk":           "milk",
		"   ":            "",
	}
	for in, want := range cases {
		if got := NormalizeName(in); got != want {
			t.Errorf("NormalizeName(%q) = %q, want %q", in, got, want)
		}
	}
}
