package storage

import (
	"context"
	"fmt"

	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/models"
)

func strptr(s string) *string { return &s }

// SeedDemoData loads the demo household: three stores, four recipes,
// a starter pantry and a ranked store-preference table. Works against
// any backend; intended for the memory driver and fresh dev databases.
func SeedDemoData(ctx context.Context, s Storage) error {
	wholeFoods, err := s.CreateStore(ctx, models.InsertStore{
		Name: "Whole Foods", Categories: []string{"produce", "meat", "dairy", "pantry"}, IsPreferred: true,
	})
	if err != nil {
		return fmt.Errorf("seed stores: %w", err)
	}
	target, err := s.CreateStore(ctx, models.InsertStore{
		Name: "Target", Categories: []string{"pantry", "frozen", "household"},
	})
	if err != nil {
		return fmt.Errorf("seed stores: %w", err)
	}
	costco, err := s.CreateStore(ctx, models.InsertStore{
		Name: "Costco", Categories: []string{"bulk", "meat", "pantry"},
	})
	if err != nil {
		return fmt.Errorf("seed stores: %w", err)
	}

	recipes := []models.InsertRecipe{
		{
			Name: "Spaghetti Carbonara", Cuisine: "Italian", PrepTime: 30, Servings: 4,
			Ingredients:  []string{"spaghetti pasta", "eggs", "parmesan cheese", "bacon", "black pepper"},
			Instructions: "Cook pasta, fry bacon, mix with eggs and cheese, combine with pasta.",
			Tags:         []string{"dinner", "pasta", "quick"},
			MakesLeftovers: true, NonPerishableBase: true,
			ImageURL: strptr("https://images.unsplash.com/photo-1621996346565-e3dbc353d2e5?w=800&h=600&fit=crop"),
		},
		{
			Name: "Chicken Tikka Masala", Cuisine: "Indian", PrepTime: 60, Servings: 6,
			Ingredients:  []string{"chicken breast", "coconut milk", "tomato sauce", "garam masala", "basmati rice"},
			Instructions: "Marinate chicken, cook in spiced tomato sauce, serve with rice.",
			Tags:         []string{"dinner", "curry", "spicy"},
			MakesLeftovers: true, NonPerishableBase: true,
			ImageURL: strptr("https://images.unsplash.com/photo-1565557623262-b51c2513a641?w=800&h=600&fit=crop"),
		},
		{
			Name: "Simple Pasta with Marinara", Cuisine: "Italian", PrepTime: 15, Servings: 2,
			Ingredients:  []string{"pasta", "marinara sauce", "parmesan cheese", "basil"},
			Instructions: "Cook pasta, heat sauce, combine and serve with cheese.",
			Tags:         []string{"dinner", "simple", "quick"},
			NonPerishableBase: true,
			ImageURL: strptr("https://images.unsplash.com/photo-1571771894821-ce9b6c11b08e?w=800&h=600&fit=crop"),
		},
		{
			Name: "Beef Tacos", Cuisine: "Mexican", PrepTime: 30, Servings: 4,
			Ingredients:  []string{"ground beef", "taco shells", "lettuce", "tomatoes", "cheese", "sour cream"},
			Instructions: "Cook ground beef with spices, warm taco shells, assemble with toppings.",
			Tags:         []string{"dinner", "mexican", "family-friendly"},
			MakesLeftovers: true,
			ImageURL: strptr("https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=800&h=600&fit=crop"),
		},
	}
	for _, r := range recipes {
		if _, err := s.CreateRecipe(ctx, r); err != nil {
			return fmt.Errorf("seed recipes: %w", err)
		}
	}

	pantry := []models.InsertPantryItem{
		{Name: "Diced Tomatoes", Category: "Canned Goods", Quantity: "4 cans", ExpirationDate: strptr("2024-03-15"), StockLevel: models.StockLevelHigh},
		{Name: "Coconut Milk", Category: "Canned Goods", Quantity: "1 can", ExpirationDate: strptr("2024-02-28"), StockLevel: models.StockLevelLow},
		{Name: "Basmati Rice", Category: "Grains & Pasta", Quantity: "2 lbs", ExpirationDate: strptr("2024-12-31"), StockLevel: models.StockLevelHigh},
		{Name: "Spaghetti", Category: "Grains & Pasta", Quantity: "0 boxes", StockLevel: models.StockLevelEmpty},
	}
	for _, p := range pantry {
		if _, err := s.CreatePantryItem(ctx, p); err != nil {
			return fmt.Errorf("seed pantry: %w", err)
		}
	}

	prefs := []models.InsertIngredientStorePreference{
		{Ingredient: "chicken breast", StoreID: wholeFoods.ID, PreferenceRank: 1},
		{Ingredient: "chicken breast", StoreID: costco.ID, PreferenceRank: 2},
		{Ingredient: "ground beef", StoreID: costco.ID, PreferenceRank: 1},
		{Ingredient: "ground beef", StoreID: wholeFoods.ID, PreferenceRank: 2},
		{Ingredient: "spaghetti pasta", StoreID: target.ID, PreferenceRank: 1},
		{Ingredient: "spaghetti pasta", StoreID: wholeFoods.ID, PreferenceRank: 2},
		{Ingredient: "marinara sauce", StoreID: target.ID, PreferenceRank: 1},
		{Ingredient: "marinara sauce", StoreID: wholeFoods.ID, PreferenceRank: 2},
		{Ingredient: "parmesan cheese", StoreID: wholeFoods.ID, PreferenceRank: 1},
		{Ingredient: "parmesan cheese", StoreID: target.ID, PreferenceRank: 2},
	}
	for _, p := range prefs {
		if _, err := s.CreateStorePreference(ctx, p); err != nil {
			return fmt.Errorf("seed store preferences: %w", err)
		}
	}

	return nil
}
