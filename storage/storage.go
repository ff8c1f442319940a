package storage

import (
	"context"

	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/models"
)

// Storage is the record store behind every handler and service. Both
// backends share the same miss semantics: lookups and updates return
// (nil, nil) for an unknown id, deletes return (false, nil). A non-nil
// error always means the store itself failed, never a miss.
type Storage interface {
	// Recipes
	Recipes(ctx context.Context) ([]models.Recipe, error)
	RecipeByID(ctx context.Context, id string) (*models.Recipe, error)
	CreateRecipe(ctx context.Context, in models.InsertRecipe) (*models.Recipe, error)
	UpdateRecipe(ctx context.Context, id string, in models.UpdateRecipe) (*models.Recipe, error)
	DeleteRecipe(ctx context.Context, id string) (bool, error)

	// Meal plans
	MealPlansForWeek(ctx context.Context, weekStartDate string) ([]models.MealPlan, error)
	CreateMealPlan(ctx context.Context, in models.InsertMealPlan) (*models.MealPlan, error)
	UpdateMealPlan(ctx context.Context, id string, in models.UpdateMealPlan) (*models.MealPlan, error)
	DeleteMealPlan(ctx context.Context, id string) (bool, error)

	// Recipe ratings
	RecipeRatings(ctx context.Context, recipeID string) ([]models.RecipeRating, error)
	CreateRecipeRating(ctx context.Context, in models.InsertRecipeRating) (*models.RecipeRating, error)
	UpdateRecipeRating(ctx context.Context, id string, in models.UpdateRecipeRating) (*models.RecipeRating, error)

	// Grocery items
	GroceryItemsForWeek(ctx context.Context, weekStartDate string) ([]models.GroceryItem, error)
	CreateGroceryItem(ctx context.Context, in models.InsertGroceryItem) (*models.GroceryItem, error)
	UpdateGroceryItem(ctx context.Context, id string, in models.UpdateGroceryItem) (*models.GroceryItem, error)
	DeleteGroceryItem(ctx context.Context, id string) (bool, error)

	// Pantry items
	PantryItems(ctx context.Context) ([]models.PantryItem, error)
	CreatePantryItem(ctx context.Context, in models.InsertPantryItem) (*models.PantryItem, error)
	UpdatePantryItem(ctx context.Context, id string, in models.UpdatePantryItem) (*models.PantryItem, error)
	DeletePantryItem(ctx context.Context, id string) (bool, error)

	// Stores
	Stores(ctx context.Context) ([]models.Store, error)
	CreateStore(ctx context.Context, in models.InsertStore) (*models.Store, error)
	UpdateStore(ctx context.Context, id string, in models.UpdateStore) (*models.Store, error)
	DeleteStore(ctx context.Context, id string) (bool, error)

	// Ingredient store preferences. An empty ingredient returns all.
	StorePreferences(ctx context.Context, ingredient string) ([]models.IngredientStorePreference, error)
	CreateStorePreference(ctx context.Context, in models.InsertIngredientStorePreference) (*models.IngredientStorePreference, error)
	UpdateStorePreference(ctx context.Context, id string, in models.UpdateIngredientStorePreference) (*models.IngredientStorePreference, error)
	DeleteStorePreference(ctx context.Context, id string) (bool, error)
}
