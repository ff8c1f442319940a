package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/models"
	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/storage"
	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/utils"
)

const testWeek = "2024-01-15"

func newGenerator(t *testing.T) (*GroceryListService, *storage.MemStorage) {
	t.Helper()
	mem := storage.NewMemStorage()
	return NewGroceryListService(mem, nil, nil), mem
}

func addPreferredStore(t *testing.T, mem *storage.MemStorage, name string) *models.Store {
	t.Helper()
	s, err := mem.CreateStore(context.Background(), models.InsertStore{Name: name, IsPreferred: true})
	require.NoError(t, err)
	return s
}

func addCarbonara(t *testing.T, mem *storage.MemStorage) *models.Recipe {
	t.Helper()
	r, err := mem.CreateRecipe(context.Background(), models.InsertRecipe{
		Name: "Spaghetti Carbonara", Cuisine: "Italian", Servings: 4,
		Ingredients:  []string{"spaghetti pasta", "eggs", "parmesan cheese", "bacon", "black pepper"},
		Instructions: "Cook pasta, fry bacon, combine.",
	})
	require.NoError(t, err)
	return r
}

func scheduleDinner(t *testing.T, mem *storage.MemStorage, recipeID string, leftover bool) *models.MealPlan {
	t.Helper()
	p, err := mem.CreateMealPlan(context.Background(), models.InsertMealPlan{
		WeekStartDate: testWeek, DayOfWeek: 1, MealType: models.MealTypeDinner,
		RecipeID: &recipeID, IsLeftover: leftover,
	})
	require.NoError(t, err)
	return p
}

func TestGenerateSingleMealWeek(t *testing.T) {
	gen, mem := newGenerator(t)
	ctx := context.Background()

	addPreferredStore(t, mem, "Whole Foods")
	recipe := addCarbonara(t, mem)
	plan := scheduleDinner(t, mem, recipe.ID, false)

	items, err := gen.Generate(ctx, testWeek)
	require.NoError(t, err)
	require.Len(t, items, 5)

	wantCategories := map[string]string{
		"spaghetti pasta": utils.CategoryGrainsPasta,
		"eggs":            utils.CategoryPantryEssentials,
		"parmesan cheese": utils.CategoryDairy,
		"bacon":           utils.CategoryPantryEssentials,
		"black pepper":    utils.CategoryPantryEssentials,
	}
	for _, item := range items {
		assert.True(t, item.IsFromMeal)
		require.NotNil(t, item.AssociatedMealID)
		assert.Equal(t, plan.ID, *item.AssociatedMealID)
		assert.Equal(t, testWeek, item.WeekStartDate)
		assert.Equal(t, "Whole Foods", item.PreferredStore)
		assert.Equal(t, "1 unit", item.Quantity)
		require.NotNil(t, item.EstimatedPrice)
		assert.Equal(t, "$3.99", *item.EstimatedPrice)
		assert.False(t, item.IsCompleted)
		assert.Equal(t, wantCategories[item.Name], item.Category, "category for %q", item.Name)
	}
}

func TestGenerateUsesPreferredStoreName(t *testing.T) {
	gen, mem := newGenerator(t)
	ctx := context.Background()

	addPreferredStore(t, mem, "Costco")
	recipe := addCarbonara(t, mem)
	scheduleDinner(t, mem, recipe.ID, false)

	items, err := gen.Generate(ctx, testWeek)
	require.NoError(t, err)
	for _, item := range items {
		assert.Equal(t, "Costco", item.PreferredStore)
	}
}

func TestGenerateFallsBackToWholeFoods(t *testing.T) {
	gen, mem := newGenerator(t)
	ctx := context.Background()

	// No store carries the preferred flag.
	recipe := addCarbonara(t, mem)
	scheduleDinner(t, mem, recipe.ID, false)

	items, err := gen.Generate(ctx, testWeek)
	require.NoError(t, err)
	require.NotEmpty(t, items)
	for _, item := range items {
		assert.Equal(t, "Whole Foods", item.PreferredStore)
	}
}

func TestGeneratePreservesManualItems(t *testing.T) {
	gen, mem := newGenerator(t)
	ctx := context.Background()

	recipe := addCarbonara(t, mem)
	scheduleDinner(t, mem, recipe.ID, false)

	manual, err := mem.CreateGroceryItem(ctx, models.InsertGroceryItem{
		Name: "Dish soap", Category: utils.CategoryPantryEssentials,
		Quantity: "1 bottle", PreferredStore: "Target", WeekStartDate: testWeek,
	})
	require.NoError(t, err)

	_, err = gen.Generate(ctx, testWeek)
	require.NoError(t, err)
	_, err = gen.Generate(ctx, testWeek)
	require.NoError(t, err)

	week, err := mem.GroceryItemsForWeek(ctx, testWeek)
	require.NoError(t, err)
	found := false
	for _, item := range week {
		if item.ID == manual.ID {
			found = true
		}
	}
	assert.True(t, found, "manual item must survive regeneration")
}

func TestGenerateSkipsLeftovers(t *testing.T) {
	gen, mem := newGenerator(t)
	ctx := context.Background()

	recipe := addCarbonara(t, mem)
	plan := scheduleDinner(t, mem, recipe.ID, true)

	items, err := gen.Generate(ctx, testWeek)
	require.NoError(t, err)
	assert.Empty(t, items)

	week, err := mem.GroceryItemsForWeek(ctx, testWeek)
	require.NoError(t, err)
	for _, item := range week {
		if item.AssociatedMealID != nil {
			assert.NotEqual(t, plan.ID, *item.AssociatedMealID)
		}
	}
}

func TestGenerateSkipsMissingRecipe(t *testing.T) {
	gen, mem := newGenerator(t)
	ctx := context.Background()

	recipe := addCarbonara(t, mem)
	scheduleDinner(t, mem, recipe.ID, false)
	scheduleDinner(t, mem, "no-such-recipe", false)

	items, err := gen.Generate(ctx, testWeek)
	require.NoError(t, err, "a dangling recipe reference must not abort the run")
	assert.Len(t, items, 5)
}

func TestGenerateSkipsCustomMeals(t *testing.T) {
	gen, mem := newGenerator(t)
	ctx := context.Background()

	name := "Takeout pizza"
	_, err := mem.CreateMealPlan(ctx, models.InsertMealPlan{
		WeekStartDate: testWeek, DayOfWeek: 5, MealType: models.MealTypeDinner,
		CustomMealName: &name,
	})
	require.NoError(t, err)

	items, err := gen.Generate(ctx, testWeek)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGenerateIsIdempotent(t *testing.T) {
	gen, mem := newGenerator(t)
	ctx := context.Background()

	addPreferredStore(t, mem, "Whole Foods")
	recipe := addCarbonara(t, mem)
	scheduleDinner(t, mem, recipe.ID, false)

	first, err := gen.Generate(ctx, testWeek)
	require.NoError(t, err)
	second, err := gen.Generate(ctx, testWeek)
	require.NoError(t, err)

	assert.Equal(t, itemKeys(first), itemKeys(second))

	week, err := mem.GroceryItemsForWeek(ctx, testWeek)
	require.NoError(t, err)
	fromMeal := 0
	for _, item := range week {
		if item.IsFromMeal {
			fromMeal++
		}
	}
	assert.Equal(t, 5, fromMeal, "old meal-derived items must be replaced, not accumulated")
}

func TestRegenerateAfterAddingSecondMeal(t *testing.T) {
	gen, mem := newGenerator(t)
	ctx := context.Background()

	carbonara := addCarbonara(t, mem)
	scheduleDinner(t, mem, carbonara.ID, false)
	_, err := gen.Generate(ctx, testWeek)
	require.NoError(t, err)

	tacos, err := mem.CreateRecipe(ctx, models.InsertRecipe{
		Name: "Beef Tacos", Cuisine: "Mexican", Servings: 4,
		Ingredients:  []string{"ground beef", "taco shells", "lettuce", "tomatoes", "cheese", "sour cream"},
		Instructions: "Brown the beef, assemble.",
	})
	require.NoError(t, err)
	_, err = mem.CreateMealPlan(ctx, models.InsertMealPlan{
		WeekStartDate: testWeek, DayOfWeek: 3, MealType: models.MealTypeDinner,
		RecipeID: &tacos.ID,
	})
	require.NoError(t, err)

	items, err := gen.Generate(ctx, testWeek)
	require.NoError(t, err)
	assert.Len(t, items, 11)

	counts := map[string]int{}
	for _, item := range items {
		counts[item.Name]++
	}
	assert.Equal(t, 1, counts["spaghetti pasta"], "first meal's items are recreated exactly once")
	assert.Equal(t, 1, counts["ground beef"])
}

// Weeks are independent: regenerating one never touches another.
func TestGenerateLeavesOtherWeeksAlone(t *testing.T) {
	gen, mem := newGenerator(t)
	ctx := context.Background()

	recipe := addCarbonara(t, mem)
	scheduleDinner(t, mem, recipe.ID, false)

	otherWeek := "2024-01-22"
	other, err := mem.CreateGroceryItem(ctx, models.InsertGroceryItem{
		Name: "oats", Category: utils.CategoryGrainsPasta, Quantity: "1 box",
		PreferredStore: "Target", WeekStartDate: otherWeek, IsFromMeal: true,
	})
	require.NoError(t, err)

	_, err = gen.Generate(ctx, testWeek)
	require.NoError(t, err)

	remaining, err := mem.GroceryItemsForWeek(ctx, otherWeek)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, other.ID, remaining[0].ID)
}

type itemKey struct {
	Name, Category, Quantity, Store string
}

func itemKeys(items []models.GroceryItem) map[itemKey]int {
	out := map[itemKey]int{}
	for _, item := range items {
		out[itemKey{item.Name, item.Category, item.Quantity, item.PreferredStore}]++
	}
	return out
}
