package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/models"
	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/storage"
)

func TestRatingSummary(t *testing.T) {
	mem := storage.NewMemStorage()
	ctx := context.Background()
	svc := NewRatingService(mem)

	recipe, err := mem.CreateRecipe(ctx, models.InsertRecipe{
		Name: "Beef Tacos", Cuisine: "Mexican", Servings: 4,
		Ingredients: []string{"ground beef"}, Instructions: "Cook.",
	})
	require.NoError(t, err)

	// Unrated recipe: zero count, zero average.
	summary, err := svc.Summary(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Count)
	assert.Zero(t, summary.Average)

	for member, rating := range map[string]int{"Alex": 3, "Sam": 2, "Riley": 1} {
		_, err := mem.CreateRecipeRating(ctx, models.InsertRecipeRating{
			RecipeID: recipe.ID, FamilyMember: member, Rating: rating,
		})
		require.NoError(t, err)
	}

	summary, err = svc.Summary(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Count)
	assert.InDelta(t, 2.0, summary.Average, 1e-9)
	assert.Equal(t, recipe.ID, summary.RecipeID)
}

func TestRatingSummaryIgnoresOtherRecipes(t *testing.T) {
	mem := storage.NewMemStorage()
	ctx := context.Background()
	svc := NewRatingService(mem)

	_, err := mem.CreateRecipeRating(ctx, models.InsertRecipeRating{
		RecipeID: "other", FamilyMember: "Alex", Rating: 3,
	})
	require.NoError(t, err)

	summary, err := svc.Summary(ctx, "mine")
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Count)
}
