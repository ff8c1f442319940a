package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/models"
	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/storage"
)

func TestDefaultStoreName(t *testing.T) {
	stores := []models.Store{
		{ID: "1", Name: "Target"},
		{ID: "2", Name: "Costco", IsPreferred: true},
	}
	assert.Equal(t, "Costco", DefaultStoreName(stores))
	assert.Equal(t, "Whole Foods", DefaultStoreName(nil))
	assert.Equal(t, "Whole Foods", DefaultStoreName([]models.Store{{ID: "1", Name: "Target"}}))
}

func TestResolveStoreName(t *testing.T) {
	stores := []models.Store{
		{ID: "wf", Name: "Whole Foods"},
		{ID: "tg", Name: "Target"},
		{ID: "cc", Name: "Costco"},
	}
	prefs := []models.IngredientStorePreference{
		{ID: "p1", Ingredient: "ground beef", StoreID: "cc", PreferenceRank: 1},
		{ID: "p2", Ingredient: "ground beef", StoreID: "wf", PreferenceRank: 2},
		{ID: "p3", Ingredient: "spaghetti pasta", StoreID: "tg", PreferenceRank: 1},
	}

	assert.Equal(t, "Costco", ResolveStoreName("ground beef", prefs, stores, "Whole Foods"))
	assert.Equal(t, "Target", ResolveStoreName("spaghetti pasta", prefs, stores, "Whole Foods"))

	// No preference for the ingredient: fall back.
	assert.Equal(t, "Whole Foods", ResolveStoreName("saffron", prefs, stores, "Whole Foods"))

	// Matching is exact and case-sensitive.
	assert.Equal(t, "Whole Foods", ResolveStoreName("Ground Beef", prefs, stores, "Whole Foods"))
}

func TestResolveStoreNameTieBreak(t *testing.T) {
	stores := []models.Store{
		{ID: "a", Name: "First"},
		{ID: "b", Name: "Second"},
	}
	prefs := []models.IngredientStorePreference{
		{ID: "p1", Ingredient: "eggs", StoreID: "a", PreferenceRank: 1},
		{ID: "p2", Ingredient: "eggs", StoreID: "b", PreferenceRank: 1},
	}
	// Equal ranks resolve to the first preference in input order.
	assert.Equal(t, "First", ResolveStoreName("eggs", prefs, stores, "Whole Foods"))
}

func TestResolveStoreNameDanglingStore(t *testing.T) {
	prefs := []models.IngredientStorePreference{
		{ID: "p1", Ingredient: "eggs", StoreID: "gone", PreferenceRank: 1},
	}
	assert.Equal(t, "Whole Foods", ResolveStoreName("eggs", prefs, nil, "Whole Foods"))
}

func TestStorePreferenceServiceResolve(t *testing.T) {
	mem := storage.NewMemStorage()
	ctx := context.Background()

	costco, err := mem.CreateStore(ctx, models.InsertStore{Name: "Costco"})
	require.NoError(t, err)
	_, err = mem.CreateStore(ctx, models.InsertStore{Name: "Trader Joe's", IsPreferred: true})
	require.NoError(t, err)
	_, err = mem.CreateStorePreference(ctx, models.InsertIngredientStorePreference{
		Ingredient: "ground beef", StoreID: costco.ID, PreferenceRank: 1,
	})
	require.NoError(t, err)

	svc := NewStorePreferenceService(mem)

	got, err := svc.ResolveStore(ctx, "ground beef")
	require.NoError(t, err)
	assert.Equal(t, "Costco", got)

	got, err = svc.ResolveStore(ctx, "saffron")
	require.NoError(t, err)
	assert.Equal(t, "Trader Joe's", got, "unmatched ingredients go to the preferred store")
}
