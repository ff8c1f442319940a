package services

import (
	"context"

	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/models"
	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/storage"
)

// FallbackStoreName is used when no store carries the preferred flag.
const FallbackStoreName = "Whole Foods"

// DefaultStoreName returns the name of the store flagged as preferred,
// or FallbackStoreName when none is.
func DefaultStoreName(stores []models.Store) string {
	for _, s := range stores {
		if s.IsPreferred {
			return s.Name
		}
	}
	return FallbackStoreName
}

// ResolveStoreName picks the best store to buy an ingredient from.
// Preferences are matched by exact ingredient text; the lowest
// preferenceRank wins, and on equal rank the first preference in input
// order is kept. Without a match, or when the winning preference points
// at a store that no longer exists, defaultStoreName is returned.
func ResolveStoreName(ingredient string, prefs []models.IngredientStorePreference, stores []models.Store, defaultStoreName string) string {
	var best *models.IngredientStorePreference
	for i := range prefs {
		if prefs[i].Ingredient != ingredient {
			continue
		}
		if best == nil || prefs[i].PreferenceRank < best.PreferenceRank {
			best = &prefs[i]
		}
	}
	if best == nil {
		return defaultStoreName
	}
	for _, s := range stores {
		if s.ID == best.StoreID {
			return s.Name
		}
	}
	return defaultStoreName
}

// StorePreferenceService resolves per-ingredient store choices against
// the stored preference table.
type StorePreferenceService struct {
	store storage.Storage
}

func NewStorePreferenceService(store storage.Storage) *StorePreferenceService {
	return &StorePreferenceService{store: store}
}

func (s *StorePreferenceService) ResolveStore(ctx context.Context, ingredient string) (string, error) {
	prefs, err := s.store.StorePreferences(ctx, ingredient)
	if err != nil {
		return "", err
	}
	stores, err := s.store.Stores(ctx)
	if err != nil {
		return "", err
	}
	return ResolveStoreName(ingredient, prefs, stores, DefaultStoreName(stores)), nil
}
