package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/models"
	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/storage"
	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/utils"
)

// Placeholder values stamped on every generated item. There is no real
// pricing or quantity source.
const (
	placeholderQuantity = "1 unit"
	placeholderPrice    = "$3.99"
)

// GroceryListService rebuilds the meal-derived half of a week's
// grocery list from the current meal schedule. Manually added items
// are never touched.
type GroceryListService struct {
	store storage.Storage
	hub   *RealtimeHub
	log   *zap.SugaredLogger
}

func NewGroceryListService(store storage.Storage, hub *RealtimeHub, log *zap.SugaredLogger) *GroceryListService {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &GroceryListService{store: store, hub: hub, log: log}
}

// Generate regenerates the grocery list for one week and returns the
// newly created items. Existing meal-derived items for the week are
// deleted first, then one item is created per ingredient of every
// scheduled non-leftover recipe meal. Meals whose recipe no longer
// exists are skipped. There is no transaction: a storage failure
// mid-run leaves the writes made so far in place.
func (s *GroceryListService) Generate(ctx context.Context, weekStartDate string) ([]models.GroceryItem, error) {
	plans, err := s.store.MealPlansForWeek(ctx, weekStartDate)
	if err != nil {
		return nil, err
	}
	recipes, err := s.store.Recipes(ctx)
	if err != nil {
		return nil, err
	}
	stores, err := s.store.Stores(ctx)
	if err != nil {
		return nil, err
	}

	existing, err := s.store.GroceryItemsForWeek(ctx, weekStartDate)
	if err != nil {
		return nil, err
	}
	for _, item := range existing {
		if !item.IsFromMeal {
			continue
		}
		if _, err := s.store.DeleteGroceryItem(ctx, item.ID); err != nil {
			return nil, err
		}
	}

	recipeByID := make(map[string]models.Recipe, len(recipes))
	for _, r := range recipes {
		recipeByID[r.ID] = r
	}

	// Every generated item goes to the household's preferred store.
	// TODO: route items through ResolveStoreName once the shopping view
	// can render per-store sections.
	preferredStore := DefaultStoreName(stores)

	created := []models.GroceryItem{}
	skipped := 0
	for _, plan := range plans {
		meal := plan.Meal()
		if meal.Kind != models.MealKindRecipe || plan.IsLeftover {
			continue
		}
		recipe, ok := recipeByID[meal.RecipeID]
		if !ok {
			// Slot points at a recipe that was deleted; skip it and
			// keep generating the rest of the week.
			skipped++
			continue
		}
		for _, ingredient := range recipe.Ingredients {
			mealID := plan.ID
			price := placeholderPrice
			item, err := s.store.CreateGroceryItem(ctx, models.InsertGroceryItem{
				Name:             ingredient,
				Category:         utils.CategorizeIngredient(ingredient),
				Quantity:         placeholderQuantity,
				EstimatedPrice:   &price,
				PreferredStore:   preferredStore,
				IsCompleted:      false,
				IsFromMeal:       true,
				AssociatedMealID: &mealID,
				WeekStartDate:    weekStartDate,
			})
			if err != nil {
				return nil, err
			}
			created = append(created, *item)
		}
	}

	s.log.Infow("generated grocery list",
		"weekStartDate", weekStartDate,
		"items", len(created),
		"mealsMissingRecipe", skipped,
	)
	NotifyGroceryGenerated(s.hub, weekStartDate, len(created))

	return created, nil
}
