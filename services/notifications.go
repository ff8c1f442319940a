package services

import "github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/models"

// Event kinds pushed over the realtime hub.
const (
	EventGroceryGenerated = "grocery.generated"
	EventPantryLowStock   = "pantry.low_stock"
	EventMealPlanChanged  = "mealplan.changed"
)

// NotifyGroceryGenerated announces a finished grocery-list generation
// run for a week. Safe to call with a nil hub.
func NotifyGroceryGenerated(h *RealtimeHub, weekStartDate string, itemCount int) {
	h.Broadcast(EventGroceryGenerated, map[string]any{
		"weekStartDate": weekStartDate,
		"itemCount":     itemCount,
	})
}

// NotifyLowStock fires when a pantry item lands on a low or empty
// stock level.
func NotifyLowStock(h *RealtimeHub, item *models.PantryItem) {
	h.Broadcast(EventPantryLowStock, map[string]any{
		"item": item,
	})
}

// NotifyMealPlanChanged announces a calendar mutation; action is one
// of "created", "updated", "deleted".
func NotifyMealPlanChanged(h *RealtimeHub, action string, plan *models.MealPlan) {
	h.Broadcast(EventMealPlanChanged, map[string]any{
		"action":   action,
		"mealPlan": plan,
	})
}
