package utils

import "strings"

// Grocery list categories. Every generated or categorized item lands
// in exactly one of these.
const (
	CategoryMeatSeafood      = "Meat & Seafood"
	CategoryDairy            = "Dairy"
	CategoryProduce          = "Produce"
	CategoryGrainsPasta      = "Grains & Pasta"
	CategoryPantryEssentials = "Pantry Essentials"
)

// Rules are checked in order; the first keyword hit wins.
var categoryRules = []struct {
	category string
	keywords []string
}{
	{CategoryMeatSeafood, []string{"beef", "chicken", "meat"}},
	{CategoryDairy, []string{"milk", "cheese", "yogurt"}},
	{CategoryProduce, []string{"apple", "berry", "lettuce", "tomato"}},
	{CategoryGrainsPasta, []string{"pasta", "rice", "oats", "bread"}},
}

// CategorizeIngredient maps free-text ingredient names onto a grocery
// category by substring match. It is a best-effort heuristic, not a
// vocabulary lookup: "tomato sauce" lands in Produce because of the
// "tomato" substring, and anything unmatched falls through to
// Pantry Essentials.
func CategorizeIngredient(ingredient string) string {
	lower := strings.ToLower(ingredient)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return CategoryPantryEssentials
}
