package models

import "time"

const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
)

// MealPlan is one slot on the weekly calendar. WeekStartDate is the
// opaque YYYY-MM-DD key that partitions weeks; DayOfWeek is 0-6 with
// Sunday=0.
type MealPlan struct {
	ID             string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	WeekStartDate  string    `gorm:"index;not null" json:"weekStartDate"`
	DayOfWeek      int       `json:"dayOfWeek"`
	MealType       string    `gorm:"not null" json:"mealType"`
	RecipeID       *string   `gorm:"type:varchar(36)" json:"recipeId"`
	CustomMealName *string   `json:"customMealName"`
	IsLeftover     bool      `json:"isLeftover"`
	CreatedAt      time.Time `json:"createdAt"`
}

type MealKind string

const (
	MealKindRecipe MealKind = "recipe"
	MealKindCustom MealKind = "custom"
)

// MealRef is the tagged view over the recipeId/customMealName pair.
// The storage layer keeps both nullable columns; domain code should
// branch on this instead of poking at the pointers.
type MealRef struct {
	Kind     MealKind
	RecipeID string
	Name     string
}

func (m *MealPlan) Meal() MealRef {
	if m.RecipeID != nil && *m.RecipeID != "" {
		return MealRef{Kind: MealKindRecipe, RecipeID: *m.RecipeID}
	}
	name := ""
	if m.CustomMealName != nil {
		name = *m.CustomMealName
	}
	return MealRef{Kind: MealKindCustom, Name: name}
}

type InsertMealPlan struct {
	WeekStartDate  string  `json:"weekStartDate" binding:"required"`
	DayOfWeek      int     `json:"dayOfWeek" binding:"min=0,max=6"`
	MealType       string  `json:"mealType" binding:"required,oneof=breakfast lunch dinner"`
	RecipeID       *string `json:"recipeId"`
	CustomMealName *string `json:"customMealName"`
	IsLeftover     bool    `json:"isLeftover"`
}

type UpdateMealPlan struct {
	WeekStartDate  *string `json:"weekStartDate"`
	DayOfWeek      *int    `json:"dayOfWeek"`
	MealType       *string `json:"mealType"`
	RecipeID       *string `json:"recipeId"`
	CustomMealName *string `json:"customMealName"`
	IsLeftover     *bool   `json:"isLeftover"`
}
