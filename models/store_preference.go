package models

import "time"

// IngredientStorePreference ranks stores for a single ingredient.
// Ingredient is matched case-sensitively against recipe ingredient
// text; lower PreferenceRank wins.
type IngredientStorePreference struct {
	ID             string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Ingredient     string    `gorm:"index;not null" json:"ingredient"`
	StoreID        string    `gorm:"type:varchar(36);not null" json:"storeId"`
	PreferenceRank int       `json:"preferenceRank"`
	CreatedAt      time.Time `json:"createdAt"`
}

type InsertIngredientStorePreference struct {
	Ingredient     string `json:"ingredient" binding:"required"`
	StoreID        string `json:"storeId" binding:"required"`
	PreferenceRank int    `json:"preferenceRank" binding:"required,min=1"`
}

type UpdateIngredientStorePreference struct {
	Ingredient     *string `json:"ingredient"`
	StoreID        *string `json:"storeId"`
	PreferenceRank *int    `json:"preferenceRank"`
}
