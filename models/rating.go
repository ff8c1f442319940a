package models

import "time"

// Rating scale: 1=okay, 2=good, 3=great.
type RecipeRating struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	RecipeID     string    `gorm:"index;type:varchar(36);not null" json:"recipeId"`
	FamilyMember string    `gorm:"not null" json:"familyMember"`
	Rating       int       `json:"rating"`
	CreatedAt    time.Time `json:"createdAt"`
}

type InsertRecipeRating struct {
	RecipeID     string `json:"recipeId" binding:"required"`
	FamilyMember string `json:"familyMember" binding:"required"`
	Rating       int    `json:"rating" binding:"required,min=1,max=3"`
}

type UpdateRecipeRating struct {
	FamilyMember *string `json:"familyMember"`
	Rating       *int    `json:"rating"`
}
