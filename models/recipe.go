package models

import "time"

type Recipe struct {
	ID                string     `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name              string     `gorm:"not null" json:"name"`
	Cuisine           string     `gorm:"not null" json:"cuisine"`
	PrepTime          int        `json:"prepTime"` // minutes
	Servings          int        `json:"servings"`
	Ingredients       StringList `gorm:"type:text;not null" json:"ingredients"`
	Instructions      string     `gorm:"type:text" json:"instructions"`
	Tags              StringList `gorm:"type:text" json:"tags"`
	MakesLeftovers    bool       `json:"makesLeftovers"`
	NonPerishableBase bool       `json:"nonPerishableBase"`
	ImageURL          *string    `json:"imageUrl"`
	CreatedAt         time.Time  `json:"createdAt"`
}

type InsertRecipe struct {
	Name              string   `json:"name" binding:"required"`
	Cuisine           string   `json:"cuisine" binding:"required"`
	PrepTime          int      `json:"prepTime" binding:"min=0"`
	Servings          int      `json:"servings" binding:"required,min=1"`
	Ingredients       []string `json:"ingredients" binding:"required"`
	Instructions      string   `json:"instructions" binding:"required"`
	Tags              []string `json:"tags"`
	MakesLeftovers    bool     `json:"makesLeftovers"`
	NonPerishableBase bool     `json:"nonPerishableBase"`
	ImageURL          *string  `json:"imageUrl"`
}

// UpdateRecipe carries a partial update; nil fields are left as-is.
type UpdateRecipe struct {
	Name              *string   `json:"name"`
	Cuisine           *string   `json:"cuisine"`
	PrepTime          *int      `json:"prepTime"`
	Servings          *int      `json:"servings"`
	Ingredients       *[]string `json:"ingredients"`
	Instructions      *string   `json:"instructions"`
	Tags              *[]string `json:"tags"`
	MakesLeftovers    *bool     `json:"makesLeftovers"`
	NonPerishableBase *bool     `json:"nonPerishableBase"`
	ImageURL          *string   `json:"imageUrl"`
}
