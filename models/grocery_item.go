package models

import "time"

// GroceryItem is one line on a weekly shopping list. Items created by
// the generator carry IsFromMeal=true and point back at the meal plan
// slot that produced them; manually added items have IsFromMeal=false
// and survive regeneration.
type GroceryItem struct {
	ID               string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name             string    `gorm:"not null" json:"name"`
	Category         string    `gorm:"not null" json:"category"`
	Quantity         string    `gorm:"not null" json:"quantity"`
	EstimatedPrice   *string   `json:"estimatedPrice"`
	PreferredStore   string    `gorm:"not null" json:"preferredStore"`
	IsCompleted      bool      `json:"isCompleted"`
	IsFromMeal       bool      `json:"isFromMeal"`
	AssociatedMealID *string   `gorm:"type:varchar(36)" json:"associatedMealId"`
	WeekStartDate    string    `gorm:"index;not null" json:"weekStartDate"`
	CreatedAt        time.Time `json:"createdAt"`
}

type InsertGroceryItem struct {
	Name             string  `json:"name" binding:"required"`
	Category         string  `json:"category" binding:"required"`
	Quantity         string  `json:"quantity" binding:"required"`
	EstimatedPrice   *string `json:"estimatedPrice"`
	PreferredStore   string  `json:"preferredStore" binding:"required"`
	IsCompleted      bool    `json:"isCompleted"`
	IsFromMeal       bool    `json:"isFromMeal"`
	AssociatedMealID *string `json:"associatedMealId"`
	WeekStartDate    string  `json:"weekStartDate" binding:"required"`
}

type UpdateGroceryItem struct {
	Name             *string `json:"name"`
	Category         *string `json:"category"`
	Quantity         *string `json:"quantity"`
	EstimatedPrice   *string `json:"estimatedPrice"`
	PreferredStore   *string `json:"preferredStore"`
	IsCompleted      *bool   `json:"isCompleted"`
	IsFromMeal       *bool   `json:"isFromMeal"`
	AssociatedMealID *string `json:"associatedMealId"`
	WeekStartDate    *string `json:"weekStartDate"`
}
