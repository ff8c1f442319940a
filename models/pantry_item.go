package models

import "time"

const (
	StockLevelHigh   = "high"
	StockLevelMedium = "medium"
	StockLevelLow    = "low"
	StockLevelEmpty  = "empty"
)

type PantryItem struct {
	ID             string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name           string    `gorm:"not null" json:"name"`
	Category       string    `gorm:"not null" json:"category"`
	Quantity       string    `gorm:"not null" json:"quantity"`
	ExpirationDate *string   `json:"expirationDate"` // YYYY-MM-DD
	StockLevel     string    `gorm:"not null" json:"stockLevel"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// LowStock reports whether the item should trigger a restock signal.
func (p *PantryItem) LowStock() bool {
	return p.StockLevel == StockLevelLow || p.StockLevel == StockLevelEmpty
}

type InsertPantryItem struct {
	Name           string  `json:"name" binding:"required"`
	Category       string  `json:"category" binding:"required"`
	Quantity       string  `json:"quantity" binding:"required"`
	ExpirationDate *string `json:"expirationDate"`
	StockLevel     string  `json:"stockLevel" binding:"required,oneof=high medium low empty"`
}

type UpdatePantryItem struct {
	Name           *string `json:"name"`
	Category       *string `json:"category"`
	Quantity       *string `json:"quantity"`
	ExpirationDate *string `json:"expirationDate"`
	StockLevel     *string `json:"stockLevel"`
}
