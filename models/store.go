package models

// Store is a grocery store the household shops at. At most one store
// is expected to carry IsPreferred, though nothing enforces that.
type Store struct {
	ID          string     `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name        string     `gorm:"not null" json:"name"`
	Categories  StringList `gorm:"type:text" json:"categories"`
	IsPreferred bool       `json:"isPreferred"`
}

type InsertStore struct {
	Name        string   `json:"name" binding:"required"`
	Categories  []string `json:"categories"`
	IsPreferred bool     `json:"isPreferred"`
}

type UpdateStore struct {
	Name        *string   `json:"name"`
	Categories  *[]string `json:"categories"`
	IsPreferred *bool     `json:"isPreferred"`
}
