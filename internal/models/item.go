package models

import (
	"time"

	"github.com/google/uuid"
)

// Item statuses. Stored lowercase.
const (
	StatusLost  = "lost"
	StatusFound = "found"
)

// ItemCategories is the closed set of accepted categories.
var ItemCategories = []string{"Electronics", "Documents", "Accessories", "Clothing", "Others"}

// Item is a single lost/found listing. UserID is fixed at creation from the
// authenticated caller and never reassigned.
type Item struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	Category     string    `gorm:"size:50;not null;index" json:"category"`
	Status       string    `gorm:"size:10;not null;index" json:"status"`
	Location     string    `gorm:"size:255;not null" json:"location"`
	Date         time.Time `gorm:"not null" json:"date"`
	Image        *string   `gorm:"type:text" json:"image"`
	ContactName  string    `gorm:"size:255;not null" json:"contactName"`
	ContactPhone string    `gorm:"size:50;not null" json:"contactPhone"`
	ContactEmail string    `gorm:"size:255;not null" json:"contactEmail"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	User         *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt    time.Time `gorm:"index" json:"createdAt"`
}

func ValidCategory(category string) bool {
	for _, c := range ItemCategories {
		if c == category {
			return true
		}
	}
	return false
}

func ValidStatus(status string) bool {
	return status == StatusLost || status == StatusFound
}
