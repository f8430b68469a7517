package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. The password column only ever holds a
// bcrypt hash and is excluded from every JSON serialization.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Phone     string    `gorm:"size:10;not null" json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}
