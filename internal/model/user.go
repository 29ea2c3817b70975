package model

import (
	"time"
)

// User mirrors the identity provider's user table. This service never
// writes it; rows appear when the provider registers an account.
type User struct {
	ID        string `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex;not null"`
	Name      string `gorm:"not null"`
	CreatedAt time.Time

	Tasks []Task `gorm:"foreignKey:UserID"`
}

func (User) TableName() string {
	return "users"
}
