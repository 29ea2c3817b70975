package model

import (
	"time"
)

// Task is a single todo item owned by exactly one user. User rows are
// created by the identity provider; tasks reference them by string ID.
type Task struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	UserID      string  `gorm:"not null;index"`
	Title       string  `gorm:"size:200;not null"`
	Description *string `gorm:"size:1000"`
	Completed   bool    `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	User User `gorm:"foreignKey:UserID"`
}

func (Task) TableName() string {
	return "tasks"
}
