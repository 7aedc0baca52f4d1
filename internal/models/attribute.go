package models

import (
	"time"

	"github.com/google/uuid"
)

// Tag is a named label a user attaches to recipes.
type Tag struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;index" json:"-"`
	User      User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// Ingredient mirrors Tag: a named, user-owned attribute.
type Ingredient struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;index" json:"-"`
	User      User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
