package models

import (
	"time"

	"github.com/google/uuid"
)

type Recipe struct {
	ID              uint         `gorm:"primarykey" json:"id"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
	UserID          uuid.UUID    `gorm:"type:varchar(36);not null;index" json:"-"`
	User            User         `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Title           string       `gorm:"size:255;not null" json:"title"`
	MinutesRequired int          `json:"minutes_required"`
	Price           float64      `gorm:"type:decimal(5,2)" json:"price"`
	Link            string       `gorm:"size:255" json:"link"`
	Tags            []Tag        `gorm:"many2many:recipe_tags;constraint:OnDelete:CASCADE" json:"tags"`
	Ingredients     []Ingredient `gorm:"many2many:recipe_ingredients;constraint:OnDelete:CASCADE" json:"ingredients"`
	Images          []Image      `gorm:"many2many:recipe_images;constraint:OnDelete:CASCADE" json:"images"`
}
