package models

import (
	"time"

	"github.com/google/uuid"
)

// Image holds metadata for an uploaded file. The bytes themselves live
// in the object store under StorageKey, which is generated server-side
// and never derived from the client-supplied filename.
type Image struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`
	UserID      uuid.UUID `gorm:"type:varchar(36);not null;index" json:"-"`
	User        User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	StorageKey  string    `gorm:"size:255;not null" json:"image"`
	Description string    `gorm:"size:255" json:"description"`
}
