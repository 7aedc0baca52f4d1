package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnedBy restricts a query to rows belonging to the given user. Every
// catalog operation applies this scope; nothing else decides cross-user
// visibility, so rows of other users surface as not-found rather than
// forbidden.
func OwnedBy(userID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}
