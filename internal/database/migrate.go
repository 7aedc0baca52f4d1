package database

import (
	"gorm.io/gorm"

	"github.com/Github22799/Recipe-App-API/internal/models"
)

// Migrate brings the schema up to date for all domain entities. The
// join tables for recipe associations are created implicitly.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Ingredient{},
		&models.Image{},
		&models.Recipe{},
	)
}
