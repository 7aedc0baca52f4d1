package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Github22799/Recipe-App-API/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Ingredient{},
		&models.Image{},
		&models.Recipe{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func newTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user, err := NewUserService(db).Create(context.Background(), email, "testpass123", "Test User")
	if err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

func newTestRecipe(t *testing.T, db *gorm.DB, userID uuid.UUID, in RecipeInput) *models.Recipe {
	t.Helper()

	if in.Title == "" {
		in.Title = "Sample recipe"
	}
	if in.MinutesRequired == 0 {
		in.MinutesRequired = 5
	}
	if in.Price == 0 {
		in.Price = 5.00
	}
	recipe, err := NewRecipeService(db).Create(context.Background(), userID, in)
	if err != nil {
		t.Fatalf("failed to create test recipe: %v", err)
	}
	return recipe
}
