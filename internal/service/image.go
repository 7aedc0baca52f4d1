package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/Github22799/Recipe-App-API/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ImageService handles image uploads and the per-user media catalog.
type ImageService struct {
	db    *gorm.DB
	store ObjectStore
}

func NewImageService(db *gorm.DB, store ObjectStore) *ImageService {
	return &ImageService{db: db, store: store}
}

// Upload writes the file bytes to the object store under a freshly
// generated key and records the metadata. Only the extension of the
// client filename survives; the rest of the key is a random token, so
// uploads cannot collide or smuggle path segments.
func (s *ImageService) Upload(ctx context.Context, userID uuid.UUID, filename, contentType string, body io.Reader, description string) (*models.Image, error) {
	key := fmt.Sprintf("uploads/%s%s", uuid.New().String(), strings.ToLower(filepath.Ext(filename)))

	if err := s.store.Put(ctx, key, contentType, body); err != nil {
		return nil, fmt.Errorf("storing object %s: %w", key, err)
	}

	image := models.Image{
		UserID:      userID,
		StorageKey:  key,
		Description: description,
	}
	if err := s.db.WithContext(ctx).Create(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

// List returns the caller's images, newest first.
func (s *ImageService) List(ctx context.Context, userID uuid.UUID) ([]models.Image, error) {
	images := []models.Image{}
	err := s.db.WithContext(ctx).
		Scopes(OwnedBy(userID)).
		Order("id DESC").
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}
