package service

import (
	"context"

	"github.com/Github22799/Recipe-App-API/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// attribute is either Tag or Ingredient. Both catalogs share the same
// scoping, ordering and assigned-only semantics, so the queries are
// written once.
type attribute interface {
	models.Tag | models.Ingredient
}

func createAttribute[T attribute](ctx context.Context, db *gorm.DB, rec *T) error {
	return db.WithContext(ctx).Create(rec).Error
}

// listAttributes returns the caller's attributes ordered by name
// descending. With assignedOnly set, results are restricted to
// attributes referenced by at least one of the caller's recipes; the
// IN-subquery on the join table keeps each attribute in the result
// exactly once no matter how many recipes reference it.
func listAttributes[T attribute](ctx context.Context, db *gorm.DB, userID uuid.UUID, assignedOnly bool, joinTable, joinColumn string) ([]T, error) {
	q := db.WithContext(ctx).Scopes(OwnedBy(userID)).Order("name DESC")
	if assignedOnly {
		sub := db.Table(joinTable).
			Select(joinTable+"."+joinColumn).
			Joins("JOIN recipes ON recipes.id = "+joinTable+".recipe_id").
			Where("recipes.user_id = ?", userID)
		q = q.Where("id IN (?)", sub)
	}
	items := []T{}
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

type TagService struct {
	db *gorm.DB
}

func NewTagService(db *gorm.DB) *TagService {
	return &TagService{db: db}
}

func (s *TagService) Create(ctx context.Context, userID uuid.UUID, name string) (*models.Tag, error) {
	tag := models.Tag{Name: name, UserID: userID}
	if err := createAttribute(ctx, s.db, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

func (s *TagService) List(ctx context.Context, userID uuid.UUID, assignedOnly bool) ([]models.Tag, error) {
	return listAttributes[models.Tag](ctx, s.db, userID, assignedOnly, "recipe_tags", "tag_id")
}

type IngredientService struct {
	db *gorm.DB
}

func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

func (s *IngredientService) Create(ctx context.Context, userID uuid.UUID, name string) (*models.Ingredient, error) {
	ingredient := models.Ingredient{Name: name, UserID: userID}
	if err := createAttribute(ctx, s.db, &ingredient); err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (s *IngredientService) List(ctx context.Context, userID uuid.UUID, assignedOnly bool) ([]models.Ingredient, error) {
	return listAttributes[models.Ingredient](ctx, s.db, userID, assignedOnly, "recipe_ingredients", "ingredient_id")
}
