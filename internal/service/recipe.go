package service

import (
	"context"
	"errors"

	"github.com/Github22799/Recipe-App-API/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrUnknownAttribute is returned when a submitted tag, ingredient or
// image id does not resolve within the caller's scope.
var ErrUnknownAttribute = errors.New("unknown tag, ingredient or image id")

// RecipeFilter narrows a recipe listing. A recipe matches a dimension
// if it references any of the ids in it (OR); supplying both dimensions
// requires a match in each (AND).
type RecipeFilter struct {
	TagIDs        []uint
	IngredientIDs []uint
}

// RecipeInput is a full recipe description, used for create and
// replace. Nil id lists mean "no associations".
type RecipeInput struct {
	Title           string
	MinutesRequired int
	Price           float64
	Link            string
	TagIDs          []uint
	IngredientIDs   []uint
	ImageIDs        []uint
}

// RecipePatch is a partial update. Nil fields are left untouched,
// including the association lists.
type RecipePatch struct {
	Title           *string
	MinutesRequired *int
	Price           *float64
	Link            *string
	TagIDs          *[]uint
	IngredientIDs   *[]uint
	ImageIDs        *[]uint
}

// RecipeService handles the recipe catalog: CRUD, attribute
// associations and filtered listings, all scoped to the owning user.
type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// resolveOwned loads the rows for the given ids within the user's
// scope. Ids that do not resolve (missing or owned by someone else)
// fail the whole call.
func resolveOwned[T any](ctx context.Context, db *gorm.DB, userID uuid.UUID, ids []uint) ([]T, error) {
	out := []T{}
	if len(ids) == 0 {
		return out, nil
	}
	unique := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		unique[id] = struct{}{}
	}
	err := db.WithContext(ctx).
		Scopes(OwnedBy(userID)).
		Where("id IN ?", ids).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	if len(out) != len(unique) {
		return nil, ErrUnknownAttribute
	}
	return out, nil
}

func (s *RecipeService) resolveAssociations(ctx context.Context, userID uuid.UUID, tagIDs, ingredientIDs, imageIDs []uint) ([]models.Tag, []models.Ingredient, []models.Image, error) {
	tags, err := resolveOwned[models.Tag](ctx, s.db, userID, tagIDs)
	if err != nil {
		return nil, nil, nil, err
	}
	ingredients, err := resolveOwned[models.Ingredient](ctx, s.db, userID, ingredientIDs)
	if err != nil {
		return nil, nil, nil, err
	}
	images, err := resolveOwned[models.Image](ctx, s.db, userID, imageIDs)
	if err != nil {
		return nil, nil, nil, err
	}
	return tags, ingredients, images, nil
}

// List returns the caller's recipes, newest first, optionally filtered
// by tag/ingredient membership. The IN-subqueries on the join tables
// keep each recipe in the result exactly once even when it matches a
// dimension through several attributes.
func (s *RecipeService) List(ctx context.Context, userID uuid.UUID, filter RecipeFilter) ([]models.Recipe, error) {
	q := s.db.WithContext(ctx).
		Scopes(OwnedBy(userID)).
		Preload("Tags").
		Preload("Ingredients").
		Preload("Images").
		Order("id DESC")

	if len(filter.TagIDs) > 0 {
		sub := s.db.Table("recipe_tags").
			Select("recipe_tags.recipe_id").
			Where("recipe_tags.tag_id IN ?", filter.TagIDs)
		q = q.Where("id IN (?)", sub)
	}
	if len(filter.IngredientIDs) > 0 {
		sub := s.db.Table("recipe_ingredients").
			Select("recipe_ingredients.recipe_id").
			Where("recipe_ingredients.ingredient_id IN ?", filter.IngredientIDs)
		q = q.Where("id IN (?)", sub)
	}

	recipes := []models.Recipe{}
	if err := q.Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// Get loads one of the caller's recipes with its associations. Recipes
// of other users resolve as not-found.
func (s *RecipeService) Get(ctx context.Context, userID uuid.UUID, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).
		Scopes(OwnedBy(userID)).
		Preload("Tags").
		Preload("Ingredients").
		Preload("Images").
		First(&recipe, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// Create persists a new recipe for the caller. Submitted association
// ids must belong to the caller.
func (s *RecipeService) Create(ctx context.Context, userID uuid.UUID, in RecipeInput) (*models.Recipe, error) {
	tags, ingredients, images, err := s.resolveAssociations(ctx, userID, in.TagIDs, in.IngredientIDs, in.ImageIDs)
	if err != nil {
		return nil, err
	}

	recipe := models.Recipe{
		UserID:          userID,
		Title:           in.Title,
		MinutesRequired: in.MinutesRequired,
		Price:           in.Price,
		Link:            in.Link,
		Tags:            tags,
		Ingredients:     ingredients,
		Images:          images,
	}
	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, err
	}
	return s.Get(ctx, userID, recipe.ID)
}

// Replace overwrites a recipe with the given input. Association lists
// that are absent from the input clear the existing associations; the
// row update and the three association replacements commit together.
func (s *RecipeService) Replace(ctx context.Context, userID uuid.UUID, id uint, in RecipeInput) (*models.Recipe, error) {
	recipe, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	tags, ingredients, images, err := s.resolveAssociations(ctx, userID, in.TagIDs, in.IngredientIDs, in.ImageIDs)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"title":            in.Title,
			"minutes_required": in.MinutesRequired,
			"price":            in.Price,
			"link":             in.Link,
		}
		if err := tx.Model(recipe).Updates(updates).Error; err != nil {
			return err
		}
		if err := tx.Model(recipe).Association("Tags").Replace(&tags); err != nil {
			return err
		}
		if err := tx.Model(recipe).Association("Ingredients").Replace(&ingredients); err != nil {
			return err
		}
		return tx.Model(recipe).Association("Images").Replace(&images)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, userID, id)
}

// Patch applies a partial update. Omitted association lists are left
// untouched, in contrast to Replace.
func (s *RecipeService) Patch(ctx context.Context, userID uuid.UUID, id uint, patch RecipePatch) (*models.Recipe, error) {
	recipe, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.MinutesRequired != nil {
		updates["minutes_required"] = *patch.MinutesRequired
	}
	if patch.Price != nil {
		updates["price"] = *patch.Price
	}
	if patch.Link != nil {
		updates["link"] = *patch.Link
	}

	var tags []models.Tag
	var ingredients []models.Ingredient
	var images []models.Image
	if patch.TagIDs != nil {
		if tags, err = resolveOwned[models.Tag](ctx, s.db, userID, *patch.TagIDs); err != nil {
			return nil, err
		}
	}
	if patch.IngredientIDs != nil {
		if ingredients, err = resolveOwned[models.Ingredient](ctx, s.db, userID, *patch.IngredientIDs); err != nil {
			return nil, err
		}
	}
	if patch.ImageIDs != nil {
		if images, err = resolveOwned[models.Image](ctx, s.db, userID, *patch.ImageIDs); err != nil {
			return nil, err
		}
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(recipe).Updates(updates).Error; err != nil {
				return err
			}
		}
		if patch.TagIDs != nil {
			if err := tx.Model(recipe).Association("Tags").Replace(&tags); err != nil {
				return err
			}
		}
		if patch.IngredientIDs != nil {
			if err := tx.Model(recipe).Association("Ingredients").Replace(&ingredients); err != nil {
				return err
			}
		}
		if patch.ImageIDs != nil {
			if err := tx.Model(recipe).Association("Images").Replace(&images); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, userID, id)
}

// Delete removes one of the caller's recipes along with its join rows.
func (s *RecipeService) Delete(ctx context.Context, userID uuid.UUID, id uint) error {
	recipe, err := s.Get(ctx, userID, id)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Select(clause.Associations).Delete(recipe).Error
}
