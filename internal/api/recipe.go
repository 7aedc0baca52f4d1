package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Github22799/Recipe-App-API/internal/middleware"
	"github.com/Github22799/Recipe-App-API/internal/service"
)

// RecipeHandler serves the recipe catalog endpoints.
type RecipeHandler struct {
	recipes *service.RecipeService
}

func NewRecipeHandler(recipes *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

// parseIDList parses a comma-separated id list query parameter. A
// malformed token fails the request instead of being dropped.
func parseIDList(param, value string) ([]uint, error) {
	if value == "" {
		return nil, nil
	}
	var ids []uint
	for _, token := range strings.Split(value, ",") {
		token = strings.TrimSpace(token)
		id, err := strconv.ParseUint(token, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q in %s filter", token, param)
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}

func (h *RecipeHandler) List(c *gin.Context) {
	tagIDs, err := parseIDList("tags", c.Query("tags"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ingredientIDs, err := parseIDList("ingredients", c.Query("ingredients"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipes, err := h.recipes.List(c.Request.Context(), middleware.UserID(c), service.RecipeFilter{
		TagIDs:        tagIDs,
		IngredientIDs: ingredientIDs,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list recipes"})
		return
	}

	resp := []RecipeResponse{}
	for _, r := range recipes {
		resp = append(resp, newRecipeResponse(r))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RecipeHandler) Get(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	recipe, err := h.recipes.Get(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newRecipeDetailResponse(recipe))
}

func (h *RecipeHandler) Create(c *gin.Context) {
	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipes.Create(c.Request.Context(), middleware.UserID(c), service.RecipeInput{
		Title:           req.Title,
		MinutesRequired: *req.MinutesRequired,
		Price:           *req.Price,
		Link:            req.Link,
		TagIDs:          req.Tags,
		IngredientIDs:   req.Ingredients,
		ImageIDs:        req.Images,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newRecipeDetailResponse(recipe))
}

func (h *RecipeHandler) Update(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipes.Replace(c.Request.Context(), middleware.UserID(c), id, service.RecipeInput{
		Title:           req.Title,
		MinutesRequired: *req.MinutesRequired,
		Price:           *req.Price,
		Link:            req.Link,
		TagIDs:          req.Tags,
		IngredientIDs:   req.Ingredients,
		ImageIDs:        req.Images,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newRecipeDetailResponse(recipe))
}

func (h *RecipeHandler) Patch(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	var req PatchRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipes.Patch(c.Request.Context(), middleware.UserID(c), id, service.RecipePatch{
		Title:           req.Title,
		MinutesRequired: req.MinutesRequired,
		Price:           req.Price,
		Link:            req.Link,
		TagIDs:          req.Tags,
		IngredientIDs:   req.Ingredients,
		ImageIDs:        req.Images,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newRecipeDetailResponse(recipe))
}

func (h *RecipeHandler) Delete(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	if err := h.recipes.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func recipeID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return 0, false
	}
	return uint(id), true
}

func (h *RecipeHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
	case errors.Is(err, service.ErrUnknownAttribute):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
