package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Github22799/Recipe-App-API/internal/middleware"
	"github.com/Github22799/Recipe-App-API/internal/service"
)

// AttributeHandler serves the tag and ingredient catalogs. The two are
// deliberately symmetric.
type AttributeHandler struct {
	tags        *service.TagService
	ingredients *service.IngredientService
}

func NewAttributeHandler(tags *service.TagService, ingredients *service.IngredientService) *AttributeHandler {
	return &AttributeHandler{tags: tags, ingredients: ingredients}
}

func assignedOnly(c *gin.Context) bool {
	return c.Query("assigned_only") == "1"
}

func (h *AttributeHandler) ListTags(c *gin.Context) {
	tags, err := h.tags.List(c.Request.Context(), middleware.UserID(c), assignedOnly(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list tags"})
		return
	}

	resp := []AttributeResponse{}
	for _, t := range tags {
		resp = append(resp, AttributeResponse{ID: t.ID, Name: t.Name})
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AttributeHandler) CreateTag(c *gin.Context) {
	var req AttributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag, err := h.tags.Create(c.Request.Context(), middleware.UserID(c), req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create tag"})
		return
	}
	c.JSON(http.StatusCreated, AttributeResponse{ID: tag.ID, Name: tag.Name})
}

func (h *AttributeHandler) ListIngredients(c *gin.Context) {
	ingredients, err := h.ingredients.List(c.Request.Context(), middleware.UserID(c), assignedOnly(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list ingredients"})
		return
	}

	resp := []AttributeResponse{}
	for _, i := range ingredients {
		resp = append(resp, AttributeResponse{ID: i.ID, Name: i.Name})
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AttributeHandler) CreateIngredient(c *gin.Context) {
	var req AttributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ingredient, err := h.ingredients.Create(c.Request.Context(), middleware.UserID(c), req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create ingredient"})
		return
	}
	c.JSON(http.StatusCreated, AttributeResponse{ID: ingredient.ID, Name: ingredient.Name})
}
