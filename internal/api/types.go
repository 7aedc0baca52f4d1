package api

import "github.com/Github22799/Recipe-App-API/internal/models"

// Request and response bodies are explicit per endpoint; nothing is
// reflected off the entities.

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=5"`
	Name     string `json:"name"`
}

type TokenRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateMeRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=5"`
}

type AttributeRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateRecipeRequest also serves full replace. The numeric fields are
// pointers so "required" checks presence, not non-zero: a free recipe
// or one taking zero minutes is valid input.
type CreateRecipeRequest struct {
	Title           string   `json:"title" binding:"required"`
	MinutesRequired *int     `json:"minutes_required" binding:"required"`
	Price           *float64 `json:"price" binding:"required"`
	Link            string   `json:"link"`
	Tags            []uint   `json:"tags"`
	Ingredients     []uint   `json:"ingredients"`
	Images          []uint   `json:"images"`
}

// PatchRecipeRequest distinguishes absent fields from zero values so a
// partial update leaves omitted fields and associations untouched.
type PatchRecipeRequest struct {
	Title           *string  `json:"title" binding:"omitempty,min=1"`
	MinutesRequired *int     `json:"minutes_required"`
	Price           *float64 `json:"price"`
	Link            *string  `json:"link"`
	Tags            *[]uint  `json:"tags"`
	Ingredients     *[]uint  `json:"ingredients"`
	Images          *[]uint  `json:"images"`
}

type UserResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type AttributeResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ImageResponse struct {
	ID          uint   `json:"id"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// RecipeResponse is the list representation: associations as id lists.
type RecipeResponse struct {
	ID              uint    `json:"id"`
	Title           string  `json:"title"`
	MinutesRequired int     `json:"minutes_required"`
	Price           float64 `json:"price"`
	Link            string  `json:"link"`
	Tags            []uint  `json:"tags"`
	Ingredients     []uint  `json:"ingredients"`
	Images          []uint  `json:"images"`
}

// RecipeDetailResponse nests the full attribute representations.
type RecipeDetailResponse struct {
	ID              uint                `json:"id"`
	Title           string              `json:"title"`
	MinutesRequired int                 `json:"minutes_required"`
	Price           float64             `json:"price"`
	Link            string              `json:"link"`
	Tags            []AttributeResponse `json:"tags"`
	Ingredients     []AttributeResponse `json:"ingredients"`
	Images          []ImageResponse     `json:"images"`
}

func newUserResponse(u *models.User) UserResponse {
	return UserResponse{Email: u.Email, Name: u.Name}
}

func newImageResponse(img models.Image) ImageResponse {
	return ImageResponse{ID: img.ID, Image: img.StorageKey, Description: img.Description}
}

func newRecipeResponse(r models.Recipe) RecipeResponse {
	resp := RecipeResponse{
		ID:              r.ID,
		Title:           r.Title,
		MinutesRequired: r.MinutesRequired,
		Price:           r.Price,
		Link:            r.Link,
		Tags:            []uint{},
		Ingredients:     []uint{},
		Images:          []uint{},
	}
	for _, t := range r.Tags {
		resp.Tags = append(resp.Tags, t.ID)
	}
	for _, i := range r.Ingredients {
		resp.Ingredients = append(resp.Ingredients, i.ID)
	}
	for _, img := range r.Images {
		resp.Images = append(resp.Images, img.ID)
	}
	return resp
}

func newRecipeDetailResponse(r *models.Recipe) RecipeDetailResponse {
	resp := RecipeDetailResponse{
		ID:              r.ID,
		Title:           r.Title,
		MinutesRequired: r.MinutesRequired,
		Price:           r.Price,
		Link:            r.Link,
		Tags:            []AttributeResponse{},
		Ingredients:     []AttributeResponse{},
		Images:          []ImageResponse{},
	}
	for _, t := range r.Tags {
		resp.Tags = append(resp.Tags, AttributeResponse{ID: t.ID, Name: t.Name})
	}
	for _, i := range r.Ingredients {
		resp.Ingredients = append(resp.Ingredients, AttributeResponse{ID: i.ID, Name: i.Name})
	}
	for _, img := range r.Images {
		resp.Images = append(resp.Images, newImageResponse(img))
	}
	return resp
}
