package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Github22799/Recipe-App-API/internal/api"
	"github.com/Github22799/Recipe-App-API/internal/middleware"
)

// Handlers bundles everything the route table needs.
type Handlers struct {
	Users      *api.UserHandler
	Attributes *api.AttributeHandler
	Images     *api.ImageHandler
	Recipes    *api.RecipeHandler
	Tokens     middleware.TokenValidator
	// Limiter guards the token endpoint; nil disables throttling.
	Limiter *middleware.RateLimiter
	// AllowedOrigins configures CORS.
	AllowedOrigins []string
}

// Setup configures the application routes.
func Setup(h Handlers) *gin.Engine {
	router := gin.Default()
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})
	if len(h.AllowedOrigins) > 0 {
		router.Use(middleware.CORS(h.AllowedOrigins))
	}

	v1 := router.Group("/api/v1")

	// Public routes
	users := v1.Group("/users")
	{
		users.POST("", h.Users.Register)

		token := users.Group("/token")
		if h.Limiter != nil {
			token.Use(h.Limiter.Middleware())
		}
		token.POST("", h.Users.Token)
	}

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(h.Tokens))
	{
		me := protected.Group("/users/me")
		{
			me.GET("", h.Users.Me)
			me.PATCH("", h.Users.UpdateMe)
		}

		tags := protected.Group("/tags")
		{
			tags.GET("", h.Attributes.ListTags)
			tags.POST("", h.Attributes.CreateTag)
		}

		ingredients := protected.Group("/ingredients")
		{
			ingredients.GET("", h.Attributes.ListIngredients)
			ingredients.POST("", h.Attributes.CreateIngredient)
		}

		images := protected.Group("/images")
		{
			images.GET("", h.Images.List)
			images.POST("", h.Images.Upload)
		}

		recipes := protected.Group("/recipes")
		{
			recipes.GET("", h.Recipes.List)
			recipes.POST("", h.Recipes.Create)
			recipes.GET("/:id", h.Recipes.Get)
			recipes.PUT("/:id", h.Recipes.Update)
			recipes.PATCH("/:id", h.Recipes.Patch)
			recipes.DELETE("/:id", h.Recipes.Delete)
		}
	}

	return router
}
