package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Github22799/Recipe-App-API/internal/api"
	"github.com/Github22799/Recipe-App-API/internal/router"
)

func newEngine(origins []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return router.Setup(router.Handlers{
		Users:          api.NewUserHandler(nil, nil),
		Attributes:     api.NewAttributeHandler(nil, nil),
		Images:         api.NewImageHandler(nil),
		Recipes:        api.NewRecipeHandler(nil),
		AllowedOrigins: origins,
	})
}

// An empty origin list must yield a working router, not a CORS
// configuration panic.
func TestSetupWithoutOrigins(t *testing.T) {
	engine := newEngine(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/users", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestSetupAppliesCORS(t *testing.T) {
	engine := newEngine([]string{"http://localhost:5173"})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/users", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}
