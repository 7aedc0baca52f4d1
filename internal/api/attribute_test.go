package api_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Github22799/Recipe-App-API/internal/api"
)

func TestTagsRequireAuth(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/v1/tags", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodPost, "/api/v1/ingredients", "", gin.H{"name": "Salt"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateAndListTags(t *testing.T) {
	env := newTestEnv(t)
	token := env.newUserToken(t, "tags@example.com")

	for _, name := range []string{"Breakfast", "Vegan"} {
		w := env.do(t, http.MethodPost, "/api/v1/tags", token, gin.H{"name": name})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := env.do(t, http.MethodGet, "/api/v1/tags", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp []api.AttributeResponse
	decodeJSON(t, w, &resp)
	require.Len(t, resp, 2)
	assert.Equal(t, "Vegan", resp[0].Name)
	assert.Equal(t, "Breakfast", resp[1].Name)
}

func TestCreateTagMissingName(t *testing.T) {
	env := newTestEnv(t)
	token := env.newUserToken(t, "noname@example.com")

	w := env.do(t, http.MethodPost, "/api/v1/tags", token, gin.H{"name": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListTagsScopedToCaller(t *testing.T) {
	env := newTestEnv(t)
	alice := env.newUserToken(t, "alice@example.com")
	bob := env.newUserToken(t, "bob@example.com")

	w := env.do(t, http.MethodPost, "/api/v1/tags", bob, gin.H{"name": "Bob's"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/tags", alice, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp []api.AttributeResponse
	decodeJSON(t, w, &resp)
	assert.Empty(t, resp)
}

func TestListIngredientsAssignedOnly(t *testing.T) {
	env := newTestEnv(t)
	token := env.newUserToken(t, "assigned@example.com")

	w := env.do(t, http.MethodPost, "/api/v1/ingredients", token, gin.H{"name": "Salt"})
	require.Equal(t, http.StatusCreated, w.Code)
	var used api.AttributeResponse
	decodeJSON(t, w, &used)

	w = env.do(t, http.MethodPost, "/api/v1/ingredients", token, gin.H{"name": "Pepper"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodPost, "/api/v1/recipes", token, gin.H{
		"title":            "Salty",
		"minutes_required": 5,
		"price":            3.50,
		"ingredients":      []uint{used.ID},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/ingredients?assigned_only=1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp []api.AttributeResponse
	decodeJSON(t, w, &resp)
	require.Len(t, resp, 1)
	assert.Equal(t, "Salt", resp[0].Name)

	// Any other value of the flag means "all".
	w = env.do(t, http.MethodGet, "/api/v1/ingredients?assigned_only=0", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeJSON(t, w, &resp)
	assert.Len(t, resp, 2)
}
