package api_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Github22799/Recipe-App-API/internal/api"
)

func TestUploadImage(t *testing.T) {
	env := newTestEnv(t)
	token := env.newUserToken(t, "upload@example.com")

	content := []byte("fake image bytes")
	w := env.doMultipart(t, "/api/v1/images", token, "photo.JPG", content, map[string]string{
		"description": "dinner",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp api.ImageResponse
	decodeJSON(t, w, &resp)
	assert.Equal(t, "dinner", resp.Description)

	// The storage key is generated, not the client filename; only the
	// lowercased extension survives.
	assert.True(t, strings.HasPrefix(resp.Image, "uploads/"), "key %q", resp.Image)
	assert.True(t, strings.HasSuffix(resp.Image, ".jpg"), "key %q", resp.Image)
	assert.NotContains(t, resp.Image, "photo")

	stored, ok := env.store.objects[resp.Image]
	require.True(t, ok, "object %q not stored", resp.Image)
	assert.Equal(t, content, stored)
}

func TestUploadImageMissingFile(t *testing.T) {
	env := newTestEnv(t)
	token := env.newUserToken(t, "nofile@example.com")

	w := env.doMultipart(t, "/api/v1/images", token, "", nil, map[string]string{
		"description": "nothing here",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadImageEmptyFile(t *testing.T) {
	env := newTestEnv(t)
	token := env.newUserToken(t, "empty@example.com")

	w := env.doMultipart(t, "/api/v1/images", token, "empty.png", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, env.store.objects)
}

func TestListImagesScopedToCaller(t *testing.T) {
	env := newTestEnv(t)
	alice := env.newUserToken(t, "alice@example.com")
	bob := env.newUserToken(t, "bob@example.com")

	w := env.doMultipart(t, "/api/v1/images", bob, "bobs.png", []byte("x"), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/images", alice, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp []api.ImageResponse
	decodeJSON(t, w, &resp)
	assert.Empty(t, resp)

	w = env.do(t, http.MethodGet, "/api/v1/images", bob, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeJSON(t, w, &resp)
	assert.Len(t, resp, 1)
}
