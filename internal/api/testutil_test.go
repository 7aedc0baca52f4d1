package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Github22799/Recipe-App-API/internal/api"
	"github.com/Github22799/Recipe-App-API/internal/models"
	"github.com/Github22799/Recipe-App-API/internal/router"
	"github.com/Github22799/Recipe-App-API/internal/service"
)

// memStore keeps uploaded objects in a map so handler tests can assert
// on storage keys without S3.
type memStore struct {
	objects map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{objects: map[string][]byte{}}
}

func (s *memStore) Put(_ context.Context, key, _ string, body io.Reader) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	s.objects[key] = data
	return nil
}

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	store  *memStore
	users  *service.UserService
	tokens *service.TokenService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Ingredient{},
		&models.Image{},
		&models.Recipe{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	store := newMemStore()
	users := service.NewUserService(db)
	tokens := service.NewTokenService("test-secret")

	engine := router.Setup(router.Handlers{
		Users:          api.NewUserHandler(users, tokens),
		Attributes:     api.NewAttributeHandler(service.NewTagService(db), service.NewIngredientService(db)),
		Images:         api.NewImageHandler(service.NewImageService(db, store)),
		Recipes:        api.NewRecipeHandler(service.NewRecipeService(db)),
		Tokens:         tokens,
		AllowedOrigins: []string{"http://localhost:5173"},
	})

	return &testEnv{router: engine, db: db, store: store, users: users, tokens: tokens}
}

// newUserToken creates a user directly through the service layer and
// returns a bearer token for it.
func (e *testEnv) newUserToken(t *testing.T, email string) string {
	t.Helper()

	user, err := e.users.Create(context.Background(), email, "testpass123", "Test User")
	if err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	token, err := e.tokens.Generate(user.ID)
	if err != nil {
		t.Fatalf("failed to issue test token: %v", err)
	}
	return token
}

// do performs a JSON request against the test router.
func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// doMultipart posts a multipart form with an optional file part named
// "image" plus extra form fields.
func (e *testEnv) doMultipart(t *testing.T, path, token, filename string, content []byte, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if filename != "" {
		part, err := writer.CreateFormFile("image", filename)
		if err != nil {
			t.Fatalf("failed to create form file: %v", err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatalf("failed to write form file: %v", err)
		}
	}
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			t.Fatalf("failed to write form field: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}
