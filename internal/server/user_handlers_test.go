package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pulse/internal/config"
	"pulse/internal/database"
	"pulse/internal/gravatar"
	"pulse/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestServer builds a Server over an in-memory database with the full
// route table mounted.
func setupTestServer(t *testing.T) (*Server, *fiber.App) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		Port:      "8370",
		JWTSecret: "unit-test-secret-not-for-production",
		Env:       "test",
	}

	s := NewServerWithDeps(cfg, db, nil)
	app := fiber.New()
	s.SetupRoutes(app)
	return s, app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any, headers ...map[string]string) *http.Response {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	for _, h := range headers {
		for k, v := range h {
			req.Header.Set(k, v)
		}
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func registerUser(t *testing.T, app *fiber.App, name, email, password string) {
	t.Helper()

	resp := postJSON(t, app, "/api/users/register", map[string]string{
		"name": name, "email": email, "password": password,
	})
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUsersTest(t *testing.T) {
	_, app := setupTestServer(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/users/test", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Users works", body["msg"])
}

func TestRegister(t *testing.T) {
	s, app := setupTestServer(t)

	resp := postJSON(t, app, "/api/users/register", map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "secret123",
	})
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Alice", body["name"])
	assert.Equal(t, gravatar.URL("alice@example.com"), body["avatar"])

	// The stored credential is a bcrypt hash, never the plaintext.
	hash, _ := body["password"].(string)
	assert.NotEqual(t, "secret123", hash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret123")))

	var saved models.User
	require.NoError(t, s.db.Where("email = ?", "alice@example.com").First(&saved).Error)
	assert.Equal(t, hash, saved.Password)
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name        string
		body        map[string]string
		expectedKey string
		expectedMsg string
	}{
		{
			name:        "Missing name",
			body:        map[string]string{"email": "a@b.com", "password": "secret123"},
			expectedKey: "name",
			expectedMsg: "Name field is required",
		},
		{
			name:        "Invalid email",
			body:        map[string]string{"name": "A", "email": "not-an-email", "password": "secret123"},
			expectedKey: "email",
			expectedMsg: "Email is invalid",
		},
		{
			name:        "Short password",
			body:        map[string]string{"name": "A", "email": "a@b.com", "password": "abc"},
			expectedKey: "password",
			expectedMsg: "Password must be at least 6 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, app := setupTestServer(t)

			resp := postJSON(t, app, "/api/users/register", tt.body)
			defer func() { _ = resp.Body.Close() }()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			body := decodeBody(t, resp)
			assert.Equal(t, tt.expectedMsg, body[tt.expectedKey])
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	_, app := setupTestServer(t)
	registerUser(t, app, "Alice", "alice@example.com", "secret123")

	resp := postJSON(t, app, "/api/users/register", map[string]string{
		"name":     "Another Alice",
		"email":    "alice@example.com",
		"password": "different456",
	})
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Email already exists", body["email"])
}

func TestLogin(t *testing.T) {
	_, app := setupTestServer(t)
	registerUser(t, app, "Alice", "alice@example.com", "secret123")

	t.Run("Success", func(t *testing.T) {
		resp := postJSON(t, app, "/api/users/login", map[string]string{
			"email": "alice@example.com", "password": "secret123",
		})
		defer func() { _ = resp.Body.Close() }()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, true, body["success"])
		token, _ := body["token"].(string)
		assert.True(t, strings.HasPrefix(token, "Bearer "))
	})

	t.Run("Wrong password", func(t *testing.T) {
		resp := postJSON(t, app, "/api/users/login", map[string]string{
			"email": "alice@example.com", "password": "wrong-password",
		})
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Password incorrect", body["password"])
	})

	t.Run("Unknown email", func(t *testing.T) {
		resp := postJSON(t, app, "/api/users/login", map[string]string{
			"email": "nobody@example.com", "password": "secret123",
		})
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "User not found", body["email"])
	})
}

func TestCurrentUser(t *testing.T) {
	_, app := setupTestServer(t)
	registerUser(t, app, "Alice", "alice@example.com", "secret123")
	token := loginUser(t, app, "alice@example.com", "secret123")

	t.Run("With token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/users/current", nil)
		req.Header.Set("Authorization", token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Alice", body["name"])
		assert.Equal(t, "alice@example.com", body["email"])
		// The profile projection never includes the credential.
		assert.NotContains(t, body, "password")
	})

	t.Run("Without token", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/users/current", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

// loginUser returns the "Bearer <jwt>" token string for the credentials.
func loginUser(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()

	resp := postJSON(t, app, "/api/users/login", map[string]string{
		"email": email, "password": password,
	})
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	token, ok := body["token"].(string)
	require.True(t, ok)
	return token
}
