package auth_test

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"whiteboard/internal/config"
	"whiteboard/internal/models"
	"whiteboard/internal/repository"
	"whiteboard/internal/services"
	"whiteboard/internal/services/auth"
	"whiteboard/internal/shared"
)

func setupAuthTest(t *testing.T) (services.UserService, *config.Config) {
	t.Helper()

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Path: filepath.Join(t.TempDir(), "test_auth.db"),
		},
		JWT: config.JWTConfig{
			Secret:            "test-secret",
			AccessDurationMin: 60,
		},
	}

	repo, err := repository.NewRepository(cfg)
	if err != nil {
		t.Fatalf("Failed to create test repository: %v", err)
	}
	if err := repo.MigrateUp(); err != nil {
		t.Fatalf("Failed to apply test migrations: %v", err)
	}
	t.Cleanup(func() { repo.Close() })

	userService := services.NewUserService(repo, auth.NewCredentialVerifier())

	hash, err := auth.HashPassword("password")
	assert.NoError(t, err)
	_, err = userService.Add(models.UserParams{Name: "testuser", PasswordHash: hash})
	assert.NoError(t, err)

	return userService, cfg
}

func TestVerifyCredentials(t *testing.T) {
	verifier := auth.NewCredentialVerifier()

	hash, err := auth.HashPassword("correct horse")
	assert.NoError(t, err)

	assert.NoError(t, verifier.Verify(hash, "correct horse"))

	err = verifier.Verify(hash, "wrong")
	assert.True(t, shared.IsInvalidPassword(err))
	assert.EqualError(t, err, "Invalid user password.")
}

func TestAuthenticateWithRealHashing(t *testing.T) {
	userService, _ := setupAuthTest(t)

	user, err := userService.Authenticate("testuser", "password")
	assert.NoError(t, err)
	assert.Equal(t, "testuser", user.Name)

	_, err = userService.Authenticate("testuser", "nope")
	assert.True(t, shared.IsInvalidPassword(err))
}

func TestTokenRoundTrip(t *testing.T) {
	userService, cfg := setupAuthTest(t)
	tokenService := auth.NewTokenService(cfg, userService)

	user, err := userService.GetByName("testuser")
	assert.NoError(t, err)

	token, err := tokenService.Generate(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	resolved, err := tokenService.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
	assert.Equal(t, "testuser", resolved.Name)

	_, err = tokenService.Validate("not-a-token")
	assert.Error(t, err)
}

func TestRequireTokenMiddleware(t *testing.T) {
	userService, cfg := setupAuthTest(t)
	tokenService := auth.NewTokenService(cfg, userService)
	middleware := auth.NewMiddleware(tokenService)

	protected := middleware.RequireToken(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := auth.UserFromContext(r.Context())
		assert.True(t, ok)
		assert.Equal(t, "testuser", user.Name)
		w.WriteHeader(http.StatusOK)
	}))

	// No header at all.
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, httptest.NewRequest("GET", "/api/workouts", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Wrong scheme.
	rec = httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/workouts", nil)
	req.SetBasicAuth("testuser", "password")
	protected.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Garbage token.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/api/workouts", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	protected.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Valid token.
	user, err := userService.GetByName("testuser")
	assert.NoError(t, err)
	token, err := tokenService.Generate(user)
	assert.NoError(t, err)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/api/workouts", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	protected.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGenerateSecret(t *testing.T) {
	a, err := auth.GenerateSecret()
	assert.NoError(t, err)
	b, err := auth.GenerateSecret()
	assert.NoError(t, err)
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}
