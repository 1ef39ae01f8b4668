package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tailor-backend/internal/auth"
	"tailor-backend/internal/config"
	"tailor-backend/internal/models"
)

func testJWTManager() *auth.JWTManager {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationHours = 1
	cfg.JWT.Issuer = "tailor-backend"
	return auth.NewJWTManager(cfg)
}

func authTestHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserIDFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, 1, userID)

		email, ok := GetEmailFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, "admin@gmail.com", email)

		role, ok := GetRoleFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, "admin", role)

		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticateValidToken(t *testing.T) {
	manager := testJWTManager()
	token, err := manager.GenerateToken(&models.User{ID: 1, Email: "admin@gmail.com", Role: "admin"})
	require.NoError(t, err)

	mw := NewAuthMiddleware(manager)
	handler := mw.Authenticate(authTestHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticateMissingHeader(t *testing.T) {
	mw := NewAuthMiddleware(testJWTManager())
	handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message": "No token, authorization denied"}`, rec.Body.String())
}

func TestAuthenticateBadFormat(t *testing.T) {
	mw := NewAuthMiddleware(testJWTManager())
	handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
	req.Header.Set("Authorization", "Basic abc123")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message": "Invalid authorization format"}`, rec.Body.String())
}

func TestAuthenticateInvalidToken(t *testing.T) {
	mw := NewAuthMiddleware(testJWTManager())
	handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message": "Token is not valid"}`, rec.Body.String())
}

func TestPanicRecovery(t *testing.T) {
	handler := PanicRecovery(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message": "Something went wrong!"}`, rec.Body.String())
}
