package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"

	"github.com/Wiktor-Wewe/psi-projekt/pkg/responder"
)

const testJWTSecret = "test-secret-key-for-testing-purposes-only"

func generateTestToken(tokenAuth *jwtauth.JWTAuth, employeeID string) string {
	_, tokenString, _ := tokenAuth.Encode(map[string]interface{}{
		"employee_id": employeeID,
		"exp":         time.Now().Add(time.Hour).Unix(),
	})
	return tokenString
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

// TestAuthMiddleware_ValidToken tests that a valid token passes through
func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokenAuth := NewTokenAuth(testJWTSecret)
	handler := AuthMiddleware(tokenAuth)(okHandler())

	token := generateTestToken(tokenAuth, "e5f1c001-0000-4000-8000-000000000001")

	req := httptest.NewRequest(http.MethodGet, "/api/rents", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code, "Valid token should be accepted")
}

// TestAuthMiddleware_BareToken tests that a token without a Bearer prefix is normalized
func TestAuthMiddleware_BareToken(t *testing.T) {
	tokenAuth := NewTokenAuth(testJWTSecret)
	handler := AuthMiddleware(tokenAuth)(okHandler())

	token := generateTestToken(tokenAuth, "e5f1c001-0000-4000-8000-000000000001")

	req := httptest.NewRequest(http.MethodGet, "/api/rents", nil)
	req.Header.Set("Authorization", token)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code, "Bare token should be accepted after normalization")
}

// TestAuthMiddleware_InvalidToken tests that a malformed token is rejected
func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokenAuth := NewTokenAuth(testJWTSecret)
	handler := AuthMiddleware(tokenAuth)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/rents", nil)
	req.Header.Set("Authorization", "Bearer invalid-token")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code, "Invalid token should be rejected")

	var errorResp responder.ErrorResponse
	err := json.Unmarshal(rr.Body.Bytes(), &errorResp)
	assert.NoError(t, err)
	assert.Equal(t, "Forbidden", errorResp.Error)
}

// TestAuthMiddleware_NoToken tests that a request without a token is rejected
func TestAuthMiddleware_NoToken(t *testing.T) {
	tokenAuth := NewTokenAuth(testJWTSecret)
	handler := AuthMiddleware(tokenAuth)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/rents", nil)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code, "Request without token should be rejected")
}

// TestAuthMiddleware_WrongSecret tests that a token signed with another secret is rejected
func TestAuthMiddleware_WrongSecret(t *testing.T) {
	tokenAuth := NewTokenAuth(testJWTSecret)
	otherAuth := NewTokenAuth("some-other-secret")
	handler := AuthMiddleware(tokenAuth)(okHandler())

	token := generateTestToken(otherAuth, "e5f1c001-0000-4000-8000-000000000001")

	req := httptest.NewRequest(http.MethodGet, "/api/rents", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code, "Token signed with another secret should be rejected")
}
