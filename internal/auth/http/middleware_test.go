// Package http provides HTTP middleware and utilities for authentication.
package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/poketrade/pokecards/internal/auth/domain"
)

// mockTokenService is a mock implementation of TokenService for testing.
type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Issue(userID uuid.UUID, email string) (string, time.Time, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *mockTokenService) Verify(token string) (*authDomain.IdentityClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.IdentityClaims), args.Error(1)
}

// TestMain sets Gin to test mode for all tests in this package.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// createTestLogger creates a test logger that discards output.
func createTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// gatedRouter builds a router with a single route behind the middleware that
// echoes the identity found in the request context.
func gatedRouter(tokenService *mockTokenService) *gin.Engine {
	router := gin.New()
	router.GET("/protected", AuthenticationMiddleware(tokenService, createTestLogger()), func(c *gin.Context) {
		identity, ok := GetIdentity(c.Request.Context())
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "no identity"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"user_id": identity.UserID.String(),
			"email":   identity.Email,
		})
	})
	return router
}

func TestAuthenticationMiddleware_Success(t *testing.T) {
	mockTokenSvc := &mockTokenService{}
	userID := uuid.Must(uuid.NewV7())
	identity := &authDomain.IdentityClaims{
		UserID: userID,
		Email:  "ash@pallet.town",
	}
	mockTokenSvc.On("Verify", "valid-token").Return(identity, nil).Once()

	router := gatedRouter(mockTokenSvc)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, userID.String(), body["user_id"])
	assert.Equal(t, "ash@pallet.town", body["email"])
	mockTokenSvc.AssertExpectations(t)
}

func TestAuthenticationMiddleware_CaseInsensitiveBearer(t *testing.T) {
	mockTokenSvc := &mockTokenService{}
	identity := &authDomain.IdentityClaims{
		UserID: uuid.Must(uuid.NewV7()),
		Email:  "misty@cerulean.city",
	}
	mockTokenSvc.On("Verify", "valid-token").Return(identity, nil).Times(3)

	router := gatedRouter(mockTokenSvc)

	for _, header := range []string{"bearer valid-token", "BEARER valid-token", "BeArEr valid-token"} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, "header %q", header)
	}
	mockTokenSvc.AssertExpectations(t)
}

func TestAuthenticationMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
	}{
		{name: "MissingHeader", authHeader: ""},
		{name: "NotBearerScheme", authHeader: "Basic dXNlcjpwYXNz"},
		{name: "EmptyToken", authHeader: "Bearer "},
		{name: "NoSpaceAfterScheme", authHeader: "Bearer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokenSvc := &mockTokenService{}
			router := gatedRouter(mockTokenSvc)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "Accès non autorisé.", body["message"])

			// Verify must never be called when the header itself is unusable
			mockTokenSvc.AssertNotCalled(t, "Verify", mock.Anything)
		})
	}
}

func TestAuthenticationMiddleware_VerifyFailures(t *testing.T) {
	tests := []struct {
		name      string
		verifyErr error
	}{
		{name: "Expired", verifyErr: authDomain.ErrTokenExpired},
		{name: "SignatureInvalid", verifyErr: authDomain.ErrTokenSignatureInvalid},
		{name: "Malformed", verifyErr: authDomain.ErrTokenMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokenSvc := &mockTokenService{}
			mockTokenSvc.On("Verify", "bad-token").Return(nil, tt.verifyErr).Once()

			router := gatedRouter(mockTokenSvc)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer bad-token")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			// Every verification failure collapses into the same 401 response.
			assert.Equal(t, http.StatusUnauthorized, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "Accès non autorisé.", body["message"])
			mockTokenSvc.AssertExpectations(t)
		})
	}
}

func TestGetIdentity_NotSet(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	identity, ok := GetIdentity(req.Context())
	assert.False(t, ok)
	assert.Nil(t, identity)
}
