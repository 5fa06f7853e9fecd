// Package http provides HTTP middleware and utilities for authentication.
package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	authDomain "github.com/poketrade/pokecards/internal/auth/domain"
)

// identityInjector fakes a prior successful authentication for rate limit tests.
func identityInjector(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := &authDomain.IdentityClaims{UserID: userID, Email: "ash@pallet.town"}
		c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(), identity))
		c.Next()
	}
}

func TestRateLimitMiddleware_AllowsWithinLimit(t *testing.T) {
	router := gin.New()
	router.GET("/protected",
		identityInjector(uuid.Must(uuid.NewV7())),
		RateLimitMiddleware(100, 10, createTestLogger()),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	for range 5 {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimitMiddleware_BlocksOverLimit(t *testing.T) {
	router := gin.New()
	router.GET("/protected",
		identityInjector(uuid.Must(uuid.NewV7())),
		RateLimitMiddleware(1, 2, createTestLogger()),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	codes := make([]int, 0, 5)
	for range 5 {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	// Burst of 2 passes, the rest of the tight loop is throttled.
	assert.Equal(t, http.StatusOK, codes[0])
	assert.Equal(t, http.StatusOK, codes[1])
	assert.Contains(t, codes, http.StatusTooManyRequests)
}

func TestRateLimitMiddleware_PerUserIsolation(t *testing.T) {
	firstUser := uuid.Must(uuid.NewV7())
	secondUser := uuid.Must(uuid.NewV7())

	limit := RateLimitMiddleware(1, 1, createTestLogger())

	routerFor := func(userID uuid.UUID) *gin.Engine {
		router := gin.New()
		router.GET("/protected",
			identityInjector(userID),
			limit,
			func(c *gin.Context) { c.Status(http.StatusOK) },
		)
		return router
	}
	first := routerFor(firstUser)
	second := routerFor(secondUser)

	// Exhaust the first user's bucket.
	for range 3 {
		w := httptest.NewRecorder()
		first.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	}
	w := httptest.NewRecorder()
	first.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	// The second user has an independent bucket and still gets through.
	w = httptest.NewRecorder()
	second.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimitMiddleware_MissingIdentity(t *testing.T) {
	router := gin.New()
	router.GET("/protected",
		RateLimitMiddleware(100, 10, createTestLogger()),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRateLimitMiddleware_BlocksOverLimit(t *testing.T) {
	router := gin.New()
	router.POST("/login",
		LoginRateLimitMiddleware(1, 2, createTestLogger()),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	codes := make([]int, 0, 5)
	for range 5 {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "203.0.113.7:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, http.StatusOK, codes[0])
	assert.Equal(t, http.StatusOK, codes[1])
	assert.Contains(t, codes, http.StatusTooManyRequests)
}

func TestLoginRateLimitMiddleware_PerIPIsolation(t *testing.T) {
	router := gin.New()
	router.POST("/login",
		LoginRateLimitMiddleware(1, 1, createTestLogger()),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	// Exhaust the first address's bucket.
	for range 3 {
		send("203.0.113.7:1234")
	}
	assert.Equal(t, http.StatusTooManyRequests, send("203.0.113.7:1234"))

	// A different address is unaffected.
	assert.Equal(t, http.StatusOK, send("198.51.100.9:5678"))
}
