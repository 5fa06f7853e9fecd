package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCreateCORSMiddleware(t *testing.T) {
	logger := createTestLogger()

	t.Run("DisabledReturnsNil", func(t *testing.T) {
		assert.Nil(t, createCORSMiddleware(false, "https://pokecards.example.com", logger))
	})

	t.Run("EnabledWithoutOriginsReturnsNil", func(t *testing.T) {
		assert.Nil(t, createCORSMiddleware(true, "", logger))
	})

	t.Run("EnabledWithOrigins", func(t *testing.T) {
		middleware := createCORSMiddleware(
			true,
			" https://pokecards.example.com , https://admin.example.com ",
			logger,
		)
		assert.NotNil(t, middleware)
	})
}

func TestParseOrigins(t *testing.T) {
	t.Run("CommaSeparated", func(t *testing.T) {
		origins := parseOrigins("https://pokecards.example.com,https://admin.example.com")
		assert.Equal(t, []string{
			"https://pokecards.example.com",
			"https://admin.example.com",
		}, origins)
	})

	t.Run("TrimsWhitespaceAndDropsBlanks", func(t *testing.T) {
		origins := parseOrigins(" https://pokecards.example.com , ,https://admin.example.com ")
		assert.Equal(t, []string{
			"https://pokecards.example.com",
			"https://admin.example.com",
		}, origins)
	})

	t.Run("EmptyString", func(t *testing.T) {
		assert.Nil(t, parseOrigins(""))
	})
}

func TestCORSMiddleware_AllowedOriginHeaders(t *testing.T) {
	middleware := createCORSMiddleware(true, "https://pokecards.example.com", createTestLogger())

	router := gin.New()
	router.Use(middleware)
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Origin", "https://pokecards.example.com")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://pokecards.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSMiddleware_PreflightRequest(t *testing.T) {
	middleware := createCORSMiddleware(true, "https://pokecards.example.com", createTestLogger())

	router := gin.New()
	router.Use(middleware)
	router.POST("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/test", nil)
	req.Header.Set("Origin", "https://pokecards.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
}
