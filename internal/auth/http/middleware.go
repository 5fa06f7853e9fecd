// Package http provides HTTP middleware and utilities for authentication.
package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authDomain "github.com/poketrade/pokecards/internal/auth/domain"
	authService "github.com/poketrade/pokecards/internal/auth/service"
	"github.com/poketrade/pokecards/internal/httputil"
)

// AuthenticationMiddleware gates routes behind Bearer token authentication.
//
// The middleware:
// 1. Extracts the Bearer token from the Authorization header (case-insensitive)
// 2. Verifies the token signature and validity window via tokenService.Verify()
// 3. Stores the verified identity in the request context
// 4. Allows downstream handlers to access the identity via GetIdentity()
//
// Authorization header format: "Bearer <token>" (case-insensitive "bearer")
//
// Error handling collapses every failure into 401 Unauthorized with the same
// response body, so a caller cannot probe which check failed. The distinct
// failure modes (missing, malformed, expired, bad signature) stay visible in
// debug logs.
//
// Usage:
//
//	router.POST("/card", AuthenticationMiddleware(tokenService, logger), handler)
func AuthenticationMiddleware(
	tokenService authService.TokenService,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Debug("authentication failed: missing authorization header")
			httputil.HandleErrorGin(c, authDomain.ErrMissingToken, logger)
			c.Abort()
			return
		}

		// Parse Bearer token (case-insensitive)
		const bearerPrefix = "bearer "
		if len(authHeader) < len(bearerPrefix) ||
			!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			logger.Debug("authentication failed: malformed authorization header")
			httputil.HandleErrorGin(c, authDomain.ErrMissingToken, logger)
			c.Abort()
			return
		}

		token := authHeader[len(bearerPrefix):]
		if token == "" {
			logger.Debug("authentication failed: empty bearer token")
			httputil.HandleErrorGin(c, authDomain.ErrMissingToken, logger)
			c.Abort()
			return
		}

		identity, err := tokenService.Verify(token)
		if err != nil {
			logger.Debug("authentication failed",
				slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		// Store verified identity in context
		ctx := WithIdentity(c.Request.Context(), identity)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authentication successful",
			slog.String("user_id", identity.UserID.String()),
			slog.String("email", identity.Email))

		c.Next()
	}
}
