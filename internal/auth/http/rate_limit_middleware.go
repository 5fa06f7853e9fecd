// Package http provides HTTP middleware and utilities for authentication.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	apperrors "github.com/poketrade/pokecards/internal/errors"
	"github.com/poketrade/pokecards/internal/httputil"
)

// rateLimiterStore holds per-user rate limiters with automatic cleanup.
type rateLimiterStore struct {
	limiters sync.Map // map[uuid.UUID]*rateLimiterEntry
	rps      float64
	burst    int
}

// rateLimiterEntry holds a rate limiter and last access time for cleanup.
type rateLimiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
	mu         sync.Mutex
}

// RateLimitMiddleware enforces per-user rate limiting on authenticated requests.
//
// MUST be used after AuthenticationMiddleware (requires a verified identity in
// context). Uses a token bucket per user ID via golang.org/x/time/rate, so one
// noisy user cannot starve the others.
//
// Configuration:
//   - rps: Requests per second allowed per user
//   - burst: Maximum burst capacity for temporary spikes
//
// Returns:
//   - 429 Too Many Requests: Rate limit exceeded (includes Retry-After header)
//   - Continues: Request allowed within rate limit
func RateLimitMiddleware(rps float64, burst int, logger *slog.Logger) gin.HandlerFunc {
	store := &rateLimiterStore{
		rps:   rps,
		burst: burst,
	}

	// Start cleanup goroutine for stale limiters (every 5 minutes)
	go store.cleanupStale(context.Background(), 5*time.Minute)

	return func(c *gin.Context) {
		identity, ok := GetIdentity(c.Request.Context())
		if !ok || identity == nil {
			// Should never happen, authentication middleware runs first
			logger.Error("rate limit middleware: no verified identity in context")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		limiter := store.getLimiter(identity.UserID)

		if !limiter.Allow() {
			reservation := limiter.Reserve()
			retryAfter := int(reservation.Delay().Seconds())
			reservation.Cancel()

			logger.Debug("rate limit exceeded",
				slog.String("user_id", identity.UserID.String()),
				slog.Int("retry_after", retryAfter))

			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"message": "Trop de requêtes. Veuillez réessayer plus tard.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// getLimiter retrieves or creates a rate limiter for a user.
func (s *rateLimiterStore) getLimiter(userID uuid.UUID) *rate.Limiter {
	if val, ok := s.limiters.Load(userID); ok {
		entry := val.(*rateLimiterEntry)
		entry.mu.Lock()
		entry.lastAccess = time.Now()
		entry.mu.Unlock()
		return entry.limiter
	}

	limiter := rate.NewLimiter(rate.Limit(s.rps), s.burst)
	entry := &rateLimiterEntry{
		limiter:    limiter,
		lastAccess: time.Now(),
	}

	s.limiters.Store(userID, entry)
	return limiter
}

// cleanupStale removes rate limiters that haven't been accessed recently.
// Runs periodically to prevent unbounded memory growth.
func (s *rateLimiterStore) cleanupStale(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Remove limiters not accessed in last hour
			threshold := time.Now().Add(-1 * time.Hour)
			s.limiters.Range(func(key, value interface{}) bool {
				entry := value.(*rateLimiterEntry)
				entry.mu.Lock()
				shouldDelete := entry.lastAccess.Before(threshold)
				entry.mu.Unlock()

				if shouldDelete {
					s.limiters.Delete(key)
				}
				return true
			})
		}
	}
}
