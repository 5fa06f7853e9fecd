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
	"golang.org/x/time/rate"
)

// loginRateLimiterStore holds per-IP rate limiters with automatic cleanup.
type loginRateLimiterStore struct {
	limiters sync.Map // map[string]*loginRateLimiterEntry (IP -> limiter)
	rps      float64
	burst    int
}

// loginRateLimiterEntry holds a rate limiter and last access time for cleanup.
type loginRateLimiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
	mu         sync.Mutex
}

// LoginRateLimitMiddleware enforces per-IP rate limiting on the credential
// endpoints (register and login).
//
// These endpoints are unauthenticated by nature, so limiting by IP is the only
// handle against credential stuffing and brute force attempts. Each IP address
// gets an independent token bucket via golang.org/x/time/rate.
//
// Uses c.ClientIP() which handles X-Forwarded-For, X-Real-IP, and the direct
// connection remote address.
//
// Configuration:
//   - rps: Requests per second allowed per IP address
//   - burst: Maximum burst capacity for temporary spikes
//
// Returns:
//   - 429 Too Many Requests: Rate limit exceeded (includes Retry-After header)
//   - Continues: Request allowed within rate limit
func LoginRateLimitMiddleware(rps float64, burst int, logger *slog.Logger) gin.HandlerFunc {
	store := &loginRateLimiterStore{
		rps:   rps,
		burst: burst,
	}

	// Start cleanup goroutine for stale limiters (every 5 minutes)
	go store.cleanupStale(context.Background(), 5*time.Minute)

	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		limiter := store.getLimiter(clientIP)

		if !limiter.Allow() {
			reservation := limiter.Reserve()
			retryAfter := int(reservation.Delay().Seconds())
			reservation.Cancel()

			logger.Debug("login rate limit exceeded",
				slog.String("client_ip", clientIP),
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

// getLimiter retrieves or creates a rate limiter for an IP address.
func (s *loginRateLimiterStore) getLimiter(ip string) *rate.Limiter {
	if val, ok := s.limiters.Load(ip); ok {
		entry := val.(*loginRateLimiterEntry)
		entry.mu.Lock()
		entry.lastAccess = time.Now()
		entry.mu.Unlock()
		return entry.limiter
	}

	limiter := rate.NewLimiter(rate.Limit(s.rps), s.burst)
	entry := &loginRateLimiterEntry{
		limiter:    limiter,
		lastAccess: time.Now(),
	}

	s.limiters.Store(ip, entry)
	return limiter
}

// cleanupStale removes rate limiters that haven't been accessed recently.
// Runs periodically to prevent unbounded memory growth from IP address churn.
func (s *loginRateLimiterStore) cleanupStale(ctx context.Context, interval time.Duration) {
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
				entry := value.(*loginRateLimiterEntry)
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
