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

	authDomain "github.com/allisson/moviecatalog/internal/auth/domain"
	"github.com/allisson/moviecatalog/internal/httputil"
)

const (
	limiterCleanupInterval = 5 * time.Minute
	limiterIdleTimeout     = time.Hour
)

// rateLimiterStore holds keyed token-bucket limiters with periodic cleanup.
type rateLimiterStore struct {
	limiters sync.Map // map[string]*rateLimiterEntry
	rps      float64
	burst    int
}

// rateLimiterEntry holds a rate limiter and last access time for cleanup.
type rateLimiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
	mu         sync.Mutex
}

// newRateLimiterStore creates a store and starts its cleanup loop, which
// stops when ctx is cancelled.
func newRateLimiterStore(ctx context.Context, rps float64, burst int) *rateLimiterStore {
	store := &rateLimiterStore{rps: rps, burst: burst}
	go store.cleanupStale(ctx, limiterCleanupInterval)
	return store
}

// allow consumes one token for key. When the bucket is empty it returns the
// whole seconds until the next token.
func (s *rateLimiterStore) allow(key string) (bool, int) {
	limiter := s.getLimiter(key)
	if limiter.Allow() {
		return true, 0
	}

	reservation := limiter.Reserve()
	retryAfter := int(reservation.Delay().Seconds())
	reservation.Cancel()
	if retryAfter < 1 {
		retryAfter = 1
	}
	return false, retryAfter
}

// getLimiter retrieves or creates the rate limiter for key.
func (s *rateLimiterStore) getLimiter(key string) *rate.Limiter {
	now := time.Now()
	entry := &rateLimiterEntry{
		limiter:    rate.NewLimiter(rate.Limit(s.rps), s.burst),
		lastAccess: now,
	}

	val, loaded := s.limiters.LoadOrStore(key, entry)
	if loaded {
		entry = val.(*rateLimiterEntry)
		entry.mu.Lock()
		entry.lastAccess = now
		entry.mu.Unlock()
	}
	return entry.limiter
}

// cleanupStale removes limiters idle for longer than limiterIdleTimeout.
func (s *rateLimiterStore) cleanupStale(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.evictIdle(time.Now().Add(-limiterIdleTimeout))
		}
	}
}

func (s *rateLimiterStore) evictIdle(threshold time.Time) {
	s.limiters.Range(func(key, value any) bool {
		entry := value.(*rateLimiterEntry)
		entry.mu.Lock()
		idle := entry.lastAccess.Before(threshold)
		entry.mu.Unlock()

		if idle {
			s.limiters.Delete(key)
		}
		return true
	})
}

func tooManyRequests(c *gin.Context, retryAfter int, message string) {
	c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
	c.JSON(http.StatusTooManyRequests, httputil.ErrorResponse{
		Error:   "rate_limit_exceeded",
		Message: message,
	})
	c.Abort()
}

// TokenRateLimitMiddleware enforces per-IP rate limiting on the /auth endpoints
// to slow down credential stuffing. c.ClientIP() honours X-Forwarded-For and
// X-Real-IP from trusted proxies.
//
// Returns:
//   - 429 Too Many Requests: Rate limit exceeded (includes Retry-After header)
//   - Continues: Request allowed within rate limit
func TokenRateLimitMiddleware(ctx context.Context, rps float64, burst int, logger *slog.Logger) gin.HandlerFunc {
	store := newRateLimiterStore(ctx, rps, burst)

	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		if ok, retryAfter := store.allow(clientIP); !ok {
			logger.Debug("token rate limit exceeded",
				slog.String("client_ip", clientIP),
				slog.Int("retry_after", retryAfter))
			tooManyRequests(c, retryAfter, "Too many authentication requests from this IP")
			return
		}

		c.Next()
	}
}

// RateLimitMiddleware enforces per-user rate limiting on authenticated requests.
// MUST be used after AuthenticationMiddleware; limiters are keyed by username.
//
// Returns:
//   - 401 Unauthorized: No claims in context
//   - 429 Too Many Requests: Rate limit exceeded (includes Retry-After header)
func RateLimitMiddleware(ctx context.Context, rps float64, burst int, logger *slog.Logger) gin.HandlerFunc {
	store := newRateLimiterStore(ctx, rps, burst)

	return func(c *gin.Context) {
		claims, ok := GetClaims(c.Request.Context())
		if !ok {
			logger.Error("rate limit middleware: no claims in context")
			httputil.HandleErrorGin(c, authDomain.ErrTokenMissing, logger)
			c.Abort()
			return
		}

		if ok, retryAfter := store.allow(claims.Username); !ok {
			logger.Debug("rate limit exceeded",
				slog.String("username", claims.Username),
				slog.Int("retry_after", retryAfter))
			tooManyRequests(c, retryAfter, "Too many requests")
			return
		}

		c.Next()
	}
}
