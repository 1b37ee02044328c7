package middleware

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/PawleN-D/africompliance-api/internal/config"
)

// RateLimiter tracks request timestamps per client IP over a sliding
// one-hour window.
type RateLimiter struct {
	mu       sync.Mutex
	requests map[string][]time.Time
	limit    int
	window   time.Duration
	now      func() time.Time
}

func NewRateLimiter(requestsPerHour int) *RateLimiter {
	return &RateLimiter{
		requests: make(map[string][]time.Time),
		limit:    requestsPerHour,
		window:   time.Hour,
		now:      time.Now,
	}
}

// Allow records a request for the client and reports whether it is within
// the limit. Timestamps older than the window are dropped on each call.
func (rl *RateLimiter) Allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	cutoff := now.Add(-rl.window)

	recent := rl.requests[clientIP][:0]
	for _, ts := range rl.requests[clientIP] {
		if ts.After(cutoff) {
			recent = append(recent, ts)
		}
	}

	if len(recent) >= rl.limit {
		rl.requests[clientIP] = recent
		return false
	}

	rl.requests[clientIP] = append(recent, now)
	return true
}

// RateLimit returns middleware enforcing the configured per-IP hourly limit.
// When disabled it passes requests through untouched.
func RateLimit(cfg *config.RateLimitConfig) func(http.Handler) http.Handler {
	if !cfg.Enabled {
		return func(next http.Handler) http.Handler { return next }
	}

	limiter := NewRateLimiter(cfg.RequestsPerHour)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientIP := clientAddr(r)

			if !limiter.Allow(clientIP) {
				slog.Warn("rate limit exceeded", "client_ip", clientIP)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(map[string]any{
					"error":   "Rate limit exceeded",
					"message": fmt.Sprintf("Maximum %d requests per hour allowed", cfg.RequestsPerHour),
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
