package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/PawleN-D/africompliance-api/internal/config"
)

func TestRateLimiterAllowsWithinLimit(t *testing.T) {
	rl := NewRateLimiter(3)

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))

	// Other clients are tracked independently.
	assert.True(t, rl.Allow("10.0.0.2"))
}

func TestRateLimiterSlidingWindow(t *testing.T) {
	rl := NewRateLimiter(1)
	base := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	now := base
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))

	now = base.Add(61 * time.Minute)
	assert.True(t, rl.Allow("10.0.0.1"))
}

func TestRateLimitMiddlewareRejects(t *testing.T) {
	cfg := &config.RateLimitConfig{Enabled: true, RequestsPerHour: 1}
	handler := RateLimit(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "10.0.0.1:51234"

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"error": "Rate limit exceeded", "message": "Maximum 1 requests per hour allowed"}`, rec.Body.String())
}

func TestRateLimitDisabledPassesThrough(t *testing.T) {
	cfg := &config.RateLimitConfig{Enabled: false, RequestsPerHour: 1}
	handler := RateLimit(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "10.0.0.1:51234"

	for range 5 {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}
