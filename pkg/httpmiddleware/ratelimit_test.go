package httpmiddleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func limitedHandler(t *testing.T, max int) http.Handler {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	return RateLimit(ctx, RateLimitConfig{Max: max, Window: time.Minute})(okHandler())
}

func hit(handler http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestRateLimit_UnderLimit(t *testing.T) {
	handler := limitedHandler(t, 5)

	for i := range 5 {
		w := hit(handler, "192.168.1.1:12345")
		assert.Equal(t, http.StatusOK, w.Code, "request %d should pass", i+1)
		assert.Equal(t, "5", w.Header().Get("X-RateLimit-Limit"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
	}
}

func TestRateLimit_OverLimit(t *testing.T) {
	handler := limitedHandler(t, 2)

	hit(handler, "192.168.1.1:12345")
	hit(handler, "192.168.1.1:12345")
	w := hit(handler, "192.168.1.1:12345")

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"code":429,"message":"rate limit exceeded"}`, w.Body.String())
}

func TestRateLimit_KeysAreIndependent(t *testing.T) {
	handler := limitedHandler(t, 1)

	require.Equal(t, http.StatusOK, hit(handler, "10.0.0.1:1000").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(handler, "10.0.0.1:1000").Code)
	assert.Equal(t, http.StatusOK, hit(handler, "10.0.0.2:1000").Code, "other clients keep their own window")
}

func TestRateLimit_XForwardedForWins(t *testing.T) {
	handler := limitedHandler(t, 1)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1000"
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// Same forwarded client from a different hop is still rate limited.
	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.RemoteAddr = "10.0.0.99:2000"
	req2.Header.Set("X-Forwarded-For", "203.0.113.7")
	w2 := httptest.NewRecorder()
	handler.ServeHTTP(w2, req2)
	assert.Equal(t, http.StatusTooManyRequests, w2.Code)
}

func TestRateLimiter_WindowRotation(t *testing.T) {
	rl := &rateLimiter{
		cfg:     RateLimitConfig{Max: 1, Window: time.Minute},
		windows: make(map[string]*window),
	}
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	_, _, ok := rl.allow("k", base)
	require.True(t, ok)
	_, _, ok = rl.allow("k", base.Add(time.Second))
	require.False(t, ok)

	// A fresh window admits the client again.
	_, _, ok = rl.allow("k", base.Add(time.Minute))
	assert.True(t, ok)
}

func TestRateLimiter_Cleanup(t *testing.T) {
	rl := &rateLimiter{
		cfg:     RateLimitConfig{Max: 1, Window: time.Minute},
		windows: make(map[string]*window),
	}
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	rl.allow("stale", base)
	rl.allow("fresh", base.Add(90*time.Second))
	rl.cleanup(base.Add(2 * time.Minute))

	assert.NotContains(t, rl.windows, "stale")
	assert.Contains(t, rl.windows, "fresh")
}
