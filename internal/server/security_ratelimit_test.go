package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/br0k3x/osul-bot/internal/testing/leaktest"
)

func TestRateLimiter_BlocksAfterBurst(t *testing.T) {
	limiter := NewRateLimiter(3, nil, time.Minute)
	defer limiter.Stop()
	handler := limiter.Middleware(okHandler)

	req := httptest.NewRequest(http.MethodPost, "/api/oauth/osu/callback", nil)
	req.RemoteAddr = "192.168.1.100:1234"

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "20", rec.Header().Get(HeaderRetryAfter))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrMsgTooManyRequests, body["error"])
}

func TestRateLimiter_SeparateBudgetPerIP(t *testing.T) {
	limiter := NewRateLimiter(1, nil, time.Minute)
	defer limiter.Stop()
	handler := limiter.Middleware(okHandler)

	for _, addr := range []string{"10.0.0.1:1", "10.0.0.2:1", "10.0.0.3:1"} {
		req := httptest.NewRequest(http.MethodGet, "/api", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, addr)
	}

	assert.Equal(t, 3, limiter.Size())
}

func TestRateLimiter_EvictsIdleEntries(t *testing.T) {
	limiter := NewRateLimiter(10, nil, time.Minute)
	defer limiter.Stop()

	limiter.limiterFor("10.0.0.1")
	limiter.limiterFor("10.0.0.2")
	limiter.mu.Lock()
	limiter.limiters["10.0.0.1"].lastAccess = time.Now().Add(-3 * time.Minute)
	limiter.mu.Unlock()

	limiter.evictIdle(time.Now())

	assert.Equal(t, 1, limiter.Size())
}

func TestRateLimiter_StopEndsCleanupGoroutine(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		limiter := NewRateLimiter(10, nil, time.Millisecond)
		time.Sleep(5 * time.Millisecond)
		limiter.Stop()
		limiter.Stop()
	})
}
