package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type memoryCache struct {
	mu       sync.Mutex
	counts   map[string]int64
	ttls     map[string]time.Duration
	failWith error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{
		counts: map[string]int64{},
		ttls:   map[string]time.Duration{},
	}
}

func (m *memoryCache) Increment(_ context.Context, key string) (int64, error) {
	if m.failWith != nil {
		return 0, m.failWith
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[key]++
	return m.counts[key], nil
}

func (m *memoryCache) Expire(_ context.Context, key string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ttls[key] = ttl
	return nil
}

func (m *memoryCache) TTL(_ context.Context, key string) (time.Duration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ttl, ok := m.ttls[key]
	if !ok {
		return -2 * time.Second, nil
	}
	return ttl, nil
}

func rateLimitedRouter(store *memoryCache, limit int) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(ClientIP(), RateLimit(store, limit, 30*time.Second))
	ok := func(c *gin.Context) { c.Status(http.StatusNoContent) }
	r.GET("/books", ok)
	r.POST("/books", ok)
	return r
}

func send(r *gin.Engine, method, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/books", nil)
	req.Header.Set("X-Forwarded-For", ip)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit_BlocksWritesOverLimit(t *testing.T) {
	store := newMemoryCache()
	r := rateLimitedRouter(store, 2)

	first := send(r, http.MethodPost, "10.0.0.1")
	assert.Equal(t, http.StatusNoContent, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusNoContent, send(r, http.MethodPost, "10.0.0.1").Code)

	blocked := send(r, http.MethodPost, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.Equal(t, "30", blocked.Header().Get("Retry-After"))
	assert.Contains(t, blocked.Body.String(), "RATE_LIMITED")

	assert.Equal(t, 30*time.Second, store.ttls[rateLimitKeyPrefix+"10.0.0.1"])
}

func TestRateLimit_CountsPerClient(t *testing.T) {
	r := rateLimitedRouter(newMemoryCache(), 1)

	assert.Equal(t, http.StatusNoContent, send(r, http.MethodPost, "10.0.0.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, send(r, http.MethodPost, "10.0.0.1").Code)
	assert.Equal(t, http.StatusNoContent, send(r, http.MethodPost, "10.0.0.2").Code)
}

func TestRateLimit_ReadsAreNotCounted(t *testing.T) {
	store := newMemoryCache()
	r := rateLimitedRouter(store, 1)

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusNoContent, send(r, http.MethodGet, "10.0.0.1").Code)
	}
	assert.Empty(t, store.counts)
}

func TestRateLimit_FailsOpen(t *testing.T) {
	store := newMemoryCache()
	store.failWith = errors.New("connection refused")
	r := rateLimitedRouter(store, 1)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusNoContent, send(r, http.MethodPost, "10.0.0.1").Code)
	}
}

func TestRateLimit_NilStoreDisablesLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RateLimit(nil, 1, time.Minute))
	r.POST("/books", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/books", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
	}
}
