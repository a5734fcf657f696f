package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rentals/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
)

// fakeClock lets tests move a limiter's window forward
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestLimiter(t *testing.T, limit int, w time.Duration) (*RateLimiter, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	limiter := NewRateLimiter(limit, w)
	limiter.now = clock.Now
	t.Cleanup(limiter.Stop)
	return limiter, clock
}

func TestRateLimiter(t *testing.T) {
	t.Run("allows requests within limit", func(t *testing.T) {
		limiter, _ := newTestLimiter(t, 5, time.Minute)

		for i := 0; i < 5; i++ {
			assert.True(t, limiter.Allow("client1"), "request %d should be allowed", i+1)
		}
		assert.False(t, limiter.Allow("client1"))
	})

	t.Run("separate limits per client", func(t *testing.T) {
		limiter, _ := newTestLimiter(t, 2, time.Minute)

		assert.True(t, limiter.Allow("clientA"))
		assert.True(t, limiter.Allow("clientA"))
		assert.False(t, limiter.Allow("clientA"))

		assert.True(t, limiter.Allow("clientB"))
	})

	t.Run("resets after window", func(t *testing.T) {
		limiter, clock := newTestLimiter(t, 1, time.Minute)

		assert.True(t, limiter.Allow("client3"))
		assert.False(t, limiter.Allow("client3"))

		clock.Advance(time.Minute)
		assert.True(t, limiter.Allow("client3"))
	})

	t.Run("remaining and retry after", func(t *testing.T) {
		limiter, clock := newTestLimiter(t, 3, time.Minute)

		assert.Equal(t, 3, limiter.Remaining("client4"))
		limiter.Allow("client4")
		assert.Equal(t, 2, limiter.Remaining("client4"))

		clock.Advance(20 * time.Second)
		assert.Equal(t, 40, limiter.retryAfter("client4"))
		assert.Equal(t, 0, limiter.retryAfter("unknown"))
	})

	t.Run("concurrent access stays within limit", func(t *testing.T) {
		limiter, _ := newTestLimiter(t, 50, time.Minute)

		var wg sync.WaitGroup
		var mu sync.Mutex
		allowed := 0
		for i := 0; i < 100; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if limiter.Allow("shared") {
					mu.Lock()
					allowed++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 50, allowed)
	})

	t.Run("stop is idempotent", func(t *testing.T) {
		limiter := NewRateLimiter(1, time.Minute)
		limiter.Stop()
		assert.NotPanics(t, limiter.Stop)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	limiter, clock := newTestLimiter(t, 2, time.Minute)

	router := gin.New()
	router.Use(RateLimit(limiter))
	router.GET("/reservations", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/reservations", nil)
		req.RemoteAddr = "192.0.2.10:5000"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	w := do()
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusOK, do().Code)

	clock.Advance(15 * time.Second)
	w = do()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "45", w.Header().Get("Retry-After"))
	assert.Equal(t, dto.ErrCodeRateLimited, decodeError(t, w).Code)
}

func TestRateLimitByKey(t *testing.T) {
	limiter, _ := newTestLimiter(t, 1, time.Minute)

	router := gin.New()
	router.Use(RateLimitByKey(limiter, func(c *gin.Context) string { return c.GetHeader("X-Client") }))
	router.GET("/payments", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	do := func(client string) int {
		req := httptest.NewRequest(http.MethodGet, "/payments", nil)
		req.Header.Set("X-Client", client)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, do("a"))
	assert.Equal(t, http.StatusTooManyRequests, do("a"))
	assert.Equal(t, http.StatusOK, do("b"))
}
