package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rentals/backend/internal/infrastructure/logger"
	"github.com/rentals/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// memoryStore is a minimal IdempotencyStore for middleware tests
type memoryStore struct {
	mu      sync.Mutex
	keys    map[string]time.Duration
	failErr error
	forgot  []string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{keys: map[string]time.Duration{}}
}

func (s *memoryStore) MarkProcessed(_ context.Context, key string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failErr != nil {
		return false, s.failErr
	}
	if _, ok := s.keys[key]; ok {
		return false, nil
	}
	s.keys[key] = ttl
	return true, nil
}

func (s *memoryStore) IsProcessed(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.keys[key]
	return ok, nil
}

func (s *memoryStore) Forget(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.keys, key)
	s.forgot = append(s.forgot, key)
	return nil
}

func (s *memoryStore) Close() error { return nil }

func idempotencyRouter(store *memoryStore, status *int, log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(RequestID())
	router.POST("/payments", Idempotency(IdempotencyConfig{Store: store, TTL: time.Hour, Logger: log}), func(c *gin.Context) {
		c.String(*status, logger.GetIdempotencyKey(c.Request.Context()))
	})
	return router
}

func postPayment(router *gin.Engine, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(`{}`))
	if key != "" {
		req.Header.Set(IdempotencyKeyHeader, key)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIdempotency_WithoutHeaderPassesThrough(t *testing.T) {
	store := newMemoryStore()
	status := http.StatusCreated
	router := idempotencyRouter(store, &status, nil)

	assert.Equal(t, http.StatusCreated, postPayment(router, "").Code)
	assert.Equal(t, http.StatusCreated, postPayment(router, "").Code)
	assert.Empty(t, store.keys)
}

func TestIdempotency_RejectsRepeatedKey(t *testing.T) {
	store := newMemoryStore()
	status := http.StatusCreated
	router := idempotencyRouter(store, &status, nil)
	key := uuid.NewString()

	w := postPayment(router, key)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, key, w.Body.String(), "key is stored in the request context")
	assert.Equal(t, time.Hour, store.keys[key])

	w = postPayment(router, key)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, dto.ErrCodeDuplicateRequest, decodeError(t, w).Code)
}

func TestIdempotency_NormalizesKey(t *testing.T) {
	store := newMemoryStore()
	status := http.StatusCreated
	router := idempotencyRouter(store, &status, nil)
	key := uuid.NewString()

	assert.Equal(t, http.StatusCreated, postPayment(router, strings.ToUpper(key)).Code)
	assert.Equal(t, http.StatusConflict, postPayment(router, key).Code)
}

func TestIdempotency_RejectsNonUUIDKey(t *testing.T) {
	store := newMemoryStore()
	status := http.StatusCreated
	router := idempotencyRouter(store, &status, nil)

	w := postPayment(router, "payment-1")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrCodeValidationFormat, decodeError(t, w).Code)
	assert.Empty(t, store.keys)
}

func TestIdempotency_FailedRequestReleasesKey(t *testing.T) {
	store := newMemoryStore()
	status := http.StatusUnprocessableEntity
	router := idempotencyRouter(store, &status, nil)
	key := uuid.NewString()

	assert.Equal(t, http.StatusUnprocessableEntity, postPayment(router, key).Code)
	assert.Equal(t, []string{key}, store.forgot)

	status = http.StatusCreated
	assert.Equal(t, http.StatusCreated, postPayment(router, key).Code, "key can be reused after a failure")
}

func TestIdempotency_StoreOutageFailsOpen(t *testing.T) {
	store := newMemoryStore()
	store.failErr = errors.New("redis down")
	core, logs := observer.New(zapcore.WarnLevel)
	status := http.StatusCreated
	router := idempotencyRouter(store, &status, zap.New(core))

	key := uuid.NewString()
	assert.Equal(t, http.StatusCreated, postPayment(router, key).Code)
	assert.Equal(t, http.StatusCreated, postPayment(router, key).Code)

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "Idempotency store unavailable, key not enforced", logs.All()[0].Message)
}
