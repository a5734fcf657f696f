package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rentals/backend/internal/domain/shared"
	"github.com/rentals/backend/internal/infrastructure/logger"
	"github.com/rentals/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// IdempotencyKeyHeader is the request header carrying the client key
const IdempotencyKeyHeader = "Idempotency-Key"

// IdempotencyConfig configures the Idempotency middleware
type IdempotencyConfig struct {
	Store  shared.IdempotencyStore
	TTL    time.Duration
	Logger *zap.Logger
}

// Idempotency rejects a repeated Idempotency-Key with 409 while the first
// use is remembered. Requests without the header pass through. A key whose
// request failed is released so the client can retry with it.
//
// A store outage does not block requests; the key is then not enforced.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.TTL <= 0 {
		cfg.TTL = shared.DefaultIdempotencyConfig().TTL
	}

	return func(c *gin.Context) {
		raw := c.GetHeader(IdempotencyKeyHeader)
		if raw == "" {
			c.Next()
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			abortWithError(c, dto.ErrCodeValidationFormat, "Idempotency-Key must be a UUID")
			return
		}
		key := id.String()

		ctx := logger.WithIdempotencyKey(c.Request.Context(), key)
		c.Request = c.Request.WithContext(ctx)
		log := logger.WithLogger(ctx, cfg.Logger)

		fresh, err := cfg.Store.MarkProcessed(ctx, key, cfg.TTL)
		if err != nil {
			log.Warn("Idempotency store unavailable, key not enforced", zap.Error(err))
			c.Next()
			return
		}
		if !fresh {
			log.Info("Duplicate request rejected")
			abortWithError(c, dto.ErrCodeDuplicateRequest, "A request with this Idempotency-Key was already processed")
			return
		}

		c.Next()

		if c.Writer.Status() >= http.StatusBadRequest {
			// The request context may already be cancelled by a client abort
			forgetCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
			defer cancel()
			if err := cfg.Store.Forget(forgetCtx, key); err != nil {
				log.Warn("Failed to release idempotency key", zap.Error(err))
			}
		}
	}
}
