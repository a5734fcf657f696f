package handler

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rentals/backend/internal/infrastructure/logger"
	"github.com/rentals/backend/internal/infrastructure/persistence"
	"github.com/rentals/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// healthTimeout bounds the database ping of a health check
const healthTimeout = 2 * time.Second

// DatabaseProbe reports on the connection pool behind the API
type DatabaseProbe interface {
	Ping(ctx context.Context) error
	Stats() (persistence.PoolStats, error)
}

// SystemHandler handles health and system information endpoints
type SystemHandler struct {
	BaseHandler
	name      string
	version   string
	db        DatabaseProbe
	startTime time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(name, version string, db DatabaseProbe) *SystemHandler {
	return &SystemHandler{
		name:      name,
		version:   version,
		db:        db,
		startTime: time.Now(),
	}
}

// SystemInfoResponse represents the system information response
// @name HandlerSystemInfoResponse
type SystemInfoResponse struct {
	Name      string `json:"name" example:"rentals-backend"`
	Version   string `json:"version" example:"1.0.0"`
	GoVersion string `json:"go_version" example:"go1.25.5"`
	Uptime    string `json:"uptime" example:"1h30m45s"`
	// Pool is omitted when the pool cannot be inspected
	Pool *PoolInfo `json:"pool,omitempty"`
}

// PoolInfo represents the database connection pool state
// @name HandlerPoolInfo
type PoolInfo struct {
	MaxOpen   int    `json:"max_open" example:"10"`
	Open      int    `json:"open" example:"3"`
	InUse     int    `json:"in_use" example:"1"`
	Idle      int    `json:"idle" example:"2"`
	WaitCount int64  `json:"wait_count" example:"0"`
	WaitTime  string `json:"wait_time" example:"0s"`
}

// HealthResponse represents the health check response
// @name HandlerHealthResponse
type HealthResponse struct {
	Status   string `json:"status" example:"healthy"`
	Time     string `json:"time" example:"2026-07-01T12:00:00Z"`
	Database string `json:"database" example:"ok"`
}

// PingResponse represents the ping response
// @name HandlerPingResponse
type PingResponse struct {
	Message   string `json:"message" example:"pong"`
	Timestamp string `json:"timestamp" example:"2026-07-01T12:00:00Z"`
}

// Health godoc
// @ID           getHealth
//
//	@Summary		Health check
//	@Description	Reports whether the database answers. Served outside the versioned API.
//	@Tags			system
//	@Produce		json
//	@Success		200	{object}	HealthResponse
//	@Failure		503	{object}	HealthResponse
//	@Router			/health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	now := time.Now().Format(time.RFC3339)
	if err := h.db.Ping(ctx); err != nil {
		logger.L(c.Request.Context()).Warn("Health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unhealthy", Time: now, Database: "error"})
		return
	}
	c.JSON(http.StatusOK, HealthResponse{Status: "healthy", Time: now, Database: "ok"})
}

// GetSystemInfo godoc
// @ID           getSystemInfo
//
//	@Summary		Get system information
//	@Description	Returns the service name, version, uptime and connection pool state
//	@Tags			system
//	@Produce		json
//	@Success		200	{object}	APIResponse[SystemInfoResponse]
//	@Router			/system/info [get]
func (h *SystemHandler) GetSystemInfo(c *gin.Context) {
	info := SystemInfoResponse{
		Name:      h.name,
		Version:   h.version,
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	}
	if stats, err := h.db.Stats(); err != nil {
		logger.L(c.Request.Context()).Warn("Connection pool stats unavailable", zap.Error(err))
	} else {
		info.Pool = &PoolInfo{
			MaxOpen:   stats.MaxOpen,
			Open:      stats.Open,
			InUse:     stats.InUse,
			Idle:      stats.Idle,
			WaitCount: stats.WaitCount,
			WaitTime:  stats.WaitDuration.String(),
		}
	}
	h.Success(c, info)
}

// Ping godoc
// @ID           pingSystem
//
//	@Summary		Ping the API
//	@Tags			system
//	@Produce		json
//	@Success		200	{object}	APIResponse[PingResponse]
//	@Router			/ping [get]
func (h *SystemHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(PingResponse{
		Message:   "pong",
		Timestamp: time.Now().Format(time.RFC3339),
	}))
}
