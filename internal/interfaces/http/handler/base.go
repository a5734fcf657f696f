package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rentals/backend/internal/domain/shared"
	"github.com/rentals/backend/internal/infrastructure/logger"
	"github.com/rentals/backend/internal/interfaces/http/dto"
	"github.com/rentals/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getRequestID returns the ID assigned by the RequestID middleware
func getRequestID(c *gin.Context) string {
	return middleware.GetRequestID(c)
}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessWithMeta sends a success response with pagination meta
func (h *BaseHandler) SuccessWithMeta(c *gin.Context, data any, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(data, total, page, pageSize))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response with the given status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, getRequestID(c)))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// HandleDomainError converts a service error to its HTTP response.
// Storage and unexpected errors are logged with their cause, which the
// client never sees.
func (h *BaseHandler) HandleDomainError(c *gin.Context, err error) {
	code, message, status := dto.ErrorStatus(err)
	if status >= http.StatusInternalServerError {
		logger.L(c.Request.Context()).Error("Request failed",
			zap.String("path", c.FullPath()),
			zap.String("error_code", code),
			zap.Error(err),
		)
	}
	h.Error(c, status, code, message)
}

// bindID reads the numeric :id path parameter. It answers 400 and returns
// false when the parameter is not a positive integer.
func (h *BaseHandler) bindID(c *gin.Context) (int64, bool) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeValidationFormat, "id must be a positive integer")
		return 0, false
	}
	return req.ID, true
}

// bindJSON binds the request body and answers 400 with field details on failure
func (h *BaseHandler) bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		middleware.HandleValidationError(c, err)
		return false
	}
	return true
}

// bindQuery binds query parameters and answers 400 with field details on failure
func (h *BaseHandler) bindQuery(c *gin.Context, obj any) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		middleware.HandleValidationError(c, err)
		return false
	}
	return true
}

// requiredQuery returns the trimmed query parameter or answers 400
func (h *BaseHandler) requiredQuery(c *gin.Context, name string) (string, bool) {
	value := strings.TrimSpace(c.Query(name))
	if value == "" {
		h.HandleDomainError(c, shared.NewValidationError(shared.ErrInvalidInput.Code, name+" query parameter is required"))
		return "", false
	}
	return value, true
}

// pageOf returns the effective page and size for the pagination meta
func pageOf(page, pageSize int) (int, int) {
	defaults := shared.DefaultFilter()
	if page < 1 {
		page = defaults.Page
	}
	if pageSize < 1 {
		pageSize = defaults.PageSize
	}
	return page, pageSize
}
