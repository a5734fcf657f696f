package handler

import "github.com/rentals/backend/internal/interfaces/http/dto"

// APIResponse represents a generic API response for OpenAPI documentation
// @Description Standard API response wrapper with typed data field
type APIResponse[T any] struct {
	Success bool           `json:"success"`
	Data    T              `json:"data,omitempty"`
	Error   *dto.ErrorInfo `json:"error,omitempty"`
	Meta    *dto.Meta      `json:"meta,omitempty"`
}

// ErrorResponse represents an error API response for OpenAPI documentation
// @Description Standard error response
type ErrorResponse struct {
	Success bool           `json:"success" example:"false"`
	Error   *dto.ErrorInfo `json:"error,omitempty"`
}

// LookupData carries the ID resolved from a natural key
// @Description Resolved record ID
type LookupData struct {
	ID int64 `json:"id" example:"42"`
}

// DeletedData reports how many rows a cascading delete removed
// @Description Cascading delete result
type DeletedData struct {
	ID      int64 `json:"id" example:"7"`
	Removed int64 `json:"removed" example:"3"`
}
