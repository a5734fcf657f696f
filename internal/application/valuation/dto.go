package valuation

import (
	"time"

	"github.com/rentals/backend/internal/domain/valuation"
)

// CreateValuationRequest represents a guest review of a reservation
type CreateValuationRequest struct {
	ReservationID int64      `json:"reservation_id" binding:"required,min=1"`
	Score         int        `json:"score" binding:"required,min=1,max=5"`
	Comment       string     `json:"comment" binding:"max=500"`
	Anonymous     bool       `json:"anonymous"`
	ValuedAt      *time.Time `json:"valued_at"`
}

// UpdateValuationRequest represents a request to edit a valuation.
// Omitted fields keep their current value.
type UpdateValuationRequest struct {
	ReservationID *int64  `json:"reservation_id" binding:"omitempty,min=1"`
	Score         *int    `json:"score" binding:"omitempty,min=1,max=5"`
	Comment       *string `json:"comment" binding:"omitempty,max=500"`
	Anonymous     *bool   `json:"anonymous"`
}

// ValuationResponse represents a valuation in API responses
type ValuationResponse struct {
	ID            int64     `json:"id"`
	ReservationID int64     `json:"reservation_id"`
	Score         int       `json:"score"`
	Comment       string    `json:"comment"`
	Anonymous     bool      `json:"anonymous"`
	ValuedAt      time.Time `json:"valued_at"`
}

// ValuationListFilter represents filter options for the valuation list
type ValuationListFilter struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by" binding:"omitempty,oneof=id score valued_at"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToValuationResponse converts a domain valuation to a response
func ToValuationResponse(v *valuation.Valuation) ValuationResponse {
	return ValuationResponse{
		ID:            v.ID,
		ReservationID: v.ReservationID,
		Score:         v.Score,
		Comment:       v.Comment,
		Anonymous:     v.Anonymous,
		ValuedAt:      v.ValuedAt,
	}
}

// ToValuationResponses converts a slice of domain valuations to responses
func ToValuationResponses(valuations []valuation.Valuation) []ValuationResponse {
	responses := make([]ValuationResponse, len(valuations))
	for i := range valuations {
		responses[i] = ToValuationResponse(&valuations[i])
	}
	return responses
}
