package reservation

import (
	"time"

	"github.com/rentals/backend/internal/domain/reservation"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of reservation dates
const DateLayout = "2006-01-02"

// CreateReservationRequest represents a booking request.
// TotalPrice defaults to nights × the property's nightly price.
type CreateReservationRequest struct {
	ClientID   int64            `json:"client_id" binding:"required,min=1"`
	PropertyID int64            `json:"property_id" binding:"required,min=1"`
	StartDate  string           `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate    string           `json:"end_date" binding:"required,datetime=2006-01-02"`
	Guests     int              `json:"guests" binding:"required,min=1"`
	Status     string           `json:"status"`
	TotalPrice *decimal.Decimal `json:"total_price"`
}

// UpdateReservationRequest represents a request to edit a reservation.
// Omitted fields keep their current value.
type UpdateReservationRequest struct {
	ClientID           *int64           `json:"client_id" binding:"omitempty,min=1"`
	PropertyID         *int64           `json:"property_id" binding:"omitempty,min=1"`
	StartDate          *string          `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate            *string          `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Guests             *int             `json:"guests" binding:"omitempty,min=1"`
	Status             *string          `json:"status"`
	TotalPrice         *decimal.Decimal `json:"total_price"`
	CancellationReason *string          `json:"cancellation_reason"`
}

// CancelReservationRequest carries the optional cancellation reason
type CancelReservationRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

// ReservationResponse represents a reservation in API responses
type ReservationResponse struct {
	ID                 int64           `json:"id"`
	ClientID           int64           `json:"client_id"`
	PropertyID         int64           `json:"property_id"`
	StartDate          string          `json:"start_date"`
	EndDate            string          `json:"end_date"`
	Nights             int             `json:"nights"`
	Guests             int             `json:"guests"`
	Status             string          `json:"status"`
	TotalPrice         decimal.Decimal `json:"total_price"`
	CancellationReason *string         `json:"cancellation_reason,omitempty"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// ReservationListFilter represents filter options for the reservation list
type ReservationListFilter struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by" binding:"omitempty,oneof=id start_date end_date status total_price"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToReservationResponse converts a domain reservation to a response
func ToReservationResponse(r *reservation.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:                 r.ID,
		ClientID:           r.ClientID,
		PropertyID:         r.PropertyID,
		StartDate:          r.StartDate.Format(DateLayout),
		EndDate:            r.EndDate.Format(DateLayout),
		Nights:             r.Nights(),
		Guests:             r.Guests,
		Status:             string(r.Status),
		TotalPrice:         r.TotalPrice,
		CancellationReason: r.CancellationReason,
		UpdatedAt:          r.UpdatedAt,
	}
}

// ToReservationResponses converts a slice of domain reservations to responses
func ToReservationResponses(reservations []reservation.Reservation) []ReservationResponse {
	responses := make([]ReservationResponse, len(reservations))
	for i := range reservations {
		responses[i] = ToReservationResponse(&reservations[i])
	}
	return responses
}
