package payment

import (
	"time"

	"github.com/rentals/backend/internal/domain/payment"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest represents a request to record a payment.
// Amount accepts a comma or a dot as decimal separator and defaults to the
// reservation's total price when empty.
type CreatePaymentRequest struct {
	ReservationID int64      `json:"reservation_id" binding:"required,min=1"`
	Amount        string     `json:"amount" binding:"max=32"`
	Method        string     `json:"method" binding:"required"`
	Status        string     `json:"status" binding:"required"`
	PaidAt        *time.Time `json:"paid_at"`
}

// UpdatePaymentRequest represents a request to change a payment.
// Only the method and the status can change after creation.
type UpdatePaymentRequest struct {
	Method string `json:"method" binding:"required"`
	Status string `json:"status" binding:"required"`
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID            int64           `json:"id"`
	ReservationID int64           `json:"reservation_id"`
	PaidAt        time.Time       `json:"paid_at"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	Status        string          `json:"status"`
	Reference     string          `json:"reference"`
}

// HistoryRecordResponse represents an audit entry in API responses
type HistoryRecordResponse struct {
	ID             int64            `json:"id"`
	PaymentID      int64            `json:"payment_id"`
	Action         string           `json:"action"`
	PreviousStatus *string          `json:"previous_status"`
	NewStatus      *string          `json:"new_status"`
	PreviousAmount *decimal.Decimal `json:"previous_amount"`
	NewAmount      *decimal.Decimal `json:"new_amount"`
	RecordedAt     time.Time        `json:"recorded_at"`
}

// ReservationAmountResponse carries the amount due for a reservation.
// Amount is the reservation's total price; Paid sums completed payments.
type ReservationAmountResponse struct {
	ReservationID int64           `json:"reservation_id"`
	Amount        decimal.Decimal `json:"amount"`
	Paid          decimal.Decimal `json:"paid"`
	Outstanding   decimal.Decimal `json:"outstanding"`
}

// NextReferenceResponse carries the reference the next payment would get
type NextReferenceResponse struct {
	Reference string `json:"reference"`
}

// PaymentListFilter represents filter options for the payment list
type PaymentListFilter struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by" binding:"omitempty,oneof=id paid_at amount status reference"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToPaymentResponse converts a domain payment to a response
func ToPaymentResponse(p *payment.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		ReservationID: p.ReservationID,
		PaidAt:        p.PaidAt,
		Amount:        p.Amount,
		Method:        string(p.Method),
		Status:        string(p.Status),
		Reference:     p.Reference,
	}
}

// ToPaymentResponses converts a slice of domain payments to responses
func ToPaymentResponses(payments []payment.Payment) []PaymentResponse {
	responses := make([]PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = ToPaymentResponse(&payments[i])
	}
	return responses
}

// ToHistoryRecordResponses converts audit entries to responses
func ToHistoryRecordResponses(records []payment.HistoryRecord) []HistoryRecordResponse {
	responses := make([]HistoryRecordResponse, len(records))
	for i, r := range records {
		responses[i] = HistoryRecordResponse{
			ID:             r.ID,
			PaymentID:      r.PaymentID,
			Action:         string(r.Action),
			PreviousStatus: statusString(r.PreviousStatus),
			NewStatus:      statusString(r.NewStatus),
			PreviousAmount: r.PreviousAmount,
			NewAmount:      r.NewAmount,
			RecordedAt:     r.RecordedAt,
		}
	}
	return responses
}

func statusString(s *payment.Status) *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}
