package payment

import (
	"strings"
	"time"

	"github.com/rentals/backend/internal/domain/shared"
	"github.com/rentals/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Method is the way a payment was made
type Method string

const (
	MethodCard     Method = "CARD"
	MethodCash     Method = "CASH"
	MethodTransfer Method = "TRANSFER"
	MethodPaypal   Method = "PAYPAL"
	MethodStripe   Method = "STRIPE"
)

// methodStorage holds the values written to metodo_pago
var methodStorage = map[Method]string{
	MethodCard:     "tarjeta",
	MethodCash:     "efectivo",
	MethodTransfer: "transferencia",
	MethodPaypal:   "paypal",
	MethodStripe:   "stripe",
}

var methodAliases = map[string]Method{
	"TARJETA":       MethodCard,
	"CARD":          MethodCard,
	"EFECTIVO":      MethodCash,
	"CASH":          MethodCash,
	"TRANSFERENCIA": MethodTransfer,
	"TRANSFER":      MethodTransfer,
	"PAYPAL":        MethodPaypal,
	"STRIPE":        MethodStripe,
}

// ParseMethod parses a payment method case-insensitively
func ParseMethod(s string) (Method, error) {
	if m, ok := methodAliases[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return m, nil
	}
	return "", shared.NewValidationError("INVALID_METHOD", "Payment method must be one of: CARD, CASH, TRANSFER, PAYPAL, STRIPE")
}

// Storage returns the lowercase form persisted in metodo_pago
func (m Method) Storage() string {
	if v, ok := methodStorage[m]; ok {
		return v
	}
	return strings.ToLower(string(m))
}

// Status is the settlement state of a payment
type Status string

const (
	StatusCompleted Status = "COMPLETADO"
	StatusPending   Status = "PENDIENTE"
	StatusRejected  Status = "RECHAZADO"
)

var statusAliases = map[string]Status{
	"COMPLETADO": StatusCompleted,
	"COMPLETED":  StatusCompleted,
	"PENDIENTE":  StatusPending,
	"PENDING":    StatusPending,
	"RECHAZADO":  StatusRejected,
	"REJECTED":   StatusRejected,
}

// ParseStatus parses a payment status case-insensitively
func ParseStatus(s string) (Status, error) {
	if st, ok := statusAliases[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return st, nil
	}
	return "", shared.NewValidationError("INVALID_STATUS", "Payment status must be one of: COMPLETADO, PENDIENTE, RECHAZADO")
}

// Storage returns the lowercase form persisted in estado_pago
func (s Status) Storage() string {
	return strings.ToLower(string(s))
}

// Payment is money received against a reservation.
// Reservation, amount and payment time are fixed once recorded; only the
// method and status can change afterwards.
type Payment struct {
	shared.BaseEntity
	ReservationID int64
	PaidAt        time.Time
	Amount        decimal.Decimal
	Method        Method
	Status        Status
	Reference     string
}

// NewPayment creates an unsaved payment. The reference is assigned by the
// repository when the payment is stored. A zero paidAt means now.
func NewPayment(reservationID int64, amount decimal.Decimal, method, status string, paidAt time.Time) (*Payment, error) {
	if reservationID <= 0 {
		return nil, shared.NewValidationError("INVALID_RESERVATION", "Reservation is required")
	}
	amount, err := valueobject.PositiveMoney(amount, "Amount")
	if err != nil {
		return nil, err
	}
	m, err := ParseMethod(method)
	if err != nil {
		return nil, err
	}
	st, err := ParseStatus(status)
	if err != nil {
		return nil, err
	}
	if paidAt.IsZero() {
		paidAt = time.Now()
	}

	return &Payment{
		BaseEntity:    shared.NewBaseEntity(),
		ReservationID: reservationID,
		PaidAt:        paidAt,
		Amount:        amount,
		Method:        m,
		Status:        st,
	}, nil
}

// Modify changes the method and status of the payment
func (p *Payment) Modify(method, status string) error {
	m, err := ParseMethod(method)
	if err != nil {
		return err
	}
	st, err := ParseStatus(status)
	if err != nil {
		return err
	}
	p.Method = m
	p.Status = st
	p.Touch()
	return nil
}

// IsCompleted returns true if the payment has been settled
func (p *Payment) IsCompleted() bool {
	return p.Status == StatusCompleted
}
