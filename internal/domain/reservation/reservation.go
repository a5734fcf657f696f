package reservation

import (
	"strings"
	"time"

	"github.com/rentals/backend/internal/domain/shared"
	"github.com/rentals/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Booking holds the fields supplied by a booking or edit action
type Booking struct {
	ClientID           int64
	PropertyID         int64
	StartDate          time.Time
	EndDate            time.Time
	Guests             int
	Status             string
	TotalPrice         decimal.Decimal
	CancellationReason string
}

// Reservation is a stay of a client at a property between two dates
type Reservation struct {
	shared.BaseEntity
	ClientID           int64
	PropertyID         int64
	StartDate          time.Time
	EndDate            time.Time
	Guests             int
	Status             Status
	TotalPrice         decimal.Decimal
	CancellationReason *string
}

// NewReservation creates a reservation from a booking action.
// A new reservation starts as PENDIENTE (the default) or CONFIRMADA.
func NewReservation(b Booking) (*Reservation, error) {
	status := StatusPending
	if b.Status != "" {
		st, err := ParseStatus(b.Status)
		if err != nil {
			return nil, err
		}
		status = st
	}
	if status == StatusCancelled {
		return nil, shared.NewDomainError("INVALID_STATE", "A new reservation cannot be created as cancelled")
	}

	r := &Reservation{BaseEntity: shared.NewBaseEntity(), Status: status}
	if err := r.applyFields(b); err != nil {
		return nil, err
	}
	return r, nil
}

// Edit updates any field of the reservation. The status change, if any,
// must follow the lifecycle transitions.
func (r *Reservation) Edit(b Booking) error {
	next := r.Status
	if b.Status != "" {
		st, err := ParseStatus(b.Status)
		if err != nil {
			return err
		}
		next = st
	}
	if !r.Status.CanTransitionTo(next) {
		return transitionError(r.Status, next)
	}

	edited := *r
	if err := edited.applyFields(b); err != nil {
		return err
	}
	edited.Status = next
	edited.setReason(b.CancellationReason)

	*r = edited
	r.Touch()
	return nil
}

// Confirm moves a pending reservation to confirmed
func (r *Reservation) Confirm() error {
	if !r.Status.CanTransitionTo(StatusConfirmed) {
		return transitionError(r.Status, StatusConfirmed)
	}
	r.Status = StatusConfirmed
	r.Touch()
	return nil
}

// Cancel cancels the reservation, recording an optional reason
func (r *Reservation) Cancel(reason string) error {
	if r.Status == StatusCancelled {
		return shared.NewDomainError("INVALID_STATE", "Reservation is already cancelled")
	}
	r.Status = StatusCancelled
	r.setReason(reason)
	r.Touch()
	return nil
}

// Nights returns the number of nights between start and end date
func (r *Reservation) Nights() int {
	return nightsBetween(r.StartDate, r.EndDate)
}

// QuoteTotal returns nights × nightly price for the given dates
func QuoteTotal(start, end time.Time, nightly decimal.Decimal) decimal.Decimal {
	nights := nightsBetween(DateOf(start), DateOf(end))
	if nights <= 0 {
		return decimal.Zero
	}
	return valueobject.RoundMoney(nightly.Mul(decimal.NewFromInt(int64(nights))))
}

// DateOf truncates t to a calendar date at UTC midnight
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func nightsBetween(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}

func (r *Reservation) applyFields(b Booking) error {
	if b.ClientID <= 0 {
		return shared.NewValidationError("INVALID_CLIENT", "Client ID is required")
	}
	if b.PropertyID <= 0 {
		return shared.NewValidationError("INVALID_PROPERTY", "Property ID is required")
	}
	if b.StartDate.IsZero() || b.EndDate.IsZero() {
		return shared.NewValidationError("INVALID_DATES", "Start and end dates are required")
	}
	start, end := DateOf(b.StartDate), DateOf(b.EndDate)
	if !end.After(start) {
		return shared.NewValidationError("INVALID_DATES", "End date must be after start date")
	}
	if b.Guests < 1 {
		return shared.NewValidationError("INVALID_GUESTS", "Number of guests must be at least 1")
	}
	total := valueobject.RoundMoney(b.TotalPrice)
	if total.IsNegative() {
		return shared.NewValidationError("INVALID_PRICE", "Total price cannot be negative")
	}
	if total.GreaterThan(valueobject.MaxMoney) {
		return shared.NewValidationError("INVALID_PRICE", "Total price cannot exceed "+valueobject.MaxMoney.StringFixed(valueobject.MoneyPlaces))
	}

	r.ClientID = b.ClientID
	r.PropertyID = b.PropertyID
	r.StartDate = start
	r.EndDate = end
	r.Guests = b.Guests
	r.TotalPrice = total
	return nil
}

// setReason keeps the cancellation reason only on cancelled reservations
func (r *Reservation) setReason(reason string) {
	if r.Status != StatusCancelled {
		r.CancellationReason = nil
		return
	}
	if reason = strings.TrimSpace(reason); reason != "" {
		r.CancellationReason = &reason
	}
}

func transitionError(from, to Status) error {
	return shared.NewDomainError("INVALID_STATE", "Cannot change reservation status from "+string(from)+" to "+string(to))
}
