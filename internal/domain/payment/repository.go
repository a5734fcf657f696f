package payment

import (
	"context"

	"github.com/rentals/backend/internal/domain/shared"
)

// PaymentRepository defines the interface for payment persistence.
// Every mutation writes its history record in the same transaction.
type PaymentRepository interface {
	// FindByID finds a payment by its ID
	FindByID(ctx context.Context, id int64) (*Payment, error)

	// FindAll finds all payments matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Payment, error)

	// Count counts payments matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// FindByReservation finds the payments of a reservation
	FindByReservation(ctx context.Context, reservationID int64) ([]Payment, error)

	// LastReference returns the reference of the payment with the highest ID,
	// or an empty string when there are no payments
	LastReference(ctx context.Context) (string, error)

	// Create assigns the next reference, inserts p and records an INSERT entry
	Create(ctx context.Context, p *Payment) error

	// Update stores the method and status of p and records an UPDATE entry
	Update(ctx context.Context, p *Payment) error

	// Delete records a DELETE entry and removes the payment
	Delete(ctx context.Context, id int64) error

	// History returns the audit entries of a payment, oldest first
	History(ctx context.Context, paymentID int64) ([]HistoryRecord, error)
}
