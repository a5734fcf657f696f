package valuation

import (
	"context"

	"github.com/rentals/backend/internal/domain/shared"
)

// ValuationRepository defines the interface for valuation persistence
type ValuationRepository interface {
	FindByID(ctx context.Context, id int64) (*Valuation, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Valuation, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// FindByReservation returns every valuation left for a reservation
	FindByReservation(ctx context.Context, reservationID int64) ([]Valuation, error)

	Save(ctx context.Context, valuation *Valuation) error
	Delete(ctx context.Context, id int64) error
}
