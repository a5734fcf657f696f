package reservation

import (
	"context"

	"github.com/rentals/backend/internal/domain/shared"
)

// ReservationRepository defines the interface for reservation persistence
type ReservationRepository interface {
	// FindByID finds a reservation by its ID
	FindByID(ctx context.Context, id int64) (*Reservation, error)

	// FindAll finds all reservations matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Reservation, error)

	// Count counts reservations matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// FindByClient finds the reservations of a client
	FindByClient(ctx context.Context, clientID int64) ([]Reservation, error)

	// FindByProperty finds the reservations of a property
	FindByProperty(ctx context.Context, propertyID int64) ([]Reservation, error)

	// ListIDs returns every reservation ID in ascending order
	ListIDs(ctx context.Context) ([]int64, error)

	// Create inserts a new reservation and assigns its ID
	Create(ctx context.Context, r *Reservation) error

	// Update writes every field of r and returns the affected row count
	Update(ctx context.Context, r *Reservation) (int64, error)

	// Delete removes a reservation and returns the affected row count.
	// Deleting an unknown ID returns 0 and no error.
	Delete(ctx context.Context, id int64) (int64, error)
}
