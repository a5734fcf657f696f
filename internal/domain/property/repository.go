package property

import (
	"context"

	"github.com/rentals/backend/internal/domain/shared"
)

// PropertyRepository defines the interface for property persistence
type PropertyRepository interface {
	FindByID(ctx context.Context, id int64) (*Property, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Property, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// FindIDByName resolves the ID of the property with the given name.
	// Returns a not found error when absent.
	FindIDByName(ctx context.Context, name string) (int64, error)
	ExistsByName(ctx context.Context, name string) (bool, error)

	// ListIDs returns every property ID in ascending order
	ListIDs(ctx context.Context) ([]int64, error)

	Save(ctx context.Context, property *Property) error
	Delete(ctx context.Context, id int64) error
}
