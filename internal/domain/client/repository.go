package client

import (
	"context"

	"github.com/rentals/backend/internal/domain/shared"
)

// ClientRepository defines the interface for client persistence
type ClientRepository interface {
	// FindByID finds a client by its ID
	FindByID(ctx context.Context, id int64) (*Client, error)

	// FindAll finds all clients matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Client, error)

	// Count counts clients matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// FindIDByEmail resolves the ID of the client with the given email.
	// Returns a not found error when no client uses it.
	FindIDByEmail(ctx context.Context, email string) (int64, error)

	// ExistsByEmail checks if any client uses the given email
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Save creates or updates a client
	Save(ctx context.Context, client *Client) error

	// Delete deletes a client
	Delete(ctx context.Context, id int64) error
}
