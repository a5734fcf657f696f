package client

import (
	"context"

	"github.com/rentals/backend/internal/domain/client"
	"github.com/rentals/backend/internal/domain/shared"
)

// ClientService handles client-related business operations
type ClientService struct {
	clientRepo client.ClientRepository
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo client.ClientRepository) *ClientService {
	return &ClientService{
		clientRepo: clientRepo,
	}
}

// Create registers a new client. The email is checked before any insert.
func (s *ClientService) Create(ctx context.Context, req CreateClientRequest) (*ClientResponse, error) {
	c, err := client.NewClient(req.FirstName, req.LastName, req.Email, req.Phone, req.Country)
	if err != nil {
		return nil, err
	}

	exists, err := s.clientRepo.ExistsByEmail(ctx, c.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Client with this email already exists")
	}

	if err := s.clientRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	response := ToClientResponse(c)
	return &response, nil
}

// GetByID retrieves a client by ID
func (s *ClientService) GetByID(ctx context.Context, id int64) (*ClientResponse, error) {
	c, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToClientResponse(c)
	return &response, nil
}

// List retrieves clients with filtering and pagination
func (s *ClientService) List(ctx context.Context, filter ClientListFilter) ([]ClientResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	domainFilter.Search = filter.Search

	clients, err := s.clientRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.clientRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToClientResponses(clients), total, nil
}

// FindIDByEmail resolves the ID of the client registered with email
func (s *ClientService) FindIDByEmail(ctx context.Context, email string) (int64, error) {
	normalized, err := client.NormalizeEmail(email)
	if err != nil {
		return 0, err
	}
	return s.clientRepo.FindIDByEmail(ctx, normalized)
}

// Update updates a client by ID
func (s *ClientService) Update(ctx context.Context, id int64, req UpdateClientRequest) (*ClientResponse, error) {
	c, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.update(ctx, c, req)
}

// UpdateByEmail updates the client registered with email
func (s *ClientService) UpdateByEmail(ctx context.Context, email string, req UpdateClientRequest) (*ClientResponse, error) {
	id, err := s.FindIDByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return s.Update(ctx, id, req)
}

// Delete deletes a client by ID
func (s *ClientService) Delete(ctx context.Context, id int64) error {
	return s.clientRepo.Delete(ctx, id)
}

// DeleteByEmail deletes the client registered with email
func (s *ClientService) DeleteByEmail(ctx context.Context, email string) error {
	id, err := s.FindIDByEmail(ctx, email)
	if err != nil {
		return err
	}
	return s.clientRepo.Delete(ctx, id)
}

func (s *ClientService) update(ctx context.Context, c *client.Client, req UpdateClientRequest) (*ClientResponse, error) {
	firstName, lastName, email, phone, country := c.FirstName, c.LastName, c.Email, c.Phone, c.Country
	if req.FirstName != nil {
		firstName = *req.FirstName
	}
	if req.LastName != nil {
		lastName = *req.LastName
	}
	if req.Phone != nil {
		phone = *req.Phone
	}
	if req.Country != nil {
		country = *req.Country
	}
	if req.Email != nil {
		normalized, err := client.NormalizeEmail(*req.Email)
		if err != nil {
			return nil, err
		}
		// Check for duplicate email
		if normalized != c.Email {
			exists, err := s.clientRepo.ExistsByEmail(ctx, normalized)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, shared.NewDomainError("ALREADY_EXISTS", "Client with this email already exists")
			}
		}
		email = normalized
	}

	if err := c.Update(firstName, lastName, email, phone, country); err != nil {
		return nil, err
	}
	if err := s.clientRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	response := ToClientResponse(c)
	return &response, nil
}
