package client

import (
	"time"

	"github.com/rentals/backend/internal/domain/client"
)

// CreateClientRequest represents a request to register a new client
type CreateClientRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email,max=200"`
	Phone     string `json:"phone" binding:"required,max=20"`
	Country   string `json:"country" binding:"required,max=100"`
}

// UpdateClientRequest represents a request to update a client.
// Omitted fields keep their current value.
type UpdateClientRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,max=100"`
	LastName  *string `json:"last_name" binding:"omitempty,max=100"`
	Email     *string `json:"email" binding:"omitempty,email,max=200"`
	Phone     *string `json:"phone" binding:"omitempty,max=20"`
	Country   *string `json:"country" binding:"omitempty,max=100"`
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Country      string    `json:"country"`
	RegisteredAt time.Time `json:"registered_at"`
}

// ClientListFilter represents filter options for the client list
type ClientListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by" binding:"omitempty,oneof=id first_name last_name email country registered_at"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToClientResponse converts a domain client to a response
func ToClientResponse(c *client.Client) ClientResponse {
	return ClientResponse{
		ID:           c.ID,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		FullName:     c.FullName(),
		Email:        c.Email,
		Phone:        c.Phone,
		Country:      c.Country,
		RegisteredAt: c.RegisteredAt,
	}
}

// ToClientResponses converts a slice of domain clients to responses
func ToClientResponses(clients []client.Client) []ClientResponse {
	responses := make([]ClientResponse, len(clients))
	for i := range clients {
		responses[i] = ToClientResponse(&clients[i])
	}
	return responses
}
