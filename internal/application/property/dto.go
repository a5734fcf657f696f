package property

import (
	"time"

	"github.com/rentals/backend/internal/domain/property"
	"github.com/shopspring/decimal"
)

// CreatePropertyRequest represents a request to register a property
type CreatePropertyRequest struct {
	Name         string          `json:"name" binding:"required,max=100"`
	Address      string          `json:"address" binding:"required"`
	City         string          `json:"city" binding:"required"`
	Country      string          `json:"country" binding:"required,max=50"`
	NightlyPrice decimal.Decimal `json:"nightly_price"`
	Capacity     int             `json:"capacity" binding:"required,min=1"`
	Description  string          `json:"description" binding:"required,max=500"`
	Status       string          `json:"status"`
}

// UpdatePropertyRequest represents a request to update a property.
// Omitted fields keep their current value.
type UpdatePropertyRequest struct {
	Name         *string          `json:"name" binding:"omitempty,max=100"`
	Address      *string          `json:"address"`
	City         *string          `json:"city"`
	Country      *string          `json:"country" binding:"omitempty,max=50"`
	NightlyPrice *decimal.Decimal `json:"nightly_price"`
	Capacity     *int             `json:"capacity" binding:"omitempty,min=1"`
	Description  *string          `json:"description" binding:"omitempty,max=500"`
	Status       *string          `json:"status"`
}

// ChangeStatusRequest represents a request to change a property's status
type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PropertyResponse represents a property in API responses
type PropertyResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Address      string          `json:"address"`
	City         string          `json:"city"`
	Country      string          `json:"country"`
	NightlyPrice decimal.Decimal `json:"nightly_price"`
	Capacity     int             `json:"capacity"`
	Description  string          `json:"description"`
	Status       string          `json:"status"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// PropertyListFilter represents filter options for the property list
type PropertyListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by" binding:"omitempty,oneof=id name city country nightly_price capacity status"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToPropertyResponse converts a domain property to a response
func ToPropertyResponse(p *property.Property) PropertyResponse {
	return PropertyResponse{
		ID:           p.ID,
		Name:         p.Name,
		Address:      p.Address,
		City:         p.City,
		Country:      p.Country,
		NightlyPrice: p.NightlyPrice,
		Capacity:     p.Capacity,
		Description:  p.Description,
		Status:       string(p.Status),
		UpdatedAt:    p.UpdatedAt,
	}
}

// ToPropertyResponses converts a slice of domain properties to responses
func ToPropertyResponses(properties []property.Property) []PropertyResponse {
	responses := make([]PropertyResponse, len(properties))
	for i := range properties {
		responses[i] = ToPropertyResponse(&properties[i])
	}
	return responses
}
