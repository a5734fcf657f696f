package property

import (
	"context"
	"strings"

	"github.com/rentals/backend/internal/domain/property"
	"github.com/rentals/backend/internal/domain/shared"
)

// PropertyService handles property-related business operations
type PropertyService struct {
	propertyRepo property.PropertyRepository
}

// NewPropertyService creates a new PropertyService
func NewPropertyService(propertyRepo property.PropertyRepository) *PropertyService {
	return &PropertyService{
		propertyRepo: propertyRepo,
	}
}

// Create registers a new property. Names are unique.
func (s *PropertyService) Create(ctx context.Context, req CreatePropertyRequest) (*PropertyResponse, error) {
	p, err := property.NewProperty(property.Details{
		Name:         req.Name,
		Address:      req.Address,
		City:         req.City,
		Country:      req.Country,
		NightlyPrice: req.NightlyPrice,
		Capacity:     req.Capacity,
		Description:  req.Description,
		Status:       req.Status,
	})
	if err != nil {
		return nil, err
	}

	exists, err := s.propertyRepo.ExistsByName(ctx, p.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Property with this name already exists")
	}

	if err := s.propertyRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	response := ToPropertyResponse(p)
	return &response, nil
}

// GetByID retrieves a property by ID
func (s *PropertyService) GetByID(ctx context.Context, id int64) (*PropertyResponse, error) {
	p, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToPropertyResponse(p)
	return &response, nil
}

// List retrieves properties with filtering and pagination
func (s *PropertyService) List(ctx context.Context, filter PropertyListFilter) ([]PropertyResponse, int64, error) {
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

	properties, err := s.propertyRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.propertyRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToPropertyResponses(properties), total, nil
}

// ListIDs returns the IDs of every property
func (s *PropertyService) ListIDs(ctx context.Context) ([]int64, error) {
	return s.propertyRepo.ListIDs(ctx)
}

// FindIDByName resolves the ID of the property with the given name
func (s *PropertyService) FindIDByName(ctx context.Context, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, shared.NewValidationError("INVALID_NAME", "Property name cannot be empty")
	}
	return s.propertyRepo.FindIDByName(ctx, name)
}

// Update updates a property by ID
func (s *PropertyService) Update(ctx context.Context, id int64, req UpdatePropertyRequest) (*PropertyResponse, error) {
	p, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	d := property.Details{
		Name:         p.Name,
		Address:      p.Address,
		City:         p.City,
		Country:      p.Country,
		NightlyPrice: p.NightlyPrice,
		Capacity:     p.Capacity,
		Description:  p.Description,
		Status:       string(p.Status),
	}
	if req.Name != nil {
		d.Name = *req.Name
	}
	if req.Address != nil {
		d.Address = *req.Address
	}
	if req.City != nil {
		d.City = *req.City
	}
	if req.Country != nil {
		d.Country = *req.Country
	}
	if req.NightlyPrice != nil {
		d.NightlyPrice = *req.NightlyPrice
	}
	if req.Capacity != nil {
		d.Capacity = *req.Capacity
	}
	if req.Description != nil {
		d.Description = *req.Description
	}
	if req.Status != nil {
		d.Status = *req.Status
	}

	// Check for duplicate name
	if newName := strings.TrimSpace(d.Name); newName != p.Name {
		exists, err := s.propertyRepo.ExistsByName(ctx, newName)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Property with this name already exists")
		}
	}

	if err := p.Update(d); err != nil {
		return nil, err
	}
	if err := s.propertyRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	response := ToPropertyResponse(p)
	return &response, nil
}

// UpdateByName updates the property with the given name
func (s *PropertyService) UpdateByName(ctx context.Context, name string, req UpdatePropertyRequest) (*PropertyResponse, error) {
	id, err := s.FindIDByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return s.Update(ctx, id, req)
}

// ChangeStatus sets the availability status of a property
func (s *PropertyService) ChangeStatus(ctx context.Context, id int64, req ChangeStatusRequest) (*PropertyResponse, error) {
	p, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := p.ChangeStatus(req.Status); err != nil {
		return nil, err
	}
	if err := s.propertyRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	response := ToPropertyResponse(p)
	return &response, nil
}

// Delete deletes a property by ID
func (s *PropertyService) Delete(ctx context.Context, id int64) error {
	return s.propertyRepo.Delete(ctx, id)
}

// DeleteByName deletes the property with the given name
func (s *PropertyService) DeleteByName(ctx context.Context, name string) error {
	id, err := s.FindIDByName(ctx, name)
	if err != nil {
		return err
	}
	return s.propertyRepo.Delete(ctx, id)
}
