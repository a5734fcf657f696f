package property

import (
	"strings"

	"github.com/rentals/backend/internal/domain/shared"
	"github.com/rentals/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Status represents the availability of a property
type Status string

const (
	StatusAvailable   Status = "disponible"
	StatusOccupied    Status = "ocupada"
	StatusMaintenance Status = "mantenimiento"
)

var statusAliases = map[string]Status{
	"disponible":    StatusAvailable,
	"available":     StatusAvailable,
	"ocupada":       StatusOccupied,
	"occupied":      StatusOccupied,
	"mantenimiento": StatusMaintenance,
	"maintenance":   StatusMaintenance,
}

// ParseStatus parses a status case-insensitively. English names are
// accepted as aliases of the stored values.
func ParseStatus(s string) (Status, error) {
	if st, ok := statusAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return st, nil
	}
	return "", shared.NewValidationError("INVALID_STATUS", "Status must be one of: disponible, ocupada, mantenimiento")
}

// Details holds the editable fields of a property
type Details struct {
	Name         string
	Address      string
	City         string
	Country      string
	NightlyPrice decimal.Decimal
	Capacity     int
	Description  string
	Status       string
}

// Property is a rentable unit
type Property struct {
	shared.BaseEntity
	Name         string
	Address      string
	City         string
	Country      string
	NightlyPrice decimal.Decimal
	Capacity     int
	Description  string
	Status       Status
}

// NewProperty creates a new property. An empty status defaults to available.
func NewProperty(d Details) (*Property, error) {
	p := &Property{BaseEntity: shared.NewBaseEntity()}
	if d.Status == "" {
		d.Status = string(StatusAvailable)
	}
	if err := p.apply(d); err != nil {
		return nil, err
	}
	return p, nil
}

// Update replaces the editable fields of the property
func (p *Property) Update(d Details) error {
	if d.Status == "" {
		d.Status = string(p.Status)
	}
	if err := p.apply(d); err != nil {
		return err
	}
	p.Touch()
	return nil
}

// ChangeStatus sets a new availability status
func (p *Property) ChangeStatus(status string) error {
	st, err := ParseStatus(status)
	if err != nil {
		return err
	}
	p.Status = st
	p.Touch()
	return nil
}

// CanHost reports whether the property fits the given number of guests
func (p *Property) CanHost(guests int) bool {
	return guests >= 1 && guests <= p.Capacity
}

func (p *Property) apply(d Details) error {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return shared.NewValidationError("INVALID_NAME", "Property name cannot be empty")
	}
	if len([]rune(name)) > 100 {
		return shared.NewValidationError("INVALID_NAME", "Property name cannot exceed 100 characters")
	}
	address := strings.TrimSpace(d.Address)
	if address == "" {
		return shared.NewValidationError("INVALID_ADDRESS", "Address cannot be empty")
	}
	city := strings.TrimSpace(d.City)
	if city == "" {
		return shared.NewValidationError("INVALID_CITY", "City cannot be empty")
	}
	country := strings.TrimSpace(d.Country)
	if country == "" {
		return shared.NewValidationError("INVALID_COUNTRY", "Country cannot be empty")
	}
	if len([]rune(country)) > 50 {
		return shared.NewValidationError("INVALID_COUNTRY", "Country cannot exceed 50 characters")
	}
	nightly, err := valueobject.PositiveMoney(d.NightlyPrice, "Nightly price")
	if err != nil {
		return err
	}
	if d.Capacity < 1 {
		return shared.NewValidationError("INVALID_CAPACITY", "Capacity must be at least 1")
	}
	description := strings.TrimSpace(d.Description)
	if description == "" {
		return shared.NewValidationError("INVALID_DESCRIPTION", "Description cannot be empty")
	}
	if len([]rune(description)) > 500 {
		return shared.NewValidationError("INVALID_DESCRIPTION", "Description cannot exceed 500 characters")
	}
	status, err := ParseStatus(d.Status)
	if err != nil {
		return err
	}

	p.Name = name
	p.Address = address
	p.City = city
	p.Country = country
	p.NightlyPrice = nightly
	p.Capacity = d.Capacity
	p.Description = description
	p.Status = status
	return nil
}
