package models

import (
	"strings"

	"github.com/rentals/backend/internal/domain/property"
	"github.com/shopspring/decimal"
)

// PropertyModel is the persistence model for the Property domain entity
type PropertyModel struct {
	ID           int64           `gorm:"column:id_propiedad;primaryKey;autoIncrement"`
	Name         string          `gorm:"column:nombre;type:varchar(100);not null;uniqueIndex:uq_propiedades_nombre"`
	Address      string          `gorm:"column:direccion;type:varchar(255);not null"`
	City         string          `gorm:"column:ciudad;type:varchar(100);not null"`
	Country      string          `gorm:"column:pais;type:varchar(50);not null"`
	NightlyPrice decimal.Decimal `gorm:"column:precio_noche;type:decimal(10,2);not null"`
	Capacity     int             `gorm:"column:capacidad;not null"`
	Description  string          `gorm:"column:descripcion;type:varchar(500);not null"`
	Status       string          `gorm:"column:estado_propiedad;type:varchar(20);not null;default:'disponible'"`
	Timestamps
}

// TableName returns the table name for GORM
func (PropertyModel) TableName() string {
	return "propiedades"
}

// ToDomain converts the persistence model to a domain Property entity.
// Unknown stored statuses are kept verbatim.
func (m *PropertyModel) ToDomain() *property.Property {
	status, err := property.ParseStatus(m.Status)
	if err != nil {
		status = property.Status(strings.ToLower(strings.TrimSpace(m.Status)))
	}
	return &property.Property{
		BaseEntity:   baseEntity(m.ID, m.Timestamps),
		Name:         m.Name,
		Address:      m.Address,
		City:         m.City,
		Country:      m.Country,
		NightlyPrice: m.NightlyPrice,
		Capacity:     m.Capacity,
		Description:  m.Description,
		Status:       status,
	}
}

// FromDomain populates the persistence model from a domain Property entity
func (m *PropertyModel) FromDomain(p *property.Property) {
	m.ID = p.ID
	m.Name = p.Name
	m.Address = p.Address
	m.City = p.City
	m.Country = p.Country
	m.NightlyPrice = p.NightlyPrice
	m.Capacity = p.Capacity
	m.Description = p.Description
	m.Status = string(p.Status)
	m.Timestamps = timestampsOf(p.BaseEntity)
}

// PropertyModelFromDomain creates a new persistence model from a domain Property entity
func PropertyModelFromDomain(p *property.Property) *PropertyModel {
	m := &PropertyModel{}
	m.FromDomain(p)
	return m
}
