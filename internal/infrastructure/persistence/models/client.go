package models

import (
	"time"

	"github.com/rentals/backend/internal/domain/client"
)

// ClientModel is the persistence model for the Client domain entity
type ClientModel struct {
	ID           int64     `gorm:"column:id_cliente;primaryKey;autoIncrement"`
	FirstName    string    `gorm:"column:nombre;type:varchar(100);not null"`
	LastName     string    `gorm:"column:apellidos;type:varchar(100);not null"`
	Email        string    `gorm:"column:email;type:varchar(200);not null;uniqueIndex:uq_clientes_email"`
	Phone        string    `gorm:"column:telefono;type:varchar(20);not null"`
	Country      string    `gorm:"column:pais;type:varchar(100);not null"`
	RegisteredAt time.Time `gorm:"column:fecha_registro;not null"`
	Timestamps
}

// TableName returns the table name for GORM
func (ClientModel) TableName() string {
	return "clientes"
}

// ToDomain converts the persistence model to a domain Client entity
func (m *ClientModel) ToDomain() *client.Client {
	return &client.Client{
		BaseEntity:   baseEntity(m.ID, m.Timestamps),
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Email:        m.Email,
		Phone:        m.Phone,
		Country:      m.Country,
		RegisteredAt: m.RegisteredAt,
	}
}

// FromDomain populates the persistence model from a domain Client entity
func (m *ClientModel) FromDomain(c *client.Client) {
	m.ID = c.ID
	m.FirstName = c.FirstName
	m.LastName = c.LastName
	m.Email = c.Email
	m.Phone = c.Phone
	m.Country = c.Country
	m.RegisteredAt = c.RegisteredAt
	m.Timestamps = timestampsOf(c.BaseEntity)
}

// ClientModelFromDomain creates a new persistence model from a domain Client entity
func ClientModelFromDomain(c *client.Client) *ClientModel {
	m := &ClientModel{}
	m.FromDomain(c)
	return m
}
