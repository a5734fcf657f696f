package models

import (
	"strings"
	"time"

	"github.com/rentals/backend/internal/domain/reservation"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ReservationModel is the persistence model for the Reservation domain entity
type ReservationModel struct {
	ID                 int64           `gorm:"column:id_reserva;primaryKey;autoIncrement"`
	ClientID           int64           `gorm:"column:id_cliente;not null;index:idx_reservas_cliente"`
	PropertyID         int64           `gorm:"column:id_propiedad;not null;index:idx_reservas_propiedad"`
	StartDate          datatypes.Date  `gorm:"column:fecha_inicio;not null"`
	EndDate            datatypes.Date  `gorm:"column:fecha_fin;not null"`
	Guests             int             `gorm:"column:num_personas;not null"`
	Status             string          `gorm:"column:estado;type:varchar(20);not null;default:'pendiente'"`
	TotalPrice         decimal.Decimal `gorm:"column:precio_total;type:decimal(10,2);not null"`
	CancellationReason *string         `gorm:"column:motivo_cancelacion;type:varchar(255)"`
	Timestamps
}

// TableName returns the table name for GORM
func (ReservationModel) TableName() string {
	return "reservas"
}

// ToDomain converts the persistence model to a domain Reservation entity
func (m *ReservationModel) ToDomain() *reservation.Reservation {
	status, err := reservation.ParseStatus(m.Status)
	if err != nil {
		status = reservation.Status(strings.ToUpper(strings.TrimSpace(m.Status)))
	}
	return &reservation.Reservation{
		BaseEntity:         baseEntity(m.ID, m.Timestamps),
		ClientID:           m.ClientID,
		PropertyID:         m.PropertyID,
		StartDate:          reservation.DateOf(time.Time(m.StartDate)),
		EndDate:            reservation.DateOf(time.Time(m.EndDate)),
		Guests:             m.Guests,
		Status:             status,
		TotalPrice:         m.TotalPrice,
		CancellationReason: m.CancellationReason,
	}
}

// FromDomain populates the persistence model from a domain Reservation entity
func (m *ReservationModel) FromDomain(r *reservation.Reservation) {
	m.ID = r.ID
	m.ClientID = r.ClientID
	m.PropertyID = r.PropertyID
	m.StartDate = datatypes.Date(reservation.DateOf(r.StartDate))
	m.EndDate = datatypes.Date(reservation.DateOf(r.EndDate))
	m.Guests = r.Guests
	m.Status = r.Status.Storage()
	m.TotalPrice = r.TotalPrice
	m.CancellationReason = r.CancellationReason
	m.Timestamps = timestampsOf(r.BaseEntity)
}

// ReservationModelFromDomain creates a new persistence model from a domain Reservation entity
func ReservationModelFromDomain(r *reservation.Reservation) *ReservationModel {
	m := &ReservationModel{}
	m.FromDomain(r)
	return m
}
