package models

import (
	"time"

	"github.com/rentals/backend/internal/domain/valuation"
)

// ValuationModel is the persistence model for the Valuation domain entity
type ValuationModel struct {
	ID            int64     `gorm:"column:id_valoracion;primaryKey;autoIncrement"`
	ReservationID int64     `gorm:"column:id_reserva;not null;index:idx_valoraciones_reserva"`
	Score         int       `gorm:"column:puntuacion;not null"`
	Comment       string    `gorm:"column:comentario;type:varchar(500)"`
	Anonymous     bool      `gorm:"column:anonima;not null;default:false"`
	ValuedAt      time.Time `gorm:"column:fecha_valoracion;not null"`
	Timestamps
}

// TableName returns the table name for GORM
func (ValuationModel) TableName() string {
	return "valoraciones"
}

// ToDomain converts the persistence model to a domain Valuation entity
func (m *ValuationModel) ToDomain() *valuation.Valuation {
	return &valuation.Valuation{
		BaseEntity:    baseEntity(m.ID, m.Timestamps),
		ReservationID: m.ReservationID,
		Score:         m.Score,
		Comment:       m.Comment,
		Anonymous:     m.Anonymous,
		ValuedAt:      m.ValuedAt,
	}
}

// FromDomain populates the persistence model from a domain Valuation entity
func (m *ValuationModel) FromDomain(v *valuation.Valuation) {
	m.ID = v.ID
	m.ReservationID = v.ReservationID
	m.Score = v.Score
	m.Comment = v.Comment
	m.Anonymous = v.Anonymous
	m.ValuedAt = v.ValuedAt
	m.Timestamps = timestampsOf(v.BaseEntity)
}

// ValuationModelFromDomain creates a new persistence model from a domain Valuation entity
func ValuationModelFromDomain(v *valuation.Valuation) *ValuationModel {
	m := &ValuationModel{}
	m.FromDomain(v)
	return m
}
