package models

import (
	"time"

	"github.com/rentals/backend/internal/domain/shared"
)

// Timestamps provides the bookkeeping columns shared by every table.
// Primary keys are declared on each model because every table names its own
// key column (id_cliente, id_pago, ...).
type Timestamps struct {
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// baseEntity builds the domain BaseEntity for a row
func baseEntity(id int64, ts Timestamps) shared.BaseEntity {
	return shared.BaseEntity{
		ID:        id,
		CreatedAt: ts.CreatedAt,
		UpdatedAt: ts.UpdatedAt,
	}
}

// timestampsOf copies the timestamps of a domain entity
func timestampsOf(e shared.BaseEntity) Timestamps {
	return Timestamps{CreatedAt: e.CreatedAt, UpdatedAt: e.UpdatedAt}
}
