package shared

import "time"

// BaseEntity provides common fields for all entities.
// IDs are surrogate keys assigned by the database on insert; zero means
// the entity has not been persisted yet.
type BaseEntity struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsNew reports whether the entity has not been persisted
func (e *BaseEntity) IsNew() bool {
	return e.ID == 0
}

// Touch sets UpdatedAt to now
func (e *BaseEntity) Touch() {
	e.UpdatedAt = time.Now()
}

// NewBaseEntity creates a new unsaved base entity
func NewBaseEntity() BaseEntity {
	now := time.Now()
	return BaseEntity{
		CreatedAt: now,
		UpdatedAt: now,
	}
}
