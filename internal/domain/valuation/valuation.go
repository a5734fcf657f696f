package valuation

import (
	"strings"
	"time"

	"github.com/rentals/backend/internal/domain/shared"
)

const (
	MinScore         = 1
	MaxScore         = 5
	MaxCommentLength = 500
)

// Review holds the editable fields of a valuation
type Review struct {
	ReservationID int64
	Score         int
	Comment       string
	Anonymous     bool
	// ValuedAt defaults to now when zero
	ValuedAt time.Time
}

// Valuation is a guest's rating of a stay
type Valuation struct {
	shared.BaseEntity
	ReservationID int64
	Score         int
	Comment       string
	Anonymous     bool
	ValuedAt      time.Time
}

// NewValuation creates a new valuation
func NewValuation(r Review) (*Valuation, error) {
	v := &Valuation{BaseEntity: shared.NewBaseEntity()}
	if r.ValuedAt.IsZero() {
		r.ValuedAt = time.Now()
	}
	if err := v.apply(r); err != nil {
		return nil, err
	}
	return v, nil
}

// Update replaces the editable fields. A zero ValuedAt keeps the current date.
func (v *Valuation) Update(r Review) error {
	if r.ValuedAt.IsZero() {
		r.ValuedAt = v.ValuedAt
	}
	if err := v.apply(r); err != nil {
		return err
	}
	v.Touch()
	return nil
}

// IsPositive returns true for scores of 4 and above
func (v *Valuation) IsPositive() bool {
	return v.Score >= 4
}

func (v *Valuation) apply(r Review) error {
	if r.ReservationID <= 0 {
		return shared.NewValidationError("INVALID_RESERVATION", "Reservation is required")
	}
	if r.Score < MinScore || r.Score > MaxScore {
		return shared.NewValidationError("INVALID_SCORE", "Score must be between 1 and 5")
	}
	comment := strings.TrimSpace(r.Comment)
	if len([]rune(comment)) > MaxCommentLength {
		return shared.NewValidationError("INVALID_COMMENT", "Comment cannot exceed 500 characters")
	}

	v.ReservationID = r.ReservationID
	v.Score = r.Score
	v.Comment = comment
	v.Anonymous = r.Anonymous
	v.ValuedAt = r.ValuedAt
	return nil
}
