package reservation

import (
	"strings"

	"github.com/rentals/backend/internal/domain/shared"
)

// Status represents the lifecycle state of a reservation
type Status string

const (
	StatusPending   Status = "PENDIENTE"
	StatusConfirmed Status = "CONFIRMADA"
	StatusCancelled Status = "CANCELADA"
)

var statusAliases = map[string]Status{
	"PENDIENTE":  StatusPending,
	"PENDING":    StatusPending,
	"CONFIRMADA": StatusConfirmed,
	"CONFIRMED":  StatusConfirmed,
	"CANCELADA":  StatusCancelled,
	"CANCELLED":  StatusCancelled,
	"CANCELED":   StatusCancelled,
}

// allowedTransitions lists the legal moves between distinct states.
// Staying in the same state is always allowed.
var allowedTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled},
	StatusCancelled: {},
}

// ParseStatus parses a status case-insensitively, accepting English aliases
func ParseStatus(s string) (Status, error) {
	if st, ok := statusAliases[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return st, nil
	}
	return "", shared.NewValidationError("INVALID_STATUS", "Status must be one of: PENDIENTE, CONFIRMADA, CANCELADA")
}

// IsValid returns true if s is a known status
func (s Status) IsValid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next is allowed
func (s Status) CanTransitionTo(next Status) bool {
	if s == next {
		return true
	}
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Storage returns the lowercase form persisted in the estado column
func (s Status) Storage() string {
	return strings.ToLower(string(s))
}

// String returns the status name
func (s Status) String() string {
	return string(s)
}
