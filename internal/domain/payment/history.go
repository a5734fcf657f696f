package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Action is the kind of mutation recorded in the payment history
type Action string

const (
	ActionInsert Action = "INSERT"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
)

// HistoryRecord is one append-only audit entry for a payment mutation.
// Fields that do not apply to the action (the previous values of an
// insert, the new values of a delete) are nil.
type HistoryRecord struct {
	ID             int64
	PaymentID      int64
	Action         Action
	PreviousStatus *Status
	NewStatus      *Status
	PreviousAmount *decimal.Decimal
	NewAmount      *decimal.Decimal
	RecordedAt     time.Time
}

// NewInsertRecord records the creation of p
func NewInsertRecord(p *Payment) HistoryRecord {
	return HistoryRecord{
		PaymentID: p.ID,
		Action:    ActionInsert,
		NewStatus: statusPtr(p.Status),
		NewAmount: amountPtr(p.Amount),
	}
}

// NewUpdateRecord records the change from before to after
func NewUpdateRecord(before, after *Payment) HistoryRecord {
	return HistoryRecord{
		PaymentID:      after.ID,
		Action:         ActionUpdate,
		PreviousStatus: statusPtr(before.Status),
		NewStatus:      statusPtr(after.Status),
		PreviousAmount: amountPtr(before.Amount),
		NewAmount:      amountPtr(after.Amount),
	}
}

// NewDeleteRecord records the removal of p
func NewDeleteRecord(p *Payment) HistoryRecord {
	return HistoryRecord{
		PaymentID:      p.ID,
		Action:         ActionDelete,
		PreviousStatus: statusPtr(p.Status),
		PreviousAmount: amountPtr(p.Amount),
	}
}

func statusPtr(s Status) *Status {
	return &s
}

func amountPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
