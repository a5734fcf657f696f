package models

import (
	"strings"
	"time"

	"github.com/rentals/backend/internal/domain/payment"
	"github.com/shopspring/decimal"
)

// PaymentModel is the persistence model for the Payment domain entity
type PaymentModel struct {
	ID            int64           `gorm:"column:id_pago;primaryKey;autoIncrement"`
	ReservationID int64           `gorm:"column:id_reserva;not null;index:idx_pagos_reserva"`
	PaidAt        time.Time       `gorm:"column:fecha_pago;not null"`
	Amount        decimal.Decimal `gorm:"column:monto;type:decimal(10,2);not null"`
	Method        string          `gorm:"column:metodo_pago;type:varchar(20);not null"`
	Status        string          `gorm:"column:estado_pago;type:varchar(20);not null"`
	Reference     string          `gorm:"column:referencia_transaccion;type:varchar(50);not null;uniqueIndex:uq_pagos_referencia"`
	Timestamps
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "pagos"
}

// ToDomain converts the persistence model to a domain Payment entity
func (m *PaymentModel) ToDomain() *payment.Payment {
	return &payment.Payment{
		BaseEntity:    baseEntity(m.ID, m.Timestamps),
		ReservationID: m.ReservationID,
		PaidAt:        m.PaidAt,
		Amount:        m.Amount,
		Method:        methodFromStorage(m.Method),
		Status:        paymentStatusFromStorage(m.Status),
		Reference:     m.Reference,
	}
}

// FromDomain populates the persistence model from a domain Payment entity
func (m *PaymentModel) FromDomain(p *payment.Payment) {
	m.ID = p.ID
	m.ReservationID = p.ReservationID
	m.PaidAt = p.PaidAt
	m.Amount = p.Amount
	m.Method = p.Method.Storage()
	m.Status = p.Status.Storage()
	m.Reference = p.Reference
	m.Timestamps = timestampsOf(p.BaseEntity)
}

// PaymentModelFromDomain creates a new persistence model from a domain Payment entity
func PaymentModelFromDomain(p *payment.Payment) *PaymentModel {
	m := &PaymentModel{}
	m.FromDomain(p)
	return m
}

// PaymentHistoryModel is one row of the append-only payment audit table.
// It has no foreign key to pagos so DELETE entries outlive the payment.
type PaymentHistoryModel struct {
	ID             int64               `gorm:"column:id_historico;primaryKey;autoIncrement"`
	PaymentID      int64               `gorm:"column:id_pago;not null;index:idx_historico_pagos_pago"`
	Action         string              `gorm:"column:accion;type:varchar(10);not null"`
	PreviousStatus *string             `gorm:"column:estado_anterior;type:varchar(20)"`
	NewStatus      *string             `gorm:"column:estado_nuevo;type:varchar(20)"`
	PreviousAmount decimal.NullDecimal `gorm:"column:monto_anterior;type:decimal(10,2)"`
	NewAmount      decimal.NullDecimal `gorm:"column:monto_nuevo;type:decimal(10,2)"`
	RecordedAt     time.Time           `gorm:"column:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

// TableName returns the table name for GORM
func (PaymentHistoryModel) TableName() string {
	return "historico_pagos"
}

// ToDomain converts the audit row to a domain HistoryRecord
func (m *PaymentHistoryModel) ToDomain() payment.HistoryRecord {
	rec := payment.HistoryRecord{
		ID:         m.ID,
		PaymentID:  m.PaymentID,
		Action:     payment.Action(strings.ToUpper(m.Action)),
		RecordedAt: m.RecordedAt,
	}
	if m.PreviousStatus != nil {
		st := paymentStatusFromStorage(*m.PreviousStatus)
		rec.PreviousStatus = &st
	}
	if m.NewStatus != nil {
		st := paymentStatusFromStorage(*m.NewStatus)
		rec.NewStatus = &st
	}
	if m.PreviousAmount.Valid {
		amount := m.PreviousAmount.Decimal
		rec.PreviousAmount = &amount
	}
	if m.NewAmount.Valid {
		amount := m.NewAmount.Decimal
		rec.NewAmount = &amount
	}
	return rec
}

// PaymentHistoryModelFromDomain creates an audit row from a domain HistoryRecord.
// A zero RecordedAt is left out of the INSERT so the database clock stamps it.
func PaymentHistoryModelFromDomain(rec payment.HistoryRecord) *PaymentHistoryModel {
	m := &PaymentHistoryModel{
		ID:         rec.ID,
		PaymentID:  rec.PaymentID,
		Action:     string(rec.Action),
		RecordedAt: rec.RecordedAt,
	}
	if rec.PreviousStatus != nil {
		s := rec.PreviousStatus.Storage()
		m.PreviousStatus = &s
	}
	if rec.NewStatus != nil {
		s := rec.NewStatus.Storage()
		m.NewStatus = &s
	}
	if rec.PreviousAmount != nil {
		m.PreviousAmount = decimal.NewNullDecimal(*rec.PreviousAmount)
	}
	if rec.NewAmount != nil {
		m.NewAmount = decimal.NewNullDecimal(*rec.NewAmount)
	}
	return m
}

func methodFromStorage(s string) payment.Method {
	if m, err := payment.ParseMethod(s); err == nil {
		return m
	}
	return payment.Method(strings.ToUpper(strings.TrimSpace(s)))
}

func paymentStatusFromStorage(s string) payment.Status {
	if st, err := payment.ParseStatus(s); err == nil {
		return st
	}
	return payment.Status(strings.ToUpper(strings.TrimSpace(s)))
}
