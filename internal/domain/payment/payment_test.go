package payment

import (
	"testing"
	"time"

	"github.com/rentals/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	for in, want := range map[string]Method{
		"card":          MethodCard,
		"TARJETA":       MethodCard,
		"efectivo":      MethodCash,
		" Cash ":        MethodCash,
		"transferencia": MethodTransfer,
		"paypal":        MethodPaypal,
		"Stripe":        MethodStripe,
	} {
		got, err := ParseMethod(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseMethod("bitcoin")
	assert.True(t, shared.IsValidation(err))
}

func TestMethodStorage(t *testing.T) {
	assert.Equal(t, "tarjeta", MethodCard.Storage())
	assert.Equal(t, "efectivo", MethodCash.Storage())
	assert.Equal(t, "paypal", MethodPaypal.Storage())
}

func TestParseStatus(t *testing.T) {
	st, err := ParseStatus("completed")
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, st)
	assert.Equal(t, "completado", st.Storage())

	st, err = ParseStatus("pendiente")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, st)

	_, err = ParseStatus("refunded")
	assert.True(t, shared.IsValidation(err))
}

func TestNewPayment(t *testing.T) {
	t.Run("valid payment", func(t *testing.T) {
		paidAt := time.Date(2025, time.July, 1, 10, 0, 0, 0, time.UTC)
		p, err := NewPayment(5, decimal.RequireFromString("120.004"), "CASH", "PENDING", paidAt)

		require.NoError(t, err)
		assert.Equal(t, int64(5), p.ReservationID)
		assert.True(t, decimal.RequireFromString("120.00").Equal(p.Amount))
		assert.Equal(t, MethodCash, p.Method)
		assert.Equal(t, StatusPending, p.Status)
		assert.Equal(t, paidAt, p.PaidAt)
		assert.Empty(t, p.Reference)
		assert.True(t, p.IsNew())
	})

	t.Run("defaults payment time to now", func(t *testing.T) {
		before := time.Now()
		p, err := NewPayment(5, decimal.NewFromInt(10), "card", "completed", time.Time{})

		require.NoError(t, err)
		assert.False(t, p.PaidAt.Before(before))
		assert.True(t, p.IsCompleted())
	})

	t.Run("rejects missing reservation", func(t *testing.T) {
		_, err := NewPayment(0, decimal.NewFromInt(10), "card", "completed", time.Time{})
		assert.True(t, shared.IsValidation(err))
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := NewPayment(5, decimal.Zero, "card", "completed", time.Time{})
		assert.True(t, shared.IsValidation(err))

		_, err = NewPayment(5, decimal.NewFromInt(-3), "card", "completed", time.Time{})
		assert.True(t, shared.IsValidation(err))
	})

	amounts := []struct {
		name   string
		amount string
		msg    string
	}{
		{"sub-cent amount", "0.001", "greater than zero"},
		{"amount rounding to zero", "0.004", "greater than zero"},
		{"amount over column limit", "100000000", "cannot exceed 99999999.99"},
	}
	for _, tc := range amounts {
		t.Run("rejects "+tc.name, func(t *testing.T) {
			p, err := NewPayment(5, decimal.RequireFromString(tc.amount), "CASH", "PENDING", time.Time{})

			assert.Nil(t, p)
			require.Error(t, err)
			assert.True(t, shared.IsValidation(err))
			assert.Contains(t, err.Error(), tc.msg)
		})
	}

	t.Run("rejects unknown method", func(t *testing.T) {
		_, err := NewPayment(5, decimal.NewFromInt(10), "cheque", "completed", time.Time{})
		assert.Error(t, err)
	})
}

func TestPayment_Modify(t *testing.T) {
	p, err := NewPayment(5, decimal.NewFromInt(120), "CASH", "PENDING", time.Time{})
	require.NoError(t, err)
	amount, paidAt := p.Amount, p.PaidAt

	require.NoError(t, p.Modify("card", "completed"))
	assert.Equal(t, MethodCard, p.Method)
	assert.Equal(t, StatusCompleted, p.Status)
	assert.True(t, amount.Equal(p.Amount))
	assert.Equal(t, paidAt, p.PaidAt)

	err = p.Modify("card", "lost")
	assert.Error(t, err)
	assert.Equal(t, StatusCompleted, p.Status)
}

func TestHistoryRecords(t *testing.T) {
	p, err := NewPayment(5, decimal.NewFromInt(120), "CASH", "PENDING", time.Time{})
	require.NoError(t, err)
	p.ID = 9

	ins := NewInsertRecord(p)
	assert.Equal(t, ActionInsert, ins.Action)
	assert.Equal(t, int64(9), ins.PaymentID)
	assert.Nil(t, ins.PreviousStatus)
	assert.Nil(t, ins.PreviousAmount)
	assert.Equal(t, StatusPending, *ins.NewStatus)

	after := *p
	require.NoError(t, after.Modify("CASH", "COMPLETED"))
	upd := NewUpdateRecord(p, &after)
	assert.Equal(t, ActionUpdate, upd.Action)
	assert.Equal(t, StatusPending, *upd.PreviousStatus)
	assert.Equal(t, StatusCompleted, *upd.NewStatus)
	assert.True(t, upd.PreviousAmount.Equal(*upd.NewAmount))

	del := NewDeleteRecord(&after)
	assert.Equal(t, ActionDelete, del.Action)
	assert.Equal(t, StatusCompleted, *del.PreviousStatus)
	assert.Nil(t, del.NewStatus)
	assert.Nil(t, del.NewAmount)
}
