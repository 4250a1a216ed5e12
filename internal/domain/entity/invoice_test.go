package entity

import (
	"testing"
	"time"

	"github.com/invinci009/rmw/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPayment_FullPayment(t *testing.T) {
	inv := &Invoice{FinalAmount: 2950, AmountPaid: 2950, PaymentStatus: enum.PaymentStatusPending}
	now := time.Now()

	inv.ApplyPayment(now)

	assert.Equal(t, enum.PaymentStatusPaid, inv.PaymentStatus)
	assert.Equal(t, 0.0, inv.BalanceDue)
	require.NotNil(t, inv.PaidAt)
	assert.Equal(t, now, *inv.PaidAt)
}

func TestApplyPayment_PartialPayment(t *testing.T) {
	inv := &Invoice{FinalAmount: 2950, AmountPaid: 1000, PaymentStatus: enum.PaymentStatusPending}

	inv.ApplyPayment(time.Now())

	assert.Equal(t, enum.PaymentStatusPartial, inv.PaymentStatus)
	assert.Equal(t, 1950.0, inv.BalanceDue)
	assert.Nil(t, inv.PaidAt)
}

func TestApplyPayment_ZeroStaysPending(t *testing.T) {
	inv := &Invoice{FinalAmount: 2950, AmountPaid: 0, PaymentStatus: enum.PaymentStatusPending}

	inv.ApplyPayment(time.Now())

	assert.Equal(t, enum.PaymentStatusPending, inv.PaymentStatus)
	assert.Equal(t, 2950.0, inv.BalanceDue)
}

func TestApplyPayment_DerivedStatusWins(t *testing.T) {
	// Caller set "pending" but the amount covers the invoice in full
	inv := &Invoice{FinalAmount: 500, AmountPaid: 500, PaymentStatus: enum.PaymentStatusPending}

	inv.ApplyPayment(time.Now())

	assert.Equal(t, enum.PaymentStatusPaid, inv.PaymentStatus)
}

func TestApplyPayment_PaidAtSetOnce(t *testing.T) {
	first := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	inv := &Invoice{FinalAmount: 1000, AmountPaid: 1000}

	inv.ApplyPayment(first)
	require.NotNil(t, inv.PaidAt)

	// Later correction to a partial amount must not clear the stamp
	inv.AmountPaid = 600
	inv.ApplyPayment(first.Add(time.Hour))

	assert.Equal(t, enum.PaymentStatusPartial, inv.PaymentStatus)
	assert.Equal(t, 400.0, inv.BalanceDue)
	assert.Equal(t, first, *inv.PaidAt)
}

func TestApplyPayment_Overpayment(t *testing.T) {
	inv := &Invoice{FinalAmount: 1000, AmountPaid: 1200}

	inv.ApplyPayment(time.Now())

	assert.Equal(t, enum.PaymentStatusPaid, inv.PaymentStatus)
	assert.Equal(t, -200.0, inv.BalanceDue)
}
