package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"madrasa_backend/internals/features/finance/fees/model"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestDeriveStatus(t *testing.T) {
	due := day("2026-03-10")
	today := day("2026-03-15")

	cases := []struct {
		name   string
		fee    model.FeeModel
		expect string
	}{
		{"lunas setelah diskon", model.FeeModel{FeeAmount: 1000, FeeDiscount: 200, FeePaidAmount: 800}, model.FeeStatusPaid},
		{"sebagian", model.FeeModel{FeeAmount: 1000, FeePaidAmount: 1}, model.FeeStatusPartial},
		{"sebagian lewat jatuh tempo", model.FeeModel{FeeAmount: 1000, FeePaidAmount: 500, FeeDueDate: &due}, model.FeeStatusPartial},
		{"belum bayar", model.FeeModel{FeeAmount: 1000}, model.FeeStatusUnpaid},
		{"lewat jatuh tempo", model.FeeModel{FeeAmount: 1000, FeeDueDate: &due}, model.FeeStatusOverdue},
		{"waived tetap", model.FeeModel{FeeAmount: 1000, FeeStatus: model.FeeStatusWaived}, model.FeeStatusWaived},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := tc.fee
			assert.Equal(t, tc.expect, DeriveStatus(&f, today))
		})
	}

	// jatuh tempo hari ini belum overdue
	f := model.FeeModel{FeeAmount: 1000, FeeDueDate: &today}
	assert.Equal(t, model.FeeStatusUnpaid, DeriveStatus(&f, today))
}

func TestApplyPayment(t *testing.T) {
	now := time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC)
	f := model.FeeModel{FeeAmount: 1500, FeeDiscount: 500, FeeStatus: model.FeeStatusUnpaid}

	require.NoError(t, ApplyPayment(&f, 400, model.PaymentMethodCash, now))
	assert.Equal(t, int64(400), f.FeePaidAmount)
	assert.Equal(t, model.FeeStatusPartial, f.FeeStatus)
	assert.Equal(t, int64(600), f.Outstanding())

	assert.ErrorIs(t, ApplyPayment(&f, 601, model.PaymentMethodCash, now), ErrExceedOutstanding)
	assert.ErrorIs(t, ApplyPayment(&f, 0, model.PaymentMethodCash, now), ErrInvalidAmount)

	require.NoError(t, ApplyPayment(&f, 600, model.PaymentMethodBank, now))
	assert.Equal(t, model.FeeStatusPaid, f.FeeStatus)
	assert.Equal(t, "bank", *f.FeePaymentMethod)
	assert.ErrorIs(t, ApplyPayment(&f, 1, model.PaymentMethodCash, now), ErrFeeAlreadyPaid)

	w := model.FeeModel{FeeAmount: 100, FeeStatus: model.FeeStatusWaived}
	assert.ErrorIs(t, ApplyPayment(&w, 10, model.PaymentMethodCash, now), ErrFeeWaived)
	assert.Equal(t, int64(0), w.Outstanding())
}
