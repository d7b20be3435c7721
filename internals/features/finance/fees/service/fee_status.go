package service

import (
	"errors"
	"time"

	"madrasa_backend/internals/features/finance/fees/model"
	"madrasa_backend/internals/helpers/dbtime"
)

var (
	ErrFeeWaived         = errors.New("tagihan sudah dibebaskan (waived)")
	ErrFeeAlreadyPaid    = errors.New("tagihan sudah lunas")
	ErrInvalidAmount     = errors.New("nominal pembayaran harus lebih dari 0")
	ErrExceedOutstanding = errors.New("nominal melebihi sisa tagihan")
)

/*
DeriveStatus:
  - waived tetap waived (hanya diubah manual)
  - paid_amount >= amount - discount → paid
  - paid_amount > 0 → partial
  - lewat due_date → overdue, selain itu unpaid
*/
func DeriveStatus(m *model.FeeModel, today time.Time) string {
	if m.FeeStatus == model.FeeStatusWaived {
		return model.FeeStatusWaived
	}
	if m.FeePaidAmount >= m.Payable() {
		return model.FeeStatusPaid
	}
	if m.FeePaidAmount > 0 {
		return model.FeeStatusPartial
	}
	if m.FeeDueDate != nil && m.FeeDueDate.Before(today) {
		return model.FeeStatusOverdue
	}
	return model.FeeStatusUnpaid
}

// ApplyPayment menambah pembayaran lalu hitung ulang status. Tidak menyentuh DB.
func ApplyPayment(m *model.FeeModel, amount int64, method string, now time.Time) error {
	if m.FeeStatus == model.FeeStatusWaived {
		return ErrFeeWaived
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}
	rest := m.Outstanding()
	if rest == 0 {
		return ErrFeeAlreadyPaid
	}
	if amount > rest {
		return ErrExceedOutstanding
	}

	m.FeePaidAmount += amount
	m.FeePaymentMethod = &method
	t := now
	m.FeePaidAt = &t
	m.FeeStatus = DeriveStatus(m, dbtime.DateOnly(now))
	return nil
}
