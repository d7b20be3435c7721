package service

import (
	"time"

	"gorm.io/gorm"

	"madrasa_backend/internals/features/reports/dto"
	"madrasa_backend/internals/helpers/dbtime"
)

// Entry: satu transaksi (tanggal + nominal) yang sudah difilter di DB
type Entry struct {
	At     time.Time `gorm:"column:at"`
	Amount int64     `gorm:"column:amount"`
}

type Ledger struct {
	Fees      []Entry
	Donations []Entry
	Expenses  []Entry
	Salaries  []Entry
}

/*
BuildFinanceReport: satu kali jalan per jenis transaksi, dikelompokkan ke bulan
(zona madrasah). Bulan tanpa transaksi tetap muncul dengan nol.
*/
func BuildFinanceReport(from, to time.Time, l Ledger) dto.FinanceReport {
	months := dbtime.MonthsBetween(from, to)
	idx := make(map[string]int, len(months))
	rows := make([]dto.MonthlyFinance, len(months))
	for i, m := range months {
		idx[m] = i
		rows[i].Month = m
	}

	// kolom date disimpan UTC midnight, jangan digeser zona
	add := func(entries []Entry, dateOnly bool, pick func(r *dto.MonthlyFinance) *int64) {
		for _, e := range entries {
			at := e.At
			if !dateOnly {
				at = at.In(dbtime.Location())
			}
			i, ok := idx[dbtime.MonthKey(at)]
			if !ok {
				continue
			}
			*pick(&rows[i]) += e.Amount
		}
	}
	add(l.Fees, false, func(r *dto.MonthlyFinance) *int64 { return &r.Fees })
	add(l.Donations, false, func(r *dto.MonthlyFinance) *int64 { return &r.Donations })
	add(l.Expenses, true, func(r *dto.MonthlyFinance) *int64 { return &r.Expenses })
	add(l.Salaries, false, func(r *dto.MonthlyFinance) *int64 { return &r.Salaries })

	out := dto.FinanceReport{
		From:   dbtime.FormatDate(from),
		To:     dbtime.FormatDate(to),
		Months: rows,
		Totals: dto.MonthlyFinance{Month: "total"},
	}
	for i := range rows {
		r := &rows[i]
		r.Income = r.Fees + r.Donations
		r.Expenditure = r.Expenses + r.Salaries
		r.Balance = r.Income - r.Expenditure

		out.Totals.Fees += r.Fees
		out.Totals.Donations += r.Donations
		out.Totals.Income += r.Income
		out.Totals.Expenses += r.Expenses
		out.Totals.Salaries += r.Salaries
		out.Totals.Expenditure += r.Expenditure
		out.Totals.Balance += r.Balance
	}
	return out
}

/*
LoadLedger: ambil transaksi [from, toExclusive).
Fee dihitung dari fee_paid_amount pada tanggal pembayaran terakhir (fee_paid_at),
donasi paid pada received_at, gaji paid pada paid_at (net).
*/
func LoadLedger(db *gorm.DB, from, toExclusive time.Time) (Ledger, error) {
	var l Ledger
	if err := db.Table("fees").
		Select("fee_paid_at AS at, fee_paid_amount AS amount").
		Where("fee_paid_amount > 0 AND fee_paid_at >= ? AND fee_paid_at < ?", from, toExclusive).
		Scan(&l.Fees).Error; err != nil {
		return l, err
	}
	if err := db.Table("donations").
		Select("donation_received_at AS at, donation_amount AS amount").
		Where("donation_status = ? AND donation_received_at >= ? AND donation_received_at < ?", "paid", from, toExclusive).
		Scan(&l.Donations).Error; err != nil {
		return l, err
	}
	if err := db.Table("expenses").
		Select("expense_date AS at, expense_amount AS amount").
		Where("expense_date >= ? AND expense_date < ?", from, toExclusive).
		Scan(&l.Expenses).Error; err != nil {
		return l, err
	}
	if err := db.Table("salaries").
		Select("salary_paid_at AS at, salary_net_amount AS amount").
		Where("salary_status = ? AND salary_paid_at >= ? AND salary_paid_at < ?", "paid", from, toExclusive).
		Scan(&l.Salaries).Error; err != nil {
		return l, err
	}
	return l, nil
}
