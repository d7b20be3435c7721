package service

import (
	"bytes"

	"madrasa_backend/internals/features/reports/dto"
	helperXLSX "madrasa_backend/internals/helpers/xlsx"
)

var financeHeaders = []string{"Bulan", "SPP/Biaya", "Donasi", "Pemasukan", "Pengeluaran", "Gaji", "Total Keluar", "Saldo"}

func financeRow(r dto.MonthlyFinance) []any {
	return []any{r.Month, r.Fees, r.Donations, r.Income, r.Expenses, r.Salaries, r.Expenditure, r.Balance}
}

// ExportFinance: sheet "Keuangan" + baris total di akhir
func ExportFinance(rep dto.FinanceReport) (*bytes.Buffer, error) {
	rows := make([][]any, 0, len(rep.Months)+1)
	for _, m := range rep.Months {
		rows = append(rows, financeRow(m))
	}
	total := financeRow(rep.Totals)
	total[0] = "TOTAL"
	rows = append(rows, total)

	return helperXLSX.Build(
		helperXLSX.Sheet{Name: "Keuangan", Headers: financeHeaders, Rows: rows},
		helperXLSX.Sheet{
			Name:    "Info",
			Headers: []string{"Dari", "Sampai", "Mata Uang"},
			Rows:    [][]any{{rep.From, rep.To, rep.Currency}},
		},
	)
}
