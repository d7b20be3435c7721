package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helperXLSX "madrasa_backend/internals/helpers/xlsx"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestBuildFinanceReport(t *testing.T) {
	l := Ledger{
		Fees:      []Entry{{At: day(2025, 1, 5), Amount: 1000}, {At: day(2025, 3, 1), Amount: 500}},
		Donations: []Entry{{At: day(2025, 1, 20), Amount: 200}},
		Expenses:  []Entry{{At: day(2025, 1, 2), Amount: 300}, {At: day(2025, 2, 28), Amount: 50}},
		Salaries:  []Entry{{At: day(2025, 3, 1), Amount: 700}, {At: day(2024, 12, 15), Amount: 9999}},
	}

	rep := BuildFinanceReport(day(2025, 1, 1), day(2025, 3, 31), l)

	require.Len(t, rep.Months, 3)
	jan, feb, mar := rep.Months[0], rep.Months[1], rep.Months[2]

	assert.Equal(t, "2025-01", jan.Month)
	assert.Equal(t, int64(1200), jan.Income)
	assert.Equal(t, int64(300), jan.Expenditure)
	assert.Equal(t, int64(900), jan.Balance)

	assert.Equal(t, "2025-02", feb.Month)
	assert.Zero(t, feb.Income)
	assert.Equal(t, int64(-50), feb.Balance)

	assert.Equal(t, int64(500), mar.Fees)
	assert.Equal(t, int64(700), mar.Salaries)
	assert.Equal(t, int64(-200), mar.Balance)

	// entri di luar rentang diabaikan
	assert.Equal(t, int64(700), rep.Totals.Salaries)
	assert.Equal(t, int64(1700), rep.Totals.Income)
	assert.Equal(t, int64(1050), rep.Totals.Expenditure)
	assert.Equal(t, int64(650), rep.Totals.Balance)
	assert.Equal(t, "2025-01-01", rep.From)
	assert.Equal(t, "2025-03-31", rep.To)
}

func TestExportFinance(t *testing.T) {
	rep := BuildFinanceReport(day(2025, 1, 1), day(2025, 2, 1), Ledger{
		Fees: []Entry{{At: day(2025, 2, 1), Amount: 1500}},
	})
	rep.Currency = "BDT"

	buf, err := ExportFinance(rep)
	require.NoError(t, err)

	rows, err := helperXLSX.ReadRows(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Bulan", rows[0][0])
	assert.Equal(t, "2025-02", rows[2][0])
	assert.Equal(t, "1500", rows[2][1])
	assert.Equal(t, "TOTAL", rows[3][0])
}
