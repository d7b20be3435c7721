package dto

type DashboardCounts struct {
	ActiveStudents int64 `json:"active_students"`
	ActiveTeachers int64 `json:"active_teachers"`
	ActiveClasses  int64 `json:"active_classes"`
	LillahStudents int64 `json:"lillah_students"`
	Alumni         int64 `json:"alumni"`
}

type DashboardFinance struct {
	Month           string `json:"month"`
	FeesCollected   int64  `json:"fees_collected"`
	FeesOutstanding int64  `json:"fees_outstanding"`
	DonationsPaid   int64  `json:"donations_paid"`
	ExpensesTotal   int64  `json:"expenses_total"`
	SalariesPaid    int64  `json:"salaries_paid"`
	SalariesPending int64  `json:"salaries_pending"`
}

type DashboardAttendance struct {
	Date   string  `json:"date"`
	Marked int     `json:"marked"`
	Rate   float64 `json:"rate"`
}

type DashboardResponse struct {
	Counts     DashboardCounts     `json:"counts"`
	Finance    DashboardFinance    `json:"finance"`
	Attendance DashboardAttendance `json:"attendance"`
	Currency   string              `json:"currency"`
}

// MonthlyFinance: satu baris laporan keuangan per bulan
type MonthlyFinance struct {
	Month       string `json:"month"`
	Fees        int64  `json:"fees"`
	Donations   int64  `json:"donations"`
	Income      int64  `json:"income"`
	Expenses    int64  `json:"expenses"`
	Salaries    int64  `json:"salaries"`
	Expenditure int64  `json:"expenditure"`
	Balance     int64  `json:"balance"`
}

type FinanceReport struct {
	From     string           `json:"from"`
	To       string           `json:"to"`
	Currency string           `json:"currency"`
	Months   []MonthlyFinance `json:"months"`
	Totals   MonthlyFinance   `json:"totals"`
}
