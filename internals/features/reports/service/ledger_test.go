package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"madrasa_backend/internals/databases/testdb"
	donationModel "madrasa_backend/internals/features/finance/donations/model"
	expenseModel "madrasa_backend/internals/features/finance/expenses/model"
	feeModel "madrasa_backend/internals/features/finance/fees/model"
	salaryModel "madrasa_backend/internals/features/finance/salaries/model"
)

func TestLoadLedgerFiltersByStatusAndRange(t *testing.T) {
	db := testdb.New(t,
		&feeModel.FeeModel{}, &donationModel.DonationModel{},
		&expenseModel.ExpenseModel{}, &salaryModel.SalaryModel{},
	)

	inRange := day(2025, 2, 10)
	outRange := day(2025, 4, 2)

	require.NoError(t, db.Create(&[]feeModel.FeeModel{
		{FeeStudentID: uuid.New(), FeeType: feeModel.FeeTypeExam, FeeAmount: 500, FeePaidAmount: 500, FeeStatus: feeModel.FeeStatusPaid, FeePaidAt: &inRange},
		{FeeStudentID: uuid.New(), FeeType: feeModel.FeeTypeExam, FeeAmount: 500, FeePaidAmount: 0, FeeStatus: feeModel.FeeStatusUnpaid},
		{FeeStudentID: uuid.New(), FeeType: feeModel.FeeTypeExam, FeeAmount: 500, FeePaidAmount: 200, FeeStatus: feeModel.FeeStatusPartial, FeePaidAt: &outRange},
	}).Error)

	require.NoError(t, db.Create(&[]donationModel.DonationModel{
		{DonationDonorName: "A", DonationAmount: 1000, DonationPurpose: "general", DonationMethod: "cash", DonationStatus: "paid", DonationOrderID: "DON-1", DonationReceivedAt: &inRange},
		{DonationDonorName: "B", DonationAmount: 7000, DonationPurpose: "general", DonationMethod: "online", DonationStatus: "pending", DonationOrderID: "DON-2"},
	}).Error)

	require.NoError(t, db.Create(&[]expenseModel.ExpenseModel{
		{ExpenseTitle: "Listrik", ExpenseCategory: "utility", ExpenseAmount: 300, ExpenseDate: time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)},
		{ExpenseTitle: "Cat", ExpenseCategory: "maintenance", ExpenseAmount: 900, ExpenseDate: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)},
	}).Error)

	require.NoError(t, db.Create(&[]salaryModel.SalaryModel{
		{SalaryTeacherID: uuid.New(), SalaryMonth: "2025-02", SalaryNetAmount: 4000, SalaryStatus: "paid", SalaryPaidAt: &inRange},
		{SalaryTeacherID: uuid.New(), SalaryMonth: "2025-02", SalaryNetAmount: 4500, SalaryStatus: "pending"},
	}).Error)

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	l, err := LoadLedger(db, from, to.AddDate(0, 0, 1))
	require.NoError(t, err)

	require.Len(t, l.Fees, 1)
	assert.Equal(t, int64(500), l.Fees[0].Amount)
	require.Len(t, l.Donations, 1)
	assert.Equal(t, int64(1000), l.Donations[0].Amount)
	require.Len(t, l.Expenses, 1)
	assert.Equal(t, int64(300), l.Expenses[0].Amount)
	require.Len(t, l.Salaries, 1)
	assert.Equal(t, int64(4000), l.Salaries[0].Amount)

	rep := BuildFinanceReport(from, to, l)
	assert.Equal(t, int64(1500), rep.Totals.Income)
	assert.Equal(t, int64(4300), rep.Totals.Expenditure)
	assert.Equal(t, int64(300), rep.Months[0].Expenses)
}
