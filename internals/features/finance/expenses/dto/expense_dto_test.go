package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"madrasa_backend/internals/features/finance/expenses/model"
)

func TestCreateExpenseRequest_ToModel(t *testing.T) {
	paidTo := "  PLN  "
	req := CreateExpenseRequest{
		Title:    " Listrik Oktober ",
		Category: model.CategoryUtility,
		Amount:   450000,
		Date:     "2025-10-05",
		PaidTo:   &paidTo,
	}

	m, err := req.ToModel()
	require.NoError(t, err)
	assert.Equal(t, "Listrik Oktober", m.ExpenseTitle)
	assert.Equal(t, int64(450000), m.ExpenseAmount)
	assert.Equal(t, time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC), m.ExpenseDate)
	require.NotNil(t, m.ExpensePaidTo)
	assert.Equal(t, "PLN", *m.ExpensePaidTo)
	assert.Nil(t, m.ExpenseNote)
}

func TestCreateExpenseRequest_ToModel_BadDate(t *testing.T) {
	_, err := CreateExpenseRequest{Title: "x", Category: model.CategoryOther, Amount: 1, Date: "05/10/2025"}.ToModel()
	assert.Error(t, err)
}

func TestUpdateExpenseRequest_ApplyToModel(t *testing.T) {
	m := &model.ExpenseModel{
		ExpenseTitle:    "Kapur",
		ExpenseCategory: model.CategoryStationery,
		ExpenseAmount:   10000,
		ExpenseDate:     time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
	}
	amount := int64(12500)
	date := "2025-01-03"
	require.NoError(t, UpdateExpenseRequest{Amount: &amount, Date: &date}.ApplyToModel(m))

	assert.Equal(t, "Kapur", m.ExpenseTitle)
	assert.Equal(t, int64(12500), m.ExpenseAmount)
	assert.Equal(t, 3, m.ExpenseDate.Day())

	bad := "kemarin"
	assert.Error(t, UpdateExpenseRequest{Date: &bad}.ApplyToModel(m))
}
