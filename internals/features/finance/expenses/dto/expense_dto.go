package dto

import (
	"strings"

	"madrasa_backend/internals/features/finance/expenses/model"
	helper "madrasa_backend/internals/helpers"
	"madrasa_backend/internals/helpers/dbtime"
)

type CreateExpenseRequest struct {
	Title    string  `json:"expense_title" validate:"required,min=2,max=150"`
	Category string  `json:"expense_category" validate:"required,oneof=utility maintenance food stationery salary event other"`
	Amount   int64   `json:"expense_amount" validate:"required,gt=0"`
	Date     string  `json:"expense_date" validate:"required,datetime=2006-01-02"`
	PaidTo   *string `json:"expense_paid_to" validate:"omitempty,max=150"`
	Note     *string `json:"expense_note" validate:"omitempty,max=1000"`
}

type UpdateExpenseRequest struct {
	Title    *string `json:"expense_title" validate:"omitempty,min=2,max=150"`
	Category *string `json:"expense_category" validate:"omitempty,oneof=utility maintenance food stationery salary event other"`
	Amount   *int64  `json:"expense_amount" validate:"omitempty,gt=0"`
	Date     *string `json:"expense_date" validate:"omitempty,datetime=2006-01-02"`
	PaidTo   *string `json:"expense_paid_to" validate:"omitempty,max=150"`
	Note     *string `json:"expense_note" validate:"omitempty,max=1000"`
}

type CategoryTotal struct {
	Category string `json:"category" gorm:"column:category"`
	Amount   int64  `json:"amount" gorm:"column:total_amount"`
}

func (r CreateExpenseRequest) ToModel() (*model.ExpenseModel, error) {
	d, err := dbtime.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}
	return &model.ExpenseModel{
		ExpenseTitle:    strings.TrimSpace(r.Title),
		ExpenseCategory: r.Category,
		ExpenseAmount:   r.Amount,
		ExpenseDate:     d,
		ExpensePaidTo:   helper.TrimPtr(r.PaidTo),
		ExpenseNote:     helper.TrimPtr(r.Note),
	}, nil
}

func (r UpdateExpenseRequest) ApplyToModel(m *model.ExpenseModel) error {
	if r.Title != nil {
		m.ExpenseTitle = strings.TrimSpace(*r.Title)
	}
	if r.Category != nil {
		m.ExpenseCategory = *r.Category
	}
	if r.Amount != nil {
		m.ExpenseAmount = *r.Amount
	}
	if r.Date != nil {
		d, err := dbtime.ParseDate(*r.Date)
		if err != nil {
			return err
		}
		m.ExpenseDate = d
	}
	if r.PaidTo != nil {
		m.ExpensePaidTo = helper.TrimPtr(r.PaidTo)
	}
	if r.Note != nil {
		m.ExpenseNote = helper.TrimPtr(r.Note)
	}
	return nil
}
