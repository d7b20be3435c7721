package dto

import (
	"github.com/google/uuid"

	"madrasa_backend/internals/features/finance/salaries/model"
	helper "madrasa_backend/internals/helpers"
)

type CreateSalaryRequest struct {
	TeacherID   uuid.UUID `json:"salary_teacher_id" validate:"required"`
	Month       string    `json:"salary_month" validate:"required,yyyymm"`
	BasicAmount int64     `json:"salary_basic_amount" validate:"gte=0"`
	Bonus       int64     `json:"salary_bonus" validate:"gte=0"`
	Deduction   int64     `json:"salary_deduction" validate:"gte=0"`
	Note        *string   `json:"salary_note" validate:"omitempty,max=500"`
}

type UpdateSalaryRequest struct {
	BasicAmount *int64  `json:"salary_basic_amount" validate:"omitempty,gte=0"`
	Bonus       *int64  `json:"salary_bonus" validate:"omitempty,gte=0"`
	Deduction   *int64  `json:"salary_deduction" validate:"omitempty,gte=0"`
	Note        *string `json:"salary_note" validate:"omitempty,max=500"`
}

type PaySalaryRequest struct {
	Method string `json:"method" validate:"required,oneof=cash bank mobile"`
}

type GenerateSalaryRequest struct {
	Month string `json:"month" validate:"required,yyyymm"`
}

type SalaryResponse struct {
	model.SalaryModel
	TeacherName         string `json:"teacher_name" gorm:"column:teacher_name"`
	TeacherEmployeeCode string `json:"teacher_employee_code" gorm:"column:teacher_employee_code"`
}

func (r CreateSalaryRequest) ToModel() *model.SalaryModel {
	return &model.SalaryModel{
		SalaryTeacherID:   r.TeacherID,
		SalaryMonth:       r.Month,
		SalaryBasicAmount: r.BasicAmount,
		SalaryBonus:       r.Bonus,
		SalaryDeduction:   r.Deduction,
		SalaryStatus:      model.SalaryStatusPending,
		SalaryNote:        helper.TrimPtr(r.Note),
	}
}

func (r UpdateSalaryRequest) ApplyToModel(m *model.SalaryModel) {
	if r.BasicAmount != nil {
		m.SalaryBasicAmount = *r.BasicAmount
	}
	if r.Bonus != nil {
		m.SalaryBonus = *r.Bonus
	}
	if r.Deduction != nil {
		m.SalaryDeduction = *r.Deduction
	}
	if r.Note != nil {
		m.SalaryNote = helper.TrimPtr(r.Note)
	}
}
