package dto

import (
	"errors"

	"github.com/google/uuid"

	"madrasa_backend/internals/features/finance/fees/model"
	helper "madrasa_backend/internals/helpers"
	"madrasa_backend/internals/helpers/dbtime"
)

type CreateFeeRequest struct {
	StudentID uuid.UUID `json:"fee_student_id" validate:"required"`
	FeeType   string    `json:"fee_type" validate:"required,oneof=admission monthly exam boarding other"`
	Month     *string   `json:"fee_month" validate:"omitempty,yyyymm"`
	Amount    int64     `json:"fee_amount" validate:"required,gt=0"`
	Discount  int64     `json:"fee_discount" validate:"gte=0,ltefield=Amount"`
	DueDate   string    `json:"fee_due_date" validate:"omitempty,datetime=2006-01-02"`
	Note      *string   `json:"fee_note" validate:"omitempty,max=500"`
}

type UpdateFeeRequest struct {
	Amount   *int64  `json:"fee_amount" validate:"omitempty,gt=0"`
	Discount *int64  `json:"fee_discount" validate:"omitempty,gte=0"`
	DueDate  *string `json:"fee_due_date" validate:"omitempty,datetime=2006-01-02"`
	Note     *string `json:"fee_note" validate:"omitempty,max=500"`
	// true → waived, false → kembali ke status turunan
	Waived *bool `json:"fee_waived"`
}

type PayFeeRequest struct {
	Amount int64  `json:"amount" validate:"required,gt=0"`
	Method string `json:"method" validate:"required,oneof=cash bank mobile online"`
}

type GenerateMonthlyRequest struct {
	Month  string `json:"month" validate:"required,yyyymm"`
	DueDay int    `json:"due_day" validate:"omitempty,min=1,max=28"`
}

// FeeResponse: fee + info siswa untuk tabel admin
type FeeResponse struct {
	model.FeeModel
	StudentName string  `json:"student_name" gorm:"column:student_name"`
	StudentCode string  `json:"student_code" gorm:"column:student_code"`
	ClassName   *string `json:"class_name,omitempty" gorm:"column:class_name"`
	Remaining   int64   `json:"fee_outstanding" gorm:"-"`
}

var ErrMonthRequired = errors.New("fee_month is required for monthly fee")

// ToModel: month hanya disimpan untuk fee bulanan
func (r CreateFeeRequest) ToModel() (*model.FeeModel, error) {
	if r.FeeType == model.FeeTypeMonthly && (r.Month == nil || *r.Month == "") {
		return nil, ErrMonthRequired
	}
	due, err := dbtime.ParseDatePtr(r.DueDate)
	if err != nil {
		return nil, err
	}
	m := &model.FeeModel{
		FeeStudentID: r.StudentID,
		FeeType:      r.FeeType,
		FeeAmount:    r.Amount,
		FeeDiscount:  r.Discount,
		FeeDueDate:   due,
		FeeNote:      helper.TrimPtr(r.Note),
	}
	if r.FeeType == model.FeeTypeMonthly && r.Month != nil {
		mm := *r.Month
		m.FeeMonth = &mm
	}
	return m, nil
}

func (r UpdateFeeRequest) ApplyToModel(m *model.FeeModel) error {
	if r.Amount != nil {
		m.FeeAmount = *r.Amount
	}
	if r.Discount != nil {
		m.FeeDiscount = *r.Discount
	}
	if r.DueDate != nil {
		due, err := dbtime.ParseDatePtr(*r.DueDate)
		if err != nil {
			return err
		}
		m.FeeDueDate = due
	}
	if r.Note != nil {
		m.FeeNote = helper.TrimPtr(r.Note)
	}
	return nil
}

func NewFeeResponse(m model.FeeModel) FeeResponse {
	return FeeResponse{FeeModel: m, Remaining: m.Outstanding()}
}
