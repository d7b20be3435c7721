package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SalaryStatusPending = "pending"
	SalaryStatusPaid    = "paid"
)

// SalaryModel: lembar gaji guru per bulan
type SalaryModel struct {
	SalaryID          uuid.UUID  `json:"salary_id" gorm:"column:salary_id;type:uuid;primaryKey"`
	SalaryTeacherID   uuid.UUID  `json:"salary_teacher_id" gorm:"column:salary_teacher_id;type:uuid;not null;uniqueIndex:uq_salaries_teacher_month"`
	SalaryMonth       string     `json:"salary_month" gorm:"column:salary_month;type:varchar(7);not null;uniqueIndex:uq_salaries_teacher_month;index"`
	SalaryBasicAmount int64      `json:"salary_basic_amount" gorm:"column:salary_basic_amount;not null"`
	SalaryBonus       int64      `json:"salary_bonus" gorm:"column:salary_bonus;not null"`
	SalaryDeduction   int64      `json:"salary_deduction" gorm:"column:salary_deduction;not null"`
	SalaryNetAmount   int64      `json:"salary_net_amount" gorm:"column:salary_net_amount;not null"`
	SalaryStatus      string     `json:"salary_status" gorm:"column:salary_status;type:varchar(20);not null;index"`
	SalaryPaidAt      *time.Time `json:"salary_paid_at,omitempty" gorm:"column:salary_paid_at"`
	SalaryPayMethod   *string    `json:"salary_payment_method,omitempty" gorm:"column:salary_payment_method;type:varchar(20)"`
	SalaryNote        *string    `json:"salary_note,omitempty" gorm:"column:salary_note;type:text"`

	SalaryCreatedAt time.Time `json:"salary_created_at" gorm:"column:salary_created_at;autoCreateTime"`
	SalaryUpdatedAt time.Time `json:"salary_updated_at" gorm:"column:salary_updated_at;autoUpdateTime"`
}

func (SalaryModel) TableName() string { return "salaries" }

func (m *SalaryModel) BeforeCreate(tx *gorm.DB) error {
	if m.SalaryID == uuid.Nil {
		m.SalaryID = uuid.New()
	}
	if m.SalaryStatus == "" {
		m.SalaryStatus = SalaryStatusPending
	}
	return nil
}
