package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CategoryUtility     = "utility"
	CategoryMaintenance = "maintenance"
	CategoryFood        = "food"
	CategoryStationery  = "stationery"
	CategorySalary      = "salary"
	CategoryEvent       = "event"
	CategoryOther       = "other"
)

var Categories = []string{
	CategoryUtility, CategoryMaintenance, CategoryFood, CategoryStationery,
	CategorySalary, CategoryEvent, CategoryOther,
}

type ExpenseModel struct {
	ExpenseID         uuid.UUID  `json:"expense_id" gorm:"column:expense_id;type:uuid;primaryKey"`
	ExpenseTitle      string     `json:"expense_title" gorm:"column:expense_title;type:varchar(150);not null"`
	ExpenseCategory   string     `json:"expense_category" gorm:"column:expense_category;type:varchar(20);not null;index"`
	ExpenseAmount     int64      `json:"expense_amount" gorm:"column:expense_amount;not null"`
	ExpenseDate       time.Time  `json:"expense_date" gorm:"column:expense_date;type:date;not null;index"`
	ExpensePaidTo     *string    `json:"expense_paid_to,omitempty" gorm:"column:expense_paid_to;type:varchar(150)"`
	ExpenseNote       *string    `json:"expense_note,omitempty" gorm:"column:expense_note;type:text"`
	ExpenseRecordedBy *uuid.UUID `json:"expense_recorded_by,omitempty" gorm:"column:expense_recorded_by;type:uuid"`

	ExpenseCreatedAt time.Time `json:"expense_created_at" gorm:"column:expense_created_at;autoCreateTime"`
	ExpenseUpdatedAt time.Time `json:"expense_updated_at" gorm:"column:expense_updated_at;autoUpdateTime"`
}

func (ExpenseModel) TableName() string { return "expenses" }

func (m *ExpenseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ExpenseID == uuid.Nil {
		m.ExpenseID = uuid.New()
	}
	return nil
}
