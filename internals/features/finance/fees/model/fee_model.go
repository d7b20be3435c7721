package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	FeeTypeAdmission = "admission"
	FeeTypeMonthly   = "monthly"
	FeeTypeExam      = "exam"
	FeeTypeBoarding  = "boarding"
	FeeTypeOther     = "other"
)

const (
	FeeStatusUnpaid  = "unpaid"
	FeeStatusPartial = "partial"
	FeeStatusPaid    = "paid"
	FeeStatusOverdue = "overdue"
	FeeStatusWaived  = "waived"
)

const (
	PaymentMethodCash   = "cash"
	PaymentMethodBank   = "bank"
	PaymentMethodMobile = "mobile"
	PaymentMethodOnline = "online"
)

/*
FeeModel: tagihan per siswa.
Unique (student, type, month) menjaga satu SPP per bulan; fee non-bulanan
punya month NULL sehingga tidak saling bentrok.
*/
type FeeModel struct {
	FeeID         uuid.UUID  `json:"fee_id" gorm:"column:fee_id;type:uuid;primaryKey"`
	FeeStudentID  uuid.UUID  `json:"fee_student_id" gorm:"column:fee_student_id;type:uuid;not null;uniqueIndex:uq_fees_student_type_month;index"`
	FeeType       string     `json:"fee_type" gorm:"column:fee_type;type:varchar(20);not null;uniqueIndex:uq_fees_student_type_month"`
	FeeMonth      *string    `json:"fee_month,omitempty" gorm:"column:fee_month;type:varchar(7);uniqueIndex:uq_fees_student_type_month;index"`
	FeeAmount     int64      `json:"fee_amount" gorm:"column:fee_amount;not null"`
	FeeDiscount   int64      `json:"fee_discount" gorm:"column:fee_discount;not null"`
	FeePaidAmount int64      `json:"fee_paid_amount" gorm:"column:fee_paid_amount;not null"`
	FeeDueDate    *time.Time `json:"fee_due_date,omitempty" gorm:"column:fee_due_date;type:date;index"`
	FeeStatus     string     `json:"fee_status" gorm:"column:fee_status;type:varchar(20);not null;index"`

	FeePaidAt        *time.Time `json:"fee_paid_at,omitempty" gorm:"column:fee_paid_at"`
	FeePaymentMethod *string    `json:"fee_payment_method,omitempty" gorm:"column:fee_payment_method;type:varchar(20)"`
	FeeReceiptNo     *string    `json:"fee_receipt_no,omitempty" gorm:"column:fee_receipt_no;type:varchar(30);uniqueIndex:uq_fees_receipt_no"`
	FeeNote          *string    `json:"fee_note,omitempty" gorm:"column:fee_note;type:text"`

	FeeCreatedAt time.Time `json:"fee_created_at" gorm:"column:fee_created_at;autoCreateTime"`
	FeeUpdatedAt time.Time `json:"fee_updated_at" gorm:"column:fee_updated_at;autoUpdateTime"`
}

func (FeeModel) TableName() string { return "fees" }

func (m *FeeModel) BeforeCreate(tx *gorm.DB) error {
	if m.FeeID == uuid.Nil {
		m.FeeID = uuid.New()
	}
	if m.FeeStatus == "" {
		m.FeeStatus = FeeStatusUnpaid
	}
	return nil
}

// Payable: nominal setelah diskon
func (m *FeeModel) Payable() int64 {
	return m.FeeAmount - m.FeeDiscount
}

// Outstanding: sisa yang belum dibayar (tidak pernah negatif)
func (m *FeeModel) Outstanding() int64 {
	if m.FeeStatus == FeeStatusWaived {
		return 0
	}
	if rest := m.Payable() - m.FeePaidAmount; rest > 0 {
		return rest
	}
	return 0
}
