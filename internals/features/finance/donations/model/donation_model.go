package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DonationStatusPending  = "pending"
	DonationStatusPaid     = "paid"
	DonationStatusExpired  = "expired"
	DonationStatusCanceled = "canceled"
)

const (
	PurposeGeneral      = "general"
	PurposeLillah       = "lillah"
	PurposeConstruction = "construction"
	PurposeZakat        = "zakat"
	PurposeSadaqah      = "sadaqah"
	PurposeOther        = "other"
)

const (
	MethodCash   = "cash"
	MethodBank   = "bank"
	MethodMobile = "mobile"
	MethodOnline = "online"
)

type DonationModel struct {
	DonationID         uuid.UUID  `json:"donation_id" gorm:"column:donation_id;type:uuid;primaryKey"`
	DonationDonorName  string     `json:"donation_donor_name" gorm:"column:donation_donor_name;type:varchar(150);not null"`
	DonationDonorPhone *string    `json:"donation_donor_phone,omitempty" gorm:"column:donation_donor_phone;type:varchar(30)"`
	DonationDonorEmail *string    `json:"donation_donor_email,omitempty" gorm:"column:donation_donor_email;type:varchar(255)"`
	DonationAmount     int64      `json:"donation_amount" gorm:"column:donation_amount;not null"`
	DonationPurpose    string     `json:"donation_purpose" gorm:"column:donation_purpose;type:varchar(20);not null;index"`
	DonationMethod     string     `json:"donation_method" gorm:"column:donation_method;type:varchar(20);not null"`
	DonationStatus     string     `json:"donation_status" gorm:"column:donation_status;type:varchar(20);not null;index"`
	DonationOrderID    string     `json:"donation_order_id" gorm:"column:donation_order_id;type:varchar(64);not null;uniqueIndex:uq_donations_order_id"`
	DonationMessage    *string    `json:"donation_message,omitempty" gorm:"column:donation_message;type:text"`
	DonationReceivedAt *time.Time `json:"donation_received_at,omitempty" gorm:"column:donation_received_at;index"`
	DonationRecordedBy *uuid.UUID `json:"donation_recorded_by,omitempty" gorm:"column:donation_recorded_by;type:uuid"`

	// midtrans
	DonationPaymentToken  *string    `json:"donation_payment_token,omitempty" gorm:"column:donation_payment_token;type:text"`
	DonationRedirectURL   *string    `json:"donation_redirect_url,omitempty" gorm:"column:donation_redirect_url;type:text"`
	DonationGatewayRef    *string    `json:"donation_gateway_ref,omitempty" gorm:"column:donation_gateway_ref;type:varchar(100)"`
	DonationReceiptSentAt *time.Time `json:"donation_receipt_sent_at,omitempty" gorm:"column:donation_receipt_sent_at"`

	DonationCreatedAt time.Time `json:"donation_created_at" gorm:"column:donation_created_at;autoCreateTime"`
	DonationUpdatedAt time.Time `json:"donation_updated_at" gorm:"column:donation_updated_at;autoUpdateTime"`
}

func (DonationModel) TableName() string { return "donations" }

func (m *DonationModel) BeforeCreate(tx *gorm.DB) error {
	if m.DonationID == uuid.Nil {
		m.DonationID = uuid.New()
	}
	if m.DonationStatus == "" {
		m.DonationStatus = DonationStatusPending
	}
	return nil
}
