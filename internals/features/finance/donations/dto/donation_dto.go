package dto

import (
	"strings"
	"time"

	"madrasa_backend/internals/features/finance/donations/model"
	helper "madrasa_backend/internals/helpers"
)

// POST /api/public/donations
type OnlineDonationRequest struct {
	DonorName  string  `json:"donation_donor_name" validate:"required,min=2,max=150"`
	DonorPhone *string `json:"donation_donor_phone" validate:"omitempty,max=30"`
	DonorEmail *string `json:"donation_donor_email" validate:"omitempty,email"`
	Amount     int64   `json:"donation_amount" validate:"required,gt=0"`
	Purpose    string  `json:"donation_purpose" validate:"required,oneof=general lillah construction zakat sadaqah other"`
	Message    *string `json:"donation_message" validate:"omitempty,max=500"`
}

// POST /api/a/donations (donasi manual, langsung paid)
type CreateDonationRequest struct {
	DonorName   string  `json:"donation_donor_name" validate:"required,min=2,max=150"`
	DonorPhone  *string `json:"donation_donor_phone" validate:"omitempty,max=30"`
	DonorEmail  *string `json:"donation_donor_email" validate:"omitempty,email"`
	Amount      int64   `json:"donation_amount" validate:"required,gt=0"`
	Purpose     string  `json:"donation_purpose" validate:"required,oneof=general lillah construction zakat sadaqah other"`
	Method      string  `json:"donation_method" validate:"required,oneof=cash bank mobile"`
	ReceivedAt  string  `json:"donation_received_at" validate:"omitempty,datetime=2006-01-02"`
	Message     *string `json:"donation_message" validate:"omitempty,max=500"`
	SendReceipt bool    `json:"send_receipt"`
}

type UpdateDonationRequest struct {
	DonorName  *string `json:"donation_donor_name" validate:"omitempty,min=2,max=150"`
	DonorPhone *string `json:"donation_donor_phone" validate:"omitempty,max=30"`
	DonorEmail *string `json:"donation_donor_email" validate:"omitempty,email"`
	Amount     *int64  `json:"donation_amount" validate:"omitempty,gt=0"`
	Purpose    *string `json:"donation_purpose" validate:"omitempty,oneof=general lillah construction zakat sadaqah other"`
	Method     *string `json:"donation_method" validate:"omitempty,oneof=cash bank mobile online"`
	Status     *string `json:"donation_status" validate:"omitempty,oneof=pending paid expired canceled"`
	Message    *string `json:"donation_message" validate:"omitempty,max=500"`
}

// CheckoutResponse: yang dibutuhkan frontend untuk membuka Snap
type CheckoutResponse struct {
	DonationID  string `json:"donation_id"`
	OrderID     string `json:"order_id"`
	Amount      int64  `json:"amount"`
	SnapToken   string `json:"snap_token"`
	RedirectURL string `json:"redirect_url"`
}

type PurposeTotal struct {
	Purpose string `json:"purpose" gorm:"column:purpose"`
	Count   int64  `json:"count" gorm:"column:total_count"`
	Amount  int64  `json:"amount" gorm:"column:total_amount"`
}

type DonationSummary struct {
	From      string         `json:"from"`
	To        string         `json:"to"`
	ByPurpose []PurposeTotal `json:"by_purpose"`
	Total     int64          `json:"total"`
	Count     int64          `json:"count"`
}

func (r OnlineDonationRequest) ToModel(orderID string) *model.DonationModel {
	return &model.DonationModel{
		DonationDonorName:  strings.TrimSpace(r.DonorName),
		DonationDonorPhone: helper.TrimPtr(r.DonorPhone),
		DonationDonorEmail: helper.TrimPtr(r.DonorEmail),
		DonationAmount:     r.Amount,
		DonationPurpose:    r.Purpose,
		DonationMethod:     model.MethodOnline,
		DonationStatus:     model.DonationStatusPending,
		DonationOrderID:    orderID,
		DonationMessage:    helper.TrimPtr(r.Message),
	}
}

func (r CreateDonationRequest) ToModel(orderID string, receivedAt time.Time) *model.DonationModel {
	t := receivedAt
	return &model.DonationModel{
		DonationDonorName:  strings.TrimSpace(r.DonorName),
		DonationDonorPhone: helper.TrimPtr(r.DonorPhone),
		DonationDonorEmail: helper.TrimPtr(r.DonorEmail),
		DonationAmount:     r.Amount,
		DonationPurpose:    r.Purpose,
		DonationMethod:     r.Method,
		DonationStatus:     model.DonationStatusPaid,
		DonationOrderID:    orderID,
		DonationMessage:    helper.TrimPtr(r.Message),
		DonationReceivedAt: &t,
	}
}

// ApplyToModel: ganti ke paid mengisi received_at kalau belum ada
func (r UpdateDonationRequest) ApplyToModel(m *model.DonationModel, now time.Time) {
	if r.DonorName != nil {
		m.DonationDonorName = strings.TrimSpace(*r.DonorName)
	}
	if r.DonorPhone != nil {
		m.DonationDonorPhone = helper.TrimPtr(r.DonorPhone)
	}
	if r.DonorEmail != nil {
		m.DonationDonorEmail = helper.TrimPtr(r.DonorEmail)
	}
	if r.Amount != nil {
		m.DonationAmount = *r.Amount
	}
	if r.Purpose != nil {
		m.DonationPurpose = *r.Purpose
	}
	if r.Method != nil {
		m.DonationMethod = *r.Method
	}
	if r.Message != nil {
		m.DonationMessage = helper.TrimPtr(r.Message)
	}
	if r.Status != nil {
		m.DonationStatus = *r.Status
		if m.DonationStatus == model.DonationStatusPaid && m.DonationReceivedAt == nil {
			t := now
			m.DonationReceivedAt = &t
		}
	}
}
