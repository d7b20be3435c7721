package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ProviderMidtrans = "midtrans"
	ProviderBkash    = "bkash"
	ProviderNagad    = "nagad"
	ProviderRocket   = "rocket"
	ProviderStripe   = "stripe"
	ProviderBank     = "bank"
)

var Providers = []string{ProviderMidtrans, ProviderBkash, ProviderNagad, ProviderRocket, ProviderStripe, ProviderBank}

var providerNames = map[string]string{
	ProviderMidtrans: "Midtrans",
	ProviderBkash:    "bKash",
	ProviderNagad:    "Nagad",
	ProviderRocket:   "Rocket",
	ProviderStripe:   "Stripe",
	ProviderBank:     "Bank Transfer",
}

func IsValidProvider(p string) bool {
	_, ok := providerNames[p]
	return ok
}

func DisplayName(p string) string {
	if n, ok := providerNames[p]; ok {
		return n
	}
	return p
}

// PaymentGatewayModel: satu baris per provider. Kredensial tidak pernah keluar tanpa mask.
type PaymentGatewayModel struct {
	PaymentGatewayID          uuid.UUID      `json:"payment_gateway_id" gorm:"column:payment_gateway_id;type:uuid;primaryKey"`
	PaymentGatewayProvider    string         `json:"payment_gateway_provider" gorm:"column:payment_gateway_provider;type:varchar(20);not null;uniqueIndex:uq_payment_gateways_provider"`
	PaymentGatewayDisplayName string         `json:"payment_gateway_display_name" gorm:"column:payment_gateway_display_name;type:varchar(80);not null"`
	PaymentGatewayIsEnabled   bool           `json:"payment_gateway_is_enabled" gorm:"column:payment_gateway_is_enabled;not null"`
	PaymentGatewayIsSandbox   bool           `json:"payment_gateway_is_sandbox" gorm:"column:payment_gateway_is_sandbox;not null"`
	PaymentGatewayMerchantID  string         `json:"-" gorm:"column:payment_gateway_merchant_id;type:text;not null"`
	PaymentGatewayAPIKey      string         `json:"-" gorm:"column:payment_gateway_api_key;type:text;not null"`
	PaymentGatewayAPISecret   string         `json:"-" gorm:"column:payment_gateway_api_secret;type:text;not null"`
	PaymentGatewayExtra       datatypes.JSON `json:"payment_gateway_extra,omitempty" gorm:"column:payment_gateway_extra"`

	PaymentGatewayCreatedAt time.Time `json:"payment_gateway_created_at" gorm:"column:payment_gateway_created_at;autoCreateTime"`
	PaymentGatewayUpdatedAt time.Time `json:"payment_gateway_updated_at" gorm:"column:payment_gateway_updated_at;autoUpdateTime"`
}

func (PaymentGatewayModel) TableName() string { return "payment_gateways" }

func (m *PaymentGatewayModel) BeforeCreate(tx *gorm.DB) error {
	if m.PaymentGatewayID == uuid.Nil {
		m.PaymentGatewayID = uuid.New()
	}
	return nil
}

// NewDefault: baris kosong (nonaktif, sandbox) untuk provider yang belum pernah disimpan
func NewDefault(provider string) PaymentGatewayModel {
	return PaymentGatewayModel{
		PaymentGatewayProvider:    provider,
		PaymentGatewayDisplayName: DisplayName(provider),
		PaymentGatewayIsSandbox:   true,
	}
}
