package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"madrasa_backend/internals/features/finance/gateways/model"
	"madrasa_backend/internals/features/finance/gateways/service"
)

// GatewayResponse: kredensial selalu dalam bentuk mask
type GatewayResponse struct {
	PaymentGatewayID          uuid.UUID      `json:"payment_gateway_id"`
	PaymentGatewayProvider    string         `json:"payment_gateway_provider"`
	PaymentGatewayDisplayName string         `json:"payment_gateway_display_name"`
	PaymentGatewayIsEnabled   bool           `json:"payment_gateway_is_enabled"`
	PaymentGatewayIsSandbox   bool           `json:"payment_gateway_is_sandbox"`
	PaymentGatewayMerchantID  string         `json:"payment_gateway_merchant_id"`
	PaymentGatewayAPIKey      string         `json:"payment_gateway_api_key"`
	PaymentGatewayAPISecret   string         `json:"payment_gateway_api_secret"`
	PaymentGatewayExtra       datatypes.JSON `json:"payment_gateway_extra,omitempty"`
	PaymentGatewayUpdatedAt   *time.Time     `json:"payment_gateway_updated_at,omitempty"`
}

func NewGatewayResponse(m model.PaymentGatewayModel) GatewayResponse {
	out := GatewayResponse{
		PaymentGatewayID:          m.PaymentGatewayID,
		PaymentGatewayProvider:    m.PaymentGatewayProvider,
		PaymentGatewayDisplayName: m.PaymentGatewayDisplayName,
		PaymentGatewayIsEnabled:   m.PaymentGatewayIsEnabled,
		PaymentGatewayIsSandbox:   m.PaymentGatewayIsSandbox,
		PaymentGatewayMerchantID:  service.MaskSecret(m.PaymentGatewayMerchantID),
		PaymentGatewayAPIKey:      service.MaskSecret(m.PaymentGatewayAPIKey),
		PaymentGatewayAPISecret:   service.MaskSecret(m.PaymentGatewayAPISecret),
		PaymentGatewayExtra:       m.PaymentGatewayExtra,
	}
	if !m.PaymentGatewayUpdatedAt.IsZero() {
		t := m.PaymentGatewayUpdatedAt
		out.PaymentGatewayUpdatedAt = &t
	}
	return out
}

type UpdateGatewayRequest struct {
	DisplayName *string         `json:"payment_gateway_display_name" validate:"omitempty,min=2,max=80"`
	IsEnabled   *bool           `json:"payment_gateway_is_enabled"`
	IsSandbox   *bool           `json:"payment_gateway_is_sandbox"`
	MerchantID  *string         `json:"payment_gateway_merchant_id" validate:"omitempty,max=255"`
	APIKey      *string         `json:"payment_gateway_api_key" validate:"omitempty,max=1024"`
	APISecret   *string         `json:"payment_gateway_api_secret" validate:"omitempty,max=1024"`
	Extra       *datatypes.JSON `json:"payment_gateway_extra"`
}

// ApplyToModel: toggle selalu dipakai, kredensial hanya kalau bukan kosong/mask
func (r UpdateGatewayRequest) ApplyToModel(m *model.PaymentGatewayModel) {
	if r.DisplayName != nil {
		m.PaymentGatewayDisplayName = *r.DisplayName
	}
	if r.IsEnabled != nil {
		m.PaymentGatewayIsEnabled = *r.IsEnabled
	}
	if r.IsSandbox != nil {
		m.PaymentGatewayIsSandbox = *r.IsSandbox
	}
	if service.ShouldOverwrite(r.MerchantID) {
		m.PaymentGatewayMerchantID = *r.MerchantID
	}
	if service.ShouldOverwrite(r.APIKey) {
		m.PaymentGatewayAPIKey = *r.APIKey
	}
	if service.ShouldOverwrite(r.APISecret) {
		m.PaymentGatewayAPISecret = *r.APISecret
	}
	if r.Extra != nil {
		m.PaymentGatewayExtra = *r.Extra
	}
}
