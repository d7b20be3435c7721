package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"madrasa_backend/internals/features/finance/gateways/model"
)

func TestApplyToModelKeepsStoredSecretsOnMaskedEcho(t *testing.T) {
	m := model.NewDefault(model.ProviderMidtrans)
	m.PaymentGatewayAPIKey = "client-key-0001"
	m.PaymentGatewayAPISecret = "server-key-9999"

	masked := NewGatewayResponse(m)
	assert.Equal(t, "***********0001", masked.PaymentGatewayAPIKey)

	on := true
	empty := ""
	fresh := "server-key-NEW1"
	UpdateGatewayRequest{
		IsEnabled:  &on,
		APIKey:     &masked.PaymentGatewayAPIKey,
		APISecret:  &fresh,
		MerchantID: &empty,
	}.ApplyToModel(&m)

	assert.True(t, m.PaymentGatewayIsEnabled)
	assert.Equal(t, "client-key-0001", m.PaymentGatewayAPIKey)
	assert.Equal(t, "server-key-NEW1", m.PaymentGatewayAPISecret)
	assert.Equal(t, "", m.PaymentGatewayMerchantID)
}
