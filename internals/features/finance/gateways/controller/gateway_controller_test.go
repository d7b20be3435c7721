package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"madrasa_backend/internals/databases/testdb"
	"madrasa_backend/internals/features/finance/gateways/dto"
	"madrasa_backend/internals/features/finance/gateways/model"
)

func putGateway(t *testing.T, app *fiber.App, provider, body string) (int, dto.GatewayResponse) {
	t.Helper()
	req := httptest.NewRequest("PUT", "/payment-gateways/"+provider, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, _ := io.ReadAll(resp.Body)
	var out struct {
		Data dto.GatewayResponse `json:"data"`
	}
	_ = json.Unmarshal(raw, &out)
	return resp.StatusCode, out.Data
}

func storedGateway(t *testing.T, db *gorm.DB, provider string) model.PaymentGatewayModel {
	t.Helper()
	var m model.PaymentGatewayModel
	require.NoError(t, db.First(&m, "payment_gateway_provider = ?", provider).Error)
	return m
}

func TestUpdateGatewayIgnoresMaskedEcho(t *testing.T) {
	db := testdb.New(t, &model.PaymentGatewayModel{})
	app := fiber.New()
	app.Put("/payment-gateways/:provider", NewGatewayController(db).Update)

	code, first := putGateway(t, app, "midtrans", `{
		"payment_gateway_merchant_id":"G123456789",
		"payment_gateway_api_key":"SB-Mid-client-abcd1234",
		"payment_gateway_api_secret":"SB-Mid-server-wxyz9876"
	}`)
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "******6789", first.PaymentGatewayMerchantID)
	assert.NotContains(t, first.PaymentGatewayAPISecret, "SB-Mid")

	// form admin mengirim balik nilai mask + toggle
	echo, err := json.Marshal(map[string]any{
		"payment_gateway_is_enabled":  true,
		"payment_gateway_merchant_id": first.PaymentGatewayMerchantID,
		"payment_gateway_api_key":     first.PaymentGatewayAPIKey,
		"payment_gateway_api_secret":  first.PaymentGatewayAPISecret,
	})
	require.NoError(t, err)
	code, _ = putGateway(t, app, "midtrans", string(echo))
	require.Equal(t, fiber.StatusOK, code)

	m := storedGateway(t, db, "midtrans")
	assert.True(t, m.PaymentGatewayIsEnabled)
	assert.Equal(t, "G123456789", m.PaymentGatewayMerchantID)
	assert.Equal(t, "SB-Mid-client-abcd1234", m.PaymentGatewayAPIKey)
	assert.Equal(t, "SB-Mid-server-wxyz9876", m.PaymentGatewayAPISecret)

	// kosong juga tidak menghapus; nilai baru menimpa
	code, _ = putGateway(t, app, "midtrans", `{"payment_gateway_api_key":"","payment_gateway_api_secret":"Mid-server-baru0001"}`)
	require.Equal(t, fiber.StatusOK, code)
	m = storedGateway(t, db, "midtrans")
	assert.Equal(t, "SB-Mid-client-abcd1234", m.PaymentGatewayAPIKey)
	assert.Equal(t, "Mid-server-baru0001", m.PaymentGatewayAPISecret)

	code, _ = putGateway(t, app, "paypal", `{}`)
	assert.Equal(t, fiber.StatusNotFound, code)
}
