package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"madrasa_backend/internals/configs"
	"madrasa_backend/internals/features/finance/gateways/model"
)

var ErrGatewayDisabled = errors.New("gateway midtrans belum diaktifkan")

type MidtransConfig struct {
	ServerKey  string
	Production bool
}

/*
LoadMidtransConfig: baris midtrans yang enabled menang.
Kalau barisnya enabled tapi server key kosong, pakai env MIDTRANS_SERVER_KEY.
Baris tidak ada sama sekali → murni dari env (kosong = disabled).
*/
func LoadMidtransConfig(db *gorm.DB) (MidtransConfig, error) {
	envKey := strings.TrimSpace(configs.GetEnv("MIDTRANS_SERVER_KEY"))
	envProd := configs.GetEnvBool("MIDTRANS_USE_PROD", false)

	var row model.PaymentGatewayModel
	err := db.Where("payment_gateway_provider = ?", model.ProviderMidtrans).First(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if envKey == "" {
			return MidtransConfig{}, ErrGatewayDisabled
		}
		return MidtransConfig{ServerKey: envKey, Production: envProd}, nil
	case err != nil:
		return MidtransConfig{}, err
	}

	if !row.PaymentGatewayIsEnabled {
		return MidtransConfig{}, ErrGatewayDisabled
	}
	cfg := MidtransConfig{
		ServerKey:  strings.TrimSpace(row.PaymentGatewayAPISecret),
		Production: !row.PaymentGatewayIsSandbox,
	}
	if cfg.ServerKey == "" {
		cfg.ServerKey = envKey
	}
	if cfg.ServerKey == "" {
		return MidtransConfig{}, ErrGatewayDisabled
	}
	return cfg, nil
}

// MidtransServerKey: key untuk verifikasi webhook, tetap dipakai walau gateway sudah dimatikan
// (notifikasi transaksi lama masih bisa datang).
func MidtransServerKey(db *gorm.DB) string {
	var row model.PaymentGatewayModel
	if err := db.Where("payment_gateway_provider = ?", model.ProviderMidtrans).First(&row).Error; err == nil {
		if k := strings.TrimSpace(row.PaymentGatewayAPISecret); k != "" {
			return k
		}
	}
	return strings.TrimSpace(configs.GetEnv("MIDTRANS_SERVER_KEY"))
}
