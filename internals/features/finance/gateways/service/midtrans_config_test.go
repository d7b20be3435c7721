package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"madrasa_backend/internals/databases/testdb"
	"madrasa_backend/internals/features/finance/gateways/model"
)

func TestLoadMidtransConfig(t *testing.T) {
	t.Setenv("MIDTRANS_SERVER_KEY", "")
	db := testdb.New(t, &model.PaymentGatewayModel{})

	_, err := LoadMidtransConfig(db)
	assert.ErrorIs(t, err, ErrGatewayDisabled)

	t.Setenv("MIDTRANS_SERVER_KEY", "env-key")
	cfg, err := LoadMidtransConfig(db)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.ServerKey)
	assert.False(t, cfg.Production)

	row := model.NewDefault(model.ProviderMidtrans)
	require.NoError(t, db.Create(&row).Error)
	_, err = LoadMidtransConfig(db)
	assert.ErrorIs(t, err, ErrGatewayDisabled, "baris ada tapi nonaktif")
	assert.Equal(t, "env-key", MidtransServerKey(db))

	row.PaymentGatewayIsEnabled = true
	row.PaymentGatewayIsSandbox = false
	row.PaymentGatewayAPISecret = "row-key"
	require.NoError(t, db.Save(&row).Error)

	cfg, err = LoadMidtransConfig(db)
	require.NoError(t, err)
	assert.Equal(t, "row-key", cfg.ServerKey)
	assert.True(t, cfg.Production)
	assert.Equal(t, "row-key", MidtransServerKey(db))
}
