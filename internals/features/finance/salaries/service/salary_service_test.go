package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"madrasa_backend/internals/features/finance/salaries/model"
)

func TestNetAmount(t *testing.T) {
	net, err := NetAmount(20000, 1500, 500)
	require.NoError(t, err)
	assert.Equal(t, int64(21000), net)

	net, err = NetAmount(1000, 0, 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(0), net)

	_, err = NetAmount(1000, 0, 1001)
	assert.ErrorIs(t, err, ErrNegativeNet)
}

func TestMarkPaid(t *testing.T) {
	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	m := model.SalaryModel{SalaryStatus: model.SalaryStatusPending}

	require.NoError(t, MarkPaid(&m, "bank", now))
	assert.Equal(t, model.SalaryStatusPaid, m.SalaryStatus)
	require.NotNil(t, m.SalaryPaidAt)
	assert.True(t, now.Equal(*m.SalaryPaidAt))

	assert.ErrorIs(t, MarkPaid(&m, "cash", now), ErrAlreadyPaid)
	assert.Equal(t, "bank", *m.SalaryPayMethod)
}
