package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeWeekdays(t *testing.T) {
	got, err := NormalizeWeekdays([]string{"Friday", " mon ", "fri", "SUN"})
	require.NoError(t, err)
	assert.Equal(t, []string{"sun", "mon", "fri"}, got)

	_, err = NormalizeWeekdays([]string{"funday"})
	assert.Error(t, err)

	_, err = NormalizeWeekdays([]string{"  "})
	assert.Error(t, err)

	_, err = NormalizeWeekdays(nil)
	assert.Error(t, err)
}
