package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildThenReadRows(t *testing.T) {
	buf, err := Build(
		Sheet{
			Name:    "Students",
			Headers: []string{"Code", "Name", "Fee"},
			Rows: [][]any{
				{"STU-2025-0001", "Abdullah", 500},
				{"STU-2025-0002", "Yusuf", 750},
			},
		},
		Sheet{Name: "Summary", Headers: []string{"Total"}, Rows: [][]any{{1250}}},
	)
	require.NoError(t, err)

	rows, err := ReadRows(buf)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Code", "Name", "Fee"}, rows[0])
	assert.Equal(t, "Yusuf", rows[2][1])
	assert.Equal(t, "750", rows[2][2])
}

func TestReadRows_RejectsGarbage(t *testing.T) {
	_, err := ReadRows(strings.NewReader("not an xlsx"))
	assert.Error(t, err)
}

