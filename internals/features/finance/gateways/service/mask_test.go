package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskSecret(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"abc", "***"},
		{"abcd", "****"},
		{"abcde", "*bcde"},
		{"SB-Mid-server-XYZ1234", "*****************1234"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, MaskSecret(tc.in), tc.in)
	}
}

func TestShouldOverwrite(t *testing.T) {
	s := func(v string) *string { return &v }

	assert.False(t, ShouldOverwrite(nil))
	assert.False(t, ShouldOverwrite(s("")))
	assert.False(t, ShouldOverwrite(s("   ")))
	assert.False(t, ShouldOverwrite(s("*****1234")))
	assert.True(t, ShouldOverwrite(s("new-secret")))
}
