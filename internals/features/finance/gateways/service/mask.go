package service

import "strings"

const maskChar = "*"

// MaskSecret: sisakan 4 karakter terakhir, sisanya '*'. Panjang <= 4 → semua '*'.
func MaskSecret(s string) string {
	if s == "" {
		return ""
	}
	rs := []rune(s)
	if len(rs) <= 4 {
		return strings.Repeat(maskChar, len(rs))
	}
	return strings.Repeat(maskChar, len(rs)-4) + string(rs[len(rs)-4:])
}

// ShouldOverwrite: nilai kredensial dari client hanya dipakai kalau
// tidak kosong dan bukan hasil mask yang dikirim balik.
func ShouldOverwrite(incoming *string) bool {
	if incoming == nil {
		return false
	}
	v := strings.TrimSpace(*incoming)
	return v != "" && !strings.Contains(v, maskChar)
}
