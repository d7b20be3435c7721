package helper

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 255), G: uint8(y % 255), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestConvertToWebP_DownscalesKeepingAspect(t *testing.T) {
	data, err := ConvertToWebP(bytes.NewReader(pngBytes(t, 800, 400)), "photo.png", WebPOptions{MaxW: 200, MaxH: 200, Quality: 70})
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 200, cfg.Width)
	assert.Equal(t, 100, cfg.Height)
}

func TestConvertToWebP_SmallImageNotUpscaled(t *testing.T) {
	data, err := ConvertToWebP(bytes.NewReader(pngBytes(t, 50, 40)), "small.png", AvatarWebPOptions())
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Width)
	assert.Equal(t, 40, cfg.Height)
}

func TestConvertToWebP_RejectsUnknownFormat(t *testing.T) {
	_, err := ConvertToWebP(bytes.NewReader([]byte("plain text, not an image")), "notes.txt", WebPOptions{})
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}

func TestExtractKeyFromPublicURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		base    string
		want    string
		wantErr bool
	}{
		{"with public base", "https://cdn.example.org/madrasa/students/a.webp", "https://cdn.example.org", "madrasa/students/a.webp", false},
		{"bucket host", "https://bkt.oss-ap-southeast-1.aliyuncs.com/madrasa/logo.webp", "", "madrasa/logo.webp", false},
		{"empty", "", "", "", true},
		{"host only", "https://bkt.example.org/", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractKeyFromPublicURL(tt.url, tt.base)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildObjectKey(t *testing.T) {
	s := &OSSService{Prefix: "madrasa"}
	key := s.BuildObjectKey("/students/", "My Photo.WEBP")
	assert.Regexp(t, `^madrasa/students/my-photo_\d{8}_\d{6}_[0-9a-f]{6}\.webp$`, key)
}
