package helper

import (
	"context"
	"errors"
	"log"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"

	"madrasa_backend/internals/constants"
)

/*
BlobService adalah facade upload/hapus yang seragam untuk controller.
Controller cukup pegang interface ini; nil-safe lewat NoopBlobService.
*/
type BlobService interface {
	UploadImage(ctx context.Context, dir string, fh *multipart.FileHeader) (publicURL string, err error)
	DeleteByPublicURL(ctx context.Context, publicURL string) error
}

type OSSBlobService struct {
	svc *OSSService
}

func (b *OSSBlobService) UploadImage(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "File tidak ditemukan")
	}
	return b.svc.UploadAsWebP(ctx, fh, dir, webpOptionsFor(dir))
}

// foto santri/ustadz pakai ukuran avatar, sisanya (logo dsb) ikut ENV
func webpOptionsFor(dir string) WebPOptions {
	switch dir {
	case "students", "teachers":
		return AvatarWebPOptions()
	}
	return DefaultWebPOptionsFromEnv()
}

func (b *OSSBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	return b.svc.DeleteByPublicURL(ctx, publicURL)
}

// NoopBlobService dipakai kalau OSS belum dikonfigurasi
type NoopBlobService struct{}

var ErrStorageDisabled = errors.New("storage belum dikonfigurasi")

func (NoopBlobService) UploadImage(context.Context, string, *multipart.FileHeader) (string, error) {
	return "", fiber.NewError(fiber.StatusServiceUnavailable, ErrStorageDisabled.Error())
}

func (NoopBlobService) DeleteByPublicURL(context.Context, string) error { return nil }

// NewBlobServiceFromEnv: OSS kalau ENV lengkap, selain itu Noop
func NewBlobServiceFromEnv(prefix string) BlobService {
	svc, err := NewOSSServiceFromEnv(prefix)
	if err != nil {
		log.Printf("[OSS] nonaktif: %v", err)
		return NoopBlobService{}
	}
	return &OSSBlobService{svc: svc}
}

// --------------------------------------------------
// Helper kecil untuk controller
// --------------------------------------------------

func IsMultipart(c *fiber.Ctx) bool {
	ct := strings.ToLower(strings.TrimSpace(c.Get(fiber.HeaderContentType)))
	return strings.HasPrefix(ct, "multipart/form-data")
}

var defaultImageFields = []string{"image", "file", "photo", "logo"}

// GetImageFile mencari file dari beberapa kemungkinan field form.
// Jika tidak ada file, kembalikan (nil, nil) supaya controller bisa fallback.
func GetImageFile(c *fiber.Ctx, fieldNames ...string) (*multipart.FileHeader, error) {
	if !IsMultipart(c) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Gunakan multipart/form-data")
	}
	names := fieldNames
	if len(names) == 0 {
		names = defaultImageFields
	}
	for _, fn := range names {
		if fh, err := c.FormFile(fn); err == nil && fh != nil {
			if !constants.IsImageFile(fh.Filename) {
				return nil, fiber.NewError(fiber.StatusUnsupportedMediaType, "File harus png/jpg/jpeg/webp")
			}
			return fh, nil
		}
	}
	return nil, nil
}

// ReplaceImage: upload file baru, lalu hapus file lama (best-effort).
func ReplaceImage(ctx context.Context, blob BlobService, dir string, fh *multipart.FileHeader, oldURL *string) (string, error) {
	if blob == nil {
		blob = NoopBlobService{}
	}
	url, err := blob.UploadImage(ctx, dir, fh)
	if err != nil {
		return "", err
	}
	if oldURL != nil && strings.TrimSpace(*oldURL) != "" && *oldURL != url {
		if derr := blob.DeleteByPublicURL(ctx, *oldURL); derr != nil {
			log.Printf("[OSS] gagal hapus file lama %s: %v", *oldURL, derr)
		}
	}
	return url, nil
}

// --------------------------------------------------
// Mock untuk unit test
// --------------------------------------------------

type MockBlobService struct {
	UploadImageFn       func(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error)
	DeleteByPublicURLFn func(ctx context.Context, publicURL string) error
}

func (m *MockBlobService) UploadImage(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error) {
	if m.UploadImageFn == nil {
		return "", errors.New("not implemented")
	}
	return m.UploadImageFn(ctx, dir, fh)
}

func (m *MockBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	if m.DeleteByPublicURLFn == nil {
		return nil
	}
	return m.DeleteByPublicURLFn(ctx, publicURL)
}
