package helper

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authModel "madrasa_backend/internals/features/users/auth/model"
)

/*
   =========================================================
   LOW-LEVEL UTILS
   =========================================================
*/

// HashToken: HMAC-SHA256(token, secret) dalam hex, dipakai untuk blacklist & refresh token.
func HashToken(raw, secret string) string {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(raw))
	return hex.EncodeToString(m.Sum(nil))
}

/*
   =========================================================
   CORE API (tabel token_blacklist: token TEXT, expired_at, deleted_at)
   =========================================================
*/

// AddToBlacklist: simpan HMAC(access_token) sampai expiresAt.
func AddToBlacklist(ctx context.Context, db *gorm.DB, rawAccessToken, jwtSecret string, expiresAt time.Time) error {
	if db == nil || strings.TrimSpace(rawAccessToken) == "" || strings.TrimSpace(jwtSecret) == "" {
		return nil
	}
	row := authModel.TokenBlacklist{
		Token:     HashToken(rawAccessToken, jwtSecret),
		ExpiredAt: expiresAt.UTC(),
		CreatedAt: time.Now().UTC(),
	}
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "token"}},
		DoUpdates: clause.Assignments(map[string]any{"expired_at": row.ExpiredAt, "deleted_at": nil}),
	}).Create(&row).Error
}

// IsBlacklisted: ada baris aktif dan belum expired?
func IsBlacklisted(ctx context.Context, db *gorm.DB, rawAccessToken, jwtSecret string) (bool, error) {
	if db == nil || strings.TrimSpace(rawAccessToken) == "" || strings.TrimSpace(jwtSecret) == "" {
		return false, nil
	}
	var n int64
	err := db.WithContext(ctx).Model(&authModel.TokenBlacklist{}).
		Where("token = ? AND expired_at > ?", HashToken(rawAccessToken, jwtSecret), time.Now().UTC()).
		Count(&n).Error
	return n > 0, err
}

// PurgeExpired: hapus permanen baris yang sudah lewat expired_at lebih dari retention.
func PurgeExpired(ctx context.Context, db *gorm.DB, retention time.Duration) (int64, error) {
	if db == nil {
		return 0, nil
	}
	before := time.Now().UTC().Add(-retention)
	res := db.WithContext(ctx).Unscoped().Where("expired_at < ?", before).Delete(&authModel.TokenBlacklist{})
	return res.RowsAffected, res.Error
}
