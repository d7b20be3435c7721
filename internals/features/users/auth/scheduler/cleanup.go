package scheduler

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"madrasa_backend/internals/configs"
	authRepo "madrasa_backend/internals/features/users/auth/repository"
	helperAuth "madrasa_backend/internals/helpers/auth"
)

// CleanupTokens dijalankan cron harian: blacklist yang sudah expired > TTL
// dan refresh token kadaluarsa dihapus permanen.
func CleanupTokens(db *gorm.DB) {
	ttlDays := configs.GetEnvInt("TOKEN_BLACKLIST_TTL_DAYS", 7)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	log.Println("[CLEANUP] Menjalankan pembersihan token_blacklist...")
	n, err := helperAuth.PurgeExpired(ctx, db, time.Duration(ttlDays)*24*time.Hour)
	if err != nil {
		log.Printf("[CLEANUP ERROR] Gagal hapus token blacklist: %v", err)
	} else {
		log.Printf("[CLEANUP] %d token blacklist dihapus", n)
	}

	if n, err := authRepo.CleanupExpiredRefreshTokens(ctx, db); err != nil {
		log.Printf("[CLEANUP ERROR] Gagal hapus refresh token: %v", err)
	} else if n > 0 {
		log.Printf("[CLEANUP] %d refresh token kadaluarsa dihapus", n)
	}
}
