package service

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasa_backend/internals/configs"
	authHelper "madrasa_backend/internals/features/users/auth/helper"
	authRepo "madrasa_backend/internals/features/users/auth/repository"
	helpers "madrasa_backend/internals/helpers"
	helperAuth "madrasa_backend/internals/helpers/auth"
	authMiddleware "madrasa_backend/internals/middlewares/auth"
)

/* ==========================
   LOGIN (email + password)
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Identifier string `json:"identifier"`
		Email      string `json:"email"`
		Password   string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	identifier := strings.TrimSpace(input.Identifier)
	if identifier == "" {
		identifier = strings.TrimSpace(input.Email)
	}

	if err := authHelper.ValidateLoginInput(identifier, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := authRepo.FindUserByEmail(db, identifier)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[ERROR] login lookup: %v", err)
		}
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Email atau Password salah")
	}
	if err := authHelper.CheckPasswordHash(user.Password, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Email atau Password salah")
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}

	return issueTokens(c, db, *user)
}

/* ==========================
   LOGIN GOOGLE
========================== */

// diganti di test; default verifikasi ke sertifikat Google
var verifyGoogleIDToken = func(idToken, clientID string) (*googleAuthIDTokenVerifier.ClaimSet, error) {
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{clientID}); err != nil {
		return nil, err
	}
	return googleAuthIDTokenVerifier.Decode(idToken)
}

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		IDToken string `json:"id_token"`
	}
	if err := c.BodyParser(&input); err != nil || strings.TrimSpace(input.IDToken) == "" {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if configs.GoogleClientID == "" {
		return helpers.JsonError(c, fiber.StatusServiceUnavailable, "Login Google belum dikonfigurasi")
	}

	claimSet, err := verifyGoogleIDToken(input.IDToken, configs.GoogleClientID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}
	email, googleID := strings.TrimSpace(claimSet.Email), claimSet.Sub

	// Cari by google_id, lalu by email. Akun baru TIDAK dibuat: staf didaftarkan admin.
	user, err := authRepo.FindUserByGoogleID(db, googleID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
		}
		user, err = authRepo.FindUserByEmail(db, email)
		if err != nil {
			return helpers.JsonError(c, fiber.StatusForbidden, "Akun Google ini belum terdaftar. Hubungi admin madrasah.")
		}
		if err := authRepo.LinkGoogleID(db, user.ID, googleID); err != nil {
			log.Printf("[WARN] link google_id: %v", err)
		}
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}

	return issueTokens(c, db, *user)
}

/* ==========================
   LOGOUT
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	accessToken := authMiddleware.ExtractRawToken(c)

	if accessToken != "" {
		if secret, err := getJWTSecret(); err == nil {
			until := resolveBlacklistUntil(c)
			if err := helperAuth.AddToBlacklist(c.UserContext(), db, accessToken, secret, until); err != nil {
				log.Printf("[WARN] Failed to blacklist token: %v", err)
			}
		}
	}

	// Hapus refresh token dari DB jika ada
	if rt := readRefreshToken(c); rt != "" {
		if secret, err := getRefreshSecret(); err == nil {
			_ = authRepo.DeleteRefreshToken(db, helperAuth.HashToken(rt, secret))
		}
	}

	clearAuthCookies(c)
	return helpers.JsonOK(c, "Logout successful", nil)
}

// blacklist sampai token expired (+1 menit), fallback TTL access token
func resolveBlacklistUntil(c *fiber.Ctx) time.Time {
	if exp, ok := c.Locals("access_exp").(float64); ok && exp > 0 {
		return time.Unix(int64(exp), 0).UTC().Add(60 * time.Second)
	}
	return nowUTC().Add(accessTTLDefault)
}

/* ==========================
   ME
========================== */

func Me(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	return helpers.JsonOK(c, "ok", BuildUserResponse(*user))
}
