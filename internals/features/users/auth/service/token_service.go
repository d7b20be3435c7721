// internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"madrasa_backend/internals/configs"
	authModel "madrasa_backend/internals/features/users/auth/model"
	authRepo "madrasa_backend/internals/features/users/auth/repository"
	userModel "madrasa_backend/internals/features/users/user/model"
	helpers "madrasa_backend/internals/helpers"
	helperAuth "madrasa_backend/internals/helpers/auth"
)

/* ==========================
   Const
========================== */

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	if s := strings.TrimSpace(configs.JWTSecret); s != "" {
		return s, nil
	}
	return "", errors.New("JWT_SECRET belum diset")
}

// refresh secret fallback ke JWT_SECRET kalau belum dipisah
func getRefreshSecret() (string, error) {
	if s := strings.TrimSpace(configs.JWTRefreshSecret); s != "" {
		return s, nil
	}
	return getJWTSecret()
}

func strptr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// ==========================
// Helpers (JWT claims & resp)
// ==========================

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ": "refresh",
		"sub": userID.String(),
		"id":  userID.String(),
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
}

func buildAccessClaims(user userModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ":       "access",
		"sub":       user.ID.String(),
		"id":        user.ID.String(),
		"user_name": user.FullName,
		"email":     user.Email,
		"role":      user.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTLDefault).Unix(),
	}
}

func BuildUserResponse(user userModel.UserModel) fiber.Map {
	return fiber.Map{
		"id":            user.ID,
		"full_name":     user.FullName,
		"email":         user.Email,
		"role":          user.Role,
		"is_active":     user.IsActive,
		"last_login_at": user.LastLoginAt,
	}
}

// GenerateAccessToken sign access token (dipakai juga di test).
func GenerateAccessToken(user userModel.UserModel, now time.Time) (string, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(user, now)).SignedString([]byte(secret))
}

type tokenPair struct {
	AccessToken  string
	RefreshToken string
}

func signTokenPair(c *fiber.Ctx, db *gorm.DB, user userModel.UserModel, now time.Time) (*tokenPair, error) {
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return nil, err
	}
	accessToken, err := GenerateAccessToken(user, now)
	if err != nil {
		return nil, err
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(user.ID, now)).SignedString([]byte(refreshSecret))
	if err != nil {
		return nil, err
	}

	// Simpan refresh token (hashed)
	if err := authRepo.CreateRefreshToken(db, &authModel.RefreshTokenModel{
		UserID:    user.ID,
		Token:     helperAuth.HashToken(refreshToken, refreshSecret),
		ExpiresAt: now.Add(refreshTTLDefault),
		UserAgent: strptr(c.Get("User-Agent")),
		IP:        strptr(c.IP()),
	}); err != nil {
		return nil, err
	}
	return &tokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// ==========================
// ISSUE TOKENS
// ==========================

func issueTokens(c *fiber.Ctx, db *gorm.DB, user userModel.UserModel) error {
	now := nowUTC()
	pair, err := signTokenPair(c, db, user, now)
	if err != nil {
		log.Printf("[ERROR] issue tokens user=%s: %v", user.ID, err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}
	if err := authRepo.TouchLastLogin(db, user.ID, now); err != nil {
		log.Printf("[WARN] update last_login_at: %v", err)
	}
	user.LastLoginAt = &now

	setAuthCookies(c, pair.AccessToken, pair.RefreshToken, now)

	return helpers.JsonOK(c, "Login berhasil", fiber.Map{
		"user":          BuildUserResponse(user),
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
		"expires_in":    int(accessTTLDefault.Seconds()),
	})
}

func setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(accessTTLDefault),
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(refreshTTLDefault),
	})
}

func clearAuthCookies(c *fiber.Ctx) {
	expired := nowUTC().Add(-time.Hour)
	for _, name := range []string{"access_token", "refresh_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			HTTPOnly: true,
			Secure:   true,
			SameSite: "None",
			Path:     "/",
			Expires:  expired,
			MaxAge:   -1,
		})
	}
}

// refresh token dari cookie atau body {"refresh_token": "..."}
func readRefreshToken(c *fiber.Ctx) string {
	if v := strings.TrimSpace(c.Cookies("refresh_token")); v != "" {
		return v
	}
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if len(c.Body()) > 0 {
		_ = c.BodyParser(&body)
	}
	return strings.TrimSpace(body.RefreshToken)
}

// ========================== REFRESH TOKEN ==========================
// POST /api/auth/refresh-token
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	raw := readRefreshToken(c)
	if raw == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak ada")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// Parse & validate refresh JWT
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	// Pastikan hash refresh ada di DB
	hash := helperAuth.HashToken(raw, refreshSecret)
	if _, err := authRepo.FindActiveRefreshToken(db, hash); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak dikenal")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	// ROTATE: hapus token lama
	if err := authRepo.DeleteRefreshToken(db, hash); err != nil {
		log.Printf("[WARN] refresh: delete old hash failed: %v", err)
	}

	now := nowUTC()
	pair, err := signTokenPair(c, db, *user, now)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal buat token baru")
	}
	setAuthCookies(c, pair.AccessToken, pair.RefreshToken, now)

	return helpers.JsonOK(c, "Token diperbarui", fiber.Map{
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
		"expires_in":    int(accessTTLDefault.Seconds()),
	})
}
