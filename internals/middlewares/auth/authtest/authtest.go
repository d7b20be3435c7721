// Package authtest: DB + token siap pakai untuk test handler di belakang AuthMiddleware.
package authtest

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"madrasa_backend/internals/configs"
	"madrasa_backend/internals/databases/testdb"
	authModel "madrasa_backend/internals/features/users/auth/model"
	userModel "madrasa_backend/internals/features/users/user/model"
)

const Secret = "rahasia-test"

// NewDB: testdb + tabel users & token_blacklist, JWT_SECRET diset selama test
func NewDB(t *testing.T, models ...any) *gorm.DB {
	t.Helper()
	orig := configs.JWTSecret
	configs.JWTSecret = Secret
	t.Cleanup(func() { configs.JWTSecret = orig })

	return testdb.New(t, append([]any{&userModel.UserModel{}, &authModel.TokenBlacklist{}}, models...)...)
}

// User membuat user aktif dengan role tertentu lalu mengembalikan access token-nya
func User(t *testing.T, db *gorm.DB, role string) (userModel.UserModel, string) {
	t.Helper()
	u := userModel.UserModel{
		FullName: "User " + role,
		Email:    role + "-" + uuid.NewString()[:8] + "@madrasa.local",
		Password: "x",
		Role:     role,
		IsActive: true,
	}
	require.NoError(t, db.Create(&u).Error)

	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"typ":       "access",
		"id":        u.ID.String(),
		"user_name": u.FullName,
		"exp":       time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(Secret))
	require.NoError(t, err)
	return u, tok
}

func Token(t *testing.T, db *gorm.DB, role string) string {
	_, tok := User(t, db, role)
	return tok
}

// Authorize memasang header Bearer
func Authorize(req *http.Request, token string) *http.Request {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}
