package auth

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"madrasa_backend/internals/configs"
	"madrasa_backend/internals/constants"
	"madrasa_backend/internals/databases/testdb"
	authModel "madrasa_backend/internals/features/users/auth/model"
	userModel "madrasa_backend/internals/features/users/user/model"
	helperAuth "madrasa_backend/internals/helpers/auth"
)

const testSecret = "rahasia-test"

func setup(t *testing.T) (*gorm.DB, *fiber.App) {
	t.Helper()
	orig := configs.JWTSecret
	configs.JWTSecret = testSecret
	t.Cleanup(func() { configs.JWTSecret = orig })

	db := testdb.New(t, &userModel.UserModel{}, &authModel.TokenBlacklist{})

	app := fiber.New()
	app.Get("/me", AuthMiddleware(db), func(c *fiber.Ctx) error {
		return c.SendString(helperAuth.GetRole(c))
	})
	app.Get("/finance", AuthMiddleware(db),
		OnlyRolesSlice(constants.RoleErrorFinance("keuangan"), constants.FinanceRoles),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })
	return db, app
}

func createUser(t *testing.T, db *gorm.DB, role string) userModel.UserModel {
	t.Helper()
	u := userModel.UserModel{FullName: "Ustadz", Email: role + "@madrasa.local", Password: "x", Role: role, IsActive: true}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return s
}

func accessFor(t *testing.T, u userModel.UserModel, exp time.Time) string {
	return sign(t, jwt.MapClaims{"typ": "access", "id": u.ID.String(), "user_name": u.FullName, "exp": exp.Unix()})
}

func get(t *testing.T, app *fiber.App, path, token string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	buf := make([]byte, 64)
	n, _ := resp.Body.Read(buf)
	return resp.StatusCode, string(buf[:n])
}

func TestAuthMiddleware(t *testing.T) {
	db, app := setup(t)
	teacher := createUser(t, db, constants.RoleTeacher)
	valid := accessFor(t, teacher, time.Now().Add(time.Hour))

	t.Run("tanpa token", func(t *testing.T) {
		code, _ := get(t, app, "/me", "")
		assert.Equal(t, fiber.StatusUnauthorized, code)
	})

	t.Run("token valid, role dari DB", func(t *testing.T) {
		code, body := get(t, app, "/me", valid)
		assert.Equal(t, fiber.StatusOK, code)
		assert.Equal(t, constants.RoleTeacher, body)
	})

	t.Run("token kedaluwarsa", func(t *testing.T) {
		code, _ := get(t, app, "/me", accessFor(t, teacher, time.Now().Add(-time.Hour)))
		assert.Equal(t, fiber.StatusUnauthorized, code)
	})

	t.Run("refresh token ditolak", func(t *testing.T) {
		tok := sign(t, jwt.MapClaims{"typ": "refresh", "id": teacher.ID.String(), "exp": time.Now().Add(time.Hour).Unix()})
		code, _ := get(t, app, "/me", tok)
		assert.Equal(t, fiber.StatusUnauthorized, code)
	})

	t.Run("secret lain", func(t *testing.T) {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"id": teacher.ID.String(), "exp": time.Now().Add(time.Hour).Unix()}).
			SignedString([]byte("bukan-secret"))
		require.NoError(t, err)
		code, _ := get(t, app, "/me", tok)
		assert.Equal(t, fiber.StatusUnauthorized, code)
	})

	t.Run("role tidak cukup", func(t *testing.T) {
		code, _ := get(t, app, "/finance", valid)
		assert.Equal(t, fiber.StatusForbidden, code)
	})

	t.Run("blacklist", func(t *testing.T) {
		tok := accessFor(t, teacher, time.Now().Add(2*time.Hour))
		require.NoError(t, helperAuth.AddToBlacklist(context.Background(), db, tok, testSecret, time.Now().Add(2*time.Hour)))
		code, _ := get(t, app, "/me", tok)
		assert.Equal(t, fiber.StatusUnauthorized, code)
	})

	t.Run("user nonaktif", func(t *testing.T) {
		require.NoError(t, db.Model(&teacher).Update("is_active", false).Error)
		code, _ := get(t, app, "/me", valid)
		assert.Equal(t, fiber.StatusForbidden, code)
	})
}

func TestFinanceRoleAllowed(t *testing.T) {
	db, app := setup(t)
	acc := createUser(t, db, constants.RoleAccountant)
	code, _ := get(t, app, "/finance", accessFor(t, acc, time.Now().Add(time.Hour)))
	assert.Equal(t, fiber.StatusNoContent, code)
}

func TestExtractBearerToken(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		tok, err := extractBearerToken(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).SendString(err.Error())
		}
		return c.SendString(tok)
	})

	tests := []struct {
		name   string
		header string
		cookie string
		want   string
		code   int
	}{
		{"header", "Bearer abc", "", "abc", 200},
		{"case-insensitive + kutip", "  bearer   \"abc\" ", "", "abc", 200},
		{"cookie", "", "xyz", "xyz", 200},
		{"format salah", "Token abc", "", "", 401},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.Header.Set("Cookie", "access_token="+tt.cookie)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.code, resp.StatusCode)
			if tt.code == 200 {
				buf := make([]byte, 16)
				n, _ := resp.Body.Read(buf)
				assert.Equal(t, tt.want, string(buf[:n]))
			}
		})
	}
}
