package controller

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"madrasa_backend/internals/configs"
	"madrasa_backend/internals/constants"
	"madrasa_backend/internals/features/users/user/model"
	authMiddleware "madrasa_backend/internals/middlewares/auth"
	"madrasa_backend/internals/middlewares/auth/authtest"
)

func setupUsers(t *testing.T) (*gorm.DB, *fiber.App) {
	t.Helper()
	db := authtest.NewDB(t)

	app := fiber.New()
	bc := NewBootstrapController(db)
	app.Post("/bootstrap-admin", bc.Bootstrap)

	uc := NewUserController(db)
	g := app.Group("/users", authMiddleware.AuthMiddleware(db))
	g.Post("/", uc.Create)
	g.Patch("/:id", uc.Update)
	return db, app
}

func send(t *testing.T, app *fiber.App, method, path, token, body string) int {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(authtest.Authorize(req, token), -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestBootstrapSecondCallConflict(t *testing.T) {
	orig := configs.BootstrapToken
	configs.BootstrapToken = ""
	t.Cleanup(func() { configs.BootstrapToken = orig })

	db, app := setupUsers(t)

	body := `{"full_name":"Muhtamim","email":"muhtamim@madrasa.org","password":"rahasia-123"}`
	assert.Equal(t, fiber.StatusCreated, send(t, app, "POST", "/bootstrap-admin", "", body))

	other := `{"full_name":"Lain","email":"lain@madrasa.org","password":"rahasia-123"}`
	assert.Equal(t, fiber.StatusConflict, send(t, app, "POST", "/bootstrap-admin", "", other))

	var n int64
	require.NoError(t, db.Model(&model.UserModel{}).Where("role = ?", constants.RoleSuperAdmin).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestUserRoleEscalation(t *testing.T) {
	db, app := setupUsers(t)
	adminTok := authtest.Token(t, db, constants.RoleAdmin)
	superTok := authtest.Token(t, db, constants.RoleSuperAdmin)
	otherAdmin, _ := authtest.User(t, db, constants.RoleAdmin)
	teacher, _ := authtest.User(t, db, constants.RoleTeacher)

	newUser := func(email, role string) string {
		return `{"full_name":"Ustadzah","email":"` + email + `","password":"rahasia-123","role":"` + role + `"}`
	}

	tests := []struct {
		name   string
		token  string
		method string
		path   string
		body   string
		want   int
	}{
		{"admin membuat admin", adminTok, "POST", "/users", newUser("a1@madrasa.org", constants.RoleAdmin), fiber.StatusForbidden},
		{"admin membuat super admin", adminTok, "POST", "/users", newUser("a2@madrasa.org", constants.RoleSuperAdmin), fiber.StatusForbidden},
		{"admin membuat guru", adminTok, "POST", "/users", newUser("g1@madrasa.org", constants.RoleTeacher), fiber.StatusCreated},
		{"super admin membuat admin", superTok, "POST", "/users", newUser("a3@madrasa.org", constants.RoleAdmin), fiber.StatusCreated},
		{"admin menaikkan guru jadi super admin", adminTok, "PATCH", "/users/" + teacher.ID.String(), `{"role":"super_admin"}`, fiber.StatusForbidden},
		{"admin mengubah admin lain", adminTok, "PATCH", "/users/" + otherAdmin.ID.String(), `{"full_name":"Diganti"}`, fiber.StatusForbidden},
		{"admin memindah guru jadi bendahara", adminTok, "PATCH", "/users/" + teacher.ID.String(), `{"role":"accountant"}`, fiber.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, send(t, app, tt.method, tt.path, tt.token, tt.body))
		})
	}

	var got model.UserModel
	require.NoError(t, db.First(&got, "id = ?", otherAdmin.ID).Error)
	assert.Equal(t, "User "+constants.RoleAdmin, got.FullName)
}
