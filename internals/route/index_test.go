package routes

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"madrasa_backend/internals/constants"
	classModel "madrasa_backend/internals/features/academics/classes/model"
	studentModel "madrasa_backend/internals/features/academics/students/model"
	expenseModel "madrasa_backend/internals/features/finance/expenses/model"
	"madrasa_backend/internals/middlewares/auth/authtest"
)

func TestAdminRoleGates(t *testing.T) {
	db := authtest.NewDB(t, &classModel.ClassModel{}, &studentModel.StudentModel{}, &expenseModel.ExpenseModel{})
	app := fiber.New()
	SetupRoutes(app, db, Deps{})

	tokens := map[string]string{}
	for _, role := range constants.AllRoles {
		tokens[role] = authtest.Token(t, db, role)
	}
	classBody := `{"class_name":"Hifz","class_level":2,"class_monthly_fee":99999}`

	tests := []struct {
		role   string
		method string
		path   string
		body   string
		want   int
	}{
		// kelas: baca untuk akademik, tulis hanya admin
		{constants.RoleAccountant, "POST", "/api/a/classes", classBody, fiber.StatusForbidden},
		{constants.RoleTeacher, "POST", "/api/a/classes", classBody, fiber.StatusForbidden},
		{constants.RoleAccountant, "GET", "/api/a/classes", "", fiber.StatusForbidden},
		{constants.RoleTeacher, "GET", "/api/a/classes", "", fiber.StatusOK},
		{constants.RoleAdmin, "POST", "/api/a/classes", classBody, fiber.StatusCreated},

		// gaji guru ada di data guru
		{constants.RoleTeacher, "PATCH", "/api/a/teachers/" + uuid.NewString(), `{"teacher_monthly_salary":1}`, fiber.StatusForbidden},
		{constants.RoleAccountant, "GET", "/api/a/teachers", "", fiber.StatusForbidden},

		{constants.RoleAccountant, "GET", "/api/a/students", "", fiber.StatusForbidden},
		{constants.RoleAccountant, "POST", "/api/a/students", `{}`, fiber.StatusForbidden},
		{constants.RoleAccountant, "GET", "/api/a/lillah", "", fiber.StatusForbidden},
		{constants.RoleAccountant, "GET", "/api/a/alumni", "", fiber.StatusForbidden},

		// keuangan
		{constants.RoleTeacher, "GET", "/api/a/dashboard", "", fiber.StatusForbidden},
		{constants.RoleTeacher, "GET", "/api/a/fees", "", fiber.StatusForbidden},
		{constants.RoleTeacher, "GET", "/api/a/reports/finance", "", fiber.StatusForbidden},
		{constants.RoleAccountant, "GET", "/api/a/expenses", "", fiber.StatusOK},
		{constants.RoleAccountant, "GET", "/api/a/payment-gateways", "", fiber.StatusForbidden},

		// pengaturan & user
		{constants.RoleTeacher, "PUT", "/api/a/institution", `{}`, fiber.StatusForbidden},
		{constants.RoleTeacher, "GET", "/api/a/help", "", fiber.StatusOK},

		// role user biasa tidak masuk panel admin
		{constants.RoleUser, "GET", "/api/a/classes", "", fiber.StatusForbidden},
		{constants.RoleUser, "GET", "/api/a/help", "", fiber.StatusForbidden},

		{constants.RoleAdmin, "POST", "/api/sa/jobs/fee-overdue", "", fiber.StatusForbidden},
		{"", "GET", "/api/a/classes", "", fiber.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.role+" "+tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(authtest.Authorize(req, tokens[tt.role]), -1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
