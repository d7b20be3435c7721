package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"madrasa_backend/internals/databases/testdb"
	"madrasa_backend/internals/features/academics/teachers/model"
)

// kolom text[] tidak dikenal sqlite, tabel dibuat manual
const teachersDDL = `CREATE TABLE teachers (
	teacher_id TEXT PRIMARY KEY,
	teacher_employee_code VARCHAR(20) NOT NULL,
	teacher_full_name VARCHAR(150) NOT NULL,
	teacher_phone VARCHAR(30) NOT NULL,
	teacher_email VARCHAR(255),
	teacher_qualification VARCHAR(255),
	teacher_subjects TEXT,
	teacher_joining_date DATE NOT NULL,
	teacher_monthly_salary INTEGER NOT NULL,
	teacher_status VARCHAR(20) NOT NULL,
	teacher_photo_url TEXT,
	teacher_user_id TEXT,
	teacher_created_at DATETIME,
	teacher_updated_at DATETIME
);
CREATE UNIQUE INDEX uq_teachers_employee_code ON teachers (teacher_employee_code);`

func setupTeachers(t *testing.T) (*gorm.DB, *fiber.App) {
	t.Helper()
	db := testdb.New(t)
	for _, stmt := range strings.Split(teachersDDL, ";") {
		if strings.TrimSpace(stmt) != "" {
			require.NoError(t, db.Exec(stmt).Error)
		}
	}
	app := fiber.New()
	app.Post("/teachers", NewTeacherController(db, nil).Create)
	return db, app
}

func createTeacher(t *testing.T, app *fiber.App, body string) (int, model.TeacherModel) {
	t.Helper()
	req := httptest.NewRequest("POST", "/teachers", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, _ := io.ReadAll(resp.Body)
	var out struct {
		Data model.TeacherModel `json:"data"`
	}
	_ = json.Unmarshal(raw, &out)
	return resp.StatusCode, out.Data
}

func TestCreateTeacherEmployeeCode(t *testing.T) {
	_, app := setupTeachers(t)
	body := `{"teacher_full_name":"Ustadz Harun","teacher_phone":"0811","teacher_subjects":["tajwid","fiqh"],"teacher_monthly_salary":25000}`

	code, t1 := createTeacher(t, app, body)
	require.Equal(t, fiber.StatusCreated, code)
	assert.Equal(t, "TCH-0001", t1.TeacherEmployeeCode)
	assert.Equal(t, []string{"tajwid", "fiqh"}, []string(t1.TeacherSubjects))

	// kode manual ikut dihitung sebagai seq terbesar
	code, _ = createTeacher(t, app, `{"teacher_employee_code":"TCH-0010","teacher_full_name":"Ustadz Idris","teacher_phone":"0812"}`)
	require.Equal(t, fiber.StatusCreated, code)

	code, t3 := createTeacher(t, app, body)
	require.Equal(t, fiber.StatusCreated, code)
	assert.Equal(t, "TCH-0011", t3.TeacherEmployeeCode)

	code, _ = createTeacher(t, app, `{"teacher_employee_code":"TCH-0010","teacher_full_name":"Duplikat","teacher_phone":"0813"}`)
	assert.Equal(t, fiber.StatusConflict, code)
}
