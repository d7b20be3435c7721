package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"madrasa_backend/internals/databases/testdb"
	classModel "madrasa_backend/internals/features/academics/classes/model"
	"madrasa_backend/internals/features/academics/students/model"
	"madrasa_backend/internals/features/academics/students/service"
	helperXLSX "madrasa_backend/internals/helpers/xlsx"
)

func setupStudents(t *testing.T) (*gorm.DB, *fiber.App) {
	t.Helper()
	db := testdb.New(t, &model.StudentModel{}, &classModel.ClassModel{})
	ctrl := NewStudentController(db, nil)

	app := fiber.New()
	app.Post("/students", ctrl.Create)
	app.Post("/students/import", ctrl.Import)
	app.Post("/students/:id/graduate", ctrl.Graduate)
	return db, app
}

func createClass(t *testing.T, db *gorm.DB, name string) classModel.ClassModel {
	t.Helper()
	c := classModel.ClassModel{ClassName: name, ClassLevel: 1, ClassMonthlyFee: 1500, ClassIsActive: true}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, model.StudentModel) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, _ := io.ReadAll(resp.Body)
	var out struct {
		Data model.StudentModel `json:"data"`
	}
	_ = json.Unmarshal(raw, &out)
	return resp.StatusCode, out.Data
}

func studentBody(extra string) string {
	b := `{"student_full_name":"Abdullah","student_father_name":"Umar","student_guardian_phone":"0812","student_gender":"male","student_admission_date":"2025-03-01"`
	if extra != "" {
		b += "," + extra
	}
	return b + "}"
}

func TestCreateStudentCode(t *testing.T) {
	db, app := setupStudents(t)

	// tahun lain tidak ikut dihitung
	old := model.StudentModel{StudentCode: "STU-2024-0009", StudentFullName: "Lama", StudentFatherName: "X", StudentGuardianPhone: "1", StudentGender: model.GenderMale}
	require.NoError(t, db.Create(&old).Error)

	code, s1 := postJSON(t, app, "/students", studentBody(""))
	require.Equal(t, fiber.StatusCreated, code)
	assert.Equal(t, "STU-2025-0001", s1.StudentCode)

	code, s2 := postJSON(t, app, "/students", studentBody(""))
	require.Equal(t, fiber.StatusCreated, code)
	assert.Equal(t, "STU-2025-0002", s2.StudentCode)

	code, _ = postJSON(t, app, "/students", studentBody(`"student_code":"STU-2025-0002"`))
	assert.Equal(t, fiber.StatusConflict, code)
}

func TestRollNumberUniquePerClass(t *testing.T) {
	db, app := setupStudents(t)
	hifz := createClass(t, db, "Hifz")
	nazra := createClass(t, db, "Nazra")

	code, _ := postJSON(t, app, "/students", studentBody(`"student_class_id":"`+hifz.ClassID.String()+`","student_roll_number":5`))
	require.Equal(t, fiber.StatusCreated, code)

	code, _ = postJSON(t, app, "/students", studentBody(`"student_class_id":"`+hifz.ClassID.String()+`","student_roll_number":5`))
	assert.Equal(t, fiber.StatusConflict, code)

	code, _ = postJSON(t, app, "/students", studentBody(`"student_class_id":"`+nazra.ClassID.String()+`","student_roll_number":5`))
	assert.Equal(t, fiber.StatusCreated, code)

	code, _ = postJSON(t, app, "/students", studentBody(`"student_class_id":"`+uuid.NewString()+`"`))
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestImportReportsSkippedRows(t *testing.T) {
	db, app := setupStudents(t)
	hifz := createClass(t, db, "Hifz")

	buf, err := helperXLSX.Build(helperXLSX.Sheet{
		Name:    "Students",
		Headers: []string{"Name", "Father", "Phone", "Gender", "Roll"},
		Rows: [][]any{
			{"Abdullah", "Umar", "0812", "male", "1"},
			{"Yusuf", "", "0813", "male", ""},
			{"Maryam", "Imran", "0814", "x", ""},
			{"Bilal", "Rabah", "0815", "male", "satu"},
			{"Hamzah", "Abdul", "0816", "male", "1"},
			{"Aisyah", "Abu Bakr", "0817", "female", ""},
		},
	})
	require.NoError(t, err)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fw, err := w.CreateFormFile("file", "students.xlsx")
	require.NoError(t, err)
	_, err = io.Copy(fw, buf)
	require.NoError(t, err)
	require.NoError(t, w.WriteField("class_id", hifz.ClassID.String()))
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/students/import", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var out struct {
		Data service.ImportResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &out))

	assert.Equal(t, 2, out.Data.Imported)
	require.Len(t, out.Data.Skipped, 4)
	assert.Contains(t, out.Data.Skipped[0], "baris 3")
	assert.Contains(t, out.Data.Skipped[1], "baris 4")
	assert.Contains(t, out.Data.Skipped[2], "baris 5: roll number tidak valid")
	assert.Contains(t, out.Data.Skipped[3], "baris 6: roll number sudah dipakai")

	var n int64
	require.NoError(t, db.Model(&model.StudentModel{}).Where("student_class_id = ?", hifz.ClassID).Count(&n).Error)
	assert.Equal(t, int64(2), n)
}

func TestGraduateReleasesClassSlot(t *testing.T) {
	db, app := setupStudents(t)
	hifz := createClass(t, db, "Hifz")
	inClass := `"student_class_id":"` + hifz.ClassID.String() + `","student_roll_number":3`

	code, s := postJSON(t, app, "/students", studentBody(inClass))
	require.Equal(t, fiber.StatusCreated, code)

	code, _ = postJSON(t, app, "/students/"+s.StudentID.String()+"/graduate", `{"graduation_year":2025}`)
	require.Equal(t, fiber.StatusOK, code)

	var got model.StudentModel
	require.NoError(t, db.First(&got, "student_id = ?", s.StudentID).Error)
	assert.Equal(t, model.StudentStatusGraduated, got.StudentStatus)
	assert.Nil(t, got.StudentClassID)
	assert.Nil(t, got.StudentRollNumber)
	require.NotNil(t, got.StudentGraduationYear)
	assert.Equal(t, 2025, *got.StudentGraduationYear)

	code, _ = postJSON(t, app, "/students/"+s.StudentID.String()+"/graduate", `{}`)
	assert.Equal(t, fiber.StatusConflict, code)

	// roll 3 bisa dipakai siswa baru
	code, _ = postJSON(t, app, "/students", studentBody(inClass))
	assert.Equal(t, fiber.StatusCreated, code)
}
