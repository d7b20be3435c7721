package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"madrasa_backend/internals/databases/testdb"
	"madrasa_backend/internals/features/academics/classes/model"
	studentModel "madrasa_backend/internals/features/academics/students/model"
)

func TestDeleteClassWithStudentsConflict(t *testing.T) {
	db := testdb.New(t, &model.ClassModel{}, &studentModel.StudentModel{})
	app := fiber.New()
	app.Delete("/classes/:id", NewClassController(db).Delete)

	hifz := model.ClassModel{ClassName: "Hifz", ClassLevel: 1, ClassMonthlyFee: 1500, ClassIsActive: true}
	require.NoError(t, db.Create(&hifz).Error)
	s := studentModel.StudentModel{
		StudentCode:          "STU-2025-0001",
		StudentFullName:      "Abdullah",
		StudentFatherName:    "Umar",
		StudentGuardianPhone: "0812",
		StudentGender:        studentModel.GenderMale,
		StudentClassID:       &hifz.ClassID,
	}
	require.NoError(t, db.Create(&s).Error)

	del := func(id uuid.UUID) int {
		resp, err := app.Test(httptest.NewRequest("DELETE", "/classes/"+id.String(), nil), -1)
		require.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, fiber.StatusConflict, del(hifz.ClassID))

	var n int64
	require.NoError(t, db.Model(&model.ClassModel{}).Where("class_id = ?", hifz.ClassID).Count(&n).Error)
	assert.Equal(t, int64(1), n)

	require.NoError(t, db.Model(&s).Update("student_class_id", nil).Error)
	assert.Equal(t, fiber.StatusOK, del(hifz.ClassID))
	assert.Equal(t, fiber.StatusNotFound, del(uuid.New()))
}
