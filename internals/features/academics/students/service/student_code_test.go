package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"madrasa_backend/internals/databases/testdb"
	"madrasa_backend/internals/features/academics/students/model"
	helper "madrasa_backend/internals/helpers"
)

func newStudent(code string) *model.StudentModel {
	return &model.StudentModel{
		StudentCode:          code,
		StudentFullName:      "Abdullah",
		StudentFatherName:    "Umar",
		StudentGuardianPhone: "0812",
		StudentGender:        model.GenderMale,
	}
}

func TestNextStudentCode(t *testing.T) {
	db := testdb.New(t, &model.StudentModel{})

	code, err := NextStudentCode(db, 2025)
	require.NoError(t, err)
	assert.Equal(t, "STU-2025-0001", code)

	for _, c := range []string{"STU-2025-0007", "STU-2025-0002", "STU-2026-0040", "manual-1"} {
		require.NoError(t, db.Create(newStudent(c)).Error)
	}
	code, err = NextStudentCode(db, 2025)
	require.NoError(t, err)
	assert.Equal(t, "STU-2025-0008", code)
}

func TestCreateWithCodeRetriesOnCollision(t *testing.T) {
	db := testdb.New(t, &model.StudentModel{})

	// insert pertama gagal seperti bentrok dengan request paralel
	calls := 0
	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("test:collide", func(d *gorm.DB) {
		calls++
		if calls == 1 {
			_ = d.AddError(errors.New("UNIQUE constraint failed: students.student_code"))
		}
	}))

	m := newStudent("")
	require.NoError(t, CreateWithCode(db, m, 2025, helper.IsUniqueViolation))
	assert.Equal(t, 2, calls)
	assert.Equal(t, "STU-2025-0001", m.StudentCode)

	var n int64
	require.NoError(t, db.Model(&model.StudentModel{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestCreateWithCodeStopsOnOtherErrors(t *testing.T) {
	db := testdb.New(t, &model.StudentModel{})

	calls := 0
	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("test:fail", func(d *gorm.DB) {
		calls++
		_ = d.AddError(errors.New("disk penuh"))
	}))

	err := CreateWithCode(db, newStudent(""), 2025, helper.IsUniqueViolation)
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}
