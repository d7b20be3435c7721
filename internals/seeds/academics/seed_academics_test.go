package academics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"madrasa_backend/internals/databases/testdb"
	classModel "madrasa_backend/internals/features/academics/classes/model"
	studentModel "madrasa_backend/internals/features/academics/students/model"
)

// guru pakai text[] (postgres saja), jadi test ini hanya kelas + siswa
func TestSeedIsIdempotent(t *testing.T) {
	db := testdb.New(t, &classModel.ClassModel{}, &studentModel.StudentModel{})
	roll := 1
	in := AcademicSeed{
		Classes: []ClassSeed{{Name: "Hifz", Level: 2, MonthlyFee: 1500}},
		Students: []StudentSeed{{
			Code: "STU-1", FullName: "Abdullah", FatherName: "Karim", GuardianPhone: "0180",
			Gender: studentModel.GenderMale, ClassName: "Hifz", RollNumber: &roll, AdmissionDate: "2025-01-10",
		}},
	}

	res, err := Seed(db, in)
	require.NoError(t, err)
	assert.Equal(t, Result{Classes: 1, Students: 1}, res)

	res, err = Seed(db, in)
	require.NoError(t, err)
	assert.Equal(t, Result{}, res)

	var n int64
	db.Model(&studentModel.StudentModel{}).Count(&n)
	assert.Equal(t, int64(1), n)
}

func TestSeedUnknownClass(t *testing.T) {
	db := testdb.New(t, &classModel.ClassModel{}, &studentModel.StudentModel{})
	_, err := Seed(db, AcademicSeed{Students: []StudentSeed{{Code: "STU-9", ClassName: "Tidak Ada", AdmissionDate: "2025-01-01"}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Tidak Ada")
}
