package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"madrasa_backend/internals/databases/testdb"
	classModel "madrasa_backend/internals/features/academics/classes/model"
	studentModel "madrasa_backend/internals/features/academics/students/model"
	"madrasa_backend/internals/features/finance/fees/model"
)

func seedStudent(t *testing.T, db *gorm.DB, code string, classID uuid.UUID, lillah bool, status string) uuid.UUID {
	t.Helper()
	s := studentModel.StudentModel{
		StudentCode:          code,
		StudentFullName:      "Siswa " + code,
		StudentFatherName:    "Ayah",
		StudentGuardianPhone: "0100",
		StudentGender:        studentModel.GenderMale,
		StudentClassID:       &classID,
		StudentAdmissionDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		StudentStatus:        status,
		StudentIsLillah:      lillah,
	}
	require.NoError(t, db.Create(&s).Error)
	return s.StudentID
}

func TestGenerateMonthlySkipsLillahInactiveAndExisting(t *testing.T) {
	db := testdb.New(t, &classModel.ClassModel{}, &studentModel.StudentModel{}, &model.FeeModel{})

	cls := classModel.ClassModel{ClassName: "Hifz 1", ClassLevel: 1, ClassMonthlyFee: 1200, ClassIsActive: true}
	require.NoError(t, db.Create(&cls).Error)

	a := seedStudent(t, db, "STU-2026-0001", cls.ClassID, false, studentModel.StudentStatusActive)
	seedStudent(t, db, "STU-2026-0002", cls.ClassID, true, studentModel.StudentStatusActive)
	seedStudent(t, db, "STU-2026-0003", cls.ClassID, false, studentModel.StudentStatusGraduated)
	b := seedStudent(t, db, "STU-2026-0004", cls.ClassID, false, studentModel.StudentStatusActive)

	month := "2026-04"
	require.NoError(t, db.Create(&model.FeeModel{
		FeeStudentID: b, FeeType: model.FeeTypeMonthly, FeeMonth: &month, FeeAmount: 1200,
	}).Error)

	res, err := GenerateMonthly(db, month, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Created)
	assert.Equal(t, 1, res.Skipped)

	var fee model.FeeModel
	require.NoError(t, db.Where("fee_student_id = ? AND fee_month = ?", a, month).First(&fee).Error)
	assert.Equal(t, int64(1200), fee.FeeAmount)
	assert.Equal(t, model.FeeStatusUnpaid, fee.FeeStatus)
	require.NotNil(t, fee.FeeDueDate)
	assert.Equal(t, 10, fee.FeeDueDate.Day())

	// dijalankan ulang: tidak ada tagihan baru
	res, err = GenerateMonthly(db, month, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Created)
	assert.Equal(t, 2, res.Skipped)

	_, err = GenerateMonthly(db, "2026-13", 10)
	assert.Error(t, err)
}

func TestMarkOverdue(t *testing.T) {
	db := testdb.New(t, &model.FeeModel{})

	past := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	future := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	rows := []model.FeeModel{
		{FeeStudentID: uuid.New(), FeeType: model.FeeTypeExam, FeeAmount: 100, FeeDueDate: &past, FeeStatus: model.FeeStatusUnpaid},
		{FeeStudentID: uuid.New(), FeeType: model.FeeTypeExam, FeeAmount: 100, FeePaidAmount: 50, FeeDueDate: &past, FeeStatus: model.FeeStatusPartial},
		{FeeStudentID: uuid.New(), FeeType: model.FeeTypeExam, FeeAmount: 100, FeeDueDate: &future, FeeStatus: model.FeeStatusUnpaid},
		{FeeStudentID: uuid.New(), FeeType: model.FeeTypeOther, FeeAmount: 100, FeeStatus: model.FeeStatusUnpaid},
	}
	require.NoError(t, db.Create(&rows).Error)

	n, err := MarkOverdue(db, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	var overdue int64
	db.Model(&model.FeeModel{}).Where("fee_status = ?", model.FeeStatusOverdue).Count(&overdue)
	assert.Equal(t, int64(1), overdue)
}
