package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"madrasa_backend/internals/features/academics/attendance/model"
	studentModel "madrasa_backend/internals/features/academics/students/model"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		name                 string
		present, late, total int
		want                 float64
	}{
		{"no data", 0, 0, 0, 0},
		{"all present", 5, 0, 5, 100},
		{"late counts as attended", 1, 1, 3, 66.67},
		{"one third", 1, 0, 3, 33.33},
		{"half", 2, 0, 4, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Percentage(tt.present, tt.late, tt.total))
		})
	}
}

func mark(student uuid.UUID, status string) model.AttendanceModel {
	return model.AttendanceModel{AttendanceID: uuid.New(), AttendanceStudentID: student, AttendanceStatus: status}
}

func TestSummarize(t *testing.T) {
	a := studentModel.StudentModel{StudentID: uuid.New(), StudentFullName: "Zaid"}
	b := studentModel.StudentModel{StudentID: uuid.New(), StudentFullName: "Ahmad"}
	outsider := uuid.New()

	rows := []model.AttendanceModel{
		mark(a.StudentID, model.AttendancePresent),
		mark(a.StudentID, model.AttendanceLate),
		mark(a.StudentID, model.AttendanceAbsent),
		mark(a.StudentID, model.AttendanceLeave),
		mark(outsider, model.AttendancePresent),
	}

	got := Summarize([]studentModel.StudentModel{a, b}, rows)
	require.Len(t, got, 2)

	// urut nama
	assert.Equal(t, "Ahmad", got[0].StudentFullName)
	assert.Equal(t, 0, got[0].Total)
	assert.Equal(t, float64(0), got[0].Percentage)

	assert.Equal(t, "Zaid", got[1].StudentFullName)
	assert.Equal(t, 1, got[1].Present)
	assert.Equal(t, 1, got[1].Late)
	assert.Equal(t, 1, got[1].Absent)
	assert.Equal(t, 1, got[1].Leave)
	assert.Equal(t, 4, got[1].Total)
	assert.Equal(t, float64(50), got[1].Percentage)
}

func TestMergeRoster_UnmarkedStudentsHaveEmptyStatus(t *testing.T) {
	a := studentModel.StudentModel{StudentID: uuid.New(), StudentFullName: "Bilal"}
	b := studentModel.StudentModel{StudentID: uuid.New(), StudentFullName: "Umar"}

	got := MergeRoster([]studentModel.StudentModel{a, b}, []model.AttendanceModel{mark(b.StudentID, model.AttendanceLate)})

	require.Len(t, got, 2)
	assert.Equal(t, "", got[0].Status)
	assert.Nil(t, got[0].AttendanceID)
	assert.Equal(t, model.AttendanceLate, got[1].Status)
	assert.NotNil(t, got[1].AttendanceID)
}

func TestRate(t *testing.T) {
	s := uuid.New()
	assert.Equal(t, float64(0), Rate(nil))
	assert.Equal(t, 66.67, Rate([]model.AttendanceModel{
		mark(s, model.AttendancePresent), mark(s, model.AttendanceLate), mark(s, model.AttendanceAbsent),
	}))
}
