package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
	AttendanceLeave   = "leave"
)

// AttendanceModel: satu baris per siswa per tanggal
type AttendanceModel struct {
	AttendanceID         uuid.UUID  `json:"attendance_id" gorm:"column:attendance_id;type:uuid;primaryKey"`
	AttendanceStudentID  uuid.UUID  `json:"attendance_student_id" gorm:"column:attendance_student_id;type:uuid;not null;uniqueIndex:uq_attendance_student_date"`
	AttendanceClassID    uuid.UUID  `json:"attendance_class_id" gorm:"column:attendance_class_id;type:uuid;not null;index:idx_attendance_class_date"`
	AttendanceDate       time.Time  `json:"attendance_date" gorm:"column:attendance_date;type:date;not null;uniqueIndex:uq_attendance_student_date;index:idx_attendance_class_date"`
	AttendanceStatus     string     `json:"attendance_status" gorm:"column:attendance_status;type:varchar(10);not null"`
	AttendanceRemarks    *string    `json:"attendance_remarks,omitempty" gorm:"column:attendance_remarks;type:text"`
	AttendanceRecordedBy *uuid.UUID `json:"attendance_recorded_by,omitempty" gorm:"column:attendance_recorded_by;type:uuid"`

	AttendanceCreatedAt time.Time `json:"attendance_created_at" gorm:"column:attendance_created_at;autoCreateTime"`
	AttendanceUpdatedAt time.Time `json:"attendance_updated_at" gorm:"column:attendance_updated_at;autoUpdateTime"`
}

func (AttendanceModel) TableName() string {
	return "attendances"
}

func (m *AttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceID == uuid.Nil {
		m.AttendanceID = uuid.New()
	}
	return nil
}

func IsValidStatus(s string) bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceLeave:
		return true
	}
	return false
}
