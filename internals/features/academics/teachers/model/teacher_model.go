package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	TeacherStatusActive   = "active"
	TeacherStatusInactive = "inactive"
	TeacherStatusResigned = "resigned"
)

// TeacherModel merepresentasikan tabel `teachers`
type TeacherModel struct {
	TeacherID            uuid.UUID      `json:"teacher_id" gorm:"column:teacher_id;type:uuid;primaryKey"`
	TeacherEmployeeCode  string         `json:"teacher_employee_code" gorm:"column:teacher_employee_code;type:varchar(20);not null;uniqueIndex:uq_teachers_employee_code"`
	TeacherFullName      string         `json:"teacher_full_name" gorm:"column:teacher_full_name;type:varchar(150);not null;index"`
	TeacherPhone         string         `json:"teacher_phone" gorm:"column:teacher_phone;type:varchar(30);not null"`
	TeacherEmail         *string        `json:"teacher_email,omitempty" gorm:"column:teacher_email;type:varchar(255)"`
	TeacherQualification *string        `json:"teacher_qualification,omitempty" gorm:"column:teacher_qualification;type:varchar(255)"`
	TeacherSubjects      pq.StringArray `json:"teacher_subjects" gorm:"column:teacher_subjects;type:text[]"`
	TeacherJoiningDate   time.Time      `json:"teacher_joining_date" gorm:"column:teacher_joining_date;type:date;not null"`
	TeacherMonthlySalary int64          `json:"teacher_monthly_salary" gorm:"column:teacher_monthly_salary;not null"`
	TeacherStatus        string         `json:"teacher_status" gorm:"column:teacher_status;type:varchar(20);not null;index"`
	TeacherPhotoURL      *string        `json:"teacher_photo_url,omitempty" gorm:"column:teacher_photo_url;type:text"`
	TeacherUserID        *uuid.UUID     `json:"teacher_user_id,omitempty" gorm:"column:teacher_user_id;type:uuid;index"` // akun login (opsional)

	TeacherCreatedAt time.Time `json:"teacher_created_at" gorm:"column:teacher_created_at;autoCreateTime"`
	TeacherUpdatedAt time.Time `json:"teacher_updated_at" gorm:"column:teacher_updated_at;autoUpdateTime"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}

func (m *TeacherModel) BeforeCreate(tx *gorm.DB) error {
	if m.TeacherID == uuid.Nil {
		m.TeacherID = uuid.New()
	}
	if m.TeacherStatus == "" {
		m.TeacherStatus = TeacherStatusActive
	}
	if m.TeacherSubjects == nil {
		m.TeacherSubjects = pq.StringArray{}
	}
	return nil
}
