package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StudentStatusActive      = "active"
	StudentStatusInactive    = "inactive"
	StudentStatusGraduated   = "graduated"
	StudentStatusTransferred = "transferred"

	GenderMale   = "male"
	GenderFemale = "female"
)

// StudentModel merepresentasikan tabel `students`
type StudentModel struct {
	StudentID   uuid.UUID `json:"student_id" gorm:"column:student_id;type:uuid;primaryKey"`
	StudentCode string    `json:"student_code" gorm:"column:student_code;type:varchar(30);not null;uniqueIndex:uq_students_code"`

	StudentFullName       string     `json:"student_full_name" gorm:"column:student_full_name;type:varchar(150);not null;index"`
	StudentFullNameArabic *string    `json:"student_full_name_arabic,omitempty" gorm:"column:student_full_name_arabic;type:varchar(150)"`
	StudentFatherName     string     `json:"student_father_name" gorm:"column:student_father_name;type:varchar(150);not null"`
	StudentMotherName     *string    `json:"student_mother_name,omitempty" gorm:"column:student_mother_name;type:varchar(150)"`
	StudentGuardianName   *string    `json:"student_guardian_name,omitempty" gorm:"column:student_guardian_name;type:varchar(150)"`
	StudentGuardianPhone  string     `json:"student_guardian_phone" gorm:"column:student_guardian_phone;type:varchar(30);not null"`
	StudentDateOfBirth    *time.Time `json:"student_date_of_birth,omitempty" gorm:"column:student_date_of_birth;type:date"`
	StudentGender         string     `json:"student_gender" gorm:"column:student_gender;type:varchar(10);not null"`
	StudentAddress        *string    `json:"student_address,omitempty" gorm:"column:student_address;type:text"`

	// roll unik per kelas (NULL boleh banyak)
	StudentClassID    *uuid.UUID `json:"student_class_id,omitempty" gorm:"column:student_class_id;type:uuid;uniqueIndex:uq_students_class_roll"`
	StudentRollNumber *int       `json:"student_roll_number,omitempty" gorm:"column:student_roll_number;uniqueIndex:uq_students_class_roll"`

	StudentAdmissionDate time.Time `json:"student_admission_date" gorm:"column:student_admission_date;type:date;not null"`
	StudentStatus        string    `json:"student_status" gorm:"column:student_status;type:varchar(20);not null;index"`

	// lillah: santri yang biayanya ditanggung donatur
	StudentIsLillah             bool    `json:"student_is_lillah" gorm:"column:student_is_lillah;not null;index"`
	StudentLillahSponsor        *string `json:"student_lillah_sponsor,omitempty" gorm:"column:student_lillah_sponsor;type:varchar(150)"`
	StudentLillahMonthlySupport int64   `json:"student_lillah_monthly_support" gorm:"column:student_lillah_monthly_support;not null"`

	StudentPhotoURL       *string `json:"student_photo_url,omitempty" gorm:"column:student_photo_url;type:text"`
	StudentGraduationYear *int    `json:"student_graduation_year,omitempty" gorm:"column:student_graduation_year;index"`
	StudentNotes          *string `json:"student_notes,omitempty" gorm:"column:student_notes;type:text"`

	StudentCreatedAt time.Time `json:"student_created_at" gorm:"column:student_created_at;autoCreateTime"`
	StudentUpdatedAt time.Time `json:"student_updated_at" gorm:"column:student_updated_at;autoUpdateTime"`
}

func (StudentModel) TableName() string {
	return "students"
}

func (m *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.StudentID == uuid.Nil {
		m.StudentID = uuid.New()
	}
	if m.StudentStatus == "" {
		m.StudentStatus = StudentStatusActive
	}
	return nil
}

func IsValidStatus(s string) bool {
	switch s {
	case StudentStatusActive, StudentStatusInactive, StudentStatusGraduated, StudentStatusTransferred:
		return true
	}
	return false
}
