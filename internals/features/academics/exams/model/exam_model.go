package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ExamTypeMonthly    = "monthly"
	ExamTypeHalfYearly = "half_yearly"
	ExamTypeAnnual     = "annual"
	ExamTypeOther      = "other"
)

// ExamModel merepresentasikan tabel `exams`
type ExamModel struct {
	ExamID           uuid.UUID  `json:"exam_id" gorm:"column:exam_id;type:uuid;primaryKey"`
	ExamName         string     `json:"exam_name" gorm:"column:exam_name;type:varchar(150);not null"`
	ExamType         string     `json:"exam_type" gorm:"column:exam_type;type:varchar(20);not null"`
	ExamAcademicYear string     `json:"exam_academic_year" gorm:"column:exam_academic_year;type:varchar(20);not null;index"`
	ExamStartDate    time.Time  `json:"exam_start_date" gorm:"column:exam_start_date;type:date;not null"`
	ExamEndDate      *time.Time `json:"exam_end_date,omitempty" gorm:"column:exam_end_date;type:date"`
	ExamIsPublished  bool       `json:"exam_is_published" gorm:"column:exam_is_published;not null;index"`

	ExamCreatedAt time.Time `json:"exam_created_at" gorm:"column:exam_created_at;autoCreateTime"`
	ExamUpdatedAt time.Time `json:"exam_updated_at" gorm:"column:exam_updated_at;autoUpdateTime"`
}

func (ExamModel) TableName() string {
	return "exams"
}

func (m *ExamModel) BeforeCreate(tx *gorm.DB) error {
	if m.ExamID == uuid.Nil {
		m.ExamID = uuid.New()
	}
	return nil
}
