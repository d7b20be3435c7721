package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResultModel: nilai satu mapel untuk satu siswa di satu ujian
type ResultModel struct {
	ResultID            uuid.UUID `json:"result_id" gorm:"column:result_id;type:uuid;primaryKey"`
	ResultExamID        uuid.UUID `json:"result_exam_id" gorm:"column:result_exam_id;type:uuid;not null;uniqueIndex:uq_results_exam_student_subject;index:idx_results_exam_class"`
	ResultStudentID     uuid.UUID `json:"result_student_id" gorm:"column:result_student_id;type:uuid;not null;uniqueIndex:uq_results_exam_student_subject"`
	ResultClassID       uuid.UUID `json:"result_class_id" gorm:"column:result_class_id;type:uuid;not null;index:idx_results_exam_class"`
	ResultSubject       string    `json:"result_subject" gorm:"column:result_subject;type:varchar(80);not null;uniqueIndex:uq_results_exam_student_subject"`
	ResultMarksObtained float64   `json:"result_marks_obtained" gorm:"column:result_marks_obtained;type:numeric(7,2);not null"`
	ResultTotalMarks    float64   `json:"result_total_marks" gorm:"column:result_total_marks;type:numeric(7,2);not null"`
	ResultGrade         string    `json:"result_grade" gorm:"column:result_grade;type:varchar(3);not null"`
	ResultRemarks       *string   `json:"result_remarks,omitempty" gorm:"column:result_remarks;type:text"`

	ResultCreatedAt time.Time `json:"result_created_at" gorm:"column:result_created_at;autoCreateTime"`
	ResultUpdatedAt time.Time `json:"result_updated_at" gorm:"column:result_updated_at;autoUpdateTime"`
}

func (ResultModel) TableName() string {
	return "exam_results"
}

func (m *ResultModel) BeforeCreate(tx *gorm.DB) error {
	if m.ResultID == uuid.Nil {
		m.ResultID = uuid.New()
	}
	return nil
}
