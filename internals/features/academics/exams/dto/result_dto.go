package dto

import (
	"github.com/google/uuid"
)

type CreateResultRequest struct {
	ExamID        uuid.UUID `json:"exam_id" validate:"required"`
	StudentID     uuid.UUID `json:"student_id" validate:"required"`
	Subject       string    `json:"subject" validate:"required,min=1,max=80"`
	MarksObtained float64   `json:"marks_obtained" validate:"min=0,ltefield=TotalMarks"`
	TotalMarks    float64   `json:"total_marks" validate:"required,gt=0"`
	Remarks       *string   `json:"remarks" validate:"omitempty,max=255"`
}

type UpdateResultRequest struct {
	Subject       *string  `json:"subject" validate:"omitempty,min=1,max=80"`
	MarksObtained *float64 `json:"marks_obtained" validate:"omitempty,min=0"`
	TotalMarks    *float64 `json:"total_marks" validate:"omitempty,gt=0"`
	Remarks       *string  `json:"remarks" validate:"omitempty,max=255"`
}

type BulkResultEntry struct {
	StudentID     uuid.UUID `json:"student_id" validate:"required"`
	MarksObtained float64   `json:"marks_obtained" validate:"min=0"`
	Remarks       *string   `json:"remarks" validate:"omitempty,max=255"`
}

// POST /api/a/results/bulk: satu ujian + kelas + mapel
type BulkResultRequest struct {
	ExamID     uuid.UUID         `json:"exam_id" validate:"required"`
	ClassID    uuid.UUID         `json:"class_id" validate:"required"`
	Subject    string            `json:"subject" validate:"required,min=1,max=80"`
	TotalMarks float64           `json:"total_marks" validate:"required,gt=0"`
	Entries    []BulkResultEntry `json:"entries" validate:"required,min=1,dive"`
}

// ResultRow: baris hasil join results + students + classes (input agregasi)
type ResultRow struct {
	StudentID     uuid.UUID `json:"student_id" gorm:"column:student_id"`
	StudentCode   string    `json:"student_code" gorm:"column:student_code"`
	StudentName   string    `json:"student_name" gorm:"column:student_name"`
	RollNumber    *int      `json:"roll_number,omitempty" gorm:"column:roll_number"`
	ClassID       uuid.UUID `json:"class_id" gorm:"column:class_id"`
	ClassName     string    `json:"class_name" gorm:"column:class_name"`
	Subject       string    `json:"subject" gorm:"column:subject"`
	MarksObtained float64   `json:"marks_obtained" gorm:"column:marks_obtained"`
	TotalMarks    float64   `json:"total_marks" gorm:"column:total_marks"`
	Grade         string    `json:"grade" gorm:"column:grade"`
	Remarks       *string   `json:"remarks,omitempty" gorm:"column:remarks"`
}

type RankedStudent struct {
	Rank          int       `json:"rank"`
	StudentID     uuid.UUID `json:"student_id"`
	StudentCode   string    `json:"student_code"`
	StudentName   string    `json:"student_name"`
	RollNumber    *int      `json:"roll_number,omitempty"`
	ClassID       uuid.UUID `json:"class_id"`
	ClassName     string    `json:"class_name"`
	Subjects      int       `json:"subjects"`
	TotalObtained float64   `json:"total_obtained"`
	TotalMarks    float64   `json:"total_marks"`
	Percentage    float64   `json:"percentage"`
	Grade         string    `json:"grade"`
	Failed        bool      `json:"failed"`
}

type SubjectMark struct {
	Subject       string  `json:"subject"`
	MarksObtained float64 `json:"marks_obtained"`
	TotalMarks    float64 `json:"total_marks"`
	Percentage    float64 `json:"percentage"`
	Grade         string  `json:"grade"`
	Remarks       *string `json:"remarks,omitempty"`
}

type ReportCard struct {
	Exam     any           `json:"exam"`
	Student  RankedStudent `json:"student"`
	Subjects []SubjectMark `json:"subjects"`
	// jumlah siswa di kelas yang ikut ujian
	ClassSize int `json:"class_size"`
}

type PublicResults struct {
	Exam    any             `json:"exam"`
	ClassID *uuid.UUID      `json:"class_id,omitempty"`
	Results []RankedStudent `json:"results"`
	Top     []RankedStudent `json:"top"`
}
