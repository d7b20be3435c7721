package dto

import (
	"strings"

	"madrasa_backend/internals/features/academics/exams/model"
	"madrasa_backend/internals/helpers/dbtime"
)

type CreateExamRequest struct {
	ExamName         string `json:"exam_name" validate:"required,min=2,max=150"`
	ExamType         string `json:"exam_type" validate:"required,oneof=monthly half_yearly annual other"`
	ExamAcademicYear string `json:"exam_academic_year" validate:"required,max=20"`
	ExamStartDate    string `json:"exam_start_date" validate:"required,datetime=2006-01-02"`
	ExamEndDate      string `json:"exam_end_date" validate:"omitempty,datetime=2006-01-02"`
	ExamIsPublished  bool   `json:"exam_is_published"`
}

type UpdateExamRequest struct {
	ExamName         *string `json:"exam_name" validate:"omitempty,min=2,max=150"`
	ExamType         *string `json:"exam_type" validate:"omitempty,oneof=monthly half_yearly annual other"`
	ExamAcademicYear *string `json:"exam_academic_year" validate:"omitempty,min=1,max=20"`
	ExamStartDate    *string `json:"exam_start_date" validate:"omitempty,datetime=2006-01-02"`
	ExamEndDate      *string `json:"exam_end_date" validate:"omitempty,datetime=2006-01-02"` // "" = hapus
	ExamIsPublished  *bool   `json:"exam_is_published"`
}

type PublishExamRequest struct {
	IsPublished *bool `json:"is_published" validate:"required"`
}

func (r *CreateExamRequest) ToModel() *model.ExamModel {
	m := &model.ExamModel{
		ExamName:         strings.TrimSpace(r.ExamName),
		ExamType:         r.ExamType,
		ExamAcademicYear: strings.TrimSpace(r.ExamAcademicYear),
		ExamIsPublished:  r.ExamIsPublished,
	}
	m.ExamStartDate, _ = dbtime.ParseDate(r.ExamStartDate)
	m.ExamEndDate, _ = dbtime.ParseDatePtr(r.ExamEndDate)
	return m
}

func (r *UpdateExamRequest) ApplyToModel(m *model.ExamModel) {
	if r.ExamName != nil {
		m.ExamName = strings.TrimSpace(*r.ExamName)
	}
	if r.ExamType != nil {
		m.ExamType = *r.ExamType
	}
	if r.ExamAcademicYear != nil {
		m.ExamAcademicYear = strings.TrimSpace(*r.ExamAcademicYear)
	}
	if r.ExamStartDate != nil {
		if d, err := dbtime.ParseDate(*r.ExamStartDate); err == nil {
			m.ExamStartDate = d
		}
	}
	if r.ExamEndDate != nil {
		m.ExamEndDate, _ = dbtime.ParseDatePtr(*r.ExamEndDate)
	}
	if r.ExamIsPublished != nil {
		m.ExamIsPublished = *r.ExamIsPublished
	}
}
