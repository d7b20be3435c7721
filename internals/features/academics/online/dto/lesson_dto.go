package dto

import (
	"strings"

	"github.com/google/uuid"

	"madrasa_backend/internals/features/academics/online/model"
	helper "madrasa_backend/internals/helpers"
)

type CreateLessonRequest struct {
	CourseID        uuid.UUID `json:"lesson_course_id" validate:"required"`
	Title           string    `json:"lesson_title" validate:"required,min=2,max=200"`
	Content         *string   `json:"lesson_content"`
	VideoURL        *string   `json:"lesson_video_url" validate:"omitempty,url"`
	Position        *int      `json:"lesson_position" validate:"omitempty,min=1"`
	DurationMinutes *int      `json:"lesson_duration_minutes" validate:"omitempty,min=1,max=600"`
}

type UpdateLessonRequest struct {
	Title           *string `json:"lesson_title" validate:"omitempty,min=2,max=200"`
	Content         *string `json:"lesson_content"`
	VideoURL        *string `json:"lesson_video_url" validate:"omitempty,url"`
	Position        *int    `json:"lesson_position" validate:"omitempty,min=1"`
	DurationMinutes *int    `json:"lesson_duration_minutes" validate:"omitempty,min=1,max=600"`
}

// ToModel: position kosong diisi controller (append di akhir)
func (r CreateLessonRequest) ToModel() *model.LessonModel {
	m := &model.LessonModel{
		LessonCourseID:        r.CourseID,
		LessonTitle:           strings.TrimSpace(r.Title),
		LessonContent:         r.Content,
		LessonVideoURL:        helper.TrimPtr(r.VideoURL),
		LessonDurationMinutes: r.DurationMinutes,
	}
	if r.Position != nil {
		m.LessonPosition = *r.Position
	}
	return m
}

func (r UpdateLessonRequest) ApplyToModel(m *model.LessonModel) {
	if r.Title != nil {
		m.LessonTitle = strings.TrimSpace(*r.Title)
	}
	if r.Content != nil {
		m.LessonContent = r.Content
	}
	if r.VideoURL != nil {
		m.LessonVideoURL = helper.TrimPtr(r.VideoURL)
	}
	if r.Position != nil {
		m.LessonPosition = *r.Position
	}
	if r.DurationMinutes != nil {
		m.LessonDurationMinutes = r.DurationMinutes
	}
}

func NewLessonSummary(m model.LessonModel) LessonSummary {
	return LessonSummary{
		LessonID:              m.LessonID,
		LessonTitle:           m.LessonTitle,
		LessonPosition:        m.LessonPosition,
		LessonDurationMinutes: m.LessonDurationMinutes,
	}
}
