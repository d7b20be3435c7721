package dto

import (
	"strings"

	"github.com/google/uuid"

	"madrasa_backend/internals/features/academics/online/model"
	helper "madrasa_backend/internals/helpers"
)

type CreateCourseRequest struct {
	Title               string     `json:"course_title" validate:"required,min=3,max=200"`
	Slug                *string    `json:"course_slug" validate:"omitempty,max=160"`
	Description         *string    `json:"course_description"`
	InstructorTeacherID *uuid.UUID `json:"course_instructor_teacher_id"`
	ThumbnailURL        *string    `json:"course_thumbnail_url" validate:"omitempty,url"`
	IsPublished         *bool      `json:"course_is_published"`
}

type UpdateCourseRequest struct {
	Title               *string    `json:"course_title" validate:"omitempty,min=3,max=200"`
	Slug                *string    `json:"course_slug" validate:"omitempty,max=160"`
	Description         *string    `json:"course_description"`
	InstructorTeacherID *uuid.UUID `json:"course_instructor_teacher_id"`
	ThumbnailURL        *string    `json:"course_thumbnail_url" validate:"omitempty,url"`
	IsPublished         *bool      `json:"course_is_published"`
}

// CourseResponse: course + jumlah lesson
type CourseResponse struct {
	model.CourseModel
	LessonCount int64 `json:"lesson_count"`
}

// CourseDetailResponse: untuk halaman publik /courses/:slug
type CourseDetailResponse struct {
	model.CourseModel
	Lessons []LessonSummary `json:"lessons"`
}

type LessonSummary struct {
	LessonID              uuid.UUID `json:"lesson_id"`
	LessonTitle           string    `json:"lesson_title"`
	LessonPosition        int       `json:"lesson_position"`
	LessonDurationMinutes *int      `json:"lesson_duration_minutes,omitempty"`
}

// BaseSlug: slug eksplisit kalau ada, selain itu dari judul
func (r CreateCourseRequest) BaseSlug() string {
	if r.Slug != nil && strings.TrimSpace(*r.Slug) != "" {
		return helper.Slugify(*r.Slug, 160)
	}
	return helper.Slugify(r.Title, 160)
}

func (r CreateCourseRequest) ToModel() *model.CourseModel {
	m := &model.CourseModel{
		CourseTitle:               strings.TrimSpace(r.Title),
		CourseDescription:         helper.TrimPtr(r.Description),
		CourseInstructorTeacherID: r.InstructorTeacherID,
		CourseThumbnailURL:        helper.TrimPtr(r.ThumbnailURL),
	}
	if r.IsPublished != nil {
		m.CourseIsPublished = *r.IsPublished
	}
	return m
}

// ApplyToModel tidak menyentuh slug; slug diurus controller
func (r UpdateCourseRequest) ApplyToModel(m *model.CourseModel) {
	if r.Title != nil {
		m.CourseTitle = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		m.CourseDescription = helper.TrimPtr(r.Description)
	}
	if r.InstructorTeacherID != nil {
		if *r.InstructorTeacherID == uuid.Nil {
			m.CourseInstructorTeacherID = nil
		} else {
			m.CourseInstructorTeacherID = r.InstructorTeacherID
		}
	}
	if r.ThumbnailURL != nil {
		m.CourseThumbnailURL = helper.TrimPtr(r.ThumbnailURL)
	}
	if r.IsPublished != nil {
		m.CourseIsPublished = *r.IsPublished
	}
}
