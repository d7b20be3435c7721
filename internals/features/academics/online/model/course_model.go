package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseModel struct {
	CourseID                  uuid.UUID  `json:"course_id" gorm:"column:course_id;type:uuid;primaryKey"`
	CourseTitle               string     `json:"course_title" gorm:"column:course_title;type:varchar(200);not null"`
	CourseSlug                string     `json:"course_slug" gorm:"column:course_slug;type:varchar(160);not null;uniqueIndex:uq_courses_slug"`
	CourseDescription         *string    `json:"course_description,omitempty" gorm:"column:course_description;type:text"`
	CourseInstructorTeacherID *uuid.UUID `json:"course_instructor_teacher_id,omitempty" gorm:"column:course_instructor_teacher_id;type:uuid;index"`
	CourseThumbnailURL        *string    `json:"course_thumbnail_url,omitempty" gorm:"column:course_thumbnail_url;type:text"`
	CourseIsPublished         bool       `json:"course_is_published" gorm:"column:course_is_published;not null;index"`

	CourseCreatedAt time.Time `json:"course_created_at" gorm:"column:course_created_at;autoCreateTime"`
	CourseUpdatedAt time.Time `json:"course_updated_at" gorm:"column:course_updated_at;autoUpdateTime"`
}

func (CourseModel) TableName() string { return "courses" }

func (m *CourseModel) BeforeCreate(tx *gorm.DB) error {
	if m.CourseID == uuid.Nil {
		m.CourseID = uuid.New()
	}
	return nil
}
