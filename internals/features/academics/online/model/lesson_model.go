package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LessonModel: materi di dalam course, diurutkan by position
type LessonModel struct {
	LessonID              uuid.UUID `json:"lesson_id" gorm:"column:lesson_id;type:uuid;primaryKey"`
	LessonCourseID        uuid.UUID `json:"lesson_course_id" gorm:"column:lesson_course_id;type:uuid;not null;index"`
	LessonTitle           string    `json:"lesson_title" gorm:"column:lesson_title;type:varchar(200);not null"`
	LessonContent         *string   `json:"lesson_content,omitempty" gorm:"column:lesson_content;type:text"`
	LessonVideoURL        *string   `json:"lesson_video_url,omitempty" gorm:"column:lesson_video_url;type:text"`
	LessonPosition        int       `json:"lesson_position" gorm:"column:lesson_position;not null"`
	LessonDurationMinutes *int      `json:"lesson_duration_minutes,omitempty" gorm:"column:lesson_duration_minutes"`

	LessonCreatedAt time.Time `json:"lesson_created_at" gorm:"column:lesson_created_at;autoCreateTime"`
	LessonUpdatedAt time.Time `json:"lesson_updated_at" gorm:"column:lesson_updated_at;autoUpdateTime"`
}

func (LessonModel) TableName() string { return "lessons" }

func (m *LessonModel) BeforeCreate(tx *gorm.DB) error {
	if m.LessonID == uuid.Nil {
		m.LessonID = uuid.New()
	}
	return nil
}
