package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	PlatformZoom  = "zoom"
	PlatformMeet  = "meet"
	PlatformOther = "other"
)

// Weekdays disimpan sebagai singkatan 3 huruf
var Weekdays = []string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// OnlineClassModel: jadwal kelas live (zoom/meet) yang berulang mingguan
type OnlineClassModel struct {
	OnlineClassID              uuid.UUID      `json:"online_class_id" gorm:"column:online_class_id;type:uuid;primaryKey"`
	OnlineClassTitle           string         `json:"online_class_title" gorm:"column:online_class_title;type:varchar(200);not null"`
	OnlineClassClassID         *uuid.UUID     `json:"online_class_class_id,omitempty" gorm:"column:online_class_class_id;type:uuid;index"`
	OnlineClassCourseID        *uuid.UUID     `json:"online_class_course_id,omitempty" gorm:"column:online_class_course_id;type:uuid;index"`
	OnlineClassTeacherID       *uuid.UUID     `json:"online_class_teacher_id,omitempty" gorm:"column:online_class_teacher_id;type:uuid;index"`
	OnlineClassPlatform        string         `json:"online_class_platform" gorm:"column:online_class_platform;type:varchar(20);not null"`
	OnlineClassMeetingURL      string         `json:"online_class_meeting_url" gorm:"column:online_class_meeting_url;type:text;not null"`
	OnlineClassWeekdays        pq.StringArray `json:"online_class_weekdays" gorm:"column:online_class_weekdays;type:text[];not null"`
	OnlineClassStartTime       string         `json:"online_class_start_time" gorm:"column:online_class_start_time;type:varchar(5);not null"` // HH:MM
	OnlineClassDurationMinutes int            `json:"online_class_duration_minutes" gorm:"column:online_class_duration_minutes;not null"`
	OnlineClassIsActive        bool           `json:"online_class_is_active" gorm:"column:online_class_is_active;not null;index"`

	OnlineClassCreatedAt time.Time `json:"online_class_created_at" gorm:"column:online_class_created_at;autoCreateTime"`
	OnlineClassUpdatedAt time.Time `json:"online_class_updated_at" gorm:"column:online_class_updated_at;autoUpdateTime"`
}

func (OnlineClassModel) TableName() string { return "online_classes" }

func (m *OnlineClassModel) BeforeCreate(tx *gorm.DB) error {
	if m.OnlineClassID == uuid.Nil {
		m.OnlineClassID = uuid.New()
	}
	return nil
}
