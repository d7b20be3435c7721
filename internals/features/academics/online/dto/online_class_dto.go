package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"madrasa_backend/internals/features/academics/online/model"
	"madrasa_backend/internals/features/academics/online/service"
)

type CreateOnlineClassRequest struct {
	Title           string     `json:"online_class_title" validate:"required,min=3,max=200"`
	ClassID         *uuid.UUID `json:"online_class_class_id"`
	CourseID        *uuid.UUID `json:"online_class_course_id"`
	TeacherID       *uuid.UUID `json:"online_class_teacher_id"`
	Platform        string     `json:"online_class_platform" validate:"required,oneof=zoom meet other"`
	MeetingURL      string     `json:"online_class_meeting_url" validate:"required,url"`
	Weekdays        []string   `json:"online_class_weekdays" validate:"required,min=1,max=7"`
	StartTime       string     `json:"online_class_start_time" validate:"required,hhmm"`
	DurationMinutes int        `json:"online_class_duration_minutes" validate:"required,min=5,max=600"`
	IsActive        *bool      `json:"online_class_is_active"`
}

type UpdateOnlineClassRequest struct {
	Title           *string    `json:"online_class_title" validate:"omitempty,min=3,max=200"`
	ClassID         *uuid.UUID `json:"online_class_class_id"`
	CourseID        *uuid.UUID `json:"online_class_course_id"`
	TeacherID       *uuid.UUID `json:"online_class_teacher_id"`
	Platform        *string    `json:"online_class_platform" validate:"omitempty,oneof=zoom meet other"`
	MeetingURL      *string    `json:"online_class_meeting_url" validate:"omitempty,url"`
	Weekdays        *[]string  `json:"online_class_weekdays" validate:"omitempty,min=1,max=7"`
	StartTime       *string    `json:"online_class_start_time" validate:"omitempty,hhmm"`
	DurationMinutes *int       `json:"online_class_duration_minutes" validate:"omitempty,min=5,max=600"`
	IsActive        *bool      `json:"online_class_is_active"`
}

// nilable: uuid.Nil dari client artinya kosongkan relasi
func nilable(id *uuid.UUID) *uuid.UUID {
	if id == nil || *id == uuid.Nil {
		return nil
	}
	return id
}

func (r CreateOnlineClassRequest) ToModel() (*model.OnlineClassModel, error) {
	days, err := service.NormalizeWeekdays(r.Weekdays)
	if err != nil {
		return nil, err
	}
	m := &model.OnlineClassModel{
		OnlineClassTitle:           strings.TrimSpace(r.Title),
		OnlineClassClassID:         nilable(r.ClassID),
		OnlineClassCourseID:        nilable(r.CourseID),
		OnlineClassTeacherID:       nilable(r.TeacherID),
		OnlineClassPlatform:        r.Platform,
		OnlineClassMeetingURL:      strings.TrimSpace(r.MeetingURL),
		OnlineClassWeekdays:        pq.StringArray(days),
		OnlineClassStartTime:       r.StartTime,
		OnlineClassDurationMinutes: r.DurationMinutes,
		OnlineClassIsActive:        true,
	}
	if r.IsActive != nil {
		m.OnlineClassIsActive = *r.IsActive
	}
	return m, nil
}

func (r UpdateOnlineClassRequest) ApplyToModel(m *model.OnlineClassModel) error {
	if r.Weekdays != nil {
		days, err := service.NormalizeWeekdays(*r.Weekdays)
		if err != nil {
			return err
		}
		m.OnlineClassWeekdays = pq.StringArray(days)
	}
	if r.Title != nil {
		m.OnlineClassTitle = strings.TrimSpace(*r.Title)
	}
	if r.ClassID != nil {
		m.OnlineClassClassID = nilable(r.ClassID)
	}
	if r.CourseID != nil {
		m.OnlineClassCourseID = nilable(r.CourseID)
	}
	if r.TeacherID != nil {
		m.OnlineClassTeacherID = nilable(r.TeacherID)
	}
	if r.Platform != nil {
		m.OnlineClassPlatform = *r.Platform
	}
	if r.MeetingURL != nil {
		m.OnlineClassMeetingURL = strings.TrimSpace(*r.MeetingURL)
	}
	if r.StartTime != nil {
		m.OnlineClassStartTime = *r.StartTime
	}
	if r.DurationMinutes != nil {
		m.OnlineClassDurationMinutes = *r.DurationMinutes
	}
	if r.IsActive != nil {
		m.OnlineClassIsActive = *r.IsActive
	}
	return nil
}

// PublicOnlineClass: link meeting tetap ditampilkan, siswa butuh untuk join
type PublicOnlineClass struct {
	OnlineClassID              uuid.UUID `json:"online_class_id"`
	OnlineClassTitle           string    `json:"online_class_title"`
	OnlineClassPlatform        string    `json:"online_class_platform"`
	OnlineClassMeetingURL      string    `json:"online_class_meeting_url"`
	OnlineClassWeekdays        []string  `json:"online_class_weekdays"`
	OnlineClassStartTime       string    `json:"online_class_start_time"`
	OnlineClassDurationMinutes int       `json:"online_class_duration_minutes"`
	ClassName                  *string   `json:"class_name,omitempty"`
	TeacherName                *string   `json:"teacher_name,omitempty"`
}
