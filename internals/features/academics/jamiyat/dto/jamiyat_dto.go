package dto

import (
	"github.com/google/uuid"
)

type CreateGroupRequest struct {
	Name       string     `json:"jamiyat_group_name" validate:"required,min=2,max=120"`
	ClassID    *uuid.UUID `json:"jamiyat_group_class_id"`
	MeetingDay int        `json:"jamiyat_group_meeting_day" validate:"min=0,max=6"`
	Duties     []string   `json:"jamiyat_group_duties" validate:"omitempty,max=20,dive,min=1,max=60"`
	IsActive   *bool      `json:"jamiyat_group_is_active"`
}

type UpdateGroupRequest struct {
	Name       *string    `json:"jamiyat_group_name" validate:"omitempty,min=2,max=120"`
	ClassID    *uuid.UUID `json:"jamiyat_group_class_id"`
	MeetingDay *int       `json:"jamiyat_group_meeting_day" validate:"omitempty,min=0,max=6"`
	Duties     *[]string  `json:"jamiyat_group_duties" validate:"omitempty,min=1,max=20,dive,min=1,max=60"`
	IsActive   *bool      `json:"jamiyat_group_is_active"`
}

// PUT /api/a/jamiyat/groups/:id/members: urutan array = urutan rotasi
type SetMembersRequest struct {
	StudentIDs []uuid.UUID `json:"student_ids" validate:"required,dive,required"`
}

type AddMemberRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
}

// Assignment: satu tugas di satu pertemuan
type Assignment struct {
	Duty        string    `json:"duty"`
	StudentID   uuid.UUID `json:"student_id"`
	StudentName string    `json:"student_name"`
}

// PUT /api/a/jamiyat/sessions/:id
type ReassignRequest struct {
	Assignments []ReassignItem `json:"assignments" validate:"required,min=1,dive"`
	Notes       *string        `json:"notes"`
}

type ReassignItem struct {
	Duty      string    `json:"duty" validate:"required"`
	StudentID uuid.UUID `json:"student_id" validate:"required"`
}

type CompleteSessionRequest struct {
	IsCompleted *bool   `json:"is_completed"`
	Notes       *string `json:"notes"`
}

type MemberView struct {
	JamiyatMemberID uuid.UUID `json:"jamiyat_member_id"`
	StudentID       uuid.UUID `json:"student_id"`
	StudentName     string    `json:"student_name"`
	Position        int       `json:"position"`
}

type SessionView struct {
	JamiyatSessionID uuid.UUID    `json:"jamiyat_session_id"`
	GroupID          uuid.UUID    `json:"jamiyat_group_id"`
	Date             string       `json:"date"`
	Assignments      []Assignment `json:"assignments"`
	IsCompleted      bool         `json:"is_completed"`
	Notes            *string      `json:"notes,omitempty"`
}

type MemberLoad struct {
	StudentID   uuid.UUID      `json:"student_id"`
	StudentName string         `json:"student_name"`
	Total       int            `json:"total"`
	ByDuty      map[string]int `json:"by_duty"`
}
