package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Tugas bawaan kalau grup tidak menentukan sendiri
var DefaultDuties = []string{"presiding", "tilawat", "hamd", "naat", "speech"}

// JamiyatGroupModel: grup latihan pidato/tilawah mingguan
type JamiyatGroupModel struct {
	JamiyatGroupID         uuid.UUID      `json:"jamiyat_group_id" gorm:"column:jamiyat_group_id;type:uuid;primaryKey"`
	JamiyatGroupName       string         `json:"jamiyat_group_name" gorm:"column:jamiyat_group_name;type:varchar(120);not null;uniqueIndex:uq_jamiyat_groups_name"`
	JamiyatGroupClassID    *uuid.UUID     `json:"jamiyat_group_class_id,omitempty" gorm:"column:jamiyat_group_class_id;type:uuid;index"`
	JamiyatGroupMeetingDay int            `json:"jamiyat_group_meeting_day" gorm:"column:jamiyat_group_meeting_day;not null"` // 0=Minggu..6=Sabtu
	JamiyatGroupDuties     pq.StringArray `json:"jamiyat_group_duties" gorm:"column:jamiyat_group_duties;type:text[];not null"`
	JamiyatGroupIsActive   bool           `json:"jamiyat_group_is_active" gorm:"column:jamiyat_group_is_active;not null"`

	JamiyatGroupCreatedAt time.Time `json:"jamiyat_group_created_at" gorm:"column:jamiyat_group_created_at;autoCreateTime"`
	JamiyatGroupUpdatedAt time.Time `json:"jamiyat_group_updated_at" gorm:"column:jamiyat_group_updated_at;autoUpdateTime"`
}

func (JamiyatGroupModel) TableName() string { return "jamiyat_groups" }

func (m *JamiyatGroupModel) BeforeCreate(tx *gorm.DB) error {
	if m.JamiyatGroupID == uuid.Nil {
		m.JamiyatGroupID = uuid.New()
	}
	if len(m.JamiyatGroupDuties) == 0 {
		m.JamiyatGroupDuties = pq.StringArray(append([]string(nil), DefaultDuties...))
	}
	return nil
}

// JamiyatMemberModel: anggota grup, urutan rotasi = position
type JamiyatMemberModel struct {
	JamiyatMemberID        uuid.UUID `json:"jamiyat_member_id" gorm:"column:jamiyat_member_id;type:uuid;primaryKey"`
	JamiyatMemberGroupID   uuid.UUID `json:"jamiyat_member_group_id" gorm:"column:jamiyat_member_group_id;type:uuid;not null;uniqueIndex:uq_jamiyat_member_group_student"`
	JamiyatMemberStudentID uuid.UUID `json:"jamiyat_member_student_id" gorm:"column:jamiyat_member_student_id;type:uuid;not null;uniqueIndex:uq_jamiyat_member_group_student"`
	JamiyatMemberPosition  int       `json:"jamiyat_member_position" gorm:"column:jamiyat_member_position;not null"`

	JamiyatMemberCreatedAt time.Time `json:"jamiyat_member_created_at" gorm:"column:jamiyat_member_created_at;autoCreateTime"`
}

func (JamiyatMemberModel) TableName() string { return "jamiyat_members" }

func (m *JamiyatMemberModel) BeforeCreate(tx *gorm.DB) error {
	if m.JamiyatMemberID == uuid.Nil {
		m.JamiyatMemberID = uuid.New()
	}
	return nil
}

// JamiyatSessionModel: satu pertemuan; assignments = snapshot [{duty, student_id, student_name}]
type JamiyatSessionModel struct {
	JamiyatSessionID          uuid.UUID      `json:"jamiyat_session_id" gorm:"column:jamiyat_session_id;type:uuid;primaryKey"`
	JamiyatSessionGroupID     uuid.UUID      `json:"jamiyat_session_group_id" gorm:"column:jamiyat_session_group_id;type:uuid;not null;uniqueIndex:uq_jamiyat_session_group_date"`
	JamiyatSessionDate        time.Time      `json:"jamiyat_session_date" gorm:"column:jamiyat_session_date;type:date;not null;uniqueIndex:uq_jamiyat_session_group_date"`
	JamiyatSessionAssignments datatypes.JSON `json:"jamiyat_session_assignments" gorm:"column:jamiyat_session_assignments;not null"`
	JamiyatSessionIsCompleted bool           `json:"jamiyat_session_is_completed" gorm:"column:jamiyat_session_is_completed;not null"`
	JamiyatSessionNotes       *string        `json:"jamiyat_session_notes,omitempty" gorm:"column:jamiyat_session_notes;type:text"`

	JamiyatSessionCreatedAt time.Time `json:"jamiyat_session_created_at" gorm:"column:jamiyat_session_created_at;autoCreateTime"`
	JamiyatSessionUpdatedAt time.Time `json:"jamiyat_session_updated_at" gorm:"column:jamiyat_session_updated_at;autoUpdateTime"`
}

func (JamiyatSessionModel) TableName() string { return "jamiyat_sessions" }

func (m *JamiyatSessionModel) BeforeCreate(tx *gorm.DB) error {
	if m.JamiyatSessionID == uuid.Nil {
		m.JamiyatSessionID = uuid.New()
	}
	return nil
}
