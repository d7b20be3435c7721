package dto

import (
	"github.com/google/uuid"
)

type AttendanceRecord struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Status    string    `json:"status" validate:"required,oneof=present absent late leave"`
	Remarks   *string   `json:"remarks" validate:"omitempty,max=255"`
}

// POST /api/a/attendance/bulk
type BulkAttendanceRequest struct {
	ClassID uuid.UUID          `json:"class_id" validate:"required"`
	Date    string             `json:"date" validate:"required,datetime=2006-01-02"`
	Records []AttendanceRecord `json:"records" validate:"required,min=1,dive"`
}

// RosterEntry: siswa kelas + tanda hadir (status kosong = belum diabsen)
type RosterEntry struct {
	StudentID         uuid.UUID  `json:"student_id"`
	StudentCode       string     `json:"student_code"`
	StudentFullName   string     `json:"student_full_name"`
	StudentRollNumber *int       `json:"student_roll_number,omitempty"`
	AttendanceID      *uuid.UUID `json:"attendance_id,omitempty"`
	Status            string     `json:"status"`
	Remarks           *string    `json:"remarks,omitempty"`
}

type StudentAttendanceSummary struct {
	StudentID       uuid.UUID `json:"student_id"`
	StudentFullName string    `json:"student_full_name"`
	Present         int       `json:"present"`
	Absent          int       `json:"absent"`
	Late            int       `json:"late"`
	Leave           int       `json:"leave"`
	Total           int       `json:"total"`
	Percentage      float64   `json:"percentage"`
}
