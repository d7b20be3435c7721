package dto

import (
	"time"

	"github.com/google/uuid"
)

// PUT /api/a/lillah/:student_id
type EnrollLillahRequest struct {
	IsLillah       *bool   `json:"is_lillah" validate:"required"`
	Sponsor        *string `json:"sponsor" validate:"omitempty,max=150"`
	MonthlySupport *int64  `json:"monthly_support" validate:"omitempty,min=0"`
}

type LillahStudentResponse struct {
	StudentID            uuid.UUID `json:"student_id"`
	StudentCode          string    `json:"student_code"`
	StudentFullName      string    `json:"student_full_name"`
	ClassName            *string   `json:"class_name,omitempty"`
	Sponsor              *string   `json:"sponsor,omitempty"`
	MonthlySupport       int64     `json:"monthly_support"`
	StudentAdmissionDate time.Time `json:"student_admission_date"`
}

// roster publik: nama, kelas, tanggal masuk saja
type PublicLillahResponse struct {
	StudentFullName      string    `json:"student_full_name"`
	ClassName            *string   `json:"class_name,omitempty"`
	StudentAdmissionDate time.Time `json:"student_admission_date"`
}

type SponsorTotal struct {
	Sponsor        string `json:"sponsor"`
	Students       int    `json:"students"`
	MonthlySupport int64  `json:"monthly_support"`
}

type LillahSummary struct {
	TotalStudents       int            `json:"total_students"`
	TotalMonthlySupport int64          `json:"total_monthly_support"`
	WithoutSponsor      int            `json:"without_sponsor"`
	BySponsor           []SponsorTotal `json:"by_sponsor"`
}
