package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"madrasa_backend/internals/features/academics/students/model"
	"madrasa_backend/internals/helpers/dbtime"
)

/* ========== REQUEST DTOs ========== */

type CreateStudentRequest struct {
	StudentCode           string     `json:"student_code" validate:"omitempty,max=30"`
	StudentFullName       string     `json:"student_full_name" validate:"required,min=2,max=150"`
	StudentFullNameArabic *string    `json:"student_full_name_arabic" validate:"omitempty,max=150"`
	StudentFatherName     string     `json:"student_father_name" validate:"required,max=150"`
	StudentMotherName     *string    `json:"student_mother_name" validate:"omitempty,max=150"`
	StudentGuardianName   *string    `json:"student_guardian_name" validate:"omitempty,max=150"`
	StudentGuardianPhone  string     `json:"student_guardian_phone" validate:"required,max=30"`
	StudentDateOfBirth    string     `json:"student_date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	StudentGender         string     `json:"student_gender" validate:"required,oneof=male female"`
	StudentAddress        *string    `json:"student_address"`
	StudentClassID        *uuid.UUID `json:"student_class_id"`
	StudentRollNumber     *int       `json:"student_roll_number" validate:"omitempty,min=1"`
	StudentAdmissionDate  string     `json:"student_admission_date" validate:"omitempty,datetime=2006-01-02"`
	StudentStatus         string     `json:"student_status" validate:"omitempty,oneof=active inactive graduated transferred"`

	StudentIsLillah             bool    `json:"student_is_lillah"`
	StudentLillahSponsor        *string `json:"student_lillah_sponsor" validate:"omitempty,max=150"`
	StudentLillahMonthlySupport int64   `json:"student_lillah_monthly_support" validate:"min=0"`

	StudentGraduationYear *int    `json:"student_graduation_year" validate:"omitempty,min=1900,max=2200"`
	StudentNotes          *string `json:"student_notes"`
}

type UpdateStudentRequest struct {
	StudentCode           *string    `json:"student_code" validate:"omitempty,min=1,max=30"`
	StudentFullName       *string    `json:"student_full_name" validate:"omitempty,min=2,max=150"`
	StudentFullNameArabic *string    `json:"student_full_name_arabic" validate:"omitempty,max=150"`
	StudentFatherName     *string    `json:"student_father_name" validate:"omitempty,min=1,max=150"`
	StudentMotherName     *string    `json:"student_mother_name" validate:"omitempty,max=150"`
	StudentGuardianName   *string    `json:"student_guardian_name" validate:"omitempty,max=150"`
	StudentGuardianPhone  *string    `json:"student_guardian_phone" validate:"omitempty,min=1,max=30"`
	StudentDateOfBirth    *string    `json:"student_date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	StudentGender         *string    `json:"student_gender" validate:"omitempty,oneof=male female"`
	StudentAddress        *string    `json:"student_address"`
	StudentClassID        *uuid.UUID `json:"student_class_id"`                               // uuid.Nil = keluarkan dari kelas
	StudentRollNumber     *int       `json:"student_roll_number" validate:"omitempty,min=0"` // 0 = kosongkan
	StudentAdmissionDate  *string    `json:"student_admission_date" validate:"omitempty,datetime=2006-01-02"`
	StudentStatus         *string    `json:"student_status" validate:"omitempty,oneof=active inactive graduated transferred"`

	StudentIsLillah             *bool   `json:"student_is_lillah"`
	StudentLillahSponsor        *string `json:"student_lillah_sponsor" validate:"omitempty,max=150"`
	StudentLillahMonthlySupport *int64  `json:"student_lillah_monthly_support" validate:"omitempty,min=0"`

	StudentGraduationYear *int    `json:"student_graduation_year" validate:"omitempty,min=1900,max=2200"`
	StudentNotes          *string `json:"student_notes"`
}

type GraduateRequest struct {
	GraduationYear *int `json:"graduation_year" validate:"omitempty,min=1900,max=2200"`
}

/* ========== RESPONSE DTOs ========== */

type StudentResponse struct {
	model.StudentModel
	ClassName *string `json:"class_name,omitempty"`
}

// PublicStudentResponse: data minim untuk halaman publik
type PublicStudentResponse struct {
	StudentID         uuid.UUID `json:"student_id"`
	StudentCode       string    `json:"student_code"`
	StudentFullName   string    `json:"student_full_name"`
	StudentGender     string    `json:"student_gender"`
	StudentRollNumber *int      `json:"student_roll_number,omitempty"`
	StudentPhotoURL   *string   `json:"student_photo_url,omitempty"`
	ClassName         *string   `json:"class_name,omitempty"`
}

type AlumniResponse struct {
	StudentID             uuid.UUID `json:"student_id"`
	StudentCode           string    `json:"student_code"`
	StudentFullName       string    `json:"student_full_name"`
	StudentFatherName     string    `json:"student_father_name"`
	StudentGraduationYear *int      `json:"student_graduation_year,omitempty"`
	StudentPhotoURL       *string   `json:"student_photo_url,omitempty"`
}

/* ========== HELPER ========== */

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// ToModel: tanggal sudah lolos validasi format, jadi error parse diabaikan
func (r *CreateStudentRequest) ToModel() *model.StudentModel {
	m := &model.StudentModel{
		StudentCode:                 strings.ToUpper(strings.TrimSpace(r.StudentCode)),
		StudentFullName:             strings.TrimSpace(r.StudentFullName),
		StudentFullNameArabic:       trimPtr(r.StudentFullNameArabic),
		StudentFatherName:           strings.TrimSpace(r.StudentFatherName),
		StudentMotherName:           trimPtr(r.StudentMotherName),
		StudentGuardianName:         trimPtr(r.StudentGuardianName),
		StudentGuardianPhone:        strings.TrimSpace(r.StudentGuardianPhone),
		StudentGender:               r.StudentGender,
		StudentAddress:              trimPtr(r.StudentAddress),
		StudentClassID:              r.StudentClassID,
		StudentRollNumber:           r.StudentRollNumber,
		StudentStatus:               r.StudentStatus,
		StudentIsLillah:             r.StudentIsLillah,
		StudentLillahSponsor:        trimPtr(r.StudentLillahSponsor),
		StudentLillahMonthlySupport: r.StudentLillahMonthlySupport,
		StudentGraduationYear:       r.StudentGraduationYear,
		StudentNotes:                trimPtr(r.StudentNotes),
	}
	if m.StudentClassID != nil && *m.StudentClassID == uuid.Nil {
		m.StudentClassID = nil
	}
	m.StudentDateOfBirth, _ = dbtime.ParseDatePtr(r.StudentDateOfBirth)
	if d, err := dbtime.ParseDate(r.StudentAdmissionDate); err == nil {
		m.StudentAdmissionDate = d
	} else {
		m.StudentAdmissionDate = dbtime.Today()
	}
	if m.StudentStatus == "" {
		m.StudentStatus = model.StudentStatusActive
	}
	return m
}

// ApplyToModel: partial update
func (r *UpdateStudentRequest) ApplyToModel(m *model.StudentModel) {
	if r.StudentCode != nil {
		m.StudentCode = strings.ToUpper(strings.TrimSpace(*r.StudentCode))
	}
	if r.StudentFullName != nil {
		m.StudentFullName = strings.TrimSpace(*r.StudentFullName)
	}
	if r.StudentFullNameArabic != nil {
		m.StudentFullNameArabic = trimPtr(r.StudentFullNameArabic)
	}
	if r.StudentFatherName != nil {
		m.StudentFatherName = strings.TrimSpace(*r.StudentFatherName)
	}
	if r.StudentMotherName != nil {
		m.StudentMotherName = trimPtr(r.StudentMotherName)
	}
	if r.StudentGuardianName != nil {
		m.StudentGuardianName = trimPtr(r.StudentGuardianName)
	}
	if r.StudentGuardianPhone != nil {
		m.StudentGuardianPhone = strings.TrimSpace(*r.StudentGuardianPhone)
	}
	if r.StudentDateOfBirth != nil {
		m.StudentDateOfBirth, _ = dbtime.ParseDatePtr(*r.StudentDateOfBirth)
	}
	if r.StudentGender != nil {
		m.StudentGender = *r.StudentGender
	}
	if r.StudentAddress != nil {
		m.StudentAddress = trimPtr(r.StudentAddress)
	}
	if r.StudentClassID != nil {
		if *r.StudentClassID == uuid.Nil {
			m.StudentClassID = nil
		} else {
			id := *r.StudentClassID
			m.StudentClassID = &id
		}
	}
	if r.StudentRollNumber != nil {
		if *r.StudentRollNumber == 0 {
			m.StudentRollNumber = nil
		} else {
			n := *r.StudentRollNumber
			m.StudentRollNumber = &n
		}
	}
	if r.StudentAdmissionDate != nil {
		if d, err := dbtime.ParseDate(*r.StudentAdmissionDate); err == nil {
			m.StudentAdmissionDate = d
		}
	}
	if r.StudentStatus != nil {
		m.StudentStatus = *r.StudentStatus
	}
	if r.StudentIsLillah != nil {
		m.StudentIsLillah = *r.StudentIsLillah
	}
	if r.StudentLillahSponsor != nil {
		m.StudentLillahSponsor = trimPtr(r.StudentLillahSponsor)
	}
	if r.StudentLillahMonthlySupport != nil {
		m.StudentLillahMonthlySupport = *r.StudentLillahMonthlySupport
	}
	if r.StudentGraduationYear != nil {
		m.StudentGraduationYear = r.StudentGraduationYear
	}
	if r.StudentNotes != nil {
		m.StudentNotes = trimPtr(r.StudentNotes)
	}
	if !m.StudentIsLillah {
		m.StudentLillahSponsor = nil
		m.StudentLillahMonthlySupport = 0
	}
}

func NewAlumniResponse(m model.StudentModel) AlumniResponse {
	return AlumniResponse{
		StudentID:             m.StudentID,
		StudentCode:           m.StudentCode,
		StudentFullName:       m.StudentFullName,
		StudentFatherName:     m.StudentFatherName,
		StudentGraduationYear: m.StudentGraduationYear,
		StudentPhotoURL:       m.StudentPhotoURL,
	}
}

// DateString: helper untuk export (kosong kalau nil)
func DateString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return dbtime.FormatDate(*t)
}
