package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"madrasa_backend/internals/features/academics/teachers/model"
	helper "madrasa_backend/internals/helpers"
	"madrasa_backend/internals/helpers/dbtime"
)

type CreateTeacherRequest struct {
	TeacherEmployeeCode  string     `json:"teacher_employee_code" validate:"omitempty,max=20"`
	TeacherFullName      string     `json:"teacher_full_name" validate:"required,min=2,max=150"`
	TeacherPhone         string     `json:"teacher_phone" validate:"required,max=30"`
	TeacherEmail         *string    `json:"teacher_email" validate:"omitempty,email"`
	TeacherQualification *string    `json:"teacher_qualification" validate:"omitempty,max=255"`
	TeacherSubjects      []string   `json:"teacher_subjects" validate:"omitempty,dive,min=1,max=60"`
	TeacherJoiningDate   string     `json:"teacher_joining_date" validate:"omitempty,datetime=2006-01-02"`
	TeacherMonthlySalary int64      `json:"teacher_monthly_salary" validate:"min=0"`
	TeacherStatus        string     `json:"teacher_status" validate:"omitempty,oneof=active inactive resigned"`
	TeacherUserID        *uuid.UUID `json:"teacher_user_id"`
}

type UpdateTeacherRequest struct {
	TeacherEmployeeCode  *string    `json:"teacher_employee_code" validate:"omitempty,min=1,max=20"`
	TeacherFullName      *string    `json:"teacher_full_name" validate:"omitempty,min=2,max=150"`
	TeacherPhone         *string    `json:"teacher_phone" validate:"omitempty,min=1,max=30"`
	TeacherEmail         *string    `json:"teacher_email" validate:"omitempty,email"`
	TeacherQualification *string    `json:"teacher_qualification" validate:"omitempty,max=255"`
	TeacherSubjects      *[]string  `json:"teacher_subjects" validate:"omitempty,dive,min=1,max=60"`
	TeacherJoiningDate   *string    `json:"teacher_joining_date" validate:"omitempty,datetime=2006-01-02"`
	TeacherMonthlySalary *int64     `json:"teacher_monthly_salary" validate:"omitempty,min=0"`
	TeacherStatus        *string    `json:"teacher_status" validate:"omitempty,oneof=active inactive resigned"`
	TeacherUserID        *uuid.UUID `json:"teacher_user_id"` // uuid.Nil = lepas akun
}

// versi publik: nama, mata pelajaran, foto
type PublicTeacherResponse struct {
	TeacherID            uuid.UUID `json:"teacher_id"`
	TeacherFullName      string    `json:"teacher_full_name"`
	TeacherQualification *string   `json:"teacher_qualification,omitempty"`
	TeacherSubjects      []string  `json:"teacher_subjects"`
	TeacherPhotoURL      *string   `json:"teacher_photo_url,omitempty"`
}

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

// CleanSubjects: daftar mapel tanpa entri kosong / duplikat
func CleanSubjects(in []string) pq.StringArray {
	return pq.StringArray(helper.CleanStrings(in))
}

func (r *CreateTeacherRequest) ToModel() *model.TeacherModel {
	m := &model.TeacherModel{
		TeacherEmployeeCode:  strings.ToUpper(strings.TrimSpace(r.TeacherEmployeeCode)),
		TeacherFullName:      strings.TrimSpace(r.TeacherFullName),
		TeacherPhone:         strings.TrimSpace(r.TeacherPhone),
		TeacherEmail:         trimPtr(r.TeacherEmail),
		TeacherQualification: trimPtr(r.TeacherQualification),
		TeacherSubjects:      CleanSubjects(r.TeacherSubjects),
		TeacherMonthlySalary: r.TeacherMonthlySalary,
		TeacherStatus:        r.TeacherStatus,
		TeacherUserID:        r.TeacherUserID,
	}
	if d, err := dbtime.ParseDate(r.TeacherJoiningDate); err == nil {
		m.TeacherJoiningDate = d
	} else {
		m.TeacherJoiningDate = dbtime.Today()
	}
	if m.TeacherStatus == "" {
		m.TeacherStatus = model.TeacherStatusActive
	}
	return m
}

func (r *UpdateTeacherRequest) ApplyToModel(m *model.TeacherModel) {
	if r.TeacherEmployeeCode != nil {
		m.TeacherEmployeeCode = strings.ToUpper(strings.TrimSpace(*r.TeacherEmployeeCode))
	}
	if r.TeacherFullName != nil {
		m.TeacherFullName = strings.TrimSpace(*r.TeacherFullName)
	}
	if r.TeacherPhone != nil {
		m.TeacherPhone = strings.TrimSpace(*r.TeacherPhone)
	}
	if r.TeacherEmail != nil {
		m.TeacherEmail = trimPtr(r.TeacherEmail)
	}
	if r.TeacherQualification != nil {
		m.TeacherQualification = trimPtr(r.TeacherQualification)
	}
	if r.TeacherSubjects != nil {
		m.TeacherSubjects = CleanSubjects(*r.TeacherSubjects)
	}
	if r.TeacherJoiningDate != nil {
		if d, err := dbtime.ParseDate(*r.TeacherJoiningDate); err == nil {
			m.TeacherJoiningDate = d
		}
	}
	if r.TeacherMonthlySalary != nil {
		m.TeacherMonthlySalary = *r.TeacherMonthlySalary
	}
	if r.TeacherStatus != nil {
		m.TeacherStatus = *r.TeacherStatus
	}
	if r.TeacherUserID != nil {
		if *r.TeacherUserID == uuid.Nil {
			m.TeacherUserID = nil
		} else {
			id := *r.TeacherUserID
			m.TeacherUserID = &id
		}
	}
}

func ToPublic(m model.TeacherModel) PublicTeacherResponse {
	subjects := []string(m.TeacherSubjects)
	if subjects == nil {
		subjects = []string{}
	}
	return PublicTeacherResponse{
		TeacherID:            m.TeacherID,
		TeacherFullName:      m.TeacherFullName,
		TeacherQualification: m.TeacherQualification,
		TeacherSubjects:      subjects,
		TeacherPhotoURL:      m.TeacherPhotoURL,
	}
}
