package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"madrasa_backend/internals/features/academics/classes/model"
)

/* ========== REQUEST DTOs ========== */

type CreateClassRequest struct {
	ClassName        string     `json:"class_name" validate:"required,min=1,max=120"`
	ClassNameArabic  *string    `json:"class_name_arabic" validate:"omitempty,max=120"`
	ClassSection     *string    `json:"class_section" validate:"omitempty,max=40"`
	ClassLevel       int        `json:"class_level" validate:"min=0"`
	ClassCapacity    *int       `json:"class_capacity" validate:"omitempty,min=1"`
	ClassTeacherID   *uuid.UUID `json:"class_teacher_id"`
	ClassMonthlyFee  int64      `json:"class_monthly_fee" validate:"min=0"`
	ClassDescription *string    `json:"class_description"`
	ClassIsActive    *bool      `json:"class_is_active"`
}

type UpdateClassRequest struct {
	ClassName        *string    `json:"class_name" validate:"omitempty,min=1,max=120"`
	ClassNameArabic  *string    `json:"class_name_arabic" validate:"omitempty,max=120"`
	ClassSection     *string    `json:"class_section" validate:"omitempty,max=40"`
	ClassLevel       *int       `json:"class_level" validate:"omitempty,min=0"`
	ClassCapacity    *int       `json:"class_capacity" validate:"omitempty,min=1"`
	ClassTeacherID   *uuid.UUID `json:"class_teacher_id"`
	ClassMonthlyFee  *int64     `json:"class_monthly_fee" validate:"omitempty,min=0"`
	ClassDescription *string    `json:"class_description"`
	ClassIsActive    *bool      `json:"class_is_active"`
}

/* ========== RESPONSE DTO ========== */

type ClassResponse struct {
	ClassID          uuid.UUID  `json:"class_id"`
	ClassName        string     `json:"class_name"`
	ClassNameArabic  *string    `json:"class_name_arabic,omitempty"`
	ClassSection     *string    `json:"class_section,omitempty"`
	ClassLevel       int        `json:"class_level"`
	ClassCapacity    *int       `json:"class_capacity,omitempty"`
	ClassTeacherID   *uuid.UUID `json:"class_teacher_id,omitempty"`
	ClassMonthlyFee  int64      `json:"class_monthly_fee"`
	ClassDescription *string    `json:"class_description,omitempty"`
	ClassIsActive    bool       `json:"class_is_active"`
	StudentCount     int64      `json:"student_count"`
	ClassCreatedAt   time.Time  `json:"class_created_at"`
	ClassUpdatedAt   time.Time  `json:"class_updated_at"`
}

// versi publik: tanpa tarif & wali kelas
type PublicClassResponse struct {
	ClassID          uuid.UUID `json:"class_id"`
	ClassName        string    `json:"class_name"`
	ClassNameArabic  *string   `json:"class_name_arabic,omitempty"`
	ClassSection     *string   `json:"class_section,omitempty"`
	ClassLevel       int       `json:"class_level"`
	ClassDescription *string   `json:"class_description,omitempty"`
	StudentCount     int64     `json:"student_count"`
}

/* ========== HELPER: KONVERSI MODEL <-> DTO ========== */

func NewClassResponse(m model.ClassModel, studentCount int64) ClassResponse {
	return ClassResponse{
		ClassID:          m.ClassID,
		ClassName:        m.ClassName,
		ClassNameArabic:  m.ClassNameArabic,
		ClassSection:     m.ClassSection,
		ClassLevel:       m.ClassLevel,
		ClassCapacity:    m.ClassCapacity,
		ClassTeacherID:   m.ClassTeacherID,
		ClassMonthlyFee:  m.ClassMonthlyFee,
		ClassDescription: m.ClassDescription,
		ClassIsActive:    m.ClassIsActive,
		StudentCount:     studentCount,
		ClassCreatedAt:   m.ClassCreatedAt,
		ClassUpdatedAt:   m.ClassUpdatedAt,
	}
}

func NewPublicClassResponse(m model.ClassModel, studentCount int64) PublicClassResponse {
	return PublicClassResponse{
		ClassID:          m.ClassID,
		ClassName:        m.ClassName,
		ClassNameArabic:  m.ClassNameArabic,
		ClassSection:     m.ClassSection,
		ClassLevel:       m.ClassLevel,
		ClassDescription: m.ClassDescription,
		StudentCount:     studentCount,
	}
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

// ToModel: CreateClassRequest -> ClassModel
func (r *CreateClassRequest) ToModel() *model.ClassModel {
	m := &model.ClassModel{
		ClassName:        strings.TrimSpace(r.ClassName),
		ClassNameArabic:  trimPtr(r.ClassNameArabic),
		ClassSection:     trimPtr(r.ClassSection),
		ClassLevel:       r.ClassLevel,
		ClassCapacity:    r.ClassCapacity,
		ClassTeacherID:   r.ClassTeacherID,
		ClassMonthlyFee:  r.ClassMonthlyFee,
		ClassDescription: trimPtr(r.ClassDescription),
		ClassIsActive:    true, // default
	}
	if r.ClassIsActive != nil {
		m.ClassIsActive = *r.ClassIsActive
	}
	return m
}

// ApplyToModel: partial update
func (r *UpdateClassRequest) ApplyToModel(m *model.ClassModel) {
	if r.ClassName != nil {
		m.ClassName = strings.TrimSpace(*r.ClassName)
	}
	if r.ClassNameArabic != nil {
		m.ClassNameArabic = trimPtr(r.ClassNameArabic)
	}
	if r.ClassSection != nil {
		m.ClassSection = trimPtr(r.ClassSection)
	}
	if r.ClassLevel != nil {
		m.ClassLevel = *r.ClassLevel
	}
	if r.ClassCapacity != nil {
		m.ClassCapacity = r.ClassCapacity
	}
	if r.ClassTeacherID != nil {
		// uuid.Nil = lepas wali kelas
		if *r.ClassTeacherID == uuid.Nil {
			m.ClassTeacherID = nil
		} else {
			m.ClassTeacherID = r.ClassTeacherID
		}
	}
	if r.ClassMonthlyFee != nil {
		m.ClassMonthlyFee = *r.ClassMonthlyFee
	}
	if r.ClassDescription != nil {
		m.ClassDescription = trimPtr(r.ClassDescription)
	}
	if r.ClassIsActive != nil {
		m.ClassIsActive = *r.ClassIsActive
	}
}
