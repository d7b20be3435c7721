package dto

import (
	"strings"

	"gorm.io/datatypes"

	"madrasa_backend/internals/features/institution/model"
)

// Update (partial), semua field opsional
type UpdateInstitutionRequest struct {
	InstitutionName                   *string         `json:"institution_name" validate:"omitempty,min=2,max=200"`
	InstitutionNameArabic             *string         `json:"institution_name_arabic" validate:"omitempty,max=200"`
	InstitutionAddress                *string         `json:"institution_address"`
	InstitutionPhone                  *string         `json:"institution_phone" validate:"omitempty,max=30"`
	InstitutionEmail                  *string         `json:"institution_email" validate:"omitempty,email"`
	InstitutionWebsite                *string         `json:"institution_website" validate:"omitempty,url"`
	InstitutionEstablishedYear        *int            `json:"institution_established_year" validate:"omitempty,min=1800,max=2100"`
	InstitutionPrincipalName          *string         `json:"institution_principal_name" validate:"omitempty,max=120"`
	InstitutionRegistrationNo         *string         `json:"institution_registration_no" validate:"omitempty,max=60"`
	InstitutionCurrency               *string         `json:"institution_currency" validate:"omitempty,len=3,alpha"`
	InstitutionAcademicYearStartMonth *int            `json:"institution_academic_year_start_month" validate:"omitempty,min=1,max=12"`
	InstitutionExtras                 *datatypes.JSON `json:"institution_extras"`
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// ApplyTo: pointer nil = tidak diubah; string kosong = dikosongkan
func (r UpdateInstitutionRequest) ApplyTo(m *model.InstitutionSettingModel) {
	if r.InstitutionName != nil {
		m.InstitutionName = strings.TrimSpace(*r.InstitutionName)
	}
	if r.InstitutionNameArabic != nil {
		m.InstitutionNameArabic = trimOrNil(r.InstitutionNameArabic)
	}
	if r.InstitutionAddress != nil {
		m.InstitutionAddress = trimOrNil(r.InstitutionAddress)
	}
	if r.InstitutionPhone != nil {
		m.InstitutionPhone = trimOrNil(r.InstitutionPhone)
	}
	if r.InstitutionEmail != nil {
		m.InstitutionEmail = trimOrNil(r.InstitutionEmail)
	}
	if r.InstitutionWebsite != nil {
		m.InstitutionWebsite = trimOrNil(r.InstitutionWebsite)
	}
	if r.InstitutionEstablishedYear != nil {
		m.InstitutionEstablishedYear = r.InstitutionEstablishedYear
	}
	if r.InstitutionPrincipalName != nil {
		m.InstitutionPrincipalName = trimOrNil(r.InstitutionPrincipalName)
	}
	if r.InstitutionRegistrationNo != nil {
		m.InstitutionRegistrationNo = trimOrNil(r.InstitutionRegistrationNo)
	}
	if r.InstitutionCurrency != nil {
		m.InstitutionCurrency = strings.ToUpper(strings.TrimSpace(*r.InstitutionCurrency))
	}
	if r.InstitutionAcademicYearStartMonth != nil {
		m.InstitutionAcademicYearStartMonth = *r.InstitutionAcademicYearStartMonth
	}
	if r.InstitutionExtras != nil {
		m.InstitutionExtras = *r.InstitutionExtras
	}
}

// Versi publik: tanpa no. registrasi & extras internal
type PublicInstitutionResponse struct {
	InstitutionName            string  `json:"institution_name"`
	InstitutionNameArabic      *string `json:"institution_name_arabic,omitempty"`
	InstitutionAddress         *string `json:"institution_address,omitempty"`
	InstitutionPhone           *string `json:"institution_phone,omitempty"`
	InstitutionEmail           *string `json:"institution_email,omitempty"`
	InstitutionWebsite         *string `json:"institution_website,omitempty"`
	InstitutionEstablishedYear *int    `json:"institution_established_year,omitempty"`
	InstitutionPrincipalName   *string `json:"institution_principal_name,omitempty"`
	InstitutionLogoURL         *string `json:"institution_logo_url,omitempty"`
	InstitutionCurrency        string  `json:"institution_currency"`
}

func ToPublic(m model.InstitutionSettingModel) PublicInstitutionResponse {
	return PublicInstitutionResponse{
		InstitutionName:            m.InstitutionName,
		InstitutionNameArabic:      m.InstitutionNameArabic,
		InstitutionAddress:         m.InstitutionAddress,
		InstitutionPhone:           m.InstitutionPhone,
		InstitutionEmail:           m.InstitutionEmail,
		InstitutionWebsite:         m.InstitutionWebsite,
		InstitutionEstablishedYear: m.InstitutionEstablishedYear,
		InstitutionPrincipalName:   m.InstitutionPrincipalName,
		InstitutionLogoURL:         m.InstitutionLogoURL,
		InstitutionCurrency:        m.InstitutionCurrency,
	}
}
