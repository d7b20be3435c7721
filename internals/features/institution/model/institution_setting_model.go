package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const DefaultCurrency = "BDT"

// InstitutionSettingModel: profil madrasah (satu baris saja)
type InstitutionSettingModel struct {
	InstitutionSettingID uuid.UUID `json:"institution_setting_id" gorm:"column:institution_setting_id;type:uuid;primaryKey"`

	InstitutionName            string  `json:"institution_name" gorm:"column:institution_name;type:varchar(200);not null"`
	InstitutionNameArabic      *string `json:"institution_name_arabic,omitempty" gorm:"column:institution_name_arabic;type:varchar(200)"`
	InstitutionAddress         *string `json:"institution_address,omitempty" gorm:"column:institution_address;type:text"`
	InstitutionPhone           *string `json:"institution_phone,omitempty" gorm:"column:institution_phone;type:varchar(30)"`
	InstitutionEmail           *string `json:"institution_email,omitempty" gorm:"column:institution_email;type:varchar(255)"`
	InstitutionWebsite         *string `json:"institution_website,omitempty" gorm:"column:institution_website;type:varchar(255)"`
	InstitutionEstablishedYear *int    `json:"institution_established_year,omitempty" gorm:"column:institution_established_year"`
	InstitutionPrincipalName   *string `json:"institution_principal_name,omitempty" gorm:"column:institution_principal_name;type:varchar(120)"`
	InstitutionRegistrationNo  *string `json:"institution_registration_no,omitempty" gorm:"column:institution_registration_no;type:varchar(60)"`
	InstitutionLogoURL         *string `json:"institution_logo_url,omitempty" gorm:"column:institution_logo_url;type:text"`

	InstitutionCurrency               string `json:"institution_currency" gorm:"column:institution_currency;type:varchar(3);not null;default:'BDT'"`
	InstitutionAcademicYearStartMonth int    `json:"institution_academic_year_start_month" gorm:"column:institution_academic_year_start_month;not null;default:1"`

	// field bebas (sosial media, rekening, dsb)
	InstitutionExtras datatypes.JSON `json:"institution_extras,omitempty" gorm:"column:institution_extras"`

	InstitutionCreatedAt time.Time `json:"institution_created_at" gorm:"column:institution_created_at;autoCreateTime"`
	InstitutionUpdatedAt time.Time `json:"institution_updated_at" gorm:"column:institution_updated_at;autoUpdateTime"`
}

func (InstitutionSettingModel) TableName() string {
	return "institution_settings"
}

func (m *InstitutionSettingModel) BeforeCreate(tx *gorm.DB) error {
	if m.InstitutionSettingID == uuid.Nil {
		m.InstitutionSettingID = uuid.New()
	}
	if m.InstitutionCurrency == "" {
		m.InstitutionCurrency = DefaultCurrency
	}
	if m.InstitutionAcademicYearStartMonth == 0 {
		m.InstitutionAcademicYearStartMonth = 1
	}
	return nil
}
