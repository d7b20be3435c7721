package service

import (
	"errors"

	"gorm.io/gorm"

	"madrasa_backend/internals/configs"
	"madrasa_backend/internals/features/institution/model"
)

// Load: baris pertama; kalau belum ada → nilai default (belum disimpan, exists=false)
func Load(db *gorm.DB) (model.InstitutionSettingModel, bool, error) {
	var m model.InstitutionSettingModel
	err := db.Order("institution_created_at ASC").Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.InstitutionSettingModel{
			InstitutionName:                   configs.AppName,
			InstitutionCurrency:               model.DefaultCurrency,
			InstitutionAcademicYearStartMonth: 1,
		}, false, nil
	}
	return m, err == nil, err
}

// NameAndCurrency untuk kuitansi & laporan; error DB → default
func NameAndCurrency(db *gorm.DB) (string, string) {
	m, _, err := Load(db)
	if err != nil || m.InstitutionName == "" {
		name := configs.AppName
		if name == "" {
			name = "Madrasa"
		}
		return name, model.DefaultCurrency
	}
	cur := m.InstitutionCurrency
	if cur == "" {
		cur = model.DefaultCurrency
	}
	return m.InstitutionName, cur
}
