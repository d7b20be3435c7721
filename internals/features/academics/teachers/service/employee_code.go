package service

import (
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"madrasa_backend/internals/features/academics/teachers/model"
)

const EmployeeCodePrefix = "TCH-"

// NextEmployeeCode: TCH-<seq 4 digit>, seq = nomor terbesar + 1
func NextEmployeeCode(db *gorm.DB) (string, error) {
	var codes []string
	if err := db.Model(&model.TeacherModel{}).
		Where("teacher_employee_code LIKE ?", EmployeeCodePrefix+"%").
		Pluck("teacher_employee_code", &codes).Error; err != nil {
		return "", err
	}
	maxSeq := 0
	for _, c := range codes {
		if n, err := strconv.Atoi(strings.TrimPrefix(c, EmployeeCodePrefix)); err == nil && n > maxSeq {
			maxSeq = n
		}
	}
	return fmt.Sprintf("%s%04d", EmployeeCodePrefix, maxSeq+1), nil
}

func CreateWithCode(db *gorm.DB, m *model.TeacherModel, isUnique func(error) bool) error {
	if m.TeacherEmployeeCode != "" {
		return db.Create(m).Error
	}
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		code, err := NextEmployeeCode(db)
		if err != nil {
			return err
		}
		m.TeacherEmployeeCode = code
		if lastErr = db.Create(m).Error; lastErr == nil || !isUnique(lastErr) {
			return lastErr
		}
		m.TeacherEmployeeCode = ""
	}
	return lastErr
}
