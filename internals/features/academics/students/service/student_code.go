package service

import (
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"madrasa_backend/internals/features/academics/students/model"
)

// StudentCodePrefix: STU-<tahun>-
func StudentCodePrefix(year int) string {
	return fmt.Sprintf("STU-%d-", year)
}

// NextStudentCode: STU-<year>-<seq 4 digit>, seq = nomor terbesar tahun itu + 1
func NextStudentCode(db *gorm.DB, year int) (string, error) {
	prefix := StudentCodePrefix(year)

	var codes []string
	if err := db.Model(&model.StudentModel{}).
		Where("student_code LIKE ?", prefix+"%").
		Pluck("student_code", &codes).Error; err != nil {
		return "", err
	}

	maxSeq := 0
	for _, c := range codes {
		n, err := strconv.Atoi(strings.TrimPrefix(c, prefix))
		if err == nil && n > maxSeq {
			maxSeq = n
		}
	}
	return fmt.Sprintf("%s%04d", prefix, maxSeq+1), nil
}

// CreateWithCode: generate kode kalau kosong; retry kalau bentrok (insert paralel)
func CreateWithCode(db *gorm.DB, m *model.StudentModel, year int, isUnique func(error) bool) error {
	if m.StudentCode != "" {
		return db.Create(m).Error
	}
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		code, err := NextStudentCode(db, year)
		if err != nil {
			return err
		}
		m.StudentCode = code
		lastErr = db.Create(m).Error
		if lastErr == nil || !isUnique(lastErr) {
			return lastErr
		}
		m.StudentCode = ""
	}
	return lastErr
}
