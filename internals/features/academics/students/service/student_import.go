package service

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"madrasa_backend/internals/features/academics/students/model"
	"madrasa_backend/internals/helpers/dbtime"
	helperXLSX "madrasa_backend/internals/helpers/xlsx"
)

type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  []string `json:"skipped"`
}

/*
ImportStudents membaca sheet pertama dengan kolom:
A full name | B father name | C guardian phone | D gender | E roll number (opsional)
Baris 1 = header. Semua siswa masuk ke classID (boleh nil).
*/
func ImportStudents(db *gorm.DB, r io.Reader, classID *uuid.UUID, isUnique func(error) bool) (ImportResult, error) {
	res := ImportResult{Skipped: []string{}}

	rows, err := helperXLSX.ReadRows(r)
	if err != nil {
		return res, err
	}

	year := dbtime.Now().Year()
	for i, row := range rows {
		if i == 0 {
			continue
		}
		col := func(n int) string {
			if n < len(row) {
				return strings.TrimSpace(row[n])
			}
			return ""
		}

		name, father, phone := col(0), col(1), col(2)
		gender := strings.ToLower(col(3))
		if name == "" || father == "" || phone == "" {
			res.Skipped = append(res.Skipped, fmt.Sprintf("baris %d: nama/ayah/telepon kosong", i+1))
			continue
		}
		if gender != model.GenderMale && gender != model.GenderFemale {
			res.Skipped = append(res.Skipped, fmt.Sprintf("baris %d: gender tidak valid", i+1))
			continue
		}

		m := &model.StudentModel{
			StudentFullName:      name,
			StudentFatherName:    father,
			StudentGuardianPhone: phone,
			StudentGender:        gender,
			StudentClassID:       classID,
			StudentAdmissionDate: dbtime.Today(),
			StudentStatus:        model.StudentStatusActive,
		}
		if v := col(4); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				res.Skipped = append(res.Skipped, fmt.Sprintf("baris %d: roll number tidak valid (%s)", i+1, v))
				continue
			}
			m.StudentRollNumber = &n
		}

		if err := CreateWithCode(db, m, year, isUnique); err != nil {
			if isUnique(err) {
				res.Skipped = append(res.Skipped, fmt.Sprintf("baris %d: roll number sudah dipakai", i+1))
				continue
			}
			return res, err
		}
		res.Imported++
	}
	return res, nil
}
