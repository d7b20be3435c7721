package service

import (
	"bytes"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"madrasa_backend/internals/features/academics/students/dto"
	"madrasa_backend/internals/features/academics/students/model"
	"madrasa_backend/internals/helpers/dbtime"
	helperXLSX "madrasa_backend/internals/helpers/xlsx"
)

var exportHeaders = []string{
	"Student Code", "Full Name", "Father Name", "Mother Name", "Guardian Phone",
	"Gender", "Class", "Roll", "Date of Birth", "Admission Date", "Status",
	"Lillah", "Sponsor", "Graduation Year",
}

// ExportStudents: semua siswa (sesuai filter) ke workbook XLSX
func ExportStudents(q *gorm.DB, classNames map[uuid.UUID]string) (*bytes.Buffer, error) {
	var rows []model.StudentModel
	if err := q.Order("student_code ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([][]any, 0, len(rows))
	for _, s := range rows {
		className := ""
		if s.StudentClassID != nil {
			className = classNames[*s.StudentClassID]
		}
		roll := ""
		if s.StudentRollNumber != nil {
			roll = itoa(*s.StudentRollNumber)
		}
		gradYear := ""
		if s.StudentGraduationYear != nil {
			gradYear = itoa(*s.StudentGraduationYear)
		}
		lillah := "No"
		if s.StudentIsLillah {
			lillah = "Yes"
		}
		out = append(out, []any{
			s.StudentCode,
			s.StudentFullName,
			s.StudentFatherName,
			deref(s.StudentMotherName),
			s.StudentGuardianPhone,
			s.StudentGender,
			className,
			roll,
			dto.DateString(s.StudentDateOfBirth),
			dbtime.FormatDate(s.StudentAdmissionDate),
			s.StudentStatus,
			lillah,
			deref(s.StudentLillahSponsor),
			gradYear,
		})
	}

	return helperXLSX.Build(helperXLSX.Sheet{Name: "Students", Headers: exportHeaders, Rows: out})
}
