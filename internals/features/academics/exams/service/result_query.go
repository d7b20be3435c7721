package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"madrasa_backend/internals/features/academics/exams/dto"
)

// LoadResultRows: results ⨝ students ⨝ classes untuk satu ujian (filter opsional)
func LoadResultRows(db *gorm.DB, examID uuid.UUID, classID, studentID *uuid.UUID) ([]dto.ResultRow, error) {
	q := db.Table("exam_results AS r").
		Select(`
			r.result_student_id   AS student_id,
			s.student_code        AS student_code,
			s.student_full_name   AS student_name,
			s.student_roll_number AS roll_number,
			r.result_class_id     AS class_id,
			COALESCE(c.class_name, '') AS class_name,
			r.result_subject      AS subject,
			r.result_marks_obtained AS marks_obtained,
			r.result_total_marks  AS total_marks,
			r.result_grade        AS grade,
			r.result_remarks      AS remarks
		`).
		Joins("JOIN students AS s ON s.student_id = r.result_student_id").
		Joins("LEFT JOIN classes AS c ON c.class_id = r.result_class_id").
		Where("r.result_exam_id = ?", examID)

	if classID != nil {
		q = q.Where("r.result_class_id = ?", *classID)
	}
	if studentID != nil {
		q = q.Where("r.result_student_id = ?", *studentID)
	}

	var rows []dto.ResultRow
	err := q.Order("s.student_full_name ASC, r.result_subject ASC").Scan(&rows).Error
	return rows, err
}
