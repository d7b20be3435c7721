package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	studentModel "madrasa_backend/internals/features/academics/students/model"
	"madrasa_backend/internals/features/finance/fees/model"
	"madrasa_backend/internals/helpers/dbtime"
)

// DefaultDueDay: SPP jatuh tempo tanggal 10
const DefaultDueDay = 10

type GenerateResult struct {
	Month   string `json:"month"`
	Created int    `json:"created"`
	Skipped int    `json:"skipped"`
}

/*
GenerateMonthly membuat SPP bulan `month` untuk setiap siswa aktif non-lillah
yang punya kelas bertarif. Siswa yang sudah punya SPP bulan itu dilewati.
*/
func GenerateMonthly(db *gorm.DB, month string, dueDay int) (GenerateResult, error) {
	res := GenerateResult{Month: month}
	start, _, err := dbtime.MonthRange(month)
	if err != nil {
		return res, err
	}
	if dueDay < 1 || dueDay > 28 {
		dueDay = DefaultDueDay
	}
	due := time.Date(start.Year(), start.Month(), dueDay, 0, 0, 0, 0, time.UTC)

	type candidate struct {
		StudentID  uuid.UUID `gorm:"column:student_id"`
		MonthlyFee int64     `gorm:"column:class_monthly_fee"`
	}
	var rows []candidate
	if err := db.Model(&studentModel.StudentModel{}).
		Select("students.student_id, classes.class_monthly_fee").
		Joins("JOIN classes ON classes.class_id = students.student_class_id").
		Where("students.student_status = ? AND students.student_is_lillah = ? AND classes.class_monthly_fee > 0",
			studentModel.StudentStatusActive, false).
		Scan(&rows).Error; err != nil {
		return res, err
	}

	var existing []uuid.UUID
	if err := db.Model(&model.FeeModel{}).
		Where("fee_type = ? AND fee_month = ?", model.FeeTypeMonthly, month).
		Pluck("fee_student_id", &existing).Error; err != nil {
		return res, err
	}
	has := make(map[uuid.UUID]bool, len(existing))
	for _, id := range existing {
		has[id] = true
	}

	fees := make([]model.FeeModel, 0, len(rows))
	for _, r := range rows {
		if has[r.StudentID] {
			res.Skipped++
			continue
		}
		m := month
		d := due
		fees = append(fees, model.FeeModel{
			FeeStudentID: r.StudentID,
			FeeType:      model.FeeTypeMonthly,
			FeeMonth:     &m,
			FeeAmount:    r.MonthlyFee,
			FeeDueDate:   &d,
			FeeStatus:    model.FeeStatusUnpaid,
		})
	}
	if len(fees) == 0 {
		return res, nil
	}

	// insert paralel (cron + admin) tidak dobel karena unique index
	tx := db.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(&fees, 200)
	if tx.Error != nil {
		return res, tx.Error
	}
	res.Created = int(tx.RowsAffected)
	res.Skipped += len(fees) - res.Created
	return res, nil
}

// MarkOverdue: unpaid yang lewat due_date → overdue. Partial tetap partial.
func MarkOverdue(db *gorm.DB, today time.Time) (int64, error) {
	tx := db.Model(&model.FeeModel{}).
		Where("fee_status = ? AND fee_due_date IS NOT NULL AND fee_due_date < ?", model.FeeStatusUnpaid, today).
		Update("fee_status", model.FeeStatusOverdue)
	return tx.RowsAffected, tx.Error
}
