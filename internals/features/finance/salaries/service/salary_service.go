package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	teacherModel "madrasa_backend/internals/features/academics/teachers/model"
	"madrasa_backend/internals/features/finance/salaries/model"
	"madrasa_backend/internals/helpers/dbtime"
)

var (
	ErrNegativeNet     = errors.New("gaji bersih tidak boleh negatif")
	ErrAlreadyPaid     = errors.New("gaji sudah dibayar")
	ErrPaidIsImmutable = errors.New("gaji yang sudah dibayar tidak bisa diubah")
)

// NetAmount = basic + bonus - deduction
func NetAmount(basic, bonus, deduction int64) (int64, error) {
	net := basic + bonus - deduction
	if net < 0 {
		return 0, ErrNegativeNet
	}
	return net, nil
}

// Recompute mengisi SalaryNetAmount dari komponen
func Recompute(m *model.SalaryModel) error {
	net, err := NetAmount(m.SalaryBasicAmount, m.SalaryBonus, m.SalaryDeduction)
	if err != nil {
		return err
	}
	m.SalaryNetAmount = net
	return nil
}

func MarkPaid(m *model.SalaryModel, method string, now time.Time) error {
	if m.SalaryStatus == model.SalaryStatusPaid {
		return ErrAlreadyPaid
	}
	m.SalaryStatus = model.SalaryStatusPaid
	m.SalaryPayMethod = &method
	t := now
	m.SalaryPaidAt = &t
	return nil
}

type GenerateResult struct {
	Month   string `json:"month"`
	Created int    `json:"created"`
	Skipped int    `json:"skipped"`
}

// GenerateSheet: satu baris pending per guru aktif bergaji; yang sudah ada dilewati
func GenerateSheet(db *gorm.DB, month string) (GenerateResult, error) {
	res := GenerateResult{Month: month}
	if _, _, err := dbtime.MonthRange(month); err != nil {
		return res, err
	}

	var teachers []teacherModel.TeacherModel
	if err := db.Select("teacher_id", "teacher_monthly_salary").
		Where("teacher_status = ? AND teacher_monthly_salary > 0", teacherModel.TeacherStatusActive).
		Find(&teachers).Error; err != nil {
		return res, err
	}

	var existing []uuid.UUID
	if err := db.Model(&model.SalaryModel{}).
		Where("salary_month = ?", month).
		Pluck("salary_teacher_id", &existing).Error; err != nil {
		return res, err
	}
	has := make(map[uuid.UUID]bool, len(existing))
	for _, id := range existing {
		has[id] = true
	}

	rows := make([]model.SalaryModel, 0, len(teachers))
	for _, t := range teachers {
		if has[t.TeacherID] {
			res.Skipped++
			continue
		}
		rows = append(rows, model.SalaryModel{
			SalaryTeacherID:   t.TeacherID,
			SalaryMonth:       month,
			SalaryBasicAmount: t.TeacherMonthlySalary,
			SalaryNetAmount:   t.TeacherMonthlySalary,
			SalaryStatus:      model.SalaryStatusPending,
		})
	}
	if len(rows) == 0 {
		return res, nil
	}
	tx := db.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(&rows, 200)
	if tx.Error != nil {
		return res, tx.Error
	}
	res.Created = int(tx.RowsAffected)
	res.Skipped += len(rows) - res.Created
	return res, nil
}
