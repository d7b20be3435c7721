package controller

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceModel "madrasa_backend/internals/features/academics/attendance/model"
	attendanceService "madrasa_backend/internals/features/academics/attendance/service"
	classModel "madrasa_backend/internals/features/academics/classes/model"
	studentModel "madrasa_backend/internals/features/academics/students/model"
	teacherModel "madrasa_backend/internals/features/academics/teachers/model"
	institutionService "madrasa_backend/internals/features/institution/service"
	"madrasa_backend/internals/features/reports/dto"
	"madrasa_backend/internals/features/reports/service"
	helper "madrasa_backend/internals/helpers"
	"madrasa_backend/internals/helpers/dbtime"
	helperXLSX "madrasa_backend/internals/helpers/xlsx"
)

const maxReportMonths = 36

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

func (ctrl *ReportController) sum(table, expr, where string, args ...any) (int64, error) {
	var v int64
	err := ctrl.DB.Table(table).Select("COALESCE(SUM(" + expr + "), 0)").Where(where, args...).Scan(&v).Error
	return v, err
}

/* =========================================================
   DASHBOARD
========================================================= */

// GET /api/a/dashboard
func (ctrl *ReportController) Dashboard(c *fiber.Ctx) error {
	var out dto.DashboardResponse
	_, out.Currency = institutionService.NameAndCurrency(ctrl.DB)

	counts := []struct {
		dst   *int64
		model any
		where string
		args  []any
	}{
		{&out.Counts.ActiveStudents, &studentModel.StudentModel{}, "student_status = ?", []any{studentModel.StudentStatusActive}},
		{&out.Counts.ActiveTeachers, &teacherModel.TeacherModel{}, "teacher_status = ?", []any{teacherModel.TeacherStatusActive}},
		{&out.Counts.ActiveClasses, &classModel.ClassModel{}, "class_is_active = ?", []any{true}},
		{&out.Counts.LillahStudents, &studentModel.StudentModel{}, "student_is_lillah = ? AND student_status = ?", []any{true, studentModel.StudentStatusActive}},
		{&out.Counts.Alumni, &studentModel.StudentModel{}, "student_status = ?", []any{studentModel.StudentStatusGraduated}},
	}
	for _, q := range counts {
		if err := ctrl.DB.Model(q.model).Where(q.where, q.args...).Count(q.dst).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data dashboard")
		}
	}

	month := dbtime.CurrentMonth()
	start, end, _ := dbtime.MonthRange(month)
	// batas bulan dalam zona madrasah untuk kolom timestamp
	loc := dbtime.Location()
	tsStart := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, loc)
	tsEnd := tsStart.AddDate(0, 1, 0)

	f := &out.Finance
	f.Month = month
	var err error
	if f.FeesCollected, err = ctrl.sum("fees", "fee_paid_amount", "fee_paid_at >= ? AND fee_paid_at < ?", tsStart, tsEnd); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung SPP")
	}
	if f.FeesOutstanding, err = ctrl.sum("fees", "fee_amount - fee_discount - fee_paid_amount", "fee_status IN ?", []string{"unpaid", "partial", "overdue"}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung tunggakan")
	}
	if f.DonationsPaid, err = ctrl.sum("donations", "donation_amount", "donation_status = ? AND donation_received_at >= ? AND donation_received_at < ?", "paid", tsStart, tsEnd); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung donasi")
	}
	if f.ExpensesTotal, err = ctrl.sum("expenses", "expense_amount", "expense_date >= ? AND expense_date < ?", start, end); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pengeluaran")
	}
	if f.SalariesPaid, err = ctrl.sum("salaries", "salary_net_amount", "salary_month = ? AND salary_status = ?", month, "paid"); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung gaji")
	}
	if f.SalariesPending, err = ctrl.sum("salaries", "salary_net_amount", "salary_month = ? AND salary_status = ?", month, "pending"); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung gaji")
	}

	today := dbtime.Today()
	var marks []attendanceModel.AttendanceModel
	if err := ctrl.DB.Where("attendance_date = ?", today).Find(&marks).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil absensi")
	}
	out.Attendance = dto.DashboardAttendance{
		Date:   dbtime.FormatDate(today),
		Marked: len(marks),
		Rate:   attendanceService.Rate(marks),
	}

	return helper.JsonOK(c, "ok", out)
}

/* =========================================================
   FINANCE REPORT
========================================================= */

// from/to default: 6 bulan terakhir s/d hari ini
func reportRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	today := dbtime.Today()
	from := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -5, 0)
	to := today
	if s := strings.TrimSpace(c.Query("from")); s != "" {
		t, err := dbtime.ParseDate(s)
		if err != nil {
			return from, to, fiber.NewError(fiber.StatusBadRequest, "from harus YYYY-MM-DD")
		}
		from = t
	}
	if s := strings.TrimSpace(c.Query("to")); s != "" {
		t, err := dbtime.ParseDate(s)
		if err != nil {
			return from, to, fiber.NewError(fiber.StatusBadRequest, "to harus YYYY-MM-DD")
		}
		to = t
	}
	if to.Before(from) {
		return from, to, fiber.NewError(fiber.StatusBadRequest, "to tidak boleh sebelum from")
	}
	if len(dbtime.MonthsBetween(from, to)) > maxReportMonths {
		return from, to, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("rentang laporan maksimal %d bulan", maxReportMonths))
	}
	return from, to, nil
}

func (ctrl *ReportController) financeReport(c *fiber.Ctx) (dto.FinanceReport, error) {
	from, to, err := reportRange(c)
	if err != nil {
		return dto.FinanceReport{}, err
	}
	ledger, err := service.LoadLedger(ctrl.DB, from, to.AddDate(0, 0, 1))
	if err != nil {
		return dto.FinanceReport{}, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil transaksi")
	}
	rep := service.BuildFinanceReport(from, to, ledger)
	_, rep.Currency = institutionService.NameAndCurrency(ctrl.DB)
	return rep, nil
}

// GET /api/a/reports/finance?from=&to=
func (ctrl *ReportController) Finance(c *fiber.Ctx) error {
	rep, err := ctrl.financeReport(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", rep)
}

// GET /api/a/reports/finance/export?from=&to=
func (ctrl *ReportController) ExportFinance(c *fiber.Ctx) error {
	rep, err := ctrl.financeReport(c)
	if err != nil {
		return err
	}
	buf, err := service.ExportFinance(rep)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat file excel")
	}
	return helperXLSX.Send(c, fmt.Sprintf("laporan-keuangan_%s_%s", rep.From, rep.To), buf)
}
