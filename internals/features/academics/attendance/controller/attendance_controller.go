package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"madrasa_backend/internals/features/academics/attendance/dto"
	"madrasa_backend/internals/features/academics/attendance/model"
	"madrasa_backend/internals/features/academics/attendance/service"
	classModel "madrasa_backend/internals/features/academics/classes/model"
	studentModel "madrasa_backend/internals/features/academics/students/model"
	helper "madrasa_backend/internals/helpers"
	helperAuth "madrasa_backend/internals/helpers/auth"
	"madrasa_backend/internals/helpers/dbtime"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

func (ctrl *AttendanceController) requireClass(c *fiber.Ctx) (uuid.UUID, error) {
	classID, err := helper.ParseUUIDQuery(c, "class_id")
	if err != nil {
		return uuid.Nil, err
	}
	if classID == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "class_id wajib diisi")
	}
	return *classID, ctrl.ensureClass(*classID)
}

func (ctrl *AttendanceController) ensureClass(id uuid.UUID) error {
	var n int64
	if err := ctrl.DB.Model(&classModel.ClassModel{}).Where("class_id = ?", id).Count(&n).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa kelas")
	}
	if n == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
	}
	return nil
}

func (ctrl *AttendanceController) classStudents(classID uuid.UUID) ([]studentModel.StudentModel, error) {
	var rows []studentModel.StudentModel
	err := ctrl.DB.
		Where("student_class_id = ? AND student_status = ?", classID, studentModel.StudentStatusActive).
		Order("student_roll_number ASC, student_full_name ASC").
		Find(&rows).Error
	return rows, err
}

// GET /api/a/attendance?class_id=&date=YYYY-MM-DD (default hari ini)
func (ctrl *AttendanceController) Roster(c *fiber.Ctx) error {
	classID, err := ctrl.requireClass(c)
	if err != nil {
		return err
	}
	date := dbtime.Today()
	if raw := strings.TrimSpace(c.Query("date")); raw != "" {
		if date, err = dbtime.ParseDate(raw); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	students, err := ctrl.classStudents(classID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil siswa")
	}
	var marks []model.AttendanceModel
	if err := ctrl.DB.
		Where("attendance_class_id = ? AND attendance_date = ?", classID, date).
		Find(&marks).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil absensi")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"class_id": classID,
		"date":     dbtime.FormatDate(date),
		"records":  service.MergeRoster(students, marks),
	})
}

// POST /api/a/attendance/bulk
// Satu kelas-hari disimpan dalam satu transaksi; tanda yang sudah ada ditimpa.
func (ctrl *AttendanceController) Bulk(c *fiber.Ctx) error {
	var req dto.BulkAttendanceRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	date, err := dbtime.ParseDate(req.Date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if date.After(dbtime.Today()) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak bisa mengisi absensi untuk tanggal yang akan datang")
	}
	if err := ctrl.ensureClass(req.ClassID); err != nil {
		return err
	}

	students, err := ctrl.classStudents(req.ClassID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil siswa")
	}
	inClass := make(map[uuid.UUID]bool, len(students))
	for _, s := range students {
		inClass[s.StudentID] = true
	}

	recordedBy := helperAuth.GetUserIDPtr(c)
	seen := map[uuid.UUID]bool{}
	rows := make([]model.AttendanceModel, 0, len(req.Records))
	for _, r := range req.Records {
		if !inClass[r.StudentID] {
			return helper.JsonError(c, fiber.StatusBadRequest, "Siswa "+r.StudentID.String()+" bukan anggota kelas ini")
		}
		if seen[r.StudentID] {
			return helper.JsonError(c, fiber.StatusBadRequest, "Siswa "+r.StudentID.String()+" muncul lebih dari sekali")
		}
		seen[r.StudentID] = true
		rows = append(rows, model.AttendanceModel{
			AttendanceID:         uuid.New(),
			AttendanceStudentID:  r.StudentID,
			AttendanceClassID:    req.ClassID,
			AttendanceDate:       date,
			AttendanceStatus:     r.Status,
			AttendanceRemarks:    helper.TrimPtr(r.Remarks),
			AttendanceRecordedBy: recordedBy,
		})
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "attendance_student_id"}, {Name: "attendance_date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"attendance_class_id", "attendance_status", "attendance_remarks",
				"attendance_recorded_by", "attendance_updated_at",
			}),
		}).Create(&rows).Error
	})
	if err != nil {
		log.Printf("[ERROR] bulk attendance: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan absensi")
	}

	return helper.JsonOK(c, "Absensi tersimpan", fiber.Map{
		"class_id": req.ClassID,
		"date":     dbtime.FormatDate(date),
		"saved":    len(rows),
	})
}

// GET /api/a/attendance/summary?class_id=&from=&to=
func (ctrl *AttendanceController) Summary(c *fiber.Ctx) error {
	classID, err := ctrl.requireClass(c)
	if err != nil {
		return err
	}

	to := dbtime.Today()
	from := to.AddDate(0, 0, -29)
	if raw := strings.TrimSpace(c.Query("from")); raw != "" {
		if from, err = dbtime.ParseDate(raw); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}
	if raw := strings.TrimSpace(c.Query("to")); raw != "" {
		if to, err = dbtime.ParseDate(raw); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}
	if from.After(to) {
		return helper.JsonError(c, fiber.StatusBadRequest, "from harus sebelum to")
	}

	students, err := ctrl.classStudents(classID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil siswa")
	}
	var rows []model.AttendanceModel
	if err := ctrl.DB.
		Where("attendance_class_id = ? AND attendance_date >= ? AND attendance_date <= ?", classID, from, to).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil absensi")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"class_id": classID,
		"from":     dbtime.FormatDate(from),
		"to":       dbtime.FormatDate(to),
		"students": service.Summarize(students, rows),
	})
}

// DELETE /api/a/attendance/:id
func (ctrl *AttendanceController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var m model.AttendanceModel
	if err := ctrl.DB.First(&m, "attendance_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data absensi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil absensi")
	}
	if err := ctrl.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus absensi")
	}
	return helper.JsonDeleted(c, "Absensi dihapus", fiber.Map{"attendance_id": id})
}
