package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "madrasa_backend/internals/features/academics/classes/model"
	"madrasa_backend/internals/features/academics/lillah/dto"
	"madrasa_backend/internals/features/academics/lillah/service"
	studentModel "madrasa_backend/internals/features/academics/students/model"
	helper "madrasa_backend/internals/helpers"
)

type LillahController struct {
	DB *gorm.DB
}

func NewLillahController(db *gorm.DB) *LillahController {
	return &LillahController{DB: db}
}

func (ctrl *LillahController) lillahQuery() *gorm.DB {
	return ctrl.DB.Model(&studentModel.StudentModel{}).
		Where("student_is_lillah = ? AND student_status = ?", true, studentModel.StudentStatusActive)
}

func (ctrl *LillahController) classNames() map[uuid.UUID]string {
	var rows []classModel.ClassModel
	out := map[uuid.UUID]string{}
	if err := ctrl.DB.Select("class_id", "class_name").Find(&rows).Error; err == nil {
		for _, r := range rows {
			out[r.ClassID] = r.ClassName
		}
	}
	return out
}

func className(names map[uuid.UUID]string, id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	if n, ok := names[*id]; ok {
		return &n
	}
	return nil
}

// GET /api/a/lillah?q=&sponsor=
func (ctrl *LillahController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "name", "asc", helper.AdminOpts)

	q := ctrl.lillahQuery()
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(student_full_name) LIKE ? OR LOWER(student_code) LIKE ?", like, like)
	}
	if s := strings.TrimSpace(c.Query("sponsor")); s != "" {
		q = q.Where("LOWER(student_lillah_sponsor) LIKE ?", "%"+strings.ToLower(s)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung santri lillah")
	}
	var rows []studentModel.StudentModel
	if err := p.Apply(q.Order("student_full_name ASC")).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil santri lillah")
	}

	names := ctrl.classNames()
	out := make([]dto.LillahStudentResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.LillahStudentResponse{
			StudentID:            r.StudentID,
			StudentCode:          r.StudentCode,
			StudentFullName:      r.StudentFullName,
			ClassName:            className(names, r.StudentClassID),
			Sponsor:              r.StudentLillahSponsor,
			MonthlySupport:       r.StudentLillahMonthlySupport,
			StudentAdmissionDate: r.StudentAdmissionDate,
		})
	}
	pg := helper.BuildPagination(total, p, len(out))
	return helper.JsonList(c, "ok", out, &pg)
}

// PUT /api/a/lillah/:student_id {is_lillah, sponsor?, monthly_support?}
func (ctrl *LillahController) Enroll(c *fiber.Ctx) error {
	var req dto.EnrollLillahRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "student_id")
	if err != nil {
		return err
	}

	var s studentModel.StudentModel
	if err := ctrl.DB.First(&s, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil siswa")
	}

	updates := map[string]any{"student_is_lillah": *req.IsLillah}
	if *req.IsLillah {
		if req.Sponsor != nil {
			updates["student_lillah_sponsor"] = helper.TrimPtr(req.Sponsor)
		}
		if req.MonthlySupport != nil {
			updates["student_lillah_monthly_support"] = *req.MonthlySupport
		}
	} else {
		updates["student_lillah_sponsor"] = nil
		updates["student_lillah_monthly_support"] = 0
	}

	if err := ctrl.DB.Model(&s).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui status lillah")
	}
	if err := ctrl.DB.First(&s, "student_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil siswa")
	}

	msg := "Siswa terdaftar sebagai santri lillah"
	if !s.StudentIsLillah {
		msg = "Siswa dikeluarkan dari program lillah"
	}
	return helper.JsonUpdated(c, msg, dto.LillahStudentResponse{
		StudentID:            s.StudentID,
		StudentCode:          s.StudentCode,
		StudentFullName:      s.StudentFullName,
		ClassName:            className(ctrl.classNames(), s.StudentClassID),
		Sponsor:              s.StudentLillahSponsor,
		MonthlySupport:       s.StudentLillahMonthlySupport,
		StudentAdmissionDate: s.StudentAdmissionDate,
	})
}

// GET /api/a/lillah/summary
func (ctrl *LillahController) Summary(c *fiber.Ctx) error {
	var rows []studentModel.StudentModel
	if err := ctrl.lillahQuery().
		Select("student_id", "student_lillah_sponsor", "student_lillah_monthly_support").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil santri lillah")
	}
	return helper.JsonOK(c, "ok", service.Summarize(rows))
}

// GET /api/public/lillah
func (ctrl *LillahController) PublicRoster(c *fiber.Ctx) error {
	var rows []studentModel.StudentModel
	if err := ctrl.lillahQuery().
		Order("student_admission_date ASC, student_full_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil santri lillah")
	}
	names := ctrl.classNames()
	out := make([]dto.PublicLillahResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.PublicLillahResponse{
			StudentFullName:      r.StudentFullName,
			ClassName:            className(names, r.StudentClassID),
			StudentAdmissionDate: r.StudentAdmissionDate,
		})
	}
	helper.SetPublicCache(c, 300)
	return helper.JsonList(c, "ok", out, nil)
}
