package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasa_backend/internals/features/academics/exams/dto"
	"madrasa_backend/internals/features/academics/exams/model"
	"madrasa_backend/internals/features/academics/exams/service"
	helper "madrasa_backend/internals/helpers"
)

type ExamController struct {
	DB    *gorm.DB
	Cache service.ResultStore
}

func NewExamController(db *gorm.DB, cache service.ResultStore) *ExamController {
	return &ExamController{DB: db, Cache: cache}
}

func findExam(db *gorm.DB, c *fiber.Ctx, param string) (*model.ExamModel, error) {
	id, err := helper.ParseUUIDParam(c, param)
	if err != nil {
		return nil, err
	}
	var m model.ExamModel
	if err := db.First(&m, "exam_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Ujian tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil ujian")
	}
	return &m, nil
}

func validateDates(m *model.ExamModel) error {
	if m.ExamEndDate != nil && m.ExamEndDate.Before(m.ExamStartDate) {
		return fiber.NewError(fiber.StatusBadRequest, "exam_end_date tidak boleh sebelum exam_start_date")
	}
	return nil
}

// GET /api/a/exams?academic_year=&exam_type=&is_published=
func (ctrl *ExamController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "start_date", "desc", helper.AdminOpts)

	q := ctrl.DB.Model(&model.ExamModel{})
	if y := strings.TrimSpace(c.Query("academic_year")); y != "" {
		q = q.Where("exam_academic_year = ?", y)
	}
	if t := strings.TrimSpace(c.Query("exam_type")); t != "" {
		q = q.Where("exam_type = ?", t)
	}
	if v := strings.TrimSpace(c.Query("is_published")); v != "" {
		q = q.Where("exam_is_published = ?", v == "true" || v == "1")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung ujian")
	}
	order, _ := p.OrderClause(map[string]string{
		"start_date": "exam_start_date",
		"name":       "exam_name",
		"created_at": "exam_created_at",
	}, "start_date")

	var rows []model.ExamModel
	if err := p.Apply(q.Order(order)).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil ujian")
	}
	pg := helper.BuildPagination(total, p, len(rows))
	return helper.JsonList(c, "ok", rows, &pg)
}

// GET /api/a/exams/:id
func (ctrl *ExamController) Get(c *fiber.Ctx) error {
	m, err := findExam(ctrl.DB, c, "id")
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", m)
}

// POST /api/a/exams
func (ctrl *ExamController) Create(c *fiber.Ctx) error {
	var req dto.CreateExamRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	m := req.ToModel()
	if err := validateDates(m); err != nil {
		return err
	}
	if err := ctrl.DB.Create(m).Error; err != nil {
		log.Printf("[ERROR] create exam: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat ujian")
	}
	return helper.JsonCreated(c, "Ujian berhasil dibuat", m)
}

// PUT /api/a/exams/:id
func (ctrl *ExamController) Update(c *fiber.Ctx) error {
	var req dto.UpdateExamRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	m, err := findExam(ctrl.DB, c, "id")
	if err != nil {
		return err
	}
	req.ApplyToModel(m)
	if err := validateDates(m); err != nil {
		return err
	}
	if err := ctrl.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui ujian")
	}
	ctrl.Cache.InvalidateExam(c.UserContext(), m.ExamID)
	return helper.JsonUpdated(c, "Ujian berhasil diperbarui", m)
}

// PATCH /api/a/exams/:id/publish {is_published}
func (ctrl *ExamController) Publish(c *fiber.Ctx) error {
	var req dto.PublishExamRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	m, err := findExam(ctrl.DB, c, "id")
	if err != nil {
		return err
	}
	if err := ctrl.DB.Model(m).Update("exam_is_published", *req.IsPublished).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah status publikasi")
	}
	m.ExamIsPublished = *req.IsPublished
	ctrl.Cache.InvalidateExam(c.UserContext(), m.ExamID)

	msg := "Hasil ujian dipublikasikan"
	if !m.ExamIsPublished {
		msg = "Publikasi hasil ujian dibatalkan"
	}
	return helper.JsonUpdated(c, msg, m)
}

// DELETE /api/a/exams/:id (nilai ikut terhapus)
func (ctrl *ExamController) Delete(c *fiber.Ctx) error {
	m, err := findExam(ctrl.DB, c, "id")
	if err != nil {
		return err
	}
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("result_exam_id = ?", m.ExamID).Delete(&model.ResultModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(m).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus ujian")
	}
	ctrl.Cache.InvalidateExam(c.UserContext(), m.ExamID)
	return helper.JsonDeleted(c, "Ujian berhasil dihapus", fiber.Map{"exam_id": m.ExamID})
}

// GET /api/public/exams
func (ctrl *ExamController) ListPublished(c *fiber.Ctx) error {
	q := ctrl.DB.Where("exam_is_published = ?", true)
	if y := strings.TrimSpace(c.Query("academic_year")); y != "" {
		q = q.Where("exam_academic_year = ?", y)
	}
	var rows []model.ExamModel
	if err := q.Order("exam_start_date DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil ujian")
	}
	helper.SetPublicCache(c, 120)
	return helper.JsonList(c, "ok", rows, nil)
}
