package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"madrasa_backend/internals/features/academics/online/dto"
	"madrasa_backend/internals/features/academics/online/model"
	helper "madrasa_backend/internals/helpers"
)

type OnlineController struct {
	DB *gorm.DB
}

func NewOnlineController(db *gorm.DB) *OnlineController {
	return &OnlineController{DB: db}
}

func (ctrl *OnlineController) findCourse(c *fiber.Ctx) (*model.CourseModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	var m model.CourseModel
	if err := ctrl.DB.First(&m, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Course tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil course")
	}
	return &m, nil
}

func (ctrl *OnlineController) lessonCounts(ids []uuid.UUID) (map[uuid.UUID]int64, error) {
	out := make(map[uuid.UUID]int64, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	type row struct {
		CourseID uuid.UUID `gorm:"column:course_id"`
		Total    int64     `gorm:"column:total"`
	}
	var rows []row
	if err := ctrl.DB.Model(&model.LessonModel{}).
		Select("lesson_course_id AS course_id, COUNT(*) AS total").
		Where("lesson_course_id IN ?", ids).
		Group("lesson_course_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.CourseID] = r.Total
	}
	return out, nil
}

func (ctrl *OnlineController) withCounts(rows []model.CourseModel) ([]dto.CourseResponse, error) {
	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.CourseID)
	}
	counts, err := ctrl.lessonCounts(ids)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CourseResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.CourseResponse{CourseModel: r, LessonCount: counts[r.CourseID]})
	}
	return out, nil
}

// GET /api/a/courses?q=&is_published=
func (ctrl *OnlineController) ListCourses(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := ctrl.DB.Model(&model.CourseModel{})
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		q = q.Where("LOWER(course_title) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	if v := strings.TrimSpace(c.Query("is_published")); v != "" {
		q = q.Where("course_is_published = ?", v == "true" || v == "1")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung course")
	}
	order, _ := p.OrderClause(map[string]string{
		"created_at": "course_created_at",
		"title":      "course_title",
	}, "created_at")

	var rows []model.CourseModel
	if err := p.Apply(q.Order(order)).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil course")
	}
	out, err := ctrl.withCounts(rows)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung lesson")
	}
	pg := helper.BuildPagination(total, p, len(out))
	return helper.JsonList(c, "ok", out, &pg)
}

// GET /api/a/courses/:id (lesson ikut, urut position)
func (ctrl *OnlineController) GetCourse(c *fiber.Ctx) error {
	m, err := ctrl.findCourse(c)
	if err != nil {
		return err
	}
	var lessons []model.LessonModel
	if err := ctrl.DB.Where("lesson_course_id = ?", m.CourseID).
		Order("lesson_position ASC, lesson_created_at ASC").
		Find(&lessons).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil lesson")
	}
	return helper.JsonOK(c, "ok", fiber.Map{"course": m, "lessons": lessons})
}

// POST /api/a/courses
func (ctrl *OnlineController) CreateCourse(c *fiber.Ctx) error {
	var req dto.CreateCourseRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	m := req.ToModel()

	slug, err := helper.EnsureUniqueSlugCI(c.Context(), ctrl.DB, "courses", "course_slug", req.BaseSlug(), nil, 160)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
	}
	m.CourseSlug = slug

	if err := ctrl.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Slug course sudah dipakai")
		}
		log.Printf("[ERROR] create course: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat course")
	}
	return helper.JsonCreated(c, "Course berhasil dibuat", dto.CourseResponse{CourseModel: *m})
}

// PUT /api/a/courses/:id; slug dihitung ulang hanya kalau dikirim
func (ctrl *OnlineController) UpdateCourse(c *fiber.Ctx) error {
	var req dto.UpdateCourseRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	m, err := ctrl.findCourse(c)
	if err != nil {
		return err
	}
	req.ApplyToModel(m)

	if req.Slug != nil && strings.TrimSpace(*req.Slug) != "" {
		base := helper.Slugify(*req.Slug, 160)
		if !strings.EqualFold(base, m.CourseSlug) {
			id := m.CourseID
			slug, err := helper.EnsureUniqueSlugCI(c.Context(), ctrl.DB, "courses", "course_slug", base,
				func(q *gorm.DB) *gorm.DB { return q.Where("course_id <> ?", id) }, 160)
			if err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
			}
			m.CourseSlug = slug
		}
	}

	if err := ctrl.DB.Save(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Slug course sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui course")
	}
	out, _ := ctrl.withCounts([]model.CourseModel{*m})
	return helper.JsonUpdated(c, "Course berhasil diperbarui", out[0])
}

// DELETE /api/a/courses/:id → lesson ikut terhapus, online class dilepas dari course
func (ctrl *OnlineController) DeleteCourse(c *fiber.Ctx) error {
	m, err := ctrl.findCourse(c)
	if err != nil {
		return err
	}
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("lesson_course_id = ?", m.CourseID).Delete(&model.LessonModel{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.OnlineClassModel{}).
			Where("online_class_course_id = ?", m.CourseID).
			Update("online_class_course_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(m).Error
	})
	if err != nil {
		log.Printf("[ERROR] delete course: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus course")
	}
	return helper.JsonDeleted(c, "Course berhasil dihapus", fiber.Map{"course_id": m.CourseID})
}

/* ================= Public ================= */

// GET /api/public/courses
func (ctrl *OnlineController) ListPublishedCourses(c *fiber.Ctx) error {
	var rows []model.CourseModel
	if err := ctrl.DB.Where("course_is_published = ?", true).
		Order("course_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil course")
	}
	out, err := ctrl.withCounts(rows)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung lesson")
	}
	helper.SetPublicCache(c, 120)
	return helper.JsonList(c, "ok", out, nil)
}

// GET /api/public/courses/:slug
func (ctrl *OnlineController) GetPublishedCourse(c *fiber.Ctx) error {
	slug := strings.ToLower(strings.TrimSpace(c.Params("slug")))
	var m model.CourseModel
	if err := ctrl.DB.
		Where("LOWER(course_slug) = ? AND course_is_published = ?", slug, true).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil course")
	}

	var lessons []model.LessonModel
	if err := ctrl.DB.Where("lesson_course_id = ?", m.CourseID).
		Order("lesson_position ASC, lesson_created_at ASC").
		Find(&lessons).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil lesson")
	}
	out := dto.CourseDetailResponse{CourseModel: m, Lessons: make([]dto.LessonSummary, 0, len(lessons))}
	for _, l := range lessons {
		out.Lessons = append(out.Lessons, dto.NewLessonSummary(l))
	}
	helper.SetPublicCache(c, 120)
	return helper.JsonOK(c, "ok", out)
}
