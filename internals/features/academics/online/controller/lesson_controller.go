package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasa_backend/internals/features/academics/online/dto"
	"madrasa_backend/internals/features/academics/online/model"
	helper "madrasa_backend/internals/helpers"
)

func (ctrl *OnlineController) findLesson(c *fiber.Ctx) (*model.LessonModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	var m model.LessonModel
	if err := ctrl.DB.First(&m, "lesson_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Lesson tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil lesson")
	}
	return &m, nil
}

// GET /api/a/lessons?course_id=
func (ctrl *OnlineController) ListLessons(c *fiber.Ctx) error {
	courseID, err := helper.ParseUUIDQuery(c, "course_id")
	if err != nil {
		return err
	}
	q := ctrl.DB.Model(&model.LessonModel{})
	if courseID != nil {
		q = q.Where("lesson_course_id = ?", *courseID)
	}
	var rows []model.LessonModel
	if err := q.Order("lesson_course_id, lesson_position ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil lesson")
	}
	return helper.JsonList(c, "ok", rows, nil)
}

// GET /api/a/lessons/:id
func (ctrl *OnlineController) GetLesson(c *fiber.Ctx) error {
	m, err := ctrl.findLesson(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", m)
}

// POST /api/a/lessons; tanpa position → taruh di akhir
func (ctrl *OnlineController) CreateLesson(c *fiber.Ctx) error {
	var req dto.CreateLessonRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}

	var exists int64
	if err := ctrl.DB.Model(&model.CourseModel{}).Where("course_id = ?", req.CourseID).Count(&exists).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa course")
	}
	if exists == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Course tidak ditemukan")
	}

	m := req.ToModel()
	if m.LessonPosition == 0 {
		var maxPos int
		if err := ctrl.DB.Model(&model.LessonModel{}).
			Where("lesson_course_id = ?", req.CourseID).
			Select("COALESCE(MAX(lesson_position), 0)").
			Scan(&maxPos).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung posisi")
		}
		m.LessonPosition = maxPos + 1
	}

	if err := ctrl.DB.Create(m).Error; err != nil {
		log.Printf("[ERROR] create lesson: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat lesson")
	}
	return helper.JsonCreated(c, "Lesson berhasil dibuat", m)
}

// PUT /api/a/lessons/:id
func (ctrl *OnlineController) UpdateLesson(c *fiber.Ctx) error {
	var req dto.UpdateLessonRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	m, err := ctrl.findLesson(c)
	if err != nil {
		return err
	}
	req.ApplyToModel(m)
	if err := ctrl.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui lesson")
	}
	return helper.JsonUpdated(c, "Lesson berhasil diperbarui", m)
}

// DELETE /api/a/lessons/:id
func (ctrl *OnlineController) DeleteLesson(c *fiber.Ctx) error {
	m, err := ctrl.findLesson(c)
	if err != nil {
		return err
	}
	if err := ctrl.DB.Delete(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus lesson")
	}
	return helper.JsonDeleted(c, "Lesson berhasil dihapus", fiber.Map{"lesson_id": m.LessonID})
}

// GET /api/public/lessons/:id (hanya lesson dari course yang published)
func (ctrl *OnlineController) GetPublicLesson(c *fiber.Ctx) error {
	m, err := ctrl.findLesson(c)
	if err != nil {
		return err
	}
	var course model.CourseModel
	if err := ctrl.DB.
		Where("course_id = ? AND course_is_published = ?", m.LessonCourseID, true).
		First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lesson tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil course")
	}

	// navigasi prev/next dalam course yang sama
	var siblings []model.LessonModel
	if err := ctrl.DB.Select("lesson_id", "lesson_title", "lesson_position").
		Where("lesson_course_id = ?", m.LessonCourseID).
		Order("lesson_position ASC, lesson_created_at ASC").
		Find(&siblings).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil lesson")
	}
	var prev, next *dto.LessonSummary
	for i, s := range siblings {
		if s.LessonID != m.LessonID {
			continue
		}
		if i > 0 {
			v := dto.NewLessonSummary(siblings[i-1])
			prev = &v
		}
		if i+1 < len(siblings) {
			v := dto.NewLessonSummary(siblings[i+1])
			next = &v
		}
		break
	}

	helper.SetPublicCache(c, 120)
	return helper.JsonOK(c, "ok", fiber.Map{
		"lesson":      m,
		"course_slug": course.CourseSlug,
		"course":      course.CourseTitle,
		"prev":        prev,
		"next":        next,
	})
}
