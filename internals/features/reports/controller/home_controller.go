package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	studentModel "madrasa_backend/internals/features/academics/students/model"
	teacherModel "madrasa_backend/internals/features/academics/teachers/model"
	institutionDTO "madrasa_backend/internals/features/institution/dto"
	institutionService "madrasa_backend/internals/features/institution/service"
	helper "madrasa_backend/internals/helpers"
)

type homeExam struct {
	ExamID        uuid.UUID `json:"exam_id" gorm:"column:exam_id"`
	ExamName      string    `json:"exam_name" gorm:"column:exam_name"`
	ExamStartDate time.Time `json:"exam_start_date" gorm:"column:exam_start_date"`
}

type homeCourse struct {
	CourseID    uuid.UUID `json:"course_id" gorm:"column:course_id"`
	CourseTitle string    `json:"course_title" gorm:"column:course_title"`
	CourseSlug  string    `json:"course_slug" gorm:"column:course_slug"`
}

// GET /api/public/home: profil + angka ringkas + ujian & kursus terbaru
func (ctrl *ReportController) Home(c *fiber.Ctx) error {
	inst, _, err := institutionService.Load(ctrl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil madrasah")
	}

	var students, teachers, alumni int64
	if err := ctrl.DB.Model(&studentModel.StudentModel{}).
		Where("student_status = ?", studentModel.StudentStatusActive).Count(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung siswa")
	}
	if err := ctrl.DB.Model(&teacherModel.TeacherModel{}).
		Where("teacher_status = ?", teacherModel.TeacherStatusActive).Count(&teachers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung guru")
	}
	if err := ctrl.DB.Model(&studentModel.StudentModel{}).
		Where("student_status = ?", studentModel.StudentStatusGraduated).Count(&alumni).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung alumni")
	}

	exams := []homeExam{}
	if err := ctrl.DB.Table("exams").
		Select("exam_id, exam_name, exam_start_date").
		Where("exam_is_published = ?", true).
		Order("exam_start_date DESC").Limit(5).
		Scan(&exams).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil ujian")
	}
	courses := []homeCourse{}
	if err := ctrl.DB.Table("courses").
		Select("course_id, course_title, course_slug").
		Where("course_is_published = ?", true).
		Order("course_created_at DESC").Limit(6).
		Scan(&courses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kursus")
	}

	helper.SetPublicCache(c, 120)
	return helper.JsonOK(c, "ok", fiber.Map{
		"institution": institutionDTO.ToPublic(inst),
		"stats": fiber.Map{
			"students": students,
			"teachers": teachers,
			"alumni":   alumni,
		},
		"latest_results": exams,
		"courses":        courses,
	})
}
