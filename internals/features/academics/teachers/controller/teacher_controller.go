package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasa_backend/internals/features/academics/teachers/dto"
	"madrasa_backend/internals/features/academics/teachers/model"
	"madrasa_backend/internals/features/academics/teachers/service"
	helper "madrasa_backend/internals/helpers"
	helperOSS "madrasa_backend/internals/helpers/oss"
)

type TeacherController struct {
	DB   *gorm.DB
	Blob helperOSS.BlobService
}

func NewTeacherController(db *gorm.DB, blob helperOSS.BlobService) *TeacherController {
	return &TeacherController{DB: db, Blob: blob}
}

func (ctrl *TeacherController) findTeacher(c *fiber.Ctx) (*model.TeacherModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	var m model.TeacherModel
	if err := ctrl.DB.First(&m, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Guru tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil guru")
	}
	return &m, nil
}

func conflictOrError(c *fiber.Ctx, err error, action string) error {
	if helper.IsUniqueViolation(err) {
		return helper.JsonError(c, fiber.StatusConflict, "Kode pegawai sudah dipakai")
	}
	log.Printf("[ERROR] %s teacher: %v", action, err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal "+action+" guru")
}

// GET /api/a/teachers?q=&status=
func (ctrl *TeacherController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "name", "asc", helper.AdminOpts)

	q := ctrl.DB.Model(&model.TeacherModel{})
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where(
			"LOWER(teacher_full_name) LIKE ? OR LOWER(teacher_employee_code) LIKE ? OR LOWER(teacher_phone) LIKE ?",
			like, like, like,
		)
	}
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		q = q.Where("teacher_status = ?", st)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung guru")
	}
	order, _ := p.OrderClause(map[string]string{
		"name":         "teacher_full_name",
		"code":         "teacher_employee_code",
		"joining_date": "teacher_joining_date",
		"salary":       "teacher_monthly_salary",
	}, "name")

	var rows []model.TeacherModel
	if err := p.Apply(q.Order(order)).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil guru")
	}
	pg := helper.BuildPagination(total, p, len(rows))
	return helper.JsonList(c, "ok", rows, &pg)
}

// GET /api/a/teachers/:id
func (ctrl *TeacherController) Get(c *fiber.Ctx) error {
	m, err := ctrl.findTeacher(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", m)
}

// POST /api/a/teachers
func (ctrl *TeacherController) Create(c *fiber.Ctx) error {
	var req dto.CreateTeacherRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	m := req.ToModel()
	if err := service.CreateWithCode(ctrl.DB, m, helper.IsUniqueViolation); err != nil {
		return conflictOrError(c, err, "membuat")
	}
	return helper.JsonCreated(c, "Guru berhasil ditambahkan", m)
}

// PUT /api/a/teachers/:id
func (ctrl *TeacherController) Update(c *fiber.Ctx) error {
	var req dto.UpdateTeacherRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	m, err := ctrl.findTeacher(c)
	if err != nil {
		return err
	}
	req.ApplyToModel(m)
	if m.TeacherEmployeeCode == "" {
		return helper.JsonValidationError(c, map[string]string{"teacher_employee_code": "teacher_employee_code is required"})
	}
	if err := ctrl.DB.Save(m).Error; err != nil {
		return conflictOrError(c, err, "memperbarui")
	}
	return helper.JsonUpdated(c, "Guru berhasil diperbarui", m)
}

// DELETE /api/a/teachers/:id
// Kelas yang diwalikan dilepas dulu; riwayat gaji tetap disimpan.
func (ctrl *TeacherController) Delete(c *fiber.Ctx) error {
	m, err := ctrl.findTeacher(c)
	if err != nil {
		return err
	}

	var salaries int64
	if err := ctrl.DB.Table("salaries").Where("salary_teacher_id = ?", m.TeacherID).Count(&salaries).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa data gaji")
	}
	if salaries > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Guru memiliki riwayat gaji, ubah status menjadi resigned")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Table("classes").
			Where("class_teacher_id = ?", m.TeacherID).
			Update("class_teacher_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(m).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus guru")
	}
	if m.TeacherPhotoURL != nil && ctrl.Blob != nil {
		_ = ctrl.Blob.DeleteByPublicURL(c.UserContext(), *m.TeacherPhotoURL)
	}
	return helper.JsonDeleted(c, "Guru berhasil dihapus", fiber.Map{"teacher_id": m.TeacherID})
}

// POST /api/a/teachers/:id/photo
func (ctrl *TeacherController) UploadPhoto(c *fiber.Ctx) error {
	m, err := ctrl.findTeacher(c)
	if err != nil {
		return err
	}
	fh, err := helperOSS.GetImageFile(c)
	if err != nil {
		return err
	}
	if fh == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File foto wajib diunggah")
	}
	url, err := helperOSS.ReplaceImage(c.UserContext(), ctrl.Blob, "teachers", fh, m.TeacherPhotoURL)
	if err != nil {
		return err
	}
	if err := ctrl.DB.Model(m).Update("teacher_photo_url", url).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan foto")
	}
	return helper.JsonUpdated(c, "Foto guru diperbarui", fiber.Map{"teacher_photo_url": url})
}

// GET /api/public/teachers
func (ctrl *TeacherController) ListPublic(c *fiber.Ctx) error {
	var rows []model.TeacherModel
	if err := ctrl.DB.
		Where("teacher_status = ?", model.TeacherStatusActive).
		Order("teacher_joining_date ASC, teacher_full_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil guru")
	}
	out := make([]dto.PublicTeacherResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToPublic(r))
	}
	helper.SetPublicCache(c, 300)
	return helper.JsonList(c, "ok", out, nil)
}
