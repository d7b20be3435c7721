package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"madrasa_backend/internals/features/academics/classes/dto"
	"madrasa_backend/internals/features/academics/classes/model"
	helper "madrasa_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

/* ================= Helpers ================= */

func (ctrl *ClassController) findClass(c *fiber.Ctx) (*model.ClassModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	var m model.ClassModel
	if err := ctrl.DB.First(&m, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kelas")
	}
	return &m, nil
}

// studentCounts: jumlah siswa aktif per kelas, satu query untuk semua id
func studentCounts(db *gorm.DB, ids []uuid.UUID) (map[uuid.UUID]int64, error) {
	out := make(map[uuid.UUID]int64, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	type row struct {
		ClassID uuid.UUID `gorm:"column:class_id"`
		Total   int64     `gorm:"column:total"`
	}
	var rows []row
	if err := db.Table("students").
		Select("student_class_id AS class_id, COUNT(*) AS total").
		Where("student_class_id IN ? AND student_status = ?", ids, "active").
		Group("student_class_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.ClassID] = r.Total
	}
	return out, nil
}

func classIDs(rows []model.ClassModel) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ClassID)
	}
	return ids
}

/* ================= Handlers ================= */

// GET /api/a/classes?q=&is_active=
func (ctrl *ClassController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "level", "asc", helper.AdminOpts)

	q := ctrl.DB.Model(&model.ClassModel{})
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(class_name) LIKE ? OR LOWER(COALESCE(class_section, '')) LIKE ?", like, like)
	}
	if a := strings.TrimSpace(c.Query("is_active")); a != "" {
		q = q.Where("class_is_active = ?", a == "true" || a == "1")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung kelas")
	}

	order, _ := p.OrderClause(map[string]string{
		"level":      "class_level",
		"name":       "class_name",
		"created_at": "class_created_at",
		"fee":        "class_monthly_fee",
	}, "level")

	var rows []model.ClassModel
	if err := p.Apply(q.Order(order).Order("class_name ASC")).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kelas")
	}

	counts, err := studentCounts(ctrl.DB, classIDs(rows))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung siswa")
	}
	out := make([]dto.ClassResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.NewClassResponse(r, counts[r.ClassID]))
	}

	pg := helper.BuildPagination(total, p, len(out))
	return helper.JsonList(c, "ok", out, &pg)
}

// GET /api/public/classes
func (ctrl *ClassController) ListPublic(c *fiber.Ctx) error {
	var rows []model.ClassModel
	if err := ctrl.DB.
		Where("class_is_active = ?", true).
		Order("class_level ASC, class_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kelas")
	}
	counts, err := studentCounts(ctrl.DB, classIDs(rows))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung siswa")
	}
	out := make([]dto.PublicClassResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.NewPublicClassResponse(r, counts[r.ClassID]))
	}
	helper.SetPublicCache(c, 120)
	return helper.JsonList(c, "ok", out, nil)
}

// GET /api/a/classes/:id
func (ctrl *ClassController) Get(c *fiber.Ctx) error {
	m, err := ctrl.findClass(c)
	if err != nil {
		return err
	}
	counts, err := studentCounts(ctrl.DB, []uuid.UUID{m.ClassID})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung siswa")
	}
	return helper.JsonOK(c, "ok", dto.NewClassResponse(*m, counts[m.ClassID]))
}

// POST /api/a/classes
func (ctrl *ClassController) Create(c *fiber.Ctx) error {
	var req dto.CreateClassRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	m := req.ToModel()
	if m.ClassName == "" {
		return helper.JsonValidationError(c, map[string]string{"class_name": "class_name is required"})
	}

	if err := ctrl.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nama kelas sudah dipakai")
		}
		log.Printf("[ERROR] create class: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kelas")
	}
	return helper.JsonCreated(c, "Kelas berhasil dibuat", dto.NewClassResponse(*m, 0))
}

// PUT /api/a/classes/:id
func (ctrl *ClassController) Update(c *fiber.Ctx) error {
	var req dto.UpdateClassRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	m, err := ctrl.findClass(c)
	if err != nil {
		return err
	}
	req.ApplyToModel(m)
	if m.ClassName == "" {
		return helper.JsonValidationError(c, map[string]string{"class_name": "class_name is required"})
	}

	if err := ctrl.DB.Save(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nama kelas sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui kelas")
	}
	counts, _ := studentCounts(ctrl.DB, []uuid.UUID{m.ClassID})
	return helper.JsonUpdated(c, "Kelas berhasil diperbarui", dto.NewClassResponse(*m, counts[m.ClassID]))
}

// DELETE /api/a/classes/:id
// Ditolak (409) selama masih ada siswa di kelas ini.
func (ctrl *ClassController) Delete(c *fiber.Ctx) error {
	m, err := ctrl.findClass(c)
	if err != nil {
		return err
	}

	var assigned int64
	if err := ctrl.DB.Table("students").
		Where("student_class_id = ?", m.ClassID).
		Count(&assigned).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa siswa")
	}
	if assigned > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Kelas masih memiliki siswa, pindahkan siswa terlebih dahulu")
	}

	if err := ctrl.DB.Delete(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kelas")
	}
	return helper.JsonDeleted(c, "Kelas berhasil dihapus", fiber.Map{"class_id": m.ClassID})
}
