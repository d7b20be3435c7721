package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasa_backend/internals/features/academics/online/dto"
	"madrasa_backend/internals/features/academics/online/model"
	helper "madrasa_backend/internals/helpers"
)

func (ctrl *OnlineController) findOnlineClass(c *fiber.Ctx) (*model.OnlineClassModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	var m model.OnlineClassModel
	if err := ctrl.DB.First(&m, "online_class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Kelas online tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kelas online")
	}
	return &m, nil
}

// GET /api/a/online-classes?class_id=&is_active=
func (ctrl *OnlineController) ListOnlineClasses(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "start_time", "asc", helper.AdminOpts)

	q := ctrl.DB.Model(&model.OnlineClassModel{})
	classID, err := helper.ParseUUIDQuery(c, "class_id")
	if err != nil {
		return err
	}
	if classID != nil {
		q = q.Where("online_class_class_id = ?", *classID)
	}
	if v := strings.TrimSpace(c.Query("is_active")); v != "" {
		q = q.Where("online_class_is_active = ?", v == "true" || v == "1")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung kelas online")
	}
	order, _ := p.OrderClause(map[string]string{
		"start_time": "online_class_start_time",
		"title":      "online_class_title",
		"created_at": "online_class_created_at",
	}, "start_time")

	var rows []model.OnlineClassModel
	if err := p.Apply(q.Order(order)).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kelas online")
	}
	pg := helper.BuildPagination(total, p, len(rows))
	return helper.JsonList(c, "ok", rows, &pg)
}

// GET /api/a/online-classes/:id
func (ctrl *OnlineController) GetOnlineClass(c *fiber.Ctx) error {
	m, err := ctrl.findOnlineClass(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", m)
}

// POST /api/a/online-classes
func (ctrl *OnlineController) CreateOnlineClass(c *fiber.Ctx) error {
	var req dto.CreateOnlineClassRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	m, err := req.ToModel()
	if err != nil {
		return helper.JsonValidationError(c, map[string]string{"online_class_weekdays": err.Error()})
	}
	if err := ctrl.DB.Create(m).Error; err != nil {
		log.Printf("[ERROR] create online class: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kelas online")
	}
	return helper.JsonCreated(c, "Kelas online berhasil dibuat", m)
}

// PUT /api/a/online-classes/:id
func (ctrl *OnlineController) UpdateOnlineClass(c *fiber.Ctx) error {
	var req dto.UpdateOnlineClassRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	m, err := ctrl.findOnlineClass(c)
	if err != nil {
		return err
	}
	if err := req.ApplyToModel(m); err != nil {
		return helper.JsonValidationError(c, map[string]string{"online_class_weekdays": err.Error()})
	}
	if err := ctrl.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui kelas online")
	}
	return helper.JsonUpdated(c, "Kelas online berhasil diperbarui", m)
}

// DELETE /api/a/online-classes/:id
func (ctrl *OnlineController) DeleteOnlineClass(c *fiber.Ctx) error {
	m, err := ctrl.findOnlineClass(c)
	if err != nil {
		return err
	}
	if err := ctrl.DB.Delete(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kelas online")
	}
	return helper.JsonDeleted(c, "Kelas online berhasil dihapus", fiber.Map{"online_class_id": m.OnlineClassID})
}

// GET /api/public/online-classes → yang aktif saja, plus nama kelas & guru
func (ctrl *OnlineController) ListActiveOnlineClasses(c *fiber.Ctx) error {
	type row struct {
		model.OnlineClassModel
		ClassName   *string `gorm:"column:class_name"`
		TeacherName *string `gorm:"column:teacher_name"`
	}
	var rows []row
	if err := ctrl.DB.Table("online_classes AS oc").
		Select("oc.*, c.class_name AS class_name, t.teacher_full_name AS teacher_name").
		Joins("LEFT JOIN classes c ON c.class_id = oc.online_class_class_id").
		Joins("LEFT JOIN teachers t ON t.teacher_id = oc.online_class_teacher_id").
		Where("oc.online_class_is_active = ?", true).
		Order("oc.online_class_start_time ASC").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kelas online")
	}

	out := make([]dto.PublicOnlineClass, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.PublicOnlineClass{
			OnlineClassID:              r.OnlineClassID,
			OnlineClassTitle:           r.OnlineClassTitle,
			OnlineClassPlatform:        r.OnlineClassPlatform,
			OnlineClassMeetingURL:      r.OnlineClassMeetingURL,
			OnlineClassWeekdays:        r.OnlineClassWeekdays,
			OnlineClassStartTime:       r.OnlineClassStartTime,
			OnlineClassDurationMinutes: r.OnlineClassDurationMinutes,
			ClassName:                  r.ClassName,
			TeacherName:                r.TeacherName,
		})
	}
	helper.SetPublicCache(c, 60)
	return helper.JsonList(c, "ok", out, nil)
}
