package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"madrasa_backend/internals/features/academics/jamiyat/dto"
	"madrasa_backend/internals/features/academics/jamiyat/model"
	studentModel "madrasa_backend/internals/features/academics/students/model"
	helper "madrasa_backend/internals/helpers"
)

type JamiyatController struct {
	DB *gorm.DB
}

func NewJamiyatController(db *gorm.DB) *JamiyatController {
	return &JamiyatController{DB: db}
}

func (ctrl *JamiyatController) findGroup(c *fiber.Ctx) (*model.JamiyatGroupModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	var g model.JamiyatGroupModel
	if err := ctrl.DB.First(&g, "jamiyat_group_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Grup jamiyat tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil grup jamiyat")
	}
	return &g, nil
}

// members: anggota grup urut posisi, lengkap dengan nama siswa
func (ctrl *JamiyatController) members(groupID uuid.UUID) ([]dto.MemberView, error) {
	var out []dto.MemberView
	err := ctrl.DB.Table("jamiyat_members AS m").
		Select(`m.jamiyat_member_id AS jamiyat_member_id,
			m.jamiyat_member_student_id AS student_id,
			s.student_full_name AS student_name,
			m.jamiyat_member_position AS position`).
		Joins("JOIN students AS s ON s.student_id = m.jamiyat_member_student_id").
		Where("m.jamiyat_member_group_id = ?", groupID).
		Order("m.jamiyat_member_position ASC").
		Scan(&out).Error
	if out == nil {
		out = []dto.MemberView{}
	}
	return out, err
}

/* ================= Groups ================= */

// GET /api/a/jamiyat/groups
func (ctrl *JamiyatController) ListGroups(c *fiber.Ctx) error {
	var rows []model.JamiyatGroupModel
	q := ctrl.DB.Order("jamiyat_group_name ASC")
	if v := c.Query("is_active"); v != "" {
		q = q.Where("jamiyat_group_is_active = ?", v == "true" || v == "1")
	}
	if err := q.Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil grup jamiyat")
	}
	return helper.JsonList(c, "ok", rows, nil)
}

// GET /api/a/jamiyat/groups/:id (beserta anggota)
func (ctrl *JamiyatController) GetGroup(c *fiber.Ctx) error {
	g, err := ctrl.findGroup(c)
	if err != nil {
		return err
	}
	members, err := ctrl.members(g.JamiyatGroupID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil anggota")
	}
	return helper.JsonOK(c, "ok", fiber.Map{"group": g, "members": members})
}

// POST /api/a/jamiyat/groups
func (ctrl *JamiyatController) CreateGroup(c *fiber.Ctx) error {
	var req dto.CreateGroupRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	g := &model.JamiyatGroupModel{
		JamiyatGroupName:       req.Name,
		JamiyatGroupClassID:    req.ClassID,
		JamiyatGroupMeetingDay: req.MeetingDay,
		JamiyatGroupDuties:     pq.StringArray(helper.CleanStrings(req.Duties)),
		JamiyatGroupIsActive:   true,
	}
	if req.IsActive != nil {
		g.JamiyatGroupIsActive = *req.IsActive
	}
	if err := ctrl.DB.Create(g).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nama grup sudah dipakai")
		}
		log.Printf("[ERROR] create jamiyat group: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat grup jamiyat")
	}
	return helper.JsonCreated(c, "Grup jamiyat dibuat", g)
}

// PUT /api/a/jamiyat/groups/:id
func (ctrl *JamiyatController) UpdateGroup(c *fiber.Ctx) error {
	var req dto.UpdateGroupRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	g, err := ctrl.findGroup(c)
	if err != nil {
		return err
	}
	if req.Name != nil {
		g.JamiyatGroupName = *req.Name
	}
	if req.ClassID != nil {
		if *req.ClassID == uuid.Nil {
			g.JamiyatGroupClassID = nil
		} else {
			id := *req.ClassID
			g.JamiyatGroupClassID = &id
		}
	}
	if req.MeetingDay != nil {
		g.JamiyatGroupMeetingDay = *req.MeetingDay
	}
	if req.Duties != nil {
		duties := helper.CleanStrings(*req.Duties)
		if len(duties) == 0 {
			return helper.JsonValidationError(c, map[string]string{"jamiyat_group_duties": "jamiyat_group_duties must not be empty"})
		}
		g.JamiyatGroupDuties = pq.StringArray(duties)
	}
	if req.IsActive != nil {
		g.JamiyatGroupIsActive = *req.IsActive
	}
	if err := ctrl.DB.Save(g).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nama grup sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui grup jamiyat")
	}
	return helper.JsonUpdated(c, "Grup jamiyat diperbarui", g)
}

// DELETE /api/a/jamiyat/groups/:id (anggota & jadwal ikut terhapus)
func (ctrl *JamiyatController) DeleteGroup(c *fiber.Ctx) error {
	g, err := ctrl.findGroup(c)
	if err != nil {
		return err
	}
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("jamiyat_session_group_id = ?", g.JamiyatGroupID).Delete(&model.JamiyatSessionModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("jamiyat_member_group_id = ?", g.JamiyatGroupID).Delete(&model.JamiyatMemberModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(g).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus grup jamiyat")
	}
	return helper.JsonDeleted(c, "Grup jamiyat dihapus", fiber.Map{"jamiyat_group_id": g.JamiyatGroupID})
}

/* ================= Members ================= */

// POST /api/a/jamiyat/groups/:id/members {student_id} → ditambah di urutan terakhir
func (ctrl *JamiyatController) AddMember(c *fiber.Ctx) error {
	var req dto.AddMemberRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	g, err := ctrl.findGroup(c)
	if err != nil {
		return err
	}
	if err := ctrl.ensureStudents([]uuid.UUID{req.StudentID}); err != nil {
		return err
	}

	var maxPos int
	if err := ctrl.DB.Model(&model.JamiyatMemberModel{}).
		Where("jamiyat_member_group_id = ?", g.JamiyatGroupID).
		Select("COALESCE(MAX(jamiyat_member_position), 0)").
		Scan(&maxPos).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca urutan anggota")
	}

	m := &model.JamiyatMemberModel{
		JamiyatMemberGroupID:   g.JamiyatGroupID,
		JamiyatMemberStudentID: req.StudentID,
		JamiyatMemberPosition:  maxPos + 1,
	}
	if err := ctrl.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Siswa sudah menjadi anggota grup ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambah anggota")
	}
	return helper.JsonCreated(c, "Anggota ditambahkan", m)
}

// PUT /api/a/jamiyat/groups/:id/members {student_ids:[...]} → ganti seluruh anggota & urutan
func (ctrl *JamiyatController) SetMembers(c *fiber.Ctx) error {
	var req dto.SetMembersRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	g, err := ctrl.findGroup(c)
	if err != nil {
		return err
	}
	seen := map[uuid.UUID]bool{}
	for _, id := range req.StudentIDs {
		if seen[id] {
			return helper.JsonError(c, fiber.StatusBadRequest, "Siswa "+id.String()+" muncul lebih dari sekali")
		}
		seen[id] = true
	}
	if err := ctrl.ensureStudents(req.StudentIDs); err != nil {
		return err
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("jamiyat_member_group_id = ?", g.JamiyatGroupID).Delete(&model.JamiyatMemberModel{}).Error; err != nil {
			return err
		}
		if len(req.StudentIDs) == 0 {
			return nil
		}
		rows := make([]model.JamiyatMemberModel, 0, len(req.StudentIDs))
		for i, id := range req.StudentIDs {
			rows = append(rows, model.JamiyatMemberModel{
				JamiyatMemberGroupID:   g.JamiyatGroupID,
				JamiyatMemberStudentID: id,
				JamiyatMemberPosition:  i + 1,
			})
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan anggota")
	}
	members, _ := ctrl.members(g.JamiyatGroupID)
	return helper.JsonUpdated(c, "Anggota grup diperbarui", members)
}

// DELETE /api/a/jamiyat/groups/:id/members/:student_id
func (ctrl *JamiyatController) RemoveMember(c *fiber.Ctx) error {
	g, err := ctrl.findGroup(c)
	if err != nil {
		return err
	}
	studentID, err := helper.ParseUUIDParam(c, "student_id")
	if err != nil {
		return err
	}
	res := ctrl.DB.
		Where("jamiyat_member_group_id = ? AND jamiyat_member_student_id = ?", g.JamiyatGroupID, studentID).
		Delete(&model.JamiyatMemberModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus anggota")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Siswa bukan anggota grup ini")
	}
	return helper.JsonDeleted(c, "Anggota dihapus", fiber.Map{"student_id": studentID})
}

func (ctrl *JamiyatController) ensureStudents(ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	var n int64
	if err := ctrl.DB.Model(&studentModel.StudentModel{}).Where("student_id IN ?", ids).Count(&n).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa siswa")
	}
	if int(n) != len(ids) {
		return fiber.NewError(fiber.StatusBadRequest, "Sebagian siswa tidak ditemukan")
	}
	return nil
}
