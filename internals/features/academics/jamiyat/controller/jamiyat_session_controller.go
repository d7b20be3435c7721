package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"madrasa_backend/internals/features/academics/jamiyat/dto"
	"madrasa_backend/internals/features/academics/jamiyat/model"
	"madrasa_backend/internals/features/academics/jamiyat/service"
	helper "madrasa_backend/internals/helpers"
	"madrasa_backend/internals/helpers/dbtime"
)

func toSessionView(s model.JamiyatSessionModel) dto.SessionView {
	return dto.SessionView{
		JamiyatSessionID: s.JamiyatSessionID,
		GroupID:          s.JamiyatSessionGroupID,
		Date:             dbtime.FormatDate(s.JamiyatSessionDate),
		Assignments:      service.DecodeAssignments(s.JamiyatSessionAssignments),
		IsCompleted:      s.JamiyatSessionIsCompleted,
		Notes:            s.JamiyatSessionNotes,
	}
}

func (ctrl *JamiyatController) findSession(c *fiber.Ctx) (*model.JamiyatSessionModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	var s model.JamiyatSessionModel
	if err := ctrl.DB.First(&s, "jamiyat_session_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Jadwal jamiyat tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}
	return &s, nil
}

// POST /api/a/jamiyat/groups/:id/schedule?from=YYYY-MM-DD&weeks=N
// Jadwal lama mulai `from` diganti; jadwal sebelum `from` tidak disentuh.
func (ctrl *JamiyatController) GenerateSchedule(c *fiber.Ctx) error {
	var err error
	from := dbtime.Today()
	if raw := strings.TrimSpace(c.Query("from")); raw != "" {
		if from, err = dbtime.ParseDate(raw); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}
	weeks := 4
	if raw := strings.TrimSpace(c.Query("weeks")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > service.MaxWeeks {
			return helper.JsonError(c, fiber.StatusBadRequest, service.ErrWeeks.Error())
		}
		weeks = n
	}

	g, err := ctrl.findGroup(c)
	if err != nil {
		return err
	}

	views, err := ctrl.members(g.JamiyatGroupID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil anggota")
	}
	members := make([]service.Member, 0, len(views))
	for _, v := range views {
		members = append(members, service.Member{StudentID: v.StudentID, Name: v.StudentName})
	}

	plan, err := service.BuildSchedule(members, g.JamiyatGroupDuties, from, g.JamiyatGroupMeetingDay, weeks)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	rows := make([]model.JamiyatSessionModel, 0, len(plan))
	for _, p := range plan {
		raw, err := service.EncodeAssignments(p.Assignments)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun jadwal")
		}
		rows = append(rows, model.JamiyatSessionModel{
			JamiyatSessionGroupID:     g.JamiyatGroupID,
			JamiyatSessionDate:        p.Date,
			JamiyatSessionAssignments: raw,
		})
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("jamiyat_session_group_id = ? AND jamiyat_session_date >= ?", g.JamiyatGroupID, from).
			Delete(&model.JamiyatSessionModel{}).Error; err != nil {
			return err
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		log.Printf("[ERROR] generate jamiyat schedule: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan jadwal")
	}

	out := make([]dto.SessionView, 0, len(rows))
	for _, r := range rows {
		out = append(out, toSessionView(r))
	}
	return helper.JsonCreated(c, "Jadwal jamiyat dibuat", out)
}

// GET /api/a/jamiyat/groups/:id/sessions?from=&to=
func (ctrl *JamiyatController) ListSessions(c *fiber.Ctx) error {
	g, err := ctrl.findGroup(c)
	if err != nil {
		return err
	}
	q, err := ctrl.sessionRange(c, g.JamiyatGroupID)
	if err != nil {
		return err
	}
	var rows []model.JamiyatSessionModel
	if err := q.Order("jamiyat_session_date ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}
	out := make([]dto.SessionView, 0, len(rows))
	for _, r := range rows {
		out = append(out, toSessionView(r))
	}
	return helper.JsonList(c, "ok", out, nil)
}

func (ctrl *JamiyatController) sessionRange(c *fiber.Ctx, groupID uuid.UUID) (*gorm.DB, error) {
	q := ctrl.DB.Model(&model.JamiyatSessionModel{}).Where("jamiyat_session_group_id = ?", groupID)
	if raw := strings.TrimSpace(c.Query("from")); raw != "" {
		d, err := dbtime.ParseDate(raw)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		q = q.Where("jamiyat_session_date >= ?", d)
	}
	if raw := strings.TrimSpace(c.Query("to")); raw != "" {
		d, err := dbtime.ParseDate(raw)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		q = q.Where("jamiyat_session_date <= ?", d)
	}
	return q, nil
}

// PUT /api/a/jamiyat/sessions/:id → ganti petugas manual
func (ctrl *JamiyatController) Reassign(c *fiber.Ctx) error {
	var req dto.ReassignRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	s, err := ctrl.findSession(c)
	if err != nil {
		return err
	}

	// petugas harus anggota grup
	views, err := ctrl.members(s.JamiyatSessionGroupID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil anggota")
	}
	names := make(map[uuid.UUID]string, len(views))
	for _, v := range views {
		names[v.StudentID] = v.StudentName
	}

	assignments := make([]dto.Assignment, 0, len(req.Assignments))
	for _, a := range req.Assignments {
		name, ok := names[a.StudentID]
		if !ok {
			return helper.JsonError(c, fiber.StatusBadRequest, "Siswa "+a.StudentID.String()+" bukan anggota grup")
		}
		assignments = append(assignments, dto.Assignment{Duty: strings.TrimSpace(a.Duty), StudentID: a.StudentID, StudentName: name})
	}
	raw, err := service.EncodeAssignments(assignments)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun jadwal")
	}

	s.JamiyatSessionAssignments = raw
	if req.Notes != nil {
		s.JamiyatSessionNotes = helper.TrimPtr(req.Notes)
	}
	if err := ctrl.DB.Save(s).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan jadwal")
	}
	return helper.JsonUpdated(c, "Petugas diperbarui", toSessionView(*s))
}

// PATCH /api/a/jamiyat/sessions/:id/complete {is_completed?, notes?}
func (ctrl *JamiyatController) Complete(c *fiber.Ctx) error {
	var req dto.CompleteSessionRequest
	if len(c.Body()) > 0 {
		if ok, err := helper.BindAndValidate(c, &req); !ok {
			return err
		}
	}
	s, err := ctrl.findSession(c)
	if err != nil {
		return err
	}
	done := true
	if req.IsCompleted != nil {
		done = *req.IsCompleted
	}
	s.JamiyatSessionIsCompleted = done
	if req.Notes != nil {
		s.JamiyatSessionNotes = helper.TrimPtr(req.Notes)
	}
	if err := ctrl.DB.Save(s).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan jadwal")
	}
	return helper.JsonUpdated(c, "Status pertemuan diperbarui", toSessionView(*s))
}

// GET /api/a/jamiyat/groups/:id/load?from=&to=
func (ctrl *JamiyatController) Load(c *fiber.Ctx) error {
	g, err := ctrl.findGroup(c)
	if err != nil {
		return err
	}
	q, err := ctrl.sessionRange(c, g.JamiyatGroupID)
	if err != nil {
		return err
	}
	var rows []model.JamiyatSessionModel
	if err := q.Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}
	sessions := make([][]dto.Assignment, 0, len(rows))
	for _, r := range rows {
		sessions = append(sessions, service.DecodeAssignments(r.JamiyatSessionAssignments))
	}
	return helper.JsonOK(c, "ok", fiber.Map{
		"sessions": len(rows),
		"members":  service.MemberLoads(sessions),
	})
}
