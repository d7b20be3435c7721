package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"madrasa_backend/internals/features/academics/exams/dto"
	"madrasa_backend/internals/features/academics/exams/model"
	"madrasa_backend/internals/features/academics/exams/service"
	studentModel "madrasa_backend/internals/features/academics/students/model"
	helper "madrasa_backend/internals/helpers"
)

type ResultController struct {
	DB    *gorm.DB
	Cache service.ResultStore
}

func NewResultController(db *gorm.DB, cache service.ResultStore) *ResultController {
	return &ResultController{DB: db, Cache: cache}
}

/* ================= Helpers ================= */

func (ctrl *ResultController) examByID(id uuid.UUID) (*model.ExamModel, error) {
	var m model.ExamModel
	if err := ctrl.DB.First(&m, "exam_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Ujian tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil ujian")
	}
	return &m, nil
}

func (ctrl *ResultController) studentByID(id uuid.UUID) (*studentModel.StudentModel, error) {
	var s studentModel.StudentModel
	if err := ctrl.DB.First(&s, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil siswa")
	}
	return &s, nil
}

func (ctrl *ResultController) findResult(c *fiber.Ctx) (*model.ResultModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	var m model.ResultModel
	if err := ctrl.DB.First(&m, "result_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Nilai tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil nilai")
	}
	return &m, nil
}

func checkMarks(obtained, total float64) error {
	if total <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "total_marks harus lebih dari 0")
	}
	if obtained < 0 || obtained > total {
		return fiber.NewError(fiber.StatusBadRequest, "marks_obtained harus di antara 0 dan total_marks")
	}
	return nil
}

/* ================= Admin Handlers ================= */

// GET /api/a/results?exam_id=&class_id=&student_id=&subject=
func (ctrl *ResultController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := ctrl.DB.Model(&model.ResultModel{})
	for _, f := range []struct{ param, col string }{
		{"exam_id", "result_exam_id"},
		{"class_id", "result_class_id"},
		{"student_id", "result_student_id"},
	} {
		id, err := helper.ParseUUIDQuery(c, f.param)
		if err != nil {
			return err
		}
		if id != nil {
			q = q.Where(f.col+" = ?", *id)
		}
	}
	if s := strings.TrimSpace(c.Query("subject")); s != "" {
		q = q.Where("LOWER(result_subject) = ?", strings.ToLower(s))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung nilai")
	}
	order, _ := p.OrderClause(map[string]string{
		"created_at": "result_created_at",
		"subject":    "result_subject",
		"marks":      "result_marks_obtained",
	}, "created_at")

	var rows []model.ResultModel
	if err := p.Apply(q.Order(order)).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil nilai")
	}
	pg := helper.BuildPagination(total, p, len(rows))
	return helper.JsonList(c, "ok", rows, &pg)
}

// POST /api/a/results
func (ctrl *ResultController) Create(c *fiber.Ctx) error {
	var req dto.CreateResultRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	if err := checkMarks(req.MarksObtained, req.TotalMarks); err != nil {
		return err
	}
	if _, err := ctrl.examByID(req.ExamID); err != nil {
		return err
	}
	s, err := ctrl.studentByID(req.StudentID)
	if err != nil {
		return err
	}
	if s.StudentClassID == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Siswa belum memiliki kelas")
	}

	m := &model.ResultModel{
		ResultExamID:        req.ExamID,
		ResultStudentID:     req.StudentID,
		ResultClassID:       *s.StudentClassID,
		ResultSubject:       strings.TrimSpace(req.Subject),
		ResultMarksObtained: req.MarksObtained,
		ResultTotalMarks:    req.TotalMarks,
		ResultGrade:         service.SubjectGrade(req.MarksObtained, req.TotalMarks),
		ResultRemarks:       helper.TrimPtr(req.Remarks),
	}
	if err := ctrl.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nilai mapel ini untuk siswa tersebut sudah ada")
		}
		log.Printf("[ERROR] create result: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan nilai")
	}
	ctrl.Cache.InvalidateExam(c.UserContext(), m.ResultExamID)
	return helper.JsonCreated(c, "Nilai berhasil disimpan", m)
}

// PUT /api/a/results/:id
func (ctrl *ResultController) Update(c *fiber.Ctx) error {
	var req dto.UpdateResultRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	m, err := ctrl.findResult(c)
	if err != nil {
		return err
	}
	if req.Subject != nil {
		m.ResultSubject = strings.TrimSpace(*req.Subject)
	}
	if req.MarksObtained != nil {
		m.ResultMarksObtained = *req.MarksObtained
	}
	if req.TotalMarks != nil {
		m.ResultTotalMarks = *req.TotalMarks
	}
	if req.Remarks != nil {
		m.ResultRemarks = helper.TrimPtr(req.Remarks)
	}
	if err := checkMarks(m.ResultMarksObtained, m.ResultTotalMarks); err != nil {
		return err
	}
	m.ResultGrade = service.SubjectGrade(m.ResultMarksObtained, m.ResultTotalMarks)

	if err := ctrl.DB.Save(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nilai mapel ini untuk siswa tersebut sudah ada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui nilai")
	}
	ctrl.Cache.InvalidateExam(c.UserContext(), m.ResultExamID)
	return helper.JsonUpdated(c, "Nilai berhasil diperbarui", m)
}

// DELETE /api/a/results/:id
func (ctrl *ResultController) Delete(c *fiber.Ctx) error {
	m, err := ctrl.findResult(c)
	if err != nil {
		return err
	}
	if err := ctrl.DB.Delete(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus nilai")
	}
	ctrl.Cache.InvalidateExam(c.UserContext(), m.ResultExamID)
	return helper.JsonDeleted(c, "Nilai berhasil dihapus", fiber.Map{"result_id": m.ResultID})
}

// POST /api/a/results/bulk
// Entri nilai satu mapel untuk satu kelas; nilai lama ditimpa.
func (ctrl *ResultController) Bulk(c *fiber.Ctx) error {
	var req dto.BulkResultRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	if _, err := ctrl.examByID(req.ExamID); err != nil {
		return err
	}

	ids := make([]uuid.UUID, 0, len(req.Entries))
	for _, e := range req.Entries {
		ids = append(ids, e.StudentID)
	}
	var members []studentModel.StudentModel
	if err := ctrl.DB.Select("student_id").
		Where("student_id IN ? AND student_class_id = ?", ids, req.ClassID).
		Find(&members).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa siswa")
	}
	inClass := make(map[uuid.UUID]bool, len(members))
	for _, s := range members {
		inClass[s.StudentID] = true
	}

	subject := strings.TrimSpace(req.Subject)
	rows := make([]model.ResultModel, 0, len(req.Entries))
	errs := map[string]string{}
	seen := map[uuid.UUID]bool{}
	for i, e := range req.Entries {
		key := fmt.Sprintf("entries[%d]", i)
		switch {
		case !inClass[e.StudentID]:
			errs[key] = "siswa bukan anggota kelas ini"
		case seen[e.StudentID]:
			errs[key] = "siswa muncul lebih dari sekali"
		case e.MarksObtained > req.TotalMarks:
			errs[key] = "marks_obtained melebihi total_marks"
		default:
			seen[e.StudentID] = true
			rows = append(rows, model.ResultModel{
				ResultID:            uuid.New(),
				ResultExamID:        req.ExamID,
				ResultStudentID:     e.StudentID,
				ResultClassID:       req.ClassID,
				ResultSubject:       subject,
				ResultMarksObtained: e.MarksObtained,
				ResultTotalMarks:    req.TotalMarks,
				ResultGrade:         service.SubjectGrade(e.MarksObtained, req.TotalMarks),
				ResultRemarks:       helper.TrimPtr(e.Remarks),
			})
		}
	}
	if len(errs) > 0 {
		return helper.JsonValidationError(c, errs)
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "result_exam_id"}, {Name: "result_student_id"}, {Name: "result_subject"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"result_class_id", "result_marks_obtained", "result_total_marks",
				"result_grade", "result_remarks", "result_updated_at",
			}),
		}).Create(&rows).Error
	})
	if err != nil {
		log.Printf("[ERROR] bulk results: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan nilai")
	}
	ctrl.Cache.InvalidateExam(c.UserContext(), req.ExamID)
	return helper.JsonOK(c, "Nilai tersimpan", fiber.Map{"saved": len(rows)})
}

// GET /api/a/results/ranking?exam_id=&class_id= (termasuk ujian belum publish)
func (ctrl *ResultController) Ranking(c *fiber.Ctx) error {
	examID, err := helper.ParseUUIDQuery(c, "exam_id")
	if err != nil {
		return err
	}
	if examID == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "exam_id wajib diisi")
	}
	exam, err := ctrl.examByID(*examID)
	if err != nil {
		return err
	}
	classID, err := helper.ParseUUIDQuery(c, "class_id")
	if err != nil {
		return err
	}

	out, err := ctrl.ranked(exam, classID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil nilai")
	}
	return helper.JsonOK(c, "ok", out)
}

func (ctrl *ResultController) ranked(exam *model.ExamModel, classID *uuid.UUID) (dto.PublicResults, error) {
	rows, err := service.LoadResultRows(ctrl.DB, exam.ExamID, classID, nil)
	if err != nil {
		return dto.PublicResults{}, err
	}
	ranked := service.RankResults(rows)
	return dto.PublicResults{
		Exam:    exam,
		ClassID: classID,
		Results: ranked,
		Top:     service.Top(ranked, service.TopN),
	}, nil
}

/* ================= Public Handlers ================= */

// GET /api/public/results?exam_id=&class_id=
func (ctrl *ResultController) PublicResults(c *fiber.Ctx) error {
	examID, err := helper.ParseUUIDQuery(c, "exam_id")
	if err != nil {
		return err
	}
	if examID == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "exam_id wajib diisi")
	}
	classID, err := helper.ParseUUIDQuery(c, "class_id")
	if err != nil {
		return err
	}

	key := service.ResultCacheKey(*examID, classID)
	var cached dto.PublicResults
	if ctrl.Cache.Get(c.UserContext(), key, &cached) {
		c.Set("X-Cache", "HIT")
		return helper.JsonOK(c, "ok", cached)
	}

	exam, err := ctrl.examByID(*examID)
	if err != nil {
		return err
	}
	if !exam.ExamIsPublished {
		return helper.JsonError(c, fiber.StatusNotFound, "Hasil ujian belum dipublikasikan")
	}

	out, err := ctrl.ranked(exam, classID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil hasil ujian")
	}
	ctrl.Cache.Set(c.UserContext(), key, out)
	c.Set("X-Cache", "MISS")
	return helper.JsonOK(c, "ok", out)
}

// GET /api/public/results/student/:student_id?exam_id=
func (ctrl *ResultController) ReportCard(c *fiber.Ctx) error {
	studentID, err := helper.ParseUUIDParam(c, "student_id")
	if err != nil {
		return err
	}
	examID, err := helper.ParseUUIDQuery(c, "exam_id")
	if err != nil {
		return err
	}
	if examID == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "exam_id wajib diisi")
	}
	exam, err := ctrl.examByID(*examID)
	if err != nil {
		return err
	}
	if !exam.ExamIsPublished {
		return helper.JsonError(c, fiber.StatusNotFound, "Hasil ujian belum dipublikasikan")
	}

	own, err := service.LoadResultRows(ctrl.DB, exam.ExamID, nil, &studentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil nilai")
	}
	if len(own) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Nilai siswa untuk ujian ini tidak ditemukan")
	}

	// posisi dihitung di dalam kelas siswa saat ujian
	classID := own[0].ClassID
	classRows, err := service.LoadResultRows(ctrl.DB, exam.ExamID, &classID, nil)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil nilai kelas")
	}
	ranked := service.RankResults(classRows)

	card := dto.ReportCard{Exam: exam, Subjects: service.SubjectMarks(own), ClassSize: len(ranked)}
	for _, r := range ranked {
		if r.StudentID == studentID {
			card.Student = r
			break
		}
	}
	return helper.JsonOK(c, "ok", card)
}
