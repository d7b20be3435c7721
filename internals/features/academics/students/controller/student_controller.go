package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "madrasa_backend/internals/features/academics/classes/model"
	"madrasa_backend/internals/features/academics/students/dto"
	"madrasa_backend/internals/features/academics/students/model"
	"madrasa_backend/internals/features/academics/students/service"
	helper "madrasa_backend/internals/helpers"
	"madrasa_backend/internals/helpers/dbtime"
	helperOSS "madrasa_backend/internals/helpers/oss"
	helperXLSX "madrasa_backend/internals/helpers/xlsx"
)

type StudentController struct {
	DB   *gorm.DB
	Blob helperOSS.BlobService
}

func NewStudentController(db *gorm.DB, blob helperOSS.BlobService) *StudentController {
	return &StudentController{DB: db, Blob: blob}
}

/* ================= Helpers ================= */

func (ctrl *StudentController) findStudent(c *fiber.Ctx) (*model.StudentModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	var m model.StudentModel
	if err := ctrl.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil siswa")
	}
	return &m, nil
}

func (ctrl *StudentController) ensureClass(id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	var n int64
	if err := ctrl.DB.Model(&classModel.ClassModel{}).Where("class_id = ?", *id).Count(&n).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa kelas")
	}
	if n == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Kelas tidak ditemukan")
	}
	return nil
}

// classNameMap: class_id → class_name (semua kelas, jumlahnya kecil)
func (ctrl *StudentController) classNameMap() map[uuid.UUID]string {
	var rows []classModel.ClassModel
	out := map[uuid.UUID]string{}
	if err := ctrl.DB.Select("class_id", "class_name").Find(&rows).Error; err != nil {
		log.Printf("[WARN] load class names: %v", err)
		return out
	}
	for _, r := range rows {
		out[r.ClassID] = r.ClassName
	}
	return out
}

func withClassName(m model.StudentModel, names map[uuid.UUID]string) dto.StudentResponse {
	out := dto.StudentResponse{StudentModel: m}
	if m.StudentClassID != nil {
		if n, ok := names[*m.StudentClassID]; ok {
			out.ClassName = &n
		}
	}
	return out
}

// filtered: filter bersama untuk list & export
func (ctrl *StudentController) filtered(c *fiber.Ctx) (*gorm.DB, error) {
	q := ctrl.DB.Model(&model.StudentModel{})

	if s := strings.TrimSpace(c.Query("q")); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where(
			"LOWER(student_full_name) LIKE ? OR LOWER(student_code) LIKE ? OR LOWER(student_father_name) LIKE ?",
			like, like, like,
		)
	}
	classID, err := helper.ParseUUIDQuery(c, "class_id")
	if err != nil {
		return nil, err
	}
	if classID != nil {
		q = q.Where("student_class_id = ?", *classID)
	}
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		if !model.IsValidStatus(st) {
			return nil, fiber.NewError(fiber.StatusBadRequest, "status tidak valid")
		}
		q = q.Where("student_status = ?", st)
	}
	if g := strings.TrimSpace(c.Query("gender")); g != "" {
		q = q.Where("student_gender = ?", g)
	}
	if l := strings.TrimSpace(c.Query("is_lillah")); l != "" {
		q = q.Where("student_is_lillah = ?", l == "true" || l == "1")
	}
	return q, nil
}

func (ctrl *StudentController) conflictOrError(c *fiber.Ctx, err error, action string) error {
	if helper.IsUniqueViolation(err) {
		return helper.JsonError(c, fiber.StatusConflict, "Kode siswa atau nomor roll di kelas ini sudah dipakai")
	}
	log.Printf("[ERROR] %s student: %v", action, err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal "+action+" siswa")
}

/* ================= Admin Handlers ================= */

// GET /api/a/students?q=&class_id=&status=&gender=&is_lillah=
func (ctrl *StudentController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "name", "asc", helper.AdminOpts)

	q, err := ctrl.filtered(c)
	if err != nil {
		return err
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung siswa")
	}

	order, _ := p.OrderClause(map[string]string{
		"name":           "student_full_name",
		"code":           "student_code",
		"roll":           "student_roll_number",
		"admission_date": "student_admission_date",
		"created_at":     "student_created_at",
	}, "name")

	var rows []model.StudentModel
	if err := p.Apply(q.Order(order)).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil siswa")
	}

	names := ctrl.classNameMap()
	out := make([]dto.StudentResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, withClassName(r, names))
	}
	pg := helper.BuildPagination(total, p, len(out))
	return helper.JsonList(c, "ok", out, &pg)
}

// GET /api/a/students/:id
func (ctrl *StudentController) Get(c *fiber.Ctx) error {
	m, err := ctrl.findStudent(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", withClassName(*m, ctrl.classNameMap()))
}

// POST /api/a/students
func (ctrl *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	m := req.ToModel()
	if err := ctrl.ensureClass(m.StudentClassID); err != nil {
		return err
	}
	if !m.StudentIsLillah {
		m.StudentLillahSponsor = nil
		m.StudentLillahMonthlySupport = 0
	}

	if err := service.CreateWithCode(ctrl.DB, m, m.StudentAdmissionDate.Year(), helper.IsUniqueViolation); err != nil {
		return ctrl.conflictOrError(c, err, "membuat")
	}
	return helper.JsonCreated(c, "Siswa berhasil ditambahkan", withClassName(*m, ctrl.classNameMap()))
}

// PUT /api/a/students/:id
func (ctrl *StudentController) Update(c *fiber.Ctx) error {
	var req dto.UpdateStudentRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	m, err := ctrl.findStudent(c)
	if err != nil {
		return err
	}
	req.ApplyToModel(m)
	if err := ctrl.ensureClass(m.StudentClassID); err != nil {
		return err
	}
	if m.StudentCode == "" {
		return helper.JsonValidationError(c, map[string]string{"student_code": "student_code is required"})
	}

	if err := ctrl.DB.Save(m).Error; err != nil {
		return ctrl.conflictOrError(c, err, "memperbarui")
	}
	return helper.JsonUpdated(c, "Siswa berhasil diperbarui", withClassName(*m, ctrl.classNameMap()))
}

// DELETE /api/a/students/:id
func (ctrl *StudentController) Delete(c *fiber.Ctx) error {
	m, err := ctrl.findStudent(c)
	if err != nil {
		return err
	}
	if err := ctrl.DB.Delete(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus siswa")
	}
	if m.StudentPhotoURL != nil && ctrl.Blob != nil {
		if derr := ctrl.Blob.DeleteByPublicURL(c.UserContext(), *m.StudentPhotoURL); derr != nil {
			log.Printf("[OSS] hapus foto siswa: %v", derr)
		}
	}
	return helper.JsonDeleted(c, "Siswa berhasil dihapus", fiber.Map{"student_id": m.StudentID})
}

// POST /api/a/students/:id/photo (multipart: photo|image|file)
func (ctrl *StudentController) UploadPhoto(c *fiber.Ctx) error {
	m, err := ctrl.findStudent(c)
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

	url, err := helperOSS.ReplaceImage(c.UserContext(), ctrl.Blob, "students", fh, m.StudentPhotoURL)
	if err != nil {
		return err
	}
	if err := ctrl.DB.Model(m).Update("student_photo_url", url).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan foto")
	}
	return helper.JsonUpdated(c, "Foto siswa diperbarui", fiber.Map{"student_photo_url": url})
}

// GET /api/a/students/export (filter sama dengan list)
func (ctrl *StudentController) Export(c *fiber.Ctx) error {
	q, err := ctrl.filtered(c)
	if err != nil {
		return err
	}
	buf, err := service.ExportStudents(q, ctrl.classNameMap())
	if err != nil {
		log.Printf("[ERROR] export students: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat file export")
	}
	return helperXLSX.Send(c, "students-"+dbtime.FormatDate(dbtime.Today()), buf)
}

// POST /api/a/students/import (multipart: file, class_id opsional)
func (ctrl *StudentController) Import(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File .xlsx wajib diunggah (field: file)")
	}

	var classID *uuid.UUID
	if raw := strings.TrimSpace(c.FormValue("class_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "class_id tidak valid")
		}
		classID = &id
	}
	if err := ctrl.ensureClass(classID); err != nil {
		return err
	}

	f, err := fh.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File tidak bisa dibaca")
	}
	defer f.Close()

	res, err := service.ImportStudents(ctrl.DB, f, classID, helper.IsUniqueViolation)
	if err != nil {
		log.Printf("[ERROR] import students: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonCreated(c, "Import selesai", res)
}

// POST /api/a/students/:id/graduate {graduation_year?}
func (ctrl *StudentController) Graduate(c *fiber.Ctx) error {
	var req dto.GraduateRequest
	if len(c.Body()) > 0 {
		if ok, err := helper.BindAndValidate(c, &req); !ok {
			return err
		}
	}
	m, err := ctrl.findStudent(c)
	if err != nil {
		return err
	}
	if m.StudentStatus == model.StudentStatusGraduated {
		return helper.JsonError(c, fiber.StatusConflict, "Siswa sudah tercatat sebagai alumni")
	}

	year := dbtime.Now().Year()
	if req.GraduationYear != nil {
		year = *req.GraduationYear
	}

	// kelas & roll dilepas supaya slot roll bisa dipakai siswa lain
	if err := ctrl.DB.Model(m).Updates(map[string]any{
		"student_status":          model.StudentStatusGraduated,
		"student_graduation_year": year,
		"student_class_id":        nil,
		"student_roll_number":     nil,
	}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses kelulusan")
	}
	m.StudentStatus = model.StudentStatusGraduated
	m.StudentGraduationYear = &year
	m.StudentClassID = nil
	m.StudentRollNumber = nil
	return helper.JsonUpdated(c, "Siswa diluluskan", withClassName(*m, nil))
}

// GET /api/a/alumni?q=&year=
func (ctrl *StudentController) ListAlumni(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "graduation_year", "desc", helper.AdminOpts)

	q := ctrl.alumniQuery(c)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung alumni")
	}
	var rows []model.StudentModel
	if err := p.Apply(q.Order("student_graduation_year DESC").Order("student_full_name ASC")).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil alumni")
	}
	pg := helper.BuildPagination(total, p, len(rows))
	return helper.JsonList(c, "ok", rows, &pg)
}

func (ctrl *StudentController) alumniQuery(c *fiber.Ctx) *gorm.DB {
	q := ctrl.DB.Model(&model.StudentModel{}).Where("student_status = ?", model.StudentStatusGraduated)
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(student_full_name) LIKE ? OR LOWER(student_code) LIKE ?", like, like)
	}
	if y, err := strconv.Atoi(strings.TrimSpace(c.Query("year"))); err == nil && y > 0 {
		q = q.Where("student_graduation_year = ?", y)
	}
	return q
}

/* ================= Public Handlers ================= */

// GET /api/public/students?class_id=&q=
func (ctrl *StudentController) ListPublic(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "name", "asc", helper.DefaultOpts)

	q := ctrl.DB.Model(&model.StudentModel{}).Where("student_status = ?", model.StudentStatusActive)
	classID, err := helper.ParseUUIDQuery(c, "class_id")
	if err != nil {
		return err
	}
	if classID != nil {
		q = q.Where("student_class_id = ?", *classID)
	}
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		q = q.Where("LOWER(student_full_name) LIKE ?", "%"+strings.ToLower(s)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung siswa")
	}
	var rows []model.StudentModel
	if err := p.Apply(q.Order("student_full_name ASC")).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil siswa")
	}

	names := ctrl.classNameMap()
	out := make([]dto.PublicStudentResponse, 0, len(rows))
	for _, r := range rows {
		item := dto.PublicStudentResponse{
			StudentID:         r.StudentID,
			StudentCode:       r.StudentCode,
			StudentFullName:   r.StudentFullName,
			StudentGender:     r.StudentGender,
			StudentRollNumber: r.StudentRollNumber,
			StudentPhotoURL:   r.StudentPhotoURL,
		}
		if r.StudentClassID != nil {
			if n, ok := names[*r.StudentClassID]; ok {
				item.ClassName = &n
			}
		}
		out = append(out, item)
	}

	helper.SetPublicCache(c, 60)
	pg := helper.BuildPagination(total, p, len(out))
	return helper.JsonList(c, "ok", out, &pg)
}

// GET /api/public/alumni?year=&q=
func (ctrl *StudentController) ListPublicAlumni(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "graduation_year", "desc", helper.DefaultOpts)

	q := ctrl.alumniQuery(c)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung alumni")
	}
	var rows []model.StudentModel
	if err := p.Apply(q.Order("student_graduation_year DESC").Order("student_full_name ASC")).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil alumni")
	}
	out := make([]dto.AlumniResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.NewAlumniResponse(r))
	}
	helper.SetPublicCache(c, 300)
	pg := helper.BuildPagination(total, p, len(out))
	return helper.JsonList(c, "ok", out, &pg)
}
