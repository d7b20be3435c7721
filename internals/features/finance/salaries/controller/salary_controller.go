package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasa_backend/internals/features/finance/salaries/dto"
	"madrasa_backend/internals/features/finance/salaries/model"
	"madrasa_backend/internals/features/finance/salaries/service"
	helper "madrasa_backend/internals/helpers"
	"madrasa_backend/internals/helpers/dbtime"
)

type SalaryController struct {
	DB *gorm.DB
}

func NewSalaryController(db *gorm.DB) *SalaryController {
	return &SalaryController{DB: db}
}

func (ctrl *SalaryController) findSalary(c *fiber.Ctx) (*model.SalaryModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	var m model.SalaryModel
	if err := ctrl.DB.First(&m, "salary_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Data gaji tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data gaji")
	}
	return &m, nil
}

func (ctrl *SalaryController) baseQuery() *gorm.DB {
	return ctrl.DB.Table("salaries AS s").
		Select("s.*, t.teacher_full_name AS teacher_name, t.teacher_employee_code AS teacher_employee_code").
		Joins("JOIN teachers t ON t.teacher_id = s.salary_teacher_id")
}

func (ctrl *SalaryController) detail(m *model.SalaryModel) dto.SalaryResponse {
	var out dto.SalaryResponse
	if err := ctrl.baseQuery().Where("s.salary_id = ?", m.SalaryID).Limit(1).Scan(&out).Error; err != nil || out.SalaryID != m.SalaryID {
		return dto.SalaryResponse{SalaryModel: *m}
	}
	return out
}

// GET /api/a/salaries?month=&teacher_id=&status=
func (ctrl *SalaryController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "month", "desc", helper.AdminOpts)
	q := ctrl.baseQuery()

	if mo := strings.TrimSpace(c.Query("month")); mo != "" {
		if !helper.IsValidMonth(mo) {
			return helper.JsonError(c, fiber.StatusBadRequest, "month harus YYYY-MM")
		}
		q = q.Where("s.salary_month = ?", mo)
	}
	teacherID, err := helper.ParseUUIDQuery(c, "teacher_id")
	if err != nil {
		return err
	}
	if teacherID != nil {
		q = q.Where("s.salary_teacher_id = ?", *teacherID)
	}
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		q = q.Where("s.salary_status = ?", st)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data gaji")
	}
	var sum struct {
		Net  int64 `gorm:"column:net"`
		Paid int64 `gorm:"column:paid"`
	}
	if err := q.Session(&gorm.Session{}).
		Select("COALESCE(SUM(s.salary_net_amount), 0) AS net, COALESCE(SUM(CASE WHEN s.salary_status = 'paid' THEN s.salary_net_amount ELSE 0 END), 0) AS paid").
		Scan(&sum).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung total gaji")
	}

	order, _ := p.OrderClause(map[string]string{
		"month": "s.salary_month",
		"net":   "s.salary_net_amount",
		"name":  "t.teacher_full_name",
	}, "month")

	var rows []dto.SalaryResponse
	if err := p.Apply(q.Order(order).Order("t.teacher_full_name ASC")).Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data gaji")
	}

	pg := helper.BuildPagination(total, p, len(rows))
	return c.JSON(fiber.Map{
		"success":    true,
		"message":    "ok",
		"data":       rows,
		"pagination": pg,
		"totals":     fiber.Map{"net": sum.Net, "paid": sum.Paid, "pending": sum.Net - sum.Paid},
	})
}

// GET /api/a/salaries/:id
func (ctrl *SalaryController) Get(c *fiber.Ctx) error {
	m, err := ctrl.findSalary(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", ctrl.detail(m))
}

// POST /api/a/salaries
func (ctrl *SalaryController) Create(c *fiber.Ctx) error {
	var req dto.CreateSalaryRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	m := req.ToModel()
	if err := service.Recompute(m); err != nil {
		return helper.JsonValidationError(c, map[string]string{"salary_deduction": err.Error()})
	}

	var n int64
	if err := ctrl.DB.Table("teachers").Where("teacher_id = ?", m.SalaryTeacherID).Count(&n).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa guru")
	}
	if n == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Guru tidak ditemukan")
	}

	if err := ctrl.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Gaji guru untuk bulan ini sudah ada")
		}
		log.Printf("[ERROR] create salary: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data gaji")
	}
	return helper.JsonCreated(c, "Data gaji dibuat", ctrl.detail(m))
}

// PUT /api/a/salaries/:id (hanya yang masih pending)
func (ctrl *SalaryController) Update(c *fiber.Ctx) error {
	var req dto.UpdateSalaryRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	m, err := ctrl.findSalary(c)
	if err != nil {
		return err
	}
	if m.SalaryStatus == model.SalaryStatusPaid {
		return helper.JsonError(c, fiber.StatusConflict, service.ErrPaidIsImmutable.Error())
	}
	req.ApplyToModel(m)
	if err := service.Recompute(m); err != nil {
		return helper.JsonValidationError(c, map[string]string{"salary_deduction": err.Error()})
	}
	if err := ctrl.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui data gaji")
	}
	return helper.JsonUpdated(c, "Data gaji diperbarui", ctrl.detail(m))
}

// DELETE /api/a/salaries/:id
func (ctrl *SalaryController) Delete(c *fiber.Ctx) error {
	m, err := ctrl.findSalary(c)
	if err != nil {
		return err
	}
	if m.SalaryStatus == model.SalaryStatusPaid {
		return helper.JsonError(c, fiber.StatusConflict, service.ErrPaidIsImmutable.Error())
	}
	if err := ctrl.DB.Delete(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data gaji")
	}
	return helper.JsonDeleted(c, "Data gaji dihapus", fiber.Map{"salary_id": m.SalaryID})
}

// POST /api/a/salaries/:id/pay {method}
func (ctrl *SalaryController) Pay(c *fiber.Ctx) error {
	var req dto.PaySalaryRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	m, err := ctrl.findSalary(c)
	if err != nil {
		return err
	}
	if err := service.MarkPaid(m, req.Method, dbtime.Now()); err != nil {
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	}
	if err := ctrl.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pembayaran gaji")
	}
	return helper.JsonUpdated(c, "Gaji dibayar", ctrl.detail(m))
}

// POST /api/a/salaries/generate {month}
func (ctrl *SalaryController) Generate(c *fiber.Ctx) error {
	var req dto.GenerateSalaryRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	res, err := service.GenerateSheet(ctrl.DB, req.Month)
	if err != nil {
		log.Printf("[ERROR] generate salary sheet %s: %v", req.Month, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat lembar gaji")
	}
	return helper.JsonCreated(c, "Lembar gaji dibuat", res)
}
