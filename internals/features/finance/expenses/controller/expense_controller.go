package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasa_backend/internals/features/finance/expenses/dto"
	"madrasa_backend/internals/features/finance/expenses/model"
	helper "madrasa_backend/internals/helpers"
	helperAuth "madrasa_backend/internals/helpers/auth"
	"madrasa_backend/internals/helpers/dbtime"
)

type ExpenseController struct {
	DB *gorm.DB
}

func NewExpenseController(db *gorm.DB) *ExpenseController {
	return &ExpenseController{DB: db}
}

func (ctrl *ExpenseController) findExpense(c *fiber.Ctx) (*model.ExpenseModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	var m model.ExpenseModel
	if err := ctrl.DB.First(&m, "expense_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Pengeluaran tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil pengeluaran")
	}
	return &m, nil
}

// GET /api/a/expenses?category=&from=&to=&month=&q=
func (ctrl *ExpenseController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "date", "desc", helper.AdminOpts)
	q := ctrl.DB.Model(&model.ExpenseModel{})

	if cat := strings.TrimSpace(c.Query("category")); cat != "" {
		q = q.Where("expense_category IN ?", strings.Split(cat, ","))
	}
	if mo := strings.TrimSpace(c.Query("month")); mo != "" {
		start, end, err := dbtime.MonthRange(mo)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "month harus YYYY-MM")
		}
		q = q.Where("expense_date >= ? AND expense_date < ?", start, end)
	}
	if s := strings.TrimSpace(c.Query("from")); s != "" {
		t, err := dbtime.ParseDate(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "from harus YYYY-MM-DD")
		}
		q = q.Where("expense_date >= ?", t)
	}
	if s := strings.TrimSpace(c.Query("to")); s != "" {
		t, err := dbtime.ParseDate(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "to harus YYYY-MM-DD")
		}
		q = q.Where("expense_date <= ?", t)
	}
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(expense_title) LIKE ? OR LOWER(COALESCE(expense_paid_to, '')) LIKE ?", like, like)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pengeluaran")
	}
	var byCategory []dto.CategoryTotal
	if err := q.Session(&gorm.Session{}).
		Select("expense_category AS category, COALESCE(SUM(expense_amount), 0) AS total_amount").
		Group("expense_category").
		Scan(&byCategory).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pengeluaran")
	}
	var sum int64
	for _, r := range byCategory {
		sum += r.Amount
	}

	order, _ := p.OrderClause(map[string]string{
		"date":       "expense_date",
		"amount":     "expense_amount",
		"created_at": "expense_created_at",
		"title":      "expense_title",
	}, "date")

	var rows []model.ExpenseModel
	if err := p.Apply(q.Order(order)).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengeluaran")
	}
	pg := helper.BuildPagination(total, p, len(rows))
	return c.JSON(fiber.Map{
		"success":     true,
		"message":     "ok",
		"data":        rows,
		"pagination":  pg,
		"total":       sum,
		"by_category": byCategory,
	})
}

// GET /api/a/expenses/:id
func (ctrl *ExpenseController) Get(c *fiber.Ctx) error {
	m, err := ctrl.findExpense(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", m)
}

// POST /api/a/expenses
func (ctrl *ExpenseController) Create(c *fiber.Ctx) error {
	var req dto.CreateExpenseRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	m, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	m.ExpenseRecordedBy = helperAuth.GetUserIDPtr(c)
	if err := ctrl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pengeluaran")
	}
	return helper.JsonCreated(c, "Pengeluaran dicatat", m)
}

// PUT /api/a/expenses/:id
func (ctrl *ExpenseController) Update(c *fiber.Ctx) error {
	m, err := ctrl.findExpense(c)
	if err != nil {
		return err
	}
	var req dto.UpdateExpenseRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	if err := req.ApplyToModel(m); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctrl.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui pengeluaran")
	}
	return helper.JsonUpdated(c, "Pengeluaran diperbarui", m)
}

// DELETE /api/a/expenses/:id
func (ctrl *ExpenseController) Delete(c *fiber.Ctx) error {
	m, err := ctrl.findExpense(c)
	if err != nil {
		return err
	}
	if err := ctrl.DB.Delete(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pengeluaran")
	}
	return helper.JsonDeleted(c, "Pengeluaran dihapus", fiber.Map{"expense_id": m.ExpenseID})
}
