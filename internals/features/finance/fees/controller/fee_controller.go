package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasa_backend/internals/features/finance/fees/dto"
	"madrasa_backend/internals/features/finance/fees/model"
	"madrasa_backend/internals/features/finance/fees/service"
	helper "madrasa_backend/internals/helpers"
	"madrasa_backend/internals/helpers/dbtime"
)

// nomor kuitansi diambil dari MAX+1; dua pembayaran paralel bisa dapat nomor sama
const payAttempts = 3

var nextReceiptNo = service.NextReceiptNo

type FeeController struct {
	DB *gorm.DB
}

func NewFeeController(db *gorm.DB) *FeeController {
	return &FeeController{DB: db}
}

func (ctrl *FeeController) findFee(c *fiber.Ctx, tx *gorm.DB) (*model.FeeModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	var m model.FeeModel
	if err := tx.First(&m, "fee_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Tagihan tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil tagihan")
	}
	return &m, nil
}

func (ctrl *FeeController) baseQuery() *gorm.DB {
	return ctrl.DB.Table("fees AS f").
		Select("f.*, s.student_full_name AS student_name, s.student_code AS student_code, c.class_name AS class_name").
		Joins("JOIN students s ON s.student_id = f.fee_student_id").
		Joins("LEFT JOIN classes c ON c.class_id = s.student_class_id")
}

func (ctrl *FeeController) detail(m *model.FeeModel) (dto.FeeResponse, error) {
	var out dto.FeeResponse
	err := ctrl.baseQuery().Where("f.fee_id = ?", m.FeeID).Limit(1).Scan(&out).Error
	if err != nil || out.FeeID != m.FeeID {
		return dto.NewFeeResponse(*m), err
	}
	out.Remaining = out.FeeModel.Outstanding()
	return out, nil
}

// GET /api/a/fees?student_id=&class_id=&status=&fee_type=&month=&q=
func (ctrl *FeeController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)
	q := ctrl.baseQuery()

	studentID, err := helper.ParseUUIDQuery(c, "student_id")
	if err != nil {
		return err
	}
	if studentID != nil {
		q = q.Where("f.fee_student_id = ?", *studentID)
	}
	classID, err := helper.ParseUUIDQuery(c, "class_id")
	if err != nil {
		return err
	}
	if classID != nil {
		q = q.Where("s.student_class_id = ?", *classID)
	}
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		q = q.Where("f.fee_status IN ?", strings.Split(st, ","))
	}
	if ft := strings.TrimSpace(c.Query("fee_type")); ft != "" {
		q = q.Where("f.fee_type = ?", ft)
	}
	if mo := strings.TrimSpace(c.Query("month")); mo != "" {
		if !helper.IsValidMonth(mo) {
			return helper.JsonError(c, fiber.StatusBadRequest, "month harus YYYY-MM")
		}
		q = q.Where("f.fee_month = ?", mo)
	}
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(s.student_full_name) LIKE ? OR LOWER(s.student_code) LIKE ? OR LOWER(COALESCE(f.fee_receipt_no, '')) LIKE ?", like, like, like)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung tagihan")
	}
	order, _ := p.OrderClause(map[string]string{
		"created_at": "f.fee_created_at",
		"due_date":   "f.fee_due_date",
		"amount":     "f.fee_amount",
		"month":      "f.fee_month",
		"name":       "s.student_full_name",
	}, "created_at")

	var rows []dto.FeeResponse
	if err := p.Apply(q.Order(order)).Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tagihan")
	}
	for i := range rows {
		rows[i].Remaining = rows[i].FeeModel.Outstanding()
	}
	pg := helper.BuildPagination(total, p, len(rows))
	return helper.JsonList(c, "ok", rows, &pg)
}

// GET /api/a/fees/:id
func (ctrl *FeeController) Get(c *fiber.Ctx) error {
	m, err := ctrl.findFee(c, ctrl.DB)
	if err != nil {
		return err
	}
	out, _ := ctrl.detail(m)
	return helper.JsonOK(c, "ok", out)
}

// POST /api/a/fees
func (ctrl *FeeController) Create(c *fiber.Ctx) error {
	var req dto.CreateFeeRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	m, err := req.ToModel()
	if errors.Is(err, dto.ErrMonthRequired) {
		return helper.JsonValidationError(c, map[string]string{"fee_month": err.Error()})
	}
	if err != nil {
		return helper.JsonValidationError(c, map[string]string{"fee_due_date": err.Error()})
	}

	var n int64
	if err := ctrl.DB.Table("students").Where("student_id = ?", m.FeeStudentID).Count(&n).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa siswa")
	}
	if n == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Siswa tidak ditemukan")
	}

	m.FeeStatus = service.DeriveStatus(m, dbtime.Today())
	if err := ctrl.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "SPP bulan ini untuk siswa tersebut sudah ada")
		}
		log.Printf("[ERROR] create fee: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat tagihan")
	}
	out, _ := ctrl.detail(m)
	return helper.JsonCreated(c, "Tagihan berhasil dibuat", out)
}

// PUT /api/a/fees/:id
func (ctrl *FeeController) Update(c *fiber.Ctx) error {
	var req dto.UpdateFeeRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	m, err := ctrl.findFee(c, ctrl.DB)
	if err != nil {
		return err
	}
	if err := req.ApplyToModel(m); err != nil {
		return helper.JsonValidationError(c, map[string]string{"fee_due_date": err.Error()})
	}
	if m.FeeDiscount > m.FeeAmount {
		return helper.JsonValidationError(c, map[string]string{"fee_discount": "fee_discount must not exceed fee_amount"})
	}
	if m.FeePaidAmount > m.Payable() {
		return helper.JsonError(c, fiber.StatusConflict, "Nominal baru lebih kecil dari yang sudah dibayar")
	}

	if req.Waived != nil {
		if *req.Waived {
			m.FeeStatus = model.FeeStatusWaived
		} else if m.FeeStatus == model.FeeStatusWaived {
			m.FeeStatus = model.FeeStatusUnpaid
		}
	}
	m.FeeStatus = service.DeriveStatus(m, dbtime.Today())

	if err := ctrl.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui tagihan")
	}
	out, _ := ctrl.detail(m)
	return helper.JsonUpdated(c, "Tagihan berhasil diperbarui", out)
}

// DELETE /api/a/fees/:id → yang sudah ada pembayarannya tidak boleh dihapus
func (ctrl *FeeController) Delete(c *fiber.Ctx) error {
	m, err := ctrl.findFee(c, ctrl.DB)
	if err != nil {
		return err
	}
	if m.FeePaidAmount > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Tagihan sudah ada pembayaran, tidak bisa dihapus")
	}
	if err := ctrl.DB.Delete(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus tagihan")
	}
	return helper.JsonDeleted(c, "Tagihan berhasil dihapus", fiber.Map{"fee_id": m.FeeID})
}

// POST /api/a/fees/:id/pay {amount, method}
func (ctrl *FeeController) Pay(c *fiber.Ctx) error {
	var req dto.PayFeeRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}

	var (
		paid *model.FeeModel
		err  error
	)
	for attempt := 0; attempt < payAttempts; attempt++ {
		paid = nil
		err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
			m, err := ctrl.findFee(c, helper.ForUpdate(tx))
			if err != nil {
				return err
			}
			if err := service.ApplyPayment(m, req.Amount, req.Method, dbtime.Now()); err != nil {
				return fiber.NewError(fiber.StatusConflict, err.Error())
			}
			if m.FeeReceiptNo == nil {
				no, err := nextReceiptNo(tx, dbtime.Now())
				if err != nil {
					return err
				}
				m.FeeReceiptNo = &no
			}
			if err := tx.Save(m).Error; err != nil {
				return err
			}
			paid = m
			return nil
		})
		if err == nil || !helper.IsUniqueViolation(err) {
			break
		}
	}
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nomor kuitansi bentrok, silakan ulangi pembayaran")
		}
		log.Printf("[ERROR] pay fee: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pembayaran")
	}
	out, _ := ctrl.detail(paid)
	return helper.JsonUpdated(c, "Pembayaran tercatat", out)
}

// POST /api/a/fees/generate-monthly {month, due_day?}
func (ctrl *FeeController) GenerateMonthly(c *fiber.Ctx) error {
	var req dto.GenerateMonthlyRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	res, err := service.GenerateMonthly(ctrl.DB, req.Month, req.DueDay)
	if err != nil {
		log.Printf("[ERROR] generate monthly fees %s: %v", req.Month, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat SPP bulanan")
	}
	log.Printf("[INFO] SPP %s: %d dibuat, %d dilewati", res.Month, res.Created, res.Skipped)
	return helper.JsonCreated(c, "SPP bulanan dibuat", res)
}

// POST /api/a/fees/mark-overdue (cron juga memanggil service yang sama)
func (ctrl *FeeController) MarkOverdue(c *fiber.Ctx) error {
	n, err := service.MarkOverdue(ctrl.DB, dbtime.Today())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui status tagihan")
	}
	return helper.JsonOK(c, "ok", fiber.Map{"updated": n})
}
