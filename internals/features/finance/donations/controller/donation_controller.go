package controller

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasa_backend/internals/features/finance/donations/dto"
	"madrasa_backend/internals/features/finance/donations/model"
	"madrasa_backend/internals/features/finance/donations/service"
	gatewayService "madrasa_backend/internals/features/finance/gateways/service"
	institutionService "madrasa_backend/internals/features/institution/service"
	helper "madrasa_backend/internals/helpers"
	helperAuth "madrasa_backend/internals/helpers/auth"
	"madrasa_backend/internals/helpers/dbtime"
	"madrasa_backend/internals/helpers/email"
)

type DonationController struct {
	DB     *gorm.DB
	Mailer email.Sender
}

func NewDonationController(db *gorm.DB, mailer email.Sender) *DonationController {
	if mailer == nil {
		mailer = &email.ConsoleSender{}
	}
	return &DonationController{DB: db, Mailer: mailer}
}

func (ctrl *DonationController) findDonation(c *fiber.Ctx) (*model.DonationModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	var m model.DonationModel
	if err := ctrl.DB.First(&m, "donation_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Donasi tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil donasi")
	}
	return &m, nil
}

/* =========================================================
   PUBLIC
========================================================= */

// POST /api/public/donations
func (ctrl *DonationController) Checkout(c *fiber.Ctx) error {
	var req dto.OnlineDonationRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}

	cfg, err := gatewayService.LoadMidtransConfig(ctrl.DB)
	if err != nil {
		if errors.Is(err, gatewayService.ErrGatewayDisabled) {
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "Donasi online sedang tidak tersedia")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca konfigurasi pembayaran")
	}

	m := req.ToModel(service.NewOrderID(dbtime.Now()))
	if err := ctrl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan donasi")
	}

	token, redirect, err := service.CreateSnap(service.NewSnapClient(cfg), *m)
	if err != nil {
		log.Printf("[donation] snap %s gagal: %v", m.DonationOrderID, err)
		_ = ctrl.DB.Model(m).Update("donation_status", model.DonationStatusCanceled).Error
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal membuat transaksi pembayaran")
	}

	if err := ctrl.DB.Model(m).Updates(map[string]any{
		"donation_payment_token": token,
		"donation_redirect_url":  redirect,
	}).Error; err != nil {
		log.Printf("[donation] simpan token %s gagal: %v", m.DonationOrderID, err)
	}

	return helper.JsonCreated(c, "Silakan lanjutkan pembayaran", dto.CheckoutResponse{
		DonationID:  m.DonationID.String(),
		OrderID:     m.DonationOrderID,
		Amount:      m.DonationAmount,
		SnapToken:   token,
		RedirectURL: redirect,
	})
}

// POST /api/public/donations/notification (webhook midtrans)
func (ctrl *DonationController) Notification(c *fiber.Ctx) error {
	var n service.Notification
	if err := c.BodyParser(&n); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if !service.VerifySignature(n, gatewayService.MidtransServerKey(ctrl.DB)) {
		log.Printf("[donation] signature tidak valid untuk order %s", n.OrderID)
		return helper.JsonError(c, fiber.StatusUnauthorized, service.ErrInvalidSignature.Error())
	}

	res, err := service.ApplyNotification(ctrl.DB, n, dbtime.Now())
	if err != nil {
		if errors.Is(err, service.ErrAmountMismatch) {
			log.Printf("[donation] %s: %v", n.OrderID, err)
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses notifikasi")
	}
	if res.Ignored != "" {
		return helper.JsonOK(c, res.Ignored, nil)
	}
	if res.BecamePaid && res.Donation != nil {
		go ctrl.sendReceipt(*res.Donation)
	}
	return helper.JsonOK(c, "ok", fiber.Map{
		"order_id": n.OrderID,
		"status":   res.Donation.DonationStatus,
	})
}

// sendReceipt jalan di goroutine; tidak memakai fiber ctx
func (ctrl *DonationController) sendReceipt(d model.DonationModel) {
	name, currency := institutionService.NameAndCurrency(ctrl.DB)
	msg := service.ReceiptMessage(d, name, currency)
	if msg == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := ctrl.Mailer.Send(ctx, *msg); err != nil {
		log.Printf("[donation] kirim kuitansi %s gagal: %v", d.DonationOrderID, err)
		return
	}
	if err := ctrl.DB.Model(&model.DonationModel{}).
		Where("donation_id = ?", d.DonationID).
		Update("donation_receipt_sent_at", dbtime.Now()).Error; err != nil {
		log.Printf("[donation] tandai kuitansi %s gagal: %v", d.DonationOrderID, err)
	}
}

/* =========================================================
   ADMIN
========================================================= */

// GET /api/a/donations?status=&purpose=&method=&from=&to=&q=
func (ctrl *DonationController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)
	q := ctrl.DB.Model(&model.DonationModel{})

	if st := strings.TrimSpace(c.Query("status")); st != "" {
		q = q.Where("donation_status IN ?", strings.Split(st, ","))
	}
	if pu := strings.TrimSpace(c.Query("purpose")); pu != "" {
		q = q.Where("donation_purpose = ?", pu)
	}
	if me := strings.TrimSpace(c.Query("method")); me != "" {
		q = q.Where("donation_method = ?", me)
	}
	from, to, err := parseRange(c)
	if err != nil {
		return err
	}
	if from != nil {
		q = q.Where("donation_created_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("donation_created_at < ?", *to)
	}
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(donation_donor_name) LIKE ? OR LOWER(donation_order_id) LIKE ?", like, like)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung donasi")
	}
	order, _ := p.OrderClause(map[string]string{
		"created_at":  "donation_created_at",
		"received_at": "donation_received_at",
		"amount":      "donation_amount",
		"name":        "donation_donor_name",
	}, "created_at")

	var rows []model.DonationModel
	if err := p.Apply(q.Order(order)).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil donasi")
	}
	pg := helper.BuildPagination(total, p, len(rows))
	return helper.JsonList(c, "ok", rows, &pg)
}

// GET /api/a/donations/:id
func (ctrl *DonationController) Get(c *fiber.Ctx) error {
	m, err := ctrl.findDonation(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", m)
}

// POST /api/a/donations (donasi tunai/transfer dicatat admin)
func (ctrl *DonationController) Create(c *fiber.Ctx) error {
	var req dto.CreateDonationRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	receivedAt := dbtime.Now()
	if req.ReceivedAt != "" {
		t, err := dbtime.ParseDate(req.ReceivedAt)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "donation_received_at harus YYYY-MM-DD")
		}
		receivedAt = t
	}

	m := req.ToModel(service.NewOrderID(dbtime.Now()), receivedAt)
	m.DonationRecordedBy = helperAuth.GetUserIDPtr(c)
	if err := ctrl.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Order id bentrok, coba lagi")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan donasi")
	}
	if req.SendReceipt {
		go ctrl.sendReceipt(*m)
	}
	return helper.JsonCreated(c, "Donasi dicatat", m)
}

// PUT /api/a/donations/:id
func (ctrl *DonationController) Update(c *fiber.Ctx) error {
	m, err := ctrl.findDonation(c)
	if err != nil {
		return err
	}
	var req dto.UpdateDonationRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	if m.DonationMethod == model.MethodOnline && m.DonationStatus == model.DonationStatusPaid && req.Amount != nil && *req.Amount != m.DonationAmount {
		return helper.JsonError(c, fiber.StatusConflict, "Nominal donasi online yang sudah lunas tidak boleh diubah")
	}

	req.ApplyToModel(m, dbtime.Now())
	if err := ctrl.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui donasi")
	}
	return helper.JsonUpdated(c, "Donasi diperbarui", m)
}

// DELETE /api/a/donations/:id
func (ctrl *DonationController) Delete(c *fiber.Ctx) error {
	m, err := ctrl.findDonation(c)
	if err != nil {
		return err
	}
	if m.DonationMethod == model.MethodOnline && m.DonationStatus == model.DonationStatusPaid {
		return helper.JsonError(c, fiber.StatusConflict, "Donasi online yang sudah lunas tidak bisa dihapus")
	}
	if err := ctrl.DB.Delete(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus donasi")
	}
	return helper.JsonDeleted(c, "Donasi dihapus", fiber.Map{"donation_id": m.DonationID})
}

// GET /api/a/donations/summary?from=&to= (hanya paid, berdasarkan received_at)
func (ctrl *DonationController) Summary(c *fiber.Ctx) error {
	from, to, err := parseRange(c)
	if err != nil {
		return err
	}
	q := ctrl.DB.Model(&model.DonationModel{}).
		Select("donation_purpose AS purpose, COUNT(*) AS total_count, COALESCE(SUM(donation_amount), 0) AS total_amount").
		Where("donation_status = ?", model.DonationStatusPaid)
	out := dto.DonationSummary{ByPurpose: []dto.PurposeTotal{}}
	if from != nil {
		q = q.Where("donation_received_at >= ?", *from)
		out.From = dbtime.FormatDate(*from)
	}
	if to != nil {
		q = q.Where("donation_received_at < ?", *to)
		out.To = dbtime.FormatDate(to.AddDate(0, 0, -1))
	}
	if err := q.Group("donation_purpose").Order("total_amount DESC").Scan(&out.ByPurpose).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung ringkasan donasi")
	}
	for _, r := range out.ByPurpose {
		out.Total += r.Amount
		out.Count += r.Count
	}
	return helper.JsonOK(c, "ok", out)
}

// parseRange: from/to YYYY-MM-DD, to inklusif (dikembalikan sebagai batas eksklusif)
func parseRange(c *fiber.Ctx) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if s := strings.TrimSpace(c.Query("from")); s != "" {
		t, err := dbtime.ParseDate(s)
		if err != nil {
			return nil, nil, fiber.NewError(fiber.StatusBadRequest, "from harus YYYY-MM-DD")
		}
		from = &t
	}
	if s := strings.TrimSpace(c.Query("to")); s != "" {
		t, err := dbtime.ParseDate(s)
		if err != nil {
			return nil, nil, fiber.NewError(fiber.StatusBadRequest, "to harus YYYY-MM-DD")
		}
		t = t.AddDate(0, 0, 1)
		to = &t
	}
	if from != nil && to != nil && !from.Before(*to) {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "from harus sebelum to")
	}
	return from, to, nil
}
