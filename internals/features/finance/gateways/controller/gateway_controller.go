package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasa_backend/internals/features/finance/gateways/dto"
	"madrasa_backend/internals/features/finance/gateways/model"
	helper "madrasa_backend/internals/helpers"
)

type GatewayController struct {
	DB *gorm.DB
}

func NewGatewayController(db *gorm.DB) *GatewayController {
	return &GatewayController{DB: db}
}

func providerParam(c *fiber.Ctx) (string, error) {
	p := strings.ToLower(strings.TrimSpace(c.Params("provider")))
	if !model.IsValidProvider(p) {
		return "", fiber.NewError(fiber.StatusNotFound, "Provider tidak dikenal")
	}
	return p, nil
}

// load: baris tersimpan, atau default kosong (exists=false)
func (ctrl *GatewayController) load(provider string) (model.PaymentGatewayModel, bool, error) {
	var m model.PaymentGatewayModel
	err := ctrl.DB.Where("payment_gateway_provider = ?", provider).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.NewDefault(provider), false, nil
	}
	if err != nil {
		return m, false, err
	}
	return m, true, nil
}

// GET /api/a/payment-gateways → semua provider, yang belum disimpan tampil default
func (ctrl *GatewayController) List(c *fiber.Ctx) error {
	var rows []model.PaymentGatewayModel
	if err := ctrl.DB.Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil payment gateway")
	}
	byProvider := make(map[string]model.PaymentGatewayModel, len(rows))
	for _, r := range rows {
		byProvider[r.PaymentGatewayProvider] = r
	}

	out := make([]dto.GatewayResponse, 0, len(model.Providers))
	for _, p := range model.Providers {
		m, ok := byProvider[p]
		if !ok {
			m = model.NewDefault(p)
		}
		out = append(out, dto.NewGatewayResponse(m))
	}
	return helper.JsonList(c, "ok", out, nil)
}

// GET /api/a/payment-gateways/:provider
func (ctrl *GatewayController) Get(c *fiber.Ctx) error {
	p, err := providerParam(c)
	if err != nil {
		return err
	}
	m, _, err := ctrl.load(p)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil payment gateway")
	}
	return helper.JsonOK(c, "ok", dto.NewGatewayResponse(m))
}

// PUT /api/a/payment-gateways/:provider (upsert)
func (ctrl *GatewayController) Update(c *fiber.Ctx) error {
	p, err := providerParam(c)
	if err != nil {
		return err
	}
	var req dto.UpdateGatewayRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}

	m, exists, err := ctrl.load(p)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil payment gateway")
	}
	req.ApplyToModel(&m)

	if exists {
		err = ctrl.DB.Save(&m).Error
	} else {
		err = ctrl.DB.Create(&m).Error
	}
	if err != nil {
		log.Printf("[ERROR] save gateway %s: %v", p, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan payment gateway")
	}
	log.Printf("[INFO] gateway %s diperbarui (enabled=%v sandbox=%v)", p, m.PaymentGatewayIsEnabled, m.PaymentGatewayIsSandbox)
	return helper.JsonUpdated(c, "Payment gateway diperbarui", dto.NewGatewayResponse(m))
}

// PATCH /api/a/payment-gateways/:provider/toggle
func (ctrl *GatewayController) Toggle(c *fiber.Ctx) error {
	p, err := providerParam(c)
	if err != nil {
		return err
	}
	m, exists, err := ctrl.load(p)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil payment gateway")
	}
	m.PaymentGatewayIsEnabled = !m.PaymentGatewayIsEnabled
	if exists {
		err = ctrl.DB.Save(&m).Error
	} else {
		err = ctrl.DB.Create(&m).Error
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan payment gateway")
	}
	return helper.JsonUpdated(c, "Status gateway diubah", dto.NewGatewayResponse(m))
}
