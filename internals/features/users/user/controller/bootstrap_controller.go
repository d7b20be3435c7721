package controller

import (
	"crypto/subtle"
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasa_backend/internals/configs"
	"madrasa_backend/internals/features/users/user/dto"
	"madrasa_backend/internals/features/users/user/service"
	helper "madrasa_backend/internals/helpers"
)

type BootstrapController struct {
	DB *gorm.DB
}

func NewBootstrapController(db *gorm.DB) *BootstrapController {
	return &BootstrapController{DB: db}
}

// GET /api/auth/bootstrap-status
func (bc *BootstrapController) Status(c *fiber.Ctx) error {
	needs, err := service.NeedsBootstrap(bc.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek status bootstrap")
	}
	return helper.JsonOK(c, "ok", fiber.Map{"needs_bootstrap": needs})
}

// POST /api/auth/bootstrap-admin
func (bc *BootstrapController) Bootstrap(c *fiber.Ctx) error {
	if want := strings.TrimSpace(configs.BootstrapToken); want != "" {
		got := strings.TrimSpace(c.Get("X-Bootstrap-Token"))
		if subtle.ConstantTimeCompare([]byte(got), []byte(want)) != 1 {
			return helper.JsonError(c, fiber.StatusForbidden, "Bootstrap token tidak valid")
		}
	}

	var req dto.BootstrapAdminRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}

	u, err := service.BootstrapSuperAdmin(bc.DB, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyBootstrapped):
			return helper.JsonError(c, fiber.StatusConflict, "Super admin sudah ada, bootstrap tidak bisa diulang")
		case errors.Is(err, service.ErrEmailTaken), helper.IsUniqueViolation(err):
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		log.Printf("[ERROR] bootstrap admin: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat super admin")
	}
	log.Printf("[INFO] super admin pertama dibuat: %s", u.Email)
	return helper.JsonCreated(c, "Super admin berhasil dibuat", dto.FromModel(*u))
}
