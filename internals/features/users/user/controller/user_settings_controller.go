package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasa_backend/internals/features/users/user/dto"
	"madrasa_backend/internals/features/users/user/service"
	helper "madrasa_backend/internals/helpers"
	helperAuth "madrasa_backend/internals/helpers/auth"
)

type UserSettingsController struct {
	DB *gorm.DB
}

func NewUserSettingsController(db *gorm.DB) *UserSettingsController {
	return &UserSettingsController{DB: db}
}

// GET /api/u/settings
func (sc *UserSettingsController) Get(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	s, err := service.GetSettings(sc.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengaturan")
	}
	return helper.JsonOK(c, "ok", s)
}

// PUT /api/u/settings (partial merge)
func (sc *UserSettingsController) Update(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	var req dto.UpdateUserSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	s, err := service.GetSettings(sc.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengaturan")
	}
	req.Apply(&s)
	if err := service.SaveSettings(sc.DB, userID, s); err != nil {
		log.Printf("[ERROR] save settings user=%s: %v", userID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pengaturan")
	}
	return helper.JsonUpdated(c, "Pengaturan disimpan", s)
}
