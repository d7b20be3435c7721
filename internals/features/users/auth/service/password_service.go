package service

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authHelper "madrasa_backend/internals/features/users/auth/helper"
	authRepo "madrasa_backend/internals/features/users/auth/repository"
	helper "madrasa_backend/internals/helpers"
	helperAuth "madrasa_backend/internals/helpers/auth"
)

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
}

// ========================== CHANGE PASSWORD ==========================
func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	var input ChangePasswordRequest
	if ok, err := helper.BindAndValidate(c, &input); !ok {
		return err
	}

	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}

	// Cek password lama
	if err := authHelper.CheckPasswordHash(user.Password, input.CurrentPassword); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Current password incorrect")
	}
	if input.CurrentPassword == input.NewPassword {
		return helper.JsonError(c, fiber.StatusBadRequest, "Password baru harus berbeda dari password lama")
	}

	newHash, err := authHelper.HashPassword(input.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash new password")
	}
	if err := authRepo.UpdateUserPassword(db, userID, newHash); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	// sesi lain wajib login ulang
	if err := authRepo.DeleteRefreshTokensByUser(db, userID); err != nil {
		log.Printf("[WARN] revoke refresh tokens: %v", err)
	}

	return helper.JsonUpdated(c, "Password changed successfully", nil)
}
