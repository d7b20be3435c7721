package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "madrasa_backend/internals/features/users/auth/route"
	userRoute "madrasa_backend/internals/features/users/user/route"
)

// /api/u: semua user yang sudah login
func UserRoutes(user fiber.Router, db *gorm.DB) {
	authRoute.AuthUserRoutes(user, db)
	userRoute.UserSettingsRoutes(user, db)
}

// /api/a/users (cek role ada di route fitur)
func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	userRoute.UserAdminRoutes(admin, db)
}
