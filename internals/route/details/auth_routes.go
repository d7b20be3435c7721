package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "madrasa_backend/internals/features/users/auth/route"
	userRoute "madrasa_backend/internals/features/users/user/route"
)

// /api/auth: login, refresh, bootstrap super admin
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authRoute.AuthPublicRoutes(app, db)
	userRoute.BootstrapRoutes(app, db)
}
