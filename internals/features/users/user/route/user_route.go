package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasa_backend/internals/constants"
	userController "madrasa_backend/internals/features/users/user/controller"
	"madrasa_backend/internals/middlewares"
	authMiddleware "madrasa_backend/internals/middlewares/auth"
)

// Base: /api/auth (tanpa login)
func BootstrapRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := userController.NewBootstrapController(db)

	g := app.Group("/api/auth")
	g.Get("/bootstrap-status", ctrl.Status)
	g.Post("/bootstrap-admin", middlewares.BootstrapRateLimiter(), ctrl.Bootstrap)
}

// Base: /api/u
func UserSettingsRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserSettingsController(db)

	user.Get("/settings", ctrl.Get)
	user.Put("/settings", ctrl.Update)
}

// Base: /api/a
func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	g := admin.Group("/users",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("manajemen user"), constants.AdminAndAbove),
	)
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.Get)
	g.Post("/", ctrl.Create)
	g.Patch("/:id", ctrl.Update)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
