// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "madrasa_backend/internals/features/users/auth/controller"
	rateLimiter "madrasa_backend/internals/middlewares"
)

// Base: /api/auth (tanpa login)
func AuthPublicRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	baseAuth := app.Group("/api/auth")
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/login-google", rateLimiter.LoginRateLimiter(), authController.LoginGoogle)
	baseAuth.Post("/refresh-token", authController.RefreshToken)
}

// Base: /api/u/auth (sudah login)
func AuthUserRoutes(user fiber.Router, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	g := user.Group("/auth")
	g.Post("/logout", authController.Logout)
	g.Post("/change-password", authController.ChangePassword)
	g.Get("/me", authController.Me)
}
