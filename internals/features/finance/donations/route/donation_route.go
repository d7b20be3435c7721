package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasa_backend/internals/features/finance/donations/controller"
	"madrasa_backend/internals/helpers/email"
	"madrasa_backend/internals/middlewares"
)

func DonationPublicRoutes(public fiber.Router, db *gorm.DB, mailer email.Sender) {
	ctrl := controller.NewDonationController(db, mailer)

	g := public.Group("/donations")
	g.Post("/", middlewares.DonationRateLimiter(), ctrl.Checkout)
	g.Post("/notification", ctrl.Notification)
}

func DonationAdminRoutes(admin fiber.Router, db *gorm.DB, mailer email.Sender) {
	ctrl := controller.NewDonationController(db, mailer)

	g := admin.Group("/donations")
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Create)
	g.Get("/summary", ctrl.Summary)
	g.Get("/:id", ctrl.Get)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
