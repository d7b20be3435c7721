package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasa_backend/internals/features/finance/fees/controller"
)

func FeeAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewFeeController(db)

	g := admin.Group("/fees")
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Create)
	g.Post("/generate-monthly", ctrl.GenerateMonthly)
	g.Post("/mark-overdue", ctrl.MarkOverdue)
	g.Get("/:id", ctrl.Get)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
	g.Post("/:id/pay", ctrl.Pay)
}
