package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasa_backend/internals/features/finance/salaries/controller"
)

func SalaryAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSalaryController(db)

	g := admin.Group("/salaries")
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Create)
	g.Post("/generate", ctrl.Generate)
	g.Get("/:id", ctrl.Get)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
	g.Post("/:id/pay", ctrl.Pay)
}
