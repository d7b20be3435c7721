package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasa_backend/internals/features/finance/expenses/controller"
)

func ExpenseAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewExpenseController(db)

	g := admin.Group("/expenses")
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Create)
	g.Get("/:id", ctrl.Get)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
