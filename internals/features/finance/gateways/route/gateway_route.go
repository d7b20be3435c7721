package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasa_backend/internals/features/finance/gateways/controller"
)

func GatewayAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewGatewayController(db)

	g := admin.Group("/payment-gateways")
	g.Get("/", ctrl.List)
	g.Get("/:provider", ctrl.Get)
	g.Put("/:provider", ctrl.Update)
	g.Patch("/:provider/toggle", ctrl.Toggle)
}
