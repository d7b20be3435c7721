package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasa_backend/internals/features/academics/classes/controller"
)

func ClassPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := controller.NewClassController(db)
	public.Get("/classes", ctrl.ListPublic)
}

func ClassAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewClassController(db)

	g := admin.Group("/classes")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.Get)
	g.Post("/", ctrl.Create)
	g.Put("/:id", ctrl.Update)
	g.Patch("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
