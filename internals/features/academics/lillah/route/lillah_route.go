package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasa_backend/internals/features/academics/lillah/controller"
)

func LillahPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := controller.NewLillahController(db)
	public.Get("/lillah", ctrl.PublicRoster)
}

func LillahAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewLillahController(db)

	g := admin.Group("/lillah")
	g.Get("/", ctrl.List)
	g.Get("/summary", ctrl.Summary)
	g.Put("/:student_id", ctrl.Enroll)
}
