package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasa_backend/internals/features/academics/attendance/controller"
)

func AttendanceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceController(db)

	g := admin.Group("/attendance")
	g.Get("/", ctrl.Roster)
	g.Get("/summary", ctrl.Summary)
	g.Post("/bulk", ctrl.Bulk)
	g.Delete("/:id", ctrl.Delete)
}
