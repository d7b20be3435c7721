package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasa_backend/internals/features/academics/jamiyat/controller"
)

func JamiyatAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewJamiyatController(db)

	g := admin.Group("/jamiyat")

	groups := g.Group("/groups")
	groups.Get("/", ctrl.ListGroups)
	groups.Get("/:id", ctrl.GetGroup)
	groups.Post("/", ctrl.CreateGroup)
	groups.Put("/:id", ctrl.UpdateGroup)
	groups.Delete("/:id", ctrl.DeleteGroup)

	groups.Post("/:id/members", ctrl.AddMember)
	groups.Put("/:id/members", ctrl.SetMembers)
	groups.Delete("/:id/members/:student_id", ctrl.RemoveMember)

	groups.Post("/:id/schedule", ctrl.GenerateSchedule)
	groups.Get("/:id/sessions", ctrl.ListSessions)
	groups.Get("/:id/load", ctrl.Load)

	sessions := g.Group("/sessions")
	sessions.Put("/:id", ctrl.Reassign)
	sessions.Patch("/:id/complete", ctrl.Complete)
}
