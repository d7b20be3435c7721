package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasa_backend/internals/features/academics/students/controller"
	helperOSS "madrasa_backend/internals/helpers/oss"
)

func StudentPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentController(db, nil)
	public.Get("/students", ctrl.ListPublic)
	public.Get("/alumni", ctrl.ListPublicAlumni)
}

func StudentAdminRoutes(admin fiber.Router, db *gorm.DB, blob helperOSS.BlobService) {
	ctrl := controller.NewStudentController(db, blob)

	g := admin.Group("/students")
	g.Get("/", ctrl.List)
	g.Get("/export", ctrl.Export)
	g.Post("/import", ctrl.Import)
	g.Get("/:id", ctrl.Get)
	g.Post("/", ctrl.Create)
	g.Put("/:id", ctrl.Update)
	g.Patch("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
	g.Post("/:id/photo", ctrl.UploadPhoto)
	g.Post("/:id/graduate", ctrl.Graduate)

	admin.Get("/alumni", ctrl.ListAlumni)
}
