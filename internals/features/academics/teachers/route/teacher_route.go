package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasa_backend/internals/features/academics/teachers/controller"
	helperOSS "madrasa_backend/internals/helpers/oss"
)

func TeacherPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTeacherController(db, nil)
	public.Get("/teachers", ctrl.ListPublic)
}

func TeacherAdminRoutes(admin fiber.Router, db *gorm.DB, blob helperOSS.BlobService) {
	ctrl := controller.NewTeacherController(db, blob)

	g := admin.Group("/teachers")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.Get)
	g.Post("/", ctrl.Create)
	g.Put("/:id", ctrl.Update)
	g.Patch("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
	g.Post("/:id/photo", ctrl.UploadPhoto)
}
