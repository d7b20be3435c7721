package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasa_backend/internals/features/institution/controller"
	helperOSS "madrasa_backend/internals/helpers/oss"
)

func InstitutionPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := controller.NewInstitutionController(db, nil)
	public.Get("/institution", ctrl.GetPublic)
}

func InstitutionAdminRoutes(admin fiber.Router, db *gorm.DB, blob helperOSS.BlobService) {
	ctrl := controller.NewInstitutionController(db, blob)

	g := admin.Group("/institution")
	g.Get("/", ctrl.Get)
	g.Put("/", ctrl.Update)
	g.Post("/logo", ctrl.UploadLogo)

	admin.Get("/help", controller.HelpTopics)
}
