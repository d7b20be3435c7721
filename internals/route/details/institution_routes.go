package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	institutionRoute "madrasa_backend/internals/features/institution/route"
	reportRoute "madrasa_backend/internals/features/reports/route"
	helperOSS "madrasa_backend/internals/helpers/oss"
)

func InstitutionPublicRoutes(public fiber.Router, db *gorm.DB) {
	institutionRoute.InstitutionPublicRoutes(public, db)
	reportRoute.HomePublicRoutes(public, db)
}

func InstitutionAdminRoutes(admin fiber.Router, db *gorm.DB, blob helperOSS.BlobService) {
	admin.Use("/institution", writesOnly(adminOnly("pengaturan madrasah")))
	institutionRoute.InstitutionAdminRoutes(admin, db, blob)
}
