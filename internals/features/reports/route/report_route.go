package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasa_backend/internals/features/reports/controller"
)

func ReportAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewReportController(db)

	admin.Get("/dashboard", ctrl.Dashboard)

	g := admin.Group("/reports")
	g.Get("/finance", ctrl.Finance)
	g.Get("/finance/export", ctrl.ExportFinance)
}

func HomePublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := controller.NewReportController(db)
	public.Get("/home", ctrl.Home)
}
