package routes

import (
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasa_backend/internals/constants"
	"madrasa_backend/internals/helpers/email"
	helperOSS "madrasa_backend/internals/helpers/oss"
	authMiddleware "madrasa_backend/internals/middlewares/auth"
	routeDetails "madrasa_backend/internals/route/details"
	"madrasa_backend/internals/scheduler"
)

var startTime time.Time

// Deps: integrasi opsional; nil aman (cache/email/upload nonaktif)
type Deps struct {
	Redis  *redis.Client
	Blob   helperOSS.BlobService
	Mailer email.Sender
}

func SetupRoutes(app *fiber.App, db *gorm.DB, deps Deps) {
	startTime = time.Now()
	if deps.Blob == nil {
		deps.Blob = helperOSS.NoopBlobService{}
	}
	if deps.Mailer == nil {
		deps.Mailer = &email.ConsoleSender{}
	}

	BaseRoutes(app, db)

	// ===================== AUTH (tanpa login) =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== GROUPS =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	log.Println("[INFO] Setting up USER group (Auth)...")
	user := app.Group("/api/u", authMiddleware.AuthMiddleware(db))

	log.Println("[INFO] Setting up ADMIN group (Auth + staff role)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(constants.RoleErrorStaff("admin panel"), constants.StaffRoles),
	)

	log.Println("[INFO] Setting up SUPER ADMIN group...")
	superAdmin := app.Group("/api/sa",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(constants.RoleErrorSuperAdmin("maintenance"), constants.SuperAdminOnly),
	)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting User routes...")
	routeDetails.UserRoutes(user, db)
	routeDetails.UserAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Institution routes...")
	routeDetails.InstitutionPublicRoutes(public, db)
	routeDetails.InstitutionAdminRoutes(admin, db, deps.Blob)

	log.Println("[INFO] Mounting Academic routes...")
	routeDetails.AcademicPublicRoutes(public, db, deps.Redis)
	routeDetails.AcademicAdminRoutes(admin, db, deps.Redis, deps.Blob)

	log.Println("[INFO] Mounting Finance routes...")
	routeDetails.FinancePublicRoutes(public, db, deps.Mailer)
	routeDetails.FinanceAdminRoutes(admin, db, deps.Mailer)

	superAdmin.Post("/jobs/:name", scheduler.RunHandler(db))
}
