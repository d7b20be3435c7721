package route

import (
	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasa_backend/internals/features/academics/exams/controller"
	"madrasa_backend/internals/features/academics/exams/service"
)

func ExamPublicRoutes(public fiber.Router, db *gorm.DB, rdb *redis.Client) {
	cache := service.NewResultCache(rdb)
	examCtrl := controller.NewExamController(db, cache)
	resultCtrl := controller.NewResultController(db, cache)

	public.Get("/exams", examCtrl.ListPublished)
	public.Get("/results", resultCtrl.PublicResults)
	public.Get("/results/student/:student_id", resultCtrl.ReportCard)
}

func ExamAdminRoutes(admin fiber.Router, db *gorm.DB, rdb *redis.Client) {
	cache := service.NewResultCache(rdb)
	examCtrl := controller.NewExamController(db, cache)
	resultCtrl := controller.NewResultController(db, cache)

	exams := admin.Group("/exams")
	exams.Get("/", examCtrl.List)
	exams.Get("/:id", examCtrl.Get)
	exams.Post("/", examCtrl.Create)
	exams.Put("/:id", examCtrl.Update)
	exams.Patch("/:id/publish", examCtrl.Publish)
	exams.Delete("/:id", examCtrl.Delete)

	results := admin.Group("/results")
	results.Get("/", resultCtrl.List)
	results.Get("/ranking", resultCtrl.Ranking)
	results.Post("/", resultCtrl.Create)
	results.Post("/bulk", resultCtrl.Bulk)
	results.Put("/:id", resultCtrl.Update)
	results.Delete("/:id", resultCtrl.Delete)
}
