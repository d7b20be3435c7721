package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasa_backend/internals/features/academics/online/controller"
)

func OnlinePublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := controller.NewOnlineController(db)

	public.Get("/courses", ctrl.ListPublishedCourses)
	public.Get("/courses/:slug", ctrl.GetPublishedCourse)
	public.Get("/lessons/:id", ctrl.GetPublicLesson)
	public.Get("/online-classes", ctrl.ListActiveOnlineClasses)
}

func OnlineAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewOnlineController(db)

	courses := admin.Group("/courses")
	courses.Get("/", ctrl.ListCourses)
	courses.Get("/:id", ctrl.GetCourse)
	courses.Post("/", ctrl.CreateCourse)
	courses.Put("/:id", ctrl.UpdateCourse)
	courses.Delete("/:id", ctrl.DeleteCourse)

	lessons := admin.Group("/lessons")
	lessons.Get("/", ctrl.ListLessons)
	lessons.Get("/:id", ctrl.GetLesson)
	lessons.Post("/", ctrl.CreateLesson)
	lessons.Put("/:id", ctrl.UpdateLesson)
	lessons.Delete("/:id", ctrl.DeleteLesson)

	oc := admin.Group("/online-classes")
	oc.Get("/", ctrl.ListOnlineClasses)
	oc.Get("/:id", ctrl.GetOnlineClass)
	oc.Post("/", ctrl.CreateOnlineClass)
	oc.Put("/:id", ctrl.UpdateOnlineClass)
	oc.Delete("/:id", ctrl.DeleteOnlineClass)
}
