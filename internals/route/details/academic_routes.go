package details

import (
	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasa_backend/internals/constants"
	attendanceRoute "madrasa_backend/internals/features/academics/attendance/route"
	classRoute "madrasa_backend/internals/features/academics/classes/route"
	examRoute "madrasa_backend/internals/features/academics/exams/route"
	jamiyatRoute "madrasa_backend/internals/features/academics/jamiyat/route"
	lillahRoute "madrasa_backend/internals/features/academics/lillah/route"
	onlineRoute "madrasa_backend/internals/features/academics/online/route"
	studentRoute "madrasa_backend/internals/features/academics/students/route"
	teacherRoute "madrasa_backend/internals/features/academics/teachers/route"
	helperOSS "madrasa_backend/internals/helpers/oss"
	authMiddleware "madrasa_backend/internals/middlewares/auth"
)

func AcademicPublicRoutes(public fiber.Router, db *gorm.DB, rdb *redis.Client) {
	classRoute.ClassPublicRoutes(public, db)
	studentRoute.StudentPublicRoutes(public, db)
	teacherRoute.TeacherPublicRoutes(public, db)
	lillahRoute.LillahPublicRoutes(public, db)
	examRoute.ExamPublicRoutes(public, db, rdb)
	onlineRoute.OnlinePublicRoutes(public, db)
}

func AcademicAdminRoutes(admin fiber.Router, db *gorm.DB, rdb *redis.Client, blob helperOSS.BlobService) {
	// guru boleh kelola akademik; bendahara tidak
	academicOnly := authMiddleware.OnlyRolesSlice(constants.RoleErrorAcademic("akademik"), constants.AcademicRoles)
	for _, prefix := range []string{
		"/classes", "/students", "/teachers", "/lillah", "/alumni",
		"/attendance", "/exams", "/results", "/jamiyat",
		"/courses", "/lessons", "/online-classes",
	} {
		admin.Use(prefix, academicOnly)
	}

	// tarif SPP kelas & gaji guru: tulis hanya admin
	admin.Use("/classes", writesOnly(adminOnly("kelas")))
	admin.Use("/teachers", writesOnly(adminOnly("data guru")))

	classRoute.ClassAdminRoutes(admin, db)
	studentRoute.StudentAdminRoutes(admin, db, blob)
	teacherRoute.TeacherAdminRoutes(admin, db, blob)
	lillahRoute.LillahAdminRoutes(admin, db)
	attendanceRoute.AttendanceAdminRoutes(admin, db)
	examRoute.ExamAdminRoutes(admin, db, rdb)
	jamiyatRoute.JamiyatAdminRoutes(admin, db)
	onlineRoute.OnlineAdminRoutes(admin, db)
}
