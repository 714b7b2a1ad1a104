// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	fieldRoute "rollcall_backend/internals/features/academics/fields/route"
	studentRoute "rollcall_backend/internals/features/academics/students/route"
	timetableRoute "rollcall_backend/internals/features/academics/timetable/route"
	attendanceRoute "rollcall_backend/internals/features/rollcall/attendance/route"
	dashboardRoute "rollcall_backend/internals/features/rollcall/dashboard/route"
	reportRoute "rollcall_backend/internals/features/rollcall/reports/route"
	sessionRoute "rollcall_backend/internals/features/rollcall/sessions/route"
	adminRoute "rollcall_backend/internals/features/users/admins/route"
	middlewares "rollcall_backend/internals/middlewares"
	"rollcall_backend/internals/middlewares/auth"
)

// SetupRoutes mounts the whole HTTP surface:
//
//	/api      public (health, login)
//	/api/a    admin, behind the JWT middleware
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	app.Use(middlewares.DBMiddleware(db))

	api := app.Group("/api")
	BaseRoutes(api, db)
	adminRoute.AuthPublicRoutes(api, db)

	protected := api.Group("/a", auth.AuthMiddleware())
	adminRoute.AdminProtectedRoutes(protected, db)
	fieldRoute.FieldAdminRoutes(protected, db)
	studentRoute.StudentAdminRoutes(protected, db)
	timetableRoute.TimetableAdminRoutes(protected, db)
	sessionRoute.SessionAdminRoutes(protected, db)
	attendanceRoute.AttendanceAdminRoutes(protected, db)
	reportRoute.ReportAdminRoutes(protected, db)
	dashboardRoute.DashboardAdminRoutes(protected, db)
}
