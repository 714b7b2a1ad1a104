// file: internals/features/rollcall/attendance/route/attendance_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rollcall_backend/internals/features/rollcall/attendance/controller"
)

func AttendanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewAttendanceController(db)

	g := r.Group("/attendance")
	g.Get("/", ctl.ListBySession)
	g.Post("/", ctl.Submit)
	g.Post("/batch", ctl.BatchSubmit)
}
