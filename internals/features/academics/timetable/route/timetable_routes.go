// file: internals/features/academics/timetable/route/timetable_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rollcall_backend/internals/features/academics/timetable/controller"
)

func TimetableAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewTimetableController(db)

	g := r.Group("/timetable")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
