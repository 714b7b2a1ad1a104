// file: internals/features/academics/students/route/student_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rollcall_backend/internals/features/academics/students/controller"
)

func StudentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewStudentController(db)

	g := r.Group("/students")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", ctl.Create)
	g.Post("/bulk", ctl.BulkCreate)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
