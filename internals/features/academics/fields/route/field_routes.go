// file: internals/features/academics/fields/route/field_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rollcall_backend/internals/features/academics/fields/controller"
)

func FieldAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewFieldController(db)

	g := r.Group("/fields")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
