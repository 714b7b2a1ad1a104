// file: internals/features/rollcall/sessions/route/session_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rollcall_backend/internals/features/rollcall/sessions/controller"
)

func SessionAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewSessionController(db)

	g := r.Group("/sessions")
	g.Get("/current", ctl.GetCurrent)
	g.Post("/complete", ctl.Complete)
	g.Get("/completed", ctl.ListCompleted)
}
