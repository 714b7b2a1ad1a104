// file: internals/features/rollcall/dashboard/route/dashboard_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rollcall_backend/internals/features/rollcall/dashboard/controller"
)

func DashboardAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewDashboardController(db)

	g := r.Group("/dashboard")
	g.Get("/stats", ctl.Stats)
}
