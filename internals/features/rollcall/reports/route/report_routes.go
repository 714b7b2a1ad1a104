// file: internals/features/rollcall/reports/route/report_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rollcall_backend/internals/features/rollcall/reports/controller"
)

func ReportAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewReportController(db)

	g := r.Group("/reports")
	g.Get("/absentees", ctl.Absentees)
	g.Get("/field-summary", ctl.FieldSummary)
	g.Get("/absentee-hours", ctl.AbsenteeHours)
}
