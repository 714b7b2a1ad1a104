// file: internals/features/users/admins/route/admin_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rollcall_backend/internals/features/users/admins/controller"
	middlewares "rollcall_backend/internals/middlewares"
)

// AuthPublicRoutes mounts the unauthenticated entry points. Login gets
// its own, stricter rate limit.
func AuthPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewAuthController(db)

	g := r.Group("/auth")
	g.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
}

// AdminProtectedRoutes mounts the token-guarded account surface.
func AdminProtectedRoutes(r fiber.Router, db *gorm.DB) {
	authCtl := controller.NewAuthController(db)
	adminCtl := controller.NewAdminController(db)

	r.Get("/auth/me", authCtl.Me)

	g := r.Group("/admins")
	g.Get("/", adminCtl.List)
	g.Post("/", adminCtl.Create)
	g.Put("/:id", adminCtl.Update)
	g.Delete("/:id", adminCtl.Delete)
}
