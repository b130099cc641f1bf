package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/features/users/auth/controller"
	"github.com/Legal-Form-ci/assojereb-sub000/internals/middlewares"
)

// Routes publiques (pas d'auth)
func AuthPublicRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)
	auth.Post("/refresh", ctrl.Refresh)
	auth.Post("/bootstrap-admin", ctrl.BootstrapAdmin)
}

// Routes utilisateur connecté
func AuthUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/logout", ctrl.Logout)
	auth.Post("/change-password", ctrl.ChangePassword)
}
