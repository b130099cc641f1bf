package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/features/assistant/controller"
	"github.com/Legal-Form-ci/assojereb-sub000/internals/middlewares"
)

// 🤖 Assistant IA – ouvert à toute origine, limité en débit
func AssistantRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewAssistantController(db)

	grp := app.Group("/api/assistant",
		middlewares.AssistantCorsMiddleware(),
		middlewares.AssistantRateLimiter(),
	)
	grp.Post("/chat", ctrl.Chat)
}
