package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMiddleware "github.com/Legal-Form-ci/assojereb-sub000/internals/middlewares/logger"
)

// SetupMiddlewares branche les middlewares transverses dans l'ordre.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(loggerMiddleware.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
