package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"outpass_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the ambient middleware stack in order:
// recovery first so panics in anything below still return 500.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
