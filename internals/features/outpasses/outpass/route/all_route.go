// file: internals/features/outpasses/outpass/route/all_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"outpass_backend/internals/features/outpasses/outpass/controller"
)

// OutpassWebhookRoutes mounts the payment gateway callback. The path is on
// the auth middleware's skip list; the handler verifies the gateway
// signature itself.
func OutpassWebhookRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewOutpassController(db)
	api.Post("/outpasses/fee/notification", ctrl.FeeNotification)
}
