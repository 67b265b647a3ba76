// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentRoute "outpass_backend/internals/features/directory/students/route"
	outpassRoute "outpass_backend/internals/features/outpasses/outpass/route"
	"outpass_backend/internals/middlewares"
	authMiddleware "outpass_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// Everything under /api shares the DB handle and JWT auth. The payment
	// gateway callback sits on the auth middleware's skip list.
	api := app.Group("/api",
		middlewares.DBMiddleware(db),
		authMiddleware.AuthMiddleware(db),
	)

	log.Println("[INFO] Mounting outpass routes...")
	outpassRoute.OutpassParentRoutes(api, db)
	outpassRoute.OutpassStaffRoutes(api, db)
	outpassRoute.OutpassWebhookRoutes(api, db)

	log.Println("[INFO] Mounting directory routes...")
	studentRoute.StudentDirectoryRoutes(api, db)
}
