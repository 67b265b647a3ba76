// file: internals/features/outpasses/outpass/route/parent_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"outpass_backend/internals/constants"
	"outpass_backend/internals/features/outpasses/outpass/controller"
	authMiddleware "outpass_backend/internals/middlewares/auth"
)

// OutpassParentRoutes mounts the parent-facing lifecycle endpoints.
func OutpassParentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewOutpassController(db)

	outpasses := api.Group("/outpasses",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorParent("outpass requests"),
			constants.ParentOnly,
		),
	)

	outpasses.Post("/", ctrl.CreateOutpass)
	outpasses.Get("/", ctrl.ListMyOutpasses)
	outpasses.Get("/:id", ctrl.GetOutpassByID)
	outpasses.Post("/:id/cancel", ctrl.CancelOutpass)
	outpasses.Post("/:id/fee/pay", ctrl.PayFee)
}
