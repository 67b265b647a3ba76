// file: internals/features/outpasses/outpass/route/staff_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"outpass_backend/internals/constants"
	"outpass_backend/internals/features/outpasses/outpass/controller"
	"outpass_backend/internals/middlewares"
	authMiddleware "outpass_backend/internals/middlewares/auth"
)

// OutpassStaffRoutes mounts the approver and gate surfaces. The dashboard
// reads are shared by every staff role; each transition endpoint is pinned
// to exactly the roles the transition table grants, so the middleware and
// the engine never disagree about who may act.
func OutpassStaffRoutes(api fiber.Router, db *gorm.DB) {
	dash := controller.NewDashboardController(db)
	actions := controller.NewActionController(db)
	gate := controller.NewGateController(db)

	staff := api.Group("/staff/outpasses",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorStaff("the outpass dashboard"),
			constants.StaffRoles,
		),
	)

	// ===================== DASHBOARD (all staff) =====================
	staff.Get("/", dash.ListOutpasses)
	staff.Get("/stats", dash.GetStats)
	staff.Get("/reports",
		authMiddleware.OnlyRoles("❌ Only the HM may access reports.", constants.RoleHM),
		dash.Reports)

	// ===================== GATE =====================
	staff.Post("/gate/process-code",
		middlewares.CodeRateLimiter(),
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorGateStaff("the code scanner"),
			constants.GateStaffOnly,
		),
		gate.ProcessCode)

	staff.Get("/:id", dash.GetOutpassByID)

	staff.Post("/:id/gate/checkout",
		authMiddleware.OnlyRoles("❌ Only gate staff may check students out.", constants.RoleGateStaff),
		gate.GateCheckout)

	// ===================== ACCOUNTANT =====================
	staff.Post("/:id/accountant/fee-pending",
		authMiddleware.OnlyRoles("❌ Only the accountant may set fees.", constants.RoleAccountant),
		actions.MarkFeePending)
	staff.Post("/:id/accountant/approve",
		authMiddleware.OnlyRoles("❌ Only the accountant may clear fees.", constants.RoleAccountant),
		actions.MarkFeePaid)

	// ===================== HM =====================
	staff.Post("/:id/hm/approve",
		authMiddleware.OnlyRoles("❌ Only the HM may approve outpasses.", constants.RoleHM),
		actions.Approve)
	staff.Post("/:id/hm/reject",
		authMiddleware.OnlyRoles("❌ Only the HM may reject here.", constants.RoleHM),
		actions.Reject)
	staff.Post("/:id/hm/meeting",
		authMiddleware.OnlyRoles("❌ Only the HM may schedule meetings.", constants.RoleHM),
		actions.ScheduleMeeting)
	staff.Post("/:id/hm/cancel-meeting",
		authMiddleware.OnlyRoles("❌ Only the HM may cancel meetings.", constants.RoleHM),
		actions.CancelMeeting)

	// ===================== WARDEN =====================
	staff.Post("/:id/warden/vacate",
		authMiddleware.OnlyRoles("❌ Only the warden may release students.", constants.RoleWarden),
		actions.Vacate)
	staff.Post("/:id/warden/reject",
		authMiddleware.OnlyRoles("❌ Only the warden may reject here.", constants.RoleWarden),
		actions.Reject)

	// Manual return fallback when the code path was skipped.
	staff.Post("/:id/mark-returned",
		authMiddleware.OnlyRoles("❌ Only the warden or HM may mark returns.", constants.RoleWarden, constants.RoleHM),
		actions.MarkReturned)
}
