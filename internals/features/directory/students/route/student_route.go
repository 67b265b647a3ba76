// file: internals/features/directory/students/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"outpass_backend/internals/constants"
	"outpass_backend/internals/features/directory/students/controller"
	authMiddleware "outpass_backend/internals/middlewares/auth"
)

// StudentDirectoryRoutes mounts the read-only student lookups.
func StudentDirectoryRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentController(db)

	directory := api.Group("/directory")

	directory.Get("/my-children",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorParent("the children list"),
			constants.ParentOnly,
		),
		ctrl.ListMyChildren)

	students := directory.Group("/students",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorStaff("the student directory"),
			constants.StaffRoles,
		),
	)
	students.Get("/", ctrl.ListStudents)
	students.Get("/:id", ctrl.GetStudentByID)
}
