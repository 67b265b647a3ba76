// file: internals/features/directory/students/controller/student_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"outpass_backend/internals/features/directory/students/model"
	helper "outpass_backend/internals/helpers"
	helperAuth "outpass_backend/internals/helpers/auth"
)

// StudentController is a read-only directory surface. Student records are
// owned by the school information system; this service only looks them up.
type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

// GET /directory/students: staff lookup with the usual filters.
func (ctrl *StudentController) ListStudents(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.StudentModel{}).Where("student_is_active = TRUE")

	if v := strings.TrimSpace(c.Query("class")); v != "" {
		q = q.Where("student_class_name = ?", v)
	}
	if v := strings.TrimSpace(c.Query("section")); v != "" {
		q = q.Where("student_section = ?", v)
	}
	if v := strings.TrimSpace(c.Query("hostel_id")); v != "" {
		hostelID, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid hostel_id")
		}
		q = q.Where("student_hostel_id = ?", hostelID)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where(`(
			LOWER(CONCAT(student_first_name, ' ', student_last_name)) LIKE ?
			OR LOWER(student_roll_no) LIKE ?
			OR LOWER(student_code) LIKE ?
		)`, like, like, like)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count students")
	}

	var students []model.StudentModel
	if err := q.
		Order("student_class_name, student_section, student_roll_no").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch students")
	}

	return helper.JsonList(c, "Students fetched", students,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /directory/students/:id: staff detail with registered guardians.
func (ctrl *StudentController) GetStudentByID(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var student model.StudentModel
	if err := ctrl.DB.First(&student, "student_id = ?", studentID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	var guardians []model.GuardianModel
	if err := ctrl.DB.
		Where("guardian_student_id = ?", studentID).
		Order("guardian_created_at").
		Find(&guardians).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch guardians")
	}

	return helper.JsonOK(c, "Student fetched", fiber.Map{
		"student":   student,
		"guardians": guardians,
	})
}

// GET /directory/my-children: the students linked to the calling parent.
func (ctrl *StudentController) ListMyChildren(c *fiber.Ctx) error {
	parentID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	type childRow struct {
		model.StudentModel
		Relationship     string `gorm:"column:parent_student_relationship" json:"relationship"`
		CanCreateOutpass bool   `gorm:"column:parent_student_can_create_outpass" json:"can_create_outpass"`
	}

	var children []childRow
	if err := ctrl.DB.Table("students").
		Select("students.*, parent_students.parent_student_relationship, parent_students.parent_student_can_create_outpass").
		Joins("JOIN parent_students ON parent_students.parent_student_student_id = students.student_id").
		Where("parent_students.parent_student_parent_id = ? AND students.student_is_active = TRUE", parentID).
		Order("students.student_first_name").
		Scan(&children).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch children")
	}

	return helper.JsonOK(c, "Children fetched", children)
}
