// file: internals/features/outpasses/outpass/controller/outpass_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	stuModel "outpass_backend/internals/features/directory/students/model"
	"outpass_backend/internals/features/outpasses/outpass/dto"
	m "outpass_backend/internals/features/outpasses/outpass/model"
	"outpass_backend/internals/features/outpasses/outpass/service"
	helper "outpass_backend/internals/helpers"
	helperAuth "outpass_backend/internals/helpers/auth"
)

// OutpassController serves the parent-facing surface: create, view, cancel,
// and fee payment for their own children's requests.
type OutpassController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewOutpassController(db *gorm.DB) *OutpassController {
	return &OutpassController{DB: db, validate: validator.New()}
}

// POST /outpasses
func (ctrl *OutpassController) CreateOutpass(c *fiber.Ctx) error {
	parentID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	role, err := helperAuth.GetRoleFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	if err := service.Authorize(service.OpCreate, role); err != nil {
		return jsonTransitionError(c, err)
	}

	var req dto.OutpassCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, validationMap(err))
	}

	var created *m.OutpassModel
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		// Lock the student row: serializes concurrent creates for the same
		// student so the single-active-request check cannot race itself.
		var student stuModel.StudentModel
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("student_id = ? AND student_is_active = TRUE", req.OutpassStudentID).
			First(&student).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Student not found")
			}
			return err
		}

		// Reference directory: caller must be linked to this student and
		// allowed to raise outpasses.
		var link stuModel.ParentStudentModel
		if err := tx.
			Where("parent_student_parent_id = ? AND parent_student_student_id = ?", parentID, req.OutpassStudentID).
			First(&link).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusForbidden, "You are not linked to this student")
			}
			return err
		}
		if !link.ParentStudentCanCreateOutpass {
			return fiber.NewError(fiber.StatusForbidden, "You are not allowed to raise outpasses for this student")
		}

		// Single active request invariant
		var active int64
		if err := tx.Model(&m.OutpassModel{}).
			Where("outpass_student_id = ? AND outpass_status IN ?", req.OutpassStudentID, m.ActiveStatuses()).
			Count(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return service.ErrActiveRequestExists
		}

		o := req.ToModel(parentID)
		if err := tx.Create(o).Error; err != nil {
			return err
		}
		created = o
		return nil
	})
	if txErr != nil {
		return jsonTransitionError(c, txErr)
	}

	service.ObserveTransition(service.OpCreate, string(m.StatusPending))
	log.Printf("[OUTPASS] created id=%s student=%s parent=%s", created.OutpassID, created.OutpassStudentID, parentID)
	return helper.JsonCreated(c, "Outpass requested", created)
}

// GET /outpasses: all requests for the caller's linked students
func (ctrl *OutpassController) ListMyOutpasses(c *fiber.Ctx) error {
	parentID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	p := helper.ResolvePaging(c, 20, 100)

	base := ctrl.DB.Model(&m.OutpassModel{}).
		Where("outpass_student_id IN (?)",
			ctrl.DB.Model(&stuModel.ParentStudentModel{}).
				Select("parent_student_student_id").
				Where("parent_student_parent_id = ?", parentID))

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list outpasses")
	}

	var rows []m.OutpassModel
	if err := base.
		Order("outpass_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list outpasses")
	}

	return helper.JsonList(c, "OK", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /outpasses/:id
func (ctrl *OutpassController) GetOutpassByID(c *fiber.Ctx) error {
	parentID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	outpassID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid outpass id")
	}

	var o m.OutpassModel
	if err := ctrl.DB.
		Where("outpass_id = ? AND outpass_parent_id = ?", outpassID, parentID).
		First(&o).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Outpass not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load outpass")
	}

	approvals, err := service.ListApprovals(ctrl.DB, o.OutpassID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load approvals")
	}
	return helper.JsonOK(c, "OK", dto.OutpassDetailResponse{Outpass: &o, Approvals: approvals})
}

// POST /outpasses/:id/cancel
func (ctrl *OutpassController) CancelOutpass(c *fiber.Ctx) error {
	parentID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	role, err := helperAuth.GetRoleFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	outpassID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid outpass id")
	}

	var cancelled *m.OutpassModel
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		o, err := lockOutpass(tx, outpassID)
		if err != nil {
			return err
		}
		if o.OutpassParentID != parentID {
			return fiber.NewError(fiber.StatusForbidden, "Not your outpass")
		}

		next, err := service.Apply(service.OpCancel, role, o.OutpassStatus)
		if err != nil {
			return err
		}
		if err := tx.Model(o).Update("outpass_status", next).Error; err != nil {
			return err
		}
		o.OutpassStatus = next
		cancelled = o
		return nil
	})
	if txErr != nil {
		return jsonTransitionError(c, txErr)
	}

	service.ObserveTransition(service.OpCancel, string(m.StatusCancelled))
	return helper.JsonUpdated(c, "Outpass cancelled", cancelled)
}

// POST /outpasses/:id/fee/pay: open a gateway transaction for the fee dues
func (ctrl *OutpassController) PayFee(c *fiber.Ctx) error {
	parentID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	outpassID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid outpass id")
	}

	payerName, _ := c.Locals("user_name").(string)

	var token string
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		o, err := lockOutpass(tx, outpassID)
		if err != nil {
			return err
		}
		if o.OutpassParentID != parentID {
			return fiber.NewError(fiber.StatusForbidden, "Not your outpass")
		}
		if o.OutpassFeePaid {
			return fiber.NewError(fiber.StatusConflict, "Fee already settled")
		}
		if o.OutpassFeeDue == nil || *o.OutpassFeeDue <= 0 {
			return fiber.NewError(fiber.StatusConflict, "No fee due on this outpass")
		}

		token, err = service.CreateFeeSnapToken(tx, o, payerName)
		return err
	})
	if txErr != nil {
		return jsonTransitionError(c, txErr)
	}

	return helper.JsonOK(c, "Payment initiated", fiber.Map{"snap_token": token})
}

// POST /outpasses/fee/notification: payment gateway webhook (auth skipped)
func (ctrl *OutpassController) FeeNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := service.HandleFeeNotification(ctrl.DB, body); err != nil {
		log.Printf("[FEE] webhook error: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Notification not processed")
	}
	return helper.JsonOK(c, "OK", nil)
}
