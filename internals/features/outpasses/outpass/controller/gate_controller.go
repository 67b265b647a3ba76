// file: internals/features/outpasses/outpass/controller/gate_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	studentModel "outpass_backend/internals/features/directory/students/model"
	"outpass_backend/internals/features/outpasses/outpass/dto"
	m "outpass_backend/internals/features/outpasses/outpass/model"
	"outpass_backend/internals/features/outpasses/outpass/service"
	helper "outpass_backend/internals/helpers"
)

// GateController serves the gate desk: direct checkout by outpass id and the
// two-step code scanner.
type GateController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewGateController(db *gorm.DB) *GateController {
	return &GateController{DB: db, validate: validator.New()}
}

// POST /staff/outpasses/:id/gate/checkout: checkout without a code scan,
// used when the desk pulls the outpass up on screen instead. Mints the
// return code exactly like the scan path does.
func (ctrl *GateController) GateCheckout(c *fiber.Ctx) error {
	actorID, role, err := callerContext(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	outpassID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid outpass id")
	}

	var req dto.GateCheckoutRequest
	_ = c.BodyParser(&req)

	var result *m.OutpassModel
	var returnCode string
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		o, err := lockOutpass(tx, outpassID)
		if err != nil {
			return err
		}
		next, err := service.Apply(service.OpGateCheckout, role, o.OutpassStatus)
		if err != nil {
			return err
		}

		code, err := service.GenerateReturnCode(tx, o.OutpassExitCode)
		if err != nil {
			return err
		}
		now := time.Now()
		if err := tx.Model(o).Updates(map[string]interface{}{
			"outpass_status":         next,
			"outpass_return_code":    code,
			"outpass_checkout_time":  now,
			"outpass_checked_out_by": actorID,
			"outpass_gate_number":    req.GateNumber,
		}).Error; err != nil {
			return err
		}
		o.OutpassStatus = next
		o.OutpassReturnCode = code
		o.OutpassCheckoutTime = &now
		o.OutpassCheckedOutBy = &actorID
		o.OutpassGateNumber = req.GateNumber
		result = o
		returnCode = code
		return nil
	})
	if txErr != nil {
		return jsonTransitionError(c, txErr)
	}

	service.ObserveTransition(service.OpGateCheckout, string(result.OutpassStatus))
	log.Printf("[GATE] checkout id=%s by=%s gate=%s", outpassID, actorID, req.GateNumber)
	return helper.JsonUpdated(c, "Student checked out", fiber.Map{
		"outpass":     result,
		"return_code": returnCode,
	})
}

// POST /staff/outpasses/gate/process-code: the scanner endpoint. The code
// itself decides the direction: a live exit code checks the student out and
// mints the return code; a live return code completes the outpass. Lookups
// run FOR UPDATE so two desks scanning the same code race on the row lock
// and the loser sees a dead code.
func (ctrl *GateController) ProcessCode(c *fiber.Ctx) error {
	actorID, role, err := callerContext(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.ProcessCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validate.Struct(&req); err != nil {
		service.ObserveCodeScan("invalid")
		return helper.JsonValidationError(c, validationMap(err))
	}

	var resp dto.ProcessCodeResponse
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		locked := tx.Clauses(clause.Locking{Strength: "UPDATE"})

		// Exit leg first, then the return leg.
		o, err := service.FindLiveExitCode(locked, req.Code)
		if err == nil {
			return ctrl.processExit(tx, o, actorID, role, req.GateNumber, &resp)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		o, err = service.FindLiveReturnCode(locked, req.Code)
		if err == nil {
			return ctrl.processReturn(tx, o, role, &resp)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return service.ErrCodeNotFound
	})
	if txErr != nil {
		if errors.Is(txErr, service.ErrCodeNotFound) {
			service.ObserveCodeScan("not_found")
		}
		return jsonTransitionError(c, txErr)
	}

	service.ObserveCodeScan(strings.ToLower(resp.Type))
	log.Printf("[GATE] code scan type=%s by=%s", resp.Type, actorID)
	return helper.JsonOK(c, "Code accepted", resp)
}

func (ctrl *GateController) processExit(tx *gorm.DB, o *m.OutpassModel, actorID uuid.UUID, role, gateNumber string, resp *dto.ProcessCodeResponse) error {
	next, err := service.Apply(service.OpProcessExitCode, role, o.OutpassStatus)
	if err != nil {
		return err
	}
	returnCode, err := service.GenerateReturnCode(tx, o.OutpassExitCode)
	if err != nil {
		return err
	}
	now := time.Now()
	if err := tx.Model(o).Updates(map[string]interface{}{
		"outpass_status":         next,
		"outpass_return_code":    returnCode,
		"outpass_checkout_time":  now,
		"outpass_checked_out_by": actorID,
		"outpass_gate_number":    gateNumber,
	}).Error; err != nil {
		return err
	}

	resp.Type = "EXIT"
	resp.StudentName = ctrl.studentName(tx, o.OutpassStudentID)
	resp.ReturnCode = returnCode
	service.ObserveTransition(service.OpProcessExitCode, string(next))
	return nil
}

func (ctrl *GateController) processReturn(tx *gorm.DB, o *m.OutpassModel, role string, resp *dto.ProcessCodeResponse) error {
	next, err := service.Apply(service.OpProcessReturnCode, role, o.OutpassStatus)
	if err != nil {
		return err
	}
	now := time.Now()
	if err := tx.Model(o).Updates(map[string]interface{}{
		"outpass_status":             next,
		"outpass_actual_return_date": now,
	}).Error; err != nil {
		return err
	}

	resp.Type = "ENTRY"
	resp.StudentName = ctrl.studentName(tx, o.OutpassStudentID)
	service.ObserveTransition(service.OpProcessReturnCode, string(next))
	return nil
}

func (ctrl *GateController) studentName(tx *gorm.DB, studentID uuid.UUID) string {
	var s studentModel.StudentModel
	if err := tx.First(&s, "student_id = ?", studentID).Error; err != nil {
		return ""
	}
	return s.FullName()
}
