// file: internals/features/outpasses/outpass/controller/action_controller.go
package controller

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"outpass_backend/internals/configs"
	"outpass_backend/internals/constants"
	"outpass_backend/internals/features/outpasses/outpass/dto"
	m "outpass_backend/internals/features/outpasses/outpass/model"
	"outpass_backend/internals/features/outpasses/outpass/service"
	helper "outpass_backend/internals/helpers"
	helperAuth "outpass_backend/internals/helpers/auth"
)

// ActionController serves the approver-side transitions: fee handling,
// HM decisions, meeting detour, warden release and manual return.
type ActionController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewActionController(db *gorm.DB) *ActionController {
	return &ActionController{DB: db, validate: validator.New()}
}

// callerContext pulls the acting staff identity out of the token.
func callerContext(c *fiber.Ctx) (uuid.UUID, string, error) {
	actorID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return uuid.Nil, "", err
	}
	role, err := helperAuth.GetRoleFromToken(c)
	if err != nil {
		return uuid.Nil, "", err
	}
	return actorID, role, nil
}

// runTransition is the shared critical section: lock the row, validate
// role + source state, apply the mutation, commit. Both the status change
// and any ledger write happen on the same transaction.
func (ctrl *ActionController) runTransition(c *fiber.Ctx, op service.Op, mutate func(tx *gorm.DB, o *m.OutpassModel, next m.Status, actorID uuid.UUID, role string) error) error {
	actorID, role, err := callerContext(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	outpassID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid outpass id")
	}

	var result *m.OutpassModel
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		o, err := lockOutpass(tx, outpassID)
		if err != nil {
			return err
		}
		next, err := service.Apply(op, role, o.OutpassStatus)
		if err != nil {
			return err
		}
		if err := mutate(tx, o, next, actorID, role); err != nil {
			return err
		}
		result = o
		return nil
	})
	if txErr != nil {
		return jsonTransitionError(c, txErr)
	}

	service.ObserveTransition(op, string(result.OutpassStatus))
	log.Printf("[OUTPASS] %s id=%s by=%s role=%s -> %s", op, outpassID, actorID, role, result.OutpassStatus)
	return helper.JsonUpdated(c, fmt.Sprintf("%s applied", op), result)
}

// POST /staff/outpasses/:id/accountant/fee-pending
func (ctrl *ActionController) MarkFeePending(c *fiber.Ctx) error {
	var req dto.FeePendingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, validationMap(err))
	}

	return ctrl.runTransition(c, service.OpMarkFeePending, func(tx *gorm.DB, o *m.OutpassModel, next m.Status, actorID uuid.UUID, role string) error {
		if err := tx.Model(o).Updates(map[string]interface{}{
			"outpass_fee_due": req.Amount,
			"outpass_status":  next,
		}).Error; err != nil {
			return err
		}
		o.OutpassFeeDue = &req.Amount
		o.OutpassStatus = next
		return nil
	})
}

// POST /staff/outpasses/:id/accountant/approve: mark the fee as paid.
// Status only moves when it was FEE_PENDING; the fee fields update either way.
func (ctrl *ActionController) MarkFeePaid(c *fiber.Ctx) error {
	return ctrl.runTransition(c, service.OpMarkFeePaid, func(tx *gorm.DB, o *m.OutpassModel, next m.Status, actorID uuid.UUID, role string) error {
		now := time.Now()
		if err := tx.Model(o).Updates(map[string]interface{}{
			"outpass_fee_paid":    true,
			"outpass_fee_paid_at": now,
			"outpass_status":      next,
		}).Error; err != nil {
			return err
		}
		o.OutpassFeePaid = true
		o.OutpassFeePaidAt = &now
		o.OutpassStatus = next

		return service.RecordApproval(tx, o.OutpassID, constants.RoleAccountant, &actorID,
			m.ApprovalApproved, "", &service.ApprovalSnapshot{FeeAmount: o.OutpassFeeDue})
	})
}

// POST /staff/outpasses/:id/hm/approve
func (ctrl *ActionController) Approve(c *fiber.Ctx) error {
	return ctrl.runTransition(c, service.OpApprove, func(tx *gorm.DB, o *m.OutpassModel, next m.Status, actorID uuid.UUID, role string) error {
		if err := tx.Model(o).Update("outpass_status", next).Error; err != nil {
			return err
		}
		o.OutpassStatus = next
		return service.RecordApproval(tx, o.OutpassID, constants.RoleHM, &actorID,
			m.ApprovalApproved, "", nil)
	})
}

// POST /staff/outpasses/:id/hm/reject and /staff/outpasses/:id/warden/reject.
// The ledger row is written under the acting role.
func (ctrl *ActionController) Reject(c *fiber.Ctx) error {
	var req dto.RejectRequest
	_ = c.BodyParser(&req) // reason is optional
	if req.Reason == "" {
		req.Reason = "No reason provided"
	}

	return ctrl.runTransition(c, service.OpReject, func(tx *gorm.DB, o *m.OutpassModel, next m.Status, actorID uuid.UUID, role string) error {
		if err := tx.Model(o).Update("outpass_status", next).Error; err != nil {
			return err
		}
		o.OutpassStatus = next
		return service.RecordApproval(tx, o.OutpassID, role, &actorID,
			m.ApprovalRejected, req.Reason, nil)
	})
}

// POST /staff/outpasses/:id/hm/meeting
func (ctrl *ActionController) ScheduleMeeting(c *fiber.Ctx) error {
	var req dto.MeetingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, validationMap(err))
	}

	return ctrl.runTransition(c, service.OpScheduleMeeting, func(tx *gorm.DB, o *m.OutpassModel, next m.Status, actorID uuid.UUID, role string) error {
		if err := tx.Model(o).Updates(map[string]interface{}{
			"outpass_meeting_scheduled": true,
			"outpass_meeting_date":      req.Date,
			"outpass_meeting_venue":     req.Venue,
			"outpass_meeting_notes":     req.Notes,
			"outpass_status":            next,
		}).Error; err != nil {
			return err
		}
		o.OutpassMeetingScheduled = true
		o.OutpassMeetingDate = &req.Date
		o.OutpassMeetingVenue = req.Venue
		o.OutpassMeetingNotes = req.Notes
		o.OutpassStatus = next
		return nil
	})
}

// POST /staff/outpasses/:id/hm/cancel-meeting: detour back to PENDING
func (ctrl *ActionController) CancelMeeting(c *fiber.Ctx) error {
	return ctrl.runTransition(c, service.OpCancelMeeting, func(tx *gorm.DB, o *m.OutpassModel, next m.Status, actorID uuid.UUID, role string) error {
		if err := tx.Model(o).Updates(map[string]interface{}{
			"outpass_meeting_scheduled": false,
			"outpass_meeting_date":      nil,
			"outpass_meeting_venue":     "",
			"outpass_meeting_notes":     "",
			"outpass_status":            next,
		}).Error; err != nil {
			return err
		}
		o.OutpassMeetingScheduled = false
		o.OutpassMeetingDate = nil
		o.OutpassMeetingVenue = ""
		o.OutpassMeetingNotes = ""
		o.OutpassStatus = next
		return nil
	})
}

// POST /staff/outpasses/:id/warden/vacate: warden release. Only valid from
// APPROVED; mints the exit code inside the same transaction so a crash can
// never leave a READY_FOR_EXIT row without a live code.
func (ctrl *ActionController) Vacate(c *fiber.Ctx) error {
	actorID, role, err := callerContext(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	outpassID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid outpass id")
	}
	photoURL, err := ctrl.resolveVerificationPhoto(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var result *m.OutpassModel
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		o, err := lockOutpass(tx, outpassID)
		if err != nil {
			return err
		}
		next, err := service.Apply(service.OpVacate, role, o.OutpassStatus)
		if err != nil {
			return err
		}

		code, err := service.GenerateExitCode(tx)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{
			"outpass_status":    next,
			"outpass_exit_code": code,
		}
		if photoURL != "" {
			updates["outpass_verification_photo"] = photoURL
		}
		if err := tx.Model(o).Updates(updates).Error; err != nil {
			return err
		}
		o.OutpassStatus = next
		o.OutpassExitCode = code
		if photoURL != "" {
			o.OutpassVerificationPhoto = photoURL
		}
		result = o

		return service.RecordApproval(tx, o.OutpassID, constants.RoleWarden, &actorID,
			m.ApprovalApproved, "", nil)
	})
	if txErr != nil {
		return jsonTransitionError(c, txErr)
	}

	service.ObserveTransition(service.OpVacate, string(result.OutpassStatus))
	log.Printf("[OUTPASS] vacate id=%s by=%s exit_code_set=true", outpassID, actorID)
	return helper.JsonUpdated(c, "Student released for exit", dto.VacateResponse{
		Outpass:  result,
		ExitCode: result.OutpassExitCode,
	})
}

// resolveVerificationPhoto prefers an uploaded file (converted to webp and
// stored locally) over a pre-uploaded URL in the body.
func (ctrl *ActionController) resolveVerificationPhoto(c *fiber.Ctx) (string, error) {
	if fileHeader, err := c.FormFile("verification_photo"); err == nil && fileHeader != nil {
		data, err := helper.ConvertPhotoToWebP(fileHeader)
		if err != nil {
			return "", err
		}
		dir := configs.GetEnv("UPLOAD_DIR", "./uploads")
		base := strings.TrimSuffix(fileHeader.Filename, filepath.Ext(fileHeader.Filename))
		key := helper.GenerateUniqueFilename("verification", base) + ".webp"
		full := filepath.Join(dir, key)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			return "", err
		}
		if err := os.WriteFile(full, data, 0o644); err != nil {
			return "", err
		}
		return "/uploads/" + key, nil
	}

	var req dto.VacateRequest
	_ = c.BodyParser(&req)
	return req.VerificationPhoto, nil
}

// POST /staff/outpasses/:id/mark-returned: manual completion by warden/HM
func (ctrl *ActionController) MarkReturned(c *fiber.Ctx) error {
	return ctrl.runTransition(c, service.OpMarkReturned, func(tx *gorm.DB, o *m.OutpassModel, next m.Status, actorID uuid.UUID, role string) error {
		now := time.Now()
		if err := tx.Model(o).Updates(map[string]interface{}{
			"outpass_status":             next,
			"outpass_actual_return_date": now,
		}).Error; err != nil {
			return err
		}
		o.OutpassStatus = next
		o.OutpassActualReturnDate = &now
		return nil
	})
}
