// file: internals/features/outpasses/outpass/controller/common.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	m "outpass_backend/internals/features/outpasses/outpass/model"
	"outpass_backend/internals/features/outpasses/outpass/service"
	helper "outpass_backend/internals/helpers"
)

// lockOutpass re-reads the row FOR UPDATE so the source-state precondition is
// validated inside the critical section, never against a stale read.
func lockOutpass(tx *gorm.DB, id uuid.UUID) (*m.OutpassModel, error) {
	var o m.OutpassModel
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("outpass_id = ?", id).
		First(&o).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Outpass not found")
		}
		return nil, err
	}
	return &o, nil
}

// jsonTransitionError maps the business taxonomy onto the response envelope.
func jsonTransitionError(c *fiber.Ctx, err error) error {
	var ite *service.InvalidTransitionError
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		return helper.JsonErrorWithCode(c, fiber.StatusForbidden, "UNAUTHORIZED", err.Error())
	case errors.As(err, &ite):
		return helper.JsonErrorWithCode(c, fiber.StatusConflict, "INVALID_TRANSITION", ite.Error())
	case errors.Is(err, service.ErrActiveRequestExists):
		return helper.JsonErrorWithCode(c, fiber.StatusConflict, "ACTIVE_REQUEST_EXISTS", err.Error())
	case errors.Is(err, service.ErrCodeNotFound):
		return helper.JsonErrorWithCode(c, fiber.StatusNotFound, "CODE_NOT_FOUND", "Invalid code")
	default:
		return helper.FromFiberError(c, err)
	}
}

// validationMap flattens validator.v10 errors into the 422 field map.
func validationMap(err error) map[string][]string {
	out := map[string][]string{}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			out[fe.Field()] = append(out[fe.Field()], fe.Tag())
		}
	}
	return out
}
