package helper

import "github.com/gofiber/fiber/v2"

// FromFiberError converts an error coming out of a Transaction (usually a
// *fiber.Error) into the consistent JSON envelope. Anything else becomes 500.
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, err.Error())
}
