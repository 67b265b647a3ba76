// file: internals/helpers/auth/claims.go
package auth

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetUserIDFromToken reads the authenticated caller's id set by the auth middleware.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, fmt.Errorf("user_id missing from token")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("user_id in token is not a uuid")
	}
	return id, nil
}

// GetRoleFromToken reads the caller's role claim.
func GetRoleFromToken(c *fiber.Ctx) (string, error) {
	role, ok := c.Locals("userRole").(string)
	if !ok || role == "" {
		return "", fmt.Errorf("role missing from token")
	}
	return role, nil
}

// GetHostelIDsFromToken reads the warden's assigned-hostel scope.
// Empty slice means unscoped (non-warden staff).
func GetHostelIDsFromToken(c *fiber.Ctx) []uuid.UUID {
	raw, ok := c.Locals("hostel_ids").([]string)
	if !ok {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		if id, err := uuid.Parse(s); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}
