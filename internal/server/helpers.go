package server

import (
	"github.com/gofiber/fiber/v2"
)

// parseUintParam extracts a route parameter as a positive uint. The
// second return is false for malformed values; callers coerce that to the
// same not-found response a missing record produces, matching the legacy
// behavior of surfacing malformed-id driver errors as 404s.
func parseUintParam(c *fiber.Ctx, param string) (uint, bool) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// currentUserID returns the authenticated caller's id set by the auth gate.
func currentUserID(c *fiber.Ctx) uint {
	return c.Locals("userID").(uint)
}
