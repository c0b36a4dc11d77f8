package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/s-204-cmd/Scholars-spotlight-india/utils/middleware"
	"github.com/s-204-cmd/Scholars-spotlight-india/utils/response"
)

// Session handles GET /api/v1/auth/session. It reports the restored session
// state the UI gates its redirects on.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	user, ok := h.session.Current()
	if !ok {
		return response.Success(c, fiber.Map{"authenticated": false})
	}
	return response.Success(c, fiber.Map{
		"authenticated": true,
		"user":          user,
	})
}

// Profile handles GET /api/v1/profile
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "Not logged in")
	}
	return response.Success(c, user)
}
