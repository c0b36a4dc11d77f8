package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/s-204-cmd/Scholars-spotlight-india/model"
	"github.com/s-204-cmd/Scholars-spotlight-india/services"
	"github.com/s-204-cmd/Scholars-spotlight-india/utils/response"
)

// SessionMiddleware attaches the current mock session to requests. There are
// no tokens: the identity store holds exactly one session and these guards
// just read it.
type SessionMiddleware struct {
	session *services.SessionService
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(session *services.SessionService) *SessionMiddleware {
	return &SessionMiddleware{session: session}
}

// RequireSession rejects the request unless a user is logged in.
func (m *SessionMiddleware) RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := m.session.Current()
		if !ok {
			return response.Unauthorized(c, "Not logged in")
		}
		c.Locals("user", &user)
		return c.Next()
	}
}

// RequireAdmin rejects the request unless the current user is an admin.
func (m *SessionMiddleware) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := m.session.Current()
		if !ok {
			return response.Unauthorized(c, "Not logged in")
		}
		if user.Role != model.RoleAdmin {
			return response.Forbidden(c, "Only administrators can manage colleges")
		}
		c.Locals("user", &user)
		return c.Next()
	}
}

// GetUser retrieves the session user attached by the middleware.
func GetUser(c *fiber.Ctx) (*model.User, bool) {
	user, ok := c.Locals("user").(*model.User)
	return user, ok && user != nil
}
