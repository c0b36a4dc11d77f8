package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/s-204-cmd/Scholars-spotlight-india/services"
	"github.com/s-204-cmd/Scholars-spotlight-india/utils/response"
	"github.com/s-204-cmd/Scholars-spotlight-india/utils/validation"
)

// AuthHandler handles session-related requests against the identity store
type AuthHandler struct {
	session   *services.SessionService
	validator *validation.Validator
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(session *services.SessionService) *AuthHandler {
	return &AuthHandler{
		session:   session,
		validator: validation.NewValidator(),
	}
}

// LoginRequest represents a user login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles POST /api/v1/auth/login. Credentials are checked against the
// fixed demo table; a mismatch leaves any previous session untouched.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	user, err := h.session.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return response.Unauthorized(c, "Invalid email or password")
		}
		return response.InternalServerError(c, "Failed to save session")
	}

	return response.Success(c, fiber.Map{"user": user})
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.session.Logout(c.Context()); err != nil {
		return response.InternalServerError(c, "Failed to clear session")
	}
	return response.SuccessWithMessage(c, "Logged out successfully.", nil)
}
