package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/s-204-cmd/Scholars-spotlight-india/model"
	"github.com/s-204-cmd/Scholars-spotlight-india/utils/response"
	"github.com/s-204-cmd/Scholars-spotlight-india/utils/validation"
)

// SignupRequest represents a user registration request. The academic fields
// are optional profile data from the signup form.
type SignupRequest struct {
	Name               string  `json:"name" validate:"required,min=2,max=255"`
	Email              string  `json:"email" validate:"required,email"`
	Password           string  `json:"password" validate:"required"`
	AcademicBackground string  `json:"academicBackground"`
	Percentage         float64 `json:"percentage"`
	Stream             string  `json:"stream"`
	Age                int     `json:"age"`
	Gender             string  `json:"gender"`
}

// Signup handles POST /api/v1/auth/signup. Registration is mock: it always
// succeeds, with no duplicate-email check and no password rules, and the new
// user becomes the current session.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	profile := model.SignupProfile{
		Name:               validation.SanitizeString(req.Name),
		Email:              validation.SanitizeString(req.Email),
		AcademicBackground: req.AcademicBackground,
		Percentage:         req.Percentage,
		Stream:             req.Stream,
		Age:                req.Age,
		Gender:             req.Gender,
	}

	user, err := h.session.Signup(c.Context(), profile, req.Password)
	if err != nil {
		return response.InternalServerError(c, "Failed to save session")
	}

	return response.Created(c, "Account created successfully.", fiber.Map{"user": user})
}
