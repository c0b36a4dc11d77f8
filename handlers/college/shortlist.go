package college

import (
	"github.com/gofiber/fiber/v2"
	"github.com/s-204-cmd/Scholars-spotlight-india/model"
	"github.com/s-204-cmd/Scholars-spotlight-india/utils/middleware"
	"github.com/s-204-cmd/Scholars-spotlight-india/utils/response"
)

// ShortlistCollege handles POST /api/v1/colleges/:id/shortlist. Idempotent:
// shortlisting an already-shortlisted college is a no-op.
func (h *CollegeHandler) ShortlistCollege(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "Not logged in")
	}

	id := c.Params("id")
	if err := h.catalog.Shortlist(c.Context(), id, user.ID); err != nil {
		return response.InternalServerError(c, "Failed to save shortlist")
	}
	return response.SuccessWithMessage(c, "College has been added to your shortlist.", nil)
}

// RemoveFromShortlist handles DELETE /api/v1/colleges/:id/shortlist
func (h *CollegeHandler) RemoveFromShortlist(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "Not logged in")
	}

	id := c.Params("id")
	if err := h.catalog.Unshortlist(c.Context(), id, user.ID); err != nil {
		return response.InternalServerError(c, "Failed to save shortlist")
	}
	return response.SuccessWithMessage(c, "College has been removed from your shortlist.", nil)
}

// IsShortlisted handles GET /api/v1/colleges/:id/shortlist
func (h *CollegeHandler) IsShortlisted(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "Not logged in")
	}

	id := c.Params("id")
	return response.Success(c, fiber.Map{
		"collegeId":   id,
		"shortlisted": h.catalog.IsShortlisted(id, user.ID),
	})
}

// ListShortlisted handles GET /api/v1/shortlist. Shortlist entries are weak
// references: ids whose college has since been deleted are skipped, not
// removed from the user record.
func (h *CollegeHandler) ListShortlisted(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "Not logged in")
	}

	colleges := make([]model.College, 0, len(user.ShortlistedColleges))
	for _, id := range user.ShortlistedColleges {
		if college, found := h.catalog.Get(id); found {
			colleges = append(colleges, college)
		}
	}
	return response.Success(c, colleges)
}
