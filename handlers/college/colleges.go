package college

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/s-204-cmd/Scholars-spotlight-india/model"
	"github.com/s-204-cmd/Scholars-spotlight-india/services"
	"github.com/s-204-cmd/Scholars-spotlight-india/utils/coerce"
	"github.com/s-204-cmd/Scholars-spotlight-india/utils/response"
	"github.com/s-204-cmd/Scholars-spotlight-india/utils/validation"
)

// CollegeHandler handles catalog requests
type CollegeHandler struct {
	catalog   *services.CatalogService
	validator *validation.Validator
}

// NewCollegeHandler creates a new college handler
func NewCollegeHandler(catalog *services.CatalogService) *CollegeHandler {
	return &CollegeHandler{
		catalog:   catalog,
		validator: validation.NewValidator(),
	}
}

// feesInput accepts fee bounds as whatever the admin form sends; values are
// coerced at this boundary, never rejected.
type feesInput struct {
	Min interface{} `json:"min"`
	Max interface{} `json:"max"`
}

// CreateCollegeRequest represents the request body for adding a college.
// Numeric fields are loosely typed on purpose: malformed values fall back to
// the fixed defaults so demo data entry is never blocked.
type CreateCollegeRequest struct {
	Name             string            `json:"name" validate:"required,min=2,max=255"`
	Location         model.Location    `json:"location"`
	Ranking          interface{}       `json:"ranking"`
	Fees             feesInput         `json:"fees"`
	Courses          []string          `json:"courses" validate:"required,min=1"`
	Facilities       []string          `json:"facilities"`
	ImageURL         string            `json:"imageUrl" validate:"omitempty,url"`
	Description      string            `json:"description"`
	Website          string            `json:"website" validate:"omitempty,url"`
	ContactInfo      model.ContactInfo `json:"contactInfo"`
	AdmissionProcess string            `json:"admissionProcess"`
	EstablishedYear  interface{}       `json:"establishedYear"`
}

// UpdateCollegeRequest represents the request body for patching a college.
// Absent fields are retained; present nested objects replace the stored value
// wholesale.
type UpdateCollegeRequest struct {
	Name             *string            `json:"name" validate:"omitempty,min=2,max=255"`
	Location         *model.Location    `json:"location"`
	Ranking          interface{}        `json:"ranking"`
	Fees             *feesInput         `json:"fees"`
	Courses          *[]string          `json:"courses" validate:"omitempty,min=1"`
	Facilities       *[]string          `json:"facilities"`
	ImageURL         *string            `json:"imageUrl" validate:"omitempty,url"`
	Description      *string            `json:"description"`
	Website          *string            `json:"website" validate:"omitempty,url"`
	ContactInfo      *model.ContactInfo `json:"contactInfo"`
	Reviews          *[]model.Review    `json:"reviews"`
	AdmissionProcess *string            `json:"admissionProcess"`
	EstablishedYear  interface{}        `json:"establishedYear"`
}

// ListColleges handles GET /api/v1/colleges (the canonical collection)
func (h *CollegeHandler) ListColleges(c *fiber.Ctx) error {
	return response.Success(c, h.catalog.Colleges())
}

// SearchColleges handles GET /api/v1/colleges/search (the derived filtered view)
func (h *CollegeHandler) SearchColleges(c *fiber.Ctx) error {
	return response.Success(c, h.catalog.Filtered())
}

// GetCollege handles GET /api/v1/colleges/:id
func (h *CollegeHandler) GetCollege(c *fiber.Ctx) error {
	id := c.Params("id")

	college, ok := h.catalog.Get(id)
	if !ok {
		return response.NotFound(c, "College not found")
	}
	return response.Success(c, college)
}

// CreateCollege handles POST /api/v1/colleges (admin only)
func (h *CollegeHandler) CreateCollege(c *fiber.Ctx) error {
	var req CreateCollegeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	college := model.College{
		Name:     validation.SanitizeString(req.Name),
		Location: req.Location,
		Ranking:  coerce.Int(req.Ranking, coerce.DefaultRanking),
		Fees: model.FeeRange{
			Min: coerce.Int(req.Fees.Min, coerce.DefaultFeeMin),
			Max: coerce.Int(req.Fees.Max, coerce.DefaultFeeMax),
		},
		Courses:          req.Courses,
		Facilities:       req.Facilities,
		ImageURL:         req.ImageURL,
		Description:      req.Description,
		Website:          req.Website,
		ContactInfo:      req.ContactInfo,
		AdmissionProcess: req.AdmissionProcess,
		EstablishedYear:  coerce.Int(req.EstablishedYear, 0),
	}

	created, err := h.catalog.Add(c.Context(), college)
	if err != nil {
		return response.InternalServerError(c, "Failed to save college")
	}

	return response.Created(c, fmt.Sprintf("%s has been added successfully.", created.Name), created)
}

// UpdateCollege handles PUT /api/v1/colleges/:id (admin only)
func (h *CollegeHandler) UpdateCollege(c *fiber.Ctx) error {
	id := c.Params("id")

	if _, ok := h.catalog.Get(id); !ok {
		return response.NotFound(c, "College not found")
	}

	var req UpdateCollegeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	patch := model.CollegePatch{
		Name:             req.Name,
		Location:         req.Location,
		Courses:          req.Courses,
		Facilities:       req.Facilities,
		ImageURL:         req.ImageURL,
		Description:      req.Description,
		Website:          req.Website,
		ContactInfo:      req.ContactInfo,
		Reviews:          req.Reviews,
		AdmissionProcess: req.AdmissionProcess,
	}
	if req.Ranking != nil {
		ranking := coerce.Int(req.Ranking, coerce.DefaultRanking)
		patch.Ranking = &ranking
	}
	if req.Fees != nil {
		fees := model.FeeRange{
			Min: coerce.Int(req.Fees.Min, coerce.DefaultFeeMin),
			Max: coerce.Int(req.Fees.Max, coerce.DefaultFeeMax),
		}
		patch.Fees = &fees
	}
	if req.EstablishedYear != nil {
		year := coerce.Int(req.EstablishedYear, 0)
		patch.EstablishedYear = &year
	}

	if err := h.catalog.Update(c.Context(), id, patch); err != nil {
		return response.InternalServerError(c, "Failed to save college")
	}

	updated, _ := h.catalog.Get(id)
	return response.SuccessWithMessage(c, "College information has been updated successfully.", updated)
}

// DeleteCollege handles DELETE /api/v1/colleges/:id (admin only). Deleting an
// unknown id is a no-op and still reports success, matching the store's
// contract. Shortlists referencing the id keep their dangling entries.
func (h *CollegeHandler) DeleteCollege(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.catalog.Delete(c.Context(), id); err != nil {
		return response.InternalServerError(c, "Failed to save collection")
	}
	return response.SuccessWithMessage(c, "College has been removed successfully.", nil)
}

// GetFilters handles GET /api/v1/filters
func (h *CollegeHandler) GetFilters(c *fiber.Ctx) error {
	return response.Success(c, h.catalog.Filters())
}

// UpdateFilters handles PATCH /api/v1/filters. The body is shallow-merged
// into the active criteria: absent fields are retained, present fields
// replace the criterion wholesale (a zero value clears it). The updated
// criteria and the recomputed view are returned together.
func (h *CollegeHandler) UpdateFilters(c *fiber.Ctx) error {
	var patch model.FilterPatch
	if err := c.BodyParser(&patch); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	filters := h.catalog.UpdateFilters(patch)
	return response.Success(c, fiber.Map{
		"searchFilters":    filters,
		"filteredColleges": h.catalog.Filtered(),
	})
}
