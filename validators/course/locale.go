package courseValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"courseloc/middleware"
	"courseloc/models"
)

// CreateCourseLocaleRequest is the input contract for POST /courses/:id/locale.
type CreateCourseLocaleRequest struct {
	Lang        string `json:"lang" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

// UpdateCourseLocaleRequest is the input contract for PATCH /courses/:id/locale.
// Nil fields keep their stored value. Lang is checked against the closed set
// in the validator itself, so the struct carries no validate tags.
type UpdateCourseLocaleRequest struct {
	Lang        string  `json:"lang"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// CreateModuleLocaleRequest is the input contract for POST /modules/:id/locale.
type CreateModuleLocaleRequest struct {
	Lang    string `json:"lang" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Summary string `json:"summary"`
}

// UpdateModuleLocaleRequest is the input contract for PATCH /modules/:id/locale.
// Lang is checked against the closed set in the validator itself.
type UpdateModuleLocaleRequest struct {
	Lang    string  `json:"lang"`
	Title   *string `json:"title"`
	Summary *string `json:"summary"`
}

// ModuleID validates the :id path param of module routes as a canonical UUID.
func ModuleID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := strings.TrimSpace(c.Params("id"))
		if len(id) != 36 {
			return middleware.JsonError(c, fiber.StatusBadRequest, "invalid module id", "")
		}
		if _, err := uuid.Parse(id); err != nil {
			return middleware.JsonError(c, fiber.StatusBadRequest, "invalid module id", "")
		}
		c.Locals("moduleID", id)
		return c.Next()
	}
}

// CreateCourseLocale validates the course locale creation body
func CreateCourseLocale() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseLocaleRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonError(c, fiber.StatusBadRequest, "invalid request body", "")
		}
		if !models.IsSupportedLang(reqData.Lang) {
			return middleware.JsonError(c, fiber.StatusBadRequest, "unsupported language", "lang must be one of: "+strings.Join(models.SupportedLangs, ", "))
		}
		reqData.Title = strings.TrimSpace(reqData.Title)
		if err := validate.Struct(reqData); err != nil {
			return middleware.JsonError(c, fiber.StatusBadRequest, "validation failed", "title is required")
		}

		c.Locals("validatedCourseLocale", reqData)
		return c.Next()
	}
}

// UpdateCourseLocale validates the course locale patch body
func UpdateCourseLocale() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCourseLocaleRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonError(c, fiber.StatusBadRequest, "invalid request body", "")
		}
		if !models.IsSupportedLang(reqData.Lang) {
			return middleware.JsonError(c, fiber.StatusBadRequest, "unsupported language", "lang must be one of: "+strings.Join(models.SupportedLangs, ", "))
		}
		if reqData.Title != nil {
			trimmed := strings.TrimSpace(*reqData.Title)
			if trimmed == "" {
				return middleware.JsonError(c, fiber.StatusBadRequest, "invalid title", "title must not be blank when supplied")
			}
			reqData.Title = &trimmed
		}

		c.Locals("validatedCourseLocaleUpdate", reqData)
		return c.Next()
	}
}

// CreateModuleLocale validates the module locale creation body
func CreateModuleLocale() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateModuleLocaleRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonError(c, fiber.StatusBadRequest, "invalid request body", "")
		}
		if !models.IsSupportedLang(reqData.Lang) {
			return middleware.JsonError(c, fiber.StatusBadRequest, "unsupported language", "lang must be one of: "+strings.Join(models.SupportedLangs, ", "))
		}
		reqData.Title = strings.TrimSpace(reqData.Title)
		if err := validate.Struct(reqData); err != nil {
			return middleware.JsonError(c, fiber.StatusBadRequest, "validation failed", "title is required")
		}

		c.Locals("validatedModuleLocale", reqData)
		return c.Next()
	}
}

// UpdateModuleLocale validates the module locale patch body
func UpdateModuleLocale() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateModuleLocaleRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonError(c, fiber.StatusBadRequest, "invalid request body", "")
		}
		if !models.IsSupportedLang(reqData.Lang) {
			return middleware.JsonError(c, fiber.StatusBadRequest, "unsupported language", "lang must be one of: "+strings.Join(models.SupportedLangs, ", "))
		}
		if reqData.Title != nil {
			trimmed := strings.TrimSpace(*reqData.Title)
			if trimmed == "" {
				return middleware.JsonError(c, fiber.StatusBadRequest, "invalid title", "title must not be blank when supplied")
			}
			reqData.Title = &trimmed
		}

		c.Locals("validatedModuleLocaleUpdate", reqData)
		return c.Next()
	}
}
