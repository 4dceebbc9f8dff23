package courseValidator

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"courseloc/middleware"
	"courseloc/models"
)

var validate = validator.New()

// CreateCourseRequest is the input contract for POST /courses.
type CreateCourseRequest struct {
	Lang        string  `json:"lang" validate:"required"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// CourseID validates the :id path param as a canonical UUID and stores it
// in the request context. Malformed ids never reach the store.
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := strings.TrimSpace(c.Params("id"))
		if len(id) != 36 {
			return middleware.JsonError(c, fiber.StatusBadRequest, "invalid course id", "")
		}
		if _, err := uuid.Parse(id); err != nil {
			return middleware.JsonError(c, fiber.StatusBadRequest, "invalid course id", "")
		}
		c.Locals("courseID", id)
		return c.Next()
	}
}

// LangQuery validates the ?lang query param against the closed language set.
func LangQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lang := strings.TrimSpace(c.Query("lang"))
		if !models.IsSupportedLang(lang) {
			return middleware.JsonError(c, fiber.StatusBadRequest, "unsupported language", "lang must be one of: "+strings.Join(models.SupportedLangs, ", "))
		}
		c.Locals("lang", lang)
		return c.Next()
	}
}

// CreateCourse validates the course creation body
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)

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
		if err := validate.Struct(reqData); err != nil {
			return middleware.JsonError(c, fiber.StatusBadRequest, "validation failed", err.Error())
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}
