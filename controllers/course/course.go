package controllers

import (
	"github.com/gofiber/fiber/v2"

	"courseloc/middleware"
	validators "courseloc/validators/course"
)

// GetAllCourses lists the acting user's courses with titles resolved for
// the requested language.
func (h *Handler) GetAllCourses(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonError(c, fiber.StatusInternalServerError, "unauthenticated", "acting user is not resolved")
	}
	lang := c.Locals("lang").(string)

	summaries, err := h.Store.ListCourses(userId, lang)
	if err != nil {
		return storeError(c, err)
	}
	return middleware.JsonOK(c, fiber.StatusOK, summaries)
}

// CreateCourse creates a course together with its first locale.
func (h *Handler) CreateCourse(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonError(c, fiber.StatusInternalServerError, "unauthenticated", "acting user is not resolved")
	}

	reqData, ok := c.Locals("validatedCourse").(*validators.CreateCourseRequest)
	if !ok {
		return middleware.JsonError(c, fiber.StatusBadRequest, "invalid request data", "")
	}

	id, err := h.Store.CreateCourse(userId, reqData.Lang, reqData.Title, reqData.Description)
	if err != nil {
		return storeError(c, err)
	}
	return middleware.JsonOK(c, fiber.StatusCreated, fiber.Map{"id": id})
}

// GetCourseDetails is a public course read. The missing flag tells the
// caller the course exists but has no content for the requested language.
func (h *Handler) GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(string)
	lang := c.Locals("lang").(string)

	detail, err := h.Store.GetCourse(courseID, lang)
	if err != nil {
		return storeError(c, err)
	}
	return middleware.JsonOK(c, fiber.StatusOK, detail)
}
