package controllers

import (
	"github.com/gofiber/fiber/v2"

	"courseloc/middleware"
	validators "courseloc/validators/course"
)

// CreateCourseLocale adds a language's content to a course. A second create
// for the same (course, lang) pair gets 409 and leaves the row untouched.
func (h *Handler) CreateCourseLocale(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonError(c, fiber.StatusInternalServerError, "unauthenticated", "acting user is not resolved")
	}
	courseID := c.Locals("courseID").(string)

	reqData, ok := c.Locals("validatedCourseLocale").(*validators.CreateCourseLocaleRequest)
	if !ok {
		return middleware.JsonError(c, fiber.StatusBadRequest, "invalid request data", "")
	}

	if err := h.Store.CreateCourseLocale(courseID, userId, reqData.Lang, reqData.Title, reqData.Description); err != nil {
		return storeError(c, err)
	}
	return middleware.JsonOK(c, fiber.StatusCreated, fiber.Map{"ok": true})
}

// UpdateCourseLocale patches a course locale. Omitted fields keep their
// stored value.
func (h *Handler) UpdateCourseLocale(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonError(c, fiber.StatusInternalServerError, "unauthenticated", "acting user is not resolved")
	}
	courseID := c.Locals("courseID").(string)

	reqData, ok := c.Locals("validatedCourseLocaleUpdate").(*validators.UpdateCourseLocaleRequest)
	if !ok {
		return middleware.JsonError(c, fiber.StatusBadRequest, "invalid request data", "")
	}

	if err := h.Store.UpdateCourseLocale(courseID, userId, reqData.Lang, reqData.Title, reqData.Description); err != nil {
		return storeError(c, err)
	}
	return middleware.JsonOK(c, fiber.StatusOK, fiber.Map{"ok": true})
}
