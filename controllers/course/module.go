package controllers

import (
	"github.com/gofiber/fiber/v2"

	"courseloc/middleware"
)

// CreateModule appends a module to a course. The order index is assigned
// inside the store's transaction; concurrent creates never share an index.
func (h *Handler) CreateModule(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonError(c, fiber.StatusInternalServerError, "unauthenticated", "acting user is not resolved")
	}
	courseID := c.Locals("courseID").(string)

	module, err := h.Store.CreateModule(courseID, userId)
	if err != nil {
		return storeError(c, err)
	}
	return middleware.JsonOK(c, fiber.StatusCreated, fiber.Map{
		"id":          module.ID,
		"order_index": module.OrderIndex,
	})
}

// GetOutline is a public read of a course's modules in order, annotated
// with locale presence for the requested language.
func (h *Handler) GetOutline(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(string)
	lang := c.Locals("lang").(string)

	outline, err := h.Store.GetOutline(courseID, lang)
	if err != nil {
		return storeError(c, err)
	}
	return middleware.JsonOK(c, fiber.StatusOK, outline)
}
