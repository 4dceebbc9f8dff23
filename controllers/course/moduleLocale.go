package controllers

import (
	"github.com/gofiber/fiber/v2"

	"courseloc/middleware"
	validators "courseloc/validators/course"
)

// CreateModuleLocale adds a language's title/summary to a module. Ownership
// is checked through the parent course.
func (h *Handler) CreateModuleLocale(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonError(c, fiber.StatusInternalServerError, "unauthenticated", "acting user is not resolved")
	}
	moduleID := c.Locals("moduleID").(string)

	reqData, ok := c.Locals("validatedModuleLocale").(*validators.CreateModuleLocaleRequest)
	if !ok {
		return middleware.JsonError(c, fiber.StatusBadRequest, "invalid request data", "")
	}

	if err := h.Store.CreateModuleLocale(moduleID, userId, reqData.Lang, reqData.Title, reqData.Summary); err != nil {
		return storeError(c, err)
	}
	return middleware.JsonOK(c, fiber.StatusCreated, fiber.Map{"ok": true})
}

// UpdateModuleLocale patches a module locale with coalesce semantics.
func (h *Handler) UpdateModuleLocale(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonError(c, fiber.StatusInternalServerError, "unauthenticated", "acting user is not resolved")
	}
	moduleID := c.Locals("moduleID").(string)

	reqData, ok := c.Locals("validatedModuleLocaleUpdate").(*validators.UpdateModuleLocaleRequest)
	if !ok {
		return middleware.JsonError(c, fiber.StatusBadRequest, "invalid request data", "")
	}

	if err := h.Store.UpdateModuleLocale(moduleID, userId, reqData.Lang, reqData.Title, reqData.Summary); err != nil {
		return storeError(c, err)
	}
	return middleware.JsonOK(c, fiber.StatusOK, fiber.Map{"ok": true})
}
