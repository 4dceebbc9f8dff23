package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"courseloc/middleware"
	"courseloc/store"
)

// Handler carries the store into the route handlers. It is constructed once
// at startup with the process-lifetime pool.
type Handler struct {
	Store *store.Store
}

// NewHandler creates a Handler over the given store.
func NewHandler(s *store.Store) *Handler {
	return &Handler{Store: s}
}

// storeError maps store sentinel errors to the HTTP taxonomy. Unclassified
// failures become 500 with a short diagnostic, never a stack trace.
func storeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, store.ErrPermissionDenied):
		return middleware.JsonError(c, fiber.StatusForbidden, "forbidden", "")
	case errors.Is(err, store.ErrNotFound):
		return middleware.JsonError(c, fiber.StatusNotFound, "not found", "")
	case errors.Is(err, store.ErrConflict):
		return middleware.JsonError(c, fiber.StatusConflict, "conflict", "")
	default:
		return middleware.JsonError(c, fiber.StatusInternalServerError, "store failure", err.Error())
	}
}
