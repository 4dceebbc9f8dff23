package middleware

import "github.com/gofiber/fiber/v2"

// JsonError writes the error body shape used by every endpoint:
// {error: string, detail?: string}.
func JsonError(c *fiber.Ctx, statusCode int, message string, detail string) error {
	body := fiber.Map{"error": message}
	if detail != "" {
		body["detail"] = detail
	}
	return c.Status(statusCode).JSON(body)
}

// JsonOK writes a success body with the given status code.
func JsonOK(c *fiber.Ctx, statusCode int, data interface{}) error {
	return c.Status(statusCode).JSON(data)
}
