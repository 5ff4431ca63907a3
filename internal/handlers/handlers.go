// Package handlers maps the HTTP surface onto the services. Every response
// is a JSON envelope carrying a "status" of "success" or "fail"; failure
// messages describe the class of problem, never the offending field.
package handlers

import "github.com/gofiber/fiber/v2"

// fail writes the standard failure envelope.
func fail(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"status":  "fail",
		"message": message,
	})
}
