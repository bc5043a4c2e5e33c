// Package presenter holds the response shapes shared by all benchboard
// handlers, so consultant, shortlist and leave endpoints fail the same way.
package presenter

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the uniform error body. The message is safe to show to
// the caller; internals stay in the server log.
type ErrorResponse struct {
	Message string `json:"message"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}
