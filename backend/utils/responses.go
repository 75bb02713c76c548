package utils

import (
	"github.com/gofiber/fiber/v2"
)

// Error создает JSON ответ с ошибкой: {"error": "..."}.
// Все ошибки наружу уходят именно в этой форме.
func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

// Unauthorized отправляет ответ 401 Unauthorized
func Unauthorized(c *fiber.Ctx) error {
	return Error(c, fiber.StatusUnauthorized, "Unauthorized")
}

// TooManyRequests отправляет ответ 429 Too Many Requests
func TooManyRequests(c *fiber.Ctx) error {
	return Error(c, fiber.StatusTooManyRequests, "Rate limit exceeded")
}
