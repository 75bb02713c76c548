package middleware

import (
	"time"

	"coursehub/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminRequired пропускает запрос только с валидным adminToken cookie.
// Проверка везде одна и та же: токен декодируется, должен состоять ровно
// из двух частей (имя и числовой timestamp) и быть моложе 24 часов.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(utils.AdminCookieName)
		if token == "" || !utils.AdminTokenValid(token, time.Now()) {
			return utils.Unauthorized(c)
		}
		return c.Next()
	}
}
