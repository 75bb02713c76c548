package controllers

import (
	"time"

	"coursehub/backend/store"
	"coursehub/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	Courses store.CourseStore
}

func NewAuthController(courses store.CourseStore) *AuthController {
	return &AuthController{Courses: courses}
}

// [+] Login godoc
// @Summary Admin login
// @Description Compares credentials with the stored admin principal and sets the adminToken cookie
// @Tags admin
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /admin/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	admin, err := ac.Courses.Admin()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Login failed",
		})
	}

	// Простое сравнение строк — других пользователей в системе нет.
	if input.Username != admin.Username || input.Password != admin.Password {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	token := utils.GenerateAdminToken(input.Username, time.Now())
	c.Cookie(&fiber.Cookie{
		Name:     utils.AdminCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(utils.AdminTokenTTL.Seconds()),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
	})
}

// [+] Logout godoc
// @Summary Admin logout
// @Description Clears the adminToken cookie; always succeeds
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /admin/logout [post]
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     utils.AdminCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logout successful",
	})
}

// [+] Check godoc
// @Summary Report whether the caller holds a valid admin session
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /admin/check [get]
func (ac *AuthController) Check(c *fiber.Ctx) error {
	token := c.Cookies(utils.AdminCookieName)
	if token == "" || !utils.AdminTokenValid(token, time.Now()) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"authenticated": false,
		})
	}

	return c.JSON(fiber.Map{
		"authenticated": true,
	})
}
