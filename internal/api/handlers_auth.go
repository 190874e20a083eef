package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

type loginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if strings.TrimSpace(input.Username) == "" || input.Password == "" {
		return apiError(c, fiber.StatusBadRequest, "username and password are required")
	}

	if handler.verifier == nil || !handler.verifier.Verify(input.Username, input.Password) {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	username := strings.TrimSpace(input.Username)
	if err := handler.setAuthCookie(c, username); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.JSON(fiber.Map{"ok": true, "username": username})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

// Session lets the client restore its editing state after a reload.
func (handler *Handler) Session(c *fiber.Ctx) error {
	token := sessionTokenFromRequest(c)
	if token == "" {
		return c.JSON(fiber.Map{"authenticated": false})
	}

	username, err := handler.parseSessionToken(token)
	if err != nil {
		return c.JSON(fiber.Map{"authenticated": false})
	}
	return c.JSON(fiber.Map{"authenticated": true, "username": username})
}
