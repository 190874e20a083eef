package api

import "github.com/gofiber/fiber/v2"

const contextEditorKey = "editor"

// AuthRequired gates mutating routes. Read-only views stay public, matching
// the team's dashboard usage.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	token := sessionTokenFromRequest(c)
	if token == "" {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	username, err := handler.parseSessionToken(token)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	c.Locals(contextEditorKey, username)
	return c.Next()
}

func currentEditor(c *fiber.Ctx) (string, bool) {
	username, ok := c.Locals(contextEditorKey).(string)
	return username, ok && username != ""
}
