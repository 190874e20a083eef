package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetScores(c *fiber.Ctx) error {
	scores, err := handler.scoreService.BuildScores()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to calculate scores")
	}
	return c.JSON(scores)
}
