package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mishmeret-app/mishmeret/internal/services"
)

func (handler *Handler) CurrentStatus(c *fiber.Ctx) error {
	status, err := handler.statusService.CurrentStatus(time.Now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch current status")
	}
	return c.JSON(status)
}

func (handler *Handler) CurrentCleaningTeam(c *fiber.Ctx) error {
	return c.JSON(services.CleaningTeamForWeek(time.Now(), handler.location))
}
