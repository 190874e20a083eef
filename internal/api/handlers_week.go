package api

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/mishmeret-app/mishmeret/internal/models"
	"github.com/mishmeret-app/mishmeret/internal/services"
)

func (handler *Handler) GetWeek(c *fiber.Ctx) error {
	start, err := parseDayParam(c.Query("start"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid start date")
	}

	week, err := handler.weekService.BuildWeek(start)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build week")
	}
	return c.JSON(fiber.Map{"days": week})
}

type saveWeekDayInput struct {
	Date   string          `json:"date"`
	Shifts models.ShiftSet `json:"shifts"`
}

type saveWeekInput struct {
	Days []saveWeekDayInput `json:"days"`
}

// SaveWeek commits a staged week in one request. Each date is reported
// individually so a partial failure is visible and retryable instead of
// collapsing into a single all-or-nothing flag.
func (handler *Handler) SaveWeek(c *fiber.Ctx) error {
	input := saveWeekInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if len(input.Days) == 0 {
		return apiError(c, fiber.StatusBadRequest, "days are required")
	}

	batch := make([]services.WeekDayInput, 0, len(input.Days))
	for _, dayInput := range input.Days {
		day, err := parseDayParam(dayInput.Date, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid date in batch")
		}
		batch = append(batch, services.WeekDayInput{Date: day, Shifts: dayInput.Shifts})
	}

	results := handler.weekService.SaveWeek(batch)

	failed := 0
	for _, result := range results {
		if result.Error != "" {
			failed++
		}
	}
	if editor, ok := currentEditor(c); ok {
		log.Printf("week save by %s: %d days, %d failed", editor, len(results), failed)
	}
	return c.JSON(fiber.Map{"results": results, "failed": failed})
}
