package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mishmeret-app/mishmeret/internal/models"
)

func (handler *Handler) GetSchedules(c *fiber.Ctx) error {
	if c.Query("start") == "" || c.Query("end") == "" {
		return apiError(c, fiber.StatusBadRequest, "missing start or end date")
	}

	start, end, err := parseRangeQuery(c.Query("start"), c.Query("end"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date range")
	}

	days, err := handler.scheduleService.FetchRange(start, end)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch schedules")
	}
	return c.JSON(days)
}

type upsertScheduleInput struct {
	Date   string          `json:"date"`
	Shifts models.ShiftSet `json:"shifts"`
}

func (handler *Handler) UpsertSchedule(c *fiber.Ctx) error {
	input := upsertScheduleInput{Shifts: models.EmptyShiftSet()}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	day, err := parseDayParam(input.Date, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	record, err := handler.scheduleService.UpsertDay(day, input.Shifts)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save schedule")
	}
	return c.JSON(record)
}
