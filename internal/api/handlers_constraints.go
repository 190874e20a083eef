package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mishmeret-app/mishmeret/internal/models"
	"github.com/mishmeret-app/mishmeret/internal/services"
)

func (handler *Handler) GetConstraints(c *fiber.Ctx) error {
	if c.Query("start") == "" || c.Query("end") == "" {
		return apiError(c, fiber.StatusBadRequest, "missing start or end date")
	}

	start, end, err := parseRangeQuery(c.Query("start"), c.Query("end"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date range")
	}

	records, err := handler.constraintService.FetchRange(start, end)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch constraints")
	}
	return c.JSON(records)
}

type setConstraintInput struct {
	Date        string                 `json:"date"`
	Name        string                 `json:"name"`
	Constraints models.ShiftConstraint `json:"constraints"`
}

func (handler *Handler) SetConstraint(c *fiber.Ctx) error {
	input := setConstraintInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	day, err := parseDayParam(input.Date, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	record, err := handler.constraintService.SetPersonConstraint(day, input.Name, input.Constraints)
	if err != nil {
		if errors.Is(err, services.ErrEmptyConstraintName) {
			return apiError(c, fiber.StatusBadRequest, "name is required")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save constraint")
	}
	return c.JSON(record)
}
