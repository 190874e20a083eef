package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/mishmeret-app/mishmeret/internal/services"
)

func (handler *Handler) GetTeamMembers(c *fiber.Ctx) error {
	members, err := handler.rosterService.ListActive(c.Query("category"))
	if err != nil {
		if errors.Is(err, services.ErrUnknownCategory) {
			return apiError(c, fiber.StatusBadRequest, "unknown category")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch team members")
	}
	return c.JSON(members)
}

type upsertMemberInput struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"type"`
	DisplayOrder int    `json:"order"`
	Active       *bool  `json:"active"`
}

func (handler *Handler) UpsertTeamMember(c *fiber.Ctx) error {
	input := upsertMemberInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	member, err := handler.rosterService.Upsert(services.MemberInput{
		ID:           input.ID,
		Name:         input.Name,
		Category:     input.Category,
		DisplayOrder: input.DisplayOrder,
		Active:       input.Active,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyMemberName):
			return apiError(c, fiber.StatusBadRequest, "name is required")
		case errors.Is(err, services.ErrUnknownCategory):
			return apiError(c, fiber.StatusBadRequest, "unknown category")
		case errors.Is(err, services.ErrMemberNotFound):
			return apiError(c, fiber.StatusNotFound, "team member not found")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to save team member")
		}
	}
	return c.JSON(member)
}

func (handler *Handler) DeleteTeamMember(c *fiber.Ctx) error {
	memberID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || memberID == 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid member id")
	}

	if err := handler.rosterService.SoftDelete(uint(memberID)); err != nil {
		if errors.Is(err, services.ErrMemberNotFound) {
			return apiError(c, fiber.StatusNotFound, "team member not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete team member")
	}
	return c.JSON(fiber.Map{"success": true})
}

func (handler *Handler) SeedTeam(c *fiber.Ctx) error {
	count, seeded, err := handler.rosterService.SeedDefaults()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to seed team members")
	}

	message := "team members already exist"
	if seeded {
		message = "team members seeded"
	}
	return c.JSON(fiber.Map{"message": message, "count": count})
}
