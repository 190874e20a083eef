package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.Logout)
	auth.Get("/session", handler.Session)

	schedule := api.Group("/schedule")
	schedule.Get("", handler.GetSchedules)
	schedule.Post("", handler.AuthRequired, handler.UpsertSchedule)

	week := api.Group("/week")
	week.Get("", handler.GetWeek)
	week.Post("", handler.AuthRequired, handler.SaveWeek)

	constraints := api.Group("/constraints")
	constraints.Get("", handler.GetConstraints)
	constraints.Post("", handler.AuthRequired, handler.SetConstraint)

	team := api.Group("/team")
	team.Get("", handler.GetTeamMembers)
	team.Post("", handler.AuthRequired, handler.UpsertTeamMember)
	team.Post("/seed", handler.AuthRequired, handler.SeedTeam)
	team.Delete("/:id", handler.AuthRequired, handler.DeleteTeamMember)

	api.Get("/scores", handler.GetScores)
	api.Get("/status/current", handler.CurrentStatus)
	api.Get("/cleaning/current", handler.CurrentCleaningTeam)
}
