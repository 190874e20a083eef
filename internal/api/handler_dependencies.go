package api

import (
	"github.com/mishmeret-app/mishmeret/internal/db"
	"github.com/mishmeret-app/mishmeret/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.rosterService = services.NewRosterService(handler.repositories.TeamMembers)
	handler.scheduleService = services.NewScheduleService(handler.repositories.DutyDays, handler.location)
	handler.constraintService = services.NewConstraintService(handler.repositories.Constraints, handler.location)
	handler.scoreService = services.NewScoreService(handler.scheduleService, handler.rosterService, handler.location)
	handler.weekService = services.NewWeekService(handler.scheduleService, handler.constraintService, handler.rosterService, handler.location)
	handler.statusService = services.NewStatusService(handler.scheduleService, handler.location)
	return handler
}

// StatusService exposes the current-shift reader so main can wire the Slack
// announcer to the same view the API serves.
func (handler *Handler) StatusService() *services.StatusService {
	return handler.statusService
}
