package api

import (
	"time"

	"github.com/mishmeret-app/mishmeret/internal/db"
	"github.com/mishmeret-app/mishmeret/internal/services"
	"gorm.io/gorm"
)

const sessionCookieName = "mishmeret_session"

const defaultSessionTTL = 7 * 24 * time.Hour

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	verifier     services.CredentialVerifier

	repositories      *db.Repositories
	rosterService     *services.RosterService
	scheduleService   *services.ScheduleService
	constraintService *services.ConstraintService
	scoreService      *services.ScoreService
	weekService       *services.WeekService
	statusService     *services.StatusService
}

func NewHandler(database *gorm.DB, secret string, location *time.Location, verifier services.CredentialVerifier, cookieSecure bool) *Handler {
	if location == nil {
		location = time.UTC
	}
	handler := &Handler{
		db:           database,
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
		verifier:     verifier,
	}
	return handler.withDependencies(database)
}
