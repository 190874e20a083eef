package services

import (
	"time"

	"github.com/mishmeret-app/mishmeret/internal/models"
)

type ScoreDayReader interface {
	FetchAll() ([]models.DutyDay, error)
}

type ScoreRosterReader interface {
	ListActiveNames(category string) ([]string, error)
}

type ScoreService struct {
	days     ScoreDayReader
	roster   ScoreRosterReader
	location *time.Location
}

func NewScoreService(days ScoreDayReader, roster ScoreRosterReader, location *time.Location) *ScoreService {
	if location == nil {
		location = time.UTC
	}
	return &ScoreService{days: days, roster: roster, location: location}
}

// BuildScores recomputes the fairness table from the full duty history on
// every call. At this data volume a full rescan is cheaper than keeping an
// incremental tally consistent with edits to past weeks.
func (service *ScoreService) BuildScores() ([]ScoreEntry, error) {
	regularNames, err := service.roster.ListActiveNames(models.CategoryRegular)
	if err != nil {
		return nil, err
	}

	days, err := service.days.FetchAll()
	if err != nil {
		return nil, err
	}

	return ComputeScores(days, regularNames, service.location), nil
}
