package services

import (
	"errors"
	"strings"
	"time"

	"github.com/mishmeret-app/mishmeret/internal/models"
)

var ErrEmptyConstraintName = errors.New("constraint name is required")

type ConstraintDayRepository interface {
	ListByRange(fromStart time.Time, toEnd time.Time) ([]models.ConstraintDay, error)
	MergeEntry(dayStart time.Time, dayEnd time.Time, name string, entry models.ShiftConstraint) (models.ConstraintDay, error)
}

type ConstraintService struct {
	constraints ConstraintDayRepository
	location    *time.Location
}

func NewConstraintService(constraints ConstraintDayRepository, location *time.Location) *ConstraintService {
	if location == nil {
		location = time.UTC
	}
	return &ConstraintService{constraints: constraints, location: location}
}

// FetchRange returns constraint records in [from, to], inclusive, ascending.
func (service *ConstraintService) FetchRange(from time.Time, to time.Time) ([]models.ConstraintDay, error) {
	fromStart, toEnd := InclusiveRange(from, to, service.location)
	return service.constraints.ListByRange(fromStart, toEnd)
}

// SetPersonConstraint overwrites one person's flags on one date, merging into
// whatever other people already declared for that date.
func (service *ConstraintService) SetPersonConstraint(day time.Time, name string, entry models.ShiftConstraint) (models.ConstraintDay, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return models.ConstraintDay{}, ErrEmptyConstraintName
	}
	dayStart, dayEnd := DayRange(day, service.location)
	return service.constraints.MergeEntry(dayStart, dayEnd, trimmed, entry)
}

// AvailabilityIndex answers "may this person take this slot on this day"
// from a week's worth of constraint records, keyed by day string.
type AvailabilityIndex struct {
	byDay    map[string]map[string]models.ShiftConstraint
	location *time.Location
}

func (service *ConstraintService) BuildAvailabilityIndex(from time.Time, to time.Time) (AvailabilityIndex, error) {
	records, err := service.FetchRange(from, to)
	if err != nil {
		return AvailabilityIndex{}, err
	}
	return NewAvailabilityIndex(records, service.location), nil
}

func NewAvailabilityIndex(records []models.ConstraintDay, location *time.Location) AvailabilityIndex {
	if location == nil {
		location = time.UTC
	}
	byDay := make(map[string]map[string]models.ShiftConstraint, len(records))
	for _, record := range records {
		byDay[DayKey(record.Date, location)] = record.Entries
	}
	return AvailabilityIndex{byDay: byDay, location: location}
}

// IsAvailable maps second/main slots to the day flag and night slots to the
// night flag. No record, or no entry for the person, means available.
func (index AvailabilityIndex) IsAvailable(day time.Time, person string, shiftKind string) bool {
	entries, ok := index.byDay[DayKey(day, index.location)]
	if !ok {
		return true
	}
	entry, ok := entries[person]
	if !ok {
		return true
	}
	if shiftKind == models.ShiftKindNight {
		return !entry.Night
	}
	return !entry.Day
}
