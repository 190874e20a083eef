package services

import (
	"errors"
	"time"

	"github.com/mishmeret-app/mishmeret/internal/models"
)

var (
	ErrScheduleLoadFailed = errors.New("load schedule failed")
	ErrScheduleSaveFailed = errors.New("save schedule failed")
)

type ScheduleDayRepository interface {
	ListByRange(fromStart time.Time, toEnd time.Time) ([]models.DutyDay, error)
	ListAll() ([]models.DutyDay, error)
	FindByDayRange(dayStart time.Time, dayEnd time.Time) (models.DutyDay, bool, error)
	Create(day *models.DutyDay) error
	Save(day *models.DutyDay) error
}

type ScheduleService struct {
	days     ScheduleDayRepository
	location *time.Location
}

func NewScheduleService(days ScheduleDayRepository, location *time.Location) *ScheduleService {
	if location == nil {
		location = time.UTC
	}
	return &ScheduleService{days: days, location: location}
}

// FetchRange returns duty days in [from, to], both bounds inclusive, ordered
// by date ascending.
func (service *ScheduleService) FetchRange(from time.Time, to time.Time) ([]models.DutyDay, error) {
	fromStart, toEnd := InclusiveRange(from, to, service.location)
	return service.days.ListByRange(fromStart, toEnd)
}

func (service *ScheduleService) FetchAll() ([]models.DutyDay, error) {
	return service.days.ListAll()
}

func (service *ScheduleService) FetchByDate(day time.Time) (models.DutyDay, bool, error) {
	dayStart, dayEnd := DayRange(day, service.location)
	return service.days.FindByDayRange(dayStart, dayEnd)
}

// UpsertDay replaces the whole slot set for one date, creating the record if
// the date is new. The slot set is normalized before it is written so a slot
// with assignees but no mode always lands as phone.
func (service *ScheduleService) UpsertDay(day time.Time, shifts models.ShiftSet) (models.DutyDay, error) {
	shifts.Normalize()
	dayStart, dayEnd := DayRange(day, service.location)

	record, found, err := service.days.FindByDayRange(dayStart, dayEnd)
	if err != nil {
		return models.DutyDay{}, ErrScheduleLoadFailed
	}

	if found {
		record.Shifts = shifts
		if err := service.days.Save(&record); err != nil {
			return models.DutyDay{}, ErrScheduleSaveFailed
		}
		return record, nil
	}

	record = models.DutyDay{
		Date:   dayStart,
		Shifts: shifts,
	}
	if err := service.days.Create(&record); err != nil {
		return models.DutyDay{}, ErrScheduleSaveFailed
	}
	return record, nil
}
