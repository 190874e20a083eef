package services

import (
	"time"

	"github.com/mishmeret-app/mishmeret/internal/models"
)

const (
	dayShiftStartHour = 8
	dayShiftEndHour   = 20
)

type StatusDayReader interface {
	FetchByDate(day time.Time) (models.DutyDay, bool, error)
}

type StatusService struct {
	days     StatusDayReader
	location *time.Location
}

func NewStatusService(days StatusDayReader, location *time.Location) *StatusService {
	if location == nil {
		location = time.UTC
	}
	return &StatusService{days: days, location: location}
}

type StatusView struct {
	Date        string   `json:"date"`
	Role        string   `json:"role"`
	Names       []string `json:"names"`
	SecondNames []string `json:"secondNames"`
	Mode        string   `json:"mode"`
	Assigned    bool     `json:"assigned"`
}

// CurrentStatus resolves who is on call at the given instant. The main slot
// covers 08:00-20:00 local; outside that window the night slot applies, and
// before 08:00 the night shift still belongs to the previous calendar day.
func (service *StatusService) CurrentStatus(now time.Time) (StatusView, error) {
	localNow := now.In(service.location)
	hour := localNow.Hour()

	role := models.ShiftKindNight
	if hour >= dayShiftStartHour && hour < dayShiftEndHour {
		role = models.ShiftKindMain
	}

	queryDay := localNow
	if hour < dayShiftStartHour {
		queryDay = localNow.AddDate(0, 0, -1)
	}

	view := StatusView{
		Date:        DayKey(queryDay, service.location),
		Role:        role,
		Names:       []string{},
		SecondNames: []string{},
		Mode:        models.ModePhone,
	}

	record, found, err := service.days.FetchByDate(queryDay)
	if err != nil {
		return StatusView{}, err
	}
	if !found {
		return view, nil
	}

	slot := record.Shifts.Night
	if role == models.ShiftKindMain {
		slot = record.Shifts.Main
	}
	slot.Normalize()

	view.Names = slot.Assignees
	view.SecondNames = record.Shifts.Second.Assignees
	if view.SecondNames == nil {
		view.SecondNames = []string{}
	}
	view.Mode = slot.Mode
	view.Assigned = len(slot.Assignees) > 0
	return view, nil
}
