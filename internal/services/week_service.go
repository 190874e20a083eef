package services

import (
	"time"

	"github.com/mishmeret-app/mishmeret/internal/models"
)

type WeekScheduleStore interface {
	FetchRange(from time.Time, to time.Time) ([]models.DutyDay, error)
	UpsertDay(day time.Time, shifts models.ShiftSet) (models.DutyDay, error)
}

type WeekConstraintReader interface {
	BuildAvailabilityIndex(from time.Time, to time.Time) (AvailabilityIndex, error)
}

type WeekRosterReader interface {
	ListActiveNames(category string) ([]string, error)
}

type WeekService struct {
	schedules   WeekScheduleStore
	constraints WeekConstraintReader
	roster      WeekRosterReader
	location    *time.Location
}

func NewWeekService(schedules WeekScheduleStore, constraints WeekConstraintReader, roster WeekRosterReader, location *time.Location) *WeekService {
	if location == nil {
		location = time.UTC
	}
	return &WeekService{
		schedules:   schedules,
		constraints: constraints,
		roster:      roster,
		location:    location,
	}
}

type WeekSlotView struct {
	Names     []string `json:"names"`
	Mode      string   `json:"mode"`
	NextMode  string   `json:"nextMode"`
	IsHoliday bool     `json:"isHoliday"`
	Eligible  []string `json:"eligible"`
}

type WeekDayView struct {
	Date    string       `json:"date"`
	Weekday int          `json:"weekday"`
	Second  WeekSlotView `json:"second"`
	Main    WeekSlotView `json:"main"`
	Night   WeekSlotView `json:"night"`
}

// BuildWeek assembles the editing surface for the seven days starting at
// start's local midnight: current assignments per slot plus the candidates
// whose constraints leave them available for that slot's category.
func (service *WeekService) BuildWeek(start time.Time) ([]WeekDayView, error) {
	days := WeekDays(start, service.location)
	weekStart := days[0]
	weekEnd := days[len(days)-1]

	records, err := service.schedules.FetchRange(weekStart, weekEnd)
	if err != nil {
		return nil, err
	}
	recorded := make(map[string]models.ShiftSet, len(records))
	for _, record := range records {
		recorded[DayKey(record.Date, service.location)] = record.Shifts
	}

	availability, err := service.constraints.BuildAvailabilityIndex(weekStart, weekEnd)
	if err != nil {
		return nil, err
	}

	candidates, err := service.roster.ListActiveNames("")
	if err != nil {
		return nil, err
	}

	views := make([]WeekDayView, 0, len(days))
	for _, day := range days {
		shifts, ok := recorded[DayKey(day, service.location)]
		if !ok {
			shifts = models.EmptyShiftSet()
		}

		views = append(views, WeekDayView{
			Date:    DayKey(day, service.location),
			Weekday: int(day.Weekday()),
			Second:  service.buildSlotView(shifts.Second, models.ShiftKindSecond, day, candidates, availability),
			Main:    service.buildSlotView(shifts.Main, models.ShiftKindMain, day, candidates, availability),
			Night:   service.buildSlotView(shifts.Night, models.ShiftKindNight, day, candidates, availability),
		})
	}
	return views, nil
}

func (service *WeekService) buildSlotView(slot models.ShiftSlot, shiftKind string, day time.Time, candidates []string, availability AvailabilityIndex) WeekSlotView {
	slot.Normalize()

	eligible := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		if availability.IsAvailable(day, candidate, shiftKind) {
			eligible = append(eligible, candidate)
		}
	}

	return WeekSlotView{
		Names:     slot.Assignees,
		Mode:      slot.Mode,
		NextMode:  models.NextMode(slot.Mode),
		IsHoliday: slot.IsHoliday,
		Eligible:  eligible,
	}
}

type WeekDayInput struct {
	Date   time.Time
	Shifts models.ShiftSet
}

type WeekDayResult struct {
	Date    string `json:"date"`
	Saved   bool   `json:"saved"`
	Skipped bool   `json:"skipped"`
	Error   string `json:"error,omitempty"`
}

// SaveWeek commits a batch of staged days, one upsert per non-empty day. A
// day whose slots carry no assignees and no holiday flag is skipped outright
// so all-empty days never accumulate records. Failures are reported per date
// and do not stop or roll back the rest of the batch.
func (service *WeekService) SaveWeek(inputs []WeekDayInput) []WeekDayResult {
	results := make([]WeekDayResult, 0, len(inputs))
	for _, input := range inputs {
		dateKey := DayKey(input.Date, service.location)

		shifts := input.Shifts
		shifts.Normalize()
		if shifts.IsEmpty() {
			results = append(results, WeekDayResult{Date: dateKey, Skipped: true})
			continue
		}

		if _, err := service.schedules.UpsertDay(input.Date, shifts); err != nil {
			results = append(results, WeekDayResult{Date: dateKey, Error: err.Error()})
			continue
		}
		results = append(results, WeekDayResult{Date: dateKey, Saved: true})
	}
	return results
}
