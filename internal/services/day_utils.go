package services

import "time"

// DateAtLocation truncates an instant to the calendar midnight of the given
// location. All persisted dates go through this first.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

// InclusiveRange converts inclusive [from, to] day bounds into the half-open
// [fromStart, toEnd) window the repositories query with.
func InclusiveRange(from time.Time, to time.Time, location *time.Location) (time.Time, time.Time) {
	fromStart, _ := DayRange(from, location)
	_, toEnd := DayRange(to, location)
	return fromStart, toEnd
}

func DayKey(value time.Time, location *time.Location) string {
	return DateAtLocation(value, location).Format("2006-01-02")
}

func WeekDays(start time.Time, location *time.Location) []time.Time {
	weekStart := DateAtLocation(start, location)
	days := make([]time.Time, 0, 7)
	for offset := 0; offset < 7; offset++ {
		days = append(days, weekStart.AddDate(0, 0, offset))
	}
	return days
}
