package services

import (
	"sort"
	"time"

	"github.com/mishmeret-app/mishmeret/internal/models"
)

const (
	ScoreCategoryWeekend = "weekend"
	ScoreCategoryPartial = "partial"
	ScoreCategoryMidweek = "midweek"
)

type ScoreBreakdown struct {
	Weekend int `json:"weekend"`
	Partial int `json:"partial"`
	Midweek int `json:"midweek"`
}

type ScoreEntry struct {
	Name      string         `json:"name"`
	Score     float64        `json:"score"`
	Breakdown ScoreBreakdown `json:"breakdown"`
}

// ComputeScores turns the full duty history into a ranked fairness table.
// Only main and night slots score; the secondary shadow slot never does.
// Phone-mode assignments earn nothing, and only regular members accumulate
// points even when a reserve is listed on a scored slot. Every regular member
// gets an entry, including those with no qualifying shifts.
func ComputeScores(days []models.DutyDay, regularNames []string, location *time.Location) []ScoreEntry {
	if location == nil {
		location = time.UTC
	}

	totals := make(map[string]*ScoreEntry, len(regularNames))
	order := make([]string, 0, len(regularNames))
	for _, name := range regularNames {
		if _, exists := totals[name]; exists {
			continue
		}
		totals[name] = &ScoreEntry{Name: name}
		order = append(order, name)
	}

	for _, day := range days {
		weekday := day.Date.In(location).Weekday()
		scoreSlot(totals, day.Shifts.Main, models.ShiftKindMain, weekday)
		scoreSlot(totals, day.Shifts.Night, models.ShiftKindNight, weekday)
	}

	entries := make([]ScoreEntry, 0, len(order))
	for _, name := range order {
		entries = append(entries, *totals[name])
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	return entries
}

func scoreSlot(totals map[string]*ScoreEntry, slot models.ShiftSlot, shiftKind string, weekday time.Weekday) {
	if !models.IsScoringMode(slot.Mode) {
		return
	}

	points, category := classifyShift(slot.IsHoliday, weekday, shiftKind)
	for _, name := range slot.Assignees {
		entry, ok := totals[name]
		if !ok {
			continue
		}
		entry.Score += points
		switch category {
		case ScoreCategoryWeekend:
			entry.Breakdown.Weekend++
		case ScoreCategoryPartial:
			entry.Breakdown.Partial++
		default:
			entry.Breakdown.Midweek++
		}
	}
}

// classifyShift applies the weighting rules in priority order; the first
// match wins. A holiday flag beats the weekday entirely, so a holiday on a
// Tuesday still counts as a full weekend shift.
func classifyShift(isHoliday bool, weekday time.Weekday, shiftKind string) (float64, string) {
	switch {
	case isHoliday:
		return 2, ScoreCategoryWeekend
	case weekday == time.Friday:
		return 2, ScoreCategoryWeekend
	case weekday == time.Saturday && shiftKind == models.ShiftKindMain:
		return 2, ScoreCategoryWeekend
	case weekday == time.Saturday && shiftKind == models.ShiftKindNight:
		return 1.5, ScoreCategoryPartial
	case weekday == time.Thursday && shiftKind == models.ShiftKindNight:
		return 1.5, ScoreCategoryPartial
	default:
		// Thursday main and Sunday through Wednesday, any kind.
		return 1, ScoreCategoryMidweek
	}
}
