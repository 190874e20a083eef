package services

import (
	"fmt"
	"time"
)

const cleaningTeamCount = 3

type CleaningView struct {
	Week int    `json:"week"`
	Team int    `json:"team"`
	Name string `json:"name"`
}

// CleaningTeamForWeek rotates cleaning duty between three fixed teams by ISO
// week number.
func CleaningTeamForWeek(now time.Time, location *time.Location) CleaningView {
	if location == nil {
		location = time.UTC
	}
	_, week := now.In(location).ISOWeek()

	team := week % cleaningTeamCount
	if team == 0 {
		team = cleaningTeamCount
	}

	return CleaningView{
		Week: week,
		Team: team,
		Name: fmt.Sprintf("צוות %d", team),
	}
}
