package models

import "time"

// ShiftConstraint marks a person's self-declared unavailability for the day
// shifts (second/main) and the night shift on one date. Absence of an entry
// means available.
type ShiftConstraint struct {
	Day   bool `json:"day"`
	Night bool `json:"night"`
}

// ConstraintDay maps person name to unavailability flags for one date. Writes
// merge a single person's entry into the map; they never replace the map.
type ConstraintDay struct {
	ID        uint                       `gorm:"primaryKey" json:"id"`
	Date      time.Time                  `gorm:"type:date;not null;uniqueIndex:uidx_constraint_days_date" json:"date"`
	Entries   map[string]ShiftConstraint `gorm:"serializer:json" json:"constraints"`
	CreatedAt time.Time                  `json:"-"`
	UpdatedAt time.Time                  `json:"-"`
}
