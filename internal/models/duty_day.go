package models

import "time"

// DutyDay is the single schedule record for one calendar date. The date is
// normalized to local midnight and unique; writing an existing date replaces
// its whole slot set.
type DutyDay struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_duty_days_date" json:"date"`
	Shifts    ShiftSet  `gorm:"serializer:json" json:"shifts"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
