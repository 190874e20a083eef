package models

import "time"

const (
	// CategoryRegular members are scored and constraint-tracked.
	CategoryRegular = "regular"
	// CategoryReserve members are assignable but never scored. The wire value
	// predates this port and is kept for data compatibility.
	CategoryReserve = "mliluim"
)

func IsValidCategory(category string) bool {
	return category == CategoryRegular || category == CategoryReserve
}

type TeamMember struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Category     string    `gorm:"not null;default:regular" json:"type"`
	DisplayOrder int       `gorm:"not null;default:0" json:"order"`
	// No default tag: GORM omits zero-valued defaulted fields on insert,
	// which would store an explicitly inactive member as active.
	Active       bool      `gorm:"not null" json:"active"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
