package db

import (
	"time"

	"github.com/mishmeret-app/mishmeret/internal/models"
	"gorm.io/gorm"
)

type DutyDayRepository struct {
	database *gorm.DB
}

func NewDutyDayRepository(database *gorm.DB) *DutyDayRepository {
	return &DutyDayRepository{database: database}
}

// ListByRange returns days with fromStart <= date < toEnd, ascending. Every
// read path normalizes the slot set so legacy shapes never leak past here.
func (repo *DutyDayRepository) ListByRange(fromStart time.Time, toEnd time.Time) ([]models.DutyDay, error) {
	days := make([]models.DutyDay, 0)
	if err := repo.database.
		Where("date >= ? AND date < ?", fromStart, toEnd).
		Order("date ASC, id ASC").
		Find(&days).Error; err != nil {
		return nil, err
	}
	normalizeDutyDays(days)
	return days, nil
}

func (repo *DutyDayRepository) ListAll() ([]models.DutyDay, error) {
	days := make([]models.DutyDay, 0)
	if err := repo.database.Order("date ASC, id ASC").Find(&days).Error; err != nil {
		return nil, err
	}
	normalizeDutyDays(days)
	return days, nil
}

func (repo *DutyDayRepository) FindByDayRange(dayStart time.Time, dayEnd time.Time) (models.DutyDay, bool, error) {
	day := models.DutyDay{}
	result := repo.database.
		Where("date >= ? AND date < ?", dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&day)
	if result.Error != nil {
		return models.DutyDay{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DutyDay{}, false, nil
	}
	day.Shifts.Normalize()
	return day, true, nil
}

func (repo *DutyDayRepository) Create(day *models.DutyDay) error {
	return repo.database.Create(day).Error
}

func (repo *DutyDayRepository) Save(day *models.DutyDay) error {
	return repo.database.Save(day).Error
}

func normalizeDutyDays(days []models.DutyDay) {
	for index := range days {
		days[index].Shifts.Normalize()
	}
}
