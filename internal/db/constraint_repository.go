package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mishmeret-app/mishmeret/internal/models"
	"gorm.io/gorm"
)

var ErrConstraintMergeConflict = errors.New("constraint merge conflict")

type ConstraintRepository struct {
	database *gorm.DB
}

func NewConstraintRepository(database *gorm.DB) *ConstraintRepository {
	return &ConstraintRepository{database: database}
}

func (repo *ConstraintRepository) ListByRange(fromStart time.Time, toEnd time.Time) ([]models.ConstraintDay, error) {
	records := make([]models.ConstraintDay, 0)
	if err := repo.database.
		Where("date >= ? AND date < ?", fromStart, toEnd).
		Order("date ASC, id ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	for index := range records {
		if records[index].Entries == nil {
			records[index].Entries = map[string]models.ShiftConstraint{}
		}
	}
	return records, nil
}

func (repo *ConstraintRepository) FindByDayRange(dayStart time.Time, dayEnd time.Time) (models.ConstraintDay, bool, error) {
	record := models.ConstraintDay{}
	result := repo.database.
		Where("date >= ? AND date < ?", dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&record)
	if result.Error != nil {
		return models.ConstraintDay{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.ConstraintDay{}, false, nil
	}
	if record.Entries == nil {
		record.Entries = map[string]models.ShiftConstraint{}
	}
	return record, true, nil
}

// MergeEntry sets one person's flags on one date without touching anyone
// else's entry. The merge into an existing record is a single json_patch
// UPDATE, so two near-simultaneous writes for different people cannot race on
// a read-modify-write of the whole document. A create that loses to the
// unique date index falls back to patching the winner's record.
func (repo *ConstraintRepository) MergeEntry(dayStart time.Time, dayEnd time.Time, name string, entry models.ShiftConstraint) (models.ConstraintDay, error) {
	patch, err := json.Marshal(map[string]models.ShiftConstraint{name: entry})
	if err != nil {
		return models.ConstraintDay{}, fmt.Errorf("encode constraint patch: %w", err)
	}

	for attempt := 0; attempt < 2; attempt++ {
		record, found, err := repo.FindByDayRange(dayStart, dayEnd)
		if err != nil {
			return models.ConstraintDay{}, err
		}

		if !found {
			record = models.ConstraintDay{
				Date:    dayStart,
				Entries: map[string]models.ShiftConstraint{name: entry},
			}
			if createErr := repo.database.Create(&record).Error; createErr == nil {
				return record, nil
			}
			// Someone created the date between our read and write; retry as
			// a patch against their record.
			continue
		}

		if err := repo.database.Exec(
			`UPDATE constraint_days SET entries = json_patch(COALESCE(entries, '{}'), ?), updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
			string(patch),
			record.ID,
		).Error; err != nil {
			return models.ConstraintDay{}, err
		}

		merged, found, err := repo.FindByDayRange(dayStart, dayEnd)
		if err != nil {
			return models.ConstraintDay{}, err
		}
		if !found {
			return models.ConstraintDay{}, ErrConstraintMergeConflict
		}
		return merged, nil
	}

	return models.ConstraintDay{}, ErrConstraintMergeConflict
}
