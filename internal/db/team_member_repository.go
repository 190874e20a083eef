package db

import (
	"github.com/mishmeret-app/mishmeret/internal/models"
	"gorm.io/gorm"
)

type TeamMemberRepository struct {
	database *gorm.DB
}

func NewTeamMemberRepository(database *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{database: database}
}

func (repo *TeamMemberRepository) ListActive(category string) ([]models.TeamMember, error) {
	query := repo.database.Where("active = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	members := make([]models.TeamMember, 0)
	if err := query.Order("display_order ASC, name ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (repo *TeamMemberRepository) Count() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.TeamMember{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *TeamMemberRepository) FindByID(memberID uint) (models.TeamMember, bool, error) {
	member := models.TeamMember{}
	result := repo.database.Limit(1).Find(&member, memberID)
	if result.Error != nil {
		return models.TeamMember{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.TeamMember{}, false, nil
	}
	return member, true, nil
}

func (repo *TeamMemberRepository) Create(member *models.TeamMember) error {
	return repo.database.Create(member).Error
}

func (repo *TeamMemberRepository) CreateBatch(members []models.TeamMember) error {
	return repo.database.Create(&members).Error
}

func (repo *TeamMemberRepository) Save(member *models.TeamMember) error {
	return repo.database.Save(member).Error
}

func (repo *TeamMemberRepository) SetActive(memberID uint, active bool) error {
	return repo.database.Model(&models.TeamMember{}).Where("id = ?", memberID).Update("active", active).Error
}
