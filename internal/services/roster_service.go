package services

import (
	"errors"
	"strings"

	"github.com/mishmeret-app/mishmeret/internal/models"
)

var (
	ErrUnknownCategory = errors.New("unknown member category")
	ErrMemberNotFound  = errors.New("team member not found")
	ErrEmptyMemberName = errors.New("member name is required")
)

// defaultRoster seeds a first-run database; names are the team's display
// names and double as the free-text assignee references on shift records.
var defaultRoster = []models.TeamMember{
	{Name: "זמר", Category: models.CategoryRegular, DisplayOrder: 1, Active: true},
	{Name: "שלו", Category: models.CategoryRegular, DisplayOrder: 2, Active: true},
	{Name: "שיר", Category: models.CategoryRegular, DisplayOrder: 3, Active: true},
	{Name: "רוני", Category: models.CategoryRegular, DisplayOrder: 4, Active: true},
	{Name: "נויה", Category: models.CategoryRegular, DisplayOrder: 5, Active: true},
	{Name: "תובל", Category: models.CategoryRegular, DisplayOrder: 6, Active: true},
	{Name: "רוי", Category: models.CategoryRegular, DisplayOrder: 7, Active: true},
	{Name: "כפיר", Category: models.CategoryRegular, DisplayOrder: 8, Active: true},
}

type RosterMemberRepository interface {
	ListActive(category string) ([]models.TeamMember, error)
	Count() (int64, error)
	FindByID(memberID uint) (models.TeamMember, bool, error)
	Create(member *models.TeamMember) error
	CreateBatch(members []models.TeamMember) error
	Save(member *models.TeamMember) error
	SetActive(memberID uint, active bool) error
}

type RosterService struct {
	members RosterMemberRepository
}

func NewRosterService(members RosterMemberRepository) *RosterService {
	return &RosterService{members: members}
}

// ListActive returns active members ordered by (display order, name). An
// empty category means all categories.
func (service *RosterService) ListActive(category string) ([]models.TeamMember, error) {
	if category != "" && !models.IsValidCategory(category) {
		return nil, ErrUnknownCategory
	}
	return service.members.ListActive(category)
}

func (service *RosterService) ListActiveNames(category string) ([]string, error) {
	members, err := service.ListActive(category)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(members))
	for _, member := range members {
		names = append(names, member.Name)
	}
	return names, nil
}

type MemberInput struct {
	ID           uint
	Name         string
	Category     string
	DisplayOrder int
	Active       *bool
}

// Upsert updates the member in place when an id is given, otherwise appends a
// new one. New members default to active.
func (service *RosterService) Upsert(input MemberInput) (models.TeamMember, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return models.TeamMember{}, ErrEmptyMemberName
	}
	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = models.CategoryRegular
	}
	if !models.IsValidCategory(category) {
		return models.TeamMember{}, ErrUnknownCategory
	}

	if input.ID != 0 {
		member, found, err := service.members.FindByID(input.ID)
		if err != nil {
			return models.TeamMember{}, err
		}
		if !found {
			return models.TeamMember{}, ErrMemberNotFound
		}

		member.Name = name
		member.Category = category
		member.DisplayOrder = input.DisplayOrder
		if input.Active != nil {
			member.Active = *input.Active
		}
		if err := service.members.Save(&member); err != nil {
			return models.TeamMember{}, err
		}
		return member, nil
	}

	member := models.TeamMember{
		Name:         name,
		Category:     category,
		DisplayOrder: input.DisplayOrder,
		Active:       true,
	}
	if input.Active != nil {
		member.Active = *input.Active
	}
	if err := service.members.Create(&member); err != nil {
		return models.TeamMember{}, err
	}
	return member, nil
}

// SoftDelete deactivates a member. Historical shift records keep referencing
// the name, so rows are never physically removed.
func (service *RosterService) SoftDelete(memberID uint) error {
	_, found, err := service.members.FindByID(memberID)
	if err != nil {
		return err
	}
	if !found {
		return ErrMemberNotFound
	}
	return service.members.SetActive(memberID, false)
}

// SeedDefaults bootstraps the roster on an empty database. It reports the
// resulting member count and whether anything was inserted.
func (service *RosterService) SeedDefaults() (int64, bool, error) {
	count, err := service.members.Count()
	if err != nil {
		return 0, false, err
	}
	if count > 0 {
		return count, false, nil
	}

	seed := make([]models.TeamMember, len(defaultRoster))
	copy(seed, defaultRoster)
	if err := service.members.CreateBatch(seed); err != nil {
		return 0, false, err
	}
	return int64(len(seed)), true, nil
}
