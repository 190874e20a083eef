package db

import "gorm.io/gorm"

type Repositories struct {
	TeamMembers *TeamMemberRepository
	DutyDays    *DutyDayRepository
	Constraints *ConstraintRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		TeamMembers: NewTeamMemberRepository(database),
		DutyDays:    NewDutyDayRepository(database),
		Constraints: NewConstraintRepository(database),
	}
}
