package lairmodel

import "time"

// Scheme lifecycle statuses.
const (
	StatusPlanning  = "Planning"
	StatusActive    = "Active"
	StatusOnHold    = "On Hold"
	StatusCompleted = "Completed"
	StatusFailed    = "Failed"
)

type EvilScheme struct {
	ID                   int        `json:"id"`
	UUID                 string     `json:"uuid" gorm:"uniqueIndex"`
	Slug                 string     `json:"slug" gorm:"uniqueIndex"`
	Name                 string     `json:"name"`
	Description          string     `json:"description"`
	Budget               float64    `json:"budget"`
	CurrentSpending      float64    `json:"current_spending"`
	RequiredSkillLevel   int        `json:"required_skill_level"`
	RequiredSpecialty    string     `json:"required_specialty"`
	Status               string     `json:"status"`
	StartDate            *time.Time `json:"start_date"`
	TargetCompletionDate time.Time  `json:"target_completion_date"`
	DiabolicalRating     int        `json:"diabolical_rating"`
	SuccessLikelihood    int        `json:"success_likelihood"`
}

func (s EvilScheme) IsActive() bool {
	return s.Status == StatusActive
}
