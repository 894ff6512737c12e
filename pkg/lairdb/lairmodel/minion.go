package lairmodel

import (
	"fmt"
	"time"
)

// Mood labels assigned to minions based on their loyalty score.
const (
	MoodHappy     = "Happy"
	MoodGrumpy    = "Grumpy"
	MoodBetrayal  = "Plotting Betrayal"
	MoodExhausted = "Exhausted"
)

type Minion struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	SkillLevel      int       `json:"skill_level"`
	Specialty       string    `json:"specialty"`
	LoyaltyScore    int       `json:"loyalty_score"`
	SalaryDemand    float64   `json:"salary_demand"`
	CurrentBaseID   *int      `json:"current_base_id"`
	CurrentSchemeID *int      `json:"current_scheme_id"`
	MoodStatus      string    `json:"mood_status"`
	LastMoodUpdate  time.Time `json:"last_mood_update"`
}

func (m Minion) String() string {
	return fmt.Sprintf("%s (%s, Skill: %d)", m.Name, m.Specialty, m.SkillLevel)
}
