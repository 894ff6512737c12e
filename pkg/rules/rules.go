// Package rules contains the pure validation predicates for the lair rule
// engine. Every predicate consumes the injected settings and returns a plain
// boolean; a false result is a normal outcome, not an error.
package rules

import (
	"github.com/lairworks/lairman/pkg/settings"
)

func IsValidSpecialty(s *settings.Settings, specialty string) bool {
	return contains(s.ValidValues.MinionSpecialties, specialty)
}

func IsValidCategory(s *settings.Settings, category string) bool {
	return contains(s.ValidValues.EquipmentCategories, category)
}

func IsValidMoodStatus(s *settings.Settings, mood string) bool {
	return contains(s.ValidValues.MoodStatuses, mood)
}

func IsValidSchemeStatus(s *settings.Settings, status string) bool {
	return contains(s.ValidValues.SchemeStatuses, status)
}

func IsValidSkillLevel(s *settings.Settings, skillLevel int) bool {
	return inRange(s.ValidationRanges.SkillLevel, skillLevel)
}

func IsValidLoyalty(s *settings.Settings, loyalty int) bool {
	return inRange(s.ValidationRanges.LoyaltyScore, loyalty)
}

func IsValidCondition(s *settings.Settings, condition int) bool {
	return inRange(s.ValidationRanges.Condition, condition)
}

func IsValidDiabolicalRating(s *settings.Settings, rating int) bool {
	return inRange(s.ValidationRanges.DiabolicalRating, rating)
}

func IsValidSecurityLevel(s *settings.Settings, level int) bool {
	return inRange(s.ValidationRanges.SecurityLevel, level)
}

func inRange(r settings.Range, val int) bool {
	return val >= r.Min && val <= r.Max
}

func contains(values []string, val string) bool {
	for _, v := range values {
		if v == val {
			return true
		}
	}

	return false
}
