package rules

import (
	"testing"

	"github.com/lairworks/lairman/pkg/settings"
	"github.com/stretchr/testify/assert"
)

func TestValueSetPredicates(t *testing.T) {
	s := settings.Default()

	var tests = []struct {
		name      string
		predicate func(*settings.Settings, string) bool
		value     string
		expected  bool
	}{
		{name: "known specialty", predicate: IsValidSpecialty, value: "Henchman", expected: true},
		{name: "unknown specialty", predicate: IsValidSpecialty, value: "Accountant", expected: false},
		{name: "specialty is case sensitive", predicate: IsValidSpecialty, value: "henchman", expected: false},
		{name: "known category", predicate: IsValidCategory, value: "Doomsday Device", expected: true},
		{name: "unknown category", predicate: IsValidCategory, value: "Furniture", expected: false},
		{name: "known mood", predicate: IsValidMoodStatus, value: "Plotting Betrayal", expected: true},
		{name: "unknown mood", predicate: IsValidMoodStatus, value: "Ecstatic", expected: false},
		{name: "known status", predicate: IsValidSchemeStatus, value: "On Hold", expected: true},
		{name: "unknown status", predicate: IsValidSchemeStatus, value: "Brewing", expected: false},
		{name: "empty string", predicate: IsValidSpecialty, value: "", expected: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.predicate(s, test.value))
		})
	}
}

func TestRangePredicates(t *testing.T) {
	s := settings.Default()

	var tests = []struct {
		name      string
		predicate func(*settings.Settings, int) bool
		value     int
		expected  bool
	}{
		{name: "skill level lower bound", predicate: IsValidSkillLevel, value: 1, expected: true},
		{name: "skill level upper bound", predicate: IsValidSkillLevel, value: 10, expected: true},
		{name: "skill level zero", predicate: IsValidSkillLevel, value: 0, expected: false},
		{name: "skill level over", predicate: IsValidSkillLevel, value: 11, expected: false},
		{name: "loyalty lower bound", predicate: IsValidLoyalty, value: 0, expected: true},
		{name: "loyalty upper bound", predicate: IsValidLoyalty, value: 100, expected: true},
		{name: "loyalty negative", predicate: IsValidLoyalty, value: -1, expected: false},
		{name: "condition in range", predicate: IsValidCondition, value: 55, expected: true},
		{name: "condition over", predicate: IsValidCondition, value: 101, expected: false},
		{name: "diabolical rating zero", predicate: IsValidDiabolicalRating, value: 0, expected: false},
		{name: "diabolical rating max", predicate: IsValidDiabolicalRating, value: 10, expected: true},
		{name: "security level min", predicate: IsValidSecurityLevel, value: 1, expected: true},
		{name: "security level over", predicate: IsValidSecurityLevel, value: 11, expected: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.predicate(s, test.value))
		})
	}
}
