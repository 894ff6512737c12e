package lairsvc

import (
	"strings"
	"time"

	"github.com/lairworks/lairman/pkg/lairdb/lairmodel"
	"github.com/lairworks/lairman/pkg/lairdb/stor"
	"github.com/lairworks/lairman/pkg/lock"
	"github.com/lairworks/lairman/pkg/rules"
	"github.com/lairworks/lairman/pkg/settings"
	"github.com/pkg/errors"
)

// MinionService holds the minion business rules: validation, mood
// classification and loyalty growth/decay.
type MinionService struct {
	minionStor stor.MinionStor
	settings   *settings.Settings
	payLocks   *lock.IDLocker
}

func NewMinionService(s *settings.Settings, minionStor stor.MinionStor) *MinionService {
	return &MinionService{minionStor: minionStor, settings: s, payLocks: lock.NewIDLocker()}
}

// ValidateMinion checks the candidate fields against the configured business
// rules. It returns nil when every rule passes, otherwise a *ValidationError
// describing the first rule that failed.
func (s *MinionService) ValidateMinion(name, specialty string, skillLevel int, salary float64, loyalty int) error {
	if strings.TrimSpace(name) == "" {
		return validationErrf("Name is required!")
	}

	if specialty == "" || !rules.IsValidSpecialty(s.settings, specialty) {
		return validationErrf("Invalid specialty! Must be one of: %s",
			strings.Join(s.settings.ValidValues.MinionSpecialties, ", "))
	}

	if !rules.IsValidSkillLevel(s.settings, skillLevel) {
		return validationErrf("Skill level must be between %d and %d!",
			s.settings.ValidationRanges.SkillLevel.Min, s.settings.ValidationRanges.SkillLevel.Max)
	}

	if salary < 0 {
		return validationErrf("Salary cannot be negative!")
	}

	if !rules.IsValidLoyalty(s.settings, loyalty) {
		return validationErrf("Loyalty must be between %d and %d!",
			s.settings.ValidationRanges.LoyaltyScore.Min, s.settings.ValidationRanges.LoyaltyScore.Max)
	}

	return nil
}

// CalculateMood classifies a loyalty score. Scores sitting exactly on a
// threshold are neither above nor below it, so both boundaries fall into the
// middle (grumpy) band.
func (s *MinionService) CalculateMood(loyaltyScore int) string {
	switch {
	case loyaltyScore > s.settings.Thresholds.HighLoyalty:
		return lairmodel.MoodHappy
	case loyaltyScore < s.settings.Thresholds.LowLoyalty:
		return lairmodel.MoodBetrayal
	default:
		return lairmodel.MoodGrumpy
	}
}

// CreateMinion validates the candidate fields and persists a new minion. If
// mood is empty it is computed from the loyalty score.
func (s *MinionService) CreateMinion(name, specialty string, skillLevel int, salary float64, loyalty int, baseID, schemeID *int, mood string) (*lairmodel.Minion, error) {
	if err := s.ValidateMinion(name, specialty, skillLevel, salary, loyalty); err != nil {
		return nil, err
	}

	if mood == "" {
		mood = s.CalculateMood(loyalty)
	}

	minion := &lairmodel.Minion{
		Name:            name,
		SkillLevel:      skillLevel,
		Specialty:       specialty,
		LoyaltyScore:    loyalty,
		SalaryDemand:    salary,
		CurrentBaseID:   baseID,
		CurrentSchemeID: schemeID,
		MoodStatus:      mood,
		LastMoodUpdate:  time.Now(),
	}

	minion, err := s.minionStor.CreateMinion(minion)
	if err != nil {
		return nil, errors.Wrap(err, "error adding minion")
	}

	return minion, nil
}

// UpdateMinion validates and persists a full replacement of the minion's
// fields.
func (s *MinionService) UpdateMinion(minionID int, name, specialty string, skillLevel int, salary float64, loyalty int, baseID, schemeID *int, mood string) (*lairmodel.Minion, error) {
	if err := s.ValidateMinion(name, specialty, skillLevel, salary, loyalty); err != nil {
		return nil, err
	}

	if mood == "" {
		mood = s.CalculateMood(loyalty)
	}

	minion := &lairmodel.Minion{
		ID:              minionID,
		Name:            name,
		SkillLevel:      skillLevel,
		Specialty:       specialty,
		LoyaltyScore:    loyalty,
		SalaryDemand:    salary,
		CurrentBaseID:   baseID,
		CurrentSchemeID: schemeID,
		MoodStatus:      mood,
		LastMoodUpdate:  time.Now(),
	}

	if err := s.minionStor.UpdateMinion(minion); err != nil {
		return nil, errors.Wrap(err, "error updating minion")
	}

	return minion, nil
}

func (s *MinionService) DeleteMinion(minionID int) error {
	if err := s.minionStor.DeleteMinion(minionID); err != nil {
		return errors.Wrap(err, "error deleting minion")
	}

	return nil
}

// UpdateLoyalty applies the loyalty growth or decay rate depending on
// whether the minion was paid at least its demanded salary, clamps the
// result to the configured range, refreshes the mood and persists.
func (s *MinionService) UpdateLoyalty(minion *lairmodel.Minion, actualSalaryPaid float64) error {
	if minion == nil {
		return ErrNilMinion
	}

	if actualSalaryPaid >= minion.SalaryDemand {
		minion.LoyaltyScore += s.settings.BusinessRules.LoyaltyGrowthRate
	} else {
		minion.LoyaltyScore -= s.settings.BusinessRules.LoyaltyDecayRate
	}

	loyaltyRange := s.settings.ValidationRanges.LoyaltyScore
	if minion.LoyaltyScore > loyaltyRange.Max {
		minion.LoyaltyScore = loyaltyRange.Max
	}
	if minion.LoyaltyScore < loyaltyRange.Min {
		minion.LoyaltyScore = loyaltyRange.Min
	}

	minion.MoodStatus = s.CalculateMood(minion.LoyaltyScore)
	minion.LastMoodUpdate = time.Now()

	return s.minionStor.UpdateMinion(minion)
}

// PayMinion records a salary payment. The read and the loyalty update are
// serialized per minion id so concurrent payments cannot lose updates.
func (s *MinionService) PayMinion(minionID int, amountPaid float64) (*lairmodel.Minion, error) {
	var minion *lairmodel.Minion

	err := s.payLocks.WithLock(minionID, func() error {
		var err error
		if minion, err = s.minionStor.GetMinionByID(minionID); err != nil {
			return err
		}

		return s.UpdateLoyalty(minion, amountPaid)
	})
	if err != nil {
		return nil, err
	}

	return minion, nil
}

func (s *MinionService) GetAllMinions() ([]lairmodel.Minion, error) {
	return s.minionStor.GetAllMinions()
}

func (s *MinionService) GetMinionByID(minionID int) (*lairmodel.Minion, error) {
	return s.minionStor.GetMinionByID(minionID)
}
