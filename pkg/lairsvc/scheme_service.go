package lairsvc

import (
	"strings"
	"time"

	"github.com/lairworks/lairman/pkg/lairdb/lairmodel"
	"github.com/lairworks/lairman/pkg/lairdb/stor"
	"github.com/lairworks/lairman/pkg/rules"
	"github.com/lairworks/lairman/pkg/settings"
	"github.com/pkg/errors"
)

const baseSuccessScore = 50

// SchemeService holds the evil scheme business rules, chiefly the success
// likelihood score that weighs assigned staff, working equipment, budget and
// timeline.
type SchemeService struct {
	schemeStor    stor.SchemeStor
	minionStor    stor.MinionStor
	equipmentStor stor.EquipmentStor
	settings      *settings.Settings
}

func NewSchemeService(s *settings.Settings, schemeStor stor.SchemeStor, minionStor stor.MinionStor, equipmentStor stor.EquipmentStor) *SchemeService {
	return &SchemeService{
		schemeStor:    schemeStor,
		minionStor:    minionStor,
		equipmentStor: equipmentStor,
		settings:      s,
	}
}

// CalculateSuccessLikelihood scores a scheme from 0 to 100. Starting at 50,
// each assigned minion whose specialty matches the scheme's requirement adds
// 10 and each assigned equipment item in operational condition adds 5. Being
// over budget costs 20, missing the minimum crew (two minions with at least
// one specialist) costs 15, and a blown deadline costs 25.
func (s *SchemeService) CalculateSuccessLikelihood(scheme *lairmodel.EvilScheme) (int, error) {
	if scheme == nil {
		return 0, ErrNilScheme
	}

	minions, err := s.minionStor.GetAllMinions()
	if err != nil {
		return 0, err
	}

	matchingMinions := 0
	totalMinions := 0
	for _, m := range minions {
		if m.CurrentSchemeID == nil || *m.CurrentSchemeID != scheme.ID {
			continue
		}

		totalMinions++
		if m.Specialty == scheme.RequiredSpecialty {
			matchingMinions++
		}
	}

	minionBonus := matchingMinions * 10

	equipment, err := s.equipmentStor.GetAllEquipment()
	if err != nil {
		return 0, err
	}

	equipmentBonus := 0
	for _, e := range equipment {
		if e.AssignedToSchemeID != nil && *e.AssignedToSchemeID == scheme.ID &&
			e.Condition >= s.settings.Thresholds.MinEquipmentCondition {
			equipmentBonus += 5
		}
	}

	budgetPenalty := 0
	if scheme.CurrentSpending > scheme.Budget {
		budgetPenalty = -20
	}

	resourcePenalty := -15
	if totalMinions >= 2 && matchingMinions >= 1 {
		resourcePenalty = 0
	}

	timelinePenalty := 0
	if time.Now().After(scheme.TargetCompletionDate) {
		timelinePenalty = -25
	}

	success := baseSuccessScore + minionBonus + equipmentBonus + budgetPenalty + resourcePenalty + timelinePenalty

	successRange := s.settings.ValidationRanges.SuccessLikelihood
	if success < successRange.Min {
		success = successRange.Min
	}
	if success > successRange.Max {
		success = successRange.Max
	}

	return success, nil
}

// UpdateSuccessLikelihood recomputes the scheme's success likelihood and
// persists it.
func (s *SchemeService) UpdateSuccessLikelihood(scheme *lairmodel.EvilScheme) error {
	if scheme == nil {
		return ErrNilScheme
	}

	success, err := s.CalculateSuccessLikelihood(scheme)
	if err != nil {
		return err
	}

	scheme.SuccessLikelihood = success

	return s.schemeStor.UpdateScheme(scheme)
}

// IsOverBudget reports whether spending strictly exceeds the budget;
// spending exactly the budget is not over.
func (s *SchemeService) IsOverBudget(scheme *lairmodel.EvilScheme) (bool, error) {
	if scheme == nil {
		return false, ErrNilScheme
	}

	return scheme.CurrentSpending > scheme.Budget, nil
}

// CalculateAverageSuccess recomputes the success likelihood of every scheme
// in the list (ignoring the stored values) and returns the mean. An empty
// list averages to 0.
func (s *SchemeService) CalculateAverageSuccess(schemes []lairmodel.EvilScheme) (float64, error) {
	if len(schemes) == 0 {
		return 0, nil
	}

	sum := 0
	for i := range schemes {
		success, err := s.CalculateSuccessLikelihood(&schemes[i])
		if err != nil {
			return 0, err
		}

		sum += success
	}

	return float64(sum) / float64(len(schemes)), nil
}

// ValidateScheme checks the candidate fields against the configured business
// rules, returning a *ValidationError for the first rule that fails.
func (s *SchemeService) ValidateScheme(name, requiredSpecialty, status string, budget float64, diabolicalRating int) error {
	if strings.TrimSpace(name) == "" {
		return validationErrf("Scheme name is required!")
	}

	if requiredSpecialty == "" || !rules.IsValidSpecialty(s.settings, requiredSpecialty) {
		return validationErrf("Invalid required specialty! Must be one of: %s",
			strings.Join(s.settings.ValidValues.MinionSpecialties, ", "))
	}

	if !rules.IsValidSchemeStatus(s.settings, status) {
		return validationErrf("Invalid status! Must be one of: %s",
			strings.Join(s.settings.ValidValues.SchemeStatuses, ", "))
	}

	if budget < 0 {
		return validationErrf("Budget cannot be negative!")
	}

	if !rules.IsValidDiabolicalRating(s.settings, diabolicalRating) {
		return validationErrf("Diabolical rating must be between %d and %d!",
			s.settings.ValidationRanges.DiabolicalRating.Min, s.settings.ValidationRanges.DiabolicalRating.Max)
	}

	return nil
}

// CreateScheme validates and persists a new scheme with a freshly computed
// success likelihood.
func (s *SchemeService) CreateScheme(scheme *lairmodel.EvilScheme) (*lairmodel.EvilScheme, error) {
	if scheme == nil {
		return nil, ErrNilScheme
	}

	if err := s.ValidateScheme(scheme.Name, scheme.RequiredSpecialty, scheme.Status, scheme.Budget, scheme.DiabolicalRating); err != nil {
		return nil, err
	}

	success, err := s.CalculateSuccessLikelihood(scheme)
	if err != nil {
		return nil, err
	}
	scheme.SuccessLikelihood = success

	scheme, err = s.schemeStor.CreateScheme(scheme)
	if err != nil {
		return nil, errors.Wrap(err, "error adding scheme")
	}

	return scheme, nil
}

func (s *SchemeService) UpdateScheme(scheme *lairmodel.EvilScheme) error {
	if scheme == nil {
		return ErrNilScheme
	}

	if err := s.ValidateScheme(scheme.Name, scheme.RequiredSpecialty, scheme.Status, scheme.Budget, scheme.DiabolicalRating); err != nil {
		return err
	}

	if err := s.schemeStor.UpdateScheme(scheme); err != nil {
		return errors.Wrap(err, "error updating scheme")
	}

	return nil
}

func (s *SchemeService) DeleteScheme(schemeID int) error {
	if err := s.schemeStor.DeleteScheme(schemeID); err != nil {
		return errors.Wrap(err, "error deleting scheme")
	}

	return nil
}

// CountAssignedMinions reports how many minions are currently assigned to
// the scheme.
func (s *SchemeService) CountAssignedMinions(schemeID int) (int, error) {
	return s.minionStor.CountMinionsOnScheme(schemeID)
}

// CountAssignedEquipment reports how many equipment items are currently
// assigned to the scheme.
func (s *SchemeService) CountAssignedEquipment(schemeID int) (int, error) {
	return s.equipmentStor.CountEquipmentOnScheme(schemeID)
}

func (s *SchemeService) GetAllSchemes() ([]lairmodel.EvilScheme, error) {
	return s.schemeStor.GetAllSchemes()
}

func (s *SchemeService) GetSchemeByID(schemeID int) (*lairmodel.EvilScheme, error) {
	return s.schemeStor.GetSchemeByID(schemeID)
}

func (s *SchemeService) GetSchemeBySlug(slug string) (*lairmodel.EvilScheme, error) {
	return s.schemeStor.GetSchemeBySlug(slug)
}

func (s *SchemeService) GetActiveSchemes() ([]lairmodel.EvilScheme, error) {
	return s.schemeStor.GetSchemesByStatus(lairmodel.StatusActive)
}
