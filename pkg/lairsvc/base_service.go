package lairsvc

import (
	"strings"

	"github.com/lairworks/lairman/pkg/lairdb/lairmodel"
	"github.com/lairworks/lairman/pkg/lairdb/stor"
	"github.com/lairworks/lairman/pkg/rules"
	"github.com/lairworks/lairman/pkg/settings"
	"github.com/pkg/errors"
)

// BaseService holds the secret base business rules. Occupancy is always
// derived by counting minions stationed at the base, never stored.
type BaseService struct {
	baseStor   stor.BaseStor
	minionStor stor.MinionStor
	settings   *settings.Settings
}

func NewBaseService(s *settings.Settings, baseStor stor.BaseStor, minionStor stor.MinionStor) *BaseService {
	return &BaseService{baseStor: baseStor, minionStor: minionStor, settings: s}
}

func (s *BaseService) GetCurrentOccupancy(baseID int) (int, error) {
	return s.minionStor.CountMinionsAtBase(baseID)
}

func (s *BaseService) GetAvailableCapacity(base *lairmodel.SecretBase) (int, error) {
	if base == nil {
		return 0, ErrNilBase
	}

	occupancy, err := s.GetCurrentOccupancy(base.ID)
	if err != nil {
		return 0, err
	}

	return base.Capacity - occupancy, nil
}

func (s *BaseService) CanAccommodateMinion(base *lairmodel.SecretBase) (bool, error) {
	if base == nil {
		return false, ErrNilBase
	}

	occupancy, err := s.GetCurrentOccupancy(base.ID)
	if err != nil {
		return false, err
	}

	return occupancy < base.Capacity, nil
}

// ValidateBase checks the candidate fields, returning a *ValidationError for
// the first rule that fails.
func (s *BaseService) ValidateBase(name, location string, capacity, securityLevel int, maintenanceCost float64) error {
	if strings.TrimSpace(name) == "" {
		return validationErrf("Base name is required!")
	}

	if strings.TrimSpace(location) == "" {
		return validationErrf("Location is required!")
	}

	if capacity <= 0 {
		return validationErrf("Capacity must be greater than zero!")
	}

	if !rules.IsValidSecurityLevel(s.settings, securityLevel) {
		return validationErrf("Security level must be between %d and %d!",
			s.settings.ValidationRanges.SecurityLevel.Min, s.settings.ValidationRanges.SecurityLevel.Max)
	}

	if maintenanceCost < 0 {
		return validationErrf("Maintenance cost cannot be negative!")
	}

	return nil
}

func (s *BaseService) CreateBase(base *lairmodel.SecretBase) (*lairmodel.SecretBase, error) {
	if base == nil {
		return nil, ErrNilBase
	}

	if err := s.ValidateBase(base.Name, base.Location, base.Capacity, base.SecurityLevel, base.MonthlyMaintenanceCost); err != nil {
		return nil, err
	}

	base, err := s.baseStor.CreateBase(base)
	if err != nil {
		return nil, errors.Wrap(err, "error adding base")
	}

	return base, nil
}

func (s *BaseService) UpdateBase(base *lairmodel.SecretBase) error {
	if base == nil {
		return ErrNilBase
	}

	if err := s.ValidateBase(base.Name, base.Location, base.Capacity, base.SecurityLevel, base.MonthlyMaintenanceCost); err != nil {
		return err
	}

	if err := s.baseStor.UpdateBase(base); err != nil {
		return errors.Wrap(err, "error updating base")
	}

	return nil
}

func (s *BaseService) DeleteBase(baseID int) error {
	if err := s.baseStor.DeleteBase(baseID); err != nil {
		return errors.Wrap(err, "error deleting base")
	}

	return nil
}

func (s *BaseService) GetAllBases() ([]lairmodel.SecretBase, error) {
	return s.baseStor.GetAllBases()
}

func (s *BaseService) GetBaseByID(baseID int) (*lairmodel.SecretBase, error) {
	return s.baseStor.GetBaseByID(baseID)
}
