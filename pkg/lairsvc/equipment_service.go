package lairsvc

import (
	"strings"
	"time"

	"github.com/lairworks/lairman/pkg/lairdb/lairmodel"
	"github.com/lairworks/lairman/pkg/lairdb/stor"
	"github.com/lairworks/lairman/pkg/settings"
	"github.com/pkg/errors"
)

// EquipmentService holds the equipment business rules: maintenance cost,
// condition degradation and scheme assignment.
type EquipmentService struct {
	equipmentStor stor.EquipmentStor
	schemeStor    stor.SchemeStor
	settings      *settings.Settings
}

func NewEquipmentService(s *settings.Settings, equipmentStor stor.EquipmentStor, schemeStor stor.SchemeStor) *EquipmentService {
	return &EquipmentService{equipmentStor: equipmentStor, schemeStor: schemeStor, settings: s}
}

// PerformMaintenance restores the equipment's condition to the configured
// default, stamps the maintenance date and persists. The returned cost is a
// percentage of the purchase price, with doomsday devices billed at the
// higher configured rate. The cost is charged even when the condition was
// already at maximum.
func (s *EquipmentService) PerformMaintenance(equipment *lairmodel.Equipment) (float64, error) {
	if equipment == nil {
		return 0, ErrNilEquipment
	}

	var cost float64
	if equipment.Category == lairmodel.CategoryDoomsdayDevice {
		cost = equipment.PurchasePrice * s.settings.BusinessRules.DoomsdayMaintenanceCostPct
	} else {
		cost = equipment.PurchasePrice * s.settings.BusinessRules.MaintenanceCostPct
	}

	now := time.Now()
	equipment.Condition = s.settings.DefaultValues.Condition
	equipment.LastMaintenanceDate = &now

	if err := s.equipmentStor.UpdateEquipment(equipment); err != nil {
		return 0, errors.Wrap(err, "error performing maintenance")
	}

	return cost, nil
}

// DegradeCondition wears down equipment that is actively in use. Equipment
// not assigned to a scheme, or assigned to a scheme that is not active, is
// left untouched. The degradation amount scales with whole months elapsed
// since the last maintenance, never less than one month's worth.
func (s *EquipmentService) DegradeCondition(equipment *lairmodel.Equipment) error {
	if equipment == nil {
		return ErrNilEquipment
	}

	if equipment.AssignedToSchemeID == nil {
		return nil
	}

	scheme, err := s.schemeStor.GetSchemeByID(*equipment.AssignedToSchemeID)
	if err != nil {
		if errors.Is(err, stor.ErrNotFound) {
			return nil
		}
		return err
	}

	if scheme.Status != lairmodel.StatusActive {
		return nil
	}

	monthsSinceMaintenance := 1
	if equipment.LastMaintenanceDate != nil {
		elapsed := time.Since(*equipment.LastMaintenanceDate)
		months := int(elapsed.Hours() / 24 / 30)
		if months > monthsSinceMaintenance {
			monthsSinceMaintenance = months
		}
	}

	equipment.Condition -= monthsSinceMaintenance * s.settings.BusinessRules.ConditionDegradationRate
	if equipment.Condition < 0 {
		equipment.Condition = 0
	}

	return s.equipmentStor.UpdateEquipment(equipment)
}

// ValidateEquipment checks the candidate fields, returning a
// *ValidationError for the first rule that fails.
func (s *EquipmentService) ValidateEquipment(name, category string, purchasePrice, maintenanceCost float64) error {
	if strings.TrimSpace(name) == "" {
		return validationErrf("Equipment name is required!")
	}

	if strings.TrimSpace(category) == "" {
		return validationErrf("Equipment category is required!")
	}

	if purchasePrice < 0 {
		return validationErrf("Purchase price cannot be negative!")
	}

	if maintenanceCost < 0 {
		return validationErrf("Maintenance cost cannot be negative!")
	}

	return nil
}

// AssignToScheme points the equipment at the given scheme after verifying
// the scheme exists. It returns the scheme so callers can report what the
// equipment was assigned to.
func (s *EquipmentService) AssignToScheme(equipment *lairmodel.Equipment, schemeID int) (*lairmodel.EvilScheme, error) {
	if equipment == nil {
		return nil, ErrNilEquipment
	}

	scheme, err := s.schemeStor.GetSchemeByID(schemeID)
	if err != nil {
		if errors.Is(err, stor.ErrNotFound) {
			return nil, ErrSchemeNotFound
		}
		return nil, err
	}

	equipment.AssignedToSchemeID = &schemeID
	if err := s.equipmentStor.UpdateEquipment(equipment); err != nil {
		return nil, errors.Wrap(err, "error assigning equipment")
	}

	return scheme, nil
}

// IsOperational reports whether the condition is at or above the minimum
// operational threshold.
func (s *EquipmentService) IsOperational(equipment lairmodel.Equipment) bool {
	return equipment.Condition >= s.settings.Thresholds.MinEquipmentCondition
}

// IsBroken reports whether the condition is strictly below the broken
// threshold. Condition exactly at the threshold is NOT broken.
func (s *EquipmentService) IsBroken(equipment lairmodel.Equipment) bool {
	return equipment.Condition < s.settings.Thresholds.BrokenEquipmentCondition
}

// CreateEquipment validates and persists new equipment with the default
// condition and a fresh maintenance date.
func (s *EquipmentService) CreateEquipment(name, category string, purchasePrice, maintenanceCost float64, requiresSpecialist bool, storedAtBaseID *int) (*lairmodel.Equipment, error) {
	if err := s.ValidateEquipment(name, category, purchasePrice, maintenanceCost); err != nil {
		return nil, err
	}

	now := time.Now()
	equipment := &lairmodel.Equipment{
		Name:                name,
		Category:            category,
		Condition:           s.settings.DefaultValues.Condition,
		PurchasePrice:       purchasePrice,
		MaintenanceCost:     maintenanceCost,
		RequiresSpecialist:  requiresSpecialist,
		StoredAtBaseID:      storedAtBaseID,
		LastMaintenanceDate: &now,
	}

	equipment, err := s.equipmentStor.CreateEquipment(equipment)
	if err != nil {
		return nil, errors.Wrap(err, "error creating equipment")
	}

	return equipment, nil
}

func (s *EquipmentService) UpdateEquipment(equipment *lairmodel.Equipment) error {
	if equipment == nil {
		return ErrNilEquipment
	}

	if err := s.ValidateEquipment(equipment.Name, equipment.Category, equipment.PurchasePrice, equipment.MaintenanceCost); err != nil {
		return err
	}

	if err := s.equipmentStor.UpdateEquipment(equipment); err != nil {
		return errors.Wrap(err, "error updating equipment")
	}

	return nil
}

func (s *EquipmentService) DeleteEquipment(equipmentID int) error {
	if err := s.equipmentStor.DeleteEquipment(equipmentID); err != nil {
		return errors.Wrap(err, "error deleting equipment")
	}

	return nil
}

func (s *EquipmentService) GetAllEquipment() ([]lairmodel.Equipment, error) {
	return s.equipmentStor.GetAllEquipment()
}

func (s *EquipmentService) GetEquipmentByID(equipmentID int) (*lairmodel.Equipment, error) {
	return s.equipmentStor.GetEquipmentByID(equipmentID)
}
