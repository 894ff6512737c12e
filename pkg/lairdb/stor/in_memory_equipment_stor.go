package stor

import (
	"github.com/lairworks/lairman/pkg/lairdb/lairmodel"
)

// InMemoryEquipmentStor is a slice backed EquipmentStor used in tests.
// Setting Err forces every operation to fail with that error.
type InMemoryEquipmentStor struct {
	Err       error
	equipment []lairmodel.Equipment
	nextID    int
}

func NewInMemoryEquipmentStor(equipment []lairmodel.Equipment) *InMemoryEquipmentStor {
	nextID := 1
	for _, e := range equipment {
		if e.ID >= nextID {
			nextID = e.ID + 1
		}
	}

	return &InMemoryEquipmentStor{equipment: equipment, nextID: nextID}
}

func (s *InMemoryEquipmentStor) GetAllEquipment() ([]lairmodel.Equipment, error) {
	if s.Err != nil {
		return nil, s.Err
	}

	return s.equipment, nil
}

func (s *InMemoryEquipmentStor) GetEquipmentByID(equipmentID int) (*lairmodel.Equipment, error) {
	if s.Err != nil {
		return nil, s.Err
	}

	for i := range s.equipment {
		if s.equipment[i].ID == equipmentID {
			return &s.equipment[i], nil
		}
	}

	return nil, ErrNotFound
}

func (s *InMemoryEquipmentStor) CreateEquipment(equipment *lairmodel.Equipment) (*lairmodel.Equipment, error) {
	if s.Err != nil {
		return nil, s.Err
	}

	equipment.ID = s.nextID
	s.nextID++
	s.equipment = append(s.equipment, *equipment)

	return equipment, nil
}

func (s *InMemoryEquipmentStor) UpdateEquipment(equipment *lairmodel.Equipment) error {
	if s.Err != nil {
		return s.Err
	}

	for i := range s.equipment {
		if s.equipment[i].ID == equipment.ID {
			s.equipment[i] = *equipment
			return nil
		}
	}

	return ErrNotFound
}

func (s *InMemoryEquipmentStor) DeleteEquipment(equipmentID int) error {
	if s.Err != nil {
		return s.Err
	}

	for i := range s.equipment {
		if s.equipment[i].ID == equipmentID {
			s.equipment = append(s.equipment[:i], s.equipment[i+1:]...)
			return nil
		}
	}

	return ErrNotFound
}

func (s *InMemoryEquipmentStor) CountEquipmentOnScheme(schemeID int) (int, error) {
	if s.Err != nil {
		return 0, s.Err
	}

	count := 0
	for _, e := range s.equipment {
		if e.AssignedToSchemeID != nil && *e.AssignedToSchemeID == schemeID {
			count++
		}
	}

	return count, nil
}
