package stor

import (
	"github.com/lairworks/lairman/pkg/lairdb/lairmodel"
)

// InMemoryMinionStor is a slice backed MinionStor used in tests. Setting Err
// forces every operation to fail with that error.
type InMemoryMinionStor struct {
	Err     error
	minions []lairmodel.Minion
	nextID  int
}

func NewInMemoryMinionStor(minions []lairmodel.Minion) *InMemoryMinionStor {
	nextID := 1
	for _, m := range minions {
		if m.ID >= nextID {
			nextID = m.ID + 1
		}
	}

	return &InMemoryMinionStor{minions: minions, nextID: nextID}
}

func (s *InMemoryMinionStor) GetAllMinions() ([]lairmodel.Minion, error) {
	if s.Err != nil {
		return nil, s.Err
	}

	return s.minions, nil
}

func (s *InMemoryMinionStor) GetMinionByID(minionID int) (*lairmodel.Minion, error) {
	if s.Err != nil {
		return nil, s.Err
	}

	for i := range s.minions {
		if s.minions[i].ID == minionID {
			return &s.minions[i], nil
		}
	}

	return nil, ErrNotFound
}

func (s *InMemoryMinionStor) CreateMinion(minion *lairmodel.Minion) (*lairmodel.Minion, error) {
	if s.Err != nil {
		return nil, s.Err
	}

	minion.ID = s.nextID
	s.nextID++
	s.minions = append(s.minions, *minion)

	return minion, nil
}

func (s *InMemoryMinionStor) UpdateMinion(minion *lairmodel.Minion) error {
	if s.Err != nil {
		return s.Err
	}

	for i := range s.minions {
		if s.minions[i].ID == minion.ID {
			s.minions[i] = *minion
			return nil
		}
	}

	return ErrNotFound
}

func (s *InMemoryMinionStor) DeleteMinion(minionID int) error {
	if s.Err != nil {
		return s.Err
	}

	for i := range s.minions {
		if s.minions[i].ID == minionID {
			s.minions = append(s.minions[:i], s.minions[i+1:]...)
			return nil
		}
	}

	return ErrNotFound
}

func (s *InMemoryMinionStor) CountMinionsOnScheme(schemeID int) (int, error) {
	if s.Err != nil {
		return 0, s.Err
	}

	count := 0
	for _, m := range s.minions {
		if m.CurrentSchemeID != nil && *m.CurrentSchemeID == schemeID {
			count++
		}
	}

	return count, nil
}

func (s *InMemoryMinionStor) CountMinionsAtBase(baseID int) (int, error) {
	if s.Err != nil {
		return 0, s.Err
	}

	count := 0
	for _, m := range s.minions {
		if m.CurrentBaseID != nil && *m.CurrentBaseID == baseID {
			count++
		}
	}

	return count, nil
}
