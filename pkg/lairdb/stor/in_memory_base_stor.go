package stor

import (
	"github.com/lairworks/lairman/pkg/lairdb/lairmodel"
)

// InMemoryBaseStor is a slice backed BaseStor used in tests. Setting Err
// forces every operation to fail with that error.
type InMemoryBaseStor struct {
	Err    error
	bases  []lairmodel.SecretBase
	nextID int
}

func NewInMemoryBaseStor(bases []lairmodel.SecretBase) *InMemoryBaseStor {
	nextID := 1
	for _, b := range bases {
		if b.ID >= nextID {
			nextID = b.ID + 1
		}
	}

	return &InMemoryBaseStor{bases: bases, nextID: nextID}
}

func (s *InMemoryBaseStor) GetAllBases() ([]lairmodel.SecretBase, error) {
	if s.Err != nil {
		return nil, s.Err
	}

	return s.bases, nil
}

func (s *InMemoryBaseStor) GetBaseByID(baseID int) (*lairmodel.SecretBase, error) {
	if s.Err != nil {
		return nil, s.Err
	}

	for i := range s.bases {
		if s.bases[i].ID == baseID {
			return &s.bases[i], nil
		}
	}

	return nil, ErrNotFound
}

func (s *InMemoryBaseStor) CreateBase(base *lairmodel.SecretBase) (*lairmodel.SecretBase, error) {
	if s.Err != nil {
		return nil, s.Err
	}

	base.ID = s.nextID
	s.nextID++
	s.bases = append(s.bases, *base)

	return base, nil
}

func (s *InMemoryBaseStor) UpdateBase(base *lairmodel.SecretBase) error {
	if s.Err != nil {
		return s.Err
	}

	for i := range s.bases {
		if s.bases[i].ID == base.ID {
			s.bases[i] = *base
			return nil
		}
	}

	return ErrNotFound
}

func (s *InMemoryBaseStor) DeleteBase(baseID int) error {
	if s.Err != nil {
		return s.Err
	}

	for i := range s.bases {
		if s.bases[i].ID == baseID {
			s.bases = append(s.bases[:i], s.bases[i+1:]...)
			return nil
		}
	}

	return ErrNotFound
}
