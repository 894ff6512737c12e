package stor

import (
	"fmt"

	"github.com/gosimple/slug"
	"github.com/hashicorp/go-uuid"
	"github.com/lairworks/lairman/pkg/lairdb/lairmodel"
)

// InMemorySchemeStor is a slice backed SchemeStor used in tests. Setting Err
// forces every operation to fail with that error.
type InMemorySchemeStor struct {
	Err     error
	schemes []lairmodel.EvilScheme
	nextID  int
}

func NewInMemorySchemeStor(schemes []lairmodel.EvilScheme) *InMemorySchemeStor {
	nextID := 1
	for _, s := range schemes {
		if s.ID >= nextID {
			nextID = s.ID + 1
		}
	}

	return &InMemorySchemeStor{schemes: schemes, nextID: nextID}
}

func (s *InMemorySchemeStor) GetAllSchemes() ([]lairmodel.EvilScheme, error) {
	if s.Err != nil {
		return nil, s.Err
	}

	return s.schemes, nil
}

func (s *InMemorySchemeStor) GetSchemeByID(schemeID int) (*lairmodel.EvilScheme, error) {
	if s.Err != nil {
		return nil, s.Err
	}

	for i := range s.schemes {
		if s.schemes[i].ID == schemeID {
			return &s.schemes[i], nil
		}
	}

	return nil, ErrNotFound
}

func (s *InMemorySchemeStor) GetSchemeBySlug(schemeSlug string) (*lairmodel.EvilScheme, error) {
	if s.Err != nil {
		return nil, s.Err
	}

	for i := range s.schemes {
		if s.schemes[i].Slug == schemeSlug {
			return &s.schemes[i], nil
		}
	}

	return nil, ErrNotFound
}

func (s *InMemorySchemeStor) GetSchemesByStatus(status string) ([]lairmodel.EvilScheme, error) {
	if s.Err != nil {
		return nil, s.Err
	}

	var schemes []lairmodel.EvilScheme
	for _, scheme := range s.schemes {
		if scheme.Status == status {
			schemes = append(schemes, scheme)
		}
	}

	return schemes, nil
}

func (s *InMemorySchemeStor) CreateScheme(scheme *lairmodel.EvilScheme) (*lairmodel.EvilScheme, error) {
	if s.Err != nil {
		return nil, s.Err
	}

	var err error
	if scheme.UUID, err = uuid.GenerateUUID(); err != nil {
		return nil, err
	}

	slugOfName := slug.Make(scheme.Name)
	scheme.Slug = slugOfName
	slugNext := 1
	for s.slugTaken(scheme.Slug) {
		scheme.Slug = fmt.Sprintf("%s-%d", slugOfName, slugNext)
		slugNext = slugNext + 1
	}

	scheme.ID = s.nextID
	s.nextID++
	s.schemes = append(s.schemes, *scheme)

	return scheme, nil
}

func (s *InMemorySchemeStor) UpdateScheme(scheme *lairmodel.EvilScheme) error {
	if s.Err != nil {
		return s.Err
	}

	for i := range s.schemes {
		if s.schemes[i].ID == scheme.ID {
			s.schemes[i] = *scheme
			return nil
		}
	}

	return ErrNotFound
}

func (s *InMemorySchemeStor) DeleteScheme(schemeID int) error {
	if s.Err != nil {
		return s.Err
	}

	for i := range s.schemes {
		if s.schemes[i].ID == schemeID {
			s.schemes = append(s.schemes[:i], s.schemes[i+1:]...)
			return nil
		}
	}

	return ErrNotFound
}

func (s *InMemorySchemeStor) slugTaken(schemeSlug string) bool {
	for _, scheme := range s.schemes {
		if scheme.Slug == schemeSlug {
			return true
		}
	}

	return false
}
