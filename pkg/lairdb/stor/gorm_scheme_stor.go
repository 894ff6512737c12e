package stor

import (
	"errors"
	"fmt"

	"github.com/gosimple/slug"
	"github.com/hashicorp/go-uuid"
	"github.com/lairworks/lairman/pkg/lairdb/lairmodel"
	"gorm.io/gorm"
)

type GormSchemeStor struct {
	db *gorm.DB
}

func NewGormSchemeStor(db *gorm.DB) *GormSchemeStor {
	return &GormSchemeStor{db: db}
}

func (s *GormSchemeStor) GetAllSchemes() ([]lairmodel.EvilScheme, error) {
	var schemes []lairmodel.EvilScheme
	err := s.db.Find(&schemes).Error
	return schemes, err
}

func (s *GormSchemeStor) GetSchemeByID(schemeID int) (*lairmodel.EvilScheme, error) {
	var scheme lairmodel.EvilScheme
	if err := s.db.First(&scheme, schemeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &scheme, nil
}

func (s *GormSchemeStor) GetSchemeBySlug(schemeSlug string) (*lairmodel.EvilScheme, error) {
	var scheme lairmodel.EvilScheme
	if err := s.db.Where("slug = ?", schemeSlug).First(&scheme).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &scheme, nil
}

func (s *GormSchemeStor) GetSchemesByStatus(status string) ([]lairmodel.EvilScheme, error) {
	var schemes []lairmodel.EvilScheme
	err := s.db.Where("status = ?", status).Find(&schemes).Error
	return schemes, err
}

// CreateScheme assigns the scheme a UUID and a slug derived from its name. On
// a slug collision an incrementing integer is appended and the create retried.
func (s *GormSchemeStor) CreateScheme(scheme *lairmodel.EvilScheme) (*lairmodel.EvilScheme, error) {
	var err error

	if scheme.UUID, err = uuid.GenerateUUID(); err != nil {
		return nil, err
	}

	slugOfName := slug.Make(scheme.Name)
	scheme.Slug = slugOfName
	slugNext := 1

	err = WithTxRetry(s.db, func(tx *gorm.DB) error {
	CreateLoop:
		for {
			err = tx.Create(scheme).Error
			switch {
			case err == nil:
				break CreateLoop
			case errors.Is(err, gorm.ErrDuplicatedKey):
				// Assume a collision on the slug and try again with an
				// incrementing suffix.
				scheme.Slug = fmt.Sprintf("%s-%d", slugOfName, slugNext)
				slugNext = slugNext + 1
			default:
				return err
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return scheme, nil
}

func (s *GormSchemeStor) UpdateScheme(scheme *lairmodel.EvilScheme) error {
	return WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Save(scheme).Error
	})
}

func (s *GormSchemeStor) DeleteScheme(schemeID int) error {
	return WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Delete(&lairmodel.EvilScheme{}, schemeID).Error
	})
}
