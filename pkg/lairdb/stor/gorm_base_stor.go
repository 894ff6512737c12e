package stor

import (
	"errors"

	"github.com/lairworks/lairman/pkg/lairdb/lairmodel"
	"gorm.io/gorm"
)

type GormBaseStor struct {
	db *gorm.DB
}

func NewGormBaseStor(db *gorm.DB) *GormBaseStor {
	return &GormBaseStor{db: db}
}

func (s *GormBaseStor) GetAllBases() ([]lairmodel.SecretBase, error) {
	var bases []lairmodel.SecretBase
	err := s.db.Find(&bases).Error
	return bases, err
}

func (s *GormBaseStor) GetBaseByID(baseID int) (*lairmodel.SecretBase, error) {
	var base lairmodel.SecretBase
	if err := s.db.First(&base, baseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &base, nil
}

func (s *GormBaseStor) CreateBase(base *lairmodel.SecretBase) (*lairmodel.SecretBase, error) {
	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Create(base).Error
	})

	if err != nil {
		return nil, err
	}

	return base, nil
}

func (s *GormBaseStor) UpdateBase(base *lairmodel.SecretBase) error {
	return WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Save(base).Error
	})
}

func (s *GormBaseStor) DeleteBase(baseID int) error {
	return WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Delete(&lairmodel.SecretBase{}, baseID).Error
	})
}
