package stor

import (
	"errors"

	"github.com/lairworks/lairman/pkg/lairdb/lairmodel"
	"gorm.io/gorm"
)

type GormMinionStor struct {
	db *gorm.DB
}

func NewGormMinionStor(db *gorm.DB) *GormMinionStor {
	return &GormMinionStor{db: db}
}

func (s *GormMinionStor) GetAllMinions() ([]lairmodel.Minion, error) {
	var minions []lairmodel.Minion
	err := s.db.Find(&minions).Error
	return minions, err
}

func (s *GormMinionStor) GetMinionByID(minionID int) (*lairmodel.Minion, error) {
	var minion lairmodel.Minion
	if err := s.db.First(&minion, minionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &minion, nil
}

func (s *GormMinionStor) CreateMinion(minion *lairmodel.Minion) (*lairmodel.Minion, error) {
	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Create(minion).Error
	})

	if err != nil {
		return nil, err
	}

	return minion, nil
}

func (s *GormMinionStor) UpdateMinion(minion *lairmodel.Minion) error {
	return WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Save(minion).Error
	})
}

func (s *GormMinionStor) DeleteMinion(minionID int) error {
	return WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Delete(&lairmodel.Minion{}, minionID).Error
	})
}

func (s *GormMinionStor) CountMinionsOnScheme(schemeID int) (int, error) {
	var count int64
	err := s.db.Model(&lairmodel.Minion{}).
		Where("current_scheme_id = ?", schemeID).
		Count(&count).Error
	return int(count), err
}

func (s *GormMinionStor) CountMinionsAtBase(baseID int) (int, error) {
	var count int64
	err := s.db.Model(&lairmodel.Minion{}).
		Where("current_base_id = ?", baseID).
		Count(&count).Error
	return int(count), err
}
