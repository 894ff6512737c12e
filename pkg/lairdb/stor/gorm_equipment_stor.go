package stor

import (
	"errors"

	"github.com/lairworks/lairman/pkg/lairdb/lairmodel"
	"gorm.io/gorm"
)

type GormEquipmentStor struct {
	db *gorm.DB
}

func NewGormEquipmentStor(db *gorm.DB) *GormEquipmentStor {
	return &GormEquipmentStor{db: db}
}

func (s *GormEquipmentStor) GetAllEquipment() ([]lairmodel.Equipment, error) {
	var equipment []lairmodel.Equipment
	err := s.db.Find(&equipment).Error
	return equipment, err
}

func (s *GormEquipmentStor) GetEquipmentByID(equipmentID int) (*lairmodel.Equipment, error) {
	var equipment lairmodel.Equipment
	if err := s.db.First(&equipment, equipmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &equipment, nil
}

func (s *GormEquipmentStor) CreateEquipment(equipment *lairmodel.Equipment) (*lairmodel.Equipment, error) {
	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Create(equipment).Error
	})

	if err != nil {
		return nil, err
	}

	return equipment, nil
}

func (s *GormEquipmentStor) UpdateEquipment(equipment *lairmodel.Equipment) error {
	return WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Save(equipment).Error
	})
}

func (s *GormEquipmentStor) DeleteEquipment(equipmentID int) error {
	return WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Delete(&lairmodel.Equipment{}, equipmentID).Error
	})
}

func (s *GormEquipmentStor) CountEquipmentOnScheme(schemeID int) (int, error) {
	var count int64
	err := s.db.Model(&lairmodel.Equipment{}).
		Where("assigned_to_scheme_id = ?", schemeID).
		Count(&count).Error
	return int(count), err
}
