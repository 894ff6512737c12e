package stor

import (
	"errors"

	"github.com/lairworks/lairman/pkg/lairdb/lairmodel"
	"gorm.io/gorm"
)

// ErrNotFound is returned by the GetXxxByID/BySlug lookups when no row
// matches. Implementations map their backing store's not-found condition to
// this error so callers never depend on the storage technology.
var ErrNotFound = errors.New("record not found")

type MinionStor interface {
	GetAllMinions() ([]lairmodel.Minion, error)
	GetMinionByID(minionID int) (*lairmodel.Minion, error)
	CreateMinion(minion *lairmodel.Minion) (*lairmodel.Minion, error)
	UpdateMinion(minion *lairmodel.Minion) error
	DeleteMinion(minionID int) error
	CountMinionsOnScheme(schemeID int) (int, error)
	CountMinionsAtBase(baseID int) (int, error)
}

type SchemeStor interface {
	GetAllSchemes() ([]lairmodel.EvilScheme, error)
	GetSchemeByID(schemeID int) (*lairmodel.EvilScheme, error)
	GetSchemeBySlug(slug string) (*lairmodel.EvilScheme, error)
	GetSchemesByStatus(status string) ([]lairmodel.EvilScheme, error)
	CreateScheme(scheme *lairmodel.EvilScheme) (*lairmodel.EvilScheme, error)
	UpdateScheme(scheme *lairmodel.EvilScheme) error
	DeleteScheme(schemeID int) error
}

type BaseStor interface {
	GetAllBases() ([]lairmodel.SecretBase, error)
	GetBaseByID(baseID int) (*lairmodel.SecretBase, error)
	CreateBase(base *lairmodel.SecretBase) (*lairmodel.SecretBase, error)
	UpdateBase(base *lairmodel.SecretBase) error
	DeleteBase(baseID int) error
}

type EquipmentStor interface {
	GetAllEquipment() ([]lairmodel.Equipment, error)
	GetEquipmentByID(equipmentID int) (*lairmodel.Equipment, error)
	CreateEquipment(equipment *lairmodel.Equipment) (*lairmodel.Equipment, error)
	UpdateEquipment(equipment *lairmodel.Equipment) error
	DeleteEquipment(equipmentID int) error
	CountEquipmentOnScheme(schemeID int) (int, error)
}

type Stors struct {
	MinionStor    MinionStor
	SchemeStor    SchemeStor
	BaseStor      BaseStor
	EquipmentStor EquipmentStor
}

func NewGormStors(db *gorm.DB) *Stors {
	return &Stors{
		MinionStor:    NewGormMinionStor(db),
		SchemeStor:    NewGormSchemeStor(db),
		BaseStor:      NewGormBaseStor(db),
		EquipmentStor: NewGormEquipmentStor(db),
	}
}
