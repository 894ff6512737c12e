package lairmodel

import (
	"fmt"
	"time"
)

// CategoryDoomsdayDevice carries a higher maintenance cost percentage than
// every other equipment category.
const CategoryDoomsdayDevice = "Doomsday Device"

type Equipment struct {
	ID                  int        `json:"id"`
	Name                string     `json:"name"`
	Category            string     `json:"category"`
	Condition           int        `json:"condition"`
	PurchasePrice       float64    `json:"purchase_price"`
	MaintenanceCost     float64    `json:"maintenance_cost"`
	AssignedToSchemeID  *int       `json:"assigned_to_scheme_id"`
	StoredAtBaseID      *int       `json:"stored_at_base_id"`
	RequiresSpecialist  bool       `json:"requires_specialist"`
	LastMaintenanceDate *time.Time `json:"last_maintenance_date"`
}

func (Equipment) TableName() string {
	return "equipment"
}

func (e Equipment) String() string {
	return fmt.Sprintf("%s (%s, Condition: %d%%)", e.Name, e.Category, e.Condition)
}
