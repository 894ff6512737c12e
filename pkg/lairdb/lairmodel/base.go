package lairmodel

import "time"

type SecretBase struct {
	ID                     int        `json:"id"`
	Name                   string     `json:"name"`
	Location               string     `json:"location"`
	Capacity               int        `json:"capacity"`
	SecurityLevel          int        `json:"security_level"`
	MonthlyMaintenanceCost float64    `json:"monthly_maintenance_cost"`
	HasDoomsdayDevice      bool       `json:"has_doomsday_device"`
	IsDiscovered           bool       `json:"is_discovered"`
	LastInspectionDate     *time.Time `json:"last_inspection_date"`
}
