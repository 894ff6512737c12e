package lairsvc

import (
	"fmt"

	"github.com/lairworks/lairman/pkg/lairdb/lairmodel"
	"github.com/lairworks/lairman/pkg/settings"
)

// DashboardStatistics is the rollup shown on the main dashboard.
type DashboardStatistics struct {
	TotalMinions             int      `json:"total_minions"`
	HappyMinions             int      `json:"happy_minions"`
	GrumpyMinions            int      `json:"grumpy_minions"`
	BetrayalMinions          int      `json:"betrayal_minions"`
	TotalSchemes             int      `json:"total_schemes"`
	ActiveSchemes            int      `json:"active_schemes"`
	AverageSuccessLikelihood float64  `json:"average_success_likelihood"`
	TotalMinionSalaries      float64  `json:"total_minion_salaries"`
	TotalBaseCosts           float64  `json:"total_base_costs"`
	TotalEquipmentCosts      float64  `json:"total_equipment_costs"`
	TotalMonthlyCost         float64  `json:"total_monthly_cost"`
	Alerts                   []string `json:"alerts"`
}

// StatisticsService composes the four domain services into dashboard level
// rollups and alerts.
type StatisticsService struct {
	minionService    *MinionService
	schemeService    *SchemeService
	baseService      *BaseService
	equipmentService *EquipmentService
	settings         *settings.Settings
}

func NewStatisticsService(s *settings.Settings, minionService *MinionService, schemeService *SchemeService, baseService *BaseService, equipmentService *EquipmentService) *StatisticsService {
	return &StatisticsService{
		minionService:    minionService,
		schemeService:    schemeService,
		baseService:      baseService,
		equipmentService: equipmentService,
		settings:         s,
	}
}

// CalculateDashboardStatistics walks every entity once, classifying minions
// by freshly computed mood (the stored mood may be stale), summing the
// monthly costs and averaging success across active schemes.
func (s *StatisticsService) CalculateDashboardStatistics() (*DashboardStatistics, error) {
	stats := &DashboardStatistics{}

	minions, err := s.minionService.GetAllMinions()
	if err != nil {
		return nil, err
	}

	schemes, err := s.schemeService.GetAllSchemes()
	if err != nil {
		return nil, err
	}

	bases, err := s.baseService.GetAllBases()
	if err != nil {
		return nil, err
	}

	equipment, err := s.equipmentService.GetAllEquipment()
	if err != nil {
		return nil, err
	}

	for _, minion := range minions {
		stats.TotalMinions++

		switch s.minionService.CalculateMood(minion.LoyaltyScore) {
		case lairmodel.MoodHappy:
			stats.HappyMinions++
		case lairmodel.MoodBetrayal:
			stats.BetrayalMinions++
		default:
			stats.GrumpyMinions++
		}

		stats.TotalMinionSalaries += minion.SalaryDemand
	}

	stats.TotalSchemes = len(schemes)

	activeSchemes, err := s.schemeService.GetActiveSchemes()
	if err != nil {
		return nil, err
	}
	stats.ActiveSchemes = len(activeSchemes)

	if len(activeSchemes) > 0 {
		avg, err := s.schemeService.CalculateAverageSuccess(activeSchemes)
		if err != nil {
			return nil, err
		}
		stats.AverageSuccessLikelihood = avg
	}

	for _, base := range bases {
		stats.TotalBaseCosts += base.MonthlyMaintenanceCost
	}

	for _, e := range equipment {
		stats.TotalEquipmentCosts += e.MaintenanceCost
	}

	stats.TotalMonthlyCost = stats.TotalMinionSalaries + stats.TotalBaseCosts + stats.TotalEquipmentCosts

	if stats.Alerts, err = s.GenerateAlerts(); err != nil {
		return nil, err
	}

	return stats, nil
}

// GenerateAlerts produces the warning list for the dashboard: disloyal
// minions, broken equipment and over budget schemes. When nothing is wrong a
// single all-clear message is returned instead.
func (s *StatisticsService) GenerateAlerts() ([]string, error) {
	var alerts []string

	minions, err := s.minionService.GetAllMinions()
	if err != nil {
		return nil, err
	}

	schemes, err := s.schemeService.GetAllSchemes()
	if err != nil {
		return nil, err
	}

	equipment, err := s.equipmentService.GetAllEquipment()
	if err != nil {
		return nil, err
	}

	lowLoyaltyMinions := 0
	for _, m := range minions {
		if m.LoyaltyScore < s.settings.Thresholds.LowLoyalty {
			lowLoyaltyMinions++
		}
	}
	if lowLoyaltyMinions > 0 {
		alerts = append(alerts, fmt.Sprintf("Warning: %d minions have low loyalty and may betray you!", lowLoyaltyMinions))
	}

	brokenEquipment := 0
	for _, e := range equipment {
		if s.equipmentService.IsBroken(e) {
			brokenEquipment++
		}
	}
	if brokenEquipment > 0 {
		alerts = append(alerts, fmt.Sprintf("%d equipment items are broken!", brokenEquipment))
	}

	overBudgetSchemes := 0
	for i := range schemes {
		overBudget, err := s.schemeService.IsOverBudget(&schemes[i])
		if err != nil {
			return nil, err
		}

		if overBudget {
			overBudgetSchemes++
		}
	}
	if overBudgetSchemes > 0 {
		alerts = append(alerts, fmt.Sprintf("%d schemes are over budget!", overBudgetSchemes))
	}

	if len(alerts) == 0 {
		alerts = append(alerts, "All systems operational")
	}

	return alerts, nil
}
