package lairsvc

import (
	"testing"
	"time"

	"github.com/lairworks/lairman/pkg/lairdb/lairmodel"
	"github.com/lairworks/lairman/pkg/lairdb/stor"
	"github.com/lairworks/lairman/pkg/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatisticsService(minions []lairmodel.Minion, schemes []lairmodel.EvilScheme, bases []lairmodel.SecretBase, equipment []lairmodel.Equipment) *StatisticsService {
	s := settings.Default()
	minionStor := stor.NewInMemoryMinionStor(minions)
	schemeStor := stor.NewInMemorySchemeStor(schemes)
	baseStor := stor.NewInMemoryBaseStor(bases)
	equipmentStor := stor.NewInMemoryEquipmentStor(equipment)

	minionService := NewMinionService(s, minionStor)
	schemeService := NewSchemeService(s, schemeStor, minionStor, equipmentStor)
	baseService := NewBaseService(s, baseStor, minionStor)
	equipmentService := NewEquipmentService(s, equipmentStor, schemeStor)

	return NewStatisticsService(s, minionService, schemeService, baseService, equipmentService)
}

func TestCalculateDashboardStatistics(t *testing.T) {
	futureDeadline := time.Now().Add(30 * 24 * time.Hour)

	minions := []lairmodel.Minion{
		{ID: 1, Name: "Igor", LoyaltyScore: 90, SalaryDemand: 1000},
		{ID: 2, Name: "Helga", LoyaltyScore: 50, SalaryDemand: 2000},
		{ID: 3, Name: "Boris", LoyaltyScore: 20, SalaryDemand: 3000},
	}

	schemes := []lairmodel.EvilScheme{
		{ID: 1, Name: "Steal the Moon", RequiredSpecialty: "Henchman", Status: lairmodel.StatusActive,
			Budget: 100000, CurrentSpending: 100001, TargetCompletionDate: futureDeadline},
		{ID: 2, Name: "Weather Domination", RequiredSpecialty: "Scientist", Status: lairmodel.StatusPlanning,
			Budget: 250000, TargetCompletionDate: futureDeadline},
	}

	bases := []lairmodel.SecretBase{
		{ID: 1, Name: "Volcano Fortress", MonthlyMaintenanceCost: 5000},
	}

	equipment := []lairmodel.Equipment{
		{ID: 1, Name: "Freeze Ray", Condition: 100, MaintenanceCost: 100},
		{ID: 2, Name: "Shark Tank", Condition: 10, MaintenanceCost: 200},
	}

	s := newStatisticsService(minions, schemes, bases, equipment)

	stats, err := s.CalculateDashboardStatistics()
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalMinions)
	assert.Equal(t, 1, stats.HappyMinions)
	assert.Equal(t, 1, stats.GrumpyMinions)
	assert.Equal(t, 1, stats.BetrayalMinions)

	assert.Equal(t, 2, stats.TotalSchemes)
	assert.Equal(t, 1, stats.ActiveSchemes)
	// The active scheme has no crew and is over budget: 50 - 15 - 20.
	assert.Equal(t, 15.0, stats.AverageSuccessLikelihood)

	assert.Equal(t, 6000.0, stats.TotalMinionSalaries)
	assert.Equal(t, 5000.0, stats.TotalBaseCosts)
	assert.Equal(t, 300.0, stats.TotalEquipmentCosts)
	assert.Equal(t, 11300.0, stats.TotalMonthlyCost)

	require.Len(t, stats.Alerts, 3)
	assert.Contains(t, stats.Alerts, "Warning: 1 minions have low loyalty and may betray you!")
	assert.Contains(t, stats.Alerts, "1 equipment items are broken!")
	assert.Contains(t, stats.Alerts, "1 schemes are over budget!")
}

func TestCalculateDashboardStatisticsClassifiesByComputedMood(t *testing.T) {
	// Stored mood is stale, the loyalty score says happy.
	minions := []lairmodel.Minion{
		{ID: 1, Name: "Igor", LoyaltyScore: 95, MoodStatus: lairmodel.MoodBetrayal, SalaryDemand: 1000},
	}

	s := newStatisticsService(minions, nil, nil, nil)

	stats, err := s.CalculateDashboardStatistics()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.HappyMinions)
	assert.Equal(t, 0, stats.BetrayalMinions)
}

func TestGenerateAlerts(t *testing.T) {
	t.Run("all clear", func(t *testing.T) {
		s := newStatisticsService(nil, nil, nil, nil)

		alerts, err := s.GenerateAlerts()
		require.NoError(t, err)
		require.Len(t, alerts, 1)
		assert.Equal(t, "All systems operational", alerts[0])
	})

	t.Run("equipment at broken threshold does not alert", func(t *testing.T) {
		equipment := []lairmodel.Equipment{
			{ID: 1, Name: "Freeze Ray", Condition: 20, MaintenanceCost: 100},
		}

		s := newStatisticsService(nil, nil, nil, equipment)

		alerts, err := s.GenerateAlerts()
		require.NoError(t, err)
		require.Len(t, alerts, 1)
		assert.Equal(t, "All systems operational", alerts[0])
	})

	t.Run("counts every category", func(t *testing.T) {
		minions := []lairmodel.Minion{
			{ID: 1, LoyaltyScore: 10},
			{ID: 2, LoyaltyScore: 39},
			{ID: 3, LoyaltyScore: 40},
		}

		schemes := []lairmodel.EvilScheme{
			{ID: 1, Budget: 100, CurrentSpending: 101},
			{ID: 2, Budget: 100, CurrentSpending: 100},
		}

		equipment := []lairmodel.Equipment{
			{ID: 1, Condition: 19},
			{ID: 2, Condition: 5},
			{ID: 3, Condition: 50},
		}

		s := newStatisticsService(minions, schemes, nil, equipment)

		alerts, err := s.GenerateAlerts()
		require.NoError(t, err)
		require.Len(t, alerts, 3)
		assert.Equal(t, "Warning: 2 minions have low loyalty and may betray you!", alerts[0])
		assert.Equal(t, "2 equipment items are broken!", alerts[1])
		assert.Equal(t, "1 schemes are over budget!", alerts[2])
	})
}
