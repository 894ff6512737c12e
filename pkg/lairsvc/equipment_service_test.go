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

func newEquipmentService(equipment []lairmodel.Equipment, schemes []lairmodel.EvilScheme) *EquipmentService {
	return NewEquipmentService(settings.Default(),
		stor.NewInMemoryEquipmentStor(equipment),
		stor.NewInMemorySchemeStor(schemes))
}

func TestPerformMaintenance(t *testing.T) {
	var tests = []struct {
		name          string
		category      string
		purchasePrice float64
		expectedCost  float64
	}{
		{name: "doomsday device billed at higher rate", category: "Doomsday Device", purchasePrice: 1000000, expectedCost: 300000},
		{name: "regular equipment billed at standard rate", category: "Weapon", purchasePrice: 10000, expectedCost: 1500},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			equipment := lairmodel.Equipment{ID: 1, Name: "Freeze Ray", Category: test.category, Condition: 30, PurchasePrice: test.purchasePrice}
			equipmentStor := stor.NewInMemoryEquipmentStor([]lairmodel.Equipment{equipment})
			s := NewEquipmentService(settings.Default(), equipmentStor, stor.NewInMemorySchemeStor(nil))

			cost, err := s.PerformMaintenance(&equipment)
			require.NoError(t, err)
			assert.InDelta(t, test.expectedCost, cost, 0.001)
			assert.Equal(t, 100, equipment.Condition)
			require.NotNil(t, equipment.LastMaintenanceDate)

			stored, err := equipmentStor.GetEquipmentByID(1)
			require.NoError(t, err)
			assert.Equal(t, 100, stored.Condition)
		})
	}

	t.Run("cost is charged even at full condition", func(t *testing.T) {
		equipment := lairmodel.Equipment{ID: 1, Name: "Jetpack", Category: "Gadget", Condition: 100, PurchasePrice: 20000}
		s := newEquipmentService([]lairmodel.Equipment{equipment}, nil)

		cost, err := s.PerformMaintenance(&equipment)
		require.NoError(t, err)
		assert.InDelta(t, 3000, cost, 0.001)
	})

	t.Run("nil equipment", func(t *testing.T) {
		s := newEquipmentService(nil, nil)
		_, err := s.PerformMaintenance(nil)
		require.ErrorIs(t, err, ErrNilEquipment)
	})
}

func TestDegradeCondition(t *testing.T) {
	activeScheme := lairmodel.EvilScheme{ID: 1, Name: "Steal the Moon", Status: lairmodel.StatusActive}
	planningScheme := lairmodel.EvilScheme{ID: 2, Name: "Weather Domination", Status: lairmodel.StatusPlanning}

	maintainedDaysAgo := func(days int) *time.Time {
		d := time.Now().Add(-time.Duration(days) * 24 * time.Hour)
		return &d
	}

	var tests = []struct {
		name              string
		equipment         lairmodel.Equipment
		expectedCondition int
	}{
		{
			name:              "unassigned equipment does not degrade",
			equipment:         lairmodel.Equipment{ID: 1, Condition: 80},
			expectedCondition: 80,
		},
		{
			name:              "assigned to inactive scheme does not degrade",
			equipment:         lairmodel.Equipment{ID: 1, Condition: 80, AssignedToSchemeID: intPtr(2)},
			expectedCondition: 80,
		},
		{
			name:              "assigned to missing scheme does not degrade",
			equipment:         lairmodel.Equipment{ID: 1, Condition: 80, AssignedToSchemeID: intPtr(99)},
			expectedCondition: 80,
		},
		{
			name:              "no maintenance history degrades one month worth",
			equipment:         lairmodel.Equipment{ID: 1, Condition: 80, AssignedToSchemeID: intPtr(1)},
			expectedCondition: 75,
		},
		{
			name:              "recent maintenance still degrades one month worth",
			equipment:         lairmodel.Equipment{ID: 1, Condition: 80, AssignedToSchemeID: intPtr(1), LastMaintenanceDate: maintainedDaysAgo(3)},
			expectedCondition: 75,
		},
		{
			name:              "three months without maintenance degrades three times",
			equipment:         lairmodel.Equipment{ID: 1, Condition: 80, AssignedToSchemeID: intPtr(1), LastMaintenanceDate: maintainedDaysAgo(91)},
			expectedCondition: 65,
		},
		{
			name:              "condition floors at zero",
			equipment:         lairmodel.Equipment{ID: 1, Condition: 3, AssignedToSchemeID: intPtr(1)},
			expectedCondition: 0,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := newEquipmentService([]lairmodel.Equipment{test.equipment},
				[]lairmodel.EvilScheme{activeScheme, planningScheme})

			equipment := test.equipment
			require.NoError(t, s.DegradeCondition(&equipment))
			assert.Equal(t, test.expectedCondition, equipment.Condition)
		})
	}

	t.Run("nil equipment", func(t *testing.T) {
		s := newEquipmentService(nil, nil)
		require.ErrorIs(t, s.DegradeCondition(nil), ErrNilEquipment)
	})
}

func TestIsOperationalAndIsBroken(t *testing.T) {
	s := newEquipmentService(nil, nil)

	var tests = []struct {
		name        string
		condition   int
		operational bool
		broken      bool
	}{
		{name: "full condition", condition: 100, operational: true, broken: false},
		{name: "exactly at operational threshold", condition: 50, operational: true, broken: false},
		{name: "just below operational threshold", condition: 49, operational: false, broken: false},
		{name: "exactly at broken threshold is not broken", condition: 20, operational: false, broken: false},
		{name: "just below broken threshold", condition: 19, operational: false, broken: true},
		{name: "zero condition", condition: 0, operational: false, broken: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			equipment := lairmodel.Equipment{Condition: test.condition}
			assert.Equal(t, test.operational, s.IsOperational(equipment))
			assert.Equal(t, test.broken, s.IsBroken(equipment))
		})
	}
}

func TestAssignToScheme(t *testing.T) {
	schemes := []lairmodel.EvilScheme{{ID: 1, Name: "Steal the Moon", Status: lairmodel.StatusActive}}

	t.Run("assigns and returns the scheme", func(t *testing.T) {
		equipment := lairmodel.Equipment{ID: 1, Name: "Freeze Ray", Category: "Weapon"}
		equipmentStor := stor.NewInMemoryEquipmentStor([]lairmodel.Equipment{equipment})
		s := NewEquipmentService(settings.Default(), equipmentStor, stor.NewInMemorySchemeStor(schemes))

		scheme, err := s.AssignToScheme(&equipment, 1)
		require.NoError(t, err)
		assert.Equal(t, "Steal the Moon", scheme.Name)
		require.NotNil(t, equipment.AssignedToSchemeID)
		assert.Equal(t, 1, *equipment.AssignedToSchemeID)

		stored, err := equipmentStor.GetEquipmentByID(1)
		require.NoError(t, err)
		require.NotNil(t, stored.AssignedToSchemeID)
	})

	t.Run("missing scheme", func(t *testing.T) {
		equipment := lairmodel.Equipment{ID: 1, Name: "Freeze Ray", Category: "Weapon"}
		s := newEquipmentService([]lairmodel.Equipment{equipment}, schemes)

		_, err := s.AssignToScheme(&equipment, 99)
		require.ErrorIs(t, err, ErrSchemeNotFound)
		assert.Nil(t, equipment.AssignedToSchemeID)
	})

	t.Run("nil equipment", func(t *testing.T) {
		s := newEquipmentService(nil, schemes)
		_, err := s.AssignToScheme(nil, 1)
		require.ErrorIs(t, err, ErrNilEquipment)
	})
}

func TestValidateEquipment(t *testing.T) {
	s := newEquipmentService(nil, nil)

	var tests = []struct {
		name            string
		equipmentName   string
		category        string
		purchasePrice   float64
		maintenanceCost float64
		errExpected     bool
		errMsg          string
	}{
		{name: "valid equipment", equipmentName: "Freeze Ray", category: "Weapon", purchasePrice: 10000, maintenanceCost: 500, errExpected: false},
		{name: "empty name", equipmentName: " ", category: "Weapon", purchasePrice: 10000, maintenanceCost: 500, errExpected: true, errMsg: "Equipment name is required!"},
		{name: "empty category", equipmentName: "Freeze Ray", category: "", purchasePrice: 10000, maintenanceCost: 500, errExpected: true, errMsg: "Equipment category is required!"},
		{name: "negative purchase price", equipmentName: "Freeze Ray", category: "Weapon", purchasePrice: -1, maintenanceCost: 500, errExpected: true, errMsg: "Purchase price cannot be negative!"},
		{name: "negative maintenance cost", equipmentName: "Freeze Ray", category: "Weapon", purchasePrice: 10000, maintenanceCost: -1, errExpected: true, errMsg: "Maintenance cost cannot be negative!"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := s.ValidateEquipment(test.equipmentName, test.category, test.purchasePrice, test.maintenanceCost)
			if !test.errExpected {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			require.True(t, IsValidationError(err))
			assert.Contains(t, err.Error(), test.errMsg)
		})
	}
}

func TestCreateEquipment(t *testing.T) {
	equipmentStor := stor.NewInMemoryEquipmentStor(nil)
	s := NewEquipmentService(settings.Default(), equipmentStor, stor.NewInMemorySchemeStor(nil))

	equipment, err := s.CreateEquipment("Shark Tank", "Gadget", 75000, 2000, true, intPtr(1))
	require.NoError(t, err)
	require.NotNil(t, equipment)
	assert.NotZero(t, equipment.ID)
	assert.Equal(t, 100, equipment.Condition)
	require.NotNil(t, equipment.LastMaintenanceDate)
	require.NotNil(t, equipment.StoredAtBaseID)
	assert.Equal(t, 1, *equipment.StoredAtBaseID)
}
