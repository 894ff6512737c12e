package lairsvc

import (
	"testing"

	"github.com/lairworks/lairman/pkg/lairdb/lairmodel"
	"github.com/lairworks/lairman/pkg/lairdb/stor"
	"github.com/lairworks/lairman/pkg/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBaseService(bases []lairmodel.SecretBase, minions []lairmodel.Minion) *BaseService {
	return NewBaseService(settings.Default(),
		stor.NewInMemoryBaseStor(bases),
		stor.NewInMemoryMinionStor(minions))
}

func TestBaseOccupancy(t *testing.T) {
	base := &lairmodel.SecretBase{ID: 1, Name: "Volcano Fortress", Location: "Pacific Ring of Fire", Capacity: 3, SecurityLevel: 9}

	minions := []lairmodel.Minion{
		{ID: 1, Name: "Igor", CurrentBaseID: intPtr(1)},
		{ID: 2, Name: "Helga", CurrentBaseID: intPtr(1)},
		{ID: 3, Name: "Boris", CurrentBaseID: intPtr(2)},
		{ID: 4, Name: "Klaus"},
	}

	s := newBaseService([]lairmodel.SecretBase{*base}, minions)

	t.Run("occupancy counts stationed minions only", func(t *testing.T) {
		occupancy, err := s.GetCurrentOccupancy(1)
		require.NoError(t, err)
		assert.Equal(t, 2, occupancy)
	})

	t.Run("available capacity", func(t *testing.T) {
		available, err := s.GetAvailableCapacity(base)
		require.NoError(t, err)
		assert.Equal(t, 1, available)
	})

	t.Run("can accommodate while below capacity", func(t *testing.T) {
		ok, err := s.CanAccommodateMinion(base)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("full base cannot accommodate", func(t *testing.T) {
		fullBase := &lairmodel.SecretBase{ID: 1, Capacity: 2}
		ok, err := s.CanAccommodateMinion(fullBase)
		require.NoError(t, err)
		assert.False(t, ok)

		available, err := s.GetAvailableCapacity(fullBase)
		require.NoError(t, err)
		assert.Equal(t, 0, available)
	})

	t.Run("nil base", func(t *testing.T) {
		_, err := s.GetAvailableCapacity(nil)
		require.ErrorIs(t, err, ErrNilBase)

		_, err = s.CanAccommodateMinion(nil)
		require.ErrorIs(t, err, ErrNilBase)
	})
}

func TestValidateBase(t *testing.T) {
	s := newBaseService(nil, nil)

	var tests = []struct {
		name            string
		baseName        string
		location        string
		capacity        int
		securityLevel   int
		maintenanceCost float64
		errExpected     bool
		errMsg          string
	}{
		{name: "valid base", baseName: "Volcano Fortress", location: "Pacific Ring of Fire", capacity: 50, securityLevel: 9, maintenanceCost: 75000, errExpected: false},
		{name: "empty name", baseName: " ", location: "Pacific Ring of Fire", capacity: 50, securityLevel: 9, maintenanceCost: 75000, errExpected: true, errMsg: "Base name is required!"},
		{name: "empty location", baseName: "Volcano Fortress", location: "", capacity: 50, securityLevel: 9, maintenanceCost: 75000, errExpected: true, errMsg: "Location is required!"},
		{name: "zero capacity", baseName: "Volcano Fortress", location: "Pacific Ring of Fire", capacity: 0, securityLevel: 9, maintenanceCost: 75000, errExpected: true, errMsg: "Capacity must be greater than zero!"},
		{name: "security level out of range", baseName: "Volcano Fortress", location: "Pacific Ring of Fire", capacity: 50, securityLevel: 11, maintenanceCost: 75000, errExpected: true, errMsg: "Security level must be between 1 and 10!"},
		{name: "negative maintenance cost", baseName: "Volcano Fortress", location: "Pacific Ring of Fire", capacity: 50, securityLevel: 9, maintenanceCost: -1, errExpected: true, errMsg: "Maintenance cost cannot be negative!"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := s.ValidateBase(test.baseName, test.location, test.capacity, test.securityLevel, test.maintenanceCost)
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

func TestCreateBase(t *testing.T) {
	t.Run("persists valid base", func(t *testing.T) {
		baseStor := stor.NewInMemoryBaseStor(nil)
		s := NewBaseService(settings.Default(), baseStor, stor.NewInMemoryMinionStor(nil))

		base, err := s.CreateBase(&lairmodel.SecretBase{
			Name:                   "Arctic Bunker",
			Location:               "Svalbard",
			Capacity:               25,
			SecurityLevel:          7,
			MonthlyMaintenanceCost: 45000,
		})
		require.NoError(t, err)
		assert.NotZero(t, base.ID)
	})

	t.Run("rejects invalid base", func(t *testing.T) {
		s := newBaseService(nil, nil)
		_, err := s.CreateBase(&lairmodel.SecretBase{Name: "", Location: "Svalbard", Capacity: 25, SecurityLevel: 7})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("nil base", func(t *testing.T) {
		s := newBaseService(nil, nil)
		_, err := s.CreateBase(nil)
		require.ErrorIs(t, err, ErrNilBase)
	})
}
