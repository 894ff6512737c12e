package lairsvc

import (
	"context"
	"testing"
	"time"

	"github.com/lairworks/lairman/pkg/lairdb/lairmodel"
	"github.com/lairworks/lairman/pkg/lairdb/stor"
	"github.com/lairworks/lairman/pkg/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpkeepPass(t *testing.T) {
	futureDeadline := time.Now().Add(30 * 24 * time.Hour)

	schemes := []lairmodel.EvilScheme{
		{ID: 1, Name: "Steal the Moon", RequiredSpecialty: "Henchman", Status: lairmodel.StatusActive,
			Budget: 100000, TargetCompletionDate: futureDeadline, SuccessLikelihood: 99},
	}

	minions := []lairmodel.Minion{
		{ID: 1, Specialty: "Henchman", CurrentSchemeID: intPtr(1)},
		{ID: 2, Specialty: "Henchman", CurrentSchemeID: intPtr(1)},
	}

	equipment := []lairmodel.Equipment{
		{ID: 1, Name: "Freeze Ray", Category: "Weapon", Condition: 80, AssignedToSchemeID: intPtr(1)},
		{ID: 2, Name: "Jetpack", Category: "Transportation", Condition: 80},
	}

	s := settings.Default()
	minionStor := stor.NewInMemoryMinionStor(minions)
	schemeStor := stor.NewInMemorySchemeStor(schemes)
	equipmentStor := stor.NewInMemoryEquipmentStor(equipment)

	schemeService := NewSchemeService(s, schemeStor, minionStor, equipmentStor)
	equipmentService := NewEquipmentService(s, equipmentStor, schemeStor)

	m := NewUpkeepMonitor(
		WithSchemeService(schemeService),
		WithEquipmentService(equipmentService),
		WithInterval(time.Hour),
	)

	m.performUpkeep()

	degraded, err := equipmentStor.GetEquipmentByID(1)
	require.NoError(t, err)
	assert.Equal(t, 75, degraded.Condition)

	untouched, err := equipmentStor.GetEquipmentByID(2)
	require.NoError(t, err)
	assert.Equal(t, 80, untouched.Condition)

	scheme, err := schemeStor.GetSchemeByID(1)
	require.NoError(t, err)
	// Two henchmen and a still operational freeze ray: 50 + 20 + 5.
	assert.Equal(t, 75, scheme.SuccessLikelihood)
}

func TestUpkeepMonitorRunStopsOnCancel(t *testing.T) {
	s := settings.Default()
	minionStor := stor.NewInMemoryMinionStor(nil)
	schemeStor := stor.NewInMemorySchemeStor(nil)
	equipmentStor := stor.NewInMemoryEquipmentStor(nil)

	m := NewUpkeepMonitor(
		WithSchemeService(NewSchemeService(s, schemeStor, minionStor, equipmentStor)),
		WithEquipmentService(NewEquipmentService(s, equipmentStor, schemeStor)),
		WithInterval(time.Hour),
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("monitor did not stop after cancel")
	}
}
