package lairsvc

import (
	"context"
	"time"

	"github.com/apex/log"
)

type UpkeepMonitorOptionFN func(*UpkeepMonitor)

// UpkeepMonitor periodically degrades equipment in use on active schemes and
// refreshes the stored success likelihoods. It is the daemon's replacement
// for the old UI timer: cooperative, single loop, no parallelism.
type UpkeepMonitor struct {
	schemeService    *SchemeService
	equipmentService *EquipmentService
	interval         time.Duration
}

func NewUpkeepMonitor(optFNs ...UpkeepMonitorOptionFN) *UpkeepMonitor {
	m := &UpkeepMonitor{interval: 10 * time.Minute}

	for _, optfn := range optFNs {
		optfn(m)
	}

	return m
}

func WithSchemeService(schemeService *SchemeService) UpkeepMonitorOptionFN {
	return func(m *UpkeepMonitor) {
		m.schemeService = schemeService
	}
}

func WithEquipmentService(equipmentService *EquipmentService) UpkeepMonitorOptionFN {
	return func(m *UpkeepMonitor) {
		m.equipmentService = equipmentService
	}
}

func WithInterval(interval time.Duration) UpkeepMonitorOptionFN {
	return func(m *UpkeepMonitor) {
		m.interval = interval
	}
}

// Run loops until the context is canceled, performing one upkeep pass per
// interval.
func (m *UpkeepMonitor) Run(c context.Context) {
	for {
		m.performUpkeep()
		select {
		case <-c.Done():
			return
		case <-time.After(m.interval):
		}
	}
}

func (m *UpkeepMonitor) performUpkeep() {
	equipment, err := m.equipmentService.GetAllEquipment()
	if err != nil {
		log.Warnf("upkeep: unable to list equipment: %s", err)
	} else {
		for i := range equipment {
			if err := m.equipmentService.DegradeCondition(&equipment[i]); err != nil {
				log.Warnf("upkeep: unable to degrade equipment %d: %s", equipment[i].ID, err)
			}
		}
	}

	schemes, err := m.schemeService.GetActiveSchemes()
	if err != nil {
		log.Warnf("upkeep: unable to list active schemes: %s", err)
		return
	}

	for i := range schemes {
		if err := m.schemeService.UpdateSuccessLikelihood(&schemes[i]); err != nil {
			log.Warnf("upkeep: unable to update success likelihood for scheme %d: %s", schemes[i].ID, err)
		}
	}
}
