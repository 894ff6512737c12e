package settings

// Default returns the hardcoded fallback settings. These are the values the
// daemon runs with when no settings file exists or the file fails to parse.
func Default() *Settings {
	return &Settings{
		Database: Database{
			Path:              "villainlair.db",
			ConnectionTimeout: 30,
		},
		BusinessRules: BusinessRules{
			MaxMinionsPerScheme:        10,
			MaxEquipmentPerScheme:      5,
			DefaultMinionSalary:        5000.0,
			LoyaltyDecayRate:           5,
			LoyaltyGrowthRate:          3,
			ConditionDegradationRate:   5,
			MaintenanceCostPct:         0.15,
			DoomsdayMaintenanceCostPct: 0.30,
		},
		Thresholds: Thresholds{
			LowLoyalty:               40,
			HighLoyalty:              70,
			OverworkedDays:           60,
			SpecialistSkillLevel:     8,
			MinEquipmentCondition:    50,
			BrokenEquipmentCondition: 20,
			HighDiabolicalRating:     8,
			SuccessLikelihoodHigh:    70,
			SuccessLikelihoodLow:     30,
		},
		ValidationRanges: ValidationRanges{
			SkillLevel:        Range{Min: 1, Max: 10},
			LoyaltyScore:      Range{Min: 0, Max: 100},
			Condition:         Range{Min: 0, Max: 100},
			DiabolicalRating:  Range{Min: 1, Max: 10},
			SecurityLevel:     Range{Min: 1, Max: 10},
			SuccessLikelihood: Range{Min: 0, Max: 100},
		},
		ValidValues: ValidValues{
			MinionSpecialties: []string{
				"Henchman", "Scientist", "Technician", "Hacking", "Explosives",
				"Disguise", "Combat", "Engineering", "Piloting",
			},
			MoodStatuses:   []string{"Happy", "Grumpy", "Plotting Betrayal", "Exhausted"},
			SchemeStatuses: []string{"Planning", "Active", "On Hold", "Completed", "Failed"},
			EquipmentCategories: []string{
				"Weapon", "Vehicle", "Gadget", "Doomsday Device", "Surveillance",
				"Transportation", "Communication", "Weapons",
			},
		},
		DefaultValues: DefaultValues{
			LoyaltyScore: 50,
			Condition:    100,
			MoodStatus:   "Grumpy",
		},
	}
}
