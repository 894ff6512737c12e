package settings

import (
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Settings holds every tunable rate, threshold, range and valid-value set the
// rule engine consumes. It is loaded once at startup and never mutated after
// construction; services receive a *Settings at construction time.
type Settings struct {
	Database         Database         `mapstructure:"database" json:"database"`
	BusinessRules    BusinessRules    `mapstructure:"business_rules" json:"business_rules"`
	Thresholds       Thresholds       `mapstructure:"thresholds" json:"thresholds"`
	ValidationRanges ValidationRanges `mapstructure:"validation_ranges" json:"validation_ranges"`
	ValidValues      ValidValues      `mapstructure:"valid_values" json:"valid_values"`
	DefaultValues    DefaultValues    `mapstructure:"default_values" json:"default_values"`
}

type Database struct {
	Path              string `mapstructure:"path" json:"path"`
	ConnectionTimeout int    `mapstructure:"connection_timeout" json:"connection_timeout"`
}

type BusinessRules struct {
	MaxMinionsPerScheme        int     `mapstructure:"max_minions_per_scheme" json:"max_minions_per_scheme"`
	MaxEquipmentPerScheme      int     `mapstructure:"max_equipment_per_scheme" json:"max_equipment_per_scheme"`
	DefaultMinionSalary        float64 `mapstructure:"default_minion_salary" json:"default_minion_salary"`
	LoyaltyDecayRate           int     `mapstructure:"loyalty_decay_rate" json:"loyalty_decay_rate"`
	LoyaltyGrowthRate          int     `mapstructure:"loyalty_growth_rate" json:"loyalty_growth_rate"`
	ConditionDegradationRate   int     `mapstructure:"condition_degradation_rate" json:"condition_degradation_rate"`
	MaintenanceCostPct         float64 `mapstructure:"maintenance_cost_pct" json:"maintenance_cost_pct"`
	DoomsdayMaintenanceCostPct float64 `mapstructure:"doomsday_maintenance_cost_pct" json:"doomsday_maintenance_cost_pct"`
}

type Thresholds struct {
	LowLoyalty               int `mapstructure:"low_loyalty" json:"low_loyalty"`
	HighLoyalty              int `mapstructure:"high_loyalty" json:"high_loyalty"`
	OverworkedDays           int `mapstructure:"overworked_days" json:"overworked_days"`
	SpecialistSkillLevel     int `mapstructure:"specialist_skill_level" json:"specialist_skill_level"`
	MinEquipmentCondition    int `mapstructure:"min_equipment_condition" json:"min_equipment_condition"`
	BrokenEquipmentCondition int `mapstructure:"broken_equipment_condition" json:"broken_equipment_condition"`
	HighDiabolicalRating     int `mapstructure:"high_diabolical_rating" json:"high_diabolical_rating"`
	SuccessLikelihoodHigh    int `mapstructure:"success_likelihood_high" json:"success_likelihood_high"`
	SuccessLikelihoodLow     int `mapstructure:"success_likelihood_low" json:"success_likelihood_low"`
}

// Range is an inclusive [Min, Max] validation range.
type Range struct {
	Min int `mapstructure:"min" json:"min"`
	Max int `mapstructure:"max" json:"max"`
}

type ValidationRanges struct {
	SkillLevel        Range `mapstructure:"skill_level" json:"skill_level"`
	LoyaltyScore      Range `mapstructure:"loyalty_score" json:"loyalty_score"`
	Condition         Range `mapstructure:"condition" json:"condition"`
	DiabolicalRating  Range `mapstructure:"diabolical_rating" json:"diabolical_rating"`
	SecurityLevel     Range `mapstructure:"security_level" json:"security_level"`
	SuccessLikelihood Range `mapstructure:"success_likelihood" json:"success_likelihood"`
}

type ValidValues struct {
	MinionSpecialties   []string `mapstructure:"minion_specialties" json:"minion_specialties"`
	MoodStatuses        []string `mapstructure:"mood_statuses" json:"mood_statuses"`
	SchemeStatuses      []string `mapstructure:"scheme_statuses" json:"scheme_statuses"`
	EquipmentCategories []string `mapstructure:"equipment_categories" json:"equipment_categories"`
}

type DefaultValues struct {
	LoyaltyScore int    `mapstructure:"loyalty_score" json:"loyalty_score"`
	Condition    int    `mapstructure:"condition" json:"condition"`
	MoodStatus   string `mapstructure:"mood_status" json:"mood_status"`
}

// Load reads the settings resource at path and overlays it on the default
// set, so partial files only override the keys they name. It does not fall
// back on error; the caller decides whether to use Default() instead.
func Load(path string) (*Settings, error) {
	expandedPath, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigFile(expandedPath)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	s := Default()
	if err := v.Unmarshal(s); err != nil {
		return nil, err
	}

	return s, nil
}
