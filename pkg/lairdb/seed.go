package lairdb

import (
	"time"

	"github.com/lairworks/lairman/pkg/lairdb/lairmodel"
	"github.com/lairworks/lairman/pkg/lairdb/stor"
	"gorm.io/gorm"
)

// SeedIfEmpty loads the initial lair dataset the first time the database is
// created. A database that already contains minions is left untouched.
func SeedIfEmpty(db *gorm.DB) error {
	var minionCount int64
	if err := db.Model(&lairmodel.Minion{}).Count(&minionCount).Error; err != nil {
		return err
	}

	if minionCount > 0 {
		return nil
	}

	stors := stor.NewGormStors(db)

	// Bases first, nothing references them yet.
	for _, base := range seedBases() {
		b := base
		if _, err := stors.BaseStor.CreateBase(&b); err != nil {
			return err
		}
	}

	for _, scheme := range seedSchemes() {
		s := scheme
		if _, err := stors.SchemeStor.CreateScheme(&s); err != nil {
			return err
		}
	}

	for _, minion := range seedMinions() {
		m := minion
		if _, err := stors.MinionStor.CreateMinion(&m); err != nil {
			return err
		}
	}

	for _, equipment := range seedEquipment() {
		e := equipment
		if _, err := stors.EquipmentStor.CreateEquipment(&e); err != nil {
			return err
		}
	}

	return nil
}

func seedBases() []lairmodel.SecretBase {
	return []lairmodel.SecretBase{
		{Name: "Volcano Fortress", Location: "Pacific Island", Capacity: 50, SecurityLevel: 9, MonthlyMaintenanceCost: 50000, HasDoomsdayDevice: true, LastInspectionDate: datePtr(2025, 11, 1)},
		{Name: "Arctic Hideout", Location: "North Pole", Capacity: 30, SecurityLevel: 7, MonthlyMaintenanceCost: 30000, LastInspectionDate: datePtr(2025, 10, 15)},
		{Name: "Underwater Lair", Location: "Mariana Trench", Capacity: 40, SecurityLevel: 10, MonthlyMaintenanceCost: 45000, HasDoomsdayDevice: true, LastInspectionDate: datePtr(2025, 11, 20)},
		{Name: "Desert Bunker", Location: "Sahara Desert", Capacity: 25, SecurityLevel: 6, MonthlyMaintenanceCost: 20000},
	}
}

func seedSchemes() []lairmodel.EvilScheme {
	return []lairmodel.EvilScheme{
		{Name: "Steal the Moon", Description: "Use shrink ray to steal the moon and hold world hostage", Budget: 1000000, CurrentSpending: 15000, RequiredSkillLevel: 8, RequiredSpecialty: "Engineering", Status: lairmodel.StatusPlanning, TargetCompletionDate: date(2026, 6, 1), DiabolicalRating: 10, SuccessLikelihood: 50},
		{Name: "Freeze Entire City", Description: "Deploy freeze ray to freeze major city and demand ransom", Budget: 500000, CurrentSpending: 45000, RequiredSkillLevel: 6, RequiredSpecialty: "Engineering", Status: lairmodel.StatusActive, StartDate: datePtr(2025, 11, 1), TargetCompletionDate: date(2025, 12, 31), DiabolicalRating: 8, SuccessLikelihood: 60},
		{Name: "Replace World Leaders", Description: "Use disguises to infiltrate governments worldwide", Budget: 750000, RequiredSkillLevel: 9, RequiredSpecialty: "Disguise", Status: lairmodel.StatusPlanning, TargetCompletionDate: date(2026, 3, 1), DiabolicalRating: 9, SuccessLikelihood: 45},
		{Name: "Hack Global Banks", Description: "Steal millions from international banking systems", Budget: 250000, CurrentSpending: 12000, RequiredSkillLevel: 8, RequiredSpecialty: "Hacking", Status: lairmodel.StatusActive, StartDate: datePtr(2025, 10, 15), TargetCompletionDate: date(2025, 12, 15), DiabolicalRating: 7, SuccessLikelihood: 55},
		{Name: "Build Robot Army", Description: "Create army of combat robots for world domination", Budget: 2000000, RequiredSkillLevel: 7, RequiredSpecialty: "Engineering", Status: lairmodel.StatusPlanning, TargetCompletionDate: date(2027, 1, 1), DiabolicalRating: 10, SuccessLikelihood: 40},
	}
}

func seedMinions() []lairmodel.Minion {
	lastMoodUpdate := date(2025, 12, 1)

	return []lairmodel.Minion{
		{Name: "Igor", SkillLevel: 3, Specialty: "Combat", LoyaltyScore: 85, SalaryDemand: 3000, CurrentBaseID: intPtr(1), MoodStatus: lairmodel.MoodHappy, LastMoodUpdate: lastMoodUpdate},
		{Name: "Helga", SkillLevel: 8, Specialty: "Hacking", LoyaltyScore: 45, SalaryDemand: 8000, CurrentBaseID: intPtr(1), CurrentSchemeID: intPtr(4), MoodStatus: lairmodel.MoodGrumpy, LastMoodUpdate: lastMoodUpdate},
		{Name: "Boris", SkillLevel: 6, Specialty: "Explosives", LoyaltyScore: 92, SalaryDemand: 5500, CurrentBaseID: intPtr(2), CurrentSchemeID: intPtr(2), MoodStatus: lairmodel.MoodHappy, LastMoodUpdate: lastMoodUpdate},
		{Name: "Natasha", SkillLevel: 9, Specialty: "Disguise", LoyaltyScore: 25, SalaryDemand: 9500, CurrentBaseID: intPtr(1), MoodStatus: lairmodel.MoodBetrayal, LastMoodUpdate: lastMoodUpdate},
		{Name: "Klaus", SkillLevel: 7, Specialty: "Engineering", LoyaltyScore: 78, SalaryDemand: 6500, CurrentBaseID: intPtr(1), CurrentSchemeID: intPtr(2), MoodStatus: lairmodel.MoodHappy, LastMoodUpdate: lastMoodUpdate},
		{Name: "Olga", SkillLevel: 5, Specialty: "Combat", LoyaltyScore: 55, SalaryDemand: 4500, CurrentBaseID: intPtr(2), MoodStatus: lairmodel.MoodGrumpy, LastMoodUpdate: lastMoodUpdate},
		{Name: "Vladimir", SkillLevel: 9, Specialty: "Hacking", LoyaltyScore: 88, SalaryDemand: 9000, CurrentBaseID: intPtr(3), CurrentSchemeID: intPtr(4), MoodStatus: lairmodel.MoodHappy, LastMoodUpdate: lastMoodUpdate},
		{Name: "Svetlana", SkillLevel: 4, Specialty: "Disguise", LoyaltyScore: 62, SalaryDemand: 4000, CurrentBaseID: intPtr(3), MoodStatus: lairmodel.MoodGrumpy, LastMoodUpdate: lastMoodUpdate},
		{Name: "Dimitri", SkillLevel: 8, Specialty: "Engineering", LoyaltyScore: 90, SalaryDemand: 7500, CurrentBaseID: intPtr(1), MoodStatus: lairmodel.MoodHappy, LastMoodUpdate: lastMoodUpdate},
		{Name: "Anastasia", SkillLevel: 6, Specialty: "Piloting", LoyaltyScore: 70, SalaryDemand: 5800, CurrentBaseID: intPtr(2), MoodStatus: lairmodel.MoodHappy, LastMoodUpdate: lastMoodUpdate},
	}
}

func seedEquipment() []lairmodel.Equipment {
	return []lairmodel.Equipment{
		{Name: "Freeze Ray", Category: "Weapon", Condition: 85, PurchasePrice: 100000, MaintenanceCost: 15000, AssignedToSchemeID: intPtr(2), StoredAtBaseID: intPtr(1), RequiresSpecialist: true, LastMaintenanceDate: datePtr(2025, 11, 1)},
		{Name: "Drill Tank", Category: "Vehicle", Condition: 72, PurchasePrice: 250000, MaintenanceCost: 30000, StoredAtBaseID: intPtr(1), LastMaintenanceDate: datePtr(2025, 10, 20)},
		{Name: "Shrink Ray", Category: lairmodel.CategoryDoomsdayDevice, Condition: 95, PurchasePrice: 500000, MaintenanceCost: 150000, StoredAtBaseID: intPtr(1), RequiresSpecialist: true, LastMaintenanceDate: datePtr(2025, 11, 15)},
		{Name: "Invisibility Cloak", Category: "Gadget", Condition: 60, PurchasePrice: 50000, MaintenanceCost: 5000, StoredAtBaseID: intPtr(2), LastMaintenanceDate: datePtr(2025, 9, 30)},
		{Name: "Hacking Suite", Category: "Gadget", Condition: 90, PurchasePrice: 75000, MaintenanceCost: 10000, AssignedToSchemeID: intPtr(4), StoredAtBaseID: intPtr(3), RequiresSpecialist: true, LastMaintenanceDate: datePtr(2025, 11, 10)},
		{Name: "Combat Mech", Category: "Vehicle", Condition: 45, PurchasePrice: 300000, MaintenanceCost: 40000, StoredAtBaseID: intPtr(3), RequiresSpecialist: true, LastMaintenanceDate: datePtr(2025, 8, 15)},
		{Name: "EMP Generator", Category: "Weapon", Condition: 78, PurchasePrice: 150000, MaintenanceCost: 20000, AssignedToSchemeID: intPtr(4), StoredAtBaseID: intPtr(3), RequiresSpecialist: true, LastMaintenanceDate: datePtr(2025, 10, 25)},
		{Name: "Jetpack", Category: "Vehicle", Condition: 55, PurchasePrice: 80000, MaintenanceCost: 12000, StoredAtBaseID: intPtr(2), LastMaintenanceDate: datePtr(2025, 10, 10)},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

func intPtr(v int) *int {
	return &v
}
