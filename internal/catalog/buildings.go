package catalog

import "github.com/virelli/ArenaForge_Go/internal/domain"

var buildingBaseCosts = map[domain.BuildingType]int{
	domain.BuildingBarracks:       1000,
	domain.BuildingTrainingGround: 1500,
	domain.BuildingInfirmary:      1200,
	domain.BuildingArena:          2000,
}

// BuildingBaseCost returns the base upgrade cost of a building. The effective
// cost is base cost times the current level.
func BuildingBaseCost(t domain.BuildingType) int {
	if cost, ok := buildingBaseCosts[t]; ok {
		return cost
	}
	return buildingBaseCosts[domain.BuildingBarracks]
}

// BarracksCapacity derives roster capacity from the barracks level.
func BarracksCapacity(level int) int {
	return 5 + 2*level
}

// TrainingBonus derives the training bonus from the training ground level.
func TrainingBonus(level int) float64 {
	return 0.1 * float64(level)
}

// InfirmaryHealSpeed derives healing speed from the infirmary level.
func InfirmaryHealSpeed(level int) int {
	return level
}

// ArenaFameBonus derives the fame bonus from the arena level.
func ArenaFameBonus(level int) float64 {
	return 0.1 * float64(level-1)
}

// StarterBuildings returns the level-1 structures of a new account. A fresh
// barracks holds 5 gladiators; the 5+2*level curve applies from the first
// upgrade onward.
func StarterBuildings() domain.Buildings {
	return domain.Buildings{
		Barracks:       domain.Barracks{Level: 1, Capacity: 5},
		TrainingGround: domain.TrainingGround{Level: 1, Bonus: TrainingBonus(1)},
		Infirmary:      domain.Infirmary{Level: 1, HealSpeed: InfirmaryHealSpeed(1)},
		Arena:          domain.ArenaBuilding{Level: 1, FameBonus: ArenaFameBonus(1)},
	}
}
