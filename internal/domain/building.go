package domain

// BuildingType identifies one of the fixed set of upgradable structures.
type BuildingType string

const (
	BuildingBarracks       BuildingType = "barracks"
	BuildingTrainingGround BuildingType = "training_ground"
	BuildingInfirmary      BuildingType = "infirmary"
	BuildingArena          BuildingType = "arena"
)

// ValidBuildingType reports whether the tag names a known building.
func ValidBuildingType(t BuildingType) bool {
	switch t {
	case BuildingBarracks, BuildingTrainingGround, BuildingInfirmary, BuildingArena:
		return true
	default:
		return false
	}
}

// Buildings is the fixed set of named structures. Effect fields are derived
// from the level and recomputed on every upgrade.
type Buildings struct {
	Barracks       Barracks       `json:"barracks"`
	TrainingGround TrainingGround `json:"training_ground"`
	Infirmary      Infirmary      `json:"infirmary"`
	Arena          ArenaBuilding  `json:"arena"`
}

// Barracks caps the gladiator roster at Capacity = 5 + 2*level.
type Barracks struct {
	Level    int `json:"level"`
	Capacity int `json:"capacity"`
}

// TrainingGround grants a training bonus of 0.1*level.
type TrainingGround struct {
	Level int     `json:"level"`
	Bonus float64 `json:"bonus"`
}

// Infirmary heals at a speed equal to its level.
type Infirmary struct {
	Level     int `json:"level"`
	HealSpeed int `json:"heal_speed"`
}

// ArenaBuilding grants a fame bonus of 0.1*(level-1).
type ArenaBuilding struct {
	Level     int     `json:"level"`
	FameBonus float64 `json:"fame_bonus"`
}
