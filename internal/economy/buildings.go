package economy

import (
	"fmt"

	"github.com/virelli/ArenaForge_Go/internal/catalog"
	"github.com/virelli/ArenaForge_Go/internal/domain"
)

// UpgradeResult reports a completed building upgrade.
type UpgradeResult struct {
	Building domain.BuildingType `json:"building"`
	Level    int                 `json:"level"`
	Cost     int                 `json:"cost"`
}

// UpgradeBuilding raises a building one level, paying base cost times the
// current level, and recomputes the building's derived effect field.
func UpgradeBuilding(acc *domain.Account, t domain.BuildingType) (*UpgradeResult, error) {
	if !domain.ValidBuildingType(t) {
		return nil, fmt.Errorf("%w: %q", domain.ErrBuildingNotFound, t)
	}

	level := buildingLevel(&acc.Game.Buildings, t)
	cost := catalog.BuildingBaseCost(t) * level
	if acc.Gold < cost {
		return nil, fmt.Errorf("%w: need %d", domain.ErrInsufficientGold, cost)
	}

	acc.Gold -= cost
	newLevel := level + 1
	switch t {
	case domain.BuildingBarracks:
		acc.Game.Buildings.Barracks.Level = newLevel
		acc.Game.Buildings.Barracks.Capacity = catalog.BarracksCapacity(newLevel)
	case domain.BuildingTrainingGround:
		acc.Game.Buildings.TrainingGround.Level = newLevel
		acc.Game.Buildings.TrainingGround.Bonus = catalog.TrainingBonus(newLevel)
	case domain.BuildingInfirmary:
		acc.Game.Buildings.Infirmary.Level = newLevel
		acc.Game.Buildings.Infirmary.HealSpeed = catalog.InfirmaryHealSpeed(newLevel)
	case domain.BuildingArena:
		acc.Game.Buildings.Arena.Level = newLevel
		acc.Game.Buildings.Arena.FameBonus = catalog.ArenaFameBonus(newLevel)
	}

	return &UpgradeResult{Building: t, Level: newLevel, Cost: cost}, nil
}

func buildingLevel(b *domain.Buildings, t domain.BuildingType) int {
	switch t {
	case domain.BuildingBarracks:
		return b.Barracks.Level
	case domain.BuildingTrainingGround:
		return b.TrainingGround.Level
	case domain.BuildingInfirmary:
		return b.Infirmary.Level
	case domain.BuildingArena:
		return b.Arena.Level
	default:
		return 0
	}
}
