package catalog

import "github.com/virelli/ArenaForge_Go/internal/domain"

// BaseStats is an archetype's level-1 stat template.
type BaseStats struct {
	Strength  int `json:"strength"`
	Agility   int `json:"agility"`
	Endurance int `json:"endurance"`
}

var archetypeStats = map[domain.Archetype]BaseStats{
	domain.ArchetypeMurmillo:    {Strength: 12, Agility: 8, Endurance: 10},
	domain.ArchetypeThraex:      {Strength: 10, Agility: 12, Endurance: 8},
	domain.ArchetypeRetiarius:   {Strength: 8, Agility: 14, Endurance: 8},
	domain.ArchetypeSecutor:     {Strength: 14, Agility: 6, Endurance: 10},
	domain.ArchetypeDimachaerus: {Strength: 11, Agility: 11, Endurance: 8},
	domain.ArchetypeEssedarius:  {Strength: 9, Agility: 13, Endurance: 8},
	domain.ArchetypeProvocator:  {Strength: 13, Agility: 9, Endurance: 13},
}

var archetypeCosts = map[domain.Archetype]int{
	domain.ArchetypeMurmillo:    500,
	domain.ArchetypeThraex:      600,
	domain.ArchetypeRetiarius:   550,
	domain.ArchetypeSecutor:     700,
	domain.ArchetypeDimachaerus: 800,
	domain.ArchetypeEssedarius:  900,
	domain.ArchetypeProvocator:  1000,
}

// DefaultArchetypeCost applies when the archetype is unknown.
const DefaultArchetypeCost = 500

// ArchetypeBaseStats returns the stat template for an archetype. Unknown
// archetypes use the murmillo template.
func ArchetypeBaseStats(a domain.Archetype) BaseStats {
	if stats, ok := archetypeStats[a]; ok {
		return stats
	}
	return archetypeStats[domain.ArchetypeMurmillo]
}

// ArchetypePurchaseCost returns the gold price of recruiting an archetype.
func ArchetypePurchaseCost(a domain.Archetype) int {
	if cost, ok := archetypeCosts[a]; ok {
		return cost
	}
	return DefaultArchetypeCost
}

// StarterWeapon is the default weapon every new gladiator carries. Id 1 is
// reserved for starter gear and is never returned to the inventory on unequip.
func StarterWeapon() domain.EquippedItem {
	return domain.EquippedItem{ID: StarterItemID, Name: "Wooden Sword", Damage: 5, Kind: "sword"}
}

// StarterArmor is the default armor every new gladiator wears.
func StarterArmor() domain.EquippedItem {
	return domain.EquippedItem{ID: StarterItemID, Name: "Leather Armor", Defense: 3, Kind: "light"}
}

// StarterItemID marks default starter equipment.
const StarterItemID = 1
