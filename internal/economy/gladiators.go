// Package economy implements the validated resource-consuming actions of an
// account: recruiting and healing gladiators, shop purchases, equipment
// changes, building upgrades and the daily reward. Every action follows the
// same shape: check preconditions in order, then mutate. On any precondition
// failure the account is untouched.
package economy

import (
	"fmt"

	"github.com/virelli/ArenaForge_Go/internal/catalog"
	"github.com/virelli/ArenaForge_Go/internal/domain"
)

// PurchaseGladiator recruits a new gladiator of the given archetype, appending
// it to the roster with base stats and starter equipment.
//
// Preconditions, first failure wins: archetype unlocked, roster below barracks
// capacity, gold covers the archetype cost.
func PurchaseGladiator(acc *domain.Account, archetype domain.Archetype, name string) (*domain.Gladiator, error) {
	if !acc.Game.HasArchetype(archetype) {
		return nil, fmt.Errorf("%w: %s", domain.ErrArchetypeLocked, archetype)
	}
	if len(acc.Game.Gladiators) >= acc.Game.Buildings.Barracks.Capacity {
		return nil, domain.ErrBarracksFull
	}
	cost := catalog.ArchetypePurchaseCost(archetype)
	if acc.Gold < cost {
		return nil, fmt.Errorf("%w: need %d", domain.ErrInsufficientGold, cost)
	}

	id := acc.Game.NextGladiatorID()
	if name == "" {
		name = fmt.Sprintf("Gladiator %d", id)
	}
	stats := catalog.ArchetypeBaseStats(archetype)
	gladiator := domain.Gladiator{
		ID:        id,
		Name:      name,
		Type:      archetype,
		Level:     1,
		Health:    domain.GladiatorBaseHealth,
		MaxHealth: domain.GladiatorBaseHealth,
		Strength:  stats.Strength,
		Agility:   stats.Agility,
		Endurance: stats.Endurance,
		Equipment: domain.Equipment{
			Weapon: catalog.StarterWeapon(),
			Armor:  catalog.StarterArmor(),
		},
		Skills: []string{domain.GladiatorBaseSkill},
		Status: domain.GladiatorStatusReady,
	}

	acc.Gold -= cost
	acc.Game.Gladiators = append(acc.Game.Gladiators, gladiator)
	return &acc.Game.Gladiators[len(acc.Game.Gladiators)-1], nil
}

// HealResult reports the effect of consuming one healing potion.
type HealResult struct {
	Health      int `json:"health"`
	MaxHealth   int `json:"maxHealth"`
	HealedFor   int `json:"healed_for"`
	PotionsLeft int `json:"potions_left"`
}

// HealGladiator consumes one healing potion to restore a wounded gladiator.
//
// Preconditions: gladiator exists, health below max, at least one healing
// potion stack in the inventory.
func HealGladiator(acc *domain.Account, gladiatorID int) (*HealResult, error) {
	g := acc.Game.FindGladiator(gladiatorID)
	if g == nil {
		return nil, fmt.Errorf("%w: %d", domain.ErrGladiatorNotFound, gladiatorID)
	}
	if g.Health >= g.MaxHealth {
		return nil, domain.ErrAlreadyFullHealth
	}
	idx := findHealingPotion(acc.Game.Inventory.Potions)
	if idx == -1 {
		return nil, domain.ErrNoHealingPotion
	}

	potion := acc.Game.Inventory.Potions[idx]
	before := g.Health
	g.Health += potion.Heal
	g.ClampHealth()

	acc.Game.Inventory.Potions = domain.RemoveFromStack(acc.Game.Inventory.Potions, idx, 1)

	left := 0
	if i := domain.FindStack(acc.Game.Inventory.Potions, potion.ID); i != -1 {
		left = acc.Game.Inventory.Potions[i].Quantity
	}
	return &HealResult{
		Health:      g.Health,
		MaxHealth:   g.MaxHealth,
		HealedFor:   g.Health - before,
		PotionsLeft: left,
	}, nil
}

func findHealingPotion(potions []domain.ItemStack) int {
	for i := range potions {
		if potions[i].Heal > 0 {
			return i
		}
	}
	return -1
}
