package domain

// Archetype is a gladiator's fixed class template.
type Archetype string

const (
	ArchetypeMurmillo    Archetype = "murmillo"
	ArchetypeThraex      Archetype = "thraex"
	ArchetypeRetiarius   Archetype = "retiarius"
	ArchetypeSecutor     Archetype = "secutor"
	ArchetypeDimachaerus Archetype = "dimachaerus"
	ArchetypeEssedarius  Archetype = "essedarius"
	ArchetypeProvocator  Archetype = "provocator"
)

// GladiatorStatus tags a gladiator's availability. Only "ready" is meaningful
// today; the field is kept for forward compatibility with timed states.
type GladiatorStatus string

const GladiatorStatusReady GladiatorStatus = "ready"

// Gladiator is a trainable combat unit owned by an Account.
type Gladiator struct {
	ID         int             `json:"id"`
	Name       string          `json:"name"`
	Type       Archetype       `json:"type"`
	Level      int             `json:"level"`
	Experience int             `json:"experience"`
	Health     int             `json:"health"`
	MaxHealth  int             `json:"maxHealth"`
	Strength   int             `json:"strength"`
	Agility    int             `json:"agility"`
	Endurance  int             `json:"endurance"`
	Equipment  Equipment       `json:"equipment"`
	Skills     []string        `json:"skills"`
	Status     GladiatorStatus `json:"status"`
}

// Equipment holds one weapon slot and one armor slot. Each slot is a copied
// snapshot of an inventory item, never a reference into the inventory.
type Equipment struct {
	Weapon EquippedItem `json:"weapon"`
	Armor  EquippedItem `json:"armor"`
}

// EquippedItem is the snapshot stored in an equipment slot.
type EquippedItem struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Damage  int    `json:"damage,omitempty"`
	Defense int    `json:"defense,omitempty"`
	Kind    string `json:"type"`
}

// ClampHealth enforces the health invariant 1 <= health <= maxHealth. A
// gladiator is never fully killed; the floor is 1.
func (g *Gladiator) ClampHealth() {
	if g.Health > g.MaxHealth {
		g.Health = g.MaxHealth
	}
	if g.Health < 1 {
		g.Health = 1
	}
}

// AttackDamage is strength plus the equipped weapon's damage.
func (g *Gladiator) AttackDamage() int {
	return g.Strength + g.Equipment.Weapon.Damage
}
