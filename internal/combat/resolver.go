// Package combat resolves fights with a closed-form hit-exchange model. The
// exchange itself is fully deterministic; the only randomness in a battle is
// the enemy pick within a difficulty tier, which happens upstream.
package combat

import (
	"github.com/virelli/ArenaForge_Go/internal/catalog"
	"github.com/virelli/ArenaForge_Go/internal/domain"
)

// Outcome describes one resolved fight.
type Outcome struct {
	Victory            bool `json:"victory"`
	AttackerDamage     int  `json:"attacker_damage"`
	EnemyDamage        int  `json:"enemy_damage"`
	ReducedEnemyDamage int  `json:"reduced_enemy_damage"`
	HitsToKillEnemy    int  `json:"hits_to_kill_enemy"`
	HitsToKillAttacker int  `json:"hits_to_kill_attacker"`
	DamageDealt        int  `json:"damage_dealt"`
	DamageTaken        int  `json:"damage_taken"`
}

// Resolve computes the outcome of a gladiator fighting an enemy.
//
// Attacker damage per hit is strength plus the equipped weapon. Enemy damage
// per hit is reduced by the equipped armor, floored at 1. Both sides trade
// blows simultaneously: whoever needs fewer hits to drop the other wins, with
// ties going to the attacker.
func Resolve(g domain.Gladiator, enemy catalog.Enemy) Outcome {
	attackerDamage := g.AttackDamage()
	reduced := enemy.Damage - g.Equipment.Armor.Defense
	if reduced < 1 {
		reduced = 1
	}

	out := Outcome{
		AttackerDamage:     attackerDamage,
		EnemyDamage:        enemy.Damage,
		ReducedEnemyDamage: reduced,
	}

	// A disarmed attacker can never land a killing blow. Treated as an
	// immediate loss instead of dividing by zero.
	if attackerDamage <= 0 {
		out.Victory = false
		out.HitsToKillAttacker = ceilDiv(g.Health, reduced)
		out.DamageDealt = 0
		out.DamageTaken = g.Health
		return out
	}

	out.HitsToKillEnemy = ceilDiv(enemy.Health, attackerDamage)
	out.HitsToKillAttacker = ceilDiv(g.Health, reduced)
	out.Victory = out.HitsToKillEnemy <= out.HitsToKillAttacker

	if out.Victory {
		out.DamageDealt = enemy.Health
		out.DamageTaken = (out.HitsToKillEnemy - 1) * reduced
	} else {
		out.DamageDealt = (out.HitsToKillAttacker - 1) * attackerDamage
		out.DamageTaken = g.Health
	}
	return out
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
