package account

import (
	"github.com/virelli/ArenaForge_Go/internal/catalog"
	"github.com/virelli/ArenaForge_Go/internal/domain"
	"github.com/virelli/ArenaForge_Go/internal/economy"
	"github.com/virelli/ArenaForge_Go/internal/progression"
)

// InitResult reports account init-or-load. NewPlayer is true only when the
// account was created by this call.
type InitResult struct {
	Player    *domain.Account `json:"player"`
	NewPlayer bool            `json:"newPlayer"`
}

// BattleDetail is the exchange breakdown of one resolved fight.
type BattleDetail struct {
	Enemy               string `json:"enemy"`
	EnemyHealth         int    `json:"enemyHealth"`
	GladiatorDamage     int    `json:"gladiatorDamage"`
	EnemyDamage         int    `json:"enemyDamage"`
	Defense             int    `json:"defense"`
	HitsToKillEnemy     int    `json:"hitsToKillEnemy"`
	HitsToKillGladiator int    `json:"hitsToKillGladiator"`
	DamageDealt         int    `json:"actualDamageDealt"`
	DamageTaken         int    `json:"actualDamageTaken"`
}

// PlayerSummary is the post-operation account scalar snapshot.
type PlayerSummary struct {
	Gold       int `json:"gold"`
	Gems       int `json:"gems"`
	Fame       int `json:"fame"`
	Energy     int `json:"energy"`
	Level      int `json:"level"`
	Experience int `json:"experience"`
}

// BattleResult is the full response of StartBattle.
type BattleResult struct {
	Victory   bool                `json:"victory"`
	Battle    BattleDetail        `json:"battle"`
	Rewards   domain.BattleReward `json:"rewards"`
	Progress  progression.Applied `json:"progress"`
	Player    PlayerSummary       `json:"player"`
	Gladiator domain.Gladiator    `json:"gladiator"`
}

// PurchaseResult reports a successful gladiator recruitment.
type PurchaseResult struct {
	Gladiator domain.Gladiator `json:"gladiator"`
	NewGold   int              `json:"newGold"`
}

// HealOutcome reports a successful potion heal.
type HealOutcome struct {
	GladiatorID int `json:"gladiator_id"`
	economy.HealResult
}

// ShopPurchase reports a successful shop buy, with the updated inventory.
type ShopPurchase struct {
	Item      catalog.ShopItem `json:"item"`
	NewGold   int              `json:"newGold"`
	Inventory domain.Inventory `json:"inventory"`
}

// EquipOutcome reports an equipment change.
type EquipOutcome struct {
	Gladiator domain.Gladiator `json:"gladiator"`
	Inventory domain.Inventory `json:"inventory"`
}

// UpgradeOutcome reports a building upgrade.
type UpgradeOutcome struct {
	economy.UpgradeResult
	NewGold int `json:"newGold"`
}

// DailyRewardResult reports a successful daily claim with new totals.
type DailyRewardResult struct {
	Reward  economy.DailyReward `json:"reward"`
	NewGold int                 `json:"newGold"`
	NewGems int                 `json:"newGems"`
}
