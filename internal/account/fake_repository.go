package account

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/virelli/ArenaForge_Go/internal/domain"
)

// FakeRepository is a stateful in-memory implementation of the account and
// battle repositories for testing. It round-trips accounts through JSON on
// every read and write so tests see the same copy semantics as the real
// database-backed repository.
//
// This fake must remain in the account package to avoid import cycles.
type FakeRepository struct {
	mu       sync.Mutex
	accounts map[string]*domain.Account
	battles  map[string][]domain.BattleRecord
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		accounts: make(map[string]*domain.Account),
		battles:  make(map[string][]domain.BattleRecord),
	}
}

func cloneAccount(acc *domain.Account) *domain.Account {
	raw, _ := json.Marshal(acc)
	var out domain.Account
	_ = json.Unmarshal(raw, &out)
	return &out
}

func (f *FakeRepository) GetAccount(ctx context.Context, playerID string) (*domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	acc, ok := f.accounts[playerID]
	if !ok {
		return nil, nil
	}
	return cloneAccount(acc), nil
}

func (f *FakeRepository) CreateAccount(ctx context.Context, acc *domain.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accounts[acc.PlayerID] = cloneAccount(acc)
	return nil
}

func (f *FakeRepository) UpdateAccount(ctx context.Context, acc domain.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.accounts[acc.PlayerID]; !ok {
		return domain.ErrAccountNotFound
	}
	f.accounts[acc.PlayerID] = cloneAccount(&acc)
	return nil
}

func (f *FakeRepository) TouchLastActive(ctx context.Context, playerID string, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	acc, ok := f.accounts[playerID]
	if !ok {
		return domain.ErrAccountNotFound
	}
	acc.LastActive = at
	return nil
}

func (f *FakeRepository) ListTopAccounts(ctx context.Context, sortBy domain.LeaderboardSort, limit int) ([]domain.LeaderboardEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries := make([]domain.LeaderboardEntry, 0, len(f.accounts))
	for _, acc := range f.accounts {
		wins := 0
		for _, b := range f.battles[acc.PlayerID] {
			if b.Victory {
				wins++
			}
		}
		entries = append(entries, domain.LeaderboardEntry{
			PlayerID:   acc.PlayerID,
			Username:   acc.Username,
			Gold:       acc.Gold,
			Gems:       acc.Gems,
			Fame:       acc.Fame,
			Level:      acc.Level,
			Experience: acc.Experience,
			Wins:       wins,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		switch sortBy.Normalize() {
		case domain.LeaderboardByGold:
			return entries[i].Gold > entries[j].Gold
		case domain.LeaderboardByLevel:
			if entries[i].Level != entries[j].Level {
				return entries[i].Level > entries[j].Level
			}
			return entries[i].Experience > entries[j].Experience
		default:
			return entries[i].Fame > entries[j].Fame
		}
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (f *FakeRepository) RestoreEnergy(ctx context.Context, amount int, activeSince time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var affected int64
	for _, acc := range f.accounts {
		if acc.LastActive.After(activeSince) && acc.Energy < acc.MaxEnergy {
			acc.Energy += amount
			if acc.Energy > acc.MaxEnergy {
				acc.Energy = acc.MaxEnergy
			}
			affected++
		}
	}
	return affected, nil
}

func (f *FakeRepository) ResetDailyRewards(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var affected int64
	for _, acc := range f.accounts {
		if acc.DailyRewardClaimed {
			acc.DailyRewardClaimed = false
			affected++
		}
	}
	return affected, nil
}

func (f *FakeRepository) InsertBattle(ctx context.Context, record domain.BattleRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.battles[record.PlayerID] = append(f.battles[record.PlayerID], record)
	return nil
}

func (f *FakeRepository) ListBattles(ctx context.Context, playerID string, limit int) ([]domain.BattleRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	records := f.battles[playerID]
	out := make([]domain.BattleRecord, 0, limit)
	// Newest first, like the battle_time DESC query.
	for i := len(records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, records[i])
	}
	return out, nil
}
