package account

import (
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/virelli/ArenaForge_Go/internal/domain"
)

// leaderboardCache is a small in-memory LRU for leaderboard queries. Rankings
// only need to be eventually fresh, so short-TTL caching keeps the hot
// endpoint off the database.
type leaderboardCache struct {
	lru *expirable.LRU[string, []domain.LeaderboardEntry]
}

func newLeaderboardCache(size int, ttl time.Duration) *leaderboardCache {
	return &leaderboardCache{
		lru: expirable.NewLRU[string, []domain.LeaderboardEntry](size, nil, ttl),
	}
}

func cacheKey(sort domain.LeaderboardSort, limit int) string {
	return fmt.Sprintf("%s:%d", sort, limit)
}

func (c *leaderboardCache) Get(sort domain.LeaderboardSort, limit int) ([]domain.LeaderboardEntry, bool) {
	return c.lru.Get(cacheKey(sort, limit))
}

func (c *leaderboardCache) Set(sort domain.LeaderboardSort, limit int, entries []domain.LeaderboardEntry) {
	c.lru.Add(cacheKey(sort, limit), entries)
}

// Clear removes all cached rankings.
func (c *leaderboardCache) Clear() {
	c.lru.Purge()
}
