package economy

import (
	"time"

	"github.com/virelli/ArenaForge_Go/internal/domain"
)

// DailyReward reports a successful daily claim.
type DailyReward struct {
	Gold   int `json:"gold"`
	Gems   int `json:"gems"`
	Streak int `json:"streak"`
}

// ClaimDailyReward grants the daily login reward once per calendar day.
//
// The streak continues only when the previous claim happened exactly one
// calendar day earlier (full-date comparison, safe across month boundaries);
// any gap resets it to 1. Reward: 100 gold plus 20 per streak day capped at
// 200 bonus, and one gem per full week of streak.
func ClaimDailyReward(acc *domain.Account, now time.Time) (*DailyReward, error) {
	if acc.DailyRewardClaimed {
		return nil, domain.ErrAlreadyClaimed
	}

	streak := 1
	if acc.LastDailyReward != nil && calendarDaysBetween(*acc.LastDailyReward, now) == 1 {
		streak = acc.DailyStreak + 1
	}
	if streak < 1 {
		streak = 1
	}

	bonus := streak * domain.DailyRewardStreakBonus
	if bonus > domain.DailyRewardBonusCap {
		bonus = domain.DailyRewardBonusCap
	}
	reward := &DailyReward{
		Gold:   domain.DailyRewardBaseGold + bonus,
		Gems:   streak / domain.DailyRewardGemInterval,
		Streak: streak,
	}

	acc.Gold += reward.Gold
	acc.Gems += reward.Gems
	acc.DailyStreak = streak
	acc.DailyRewardClaimed = true
	claimedAt := now
	acc.LastDailyReward = &claimedAt
	return reward, nil
}

// calendarDaysBetween counts whole calendar days from a to b in UTC,
// independent of the time of day on either side.
func calendarDaysBetween(a, b time.Time) int {
	a = a.UTC()
	b = b.UTC()
	aDay := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bDay := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bDay.Sub(aDay) / (24 * time.Hour))
}
