package handler

import (
	"net/http"

	"github.com/virelli/ArenaForge_Go/internal/account"
	"github.com/virelli/ArenaForge_Go/internal/logger"
	"github.com/virelli/ArenaForge_Go/internal/metrics"
)

// ClaimDailyRewardRequest represents the request to claim the daily login reward.
type ClaimDailyRewardRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=64"`
}

// HandleClaimDailyReward grants the once-per-day streak reward.
func HandleClaimDailyReward(svc account.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req ClaimDailyRewardRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Claim daily reward"); err != nil {
			return
		}

		res, err := svc.ClaimDailyReward(r.Context(), req.PlayerID)
		if err != nil {
			respondServiceError(w, r, "Claim daily reward", err)
			return
		}

		metrics.DailyRewardsClaimed.Inc()
		metrics.GoldEarned.Add(float64(res.Reward.Gold))

		log.Info("Daily reward claimed",
			"playerID", req.PlayerID,
			"gold", res.Reward.Gold,
			"gems", res.Reward.Gems,
			"streak", res.Reward.Streak)

		respondJSON(w, http.StatusOK, res)
	}
}
