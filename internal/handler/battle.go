package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/virelli/ArenaForge_Go/internal/account"
	"github.com/virelli/ArenaForge_Go/internal/domain"
	"github.com/virelli/ArenaForge_Go/internal/logger"
	"github.com/virelli/ArenaForge_Go/internal/metrics"
)

// StartBattleRequest represents the request to send a gladiator into the arena.
type StartBattleRequest struct {
	PlayerID    string `json:"player_id" validate:"required,max=64"`
	GladiatorID int    `json:"gladiator_id" validate:"required,min=1"`
	Difficulty  string `json:"difficulty" validate:"difficulty"`
}

// HandleStartBattle resolves a full arena fight and applies its outcome.
func HandleStartBattle(svc account.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req StartBattleRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Start battle"); err != nil {
			return
		}

		difficulty := domain.Difficulty(req.Difficulty).Normalize()

		res, err := svc.StartBattle(r.Context(), req.PlayerID, req.GladiatorID, difficulty)
		if err != nil {
			respondServiceError(w, r, "Start battle", err)
			return
		}

		metrics.BattlesFought.WithLabelValues(string(difficulty), strconv.FormatBool(res.Victory)).Inc()
		if res.Rewards.Gold > 0 {
			metrics.GoldEarned.Add(float64(res.Rewards.Gold))
		}

		log.Info("Battle resolved",
			"playerID", req.PlayerID,
			"gladiatorID", req.GladiatorID,
			"difficulty", difficulty,
			"victory", res.Victory)

		respondJSON(w, http.StatusOK, res)
	}
}

// HandleGetBattles returns a player's recent battle history, newest first.
func HandleGetBattles(svc account.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, "playerID")
		if playerID == "" {
			http.Error(w, ErrMsgMissingPlayerID, http.StatusBadRequest)
			return
		}

		limit, ok := GetLimitParam(r, w)
		if !ok {
			return
		}

		battles, err := svc.GetBattleHistory(r.Context(), playerID, limit)
		if err != nil {
			respondServiceError(w, r, "Get battles", err)
			return
		}

		respondJSON(w, http.StatusOK, battles)
	}
}
