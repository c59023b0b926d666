package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/virelli/ArenaForge_Go/internal/account"
	"github.com/virelli/ArenaForge_Go/internal/logger"
)

// InitPlayerRequest represents the request to initialize or load a player.
type InitPlayerRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=64"`
	Username string `json:"username" validate:"max=64"`
}

// HandleInitPlayer creates a fresh starter account or loads the existing one.
func HandleInitPlayer(svc account.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req InitPlayerRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Init player"); err != nil {
			return
		}

		res, err := svc.InitAccount(r.Context(), req.PlayerID, req.Username)
		if err != nil {
			respondServiceError(w, r, "Init player", err)
			return
		}

		log.Info("Player initialized", "playerID", req.PlayerID, "new", res.NewPlayer)

		status := http.StatusOK
		if res.NewPlayer {
			status = http.StatusCreated
		}
		respondJSON(w, status, res)
	}
}

// HandleGetPlayer returns the full account snapshot.
func HandleGetPlayer(svc account.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, "playerID")
		if playerID == "" {
			http.Error(w, ErrMsgMissingPlayerID, http.StatusBadRequest)
			return
		}

		acc, err := svc.GetAccount(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, "Get player", err)
			return
		}

		respondJSON(w, http.StatusOK, acc)
	}
}
