package handler

import (
	"net/http"

	"github.com/virelli/ArenaForge_Go/internal/account"
	"github.com/virelli/ArenaForge_Go/internal/domain"
)

// HandleGetLeaderboard returns ranked players for the requested sort key.
func HandleGetLeaderboard(svc account.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sort := domain.LeaderboardSort(GetOptionalQueryParam(r, "type", "")).Normalize()

		limit, ok := GetLimitParam(r, w)
		if !ok {
			return
		}

		entries, err := svc.GetLeaderboard(r.Context(), sort, limit)
		if err != nil {
			respondServiceError(w, r, "Get leaderboard", err)
			return
		}

		respondJSON(w, http.StatusOK, entries)
	}
}
