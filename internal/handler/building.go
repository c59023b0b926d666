package handler

import (
	"net/http"
	"strings"

	"github.com/virelli/ArenaForge_Go/internal/account"
	"github.com/virelli/ArenaForge_Go/internal/domain"
	"github.com/virelli/ArenaForge_Go/internal/logger"
	"github.com/virelli/ArenaForge_Go/internal/metrics"
)

// UpgradeBuildingRequest represents the request to upgrade a ludus building.
type UpgradeBuildingRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=64"`
	Building string `json:"building_type" validate:"required,buildingtype"`
}

// HandleUpgradeBuilding raises a building by one level for gold.
func HandleUpgradeBuilding(svc account.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req UpgradeBuildingRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Upgrade building"); err != nil {
			return
		}

		building := domain.BuildingType(strings.ToLower(req.Building))

		res, err := svc.UpgradeBuilding(r.Context(), req.PlayerID, building)
		if err != nil {
			respondServiceError(w, r, "Upgrade building", err)
			return
		}

		metrics.BuildingsUpgraded.WithLabelValues(string(building)).Inc()
		metrics.GoldSpent.Add(float64(res.Cost))

		log.Info("Building upgraded",
			"playerID", req.PlayerID,
			"building", building,
			"level", res.Level,
			"cost", res.Cost)

		respondJSON(w, http.StatusOK, res)
	}
}
