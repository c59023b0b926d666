package handler

import (
	"net/http"
	"strings"

	"github.com/virelli/ArenaForge_Go/internal/account"
	"github.com/virelli/ArenaForge_Go/internal/catalog"
	"github.com/virelli/ArenaForge_Go/internal/domain"
	"github.com/virelli/ArenaForge_Go/internal/economy"
	"github.com/virelli/ArenaForge_Go/internal/logger"
	"github.com/virelli/ArenaForge_Go/internal/metrics"
)

// BuyGladiatorRequest represents the request to recruit a new gladiator.
type BuyGladiatorRequest struct {
	PlayerID  string `json:"player_id" validate:"required,max=64"`
	Archetype string `json:"gladiator_type" validate:"required,archetype"`
	Name      string `json:"name" validate:"max=32"`
}

// HealGladiatorRequest represents the request to heal a wounded gladiator.
type HealGladiatorRequest struct {
	PlayerID    string `json:"player_id" validate:"required,max=64"`
	GladiatorID int    `json:"gladiator_id" validate:"required,min=1"`
}

// EquipItemRequest represents the request to equip gear from the inventory.
type EquipItemRequest struct {
	PlayerID    string `json:"player_id" validate:"required,max=64"`
	GladiatorID int    `json:"gladiator_id" validate:"required,min=1"`
	Slot        string `json:"item_type" validate:"required,equipslot"`
	ItemID      int    `json:"item_id" validate:"required,min=1"`
}

// HandleBuyGladiator recruits a gladiator into the player's barracks.
func HandleBuyGladiator(svc account.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req BuyGladiatorRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Buy gladiator"); err != nil {
			return
		}

		archetype := domain.Archetype(strings.ToLower(req.Archetype))

		res, err := svc.PurchaseGladiator(r.Context(), req.PlayerID, archetype, req.Name)
		if err != nil {
			respondServiceError(w, r, "Buy gladiator", err)
			return
		}

		metrics.GladiatorsRecruited.WithLabelValues(string(archetype)).Inc()
		metrics.GoldSpent.Add(float64(catalog.ArchetypePurchaseCost(archetype)))

		log.Info("Gladiator recruited",
			"playerID", req.PlayerID,
			"archetype", archetype,
			"gladiatorID", res.Gladiator.ID)

		respondJSON(w, http.StatusOK, res)
	}
}

// HandleHealGladiator spends a healing potion on a wounded gladiator.
func HandleHealGladiator(svc account.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req HealGladiatorRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Heal gladiator"); err != nil {
			return
		}

		res, err := svc.HealGladiator(r.Context(), req.PlayerID, req.GladiatorID)
		if err != nil {
			respondServiceError(w, r, "Heal gladiator", err)
			return
		}

		log.Info("Gladiator healed",
			"playerID", req.PlayerID,
			"gladiatorID", req.GladiatorID,
			"healedFor", res.HealedFor)

		respondJSON(w, http.StatusOK, res)
	}
}

// HandleEquipItem moves gear from the inventory onto a gladiator.
func HandleEquipItem(svc account.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req EquipItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Equip item"); err != nil {
			return
		}

		slot := economy.EquipSlot(strings.ToLower(req.Slot))

		res, err := svc.EquipItem(r.Context(), req.PlayerID, req.GladiatorID, slot, req.ItemID)
		if err != nil {
			respondServiceError(w, r, "Equip item", err)
			return
		}

		log.Info("Item equipped",
			"playerID", req.PlayerID,
			"gladiatorID", req.GladiatorID,
			"slot", slot,
			"itemID", req.ItemID)

		respondJSON(w, http.StatusOK, res)
	}
}
