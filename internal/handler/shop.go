package handler

import (
	"net/http"
	"strings"

	"github.com/virelli/ArenaForge_Go/internal/account"
	"github.com/virelli/ArenaForge_Go/internal/catalog"
	"github.com/virelli/ArenaForge_Go/internal/domain"
	"github.com/virelli/ArenaForge_Go/internal/logger"
	"github.com/virelli/ArenaForge_Go/internal/metrics"
)

// BuyItemRequest represents the request to buy a shop item.
type BuyItemRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=64"`
	Category string `json:"item_type" validate:"required,itemcategory"`
	ItemID   int    `json:"item_id" validate:"required,min=1"`
}

// HandleGetShopItems returns the full static shop catalog.
func HandleGetShopItems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, catalog.ShopCatalog())
	}
}

// HandleBuyItem purchases one unit of a shop item into the inventory.
func HandleBuyItem(svc account.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req BuyItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Buy item"); err != nil {
			return
		}

		category := domain.ItemCategory(strings.ToLower(req.Category))

		res, err := svc.BuyShopItem(r.Context(), req.PlayerID, category, req.ItemID)
		if err != nil {
			respondServiceError(w, r, "Buy item", err)
			return
		}

		metrics.ItemsBought.WithLabelValues(string(category)).Inc()
		metrics.GoldSpent.Add(float64(res.Item.Cost))

		log.Info("Item bought",
			"playerID", req.PlayerID,
			"category", category,
			"itemID", req.ItemID,
			"cost", res.Item.Cost)

		respondJSON(w, http.StatusOK, res)
	}
}
