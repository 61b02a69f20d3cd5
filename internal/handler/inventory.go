package handler

import (
	"net/http"
	"strings"

	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/engine"
)

// UpgradeRequest is the body of POST /players/{id}/upgrade
type UpgradeRequest struct {
	Rarity string `json:"rarity" validate:"required,rarity"`
}

// HandleListInventory lists a player's items
// @Summary List inventory
// @Tags inventory
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {array} domain.InventoryItem
// @Failure 404 {object} ErrorResponse
// @Router /players/{id}/inventory [get]
func HandleListInventory(svc engine.Service) http.HandlerFunc {
	return playerAction(func(r *http.Request, id string) ([]domain.InventoryItem, error) {
		return svc.ListInventory(r.Context(), id)
	})
}

// itemAction resolves {itemID} before running call.
func itemAction[T any](call func(r *http.Request, id string, itemID int64) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, ok := int64Param(w, r, ParamItemID)
		if !ok {
			return
		}
		playerAction(func(r *http.Request, id string) (T, error) {
			return call(r, id, itemID)
		})(w, r)
	}
}

// HandleEquip equips an item, unequipping whatever held its slot
// @Summary Equip item
// @Tags inventory
// @Produce json
// @Param id path string true "Player ID"
// @Param itemID path int true "Item ID"
// @Success 200 {object} domain.InventoryItem
// @Failure 404 {object} ErrorResponse
// @Router /players/{id}/inventory/{itemID}/equip [post]
func HandleEquip(svc engine.Service) http.HandlerFunc {
	return itemAction(func(r *http.Request, id string, itemID int64) (*domain.InventoryItem, error) {
		return svc.EquipItem(r.Context(), id, itemID)
	})
}

// HandleUnequip unequips an item
// @Summary Unequip item
// @Tags inventory
// @Produce json
// @Param id path string true "Player ID"
// @Param itemID path int true "Item ID"
// @Success 200 {object} domain.InventoryItem
// @Failure 404 {object} ErrorResponse
// @Router /players/{id}/inventory/{itemID}/unequip [post]
func HandleUnequip(svc engine.Service) http.HandlerFunc {
	return itemAction(func(r *http.Request, id string, itemID int64) (*domain.InventoryItem, error) {
		return svc.UnequipItem(r.Context(), id, itemID)
	})
}

// HandleSell sells an unequipped item for its rarity price
// @Summary Sell item
// @Tags inventory
// @Produce json
// @Param id path string true "Player ID"
// @Param itemID path int true "Item ID"
// @Success 200 {object} domain.SellResult
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Item equipped"
// @Router /players/{id}/inventory/{itemID}/sell [post]
func HandleSell(svc engine.Service) http.HandlerFunc {
	return itemAction(func(r *http.Request, id string, itemID int64) (*domain.SellResult, error) {
		return svc.SellItem(r.Context(), id, itemID)
	})
}

// HandleUpgrade fuses items of one rarity into one of the next
// @Summary Upgrade rarity
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Player ID"
// @Param request body UpgradeRequest true "Rarity to consume"
// @Success 200 {object} domain.UpgradeResult
// @Failure 400 {object} ErrorResponse "Not upgradable"
// @Failure 402 {object} ErrorResponse "Not enough items or gold"
// @Router /players/{id}/upgrade [post]
func HandleUpgrade(svc engine.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpgradeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Upgrade rarity"); err != nil {
			return
		}
		tier := domain.Rarity(strings.ToLower(req.Rarity))
		playerAction(func(r *http.Request, id string) (*domain.UpgradeResult, error) {
			return svc.UpgradeRarity(r.Context(), id, tier)
		})(w, r)
	}
}
