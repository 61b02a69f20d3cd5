package handler

import (
	"net/http"
	"strings"

	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/engine"
)

// GachaRequest is the body of POST /players/{id}/gacha
type GachaRequest struct {
	Tier string `json:"tier" validate:"required,gacha_tier"`
}

// HandleGacha performs a single pull
// @Summary Gacha pull
// @Description Standard pulls cost gold, premium pulls cost crystals
// @Tags loot
// @Accept json
// @Produce json
// @Param id path string true "Player ID"
// @Param request body GachaRequest true "Tier"
// @Success 200 {object} domain.GachaResult
// @Failure 402 {object} ErrorResponse
// @Router /players/{id}/gacha [post]
func HandleGacha(svc engine.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GachaRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Gacha pull"); err != nil {
			return
		}
		tier := domain.GachaTier(strings.ToLower(req.Tier))
		playerAction(func(r *http.Request, id string) (*domain.GachaResult, error) {
			return svc.PullGacha(r.Context(), id, tier)
		})(w, r)
	}
}

// HandleGacha10x performs a ten-pull with an epic-or-better guarantee
// @Summary Gacha 10x pull
// @Tags loot
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {object} domain.GachaResult
// @Failure 402 {object} ErrorResponse
// @Router /players/{id}/gacha/10x [post]
func HandleGacha10x(svc engine.Service) http.HandlerFunc {
	return playerAction(func(r *http.Request, id string) (*domain.GachaResult, error) {
		return svc.PullGacha10x(r.Context(), id)
	})
}

// HandleWheel spins the daily wheel
// @Summary Spin wheel
// @Tags loot
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {object} domain.WheelResult
// @Failure 429 {object} ErrorResponse "Already spun today"
// @Router /players/{id}/wheel [post]
func HandleWheel(svc engine.Service) http.HandlerFunc {
	return playerAction(func(r *http.Request, id string) (*domain.WheelResult, error) {
		return svc.SpinWheel(r.Context(), id)
	})
}
