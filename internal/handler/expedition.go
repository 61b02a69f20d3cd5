package handler

import (
	"net/http"

	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/engine"
)

// StartExpeditionRequest is the body of POST /players/{id}/expedition
type StartExpeditionRequest struct {
	Type string `json:"type" validate:"required,max=64"`
}

// HandleGetExpedition reports the active expedition
// @Summary Get expedition
// @Tags expeditions
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {object} domain.ExpeditionStatus
// @Failure 404 {object} ErrorResponse
// @Router /players/{id}/expedition [get]
func HandleGetExpedition(svc engine.Service) http.HandlerFunc {
	return playerAction(func(r *http.Request, id string) (*domain.ExpeditionStatus, error) {
		return svc.GetExpedition(r.Context(), id)
	})
}

// HandleStartExpedition sends the player on an expedition
// @Summary Start expedition
// @Tags expeditions
// @Accept json
// @Produce json
// @Param id path string true "Player ID"
// @Param request body StartExpeditionRequest true "Expedition type"
// @Success 200 {object} domain.ExpeditionStatus
// @Failure 404 {object} ErrorResponse "Unknown type"
// @Failure 429 {object} ErrorResponse "Already on an expedition"
// @Router /players/{id}/expedition [post]
func HandleStartExpedition(svc engine.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StartExpeditionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Start expedition"); err != nil {
			return
		}
		playerAction(func(r *http.Request, id string) (*domain.ExpeditionStatus, error) {
			return svc.StartExpedition(r.Context(), id, req.Type)
		})(w, r)
	}
}

// HandleCollectExpedition cashes in a finished expedition
// @Summary Collect expedition
// @Tags expeditions
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {object} domain.ExpeditionCollectResult
// @Failure 404 {object} ErrorResponse "No expedition"
// @Failure 429 {object} ErrorResponse "Not finished"
// @Router /players/{id}/expedition/collect [post]
func HandleCollectExpedition(svc engine.Service) http.HandlerFunc {
	return playerAction(func(r *http.Request, id string) (*domain.ExpeditionCollectResult, error) {
		return svc.CollectExpedition(r.Context(), id)
	})
}
