package handler

import (
	"net/http"
	"strings"

	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/engine"
	"github.com/osse101/TextRealm_Go/internal/logger"
)

// CreatePlayerRequest is the body of POST /players
type CreatePlayerRequest struct {
	ID    string `json:"id" validate:"required,player_id"`
	Name  string `json:"name" validate:"max=64"`
	Class string `json:"class" validate:"required,class"`
}

// HandleCreatePlayer registers a new player
// @Summary Create player
// @Description Create a player with starting gold, energy and rating
// @Tags players
// @Accept json
// @Produce json
// @Param request body CreatePlayerRequest true "Player details"
// @Success 201 {object} domain.PlayerState
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse "Player exists"
// @Router /players [post]
func HandleCreatePlayer(svc engine.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreatePlayerRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create player"); err != nil {
			return
		}

		ctx := logger.WithPlayerID(r.Context(), req.ID)
		state, err := svc.CreatePlayer(ctx, req.ID, req.Name, domain.Class(strings.ToLower(req.Class)))
		if err != nil {
			respondServiceError(ctx, w, err)
			return
		}

		logger.FromContext(ctx).Info("Player created", "class", state.Player.Class)
		respondJSON(w, http.StatusCreated, state)
	}
}

// HandleGetPlayer returns a player's derived state
// @Summary Get player
// @Description Player record with current energy, total stats and remaining daily gates
// @Tags players
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {object} domain.PlayerState
// @Failure 404 {object} ErrorResponse
// @Router /players/{id} [get]
func HandleGetPlayer(svc engine.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := playerIDParam(w, r)
		if !ok {
			return
		}

		state, err := svc.GetPlayerState(r.Context(), id)
		if err != nil {
			respondServiceError(r.Context(), w, err)
			return
		}
		respondJSON(w, http.StatusOK, state)
	}
}

// playerAction adapts an engine call on one player into a handler. The
// result is written as 200 JSON.
func playerAction[T any](call func(r *http.Request, id string) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := playerIDParam(w, r)
		if !ok {
			return
		}
		r = r.WithContext(logger.WithPlayerID(r.Context(), id))

		res, err := call(r, id)
		if err != nil {
			respondServiceError(r.Context(), w, err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}
