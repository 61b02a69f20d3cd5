package handler

import (
	"net/http"

	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/engine"
)

// RankResponse is returned by GET /players/{id}/rank
type RankResponse struct {
	PlayerID string                 `json:"player_id"`
	By       domain.LeaderboardKind `json:"by"`
	Rank     int                    `json:"rank"`
}

// leaderboardKind reads ?by=, defaulting to the level ranking.
func leaderboardKind(r *http.Request) domain.LeaderboardKind {
	if by := r.URL.Query().Get(QueryBy); by != "" {
		return domain.LeaderboardKind(by)
	}
	return domain.LeaderboardLevel
}

// HandleLeaderboard returns the top players of a ranking
// @Summary Leaderboard
// @Tags rankings
// @Produce json
// @Param by query string false "level, arena or tower" default(level)
// @Param limit query int false "1-50" default(10)
// @Success 200 {array} domain.LeaderboardEntry
// @Failure 400 {object} ErrorResponse
// @Router /leaderboard [get]
func HandleLeaderboard(svc engine.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := GetOptionalIntQueryParam(r, w, QueryLimit, 0)
		if !ok {
			return
		}

		entries, err := svc.GetLeaderboard(r.Context(), leaderboardKind(r), limit)
		if err != nil {
			respondServiceError(r.Context(), w, err)
			return
		}
		respondJSON(w, http.StatusOK, entries)
	}
}

// HandleRank returns a player's 1-based position in a ranking
// @Summary Player rank
// @Tags rankings
// @Produce json
// @Param id path string true "Player ID"
// @Param by query string false "level, arena or tower" default(level)
// @Success 200 {object} RankResponse
// @Failure 404 {object} ErrorResponse
// @Router /players/{id}/rank [get]
func HandleRank(svc engine.Service) http.HandlerFunc {
	return playerAction(func(r *http.Request, id string) (RankResponse, error) {
		by := leaderboardKind(r)
		rank, err := svc.GetPlayerRank(r.Context(), id, by)
		if err != nil {
			return RankResponse{}, err
		}
		return RankResponse{PlayerID: id, By: by, Rank: rank}, nil
	})
}
