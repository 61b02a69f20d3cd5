package handler

import (
	"net/http"

	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/engine"
)

// HandleDailyLogin claims the daily login reward
// @Summary Claim daily reward
// @Tags daily
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {object} domain.DailyLoginResult
// @Failure 429 {object} ErrorResponse "Already claimed"
// @Router /players/{id}/daily [post]
func HandleDailyLogin(svc engine.Service) http.HandlerFunc {
	return playerAction(func(r *http.Request, id string) (*domain.DailyLoginResult, error) {
		return svc.ClaimDailyLogin(r.Context(), id)
	})
}

// HandleGetQuests lists today's quests, rolling them on first read
// @Summary Daily quests
// @Tags daily
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {array} domain.Quest
// @Failure 404 {object} ErrorResponse
// @Router /players/{id}/quests [get]
func HandleGetQuests(svc engine.Service) http.HandlerFunc {
	return playerAction(func(r *http.Request, id string) ([]domain.Quest, error) {
		return svc.GetDailyQuests(r.Context(), id)
	})
}

// HandleClaimQuest claims a completed quest
// @Summary Claim quest
// @Tags daily
// @Produce json
// @Param id path string true "Player ID"
// @Param questID path int true "Quest ID"
// @Success 200 {object} domain.QuestClaimResult
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Incomplete or claimed"
// @Router /players/{id}/quests/{questID}/claim [post]
func HandleClaimQuest(svc engine.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		questID, ok := int64Param(w, r, ParamQuestID)
		if !ok {
			return
		}
		playerAction(func(r *http.Request, id string) (*domain.QuestClaimResult, error) {
			return svc.ClaimQuest(r.Context(), id, questID)
		})(w, r)
	}
}
