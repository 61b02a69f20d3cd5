package handler

import (
	"net/http"

	"github.com/osse101/TextRealm_Go/internal/combat"
	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/engine"
)

// DefaultCombatLogLines is how many hits a combat result shows unless the
// caller asks for more with ?log=N.
const DefaultCombatLogLines = 10

// combatAction is playerAction for results carrying a combat log, which is
// cut to the requested number of lines.
func combatAction[T any](call func(r *http.Request, id string) (T, error), combatOf func(T) *domain.CombatResult) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lines, ok := GetOptionalIntQueryParam(r, w, QueryLog, DefaultCombatLogLines)
		if !ok {
			return
		}
		playerAction(func(r *http.Request, id string) (T, error) {
			res, err := call(r, id)
			if err == nil {
				c := combatOf(res)
				c.Log = combat.Truncate(c.Log, lines)
			}
			return res, err
		})(w, r)
	}
}

// HuntRequest is the body of POST /players/{id}/hunt
type HuntRequest struct {
	ZoneID int `json:"zone_id" validate:"required,min=1"`
}

// HandleHunt fights one monster in a zone
// @Summary Hunt
// @Description Spend energy to fight a random monster of the zone
// @Tags combat
// @Accept json
// @Produce json
// @Param id path string true "Player ID"
// @Param request body HuntRequest true "Zone"
// @Param log query int false "Combat log lines" default(10)
// @Success 200 {object} domain.HuntResult
// @Failure 402 {object} ErrorResponse "Not enough energy"
// @Failure 403 {object} ErrorResponse "Zone locked"
// @Failure 404 {object} ErrorResponse
// @Router /players/{id}/hunt [post]
func HandleHunt(svc engine.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req HuntRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Hunt"); err != nil {
			return
		}
		combatAction(func(r *http.Request, id string) (*domain.HuntResult, error) {
			return svc.PerformHunt(r.Context(), id, req.ZoneID)
		}, func(res *domain.HuntResult) *domain.CombatResult { return &res.Combat })(w, r)
	}
}

// HandleArena fights a ranked opponent
// @Summary Arena fight
// @Tags combat
// @Produce json
// @Param id path string true "Player ID"
// @Param log query int false "Combat log lines" default(10)
// @Success 200 {object} domain.ArenaResult
// @Failure 404 {object} ErrorResponse "No opponent"
// @Failure 429 {object} ErrorResponse "No fights left today"
// @Router /players/{id}/arena [post]
func HandleArena(svc engine.Service) http.HandlerFunc {
	return combatAction(func(r *http.Request, id string) (*domain.ArenaResult, error) {
		return svc.PerformArenaFight(r.Context(), id)
	}, func(res *domain.ArenaResult) *domain.CombatResult { return &res.Combat })
}

// HandleTower attempts the next tower floor
// @Summary Tower attempt
// @Tags combat
// @Produce json
// @Param id path string true "Player ID"
// @Param log query int false "Combat log lines" default(10)
// @Success 200 {object} domain.TowerResult
// @Failure 429 {object} ErrorResponse "No attempts left today"
// @Router /players/{id}/tower [post]
func HandleTower(svc engine.Service) http.HandlerFunc {
	return combatAction(func(r *http.Request, id string) (*domain.TowerResult, error) {
		return svc.PerformTowerFloor(r.Context(), id)
	}, func(res *domain.TowerResult) *domain.CombatResult { return &res.Combat })
}
