package handler

import (
	"net/http"

	"github.com/osse101/TextRealm_Go/internal/catalog"
)

// ZoneInfo describes a hunting zone without its loot tables.
type ZoneInfo struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	MinLevel int      `json:"min_level"`
	Monsters []string `json:"monsters"`
	Boss     string   `json:"boss,omitempty"`
}

// ExpeditionInfo describes an expedition type.
type ExpeditionInfo struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
	GoldMin         int    `json:"gold_min"`
	GoldMax         int    `json:"gold_max"`
	ItemChance      int    `json:"item_chance"`
}

// HandleListZones lists hunting zones
// @Summary Zones
// @Tags catalog
// @Produce json
// @Success 200 {array} ZoneInfo
// @Router /catalog/zones [get]
func HandleListZones(cat *catalog.Catalog) http.HandlerFunc {
	zones := make([]ZoneInfo, 0, len(cat.Zones))
	for _, z := range cat.Zones {
		info := ZoneInfo{ID: z.ID, Name: z.Name, MinLevel: z.MinLevel}
		for _, m := range z.Monsters {
			info.Monsters = append(info.Monsters, m.Name)
		}
		if z.Boss != nil {
			info.Boss = z.Boss.Name
		}
		zones = append(zones, info)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, zones)
	}
}

// HandleListExpeditions lists expedition types
// @Summary Expeditions
// @Tags catalog
// @Produce json
// @Success 200 {array} ExpeditionInfo
// @Router /catalog/expeditions [get]
func HandleListExpeditions(cat *catalog.Catalog) http.HandlerFunc {
	types := make([]ExpeditionInfo, 0, len(cat.Expeditions))
	for _, e := range cat.Expeditions {
		lo, hi := catalog.Bounds(e.Gold)
		types = append(types, ExpeditionInfo{
			ID:              e.ID,
			Name:            e.Name,
			DurationMinutes: e.DurationMinutes,
			GoldMin:         lo,
			GoldMax:         hi,
			ItemChance:      e.ItemChance,
		})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, types)
	}
}
