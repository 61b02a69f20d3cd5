package catalog

import (
	"time"

	"github.com/osse101/TextRealm_Go/internal/domain"
)

// Catalog is the read-only game content the engine resolves actions against.
type Catalog struct {
	Version       string                                               `yaml:"version"`
	Rules         Rules                                                `yaml:"rules"`
	SellPrices    map[domain.Rarity]int                                `yaml:"sell_prices"`
	UpgradeCosts  map[domain.Rarity]int                                `yaml:"upgrade_costs"`
	Classes       []ClassDef                                           `yaml:"classes"`
	GachaRates    GachaRates                                           `yaml:"gacha_rates"`
	Zones         []Zone                                               `yaml:"zones"`
	ItemTemplates map[domain.ItemType]map[domain.Rarity][]ItemTemplate `yaml:"item_templates"`
	Tower         TowerDef                                             `yaml:"tower"`
	Expeditions   []ExpeditionDef                                      `yaml:"expeditions"`
	Wheel         []WheelPrize                                         `yaml:"wheel"`
	Quests        []QuestTemplate                                      `yaml:"quests"`
}

// RarityWeight is one row of an ordered rarity table.
type RarityWeight struct {
	Rarity domain.Rarity `yaml:"rarity" json:"rarity"`
	Weight int           `yaml:"weight" json:"weight"`
}

// RarityTable is walked in declaration order when drawing.
type RarityTable []RarityWeight

// GachaRates holds the two pull tables.
type GachaRates struct {
	Standard RarityTable `yaml:"standard"`
	Premium  RarityTable `yaml:"premium"`
}

// ClassStats are the level-1 values of a class.
type ClassStats struct {
	HP      float64 `yaml:"hp"`
	Attack  float64 `yaml:"attack"`
	Defense float64 `yaml:"defense"`
	Crit    float64 `yaml:"crit"`
}

// ClassDef describes a playable class.
type ClassDef struct {
	ID          domain.Class `yaml:"id"`
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Base        ClassStats   `yaml:"base"`
	PerLevel    ClassStats   `yaml:"per_level"`
}

// StatsAt returns the class's own stats at level, before equipment.
func (c ClassDef) StatsAt(level int) domain.StatBlock {
	lv := float64(level - 1)
	return domain.StatBlock{
		HP:      int(c.Base.HP + lv*c.PerLevel.HP),
		Attack:  int(c.Base.Attack + lv*c.PerLevel.Attack),
		Defense: int(c.Base.Defense + lv*c.PerLevel.Defense),
		Crit:    c.Base.Crit,
	}
}

// Monster is a hunt or tower enemy.
type Monster struct {
	Name    string   `yaml:"name" json:"name"`
	HP      int      `yaml:"hp" json:"hp"`
	Attack  int      `yaml:"attack" json:"attack"`
	Defense int      `yaml:"defense" json:"defense"`
	Crit    *float64 `yaml:"crit,omitempty" json:"crit,omitempty"`
	XP      int      `yaml:"xp" json:"xp"`
	Gold    int      `yaml:"gold" json:"gold"`
}

// StatBlock converts the monster to combat input. A monster without an
// explicit crit uses defaultCrit.
func (m Monster) StatBlock(defaultCrit float64) domain.StatBlock {
	crit := defaultCrit
	if m.Crit != nil {
		crit = *m.Crit
	}
	return domain.StatBlock{HP: m.HP, Attack: m.Attack, Defense: m.Defense, Crit: crit}
}

// Zone is a hunting ground.
type Zone struct {
	ID         int         `yaml:"id" json:"id"`
	Name       string      `yaml:"name" json:"name"`
	MinLevel   int         `yaml:"min_level" json:"min_level"`
	DropChance int         `yaml:"drop_chance" json:"drop_chance"`
	BossChance int         `yaml:"boss_chance" json:"boss_chance"`
	DropRates  RarityTable `yaml:"drop_rates" json:"drop_rates"`
	Monsters   []Monster   `yaml:"monsters" json:"monsters"`
	Boss       *Monster    `yaml:"boss,omitempty" json:"boss,omitempty"`
}

// ItemTemplate is the base stat line an item is rolled from.
type ItemTemplate struct {
	Name    string  `yaml:"name"`
	Attack  int     `yaml:"attack"`
	Defense int     `yaml:"defense"`
	HP      int     `yaml:"hp"`
	Crit    float64 `yaml:"crit"`
}

// Bonuses returns the template's unjittered bonuses.
func (t ItemTemplate) Bonuses() domain.Bonuses {
	return domain.Bonuses{Attack: t.Attack, Defense: t.Defense, HP: t.HP, Crit: t.Crit}
}

// ExpeditionDef describes an expedition type.
type ExpeditionDef struct {
	ID              string      `yaml:"id" json:"id"`
	Name            string      `yaml:"name" json:"name"`
	DurationMinutes int         `yaml:"duration_minutes" json:"duration_minutes"`
	Gold            []int       `yaml:"gold" json:"gold"`
	XP              []int       `yaml:"xp" json:"xp"`
	Crystals        []int       `yaml:"crystals" json:"crystals"`
	ItemChance      int         `yaml:"item_chance" json:"item_chance"`
	ItemRates       RarityTable `yaml:"item_rates" json:"item_rates"`
}

// Duration returns how long the expedition takes.
func (e ExpeditionDef) Duration() time.Duration {
	return time.Duration(e.DurationMinutes) * time.Minute
}

// Bounds returns the inclusive [min, max] of a two-element reward range.
func Bounds(r []int) (int, int) {
	switch len(r) {
	case 0:
		return 0, 0
	case 1:
		return r[0], r[0]
	}
	return r[0], r[1]
}

// WheelPrize is one segment of the fortune wheel.
type WheelPrize struct {
	ID     string           `yaml:"id"`
	Name   string           `yaml:"name"`
	Kind   domain.PrizeKind `yaml:"kind"`
	Amount int              `yaml:"amount"`
	Rarity domain.Rarity    `yaml:"rarity"`
	Weight int              `yaml:"weight"`
}

// QuestTemplate is the blueprint of a daily quest. Description takes the
// rolled target as its only format argument.
type QuestTemplate struct {
	Type        domain.QuestType `yaml:"type"`
	Description string           `yaml:"description"`
	TargetMin   int              `yaml:"target_min"`
	TargetMax   int              `yaml:"target_max"`
	Reward      domain.Rewards   `yaml:"reward"`
}

// Class looks up a class by id.
func (c *Catalog) Class(id domain.Class) (ClassDef, bool) {
	for _, cl := range c.Classes {
		if cl.ID == id {
			return cl, true
		}
	}
	return ClassDef{}, false
}

// Zone looks up a zone by id.
func (c *Catalog) Zone(id int) (*Zone, bool) {
	for i := range c.Zones {
		if c.Zones[i].ID == id {
			return &c.Zones[i], true
		}
	}
	return nil, false
}

// ZonesForLevel returns the zones a player of level may hunt in.
func (c *Catalog) ZonesForLevel(level int) []Zone {
	var out []Zone
	for _, z := range c.Zones {
		if level >= z.MinLevel {
			out = append(out, z)
		}
	}
	return out
}

// Expedition looks up an expedition type by id.
func (c *Catalog) Expedition(id string) (*ExpeditionDef, bool) {
	for i := range c.Expeditions {
		if c.Expeditions[i].ID == id {
			return &c.Expeditions[i], true
		}
	}
	return nil, false
}

// Templates returns the templates for a slot and tier, falling back to the
// common pool when the tier has none.
func (c *Catalog) Templates(t domain.ItemType, r domain.Rarity) []ItemTemplate {
	byRarity := c.ItemTemplates[t]
	if pool := byRarity[r]; len(pool) > 0 {
		return pool
	}
	return byRarity[domain.RarityCommon]
}

// SellPrice returns the fixed sell price for a tier.
func (c *Catalog) SellPrice(r domain.Rarity) int {
	return c.SellPrices[r]
}

// SuggestedListingPrice is the price the UI proposes when listing an item.
func (c *Catalog) SuggestedListingPrice(r domain.Rarity) int {
	return c.SellPrice(r) * c.Rules.Auction.SuggestedPriceMultiplier
}

// UpgradeCost returns the gold cost to merge three items of tier r.
func (c *Catalog) UpgradeCost(r domain.Rarity) (int, bool) {
	cost, ok := c.UpgradeCosts[r]
	return cost, ok
}
