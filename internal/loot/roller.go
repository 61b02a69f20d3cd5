// Package loot rolls items, gacha pulls, drops and wheel prizes from the
// catalog. Every function takes its random source explicitly.
package loot

import (
	"math"

	"github.com/osse101/TextRealm_Go/internal/catalog"
	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/random"
)

// Roller draws loot from one catalog.
type Roller struct {
	cat *catalog.Catalog
}

// NewRoller creates a roller over cat.
func NewRoller(cat *catalog.Catalog) *Roller {
	return &Roller{cat: cat}
}

// PickRarity draws 1-100 and walks table in order, returning the first tier
// whose cumulative weight reaches the draw. Tables that sum below 100 fall
// back to their last tier; an empty table yields common.
func PickRarity(src random.Source, table catalog.RarityTable) domain.Rarity {
	if len(table) == 0 {
		return domain.RarityCommon
	}
	roll := random.D100(src)
	cumulative := 0
	for _, row := range table {
		cumulative += row.Weight
		if roll <= cumulative {
			return row.Rarity
		}
	}
	return table[len(table)-1].Rarity
}

// GenerateItem rolls a fresh unowned item of rarity. An empty itemType picks
// a slot uniformly.
func (r *Roller) GenerateItem(src random.Source, rarity domain.Rarity, itemType domain.ItemType) domain.InventoryItem {
	if itemType == "" {
		types := domain.ItemTypes()
		itemType = types[src.IntN(len(types))]
	}

	item := domain.InventoryItem{Type: itemType, Rarity: rarity}
	pool := r.cat.Templates(itemType, rarity)
	if len(pool) == 0 {
		item.Name = string(rarity) + " " + string(itemType)
		return item
	}

	tmpl := pool[src.IntN(len(pool))]
	item.Name = tmpl.Name
	item.Bonuses = domain.Bonuses{
		Attack:  jitterInt(src, tmpl.Attack),
		Defense: jitterInt(src, tmpl.Defense),
		HP:      jitterInt(src, tmpl.HP),
		Crit:    jitterCrit(src, tmpl.Crit),
	}
	return item
}

// jitterInt varies a nonzero stat by up to ±15%, never below 1.
func jitterInt(src random.Source, base int) int {
	if base == 0 {
		return 0
	}
	v := int(math.Floor(float64(base) * random.Uniform(src, 1-statJitter, 1+statJitter)))
	return max(1, v)
}

// jitterCrit varies a nonzero crit bonus by up to ±10%, to one decimal.
func jitterCrit(src random.Source, base float64) float64 {
	if base == 0 {
		return 0
	}
	return random.Round1(base * random.Uniform(src, 1-critJitter, 1+critJitter))
}

// Pull performs one gacha draw on the tier's table.
func (r *Roller) Pull(src random.Source, tier domain.GachaTier) domain.InventoryItem {
	table := r.cat.GachaRates.Standard
	if tier == domain.GachaPremium {
		table = r.cat.GachaRates.Premium
	}
	return r.GenerateItem(src, PickRarity(src, table), "")
}

// PullBatch performs n independent draws with no guarantee applied.
func (r *Roller) PullBatch(src random.Source, tier domain.GachaTier, n int) []domain.InventoryItem {
	items := make([]domain.InventoryItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, r.Pull(src, tier))
	}
	return items
}

// Pull10x performs ten premium draws and then applies the epic floor.
func (r *Roller) Pull10x(src random.Source) ([]domain.InventoryItem, bool) {
	items := r.PullBatch(src, domain.GachaPremium, BatchSize)
	guaranteed := r.EnsureFloor(src, items, domain.RarityEpic)
	return items, guaranteed
}

// EnsureFloor overwrites the last item with a fresh epic or legendary item
// (even odds) when no item in the batch reaches floor. It reports whether
// the overwrite happened. The draws themselves are left untouched.
func (r *Roller) EnsureFloor(src random.Source, items []domain.InventoryItem, floor domain.Rarity) bool {
	if len(items) == 0 {
		return false
	}
	for _, it := range items {
		if it.Rarity.AtLeast(floor) {
			return false
		}
	}

	rarity := domain.RarityEpic
	if src.IntN(2) == 1 {
		rarity = domain.RarityLegendary
	}
	if !rarity.AtLeast(floor) {
		rarity = floor
	}
	items[len(items)-1] = r.GenerateItem(src, rarity, "")
	return true
}

// TryDrop rolls the zone's drop chance and, on success, an item from the
// zone's own rarity table.
func (r *Roller) TryDrop(src random.Source, zone *catalog.Zone) *domain.InventoryItem {
	if zone == nil || !random.Chance(src, zone.DropChance) {
		return nil
	}
	item := r.GenerateItem(src, PickRarity(src, zone.DropRates), "")
	return &item
}

// SpinWheel picks a weighted wheel segment. Item prizes come with a freshly
// rolled item of the segment's rarity.
func (r *Roller) SpinWheel(src random.Source) domain.WheelResult {
	prizes := r.cat.Wheel
	weights := make([]int, len(prizes))
	for i, p := range prizes {
		weights[i] = p.Weight
	}
	idx := random.Weighted(src, weights)
	if idx < 0 {
		return domain.WheelResult{Kind: domain.PrizeNothing}
	}

	p := prizes[idx]
	res := domain.WheelResult{PrizeID: p.ID, Name: p.Name, Kind: p.Kind}
	switch p.Kind {
	case domain.PrizeGold:
		res.Rewards.Gold = p.Amount
	case domain.PrizeCrystals:
		res.Rewards.Crystals = p.Amount
	case domain.PrizeEnergy:
		res.Rewards.Energy = p.Amount
	case domain.PrizeItem:
		item := r.GenerateItem(src, p.Rarity, "")
		res.Item = &item
	}
	return res
}

// ExpeditionReward pre-rolls the bundle an expedition pays out.
func (r *Roller) ExpeditionReward(src random.Source, def *catalog.ExpeditionDef) domain.ExpeditionReward {
	rollRange := func(rng []int) int {
		lo, hi := catalog.Bounds(rng)
		return random.IntRange(src, lo, hi)
	}
	reward := domain.ExpeditionReward{
		Gold:     rollRange(def.Gold),
		XP:       rollRange(def.XP),
		Crystals: rollRange(def.Crystals),
	}
	if random.Chance(src, def.ItemChance) {
		rarity := PickRarity(src, def.ItemRates)
		reward.ItemRarity = &rarity
	}
	return reward
}
