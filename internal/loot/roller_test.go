package loot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TextRealm_Go/internal/catalog"
	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/random"
)

func TestPickRarity(t *testing.T) {
	standard := catalog.MustDefault().GachaRates.Standard

	tests := []struct {
		name  string
		table catalog.RarityTable
		draw  int // IntN(100) result; the roll is draw+1
		want  domain.Rarity
	}{
		{"first bucket upper edge", standard, 49, domain.RarityCommon},
		{"second bucket lower edge", standard, 50, domain.RarityUncommon},
		{"last bucket", standard, 99, domain.RarityLegendary},
		{"lowest roll", standard, 0, domain.RarityCommon},
		{
			name:  "short table falls back to last entry",
			table: catalog.RarityTable{{Rarity: domain.RarityCommon, Weight: 10}, {Rarity: domain.RarityRare, Weight: 20}},
			draw:  80,
			want:  domain.RarityRare,
		},
		{"empty table", nil, 10, domain.RarityCommon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &random.Scripted{Ints: []int{tt.draw}}
			assert.Equal(t, tt.want, PickRarity(src, tt.table))
		})
	}
}

func TestPickRarity_Distribution(t *testing.T) {
	table := catalog.MustDefault().GachaRates.Standard
	src := random.New(2024)
	const draws = 100000

	counts := make(map[domain.Rarity]int)
	for i := 0; i < draws; i++ {
		counts[PickRarity(src, table)]++
	}

	for _, row := range table {
		got := float64(counts[row.Rarity]) / draws * 100
		assert.InDelta(t, float64(row.Weight), got, 1.0, "rarity %s", row.Rarity)
	}
}

func findTemplate(t *testing.T, cat *catalog.Catalog, item domain.InventoryItem) catalog.ItemTemplate {
	t.Helper()
	for _, tmpl := range cat.Templates(item.Type, item.Rarity) {
		if tmpl.Name == item.Name {
			return tmpl
		}
	}
	t.Fatalf("no template %q for %s %s", item.Name, item.Rarity, item.Type)
	return catalog.ItemTemplate{}
}

func assertJittered(t *testing.T, base, got int) {
	t.Helper()
	if base == 0 {
		assert.Equal(t, 0, got)
		return
	}
	lo := max(1, int(math.Floor(float64(base)*0.85)))
	hi := max(1, int(math.Floor(float64(base)*1.15)))
	assert.GreaterOrEqual(t, got, lo)
	assert.LessOrEqual(t, got, hi)
}

func TestGenerateItem_JitterBounds(t *testing.T) {
	cat := catalog.MustDefault()
	r := NewRoller(cat)
	src := random.New(11)

	for i := 0; i < 2000; i++ {
		rarity := domain.Rarities()[i%5]
		item := r.GenerateItem(src, rarity, "")

		require.True(t, item.Type.Valid())
		require.Equal(t, rarity, item.Rarity)
		tmpl := findTemplate(t, cat, item)

		assertJittered(t, tmpl.Attack, item.Bonuses.Attack)
		assertJittered(t, tmpl.Defense, item.Bonuses.Defense)
		assertJittered(t, tmpl.HP, item.Bonuses.HP)
		if tmpl.Crit == 0 {
			assert.Equal(t, 0.0, item.Bonuses.Crit)
		} else {
			assert.GreaterOrEqual(t, item.Bonuses.Crit, random.Round1(tmpl.Crit*0.9))
			assert.LessOrEqual(t, item.Bonuses.Crit, random.Round1(tmpl.Crit*1.1))
		}
	}
}

func TestGenerateItem_FixedType(t *testing.T) {
	r := NewRoller(catalog.MustDefault())
	src := random.New(5)

	for i := 0; i < 50; i++ {
		item := r.GenerateItem(src, domain.RarityRare, domain.ItemTypeArmor)
		assert.Equal(t, domain.ItemTypeArmor, item.Type)
		assert.False(t, item.Equipped)
		assert.Zero(t, item.ID)
	}
}

func TestGenerateItem_SmallStatsNeverDropToZero(t *testing.T) {
	cat := catalog.MustDefault()
	cat.ItemTemplates[domain.ItemTypeWeapon][domain.RarityCommon] = []catalog.ItemTemplate{{Name: "Twig", Attack: 1}}
	r := NewRoller(cat)
	src := random.New(3)

	for i := 0; i < 200; i++ {
		item := r.GenerateItem(src, domain.RarityCommon, domain.ItemTypeWeapon)
		require.Equal(t, 1, item.Bonuses.Attack)
		require.Zero(t, item.Bonuses.Defense)
	}
}

func TestPull_UsesTierTable(t *testing.T) {
	r := NewRoller(catalog.MustDefault())
	src := random.New(8)

	for i := 0; i < 500; i++ {
		item := r.Pull(src, domain.GachaPremium)
		require.NotEqual(t, domain.RarityCommon, item.Rarity, "premium table has no common tier")
	}
}

func TestPull10x_AlwaysHasEpic(t *testing.T) {
	r := NewRoller(catalog.MustDefault())

	for seed := uint64(0); seed < 2000; seed++ {
		items, _ := r.Pull10x(random.New(seed))
		require.Len(t, items, BatchSize)

		found := false
		for _, it := range items {
			if it.Rarity.AtLeast(domain.RarityEpic) {
				found = true
				break
			}
		}
		require.True(t, found, "seed %d produced no epic+", seed)
	}
}

func TestEnsureFloor(t *testing.T) {
	r := NewRoller(catalog.MustDefault())

	t.Run("patches the last slot only", func(t *testing.T) {
		batch := make([]domain.InventoryItem, BatchSize)
		for i := range batch {
			batch[i] = domain.InventoryItem{Name: "filler", Rarity: domain.RarityRare}
		}

		patched := r.EnsureFloor(random.New(1), batch, domain.RarityEpic)

		assert.True(t, patched)
		for _, it := range batch[:BatchSize-1] {
			assert.Equal(t, "filler", it.Name)
		}
		assert.True(t, batch[BatchSize-1].Rarity.AtLeast(domain.RarityEpic))
	})

	t.Run("leaves a qualifying batch alone", func(t *testing.T) {
		batch := []domain.InventoryItem{
			{Name: "a", Rarity: domain.RarityLegendary},
			{Name: "b", Rarity: domain.RarityCommon},
		}
		assert.False(t, r.EnsureFloor(random.New(1), batch, domain.RarityEpic))
		assert.Equal(t, "b", batch[1].Name)
	})

	t.Run("even odds of epic or legendary", func(t *testing.T) {
		src := random.New(77)
		legendary := 0
		const trials = 4000
		for i := 0; i < trials; i++ {
			batch := []domain.InventoryItem{{Rarity: domain.RarityCommon}}
			r.EnsureFloor(src, batch, domain.RarityEpic)
			if batch[0].Rarity == domain.RarityLegendary {
				legendary++
			}
		}
		assert.InDelta(t, 0.5, float64(legendary)/trials, 0.05)
	})

	t.Run("empty batch", func(t *testing.T) {
		assert.False(t, r.EnsureFloor(random.New(1), nil, domain.RarityEpic))
	})
}

func TestTryDrop(t *testing.T) {
	cat := catalog.MustDefault()
	r := NewRoller(cat)
	src := random.New(12)

	zone := cat.Zones[0]
	zone.DropChance = 0
	for i := 0; i < 200; i++ {
		require.Nil(t, r.TryDrop(src, &zone))
	}

	zone.DropChance = 100
	allowed := make(map[domain.Rarity]bool)
	for _, row := range zone.DropRates {
		allowed[row.Rarity] = true
	}
	for i := 0; i < 200; i++ {
		item := r.TryDrop(src, &zone)
		require.NotNil(t, item)
		require.True(t, allowed[item.Rarity], "rarity %s not in zone table", item.Rarity)
	}

	assert.Nil(t, r.TryDrop(src, nil))
}

func TestSpinWheel(t *testing.T) {
	cat := catalog.MustDefault()
	r := NewRoller(cat)
	src := random.New(21)

	seen := make(map[domain.PrizeKind]int)
	for i := 0; i < 5000; i++ {
		res := r.SpinWheel(src)
		seen[res.Kind]++

		switch res.Kind {
		case domain.PrizeGold:
			assert.Positive(t, res.Rewards.Gold)
		case domain.PrizeCrystals:
			assert.Positive(t, res.Rewards.Crystals)
		case domain.PrizeEnergy:
			assert.Positive(t, res.Rewards.Energy)
		case domain.PrizeItem:
			require.NotNil(t, res.Item)
		case domain.PrizeNothing:
			assert.Equal(t, domain.Rewards{}, res.Rewards)
		}
	}
	assert.Len(t, seen, 5, "every prize kind should come up")
	assert.InDelta(t, 0.40, float64(seen[domain.PrizeGold])/5000, 0.03)
}

func TestSpinWheel_NoWeights(t *testing.T) {
	cat := catalog.MustDefault()
	cat.Wheel = nil
	res := NewRoller(cat).SpinWheel(random.New(1))
	assert.Equal(t, domain.PrizeNothing, res.Kind)
}

func TestExpeditionReward(t *testing.T) {
	cat := catalog.MustDefault()
	r := NewRoller(cat)
	src := random.New(31)
	def, ok := cat.Expedition("dungeon")
	require.True(t, ok)

	withItem := 0
	for i := 0; i < 1000; i++ {
		rw := r.ExpeditionReward(src, def)
		require.GreaterOrEqual(t, rw.Gold, 900)
		require.LessOrEqual(t, rw.Gold, 1500)
		require.GreaterOrEqual(t, rw.XP, 450)
		require.LessOrEqual(t, rw.XP, 700)
		require.GreaterOrEqual(t, rw.Crystals, 4)
		require.LessOrEqual(t, rw.Crystals, 8)
		if rw.ItemRarity != nil {
			withItem++
			require.True(t, rw.ItemRarity.AtLeast(domain.RarityRare))
		}
	}
	assert.InDelta(t, 0.6, float64(withItem)/1000, 0.06)
}
