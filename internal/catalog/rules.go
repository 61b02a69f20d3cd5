package catalog

import "time"

// Rules are the tunable numbers of the game economy.
type Rules struct {
	MaxEnergy          int `yaml:"max_energy"`
	EnergyRegenMinutes int `yaml:"energy_regen_minutes"`
	HuntEnergyCost     int `yaml:"hunt_energy_cost"`
	StartingGold       int `yaml:"starting_gold"`
	StartingCrystals   int `yaml:"starting_crystals"`
	StartingRating     int `yaml:"starting_rating"`
	LevelUpGold        int `yaml:"level_up_gold"`
	LevelUpCrystals    int `yaml:"level_up_crystals"`
	QuestsPerDay       int `yaml:"quests_per_day"`

	Arena   ArenaRules   `yaml:"arena"`
	Tower   TowerRules   `yaml:"tower"`
	Daily   DailyRules   `yaml:"daily"`
	Gacha   GachaRules   `yaml:"gacha"`
	Hunt    HuntRules    `yaml:"hunt"`
	Auction AuctionRules `yaml:"auction"`
}

// EnergyRegenPeriod is the time it takes to regenerate one energy point.
func (r Rules) EnergyRegenPeriod() time.Duration {
	return time.Duration(r.EnergyRegenMinutes) * time.Minute
}

type ArenaRules struct {
	FightsPerDay int `yaml:"fights_per_day"`
	WinGold      int `yaml:"win_gold"`
	WinCrystals  int `yaml:"win_crystals"`
	WinRating    int `yaml:"win_rating"`
	LoseRating   int `yaml:"lose_rating"`
	LevelRange   int `yaml:"level_range"`
}

type TowerRules struct {
	AttemptsPerDay int `yaml:"attempts_per_day"`
	BossEvery      int `yaml:"boss_every"`
}

type DailyRules struct {
	BaseGold      int `yaml:"base_gold"`
	GoldPerStreak int `yaml:"gold_per_streak"`
	BaseCrystals  int `yaml:"base_crystals"`
	BonusCrystals int `yaml:"bonus_crystals"`
	BonusStreak   int `yaml:"bonus_streak"`
	Energy        int `yaml:"energy"`
}

type GachaRules struct {
	StandardCostGold    int `yaml:"standard_cost_gold"`
	PremiumCostCrystals int `yaml:"premium_cost_crystals"`
	TenPullCostCrystals int `yaml:"ten_pull_cost_crystals"`
}

type HuntRules struct {
	CritLootChance         int     `yaml:"crit_loot_chance"`
	CritLootGoldMultiplier int     `yaml:"crit_loot_gold_multiplier"`
	CritLootXPMultiplier   float64 `yaml:"crit_loot_xp_multiplier"`
	MonsterCrit            float64 `yaml:"monster_crit"`
	BossCrit               float64 `yaml:"boss_crit"`
}

type AuctionRules struct {
	MaxListings              int `yaml:"max_listings"`
	FeePercent               int `yaml:"fee_percent"`
	SuggestedPriceMultiplier int `yaml:"suggested_price_multiplier"`
}

// SellerProceeds is what the seller receives for a sale at price; the fee is
// destroyed rather than collected.
func (a AuctionRules) SellerProceeds(price int) int {
	keep := 100 - a.FeePercent
	return price/100*keep + price%100*keep/100
}
