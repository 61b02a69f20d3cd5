package catalog

import "github.com/osse101/TextRealm_Go/internal/domain"

// TowerDef holds the floor scaling formulas of the endless tower.
type TowerDef struct {
	MonsterNames         []string     `yaml:"monster_names"`
	BossNames            []string     `yaml:"boss_names"`
	Base                 TowerBase    `yaml:"base"`
	HPPerFloor           float64      `yaml:"hp_per_floor"`
	AttackPerFloor       float64      `yaml:"attack_per_floor"`
	DefensePerFloor      float64      `yaml:"defense_per_floor"`
	BossHPMultiplier     float64      `yaml:"boss_hp_multiplier"`
	BossAttackMultiplier float64      `yaml:"boss_attack_multiplier"`
	Rewards              TowerRewards `yaml:"rewards"`
	BossDrops            []TowerDrop  `yaml:"boss_drops"`
}

type TowerBase struct {
	HP      int `yaml:"hp"`
	Attack  int `yaml:"attack"`
	Defense int `yaml:"defense"`
}

type TowerRewards struct {
	BaseGold      int `yaml:"base_gold"`
	GoldPerFloor  int `yaml:"gold_per_floor"`
	BaseXP        int `yaml:"base_xp"`
	XPPerFloor    int `yaml:"xp_per_floor"`
	CrystalsEvery int `yaml:"crystals_every"`
	BossCrystals  int `yaml:"boss_crystals"`
}

// TowerDrop maps a floor band to the rarity of the boss item. UpToFloor 0
// means no upper bound.
type TowerDrop struct {
	UpToFloor int           `yaml:"up_to_floor"`
	Rarity    domain.Rarity `yaml:"rarity"`
}

// IsTowerBoss reports whether floor is a boss floor.
func (c *Catalog) IsTowerBoss(floor int) bool {
	every := c.Rules.Tower.BossEvery
	return every > 0 && floor > 0 && floor%every == 0
}

// TowerMonster returns the enemy guarding floor. The result is fully
// determined by the floor number.
func (c *Catalog) TowerMonster(floor int) (Monster, bool) {
	t := c.Tower
	boss := c.IsTowerBoss(floor)

	scale := func(base int, perFloor float64) int {
		return int(float64(base) * (1 + float64(floor)*perFloor))
	}
	m := Monster{
		HP:      scale(t.Base.HP, t.HPPerFloor),
		Attack:  scale(t.Base.Attack, t.AttackPerFloor),
		Defense: scale(t.Base.Defense, t.DefensePerFloor),
	}

	crit := c.Rules.Hunt.MonsterCrit
	names := t.MonsterNames
	if boss {
		m.HP = int(float64(m.HP) * t.BossHPMultiplier)
		m.Attack = int(float64(m.Attack) * t.BossAttackMultiplier)
		crit = c.Rules.Hunt.BossCrit
		names = t.BossNames
	}
	m.Crit = &crit

	if len(names) > 0 {
		idx := floor - 1
		if boss && c.Rules.Tower.BossEvery > 0 {
			idx = floor/c.Rules.Tower.BossEvery - 1
		}
		if idx < 0 {
			idx = 0
		}
		m.Name = names[idx%len(names)]
	}
	return m, boss
}

// TowerReward returns the resources for clearing floor and, on boss floors,
// the rarity of the item awarded.
func (c *Catalog) TowerReward(floor int) (domain.Rewards, *domain.Rarity) {
	r := c.Tower.Rewards
	out := domain.Rewards{
		Gold: r.BaseGold + floor*r.GoldPerFloor,
		XP:   r.BaseXP + floor*r.XPPerFloor,
	}
	if r.CrystalsEvery > 0 {
		out.Crystals = 1 + floor/r.CrystalsEvery
	}
	if !c.IsTowerBoss(floor) {
		return out, nil
	}
	out.Crystals += r.BossCrystals

	for _, d := range c.Tower.BossDrops {
		if d.UpToFloor == 0 || floor <= d.UpToFloor {
			rarity := d.Rarity
			return out, &rarity
		}
	}
	return out, nil
}
