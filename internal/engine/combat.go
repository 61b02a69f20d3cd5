package engine

import (
	"context"
	"fmt"
	"math"

	"github.com/osse101/TextRealm_Go/internal/catalog"
	"github.com/osse101/TextRealm_Go/internal/combat"
	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/event"
	"github.com/osse101/TextRealm_Go/internal/random"
)

func (s *service) PerformHunt(ctx context.Context, id string, zoneID int) (*domain.HuntResult, error) {
	var res *domain.HuntResult
	err := s.run(ctx, ActionHunt, id, func(u *unit) error {
		p := u.player
		rules := s.catalog.Rules

		zone, ok := s.catalog.Zone(zoneID)
		if !ok {
			return fmt.Errorf("%w: %d", domain.ErrZoneNotFound, zoneID)
		}
		if p.Level < zone.MinLevel {
			return fmt.Errorf("%w: zone %d needs level %d", domain.ErrZoneLocked, zoneID, zone.MinLevel)
		}
		if err := s.ledger.SpendEnergy(p, rules.HuntEnergyCost, u.now); err != nil {
			return err
		}

		monster, boss, err := pickMonster(u.rnd, zone)
		if err != nil {
			return err
		}
		items, err := s.loadInventory(u)
		if err != nil {
			return err
		}
		stats, err := s.stats(p, items)
		if err != nil {
			return err
		}

		crit := rules.Hunt.MonsterCrit
		if boss {
			crit = rules.Hunt.BossCrit
		}
		fight := combat.Simulate(u.rnd, stats, monster.StatBlock(crit))
		p.TotalHunts++

		out := &domain.HuntResult{
			Zone:    zone.Name,
			Monster: monster.Name,
			Boss:    boss,
			Combat:  fight,
		}
		u.emit(event.CombatFinished, event.CombatPayloadV1{Mode: ModeHunt, Won: fight.Won, Rounds: fight.Rounds, Boss: boss})

		if fight.Won {
			p.TotalKills++
			out.Rewards = domain.Rewards{Gold: monster.Gold, XP: monster.XP}
			if random.Chance(u.rnd, rules.Hunt.CritLootChance) {
				out.CritLoot = true
				out.Rewards.Gold *= rules.Hunt.CritLootGoldMultiplier
				out.Rewards.XP = int(math.Floor(float64(out.Rewards.XP) * rules.Hunt.CritLootXPMultiplier))
			}
			if out.LevelUps, err = s.grant(u, out.Rewards); err != nil {
				return err
			}
			if drop := s.roller.TryDrop(u.rnd, zone); drop != nil {
				if out.Drop, err = s.addItem(u, *drop); err != nil {
					return err
				}
			}
			if err := s.progressQuests(u, domain.QuestTypeHunt, 1); err != nil {
				return err
			}
		}

		out.Energy = p.Energy
		res = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// pickMonster rolls the zone boss chance first, then a regular monster
// uniformly.
func pickMonster(src random.Source, zone *catalog.Zone) (catalog.Monster, bool, error) {
	if zone.Boss != nil && random.Chance(src, zone.BossChance) {
		return *zone.Boss, true, nil
	}
	if len(zone.Monsters) == 0 {
		if zone.Boss != nil {
			return *zone.Boss, true, nil
		}
		return catalog.Monster{}, false, fmt.Errorf("%w: zone %d has no monsters", domain.ErrZoneNotFound, zone.ID)
	}
	return zone.Monsters[src.IntN(len(zone.Monsters))], false, nil
}

func (s *service) PerformArenaFight(ctx context.Context, id string) (*domain.ArenaResult, error) {
	var res *domain.ArenaResult
	err := s.run(ctx, ActionArena, id, func(u *unit) error {
		p := u.player
		arena := s.catalog.Rules.Arena

		if err := s.gates.ConsumeArenaFight(p, u.now); err != nil {
			return err
		}

		opp, err := s.findOpponent(u)
		if err != nil {
			return err
		}
		oppItems, err := u.tx.ListInventory(u.ctx, opp.ID)
		if err != nil {
			return fmt.Errorf("failed to list opponent inventory: %w", err)
		}
		oppStats, err := s.stats(opp, oppItems)
		if err != nil {
			return err
		}
		items, err := s.loadInventory(u)
		if err != nil {
			return err
		}
		stats, err := s.stats(p, items)
		if err != nil {
			return err
		}

		fight := combat.Simulate(u.rnd, stats, oppStats)
		before := p.ArenaRating
		out := &domain.ArenaResult{
			Opponent: domain.Opponent{
				ID:     opp.ID,
				Name:   opp.Name,
				Class:  opp.Class,
				Level:  opp.Level,
				Rating: opp.ArenaRating,
			},
			Combat: fight,
		}

		if fight.Won {
			p.ArenaWins++
			p.ArenaRating += arena.WinRating
			out.Rewards = domain.Rewards{Gold: arena.WinGold, Crystals: arena.WinCrystals}
			if _, err := s.grant(u, out.Rewards); err != nil {
				return err
			}
			if err := s.progressQuests(u, domain.QuestTypeArena, 1); err != nil {
				return err
			}
		} else {
			p.ArenaLosses++
			p.ArenaRating = max(0, p.ArenaRating-arena.LoseRating)
		}

		out.Rating = p.ArenaRating
		out.RatingChange = p.ArenaRating - before
		out.FightsLeft = s.gates.ArenaFightsLeft(p, u.now)
		u.emit(event.CombatFinished, event.CombatPayloadV1{Mode: ModeArena, Won: fight.Won, Rounds: fight.Rounds})
		res = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// findOpponent picks a player uniformly at random within the level range,
// falling back to any other player.
func (s *service) findOpponent(u *unit) (*domain.Player, error) {
	p := u.player
	spread := s.catalog.Rules.Arena.LevelRange

	minLevel, maxLevel := max(1, p.Level-spread), p.Level+spread
	n, err := u.tx.CountOpponents(u.ctx, p.ID, minLevel, maxLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to count opponents: %w", err)
	}
	if n == 0 {
		minLevel, maxLevel = 1, math.MaxInt32
		if n, err = u.tx.CountOpponents(u.ctx, p.ID, minLevel, maxLevel); err != nil {
			return nil, fmt.Errorf("failed to count opponents: %w", err)
		}
	}
	if n == 0 {
		return nil, domain.ErrNoOpponent
	}

	found, err := u.tx.FindOpponents(u.ctx, p.ID, minLevel, maxLevel, 1, u.rnd.IntN(n))
	if err != nil {
		return nil, fmt.Errorf("failed to find opponents: %w", err)
	}
	if len(found) == 0 {
		return nil, domain.ErrNoOpponent
	}
	return &found[0], nil
}

func (s *service) PerformTowerFloor(ctx context.Context, id string) (*domain.TowerResult, error) {
	var res *domain.TowerResult
	err := s.run(ctx, ActionTower, id, func(u *unit) error {
		p := u.player

		if err := s.gates.ConsumeTowerAttempt(p, u.now); err != nil {
			return err
		}

		floor := p.TowerFloor + 1
		monster, boss := s.catalog.TowerMonster(floor)
		items, err := s.loadInventory(u)
		if err != nil {
			return err
		}
		stats, err := s.stats(p, items)
		if err != nil {
			return err
		}

		crit := s.catalog.Rules.Hunt.MonsterCrit
		if boss {
			crit = s.catalog.Rules.Hunt.BossCrit
		}
		fight := combat.Simulate(u.rnd, stats, monster.StatBlock(crit))
		out := &domain.TowerResult{
			Floor:   floor,
			Boss:    boss,
			Monster: monster.Name,
			Combat:  fight,
		}

		if fight.Won {
			p.TowerFloor = floor
			rewards, rarity := s.catalog.TowerReward(floor)
			out.Rewards = rewards
			if out.LevelUps, err = s.grant(u, rewards); err != nil {
				return err
			}
			if rarity != nil {
				if out.Drop, err = s.addItem(u, s.roller.GenerateItem(u.rnd, *rarity, "")); err != nil {
					return err
				}
			}
			if err := s.progressQuests(u, domain.QuestTypeTower, 1); err != nil {
				return err
			}
		}

		out.AttemptsLeft = s.gates.TowerAttemptsLeft(p, u.now)
		u.emit(event.CombatFinished, event.CombatPayloadV1{Mode: ModeTower, Won: fight.Won, Rounds: fight.Rounds, Boss: boss})
		res = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
