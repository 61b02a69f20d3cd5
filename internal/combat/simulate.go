// Package combat resolves fights between two stat blocks.
package combat

import (
	"math"

	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/random"
)

const (
	// MaxRounds ends a fight that neither side can finish. Reaching it is a
	// loss for the attacker.
	MaxRounds = 25

	minRoll         = 0.8
	maxRoll         = 1.2
	defenseFactor   = 0.3
	critMultiplier  = 2
	minimumDamage   = 1
	percentDivision = 100
)

// Simulate runs an alternating-turn fight. The attacker strikes first every
// round; a killing blow ends the fight immediately. The result is seen from
// the attacker's side and carries the full log.
func Simulate(src random.Source, attacker, defender domain.StatBlock) domain.CombatResult {
	res := domain.CombatResult{HPMax: attacker.HP}
	atkHP, defHP := attacker.HP, defender.HP

	for round := 1; round <= MaxRounds; round++ {
		res.Rounds = round

		dmg, crit := Hit(src, attacker, defender)
		defHP -= dmg
		res.DamageDealt += dmg
		if crit {
			res.Crits++
		}
		res.Log = append(res.Log, domain.CombatLogEntry{
			Round: round, Actor: domain.SideAttacker, Damage: dmg, Crit: crit, TargetHP: max(0, defHP),
		})
		if defHP <= 0 {
			res.Won = true
			break
		}

		dmg, crit = Hit(src, defender, attacker)
		atkHP -= dmg
		res.DamageReceived += dmg
		res.Log = append(res.Log, domain.CombatLogEntry{
			Round: round, Actor: domain.SideDefender, Damage: dmg, Crit: crit, TargetHP: max(0, atkHP),
		})
		if atkHP <= 0 {
			break
		}
	}

	res.HPLeft = max(0, atkHP)
	return res
}

// Hit computes one strike. Damage is mitigated by defense and floored before
// a crit doubles it, so a crit always deals an even amount.
func Hit(src random.Source, from, to domain.StatBlock) (int, bool) {
	crit := src.Float64()*percentDivision < from.Crit
	base := float64(from.Attack) * random.Uniform(src, minRoll, maxRoll)
	dmg := int(math.Floor(math.Max(minimumDamage, base-float64(to.Defense)*defenseFactor)))
	if crit {
		dmg *= critMultiplier
	}
	return dmg, crit
}

// Truncate returns at most n entries of the log, for display.
func Truncate(log []domain.CombatLogEntry, n int) []domain.CombatLogEntry {
	if n < 0 || len(log) <= n {
		return log
	}
	return log[:n]
}
