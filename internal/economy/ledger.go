package economy

import (
	"fmt"
	"time"

	"github.com/osse101/TextRealm_Go/internal/domain"
)

// Ledger mutates player balances in memory. It never persists anything;
// callers commit the player record inside the transaction that loaded it.
type Ledger struct {
	regenPeriod time.Duration
}

// NewLedger creates a ledger that regenerates one energy point per regenPeriod.
func NewLedger(regenPeriod time.Duration) *Ledger {
	return &Ledger{regenPeriod: regenPeriod}
}

// XPForLevel returns the experience needed to advance past level.
func XPForLevel(level int) int {
	return XPBase + (level-1)*XPPerLevel
}

// Credit adds amount of resource to the player. Energy is capped at the
// player's maximum.
func (l *Ledger) Credit(p *domain.Player, res domain.Resource, amount int, now time.Time) error {
	if amount < 0 {
		return fmt.Errorf("%w: credit %d %s", domain.ErrNegativeAmount, amount, res)
	}

	switch res {
	case domain.ResourceGold:
		p.Gold += amount
	case domain.ResourceCrystals:
		p.Crystals += amount
	case domain.ResourceEnergy:
		l.GrantEnergy(p, amount, now)
	default:
		return fmt.Errorf("%w: unknown resource %q", domain.ErrInvalidInput, res)
	}
	return nil
}

// Debit removes amount of resource from the player. It leaves the player
// untouched and returns an insufficient-resource error when the balance is
// too low.
func (l *Ledger) Debit(p *domain.Player, res domain.Resource, amount int, now time.Time) error {
	if amount < 0 {
		return fmt.Errorf("%w: debit %d %s", domain.ErrNegativeAmount, amount, res)
	}

	switch res {
	case domain.ResourceGold:
		if p.Gold < amount {
			return fmt.Errorf("%w: have %d, need %d", domain.ErrNotEnoughGold, p.Gold, amount)
		}
		p.Gold -= amount
	case domain.ResourceCrystals:
		if p.Crystals < amount {
			return fmt.Errorf("%w: have %d, need %d", domain.ErrNotEnoughCrystals, p.Crystals, amount)
		}
		p.Crystals -= amount
	case domain.ResourceEnergy:
		return l.SpendEnergy(p, amount, now)
	default:
		return fmt.Errorf("%w: unknown resource %q", domain.ErrInvalidInput, res)
	}
	return nil
}

// Balance returns the player's current amount of res as of now.
func (l *Ledger) Balance(p *domain.Player, res domain.Resource, now time.Time) int {
	switch res {
	case domain.ResourceGold:
		return p.Gold
	case domain.ResourceCrystals:
		return p.Crystals
	case domain.ResourceEnergy:
		return l.CurrentEnergy(p, now)
	}
	return 0
}

// CurrentEnergy returns stored energy plus whole regeneration periods elapsed
// since the last write, capped at the maximum. It does not modify p.
func (l *Ledger) CurrentEnergy(p *domain.Player, now time.Time) int {
	if p.Energy >= p.MaxEnergy {
		return p.MaxEnergy
	}
	if l.regenPeriod <= 0 || p.EnergyUpdatedAt.IsZero() {
		return p.Energy
	}

	elapsed := now.Sub(p.EnergyUpdatedAt)
	if elapsed <= 0 {
		return p.Energy
	}
	return min(p.MaxEnergy, p.Energy+int(elapsed/l.regenPeriod))
}

// SpendEnergy deducts amount from the current energy, storing the new value
// and resetting the regeneration timestamp to now.
func (l *Ledger) SpendEnergy(p *domain.Player, amount int, now time.Time) error {
	if amount < 0 {
		return fmt.Errorf("%w: spend %d energy", domain.ErrNegativeAmount, amount)
	}
	current := l.CurrentEnergy(p, now)
	if current < amount {
		return fmt.Errorf("%w: have %d, need %d", domain.ErrNotEnoughEnergy, current, amount)
	}
	p.Energy = current - amount
	p.EnergyUpdatedAt = now
	return nil
}

// GrantEnergy adds amount to the current energy, capped at the maximum.
func (l *Ledger) GrantEnergy(p *domain.Player, amount int, now time.Time) {
	p.Energy = min(p.MaxEnergy, l.CurrentEnergy(p, now)+amount)
	p.EnergyUpdatedAt = now
}

// ApplyXP adds experience and levels the player up as many times as the
// total allows. It returns every level reached, in order. Level-up stipends
// are the caller's concern.
func ApplyXP(p *domain.Player, amount int) ([]int, error) {
	if amount < 0 {
		return nil, fmt.Errorf("%w: xp %d", domain.ErrNegativeAmount, amount)
	}

	p.XP += amount
	var levels []int
	for p.XP >= XPForLevel(p.Level) {
		p.XP -= XPForLevel(p.Level)
		p.Level++
		levels = append(levels, p.Level)
	}
	return levels, nil
}

// CheckInvariants verifies the balance invariants of a player record before
// it is committed.
func CheckInvariants(p *domain.Player) error {
	switch {
	case p.Gold < 0:
		return fmt.Errorf("%w: gold %d", domain.ErrNegativeBalance, p.Gold)
	case p.Crystals < 0:
		return fmt.Errorf("%w: crystals %d", domain.ErrNegativeBalance, p.Crystals)
	case p.ArenaRating < 0:
		return fmt.Errorf("%w: arena rating %d", domain.ErrNegativeBalance, p.ArenaRating)
	case p.Energy < 0 || p.Energy > p.MaxEnergy:
		return fmt.Errorf("%w: %d of %d", domain.ErrEnergyOutOfRange, p.Energy, p.MaxEnergy)
	case p.Level < 1 || p.XP < 0 || p.XP >= XPForLevel(p.Level):
		return fmt.Errorf("%w: level %d xp %d", domain.ErrXPOutOfRange, p.Level, p.XP)
	}
	return nil
}
