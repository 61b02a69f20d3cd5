package gate

import (
	"fmt"
	"time"

	"github.com/osse101/TextRealm_Go/internal/catalog"
	"github.com/osse101/TextRealm_Go/internal/domain"
)

// Gates authorizes time-limited actions against a player record. Counters
// are reset lazily on the first access of a new game day; nothing ticks in
// the background.
type Gates struct {
	cal   Calendar
	rules catalog.Rules
}

// New creates the gate set for the given calendar and rules.
func New(cal Calendar, rules catalog.Rules) *Gates {
	return &Gates{cal: cal, rules: rules}
}

// Calendar returns the calendar the gates observe.
func (g *Gates) Calendar() Calendar {
	return g.cal
}

// dailyCounter is a quota that refills at the start of each game day.
type dailyCounter struct {
	count *int
	reset *time.Time
	quota int
	err   error
}

func (g *Gates) arena(p *domain.Player) dailyCounter {
	return dailyCounter{
		count: &p.ArenaFightsToday,
		reset: &p.ArenaResetDate,
		quota: g.rules.Arena.FightsPerDay,
		err:   domain.ErrArenaExhausted,
	}
}

func (g *Gates) tower(p *domain.Player) dailyCounter {
	return dailyCounter{
		count: &p.TowerAttemptsToday,
		reset: &p.TowerResetDate,
		quota: g.rules.Tower.AttemptsPerDay,
		err:   domain.ErrTowerExhausted,
	}
}

// used returns the count for today without mutating the record.
func (g *Gates) used(c dailyCounter, now time.Time) int {
	if !g.cal.IsToday(*c.reset, now) {
		return 0
	}
	return *c.count
}

func (g *Gates) remaining(c dailyCounter, now time.Time) int {
	return max(0, c.quota-g.used(c, now))
}

func (g *Gates) consume(c dailyCounter, now time.Time) error {
	if !g.cal.IsToday(*c.reset, now) {
		*c.count = 0
		*c.reset = g.cal.Today(now)
	}
	if *c.count >= c.quota {
		return fmt.Errorf("%w: %d/%d used", c.err, *c.count, c.quota)
	}
	*c.count++
	return nil
}

// ArenaFightsLeft returns the arena fights still available today.
func (g *Gates) ArenaFightsLeft(p *domain.Player, now time.Time) int {
	return g.remaining(g.arena(p), now)
}

// ConsumeArenaFight uses one arena fight, refilling the quota on a new day.
func (g *Gates) ConsumeArenaFight(p *domain.Player, now time.Time) error {
	return g.consume(g.arena(p), now)
}

// TowerAttemptsLeft returns the tower attempts still available today.
func (g *Gates) TowerAttemptsLeft(p *domain.Player, now time.Time) int {
	return g.remaining(g.tower(p), now)
}

// ConsumeTowerAttempt uses one tower attempt, refilling the quota on a new day.
func (g *Gates) ConsumeTowerAttempt(p *domain.Player, now time.Time) error {
	return g.consume(g.tower(p), now)
}

// CanSpinWheel reports whether the wheel has not been spun today.
func (g *Gates) CanSpinWheel(p *domain.Player, now time.Time) bool {
	return !g.cal.IsToday(p.LastWheelDate, now)
}

// UseWheel marks today's spin.
func (g *Gates) UseWheel(p *domain.Player, now time.Time) error {
	if !g.CanSpinWheel(p, now) {
		return domain.ErrWheelUsed
	}
	p.LastWheelDate = g.cal.Today(now)
	return nil
}

// CanClaimDaily reports whether today's login reward is still unclaimed.
func (g *Gates) CanClaimDaily(p *domain.Player, now time.Time) bool {
	return !g.cal.IsToday(p.LastLoginDate, now)
}

// ClaimDaily records today's login and returns the new streak. A claim on the
// day after the previous one extends the streak; any longer gap restarts it.
func (g *Gates) ClaimDaily(p *domain.Player, now time.Time) (int, error) {
	if !g.CanClaimDaily(p, now) {
		return p.LoginStreak, domain.ErrDailyClaimed
	}
	if g.cal.IsYesterday(p.LastLoginDate, now) {
		p.LoginStreak++
	} else {
		p.LoginStreak = 1
	}
	p.LastLoginDate = g.cal.Today(now)
	return p.LoginStreak, nil
}

// DailyReward returns the login reward for streak.
func (g *Gates) DailyReward(streak int) domain.Rewards {
	d := g.rules.Daily
	r := domain.Rewards{
		Gold:     d.BaseGold + streak*d.GoldPerStreak,
		Crystals: d.BaseCrystals,
		Energy:   d.Energy,
	}
	if streak >= d.BonusStreak {
		r.Crystals += d.BonusCrystals
	}
	return r
}

// ExpeditionDone reports whether e has run its full duration at now.
func ExpeditionDone(e domain.Expedition, now time.Time) bool {
	return !now.Before(e.EndsAt())
}

// ExpeditionRemaining returns the time left on e, or zero when done.
func ExpeditionRemaining(e domain.Expedition, now time.Time) time.Duration {
	if ExpeditionDone(e, now) {
		return 0
	}
	return e.EndsAt().Sub(now)
}

// ExpeditionStatus describes the active expedition, which may be nil.
func ExpeditionStatus(e *domain.Expedition, now time.Time) domain.ExpeditionStatus {
	if e == nil {
		return domain.ExpeditionStatus{}
	}
	return domain.ExpeditionStatus{
		Expedition: e,
		Done:       ExpeditionDone(*e, now),
		Remaining:  ExpeditionRemaining(*e, now),
	}
}
