package gate

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TextRealm_Go/internal/catalog"
	"github.com/osse101/TextRealm_Go/internal/domain"
)

func testGates(t *testing.T, zone string) *Gates {
	t.Helper()
	cal, err := LoadCalendar(zone)
	require.NoError(t, err)
	return New(cal, catalog.MustDefault().Rules)
}

func TestCalendar_Today(t *testing.T) {
	ny, err := LoadCalendar("America/New_York")
	require.NoError(t, err)
	utc := NewCalendar(nil)

	// 02:00 UTC on March 2 is still March 1 in New York
	now := time.Date(2024, 3, 2, 2, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), utc.Today(now))
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), ny.Today(now))

	assert.True(t, utc.IsToday(utc.Today(now), now))
	assert.False(t, utc.IsToday(time.Time{}, now))
	assert.True(t, utc.IsYesterday(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, utc.IsYesterday(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), now))
}

func TestCalendar_NextReset(t *testing.T) {
	cal := NewCalendar(nil)
	now := time.Date(2024, 12, 31, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), cal.NextReset(now))
}

func TestLoadCalendar_Unknown(t *testing.T) {
	_, err := LoadCalendar("Mars/Olympus_Mons")
	assert.Error(t, err)
}

func TestArenaQuota(t *testing.T) {
	g := testGates(t, "")
	p := &domain.Player{}
	day1 := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, 5, g.ArenaFightsLeft(p, day1))
	for i := 0; i < 5; i++ {
		require.NoError(t, g.ConsumeArenaFight(p, day1))
	}
	assert.Equal(t, 0, g.ArenaFightsLeft(p, day1))

	err := g.ConsumeArenaFight(p, day1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrGateExhausted))
	assert.Equal(t, 5, p.ArenaFightsToday)

	// The quota refills on the next calendar day, not 24h later
	day2 := time.Date(2024, 3, 2, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 5, g.ArenaFightsLeft(p, day2))
	require.NoError(t, g.ConsumeArenaFight(p, day2))
	assert.Equal(t, 1, p.ArenaFightsToday)
	assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), p.ArenaResetDate)
}

func TestTowerQuota(t *testing.T) {
	g := testGates(t, "")
	p := &domain.Player{}
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		require.NoError(t, g.ConsumeTowerAttempt(p, now))
	}
	err := g.ConsumeTowerAttempt(p, now)
	assert.True(t, errors.Is(err, domain.ErrTowerExhausted))
	assert.Equal(t, 0, g.TowerAttemptsLeft(p, now))
	assert.Equal(t, 0, p.ArenaFightsToday, "tower and arena are independent")
}

func TestWheel(t *testing.T) {
	g := testGates(t, "")
	p := &domain.Player{}
	now := time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC)

	assert.True(t, g.CanSpinWheel(p, now))
	require.NoError(t, g.UseWheel(p, now))
	assert.False(t, g.CanSpinWheel(p, now))
	assert.True(t, errors.Is(g.UseWheel(p, now), domain.ErrWheelUsed))

	assert.True(t, g.CanSpinWheel(p, now.Add(2*time.Minute)))
}

func TestClaimDaily_Streak(t *testing.T) {
	g := testGates(t, "")
	p := &domain.Player{}
	day := func(d int) time.Time { return time.Date(2024, 3, d, 20, 0, 0, 0, time.UTC) }

	streak, err := g.ClaimDaily(p, day(1))
	require.NoError(t, err)
	assert.Equal(t, 1, streak)

	_, err = g.ClaimDaily(p, day(1))
	assert.True(t, errors.Is(err, domain.ErrDailyClaimed))

	streak, _ = g.ClaimDaily(p, day(2))
	assert.Equal(t, 2, streak)
	streak, _ = g.ClaimDaily(p, day(3))
	assert.Equal(t, 3, streak)

	// Skipping a day restarts the streak
	streak, _ = g.ClaimDaily(p, day(5))
	assert.Equal(t, 1, streak)
}

func TestDailyReward(t *testing.T) {
	g := testGates(t, "")

	assert.Equal(t, domain.Rewards{Gold: 110, Crystals: 5, Energy: 30}, g.DailyReward(1))
	assert.Equal(t, domain.Rewards{Gold: 120, Crystals: 5, Energy: 30}, g.DailyReward(2))
	assert.Equal(t, domain.Rewards{Gold: 130, Crystals: 6, Energy: 30}, g.DailyReward(3))
}

func TestExpeditionStatus(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	e := domain.Expedition{StartedAt: start, Duration: 30 * time.Minute}

	assert.False(t, ExpeditionDone(e, start.Add(29*time.Minute)))
	assert.Equal(t, time.Minute, ExpeditionRemaining(e, start.Add(29*time.Minute)))
	assert.True(t, ExpeditionDone(e, start.Add(30*time.Minute)))
	assert.Equal(t, time.Duration(0), ExpeditionRemaining(e, start.Add(time.Hour)))

	status := ExpeditionStatus(&e, start.Add(10*time.Minute))
	assert.False(t, status.Done)
	assert.Equal(t, 20*time.Minute, status.Remaining)

	assert.Nil(t, ExpeditionStatus(nil, start).Expedition)
}
