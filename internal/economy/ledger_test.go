package economy

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/random"
)

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newPlayer() *domain.Player {
	return &domain.Player{
		ID:              "p1",
		Level:           1,
		Gold:            100,
		Crystals:        10,
		Energy:          50,
		MaxEnergy:       100,
		EnergyUpdatedAt: t0,
	}
}

func TestXPForLevel(t *testing.T) {
	assert.Equal(t, 100, XPForLevel(1))
	assert.Equal(t, 150, XPForLevel(2))
	assert.Equal(t, 550, XPForLevel(10))
}

func TestDebit(t *testing.T) {
	l := NewLedger(3 * time.Minute)

	tests := []struct {
		name     string
		res      domain.Resource
		amount   int
		wantErr  error
		wantGold int
		wantCrys int
	}{
		{"gold exact", domain.ResourceGold, 100, nil, 0, 10},
		{"gold short", domain.ResourceGold, 101, domain.ErrNotEnoughGold, 100, 10},
		{"crystals", domain.ResourceCrystals, 4, nil, 100, 6},
		{"crystals short", domain.ResourceCrystals, 11, domain.ErrNotEnoughCrystals, 100, 10},
		{"zero", domain.ResourceGold, 0, nil, 100, 10},
		{"negative", domain.ResourceGold, -5, domain.ErrInvariantViolation, 100, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPlayer()
			err := l.Debit(p, tt.res, tt.amount, t0)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantGold, p.Gold)
			assert.Equal(t, tt.wantCrys, p.Crystals)
		})
	}
}

func TestDebit_InsufficientIsRejection(t *testing.T) {
	l := NewLedger(3 * time.Minute)
	p := newPlayer()

	err := l.Debit(p, domain.ResourceGold, 1000, t0)
	assert.True(t, errors.Is(err, domain.ErrInsufficientResource))
	assert.True(t, domain.IsRejection(err))
}

func TestCredit(t *testing.T) {
	l := NewLedger(3 * time.Minute)
	p := newPlayer()

	require.NoError(t, l.Credit(p, domain.ResourceGold, 30, t0))
	require.NoError(t, l.Credit(p, domain.ResourceCrystals, 5, t0))
	require.NoError(t, l.Credit(p, domain.ResourceEnergy, 500, t0))

	assert.Equal(t, 130, p.Gold)
	assert.Equal(t, 15, p.Crystals)
	assert.Equal(t, 100, p.Energy, "energy is capped at max")

	err := l.Credit(p, domain.ResourceGold, -1, t0)
	assert.True(t, errors.Is(err, domain.ErrNegativeAmount))

	err = l.Credit(p, domain.Resource("gems"), 1, t0)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestCurrentEnergy(t *testing.T) {
	l := NewLedger(3 * time.Minute)

	tests := []struct {
		name    string
		stored  int
		elapsed time.Duration
		want    int
	}{
		{"no time", 50, 0, 50},
		{"partial period", 50, 2*time.Minute + 59*time.Second, 50},
		{"one period", 50, 3 * time.Minute, 51},
		{"ten periods", 50, 31 * time.Minute, 60},
		{"capped", 50, 24 * time.Hour, 100},
		{"already full", 100, time.Hour, 100},
		{"clock went backwards", 50, -time.Hour, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPlayer()
			p.Energy = tt.stored
			assert.Equal(t, tt.want, l.CurrentEnergy(p, t0.Add(tt.elapsed)))
		})
	}
}

func TestCurrentEnergy_IsIdempotent(t *testing.T) {
	l := NewLedger(3 * time.Minute)
	p := newPlayer()
	before := *p
	now := t0.Add(17 * time.Minute)

	first := l.CurrentEnergy(p, now)
	second := l.CurrentEnergy(p, now)

	assert.Equal(t, first, second)
	assert.Equal(t, before, *p, "reading energy must not mutate the player")
}

func TestSpendEnergy_KeepsAccruedRegen(t *testing.T) {
	l := NewLedger(3 * time.Minute)
	p := newPlayer()
	p.Energy = 5
	now := t0.Add(30 * time.Minute) // +10

	require.NoError(t, l.SpendEnergy(p, 10, now))
	assert.Equal(t, 5, p.Energy)
	assert.Equal(t, now, p.EnergyUpdatedAt)

	err := l.SpendEnergy(p, 10, now)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotEnoughEnergy))
	assert.Equal(t, 5, p.Energy)
}

func TestEnergyStaysInBounds(t *testing.T) {
	l := NewLedger(3 * time.Minute)
	rnd := random.New(7)
	p := newPlayer()
	now := t0

	for i := 0; i < 500; i++ {
		now = now.Add(time.Duration(rnd.IntN(10)) * time.Minute)
		amount := rnd.IntN(40)
		if rnd.IntN(2) == 0 {
			_ = l.SpendEnergy(p, amount, now)
		} else {
			l.GrantEnergy(p, amount, now)
		}
		current := l.CurrentEnergy(p, now)
		require.GreaterOrEqual(t, current, 0)
		require.LessOrEqual(t, current, p.MaxEnergy)
		require.NoError(t, CheckInvariants(p))
	}
}

func TestApplyXP(t *testing.T) {
	p := newPlayer()

	levels, err := ApplyXP(p, 150)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, levels)
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 50, p.XP)

	levels, err = ApplyXP(p, 200)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, levels)
	assert.Equal(t, 3, p.Level)
	assert.Equal(t, 100, p.XP)

	levels, err = ApplyXP(p, 1000)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5, 6}, levels)
	assert.Equal(t, 6, p.Level)
	assert.Equal(t, 100+1000-200-250-300, p.XP)
}

func TestApplyXP_NoLevel(t *testing.T) {
	p := newPlayer()

	levels, err := ApplyXP(p, 99)
	require.NoError(t, err)
	assert.Empty(t, levels)
	assert.Equal(t, 1, p.Level)

	_, err = ApplyXP(p, -1)
	assert.True(t, errors.Is(err, domain.ErrInvariantViolation))
}

func TestApplyXP_SplitEqualsWhole(t *testing.T) {
	rnd := random.New(42)

	for i := 0; i < 200; i++ {
		a, b := rnd.IntN(2000), rnd.IntN(2000)

		split := newPlayer()
		first, _ := ApplyXP(split, a)
		second, _ := ApplyXP(split, b)

		whole := newPlayer()
		all, _ := ApplyXP(whole, a+b)

		require.Equal(t, whole.Level, split.Level, "a=%d b=%d", a, b)
		require.Equal(t, whole.XP, split.XP, "a=%d b=%d", a, b)
		require.Equal(t, all, append(first, second...), "a=%d b=%d", a, b)
	}
}

func TestCheckInvariants(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *domain.Player)
		wantErr error
	}{
		{"valid", func(p *domain.Player) {}, nil},
		{"negative gold", func(p *domain.Player) { p.Gold = -1 }, domain.ErrNegativeBalance},
		{"negative crystals", func(p *domain.Player) { p.Crystals = -1 }, domain.ErrNegativeBalance},
		{"energy over max", func(p *domain.Player) { p.Energy = 101 }, domain.ErrEnergyOutOfRange},
		{"xp at threshold", func(p *domain.Player) { p.XP = 100 }, domain.ErrXPOutOfRange},
		{"level zero", func(p *domain.Player) { p.Level = 0 }, domain.ErrXPOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPlayer()
			tt.mutate(p)
			err := CheckInvariants(p)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr))
			assert.True(t, errors.Is(err, domain.ErrInvariantViolation))
		})
	}
}
