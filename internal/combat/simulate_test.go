package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/random"
)

func TestHit(t *testing.T) {
	tests := []struct {
		name     string
		floats   []float64
		from, to domain.StatBlock
		wantDmg  int
		wantCrit bool
	}{
		{
			name:    "average roll",
			floats:  []float64{0.99, 0.6},
			from:    domain.StatBlock{Attack: 10},
			to:      domain.StatBlock{Defense: 10},
			wantDmg: 7,
		},
		{
			name:     "crit doubles the mitigated value",
			floats:   []float64{0.0, 0.6},
			from:     domain.StatBlock{Attack: 10, Crit: 10},
			to:       domain.StatBlock{Defense: 5},
			wantDmg:  16, // floor(10.4 - 1.5) = 8, doubled
			wantCrit: true,
		},
		{
			name:    "minimum damage",
			floats:  []float64{0.99, 0.0},
			from:    domain.StatBlock{Attack: 1},
			to:      domain.StatBlock{Defense: 100},
			wantDmg: 1,
		},
		{
			name:     "minimum damage crit",
			floats:   []float64{0.0, 0.0},
			from:     domain.StatBlock{Attack: 1, Crit: 100},
			to:       domain.StatBlock{Defense: 100},
			wantDmg:  2,
			wantCrit: true,
		},
		{
			name:    "high roll",
			floats:  []float64{0.99, 0.999},
			from:    domain.StatBlock{Attack: 100},
			wantDmg: 119,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &random.Scripted{Floats: tt.floats}
			dmg, crit := Hit(src, tt.from, tt.to)
			assert.Equal(t, tt.wantDmg, dmg)
			assert.Equal(t, tt.wantCrit, crit)
		})
	}
}

func TestSimulate_WeakDefenderFallsQuickly(t *testing.T) {
	attacker := domain.StatBlock{HP: 100, Attack: 20, Defense: 5}
	defender := domain.StatBlock{HP: 20, Attack: 1}

	for seed := uint64(0); seed < 500; seed++ {
		res := Simulate(random.New(seed), attacker, defender)
		require.True(t, res.Won, "seed %d", seed)
		require.GreaterOrEqual(t, res.Rounds, 1)
		require.LessOrEqual(t, res.Rounds, 2, "seed %d", seed)
		require.Equal(t, 100, res.HPMax)
		require.GreaterOrEqual(t, res.HPLeft, 98)
	}
}

func TestSimulate_KillingBlowEndsFight(t *testing.T) {
	src := &random.Scripted{Floats: []float64{0.99, 0.6}}
	res := Simulate(src, domain.StatBlock{HP: 100, Attack: 20}, domain.StatBlock{HP: 20, Attack: 50})

	assert.True(t, res.Won)
	assert.Equal(t, 1, res.Rounds)
	require.Len(t, res.Log, 1, "defender must not retaliate after dying")
	assert.Equal(t, domain.SideAttacker, res.Log[0].Actor)
	assert.Equal(t, 0, res.Log[0].TargetHP)
	assert.Equal(t, 0, res.DamageReceived)
	assert.Equal(t, 100, res.HPLeft)
}

func TestSimulate_AttackerDies(t *testing.T) {
	src := &random.Scripted{Floats: []float64{0.99, 0.6}}
	res := Simulate(src, domain.StatBlock{HP: 10, Attack: 1}, domain.StatBlock{HP: 100, Attack: 30})

	assert.False(t, res.Won)
	assert.Equal(t, 1, res.Rounds)
	assert.Len(t, res.Log, 2)
	assert.Equal(t, 0, res.HPLeft)
	assert.Equal(t, 31, res.DamageReceived)
}

func TestSimulate_RoundCapIsALoss(t *testing.T) {
	tank := domain.StatBlock{HP: 10000, Attack: 1, Defense: 100}
	res := Simulate(random.New(1), tank, tank)

	assert.False(t, res.Won)
	assert.Equal(t, MaxRounds, res.Rounds)
	assert.Len(t, res.Log, 2*MaxRounds)
	assert.Equal(t, MaxRounds, res.DamageDealt)
	assert.Equal(t, 10000-MaxRounds, res.HPLeft)
}

func TestSimulate_CountsAttackerCritsOnly(t *testing.T) {
	src := &random.Scripted{Floats: []float64{0.0, 0.5}}
	attacker := domain.StatBlock{HP: 1000, Attack: 10, Defense: 100, Crit: 100}
	defender := domain.StatBlock{HP: 1000, Attack: 10, Defense: 100, Crit: 100}

	res := Simulate(src, attacker, defender)

	assert.Equal(t, MaxRounds, res.Crits)
	for _, e := range res.Log {
		assert.True(t, e.Crit)
	}
}

func TestSimulate_Deterministic(t *testing.T) {
	a := domain.StatBlock{HP: 130, Attack: 12, Defense: 8, Crit: 5}
	d := domain.StatBlock{HP: 65, Attack: 12, Defense: 5, Crit: 3}

	first := Simulate(random.New(99), a, d)
	second := Simulate(random.New(99), a, d)
	assert.Equal(t, first, second)
}

func TestSimulate_LogTotalsMatch(t *testing.T) {
	a := domain.StatBlock{HP: 130, Attack: 12, Defense: 8, Crit: 5}
	d := domain.StatBlock{HP: 140, Attack: 16, Defense: 7, Crit: 5}

	for seed := uint64(0); seed < 100; seed++ {
		res := Simulate(random.New(seed), a, d)
		dealt, received := 0, 0
		for _, e := range res.Log {
			if e.Actor == domain.SideAttacker {
				dealt += e.Damage
			} else {
				received += e.Damage
			}
		}
		require.Equal(t, res.DamageDealt, dealt)
		require.Equal(t, res.DamageReceived, received)
		require.Equal(t, max(0, a.HP-received), res.HPLeft)
	}
}

func TestTruncate(t *testing.T) {
	log := make([]domain.CombatLogEntry, 10)
	assert.Len(t, Truncate(log, 4), 4)
	assert.Len(t, Truncate(log, 20), 10)
	assert.Len(t, Truncate(log, -1), 10)
}
