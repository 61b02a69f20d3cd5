package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TextRealm_Go/internal/catalog"
	"github.com/osse101/TextRealm_Go/internal/clock"
	"github.com/osse101/TextRealm_Go/internal/database/memory"
	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/random"
)

func seedLadder(t *testing.T, env *testEnv) {
	t.Helper()
	for _, id := range []string{"ann", "bob", "cid"} {
		env.createPlayer(t, id, domain.ClassWarrior)
	}
	env.mutatePlayer(t, "ann", func(p *domain.Player) { p.Level, p.ArenaRating, p.TowerFloor = 5, 1000, 12 })
	env.mutatePlayer(t, "bob", func(p *domain.Player) { p.Level, p.ArenaRating, p.TowerFloor = 9, 1200, 3 })
	env.mutatePlayer(t, "cid", func(p *domain.Player) { p.Level, p.ArenaRating, p.TowerFloor = 5, 900, 7 })
	env.mutatePlayer(t, "cid", func(p *domain.Player) { p.XP = 40 })
}

func TestGetLeaderboard(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	seedLadder(t, env)

	tests := []struct {
		by   domain.LeaderboardKind
		want []string
	}{
		{domain.LeaderboardLevel, []string{"bob", "cid", "ann"}},
		{domain.LeaderboardArena, []string{"bob", "ann", "cid"}},
		{domain.LeaderboardTower, []string{"ann", "cid", "bob"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.by), func(t *testing.T) {
			entries, err := env.svc.GetLeaderboard(ctx, tt.by, 10)
			require.NoError(t, err)
			require.Len(t, entries, len(tt.want))
			for i, e := range entries {
				assert.Equal(t, tt.want[i], e.PlayerID)
				assert.Equal(t, i+1, e.Rank)
			}
		})
	}

	_, err := env.svc.GetLeaderboard(ctx, domain.LeaderboardKind("gold"), 10)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetLeaderboard_CachedUntilExpiry(t *testing.T) {
	store := memory.NewStore()
	svc := NewService(store, catalog.MustDefault(), &clock.Mock{T: testStart}, random.Seeded(1), Options{
		LeaderboardTTL: 50 * time.Millisecond,
	}).(*service)
	env := &testEnv{svc: svc, store: store, clock: &clock.Mock{T: testStart}}
	ctx := context.Background()
	seedLadder(t, env)

	first, err := svc.GetLeaderboard(ctx, domain.LeaderboardArena, 2)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, "bob", first[0].PlayerID)

	env.mutatePlayer(t, "cid", func(p *domain.Player) { p.ArenaRating = 5000 })

	cached, err := svc.GetLeaderboard(ctx, domain.LeaderboardArena, 2)
	require.NoError(t, err)
	assert.Equal(t, first, cached)

	require.Eventually(t, func() bool {
		fresh, err := svc.GetLeaderboard(ctx, domain.LeaderboardArena, 2)
		return err == nil && len(fresh) > 0 && fresh[0].PlayerID == "cid"
	}, 2*time.Second, 20*time.Millisecond)
}

func TestGetPlayerRank(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	seedLadder(t, env)

	rank, err := env.svc.GetPlayerRank(ctx, "cid", domain.LeaderboardLevel)
	require.NoError(t, err)
	assert.Equal(t, 2, rank)

	rank, err = env.svc.GetPlayerRank(ctx, "bob", domain.LeaderboardTower)
	require.NoError(t, err)
	assert.Equal(t, 3, rank)

	_, err = env.svc.GetPlayerRank(ctx, "ghost", domain.LeaderboardArena)
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)

	_, err = env.svc.GetPlayerRank(ctx, "ann", domain.LeaderboardKind(""))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
