package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/osse101/TextRealm_Go/internal/catalog"
	"github.com/osse101/TextRealm_Go/internal/clock"
	"github.com/osse101/TextRealm_Go/internal/database/memory"
	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/event"
	"github.com/osse101/TextRealm_Go/internal/random"
	"github.com/osse101/TextRealm_Go/internal/repository"
)

var testStart = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	svc   *service
	store repository.Store
	clock *clock.Mock
	bus   *event.MemoryBus
	cat   *catalog.Catalog
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWith(t, memory.NewStore(), random.Seeded(42))
}

func newTestEnvWith(t *testing.T, store repository.Store, rng random.Factory) *testEnv {
	t.Helper()
	cat := catalog.MustDefault()
	clk := &clock.Mock{T: testStart}
	bus := event.NewMemoryBus()
	svc := NewService(store, cat, clk, rng, Options{Bus: bus}).(*service)
	return &testEnv{svc: svc, store: store, clock: clk, bus: bus, cat: cat}
}

func (e *testEnv) createPlayer(t *testing.T, id string, class domain.Class) {
	t.Helper()
	_, err := e.svc.CreatePlayer(context.Background(), id, id, class)
	require.NoError(t, err)
}

// mutatePlayer edits a stored player directly, bypassing game rules.
func (e *testEnv) mutatePlayer(t *testing.T, id string, fn func(p *domain.Player)) {
	t.Helper()
	ctx := context.Background()
	tx, err := e.store.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	p, err := tx.GetPlayerForUpdate(ctx, id)
	require.NoError(t, err)
	fn(p)
	require.NoError(t, tx.UpdatePlayer(ctx, p))
	require.NoError(t, tx.Commit(ctx))
}

// giveItems stores n items of rarity for id, one second apart, and returns
// their ids in creation order.
func (e *testEnv) giveItems(t *testing.T, id string, rarity domain.Rarity, itemType domain.ItemType, n int) []int64 {
	t.Helper()
	ctx := context.Background()
	tx, err := e.store.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	ids := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		item := &domain.InventoryItem{
			PlayerID:  id,
			Name:      string(rarity) + " " + string(itemType),
			Type:      itemType,
			Rarity:    rarity,
			Bonuses:   domain.Bonuses{Attack: 1},
			CreatedAt: testStart.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, tx.AddItem(ctx, item))
		ids = append(ids, item.ID)
	}
	require.NoError(t, tx.Commit(ctx))
	return ids
}

func (e *testEnv) player(t *testing.T, id string) *domain.Player {
	t.Helper()
	p, err := e.store.GetPlayer(context.Background(), id)
	require.NoError(t, err)
	return p
}

func (e *testEnv) items(t *testing.T, id string) []domain.InventoryItem {
	t.Helper()
	items, err := e.store.ListInventory(context.Background(), id)
	require.NoError(t, err)
	return items
}

func itemIDs(items []domain.InventoryItem) []int64 {
	ids := make([]int64, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}
