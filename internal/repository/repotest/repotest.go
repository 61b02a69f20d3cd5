// Package repotest holds the behavioral tests every repository.Store
// backend must pass.
package repotest

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/repository"
)

// Factory returns a fresh, empty store. The factory owns cleanup.
type Factory func(t *testing.T) repository.Store

var baseTime = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

// Run executes the full contract against stores produced by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Run("Players", func(t *testing.T) { testPlayers(t, newStore(t)) })
	t.Run("Transactions", func(t *testing.T) { testTransactions(t, newStore(t)) })
	t.Run("Inventory", func(t *testing.T) { testInventory(t, newStore(t)) })
	t.Run("Auction", func(t *testing.T) { testAuction(t, newStore(t)) })
	t.Run("ConcurrentTake", func(t *testing.T) { testConcurrentTake(t, newStore(t)) })
	t.Run("Expeditions", func(t *testing.T) { testExpeditions(t, newStore(t)) })
	t.Run("Quests", func(t *testing.T) { testQuests(t, newStore(t)) })
	t.Run("Leaderboard", func(t *testing.T) { testLeaderboard(t, newStore(t)) })
}

// NewPlayer returns a fresh level-1 player with deterministic timestamps.
func NewPlayer(id string) *domain.Player {
	return &domain.Player{
		ID:              id,
		Name:            "hero-" + id,
		Class:           domain.ClassWarrior,
		Level:           1,
		Gold:            100,
		Crystals:        10,
		Energy:          100,
		MaxEnergy:       100,
		EnergyUpdatedAt: baseTime,
		ArenaRating:     1000,
		CreatedAt:       baseTime,
	}
}

// inTx runs fn in a transaction and commits it.
func inTx(t *testing.T, store repository.Store, fn func(tx repository.Tx) error) error {
	t.Helper()
	ctx := context.Background()
	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func mustTx(t *testing.T, store repository.Store, fn func(tx repository.Tx) error) {
	t.Helper()
	require.NoError(t, inTx(t, store, fn))
}

func seedPlayers(t *testing.T, store repository.Store, players ...*domain.Player) {
	t.Helper()
	mustTx(t, store, func(tx repository.Tx) error {
		for _, p := range players {
			if err := tx.CreatePlayer(context.Background(), p); err != nil {
				return err
			}
		}
		return nil
	})
}

func testPlayers(t *testing.T, store repository.Store) {
	ctx := context.Background()
	p := NewPlayer("p1")
	seedPlayers(t, store, p)

	t.Run("get round trips every field", func(t *testing.T) {
		got, err := store.GetPlayer(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, *p, *got)
	})

	t.Run("duplicate id is rejected", func(t *testing.T) {
		err := inTx(t, store, func(tx repository.Tx) error {
			return tx.CreatePlayer(ctx, NewPlayer("p1"))
		})
		assert.ErrorIs(t, err, domain.ErrPlayerExists)
	})

	t.Run("missing player", func(t *testing.T) {
		_, err := store.GetPlayer(ctx, "nobody")
		assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
	})

	t.Run("update persists dates and counters", func(t *testing.T) {
		day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
		mustTx(t, store, func(tx repository.Tx) error {
			locked, err := tx.GetPlayerForUpdate(ctx, "p1")
			if err != nil {
				return err
			}
			locked.Level = 3
			locked.XP = 42
			locked.ArenaFightsToday = 2
			locked.ArenaResetDate = day
			locked.LastLoginDate = day
			locked.LoginStreak = 4
			locked.TotalHunts = 7
			return tx.UpdatePlayer(ctx, locked)
		})

		got, err := store.GetPlayer(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, 3, got.Level)
		assert.Equal(t, 42, got.XP)
		assert.Equal(t, 2, got.ArenaFightsToday)
		assert.True(t, got.ArenaResetDate.Equal(day))
		assert.True(t, got.LastLoginDate.Equal(day))
		assert.True(t, got.LastWheelDate.IsZero())
		assert.Equal(t, 4, got.LoginStreak)
		assert.Equal(t, 7, got.TotalHunts)
	})

	t.Run("update of missing player", func(t *testing.T) {
		err := inTx(t, store, func(tx repository.Tx) error {
			return tx.UpdatePlayer(ctx, NewPlayer("ghost"))
		})
		assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
	})

	t.Run("add gold", func(t *testing.T) {
		mustTx(t, store, func(tx repository.Tx) error {
			return tx.AddGold(ctx, "p1", 25)
		})
		got, err := store.GetPlayer(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, 125, got.Gold)

		err = inTx(t, store, func(tx repository.Tx) error {
			return tx.AddGold(ctx, "ghost", 1)
		})
		assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
	})

	t.Run("find opponents", func(t *testing.T) {
		low, mid, high := NewPlayer("low"), NewPlayer("mid"), NewPlayer("high")
		low.Level, mid.Level, high.Level = 1, 5, 20
		seedPlayers(t, store, low, mid, high)

		var found, page []domain.Player
		var n int
		mustTx(t, store, func(tx repository.Tx) error {
			var err error
			if n, err = tx.CountOpponents(ctx, "mid", 1, 6); err != nil {
				return err
			}
			if found, err = tx.FindOpponents(ctx, "mid", 1, 6, 10, 0); err != nil {
				return err
			}
			page, err = tx.FindOpponents(ctx, "mid", 1, 6, 1, 1)
			return err
		})
		ids := make([]string, 0, len(found))
		for _, f := range found {
			ids = append(ids, f.ID)
		}
		assert.Equal(t, 2, n)
		assert.Equal(t, []string{"low", "p1"}, ids, "ordered by id")
		require.Len(t, page, 1)
		assert.Equal(t, "p1", page[0].ID)
	})

	t.Run("opponent offset past the end", func(t *testing.T) {
		var found []domain.Player
		mustTx(t, store, func(tx repository.Tx) error {
			var err error
			found, err = tx.FindOpponents(ctx, "mid", 1, 6, 1, 50)
			return err
		})
		assert.Empty(t, found)
	})
}

func testTransactions(t *testing.T, store repository.Store) {
	ctx := context.Background()

	t.Run("rollback discards writes", func(t *testing.T) {
		tx, err := store.BeginTx(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.CreatePlayer(ctx, NewPlayer("temp")))
		require.NoError(t, tx.Rollback(ctx))

		_, err = store.GetPlayer(ctx, "temp")
		assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
	})

	t.Run("closed transaction", func(t *testing.T) {
		tx, err := store.BeginTx(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.Commit(ctx))

		assert.ErrorIs(t, tx.Rollback(ctx), repository.ErrTxClosed)
		assert.ErrorIs(t, tx.Commit(ctx), repository.ErrTxClosed)
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, store.Ping(ctx))
	})
}

func newItem(owner, name string, typ domain.ItemType, offset time.Duration) *domain.InventoryItem {
	return &domain.InventoryItem{
		PlayerID:  owner,
		Name:      name,
		Type:      typ,
		Rarity:    domain.RarityRare,
		Bonuses:   domain.Bonuses{Attack: 5, Crit: 0.02},
		CreatedAt: baseTime.Add(offset),
	}
}

func testInventory(t *testing.T, store repository.Store) {
	ctx := context.Background()
	seedPlayers(t, store, NewPlayer("owner"))

	sword := newItem("owner", "Sword", domain.ItemTypeWeapon, 0)
	axe := newItem("owner", "Axe", domain.ItemTypeWeapon, time.Second)
	helm := newItem("owner", "Helm", domain.ItemTypeArmor, 2*time.Second)
	mustTx(t, store, func(tx repository.Tx) error {
		for _, it := range []*domain.InventoryItem{sword, axe, helm} {
			if err := tx.AddItem(ctx, it); err != nil {
				return err
			}
		}
		return nil
	})
	require.NotZero(t, sword.ID)
	require.NotEqual(t, sword.ID, axe.ID)

	t.Run("list in acquisition order", func(t *testing.T) {
		items, err := store.ListInventory(ctx, "owner")
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, *sword, items[0])
		assert.Equal(t, "Axe", items[1].Name)
		assert.Equal(t, "Helm", items[2].Name)
	})

	t.Run("one equipped item per type", func(t *testing.T) {
		mustTx(t, store, func(tx repository.Tx) error {
			return tx.SetEquipped(ctx, sword.ID, true)
		})
		err := inTx(t, store, func(tx repository.Tx) error {
			return tx.SetEquipped(ctx, axe.ID, true)
		})
		assert.ErrorIs(t, err, domain.ErrDoubleEquip)

		mustTx(t, store, func(tx repository.Tx) error {
			if err := tx.SetEquipped(ctx, sword.ID, false); err != nil {
				return err
			}
			if err := tx.SetEquipped(ctx, axe.ID, true); err != nil {
				return err
			}
			return tx.SetEquipped(ctx, helm.ID, true)
		})

		items, err := store.ListInventory(ctx, "owner")
		require.NoError(t, err)
		equipped := map[string]bool{}
		for _, it := range items {
			equipped[it.Name] = it.Equipped
		}
		assert.Equal(t, map[string]bool{"Sword": false, "Axe": true, "Helm": true}, equipped)
	})

	t.Run("equip missing item", func(t *testing.T) {
		err := inTx(t, store, func(tx repository.Tx) error {
			return tx.SetEquipped(ctx, 999999, true)
		})
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})

	t.Run("delete requires every id", func(t *testing.T) {
		err := inTx(t, store, func(tx repository.Tx) error {
			return tx.DeleteItems(ctx, sword.ID, 999999)
		})
		assert.ErrorIs(t, err, domain.ErrItemNotFound)

		items, err := store.ListInventory(ctx, "owner")
		require.NoError(t, err)
		assert.Len(t, items, 3, "failed delete must roll back")

		mustTx(t, store, func(tx repository.Tx) error {
			return tx.DeleteItems(ctx, sword.ID, helm.ID)
		})
		items, err = store.ListInventory(ctx, "owner")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, axe.ID, items[0].ID)
	})

	t.Run("empty inventory", func(t *testing.T) {
		items, err := store.ListInventory(ctx, "nobody")
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func newListing(seller string, price int, offset time.Duration) *domain.Listing {
	return &domain.Listing{
		SellerID:   seller,
		SellerName: "hero-" + seller,
		ItemName:   fmt.Sprintf("Blade %d", price),
		ItemType:   domain.ItemTypeWeapon,
		Rarity:     domain.RarityEpic,
		Bonuses:    domain.Bonuses{Attack: 12, HP: 3},
		Price:      price,
		CreatedAt:  baseTime.Add(offset),
	}
}

func testAuction(t *testing.T, store repository.Store) {
	ctx := context.Background()
	seedPlayers(t, store, NewPlayer("seller"), NewPlayer("other"))

	first := newListing("seller", 100, 0)
	second := newListing("seller", 200, time.Minute)
	third := newListing("other", 300, 2*time.Minute)
	mustTx(t, store, func(tx repository.Tx) error {
		for _, l := range []*domain.Listing{first, second, third} {
			if err := tx.CreateListing(ctx, l); err != nil {
				return err
			}
		}
		return nil
	})
	require.NotZero(t, first.ID)

	t.Run("count per seller", func(t *testing.T) {
		mustTx(t, store, func(tx repository.Tx) error {
			n, err := tx.CountListings(ctx, "seller")
			if err != nil {
				return err
			}
			assert.Equal(t, 2, n)
			return nil
		})
	})

	t.Run("list by seller", func(t *testing.T) {
		mine, err := store.ListListingsBySeller(ctx, "seller")
		require.NoError(t, err)
		require.Len(t, mine, 2)
		assert.Equal(t, *second, mine[0])
		assert.Equal(t, first.ID, mine[1].ID)

		none, err := store.ListListingsBySeller(ctx, "nobody")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("newest first with paging", func(t *testing.T) {
		page, err := store.ListAuction(ctx, 2, 0)
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.Equal(t, *third, page[0])
		assert.Equal(t, second.ID, page[1].ID)

		page, err = store.ListAuction(ctx, 2, 2)
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, first.ID, page[0].ID)

		page, err = store.ListAuction(ctx, 2, 10)
		require.NoError(t, err)
		assert.Empty(t, page)
	})

	t.Run("take checks seller", func(t *testing.T) {
		mustTx(t, store, func(tx repository.Tx) error {
			l, err := tx.TakeListing(ctx, first.ID, "other")
			assert.Nil(t, l)
			return err
		})
		mustTx(t, store, func(tx repository.Tx) error {
			l, err := tx.TakeListing(ctx, first.ID, "seller")
			require.NotNil(t, l)
			assert.Equal(t, *first, *l)
			return err
		})
	})

	t.Run("take any seller once", func(t *testing.T) {
		mustTx(t, store, func(tx repository.Tx) error {
			l, err := tx.TakeListing(ctx, second.ID, "")
			assert.NotNil(t, l)
			return err
		})
		mustTx(t, store, func(tx repository.Tx) error {
			l, err := tx.TakeListing(ctx, second.ID, "")
			assert.Nil(t, l)
			return err
		})
	})
}

func testConcurrentTake(t *testing.T, store repository.Store) {
	ctx := context.Background()
	seedPlayers(t, store, NewPlayer("seller"))
	l := newListing("seller", 50, 0)
	mustTx(t, store, func(tx repository.Tx) error { return tx.CreateListing(ctx, l) })

	const buyers = 8
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tx, err := store.BeginTx(ctx)
			if err != nil {
				return
			}
			defer repository.SafeRollback(ctx, tx)
			taken, err := tx.TakeListing(ctx, l.ID, "")
			if err != nil || taken == nil {
				return
			}
			if tx.Commit(ctx) == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, wins)
}

func testExpeditions(t *testing.T, store repository.Store) {
	ctx := context.Background()
	seedPlayers(t, store, NewPlayer("explorer"))

	rarity := domain.RarityLegendary
	exp := &domain.Expedition{
		PlayerID:  "explorer",
		TypeID:    "ruins",
		StartedAt: baseTime,
		Duration:  90 * time.Minute,
		Reward:    domain.ExpeditionReward{Gold: 300, XP: 120, Crystals: 4, ItemRarity: &rarity},
	}

	t.Run("none active", func(t *testing.T) {
		got, err := store.GetActiveExpedition(ctx, "explorer")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("create and read back", func(t *testing.T) {
		mustTx(t, store, func(tx repository.Tx) error { return tx.CreateExpedition(ctx, exp) })
		require.NotZero(t, exp.ID)

		got, err := store.GetActiveExpedition(ctx, "explorer")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, *exp, *got)
	})

	t.Run("only one active", func(t *testing.T) {
		err := inTx(t, store, func(tx repository.Tx) error {
			return tx.CreateExpedition(ctx, &domain.Expedition{
				PlayerID: "explorer", TypeID: "forest", StartedAt: baseTime, Duration: time.Hour,
			})
		})
		assert.ErrorIs(t, err, domain.ErrExpeditionActive)
	})

	t.Run("collect frees the slot", func(t *testing.T) {
		mustTx(t, store, func(tx repository.Tx) error { return tx.MarkExpeditionCollected(ctx, exp.ID) })

		got, err := store.GetActiveExpedition(ctx, "explorer")
		require.NoError(t, err)
		assert.Nil(t, got)

		err = inTx(t, store, func(tx repository.Tx) error { return tx.MarkExpeditionCollected(ctx, exp.ID) })
		assert.ErrorIs(t, err, domain.ErrNoExpedition)

		next := &domain.Expedition{PlayerID: "explorer", TypeID: "forest", StartedAt: baseTime, Duration: time.Hour}
		mustTx(t, store, func(tx repository.Tx) error { return tx.CreateExpedition(ctx, next) })
		got, err = store.GetActiveExpedition(ctx, "explorer")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Nil(t, got.Reward.ItemRarity)
	})
}

func testQuests(t *testing.T, store repository.Store) {
	ctx := context.Background()
	seedPlayers(t, store, NewPlayer("quester"))
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	quests := []domain.Quest{
		{PlayerID: "quester", Day: day, Type: domain.QuestTypeHunt, Description: "Hunt 3 monsters", Target: 3,
			Reward: domain.Rewards{Gold: 50, XP: 20}},
		{PlayerID: "quester", Day: day, Type: domain.QuestTypeArena, Description: "Win 1 arena fight", Target: 1,
			Reward: domain.Rewards{Crystals: 2}},
	}
	mustTx(t, store, func(tx repository.Tx) error { return tx.CreateQuests(ctx, quests) })
	require.NotZero(t, quests[0].ID)
	require.NotEqual(t, quests[0].ID, quests[1].ID)

	listQuests := func(d time.Time) []domain.Quest {
		var got []domain.Quest
		mustTx(t, store, func(tx repository.Tx) error {
			var err error
			got, err = tx.ListQuests(ctx, "quester", d)
			return err
		})
		return got
	}

	t.Run("list by day", func(t *testing.T) {
		got := listQuests(day)
		require.Len(t, got, 2)
		assert.Equal(t, quests[0], got[0])
		assert.Empty(t, listQuests(day.AddDate(0, 0, 1)))
	})

	t.Run("update progress", func(t *testing.T) {
		q := quests[0]
		q.Progress, q.Completed, q.Claimed = 3, true, true
		mustTx(t, store, func(tx repository.Tx) error { return tx.UpdateQuest(ctx, q) })

		got := listQuests(day)
		require.Len(t, got, 2)
		assert.Equal(t, 3, got[0].Progress)
		assert.True(t, got[0].Completed)
		assert.True(t, got[0].Claimed)

		err := inTx(t, store, func(tx repository.Tx) error {
			return tx.UpdateQuest(ctx, domain.Quest{ID: 999999})
		})
		assert.ErrorIs(t, err, domain.ErrQuestNotFound)
	})
}

func testLeaderboard(t *testing.T, store repository.Store) {
	ctx := context.Background()
	a, b, c := NewPlayer("a"), NewPlayer("b"), NewPlayer("c")
	a.Level, a.XP, a.ArenaRating, a.TowerFloor = 5, 10, 1100, 3
	b.Level, b.XP, b.ArenaRating, b.TowerFloor = 5, 40, 1100, 7
	c.Level, c.XP, c.ArenaRating, c.TowerFloor = 2, 0, 1250, 0
	seedPlayers(t, store, a, b, c)

	tests := []struct {
		by    domain.LeaderboardKind
		order []string
		ranks map[string]int
	}{
		{domain.LeaderboardLevel, []string{"b", "a", "c"}, map[string]int{"a": 2, "b": 1, "c": 3}},
		{domain.LeaderboardArena, []string{"c", "a", "b"}, map[string]int{"a": 2, "b": 2, "c": 1}},
		{domain.LeaderboardTower, []string{"b", "a", "c"}, map[string]int{"a": 2, "b": 1, "c": 3}},
	}
	for _, tt := range tests {
		t.Run(string(tt.by), func(t *testing.T) {
			entries, err := store.Leaderboard(ctx, tt.by, 10)
			require.NoError(t, err)
			require.Len(t, entries, len(tt.order))
			for i, id := range tt.order {
				assert.Equal(t, id, entries[i].PlayerID)
				assert.Equal(t, i+1, entries[i].Rank)
			}

			for id, want := range tt.ranks {
				rank, err := store.PlayerRank(ctx, id, tt.by)
				require.NoError(t, err)
				assert.Equal(t, want, rank, "rank of %s", id)
			}
		})
	}

	t.Run("limit", func(t *testing.T) {
		entries, err := store.Leaderboard(ctx, domain.LeaderboardLevel, 1)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "b", entries[0].PlayerID)
	})

	t.Run("unknown board", func(t *testing.T) {
		_, err := store.Leaderboard(ctx, domain.LeaderboardKind("gold"), 10)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		_, err = store.PlayerRank(ctx, "a", domain.LeaderboardKind("gold"))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rank of missing player", func(t *testing.T) {
		_, err := store.PlayerRank(ctx, "nobody", domain.LeaderboardArena)
		assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
	})
}
