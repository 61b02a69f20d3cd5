package engine

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/testing/leaktest"
)

func TestCreateListing_CapReached(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createPlayer(t, "seller", domain.ClassWarrior)
	ids := env.giveItems(t, "seller", domain.RarityUncommon, domain.ItemTypeWeapon, 4)

	for _, id := range ids[:3] {
		l, err := env.svc.CreateListing(ctx, "seller", id, 240)
		require.NoError(t, err)
		assert.Equal(t, "seller", l.SellerID)
		assert.Equal(t, "Seller", l.SellerName)
		assert.Equal(t, 240, l.Price)
	}

	_, err := env.svc.CreateListing(ctx, "seller", ids[3], 240)
	require.ErrorIs(t, err, domain.ErrListingCapReached)
	assert.ErrorIs(t, err, domain.ErrGateExhausted)

	assert.Equal(t, []int64{ids[3]}, itemIDs(env.items(t, "seller")))
	book, err := env.svc.ListAuction(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, book, 3)
}

func TestListMyListings(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createPlayer(t, "seller", domain.ClassWarrior)
	env.createPlayer(t, "other", domain.ClassMage)
	mine := env.giveItems(t, "seller", domain.RarityCommon, domain.ItemTypeWeapon, 2)
	theirs := env.giveItems(t, "other", domain.RarityCommon, domain.ItemTypeWeapon, 1)

	first, err := env.svc.CreateListing(ctx, "seller", mine[0], 90)
	require.NoError(t, err)
	env.clock.Advance(time.Minute)
	second, err := env.svc.CreateListing(ctx, "seller", mine[1], 95)
	require.NoError(t, err)
	_, err = env.svc.CreateListing(ctx, "other", theirs[0], 50)
	require.NoError(t, err)

	listings, err := env.svc.ListMyListings(ctx, "seller")
	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, second.ID, listings[0].ID)
	assert.Equal(t, first.ID, listings[1].ID)

	_, err = env.svc.CancelListing(ctx, "seller", second.ID)
	require.NoError(t, err)
	listings, err = env.svc.ListMyListings(ctx, "seller")
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, first.ID, listings[0].ID)

	_, err = env.svc.ListMyListings(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestCreateListing_Rejections(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createPlayer(t, "seller", domain.ClassWarrior)
	ids := env.giveItems(t, "seller", domain.RarityRare, domain.ItemTypeArmor, 2)
	_, err := env.svc.EquipItem(ctx, "seller", ids[1])
	require.NoError(t, err)

	tests := []struct {
		name    string
		itemID  int64
		price   int
		wantErr error
	}{
		{"zero price", ids[0], 0, domain.ErrInvalidPrice},
		{"negative price", ids[0], -5, domain.ErrInvalidPrice},
		{"price beyond column", ids[0], domain.MaxListingPrice + 1, domain.ErrInvalidPrice},
		{"equipped item", ids[1], 100, domain.ErrItemEquipped},
		{"unknown item", 9999, 100, domain.ErrItemNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.svc.CreateListing(ctx, "seller", tt.itemID, tt.price)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
	assert.Len(t, env.items(t, "seller"), 2)
}

func TestBuyListing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createPlayer(t, "seller", domain.ClassWarrior)
	env.createPlayer(t, "buyer", domain.ClassMage)
	ids := env.giveItems(t, "seller", domain.RarityEpic, domain.ItemTypeWeapon, 1)

	listing, err := env.svc.CreateListing(ctx, "seller", ids[0], 100)
	require.NoError(t, err)

	res, err := env.svc.BuyListing(ctx, "buyer", listing.ID)
	require.NoError(t, err)

	assert.Equal(t, 90, res.SellerProceeds)
	assert.Equal(t, domain.RarityEpic, res.Item.Rarity)
	assert.Equal(t, "buyer", res.Item.PlayerID)
	assert.Equal(t, 400, env.player(t, "buyer").Gold)
	assert.Equal(t, 590, env.player(t, "seller").Gold)
	assert.Equal(t, []int64{res.Item.ID}, itemIDs(env.items(t, "buyer")))

	book, err := env.svc.ListAuction(ctx, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, book)

	_, err = env.svc.BuyListing(ctx, "buyer", listing.ID)
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestBuyListing_RejectionsKeepListing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createPlayer(t, "seller", domain.ClassWarrior)
	env.createPlayer(t, "poor", domain.ClassMage)
	env.mutatePlayer(t, "poor", func(p *domain.Player) { p.Gold = 10 })
	ids := env.giveItems(t, "seller", domain.RarityEpic, domain.ItemTypeWeapon, 1)

	listing, err := env.svc.CreateListing(ctx, "seller", ids[0], 100)
	require.NoError(t, err)

	_, err = env.svc.BuyListing(ctx, "seller", listing.ID)
	assert.ErrorIs(t, err, domain.ErrOwnListing)

	_, err = env.svc.BuyListing(ctx, "poor", listing.ID)
	assert.ErrorIs(t, err, domain.ErrNotEnoughGold)

	book, err := env.svc.ListAuction(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, book, 1)
	assert.Equal(t, listing.ID, book[0].ID)
	assert.Equal(t, 10, env.player(t, "poor").Gold)
	assert.Equal(t, 500, env.player(t, "seller").Gold)
}

func TestBuyListing_ConcurrentBuyersExactlyOneWins(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		env := newTestEnv(t)
		ctx := context.Background()
		env.createPlayer(t, "seller", domain.ClassWarrior)
		ids := env.giveItems(t, "seller", domain.RarityLegendary, domain.ItemTypeWeapon, 1)
		listing, err := env.svc.CreateListing(ctx, "seller", ids[0], 300)
		require.NoError(t, err)

		const buyers = 8
		for i := 0; i < buyers; i++ {
			env.createPlayer(t, fmt.Sprintf("buyer%d", i), domain.ClassMage)
		}

		var wg sync.WaitGroup
		errs := make([]error, buyers)
		for i := 0; i < buyers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = env.svc.BuyListing(ctx, fmt.Sprintf("buyer%d", i), listing.ID)
			}(i)
		}
		wg.Wait()

		wins, gold := 0, 0
		for i, err := range errs {
			id := fmt.Sprintf("buyer%d", i)
			if err == nil {
				wins++
				assert.Len(t, env.items(t, id), 1)
			} else {
				assert.ErrorIs(t, err, domain.ErrListingNotFound)
				assert.Empty(t, env.items(t, id))
			}
			gold += env.player(t, id).Gold
		}
		assert.Equal(t, 1, wins)
		assert.Equal(t, buyers*500-300, gold)
		assert.Equal(t, 500+270, env.player(t, "seller").Gold)
	})
}

func TestCancelListing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createPlayer(t, "seller", domain.ClassWarrior)
	env.createPlayer(t, "other", domain.ClassMage)
	ids := env.giveItems(t, "seller", domain.RarityRare, domain.ItemTypeAccessory, 1)

	listing, err := env.svc.CreateListing(ctx, "seller", ids[0], 750)
	require.NoError(t, err)

	_, err = env.svc.CancelListing(ctx, "other", listing.ID)
	assert.ErrorIs(t, err, domain.ErrListingNotFound)

	item, err := env.svc.CancelListing(ctx, "seller", listing.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RarityRare, item.Rarity)
	assert.Equal(t, domain.ItemTypeAccessory, item.Type)
	assert.False(t, item.Equipped)
	assert.Equal(t, []int64{item.ID}, itemIDs(env.items(t, "seller")))

	_, err = env.svc.CancelListing(ctx, "seller", listing.ID)
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}
