package inventory

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TextRealm_Go/internal/domain"
)

var base = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func item(id int64, typ domain.ItemType, rarity domain.Rarity, equipped bool) domain.InventoryItem {
	return domain.InventoryItem{
		ID:        id,
		PlayerID:  "p1",
		Name:      "item",
		Type:      typ,
		Rarity:    rarity,
		Equipped:  equipped,
		Bonuses:   domain.Bonuses{Attack: int(id)},
		CreatedAt: base.Add(time.Duration(id) * time.Minute),
	}
}

func TestEquip_ClearsSameSlot(t *testing.T) {
	items := []domain.InventoryItem{
		item(1, domain.ItemTypeWeapon, domain.RarityCommon, true),
		item(2, domain.ItemTypeWeapon, domain.RarityRare, false),
		item(3, domain.ItemTypeArmor, domain.RarityCommon, true),
	}

	changed, err := Equip(items, "p1", 2)
	require.NoError(t, err)
	require.Len(t, changed, 2)
	assert.Equal(t, int64(1), changed[0].ID)
	assert.False(t, changed[0].Equipped)
	assert.Equal(t, int64(2), changed[1].ID)
	assert.True(t, changed[1].Equipped)

	assert.True(t, items[2].Equipped, "other slots are untouched")
}

func TestEquip_Errors(t *testing.T) {
	items := []domain.InventoryItem{item(1, domain.ItemTypeWeapon, domain.RarityCommon, true)}

	_, err := Equip(items, "p1", 99)
	assert.True(t, errors.Is(err, domain.ErrItemNotFound))

	_, err = Equip(items, "someone-else", 1)
	assert.True(t, errors.Is(err, domain.ErrInvalidTarget))

	changed, err := Equip(items, "p1", 1)
	require.NoError(t, err)
	assert.Empty(t, changed)
}

func TestEquip_InvariantHoldsOverSequences(t *testing.T) {
	var items []domain.InventoryItem
	types := domain.ItemTypes()
	for i := int64(1); i <= 12; i++ {
		items = append(items, item(i, types[i%3], domain.RarityCommon, false))
	}

	for round := 0; round < 5; round++ {
		for i := int64(1); i <= 12; i++ {
			_, err := Equip(items, "p1", (i*7)%12+1)
			require.NoError(t, err)

			_, err = Equipped(items)
			require.NoError(t, err)
		}
	}
}

func TestUnequip(t *testing.T) {
	items := []domain.InventoryItem{item(1, domain.ItemTypeWeapon, domain.RarityCommon, true)}

	changed, err := Unequip(items, "p1", 1)
	require.NoError(t, err)
	require.NotNil(t, changed)
	assert.False(t, items[0].Equipped)

	changed, err = Unequip(items, "p1", 1)
	require.NoError(t, err)
	assert.Nil(t, changed)
}

func TestEquipped_DetectsDoubleEquip(t *testing.T) {
	items := []domain.InventoryItem{
		item(1, domain.ItemTypeWeapon, domain.RarityCommon, true),
		item(2, domain.ItemTypeWeapon, domain.RarityCommon, true),
	}
	_, err := Equipped(items)
	assert.True(t, errors.Is(err, domain.ErrDoubleEquip))
	assert.True(t, errors.Is(err, domain.ErrInvariantViolation))
}

func TestEquippedBonuses(t *testing.T) {
	items := []domain.InventoryItem{
		item(1, domain.ItemTypeWeapon, domain.RarityCommon, true),
		item(2, domain.ItemTypeArmor, domain.RarityCommon, true),
		item(4, domain.ItemTypeAccessory, domain.RarityCommon, false),
	}
	assert.Equal(t, domain.Bonuses{Attack: 3}, EquippedBonuses(items))
}

func TestDisposable(t *testing.T) {
	equipped := item(1, domain.ItemTypeWeapon, domain.RarityCommon, true)
	free := item(2, domain.ItemTypeWeapon, domain.RarityCommon, false)

	assert.True(t, errors.Is(Disposable(&equipped, "p1", 1), domain.ErrItemEquipped))
	assert.True(t, errors.Is(Disposable(nil, "p1", 3), domain.ErrItemNotFound))
	assert.True(t, errors.Is(Disposable(&free, "p2", 2), domain.ErrItemNotFound))
	assert.NoError(t, Disposable(&free, "p1", 2))
}

func TestUpgradeCandidates(t *testing.T) {
	items := []domain.InventoryItem{
		item(5, domain.ItemTypeWeapon, domain.RarityCommon, false),
		item(1, domain.ItemTypeArmor, domain.RarityCommon, true),
		item(3, domain.ItemTypeAccessory, domain.RarityCommon, false),
		item(4, domain.ItemTypeWeapon, domain.RarityUncommon, false),
		item(2, domain.ItemTypeWeapon, domain.RarityCommon, false),
		item(6, domain.ItemTypeArmor, domain.RarityCommon, false),
	}

	picked, err := UpgradeCandidates(items, domain.RarityCommon)
	require.NoError(t, err)
	ids := []int64{picked[0].ID, picked[1].ID, picked[2].ID}
	assert.Equal(t, []int64{2, 3, 5}, ids, "oldest unequipped first")

	_, err = UpgradeCandidates(items, domain.RarityUncommon)
	assert.True(t, errors.Is(err, domain.ErrNotEnoughItems))
	assert.True(t, errors.Is(err, domain.ErrInsufficientResource))

	_, err = UpgradeCandidates(items, domain.RarityLegendary)
	assert.True(t, errors.Is(err, domain.ErrNotUpgradable))

	_, err = UpgradeCandidates(items, domain.Rarity("mythic"))
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestCheckListing(t *testing.T) {
	free := item(2, domain.ItemTypeWeapon, domain.RarityCommon, false)
	equipped := item(1, domain.ItemTypeWeapon, domain.RarityCommon, true)

	tests := []struct {
		name    string
		item    *domain.InventoryItem
		price   int
		open    int
		wantErr error
	}{
		{"ok", &free, 90, 2, nil},
		{"cap reached", &free, 90, 3, domain.ErrListingCapReached},
		{"zero price", &free, 0, 0, domain.ErrInvalidPrice},
		{"max price", &free, domain.MaxListingPrice, 0, nil},
		{"above max price", &free, domain.MaxListingPrice + 1, 0, domain.ErrInvalidPrice},
		{"equipped", &equipped, 90, 0, domain.ErrItemEquipped},
		{"missing", nil, 90, 0, domain.ErrItemNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckListing(tt.item, "p1", 2, tt.price, tt.open, 3)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestCheckPurchase(t *testing.T) {
	l := &domain.Listing{ID: 7, SellerID: "seller"}

	assert.NoError(t, CheckPurchase(l, "buyer", 7))
	assert.True(t, errors.Is(CheckPurchase(l, "seller", 7), domain.ErrOwnListing))
	assert.True(t, errors.Is(CheckPurchase(nil, "buyer", 7), domain.ErrListingNotFound))
}
