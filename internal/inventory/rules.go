// Package inventory holds the ownership and slot rules applied to a player's
// items. It works on loaded item lists; persistence happens in the engine.
package inventory

import (
	"fmt"
	"slices"

	"github.com/osse101/TextRealm_Go/internal/domain"
)

// UpgradeBatch is the number of same-tier items merged by an upgrade.
const UpgradeBatch = 3

// Find returns the item with id, or nil.
func Find(items []domain.InventoryItem, id int64) *domain.InventoryItem {
	for i := range items {
		if items[i].ID == id {
			return &items[i]
		}
	}
	return nil
}

// Owned checks that item exists and belongs to playerID.
func Owned(item *domain.InventoryItem, playerID string, id int64) error {
	if item == nil || item.PlayerID != playerID {
		return fmt.Errorf("%w: id %d", domain.ErrItemNotFound, id)
	}
	return nil
}

// Disposable checks that the item may leave the inventory by sale or listing.
func Disposable(item *domain.InventoryItem, playerID string, id int64) error {
	if err := Owned(item, playerID, id); err != nil {
		return err
	}
	if item.Equipped {
		return fmt.Errorf("%w: %s", domain.ErrItemEquipped, item.Name)
	}
	return nil
}

// Equip marks id equipped and clears any other equipped item in the same
// slot. It returns the items whose flag changed, the cleared one first, so
// the caller can persist them in that order. Equipping an already equipped
// item changes nothing.
func Equip(items []domain.InventoryItem, playerID string, id int64) ([]domain.InventoryItem, error) {
	target := Find(items, id)
	if err := Owned(target, playerID, id); err != nil {
		return nil, err
	}
	if target.Equipped {
		return nil, nil
	}

	var changed []domain.InventoryItem
	for i := range items {
		it := &items[i]
		if it.ID != id && it.Type == target.Type && it.Equipped {
			it.Equipped = false
			changed = append(changed, *it)
		}
	}
	target.Equipped = true
	changed = append(changed, *target)
	return changed, nil
}

// Unequip clears the equipped flag of id. It returns the changed item, or
// nil when it was not equipped.
func Unequip(items []domain.InventoryItem, playerID string, id int64) (*domain.InventoryItem, error) {
	target := Find(items, id)
	if err := Owned(target, playerID, id); err != nil {
		return nil, err
	}
	if !target.Equipped {
		return nil, nil
	}
	target.Equipped = false
	out := *target
	return &out, nil
}

// Equipped returns the equipped items keyed by slot. It fails when a slot
// holds more than one equipped item.
func Equipped(items []domain.InventoryItem) (map[domain.ItemType]domain.InventoryItem, error) {
	out := make(map[domain.ItemType]domain.InventoryItem)
	for _, it := range items {
		if !it.Equipped {
			continue
		}
		if prev, dup := out[it.Type]; dup {
			return nil, fmt.Errorf("%w: %s has %d and %d", domain.ErrDoubleEquip, it.Type, prev.ID, it.ID)
		}
		out[it.Type] = it
	}
	return out, nil
}

// EquippedBonuses sums the bonuses of every equipped item.
func EquippedBonuses(items []domain.InventoryItem) domain.Bonuses {
	var total domain.Bonuses
	for _, it := range items {
		if it.Equipped {
			total = total.Add(it.Bonuses)
		}
	}
	return total
}

// UpgradeCandidates picks the UpgradeBatch oldest unequipped items of tier.
func UpgradeCandidates(items []domain.InventoryItem, tier domain.Rarity) ([]domain.InventoryItem, error) {
	if !tier.Valid() {
		return nil, fmt.Errorf("%w: rarity %q", domain.ErrInvalidInput, tier)
	}
	if _, ok := tier.Next(); !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotUpgradable, tier)
	}

	var eligible []domain.InventoryItem
	for _, it := range items {
		if it.Rarity == tier && !it.Equipped {
			eligible = append(eligible, it)
		}
	}
	if len(eligible) < UpgradeBatch {
		return nil, fmt.Errorf("%w: have %d %s, need %d", domain.ErrNotEnoughItems, len(eligible), tier, UpgradeBatch)
	}

	slices.SortStableFunc(eligible, func(a, b domain.InventoryItem) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return eligible[:UpgradeBatch], nil
}

// CheckListing validates a new auction listing for seller.
func CheckListing(item *domain.InventoryItem, sellerID string, id int64, price, openListings, maxListings int) error {
	if price <= 0 || price > domain.MaxListingPrice {
		return fmt.Errorf("%w: %d", domain.ErrInvalidPrice, price)
	}
	if err := Disposable(item, sellerID, id); err != nil {
		return err
	}
	if openListings >= maxListings {
		return fmt.Errorf("%w: %d/%d", domain.ErrListingCapReached, openListings, maxListings)
	}
	return nil
}

// CheckPurchase validates buying listing l.
func CheckPurchase(l *domain.Listing, buyerID string, listingID int64) error {
	if l == nil {
		return fmt.Errorf("%w: id %d", domain.ErrListingNotFound, listingID)
	}
	if l.SellerID == buyerID {
		return fmt.Errorf("%w: id %d", domain.ErrOwnListing, listingID)
	}
	return nil
}
