package domain

import "time"

// MaxListingPrice keeps prices inside the 32-bit price column.
const MaxListingPrice = 1_000_000_000

// Listing is an item snapshot offered on the shared auction book. It is
// independent of the inventory row it was created from.
type Listing struct {
	ID         int64     `json:"id"`
	SellerID   string    `json:"seller_id"`
	SellerName string    `json:"seller_name"`
	ItemName   string    `json:"item_name"`
	ItemType   ItemType  `json:"item_type"`
	Rarity     Rarity    `json:"rarity"`
	Bonuses    Bonuses   `json:"bonuses"`
	Price      int       `json:"price"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToItem converts the snapshot into a fresh, unequipped inventory item for owner.
func (l Listing) ToItem(owner string, now time.Time) InventoryItem {
	return InventoryItem{
		PlayerID:  owner,
		Name:      l.ItemName,
		Type:      l.ItemType,
		Rarity:    l.Rarity,
		Bonuses:   l.Bonuses,
		CreatedAt: now,
	}
}

// ListingFromItem snapshots item for sale by seller.
func ListingFromItem(item InventoryItem, sellerName string, price int, now time.Time) Listing {
	return Listing{
		SellerID:   item.PlayerID,
		SellerName: sellerName,
		ItemName:   item.Name,
		ItemType:   item.Type,
		Rarity:     item.Rarity,
		Bonuses:    item.Bonuses,
		Price:      price,
		CreatedAt:  now,
	}
}
