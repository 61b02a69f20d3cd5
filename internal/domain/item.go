package domain

import (
	"fmt"
	"time"
)

// Rarity is the ordered quality tier of an item.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

var rarityOrder = []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary}

// Rarities returns every tier from lowest to highest.
func Rarities() []Rarity {
	out := make([]Rarity, len(rarityOrder))
	copy(out, rarityOrder)
	return out
}

// Rank returns the position of r in the tier order, or -1 for an unknown tier.
func (r Rarity) Rank() int {
	for i, t := range rarityOrder {
		if t == r {
			return i
		}
	}
	return -1
}

// Valid reports whether r is a known tier.
func (r Rarity) Valid() bool { return r.Rank() >= 0 }

// AtLeast reports whether r is the same tier as min or above it.
func (r Rarity) AtLeast(min Rarity) bool {
	return r.Valid() && r.Rank() >= min.Rank()
}

// Next returns the tier directly above r. Legendary has no next tier.
func (r Rarity) Next() (Rarity, bool) {
	rank := r.Rank()
	if rank < 0 || rank == len(rarityOrder)-1 {
		return "", false
	}
	return rarityOrder[rank+1], true
}

// ParseRarity converts a string into a Rarity.
func ParseRarity(s string) (Rarity, error) {
	r := Rarity(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: unknown rarity %q", ErrInvalidInput, s)
	}
	return r, nil
}

// ItemType is the equipment slot an item occupies.
type ItemType string

const (
	ItemTypeWeapon    ItemType = "weapon"
	ItemTypeArmor     ItemType = "armor"
	ItemTypeAccessory ItemType = "accessory"
)

var itemTypes = []ItemType{ItemTypeWeapon, ItemTypeArmor, ItemTypeAccessory}

// ItemTypes returns the closed set of slots.
func ItemTypes() []ItemType {
	out := make([]ItemType, len(itemTypes))
	copy(out, itemTypes)
	return out
}

// Valid reports whether t is a known slot.
func (t ItemType) Valid() bool {
	for _, it := range itemTypes {
		if it == t {
			return true
		}
	}
	return false
}

// Bonuses are the stat modifiers an item grants while equipped.
type Bonuses struct {
	Attack  int     `json:"attack"`
	Defense int     `json:"defense"`
	HP      int     `json:"hp"`
	Crit    float64 `json:"crit"`
}

// Add returns the component-wise sum of b and o.
func (b Bonuses) Add(o Bonuses) Bonuses {
	return Bonuses{
		Attack:  b.Attack + o.Attack,
		Defense: b.Defense + o.Defense,
		HP:      b.HP + o.HP,
		Crit:    b.Crit + o.Crit,
	}
}

// InventoryItem is an item owned by exactly one player.
type InventoryItem struct {
	ID        int64     `json:"id"`
	PlayerID  string    `json:"player_id"`
	Name      string    `json:"name"`
	Type      ItemType  `json:"type"`
	Rarity    Rarity    `json:"rarity"`
	Bonuses   Bonuses   `json:"bonuses"`
	Equipped  bool      `json:"equipped"`
	CreatedAt time.Time `json:"created_at"`
}
