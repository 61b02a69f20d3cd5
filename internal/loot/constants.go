package loot

// BatchSize is the number of draws in a multi-pull.
const BatchSize = 10

// Stat variance applied to template bonuses so identical templates roll
// distinct items.
const (
	statJitter = 0.15
	critJitter = 0.10
)
