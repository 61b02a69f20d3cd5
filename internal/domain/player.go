package domain

import "time"

// Class is the immutable archetype chosen at player creation.
type Class string

const (
	ClassWarrior  Class = "warrior"
	ClassMage     Class = "mage"
	ClassAssassin Class = "assassin"
	ClassPaladin  Class = "paladin"
)

// Player is the persistent state of one player.
//
// Calendar-day fields (ArenaResetDate, TowerResetDate, LastLoginDate,
// LastWheelDate) hold civil dates normalized to UTC midnight; the zero value
// means "never".
type Player struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Class           Class     `json:"class"`
	Level           int       `json:"level"`
	XP              int       `json:"xp"`
	Gold            int       `json:"gold"`
	Crystals        int       `json:"crystals"`
	Energy          int       `json:"energy"`
	MaxEnergy       int       `json:"max_energy"`
	EnergyUpdatedAt time.Time `json:"energy_updated_at"`

	ArenaRating      int       `json:"arena_rating"`
	ArenaWins        int       `json:"arena_wins"`
	ArenaLosses      int       `json:"arena_losses"`
	ArenaFightsToday int       `json:"arena_fights_today"`
	ArenaResetDate   time.Time `json:"arena_reset_date"`

	TowerFloor         int       `json:"tower_floor"`
	TowerAttemptsToday int       `json:"tower_attempts_today"`
	TowerResetDate     time.Time `json:"tower_reset_date"`

	LoginStreak   int       `json:"login_streak"`
	LastLoginDate time.Time `json:"last_login_date"`
	LastWheelDate time.Time `json:"last_wheel_date"`

	TotalHunts int       `json:"total_hunts"`
	TotalKills int       `json:"total_kills"`
	CreatedAt  time.Time `json:"created_at"`
}

// PlayerState is a player record plus values derived at read time.
type PlayerState struct {
	Player            Player    `json:"player"`
	CurrentEnergy     int       `json:"current_energy"`
	XPToNextLevel     int       `json:"xp_to_next_level"`
	Stats             StatBlock `json:"stats"`
	ArenaFightsLeft   int       `json:"arena_fights_left"`
	TowerAttemptsLeft int       `json:"tower_attempts_left"`
	CanSpinWheel      bool      `json:"can_spin_wheel"`
	CanClaimDaily     bool      `json:"can_claim_daily"`
}

// Resource is a spendable player balance.
type Resource string

const (
	ResourceGold     Resource = "gold"
	ResourceCrystals Resource = "crystals"
	ResourceEnergy   Resource = "energy"
)

// Rewards is a bundle of resources granted by an action.
type Rewards struct {
	Gold     int `json:"gold"`
	Crystals int `json:"crystals"`
	XP       int `json:"xp"`
	Energy   int `json:"energy,omitempty"`
}

// Add returns the sum of r and o.
func (r Rewards) Add(o Rewards) Rewards {
	return Rewards{
		Gold:     r.Gold + o.Gold,
		Crystals: r.Crystals + o.Crystals,
		XP:       r.XP + o.XP,
		Energy:   r.Energy + o.Energy,
	}
}
