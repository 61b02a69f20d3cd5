package domain

import "fmt"

// StatBlock is the complete input of one combatant.
type StatBlock struct {
	HP      int     `json:"hp"`
	Attack  int     `json:"attack"`
	Defense int     `json:"defense"`
	Crit    float64 `json:"crit"`
}

// WithBonuses returns s with equipment bonuses applied.
func (s StatBlock) WithBonuses(b Bonuses) StatBlock {
	return StatBlock{
		HP:      s.HP + b.HP,
		Attack:  s.Attack + b.Attack,
		Defense: s.Defense + b.Defense,
		Crit:    s.Crit + b.Crit,
	}
}

// Side identifies who acted in a combat turn.
type Side string

const (
	SideAttacker Side = "attacker"
	SideDefender Side = "defender"
)

// CombatLogEntry records one hit.
type CombatLogEntry struct {
	Round    int  `json:"round"`
	Actor    Side `json:"actor"`
	Damage   int  `json:"damage"`
	Crit     bool `json:"crit"`
	TargetHP int  `json:"target_hp"`
}

func (e CombatLogEntry) String() string {
	who := "You hit"
	if e.Actor == SideDefender {
		who = "Enemy hits"
	}
	if e.Crit {
		return fmt.Sprintf("R%d: %s for %d (CRIT)", e.Round, who, e.Damage)
	}
	return fmt.Sprintf("R%d: %s for %d", e.Round, who, e.Damage)
}

// CombatResult is the outcome of one simulated fight, seen from the attacker.
type CombatResult struct {
	Won            bool             `json:"won"`
	Rounds         int              `json:"rounds"`
	Log            []CombatLogEntry `json:"log"`
	DamageDealt    int              `json:"damage_dealt"`
	DamageReceived int              `json:"damage_received"`
	Crits          int              `json:"crits"`
	HPLeft         int              `json:"hp_left"`
	HPMax          int              `json:"hp_max"`
}
