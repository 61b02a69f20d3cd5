package engine

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/economy"
	"github.com/osse101/TextRealm_Go/internal/event"
	"github.com/osse101/TextRealm_Go/internal/inventory"
)

var nameCaser = cases.Title(language.Und, cases.NoLower)

// normalizeName collapses whitespace, capitalizes words and caps the length
// of a display name. An empty name falls back to the player id.
func normalizeName(name, id string) string {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return id
	}
	name = nameCaser.String(name)
	if utf8.RuneCountInString(name) > MaxNameLength {
		name = string([]rune(name)[:MaxNameLength])
	}
	return name
}

func (s *service) CreatePlayer(ctx context.Context, id, name string, class domain.Class) (*domain.PlayerState, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: empty player id", domain.ErrInvalidInput)
	}
	if _, ok := s.catalog.Class(class); !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownClass, class)
	}

	var state *domain.PlayerState
	err := s.execute(ctx, ActionCreatePlayer, id, false, func(u *unit) error {
		rules := s.catalog.Rules
		p := &domain.Player{
			ID:              id,
			Name:            normalizeName(name, id),
			Class:           class,
			Level:           1,
			Gold:            rules.StartingGold,
			Crystals:        rules.StartingCrystals,
			Energy:          rules.MaxEnergy,
			MaxEnergy:       rules.MaxEnergy,
			EnergyUpdatedAt: u.now,
			ArenaRating:     rules.StartingRating,
			CreatedAt:       u.now,
		}
		if err := economy.CheckInvariants(p); err != nil {
			return err
		}
		if err := u.tx.CreatePlayer(u.ctx, p); err != nil {
			return err
		}
		u.player = p
		u.emit(event.PlayerCreated, event.PlayerCreatedPayloadV1{Name: p.Name, Class: p.Class})

		st, err := s.state(p, nil, u.now)
		if err != nil {
			return err
		}
		state = st
		return nil
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

func (s *service) GetPlayerState(ctx context.Context, id string) (*domain.PlayerState, error) {
	p, err := s.store.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := s.store.ListInventory(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	return s.state(p, items, s.clock.Now())
}

// state derives the read-time view of p.
func (s *service) state(p *domain.Player, items []domain.InventoryItem, now time.Time) (*domain.PlayerState, error) {
	stats, err := s.stats(p, items)
	if err != nil {
		return nil, err
	}
	return &domain.PlayerState{
		Player:            *p,
		CurrentEnergy:     s.ledger.CurrentEnergy(p, now),
		XPToNextLevel:     economy.XPForLevel(p.Level) - p.XP,
		Stats:             stats,
		ArenaFightsLeft:   s.gates.ArenaFightsLeft(p, now),
		TowerAttemptsLeft: s.gates.TowerAttemptsLeft(p, now),
		CanSpinWheel:      s.gates.CanSpinWheel(p, now),
		CanClaimDaily:     s.gates.CanClaimDaily(p, now),
	}, nil
}

// stats is the class block at the player's level plus equipped bonuses.
func (s *service) stats(p *domain.Player, items []domain.InventoryItem) (domain.StatBlock, error) {
	class, ok := s.catalog.Class(p.Class)
	if !ok {
		return domain.StatBlock{}, fmt.Errorf("%w: %q", domain.ErrUnknownClass, p.Class)
	}
	return class.StatsAt(p.Level).WithBonuses(inventory.EquippedBonuses(items)), nil
}

// grant credits r to the unit's player and pays the stipend of every level
// reached. It returns the levels reached.
func (s *service) grant(u *unit, r domain.Rewards) ([]int, error) {
	p := u.player
	if err := s.ledger.Credit(p, domain.ResourceGold, r.Gold, u.now); err != nil {
		return nil, err
	}
	if err := s.ledger.Credit(p, domain.ResourceCrystals, r.Crystals, u.now); err != nil {
		return nil, err
	}
	if r.Energy > 0 {
		if err := s.ledger.Credit(p, domain.ResourceEnergy, r.Energy, u.now); err != nil {
			return nil, err
		}
	}

	levels, err := economy.ApplyXP(p, r.XP)
	if err != nil {
		return nil, err
	}
	if len(levels) == 0 {
		return nil, nil
	}

	rules := s.catalog.Rules
	if err := s.ledger.Credit(p, domain.ResourceGold, rules.LevelUpGold*len(levels), u.now); err != nil {
		return nil, err
	}
	if err := s.ledger.Credit(p, domain.ResourceCrystals, rules.LevelUpCrystals*len(levels), u.now); err != nil {
		return nil, err
	}
	u.emit(event.PlayerLeveledUp, event.LevelUpPayloadV1{Levels: levels})
	return levels, nil
}

// addItem gives a freshly rolled item to the unit's player.
func (s *service) addItem(u *unit, item domain.InventoryItem) (*domain.InventoryItem, error) {
	item.PlayerID = u.player.ID
	item.Equipped = false
	item.CreatedAt = u.now
	if err := u.tx.AddItem(u.ctx, &item); err != nil {
		return nil, fmt.Errorf("failed to add item: %w", err)
	}
	return &item, nil
}

// loadInventory loads the unit player's items inside the transaction.
func (s *service) loadInventory(u *unit) ([]domain.InventoryItem, error) {
	items, err := u.tx.ListInventory(u.ctx, u.player.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	return items, nil
}
