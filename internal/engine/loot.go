package engine

import (
	"context"
	"fmt"

	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/event"
)

func (s *service) PullGacha(ctx context.Context, id string, tier domain.GachaTier) (*domain.GachaResult, error) {
	gacha := s.catalog.Rules.Gacha

	var cost domain.Rewards
	var res domain.Resource
	switch tier {
	case domain.GachaStandard:
		cost, res = domain.Rewards{Gold: gacha.StandardCostGold}, domain.ResourceGold
	case domain.GachaPremium:
		cost, res = domain.Rewards{Crystals: gacha.PremiumCostCrystals}, domain.ResourceCrystals
	default:
		return nil, fmt.Errorf("%w: gacha tier %q", domain.ErrInvalidInput, tier)
	}

	var out *domain.GachaResult
	err := s.run(ctx, ActionGacha, id, func(u *unit) error {
		if err := s.ledger.Debit(u.player, res, cost.Gold+cost.Crystals, u.now); err != nil {
			return err
		}
		item, err := s.addItem(u, s.roller.Pull(u.rnd, tier))
		if err != nil {
			return err
		}
		if err := s.progressQuests(u, domain.QuestTypeGacha, 1); err != nil {
			return err
		}

		u.emit(event.GachaPulled, event.GachaPayloadV1{Tier: tier, Rarities: []domain.Rarity{item.Rarity}})
		out = &domain.GachaResult{Tier: tier, Cost: cost, Items: []domain.InventoryItem{*item}}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *service) PullGacha10x(ctx context.Context, id string) (*domain.GachaResult, error) {
	cost := domain.Rewards{Crystals: s.catalog.Rules.Gacha.TenPullCostCrystals}

	var out *domain.GachaResult
	err := s.run(ctx, ActionGacha10x, id, func(u *unit) error {
		if err := s.ledger.Debit(u.player, domain.ResourceCrystals, cost.Crystals, u.now); err != nil {
			return err
		}

		pulled, guaranteed := s.roller.Pull10x(u.rnd)
		items := make([]domain.InventoryItem, 0, len(pulled))
		rarities := make([]domain.Rarity, 0, len(pulled))
		for _, it := range pulled {
			item, err := s.addItem(u, it)
			if err != nil {
				return err
			}
			items = append(items, *item)
			rarities = append(rarities, item.Rarity)
		}
		if err := s.progressQuests(u, domain.QuestTypeGacha, len(items)); err != nil {
			return err
		}

		u.emit(event.GachaPulled, event.GachaPayloadV1{Tier: domain.GachaPremium, Rarities: rarities, Guaranteed: guaranteed})
		out = &domain.GachaResult{Tier: domain.GachaPremium, Cost: cost, Items: items, Guaranteed: guaranteed}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *service) SpinWheel(ctx context.Context, id string) (*domain.WheelResult, error) {
	var out *domain.WheelResult
	err := s.run(ctx, ActionWheel, id, func(u *unit) error {
		if err := s.gates.UseWheel(u.player, u.now); err != nil {
			return err
		}

		spin := s.roller.SpinWheel(u.rnd)
		if _, err := s.grant(u, spin.Rewards); err != nil {
			return err
		}
		if spin.Item != nil {
			item, err := s.addItem(u, *spin.Item)
			if err != nil {
				return err
			}
			spin.Item = item
		}

		u.emit(event.WheelSpun, event.RewardPayloadV1{Source: SourceWheel, Rewards: spin.Rewards})
		out = &spin
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
