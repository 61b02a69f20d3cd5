package engine

import (
	"context"
	"fmt"

	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/event"
	"github.com/osse101/TextRealm_Go/internal/inventory"
)

func (s *service) ListInventory(ctx context.Context, id string) ([]domain.InventoryItem, error) {
	if _, err := s.store.GetPlayer(ctx, id); err != nil {
		return nil, err
	}
	items, err := s.store.ListInventory(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	return items, nil
}

func (s *service) EquipItem(ctx context.Context, id string, itemID int64) (*domain.InventoryItem, error) {
	var out *domain.InventoryItem
	err := s.run(ctx, ActionEquip, id, func(u *unit) error {
		items, err := s.loadInventory(u)
		if err != nil {
			return err
		}
		changed, err := inventory.Equip(items, id, itemID)
		if err != nil {
			return err
		}
		for _, it := range changed {
			if err := u.tx.SetEquipped(u.ctx, it.ID, it.Equipped); err != nil {
				return err
			}
		}
		if _, err := inventory.Equipped(items); err != nil {
			return err
		}
		out = inventory.Find(items, itemID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *service) UnequipItem(ctx context.Context, id string, itemID int64) (*domain.InventoryItem, error) {
	var out *domain.InventoryItem
	err := s.run(ctx, ActionUnequip, id, func(u *unit) error {
		items, err := s.loadInventory(u)
		if err != nil {
			return err
		}
		changed, err := inventory.Unequip(items, id, itemID)
		if err != nil {
			return err
		}
		if changed != nil {
			if err := u.tx.SetEquipped(u.ctx, changed.ID, false); err != nil {
				return err
			}
		}
		out = inventory.Find(items, itemID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *service) SellItem(ctx context.Context, id string, itemID int64) (*domain.SellResult, error) {
	var out *domain.SellResult
	err := s.run(ctx, ActionSell, id, func(u *unit) error {
		items, err := s.loadInventory(u)
		if err != nil {
			return err
		}
		item := inventory.Find(items, itemID)
		if err := inventory.Disposable(item, id, itemID); err != nil {
			return err
		}

		price := s.catalog.SellPrice(item.Rarity)
		if err := u.tx.DeleteItems(u.ctx, item.ID); err != nil {
			return err
		}
		if err := s.ledger.Credit(u.player, domain.ResourceGold, price, u.now); err != nil {
			return err
		}
		if err := s.progressQuests(u, domain.QuestTypeSell, 1); err != nil {
			return err
		}

		u.emit(event.ItemSold, event.ItemSoldPayloadV1{Rarity: item.Rarity, Price: price})
		out = &domain.SellResult{ItemID: item.ID, Price: price, Balance: u.player.Gold}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *service) UpgradeRarity(ctx context.Context, id string, tier domain.Rarity) (*domain.UpgradeResult, error) {
	next, ok := tier.Next()
	if !tier.Valid() {
		return nil, fmt.Errorf("%w: rarity %q", domain.ErrInvalidInput, tier)
	}
	cost, hasCost := s.catalog.UpgradeCost(tier)
	if !ok || !hasCost {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotUpgradable, tier)
	}

	var out *domain.UpgradeResult
	err := s.run(ctx, ActionUpgrade, id, func(u *unit) error {
		items, err := s.loadInventory(u)
		if err != nil {
			return err
		}
		batch, err := inventory.UpgradeCandidates(items, tier)
		if err != nil {
			return err
		}
		if err := s.ledger.Debit(u.player, domain.ResourceGold, cost, u.now); err != nil {
			return err
		}

		consumed := make([]int64, len(batch))
		for i, it := range batch {
			consumed[i] = it.ID
		}
		if err := u.tx.DeleteItems(u.ctx, consumed...); err != nil {
			return err
		}
		item, err := s.addItem(u, s.roller.GenerateItem(u.rnd, next, ""))
		if err != nil {
			return err
		}

		u.emit(event.ItemUpgraded, event.ItemUpgradedPayloadV1{From: tier, To: next, Cost: cost})
		out = &domain.UpgradeResult{Consumed: consumed, Cost: cost, Item: *item}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
