package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/event"
	"github.com/osse101/TextRealm_Go/internal/gate"
)

func (s *service) StartExpedition(ctx context.Context, id, typeID string) (*domain.ExpeditionStatus, error) {
	def, ok := s.catalog.Expedition(typeID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrExpeditionNotFound, typeID)
	}

	var out *domain.ExpeditionStatus
	err := s.run(ctx, ActionStartExpedition, id, func(u *unit) error {
		active, err := u.tx.GetActiveExpedition(u.ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get expedition: %w", err)
		}
		if active != nil {
			return fmt.Errorf("%w: %s until %s", domain.ErrExpeditionActive, active.TypeID, active.EndsAt().Format("15:04"))
		}

		exp := &domain.Expedition{
			PlayerID:  id,
			TypeID:    def.ID,
			StartedAt: u.now,
			Duration:  def.Duration(),
			Reward:    s.roller.ExpeditionReward(u.rnd, def),
		}
		if err := u.tx.CreateExpedition(u.ctx, exp); err != nil {
			return fmt.Errorf("failed to create expedition: %w", err)
		}

		u.emit(event.ExpeditionStarted, event.ExpeditionStartedPayloadV1{
			ExpeditionID: exp.ID,
			TypeID:       exp.TypeID,
			StartedAt:    exp.StartedAt,
			EndsAt:       exp.EndsAt(),
		})
		status := gate.ExpeditionStatus(exp, u.now)
		out = &status
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *service) CollectExpedition(ctx context.Context, id string) (*domain.ExpeditionCollectResult, error) {
	var out *domain.ExpeditionCollectResult
	err := s.run(ctx, ActionCollectExpedition, id, func(u *unit) error {
		exp, err := u.tx.GetActiveExpedition(u.ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get expedition: %w", err)
		}
		if exp == nil {
			return domain.ErrNoExpedition
		}
		if !gate.ExpeditionDone(*exp, u.now) {
			return fmt.Errorf("%w: %s left", domain.ErrExpeditionNotDone, gate.ExpeditionRemaining(*exp, u.now).Round(time.Second))
		}

		rewards := domain.Rewards{Gold: exp.Reward.Gold, XP: exp.Reward.XP, Crystals: exp.Reward.Crystals}
		res := &domain.ExpeditionCollectResult{Rewards: rewards}
		if res.LevelUps, err = s.grant(u, rewards); err != nil {
			return err
		}
		if exp.Reward.ItemRarity != nil {
			if res.Item, err = s.addItem(u, s.roller.GenerateItem(u.rnd, *exp.Reward.ItemRarity, "")); err != nil {
				return err
			}
		}
		if err := u.tx.MarkExpeditionCollected(u.ctx, exp.ID); err != nil {
			return err
		}
		if err := s.progressQuests(u, domain.QuestTypeExpedition, 1); err != nil {
			return err
		}

		exp.Collected = true
		res.Expedition = *exp
		u.emit(event.ExpeditionFinished, event.RewardPayloadV1{Source: SourceExpedition, Rewards: rewards})
		out = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *service) GetExpedition(ctx context.Context, id string) (*domain.ExpeditionStatus, error) {
	if _, err := s.store.GetPlayer(ctx, id); err != nil {
		return nil, err
	}
	exp, err := s.store.GetActiveExpedition(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get expedition: %w", err)
	}
	status := gate.ExpeditionStatus(exp, s.clock.Now())
	return &status, nil
}
