package engine

import (
	"context"
	"fmt"

	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/event"
	"github.com/osse101/TextRealm_Go/internal/quest"
)

func (s *service) ClaimDailyLogin(ctx context.Context, id string) (*domain.DailyLoginResult, error) {
	var out *domain.DailyLoginResult
	err := s.run(ctx, ActionDailyLogin, id, func(u *unit) error {
		streak, err := s.gates.ClaimDaily(u.player, u.now)
		if err != nil {
			return err
		}
		rewards := s.gates.DailyReward(streak)
		if _, err := s.grant(u, rewards); err != nil {
			return err
		}

		u.emit(event.DailyClaimed, event.RewardPayloadV1{Source: SourceDaily, Rewards: rewards})
		out = &domain.DailyLoginResult{Streak: streak, Rewards: rewards}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetDailyQuests runs as an action because the first read of the day
// generates the quests.
func (s *service) GetDailyQuests(ctx context.Context, id string) ([]domain.Quest, error) {
	var out []domain.Quest
	err := s.run(ctx, ActionDailyQuests, id, func(u *unit) error {
		quests, err := s.dailyQuests(u)
		if err != nil {
			return err
		}
		out = quests
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *service) ClaimQuest(ctx context.Context, id string, questID int64) (*domain.QuestClaimResult, error) {
	var out *domain.QuestClaimResult
	err := s.run(ctx, ActionClaimQuest, id, func(u *unit) error {
		quests, err := s.dailyQuests(u)
		if err != nil {
			return err
		}

		var q *domain.Quest
		for i := range quests {
			if quests[i].ID == questID {
				q = &quests[i]
				break
			}
		}
		rewards, err := quest.Claim(q, id, questID)
		if err != nil {
			return err
		}
		if err := u.tx.UpdateQuest(u.ctx, *q); err != nil {
			return err
		}
		levels, err := s.grant(u, rewards)
		if err != nil {
			return err
		}

		u.emit(event.QuestClaimed, event.RewardPayloadV1{Source: SourceQuest, Rewards: rewards})
		out = &domain.QuestClaimResult{Quest: *q, Rewards: rewards, LevelUps: levels}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// dailyQuests returns today's quests of the unit player, generating them on
// the first call of the day.
func (s *service) dailyQuests(u *unit) ([]domain.Quest, error) {
	day := s.gates.Calendar().Today(u.now)
	quests, err := u.tx.ListQuests(u.ctx, u.player.ID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list quests: %w", err)
	}
	if len(quests) > 0 {
		return quests, nil
	}

	quests = quest.Generate(u.rnd, s.catalog.Quests, s.catalog.Rules.QuestsPerDay, u.player.ID, day)
	if len(quests) == 0 {
		return quests, nil
	}
	if err := u.tx.CreateQuests(u.ctx, quests); err != nil {
		return nil, fmt.Errorf("failed to create quests: %w", err)
	}
	return quests, nil
}

// progressQuests counts an action towards today's quests of type t.
func (s *service) progressQuests(u *unit, t domain.QuestType, by int) error {
	quests, err := s.dailyQuests(u)
	if err != nil {
		return err
	}
	for _, q := range quest.Advance(quests, t, by) {
		if err := u.tx.UpdateQuest(u.ctx, q); err != nil {
			return err
		}
	}
	return nil
}
