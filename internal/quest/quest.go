// Package quest generates daily quests and tracks their progress.
package quest

import (
	"fmt"
	"time"

	"github.com/osse101/TextRealm_Go/internal/catalog"
	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/random"
)

// Generate rolls up to n quests of distinct types for playerID on day.
// Templates are shuffled and the first template of each unseen type is
// taken, so a pool with duplicate types still yields distinct quests.
func Generate(src random.Source, templates []catalog.QuestTemplate, n int, playerID string, day time.Time) []domain.Quest {
	pool := make([]catalog.QuestTemplate, len(templates))
	copy(pool, templates)
	for i := len(pool) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		pool[i], pool[j] = pool[j], pool[i]
	}

	seen := make(map[domain.QuestType]bool)
	quests := make([]domain.Quest, 0, n)
	for _, tmpl := range pool {
		if len(quests) == n {
			break
		}
		if seen[tmpl.Type] {
			continue
		}
		seen[tmpl.Type] = true

		target := max(1, random.IntRange(src, tmpl.TargetMin, tmpl.TargetMax))
		quests = append(quests, domain.Quest{
			PlayerID:    playerID,
			Day:         day,
			Type:        tmpl.Type,
			Description: fmt.Sprintf(tmpl.Description, target),
			Target:      target,
			Reward:      tmpl.Reward,
		})
	}
	return quests
}

// Advance adds by to every open quest of type t. Progress is clamped to the
// target and a quest reaching it is marked complete. It returns the quests
// that changed.
func Advance(quests []domain.Quest, t domain.QuestType, by int) []domain.Quest {
	if by <= 0 {
		return nil
	}
	var changed []domain.Quest
	for i := range quests {
		q := &quests[i]
		if q.Type != t || q.Completed {
			continue
		}
		q.Progress = min(q.Target, q.Progress+by)
		q.Completed = q.Progress >= q.Target
		changed = append(changed, *q)
	}
	return changed
}

// Claim marks a completed quest claimed and returns its reward.
func Claim(q *domain.Quest, playerID string, id int64) (domain.Rewards, error) {
	switch {
	case q == nil || q.PlayerID != playerID:
		return domain.Rewards{}, fmt.Errorf("%w: id %d", domain.ErrQuestNotFound, id)
	case q.Claimed:
		return domain.Rewards{}, fmt.Errorf("%w: id %d", domain.ErrQuestClaimed, id)
	case !q.Completed:
		return domain.Rewards{}, fmt.Errorf("%w: %d/%d", domain.ErrQuestNotComplete, q.Progress, q.Target)
	}
	q.Claimed = true
	return q.Reward, nil
}
