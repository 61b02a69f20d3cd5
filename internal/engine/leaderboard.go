package engine

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/logger"
	"github.com/osse101/TextRealm_Go/internal/repository"
)

func (s *service) GetLeaderboard(ctx context.Context, by domain.LeaderboardKind, limit int) ([]domain.LeaderboardEntry, error) {
	if !by.Valid() {
		return nil, fmt.Errorf("%w: leaderboard %q", domain.ErrInvalidInput, by)
	}
	limit = repository.LeaderboardLimit(limit)

	ctx, span := s.tracer.Start(ctx, "Engine.GetLeaderboard", trace.WithAttributes(
		attribute.String("leaderboard.kind", string(by)),
		attribute.Int("leaderboard.limit", limit),
	))
	defer span.End()

	key := fmt.Sprintf("%s:%d", by, limit)
	if entries, ok := s.leaderboards.Get(key); ok {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		logger.FromContext(ctx).Debug(LogMsgLeaderboardCached, "kind", by, "limit", limit)
		return entries, nil
	}

	entries, err := s.store.Leaderboard(ctx, by, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}
	s.leaderboards.Add(key, entries)
	return entries, nil
}

func (s *service) GetPlayerRank(ctx context.Context, id string, by domain.LeaderboardKind) (int, error) {
	if !by.Valid() {
		return 0, fmt.Errorf("%w: leaderboard %q", domain.ErrInvalidInput, by)
	}
	rank, err := s.store.PlayerRank(ctx, id, by)
	if err != nil {
		if domain.IsDomainError(err) {
			return 0, err
		}
		return 0, fmt.Errorf("failed to get rank: %w", err)
	}
	return rank, nil
}
