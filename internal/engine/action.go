package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/economy"
	"github.com/osse101/TextRealm_Go/internal/event"
	"github.com/osse101/TextRealm_Go/internal/logger"
	"github.com/osse101/TextRealm_Go/internal/metrics"
	"github.com/osse101/TextRealm_Go/internal/random"
	"github.com/osse101/TextRealm_Go/internal/repository"
	"github.com/osse101/TextRealm_Go/internal/telemetry"
)

// unit is the state of one attempt at an action. A retried action gets a
// fresh unit, so nothing leaks from the failed attempt.
type unit struct {
	ctx    context.Context
	tx     repository.Tx
	now    time.Time
	rnd    random.Source
	player *domain.Player
	events []event.Event
}

func (u *unit) emit(t event.Type, payload any) {
	id := ""
	if u.player != nil {
		id = u.player.ID
	}
	u.events = append(u.events, event.New(t, id, payload))
}

type actionFunc func(u *unit) error

// run executes fn as a unit of work on the player playerID, which is loaded
// for update before fn runs and saved after it returns.
func (s *service) run(ctx context.Context, action, playerID string, fn actionFunc) error {
	return s.execute(ctx, action, playerID, true, fn)
}

// execute serializes the action on the player lock, runs it inside one
// transaction and retries exactly once when storage fails. Events are
// published only after a successful commit.
func (s *service) execute(ctx context.Context, action, playerID string, loadPlayer bool, fn actionFunc) error {
	ctx, span := s.tracer.Start(ctx, "Engine."+action, trace.WithAttributes(
		attribute.String("player.id", playerID),
		attribute.String("game.action", action),
	))
	defer span.End()

	ctx = logger.WithPlayerID(ctx, playerID)
	log := telemetry.LogWithTrace(ctx, logger.FromContext(ctx)).With(logger.AttrKeyAction, action)
	start := time.Now()

	unlock := s.locks.Lock(playerID)
	defer unlock()

	events, err := s.attempt(ctx, loadPlayer, playerID, fn)
	if err != nil && !domain.IsDomainError(err) && ctx.Err() == nil {
		metrics.ActionRetries.WithLabelValues(action).Inc()
		log.Warn(LogMsgActionRetry, "error", err)
		events, err = s.attempt(ctx, loadPlayer, playerID, fn)
	}

	metrics.ActionDuration.WithLabelValues(action).Observe(time.Since(start).Seconds())

	switch {
	case err == nil:
		metrics.ActionsTotal.WithLabelValues(action, metrics.OutcomeOK).Inc()
		log.Info(LogMsgActionCompleted)
	case domain.IsRejection(err):
		metrics.ActionsTotal.WithLabelValues(action, metrics.OutcomeRejected).Inc()
		span.SetAttributes(attribute.String("game.rejection", err.Error()))
		log.Debug(LogMsgActionRejected, "reason", err)
		return err
	case errors.Is(err, domain.ErrInvariantViolation):
		metrics.ActionsTotal.WithLabelValues(action, metrics.OutcomeError).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error(LogMsgInvariantViolated, "error", err)
		return err
	default:
		metrics.ActionsTotal.WithLabelValues(action, metrics.OutcomeError).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error(LogMsgActionFailed, "error", err)
		return fmt.Errorf("failed to %s: %w", action, err)
	}

	for _, evt := range events {
		if perr := s.bus.Publish(ctx, evt); perr != nil {
			log.Warn(LogMsgPublishFailed, "type", evt.Type, "error", perr)
		}
	}
	return nil
}

func (s *service) attempt(ctx context.Context, loadPlayer bool, playerID string, fn actionFunc) ([]event.Event, error) {
	tx, err := s.store.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	u := &unit{ctx: ctx, tx: tx, now: s.clock.Now(), rnd: s.rng()}
	if loadPlayer {
		p, err := tx.GetPlayerForUpdate(ctx, playerID)
		if err != nil {
			return nil, err
		}
		u.player = p
	}

	if err := fn(u); err != nil {
		return nil, err
	}

	if u.player != nil {
		if err := economy.CheckInvariants(u.player); err != nil {
			return nil, err
		}
		if loadPlayer {
			if err := tx.UpdatePlayer(ctx, u.player); err != nil {
				return nil, fmt.Errorf("failed to save player: %w", err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return u.events, nil
}
