package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/greenpatch/sprout/internal/catalog"
	"github.com/greenpatch/sprout/internal/domain"
	"github.com/greenpatch/sprout/internal/logger"
	"github.com/greenpatch/sprout/internal/metrics"
	"github.com/greenpatch/sprout/internal/repository"
	"github.com/greenpatch/sprout/internal/save"
)

// Service defines the farm session business logic
type Service interface {
	// GetOrCreateSave loads and normalizes a user's save, creating a
	// default one on first contact. The bool reports whether a new
	// save was created.
	GetOrCreateSave(ctx context.Context, userID string) (*domain.SaveState, bool, error)
	// ApplyAction runs one player action against the user's save and
	// persists the result. Rejected actions are returned without
	// persisting.
	ApplyAction(ctx context.Context, userID string, params domain.ActionParams) (*domain.ActionResult, error)
}

type service struct {
	saves repository.Save
	now   func() time.Time
}

// NewService creates a new game service
func NewService(saves repository.Save) Service {
	return &service{saves: saves, now: time.Now}
}

// GetOrCreateSave loads and normalizes a user's save, creating a default
// one for first-time players.
func (s *service) GetOrCreateSave(ctx context.Context, userID string) (*domain.SaveState, bool, error) {
	log := logger.FromContext(ctx)

	state, err := s.loadNormalized(ctx, userID)
	if err == nil {
		return state, false, nil
	}
	if !errors.Is(err, domain.ErrSaveNotFound) {
		return nil, false, err
	}

	state = save.DefaultSave()
	if err := s.saves.Create(ctx, userID, state); err != nil {
		return nil, false, fmt.Errorf("failed to create save: %w", err)
	}
	metrics.SavesCreated.Inc()
	log.Info("Created new save", "user_id", userID)
	return state, true, nil
}

// ApplyAction runs the full session pipeline for one action: load,
// normalize, apply, persist, respond. A rejection short-circuits before
// the persist step so the stored save is never touched.
func (s *service) ApplyAction(ctx context.Context, userID string, params domain.ActionParams) (*domain.ActionResult, error) {
	log := logger.FromContext(ctx)

	state, err := s.loadNormalized(ctx, userID)
	if err != nil {
		return nil, err
	}
	before := snapshot(state)

	now := s.now()
	result, err := applyAction(state, params, now.UnixMilli())
	if err != nil {
		metrics.ActionsTotal.WithLabelValues(params.Action, metrics.OutcomeError).Inc()
		return nil, err
	}

	if result.Rejected {
		metrics.ActionsTotal.WithLabelValues(params.Action, metrics.OutcomeRejected).Inc()
		log.Info("Action rejected",
			"user_id", userID, "action", params.Action, "reason", string(result.Reason))
		return result, nil
	}

	if err := s.saves.Persist(ctx, userID, result.Save, now); err != nil {
		metrics.ActionsTotal.WithLabelValues(params.Action, metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("failed to persist save: %w", err)
	}

	metrics.ActionsTotal.WithLabelValues(params.Action, metrics.OutcomeOK).Inc()
	recordOutcome(params, before, result.Save)
	log.Info("Action applied", "user_id", userID, "action", params.Action)
	return result, nil
}

func (s *service) loadNormalized(ctx context.Context, userID string) (*domain.SaveState, error) {
	raw, err := s.saves.Load(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrSaveNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load save: %w", err)
	}
	return save.Normalize(raw)
}

// stateSnapshot holds the pre-action values needed to derive the
// business counters after a successful action.
type stateSnapshot struct {
	coins         int
	level         int
	totalEarned   int
	totalHarvests int
}

func snapshot(s *domain.SaveState) stateSnapshot {
	return stateSnapshot{
		coins:         s.Coins,
		level:         s.Level,
		totalEarned:   s.TotalEarned,
		totalHarvests: s.TotalHarvests,
	}
}

func recordOutcome(params domain.ActionParams, before stateSnapshot, after *domain.SaveState) {
	switch params.Action {
	case domain.ActionBuySeed:
		if c, ok := catalog.Get(params.CropID); ok {
			metrics.SeedsBought.WithLabelValues(c.ID).Inc()
		}
		metrics.CoinsSpent.Add(float64(before.coins - after.Coins))
	case domain.ActionBuyPlot:
		metrics.PlotsBought.Inc()
		metrics.CoinsSpent.Add(float64(before.coins - after.Coins))
	case domain.ActionHarvest:
		metrics.HarvestsTotal.Add(float64(after.TotalHarvests - before.totalHarvests))
		metrics.CoinsEarned.Add(float64(after.TotalEarned - before.totalEarned))
		if gained := after.Level - before.level; gained > 0 {
			metrics.LevelUps.Add(float64(gained))
		}
	}
}
