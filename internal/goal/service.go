package goal

import (
	"context"
	"fmt"
	"time"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=goal
type Repository interface {
	// GetOrCreateGoal returns the goal stored under key, creating it with
	// the given target amount and a zero current amount when absent.
	GetOrCreateGoal(ctx context.Context, key string, targetAmount int64) (*Goal, error)

	UpdateSettings(ctx context.Context, key string, targetAmount int64, targetDate *time.Time) (*Goal, error)

	// IncrementCurrentAmount adds amount to the stored current amount as a
	// single server-side update. Two concurrent increments must both land.
	IncrementCurrentAmount(ctx context.Context, key string, amount int64) error

	ResetCurrentAmount(ctx context.Context, key string) (*Goal, error)
	SetCurrentAmount(ctx context.Context, key string, amount int64) (*Goal, error)

	// IncomeSince returns the summed amount of undeleted income
	// transactions created after the given time.
	IncomeSince(ctx context.Context, since time.Time) (int64, error)
}

type Service struct {
	repo          Repository
	defaultTarget int64
}

func NewService(repo Repository, defaultTarget int64) *Service {
	return &Service{repo: repo, defaultTarget: defaultTarget}
}

// Get returns the singleton goal, creating it on first access.
func (s *Service) Get(ctx context.Context) (*Goal, error) {
	return s.repo.GetOrCreateGoal(ctx, DefaultKey, s.defaultTarget)
}

type SettingsParams struct {
	TargetAmount int64
	TargetDate   *time.Time
}

func (s *Service) UpdateSettings(ctx context.Context, params SettingsParams) (*Goal, error) {
	if params.TargetAmount <= 0 {
		return nil, ErrInvalidTarget
	}

	// Make sure the row exists before updating it.
	if _, err := s.Get(ctx); err != nil {
		return nil, err
	}

	return s.repo.UpdateSettings(ctx, DefaultKey, params.TargetAmount, params.TargetDate)
}

// ApplyIncome adds a recorded income amount to the goal's current amount.
// The increment happens in the store so concurrent submissions cannot lose
// an update.
func (s *Service) ApplyIncome(ctx context.Context, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	if _, err := s.Get(ctx); err != nil {
		return err
	}

	return s.repo.IncrementCurrentAmount(ctx, DefaultKey, amount)
}

// Reset zeroes the current amount and moves the reconciliation anchor to
// now. Resetting an already-zero goal is a no-op with the same outcome.
func (s *Service) Reset(ctx context.Context) (*Goal, error) {
	if _, err := s.Get(ctx); err != nil {
		return nil, err
	}

	return s.repo.ResetCurrentAmount(ctx, DefaultKey)
}

// ReconcileResult reports the outcome of a drift check between the stored
// current amount and the ground-truth income sum since the last reset.
type ReconcileResult struct {
	Goal     *Goal
	Recorded int64 // stored current amount before reconciling
	Actual   int64 // income sum recomputed from history
	Drift    int64 // Recorded - Actual, zero when in step
}

// Reconcile recomputes the income sum since the last reset and corrects the
// stored current amount when it has drifted. Safe to run at any time.
func (s *Service) Reconcile(ctx context.Context) (*ReconcileResult, error) {
	g, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	actual, err := s.repo.IncomeSince(ctx, g.ResetAt)
	if err != nil {
		return nil, fmt.Errorf("recomputing income sum: %w", err)
	}

	result := &ReconcileResult{
		Goal:     g,
		Recorded: g.CurrentAmount,
		Actual:   actual,
		Drift:    g.CurrentAmount - actual,
	}

	if result.Drift == 0 {
		return result, nil
	}

	corrected, err := s.repo.SetCurrentAmount(ctx, DefaultKey, actual)
	if err != nil {
		return nil, fmt.Errorf("correcting drift: %w", err)
	}

	result.Goal = corrected

	return result, nil
}
