package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/akiramoriyama0316-alt/money-tracker/internal/goal"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectColumns = `id, key, target_amount, current_amount, target_date, reset_at, created_at, updated_at`

func scanGoal(s scanner) (*goal.Goal, error) {
	var g goal.Goal

	if err := s.Scan(
		&g.ID, &g.Key, &g.TargetAmount, &g.CurrentAmount, &g.TargetDate,
		&g.ResetAt, &g.CreatedAt, &g.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &g, nil
}

// GetOrCreateGoal inserts the keyed goal row if it does not exist, then
// returns it. The unique key makes the insert race-safe: concurrent first
// reads all converge on the same row.
func (s *Store) GetOrCreateGoal(ctx context.Context, key string, targetAmount int64) (*goal.Goal, error) {
	insert := `
		INSERT INTO goals (key, target_amount, current_amount, reset_at, created_at, updated_at)
		VALUES ($1, $2, 0, NOW(), NOW(), NOW())
		ON CONFLICT (key) DO NOTHING
	`

	if _, err := s.db.ExecContext(ctx, insert, key, targetAmount); err != nil {
		return nil, fmt.Errorf("creating goal: %w", err)
	}

	query := `SELECT ` + selectColumns + ` FROM goals WHERE key = $1`

	g, err := scanGoal(s.db.QueryRowContext(ctx, query, key))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, goal.ErrNotFound
		}

		return nil, fmt.Errorf("getting goal: %w", err)
	}

	return g, nil
}

func (s *Store) UpdateSettings(ctx context.Context, key string, targetAmount int64, targetDate *time.Time) (*goal.Goal, error) {
	query := `
		UPDATE goals
		SET target_amount = $1, target_date = $2, updated_at = NOW()
		WHERE key = $3
		RETURNING ` + selectColumns

	g, err := scanGoal(s.db.QueryRowContext(ctx, query, targetAmount, targetDate, key))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, goal.ErrNotFound
		}

		return nil, fmt.Errorf("updating goal settings: %w", err)
	}

	return g, nil
}

// IncrementCurrentAmount applies the increment inside the database, so two
// near-simultaneous income submissions both land instead of one overwriting
// the other.
func (s *Store) IncrementCurrentAmount(ctx context.Context, key string, amount int64) error {
	query := `
		UPDATE goals
		SET current_amount = current_amount + $1, updated_at = NOW()
		WHERE key = $2
	`

	res, err := s.db.ExecContext(ctx, query, amount, key)
	if err != nil {
		return fmt.Errorf("incrementing current amount: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("incrementing current amount: %w", err)
	}

	if affected == 0 {
		return goal.ErrNotFound
	}

	return nil
}

func (s *Store) ResetCurrentAmount(ctx context.Context, key string) (*goal.Goal, error) {
	query := `
		UPDATE goals
		SET current_amount = 0, reset_at = NOW(), updated_at = NOW()
		WHERE key = $1
		RETURNING ` + selectColumns

	g, err := scanGoal(s.db.QueryRowContext(ctx, query, key))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, goal.ErrNotFound
		}

		return nil, fmt.Errorf("resetting current amount: %w", err)
	}

	return g, nil
}

func (s *Store) SetCurrentAmount(ctx context.Context, key string, amount int64) (*goal.Goal, error) {
	query := `
		UPDATE goals
		SET current_amount = $1, updated_at = NOW()
		WHERE key = $2
		RETURNING ` + selectColumns

	g, err := scanGoal(s.db.QueryRowContext(ctx, query, amount, key))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, goal.ErrNotFound
		}

		return nil, fmt.Errorf("setting current amount: %w", err)
	}

	return g, nil
}

// IncomeSince recomputes the ground truth for the running current amount:
// the sum of undeleted income transactions recorded after the last reset.
func (s *Store) IncomeSince(ctx context.Context, since time.Time) (int64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE type = 'income' AND deleted_at IS NULL AND created_at > $1
	`

	var sum int64
	if err := s.db.QueryRowContext(ctx, query, since).Scan(&sum); err != nil {
		return 0, fmt.Errorf("summing income: %w", err)
	}

	return sum, nil
}
