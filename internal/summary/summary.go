// Package summary assembles the dashboard overview: it computes period
// windows, fans out the required fetches, and feeds the results through the
// report aggregations. Recomputing an overview is idempotent, so change
// notifications can trigger it freely.
package summary

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/akiramoriyama0316-alt/money-tracker/internal/goal"
	"github.com/akiramoriyama0316-alt/money-tracker/internal/report"
	"github.com/akiramoriyama0316-alt/money-tracker/internal/transaction"
)

// recentLimit caps the recent-transactions section of the overview.
const recentLimit = 10

// Period selects the transaction window an overview covers.
type Period string

const (
	PeriodThisMonth Period = "this_month"
	PeriodLastMonth Period = "last_month"
	PeriodAll       Period = "all"
)

// PeriodRange returns the date bounds for a period relative to now. A nil
// bound means unbounded on that side: this month is open-ended, all is
// unbounded both ways. Last month runs from its first to its last day
// inclusive.
func PeriodRange(period Period, now time.Time) (from, to *time.Time) {
	switch period {
	case PeriodThisMonth:
		start := firstOfMonth(now)
		return &start, nil
	case PeriodLastMonth:
		// Step back from the first of the current month, not from now:
		// AddDate on a month-end date normalizes into the wrong month.
		start := firstOfMonth(now).AddDate(0, -1, 0)
		end := start.AddDate(0, 1, -1)

		return &start, &end
	}

	return nil, nil
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

//go:generate mockgen -source=summary.go -destination=source_mock.go -package=summary
type TransactionSource interface {
	List(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error)
}

type GoalSource interface {
	Get(ctx context.Context) (*goal.Goal, error)
}

// Overview is the full dashboard payload. Sections whose fetch failed are
// left at their zero value; formatting is the presentation layer's job.
type Overview struct {
	Period Period
	From   *time.Time
	To     *time.Time

	// Sums over the selected period window.
	Income  int64
	Expense int64

	// Current calendar month figures, independent of the selected window.
	MonthIncome  int64
	MonthExpense int64

	Categories []report.CategoryTotal
	Trend      []report.MonthlyTotal
	Recent     []*transaction.Transaction

	Goal       *goal.Goal
	GoalStatus *goal.Status
}

type Service struct {
	txs   TransactionSource
	goals GoalSource
	now   func() time.Time
}

func NewService(txs TransactionSource, goals GoalSource) *Service {
	return &Service{txs: txs, goals: goals, now: time.Now}
}

// Overview fetches the goal, the windowed transactions, and the full
// history concurrently, then aggregates. A failed fetch degrades its
// sections to empty rather than failing the whole overview; the caller can
// re-run at any time to recover.
func (s *Service) Overview(ctx context.Context, period Period) (*Overview, error) {
	now := s.now()
	from, to := PeriodRange(period, now)

	ov := &Overview{Period: period, From: from, To: to}

	var windowTxs, allTxs []*transaction.Transaction

	var g *goal.Goal

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		txs, err := s.txs.List(egCtx, transaction.ListFilter{StartDate: from, EndDate: to})
		if err != nil {
			slog.Error("fetching windowed transactions", "period", period, "error", err)
			return nil
		}

		windowTxs = txs

		return nil
	})

	eg.Go(func() error {
		txs, err := s.txs.List(egCtx, transaction.ListFilter{})
		if err != nil {
			slog.Error("fetching transaction history", "error", err)
			return nil
		}

		allTxs = txs

		return nil
	})

	eg.Go(func() error {
		fetched, err := s.goals.Get(egCtx)
		if err != nil {
			slog.Error("fetching goal", "error", err)
			return nil
		}

		g = fetched

		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	ov.Income, ov.Expense = report.Totals(windowTxs)
	ov.Categories = report.CategoryTotals(windowTxs)
	ov.Trend = report.MonthlyTotals(allTxs)

	// Bound by the end of the month, not now: transactions may carry dates
	// later in the current month and still belong to its figures.
	monthStart := firstOfMonth(now)
	monthEnd := monthStart.AddDate(0, 1, -1)
	ov.MonthIncome, ov.MonthExpense = report.SummarizeRange(allTxs, monthStart, monthEnd)

	ov.Recent = windowTxs
	if len(ov.Recent) > recentLimit {
		ov.Recent = ov.Recent[:recentLimit]
	}

	if g != nil {
		status := goal.Describe(g, now)
		ov.Goal = g
		ov.GoalStatus = &status
	}

	return ov, nil
}
