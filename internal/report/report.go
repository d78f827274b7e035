// Package report computes derived summaries from transaction histories.
// Everything here is pure: no I/O, no shared state, safe to re-run on every
// change notification.
package report

import (
	"sort"
	"time"

	"github.com/akiramoriyama0316-alt/money-tracker/internal/transaction"
)

// TrendMonths is how many of the most recent months the trend keeps.
const TrendMonths = 6

// CategoryTotal is the summed expense amount for one category label.
type CategoryTotal struct {
	Category string
	Amount   int64
}

// MonthlyTotal holds the income and expense sums for one calendar month.
// Month is a fixed-width "YYYY-MM" key, so lexicographic order is
// chronological order.
type MonthlyTotal struct {
	Month   string
	Income  int64
	Expense int64
}

// CategoryTotals groups expense transactions by exact category label and
// returns the per-category sums, largest first. Ties keep encounter order.
func CategoryTotals(txs []*transaction.Transaction) []CategoryTotal {
	sums := make(map[string]int64)

	var order []string

	for _, tx := range txs {
		if tx.Type != transaction.TypeExpense {
			continue
		}

		if _, seen := sums[tx.Category]; !seen {
			order = append(order, tx.Category)
		}

		sums[tx.Category] += tx.Amount
	}

	totals := make([]CategoryTotal, 0, len(order))
	for _, category := range order {
		totals = append(totals, CategoryTotal{Category: category, Amount: sums[category]})
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Amount > totals[j].Amount
	})

	return totals
}

// MonthKey derives the "YYYY-MM" grouping key from a transaction date.
func MonthKey(date time.Time) string {
	return date.Format("2006-01")
}

// MonthlyTotals accumulates per-month income and expense sums and returns
// the most recent entries in chronological order, at most TrendMonths of
// them. Months with only one side of activity still carry both fields.
func MonthlyTotals(txs []*transaction.Transaction) []MonthlyTotal {
	byMonth := make(map[string]*MonthlyTotal)

	for _, tx := range txs {
		key := MonthKey(tx.Date)

		entry, ok := byMonth[key]
		if !ok {
			entry = &MonthlyTotal{Month: key}
			byMonth[key] = entry
		}

		switch tx.Type {
		case transaction.TypeIncome:
			entry.Income += tx.Amount
		case transaction.TypeExpense:
			entry.Expense += tx.Amount
		}
	}

	totals := make([]MonthlyTotal, 0, len(byMonth))
	for _, entry := range byMonth {
		totals = append(totals, *entry)
	}

	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Month < totals[j].Month
	})

	if len(totals) > TrendMonths {
		totals = totals[len(totals)-TrendMonths:]
	}

	return totals
}

// Totals returns the income and expense sums over the whole input in a
// single pass.
func Totals(txs []*transaction.Transaction) (income, expense int64) {
	for _, tx := range txs {
		switch tx.Type {
		case transaction.TypeIncome:
			income += tx.Amount
		case transaction.TypeExpense:
			expense += tx.Amount
		}
	}

	return income, expense
}

// SummarizeRange returns the income and expense sums for transactions dated
// within [start, end] inclusive. Used for the current-month dashboard
// figures, independent of the all-history trend.
func SummarizeRange(txs []*transaction.Transaction, start, end time.Time) (income, expense int64) {
	for _, tx := range txs {
		if tx.Date.Before(start) || tx.Date.After(end) {
			continue
		}

		switch tx.Type {
		case transaction.TypeIncome:
			income += tx.Amount
		case transaction.TypeExpense:
			expense += tx.Amount
		}
	}

	return income, expense
}
