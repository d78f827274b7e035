package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akiramoriyama0316-alt/money-tracker/internal/report"
	"github.com/akiramoriyama0316-alt/money-tracker/internal/transaction"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func expense(amount int64, category string, date time.Time) *transaction.Transaction {
	return &transaction.Transaction{
		Amount:   amount,
		Type:     transaction.TypeExpense,
		Category: category,
		Date:     date,
	}
}

func income(amount int64, date time.Time) *transaction.Transaction {
	return &transaction.Transaction{
		Amount:   amount,
		Type:     transaction.TypeIncome,
		Category: "salary",
		Date:     date,
	}
}

func TestCategoryTotals(t *testing.T) {
	date := day(2024, 3, 1)

	txs := []*transaction.Transaction{
		expense(1000, "dining", date),
		expense(5000, "rent", date),
		expense(2500, "dining", date),
		income(300000, date),
	}

	totals := report.CategoryTotals(txs)

	require.Len(t, totals, 2)
	assert.Equal(t, report.CategoryTotal{Category: "rent", Amount: 5000}, totals[0])
	assert.Equal(t, report.CategoryTotal{Category: "dining", Amount: 3500}, totals[1])
}

func TestCategoryTotals_SumMatchesExpenseTotal(t *testing.T) {
	date := day(2024, 3, 1)

	txs := []*transaction.Transaction{
		expense(1000, "dining", date),
		expense(5000, "rent", date),
		expense(2500, "dining", date),
		expense(700, "transport", date),
		income(300000, date),
	}

	var sum int64
	for _, ct := range report.CategoryTotals(txs) {
		sum += ct.Amount
	}

	_, wantExpense := report.Totals(txs)
	assert.Equal(t, wantExpense, sum)
}

func TestCategoryTotals_OrderNonIncreasing(t *testing.T) {
	date := day(2024, 3, 1)

	txs := []*transaction.Transaction{
		expense(300, "a", date),
		expense(900, "b", date),
		expense(900, "c", date),
		expense(100, "d", date),
	}

	totals := report.CategoryTotals(txs)

	require.Len(t, totals, 4)
	for i := 1; i < len(totals); i++ {
		assert.GreaterOrEqual(t, totals[i-1].Amount, totals[i].Amount)
	}

	// Equal amounts keep first-seen order.
	assert.Equal(t, "b", totals[0].Category)
	assert.Equal(t, "c", totals[1].Category)
}

func TestCategoryTotals_Empty(t *testing.T) {
	assert.Empty(t, report.CategoryTotals(nil))
	assert.Empty(t, report.CategoryTotals([]*transaction.Transaction{
		income(1000, day(2024, 1, 1)),
	}))
}

func TestMonthlyTotals(t *testing.T) {
	txs := []*transaction.Transaction{
		income(300000, day(2024, 1, 25)),
		expense(120000, "rent", day(2024, 1, 3)),
		expense(15000, "dining", day(2024, 1, 14)),
		income(300000, day(2024, 2, 25)),
		expense(120000, "rent", day(2024, 2, 3)),
	}

	totals := report.MonthlyTotals(txs)

	require.Len(t, totals, 2)
	assert.Equal(t, report.MonthlyTotal{Month: "2024-01", Income: 300000, Expense: 135000}, totals[0])
	assert.Equal(t, report.MonthlyTotal{Month: "2024-02", Income: 300000, Expense: 120000}, totals[1])
}

func TestMonthlyTotals_KeepsMostRecentSix(t *testing.T) {
	var txs []*transaction.Transaction
	for m := time.January; m <= time.September; m++ {
		txs = append(txs, expense(int64(m)*100, "misc", day(2024, m, 10)))
	}

	totals := report.MonthlyTotals(txs)

	require.Len(t, totals, report.TrendMonths)
	assert.Equal(t, "2024-04", totals[0].Month)
	assert.Equal(t, "2024-09", totals[len(totals)-1].Month)

	for i := 1; i < len(totals); i++ {
		assert.Less(t, totals[i-1].Month, totals[i].Month)
	}
}

func TestMonthlyTotals_OneSidedMonth(t *testing.T) {
	totals := report.MonthlyTotals([]*transaction.Transaction{
		income(5000, day(2024, 6, 1)),
	})

	require.Len(t, totals, 1)
	assert.Equal(t, int64(5000), totals[0].Income)
	assert.Zero(t, totals[0].Expense)
}

func TestMonthlyTotals_Empty(t *testing.T) {
	assert.Empty(t, report.MonthlyTotals(nil))
}

func TestTotals(t *testing.T) {
	txs := []*transaction.Transaction{
		income(300000, day(2024, 1, 25)),
		income(20000, day(2024, 2, 5)),
		expense(120000, "rent", day(2024, 1, 3)),
	}

	gotIncome, gotExpense := report.Totals(txs)
	assert.Equal(t, int64(320000), gotIncome)
	assert.Equal(t, int64(120000), gotExpense)
}

func TestSummarizeRange(t *testing.T) {
	txs := []*transaction.Transaction{
		income(100, day(2024, 2, 29)),      // before the window
		income(200, day(2024, 3, 1)),       // first day, inclusive
		expense(50, "x", day(2024, 3, 31)), // last day, inclusive
		expense(75, "x", day(2024, 4, 1)),  // after the window
	}

	gotIncome, gotExpense := report.SummarizeRange(txs, day(2024, 3, 1), day(2024, 3, 31))
	assert.Equal(t, int64(200), gotIncome)
	assert.Equal(t, int64(50), gotExpense)
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2024-01", report.MonthKey(day(2024, 1, 31)))
	assert.Equal(t, "2023-12", report.MonthKey(day(2023, 12, 1)))
}
