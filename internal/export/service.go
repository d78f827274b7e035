package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/akiramoriyama0316-alt/money-tracker/internal/transaction"
)

// Service writes transaction histories as CSV, the same layout the
// statement importer accepts, so an export can be re-imported elsewhere.
type Service struct {
	transactions *transaction.Service
}

func NewService(txService *transaction.Service) *Service {
	return &Service{transactions: txService}
}

var header = []string{"date", "type", "category", "memo", "amount"}

// WriteCSV streams transactions matching the filter to w and returns how
// many rows were written.
func (s *Service) WriteCSV(ctx context.Context, filter transaction.ListFilter, w io.Writer) (int, error) {
	txs, err := s.transactions.List(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("listing transactions: %w", err)
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return 0, fmt.Errorf("writing header: %w", err)
	}

	for _, tx := range txs {
		row := []string{
			tx.Date.Format(time.DateOnly),
			string(tx.Type),
			tx.Category,
			tx.Memo,
			formatAmount(tx.Amount),
		}
		if err := cw.Write(row); err != nil {
			return 0, fmt.Errorf("writing row for %s: %w", tx.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("flushing csv: %w", err)
	}

	return len(txs), nil
}

// formatAmount renders cents as a plain decimal string ("1234.56").
func formatAmount(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
