package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	enc "github.com/akiramoriyama0316-alt/money-tracker/internal/encoding"
	"github.com/akiramoriyama0316-alt/money-tracker/internal/transaction"
)

// Parser reads bank statement CSV exports and produces transaction params.
// The column layout is auto-detected by matching header names against known
// profiles; header matching is case-insensitive.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// dateLayouts are tried in order when parsing date cells.
var dateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"02/01/2006",
	"2006/01/02",
}

func (p *Parser) Parse(r io.Reader) ([]transaction.RecordParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	rows, err := readRows(utf8r)
	if err != nil {
		return nil, err
	}

	profile, cols, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("no matching statement layout: expected date, description and amount (or debit/credit) columns")
	}

	return parseRows(profile, cols, rows[headerIdx+1:], headerIdx+1)
}

// readRows reads the whole file, trying semicolon separators first and
// falling back to commas when the result is single-column.
func readRows(r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read statement: %w", err)
	}

	for _, comma := range []rune{';', ','} {
		reader := csv.NewReader(strings.NewReader(string(data)))
		reader.Comma = comma
		reader.FieldsPerRecord = -1
		reader.LazyQuotes = true

		rows, err := reader.ReadAll()
		if err != nil {
			continue
		}

		if multiColumn(rows) {
			return rows, nil
		}
	}

	return nil, fmt.Errorf("read csv: no separator produced more than one column")
}

func multiColumn(rows [][]string) bool {
	for _, row := range rows {
		if len(row) > 1 {
			return true
		}
	}

	return false
}

// colIndex maps lowercased column names to their index in the row.
type colIndex map[string]int

// detectProfile scans rows for a header that matches a known profile.
// Returns the matched profile, column index map, and header row index.
func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows extracts transactions from the data rows following the header.
// Rows without a parseable date or amount are skipped (footers, balances),
// a missing description is an error.
func parseRows(p *Profile, cols colIndex, rows [][]string, headerRowNum int) ([]transaction.RecordParams, error) {
	dateIdx := cols[p.DateCol]
	descIdx := cols[p.DescCol]

	categoryIdx := -1
	if p.CategoryCol != "" {
		categoryIdx = cols[p.CategoryCol]
	}

	var params []transaction.RecordParams

	for i, row := range rows {
		rowNum := headerRowNum + i + 2 // 1-based, skipping header

		date, ok := parseDate(row, dateIdx)
		if !ok {
			continue
		}

		memo := cellValue(row, descIdx)
		if memo == "" {
			return nil, fmt.Errorf("row %d: missing description", rowNum)
		}

		amount, txType, ok := rowAmount(p, cols, row)
		if !ok {
			continue
		}

		params = append(params, transaction.RecordParams{
			Amount:   amount,
			Type:     txType,
			Category: cellValue(row, categoryIdx),
			Memo:     memo,
			Date:     date,
		})
	}

	return params, nil
}

func parseDate(row []string, idx int) (time.Time, bool) {
	s := cellValue(row, idx)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

func rowAmount(p *Profile, cols colIndex, row []string) (int64, transaction.Type, bool) {
	switch p.AmountMode {
	case amountSigned:
		return signedAmount(row, cols[p.AmountCol])
	case amountSplit:
		return splitAmount(row, cols[p.DebitCol], cols[p.CreditCol])
	}

	return 0, "", false
}

func signedAmount(row []string, idx int) (int64, transaction.Type, bool) {
	s := cellValue(row, idx)
	if s == "" {
		return 0, "", false
	}

	cents, err := parseAmount(s)
	if err != nil || cents == 0 {
		return 0, "", false
	}

	if cents < 0 {
		return -cents, transaction.TypeExpense, true
	}

	return cents, transaction.TypeIncome, true
}

func splitAmount(row []string, debitIdx, creditIdx int) (int64, transaction.Type, bool) {
	if s := cellValue(row, debitIdx); s != "" {
		cents, err := parseAmount(s)
		if err == nil && cents != 0 {
			return abs(cents), transaction.TypeExpense, true
		}
	}

	if s := cellValue(row, creditIdx); s != "" {
		cents, err := parseAmount(s)
		if err == nil && cents != 0 {
			return abs(cents), transaction.TypeIncome, true
		}
	}

	return 0, "", false
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}

	return n
}
