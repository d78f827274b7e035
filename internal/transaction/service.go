package transaction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error)
	ListTransactions(ctx context.Context, filter ListFilter) ([]*Transaction, error)
	DeleteTransaction(ctx context.Context, id uuid.UUID) error

	BeginImport(ctx context.Context, minDate, maxDate time.Time) (ImportTx, error)
}

type ImportTx interface {
	FindDuplicates(ctx context.Context, params []RecordParams) ([]*Transaction, error)
	CreateTransactions(ctx context.Context, txs []*Transaction) error
	Commit() error
	Rollback() error
}

// GoalApplier receives income amounts as they are recorded, so the savings
// goal stays in step with the transaction history. Each recorded income is
// applied exactly once; any gap is healed by goal reconciliation.
type GoalApplier interface {
	ApplyIncome(ctx context.Context, amount int64) error
}

type Service struct {
	repo  Repository
	goals GoalApplier
}

func NewService(repo Repository, goals GoalApplier) *Service {
	return &Service{repo: repo, goals: goals}
}

type RecordParams struct {
	Amount   int64
	Type     Type
	Category string
	Memo     string
	Date     time.Time
}

func (p RecordParams) validate() error {
	if p.Amount <= 0 {
		return ErrInvalidAmount
	}

	if strings.TrimSpace(p.Category) == "" {
		return ErrMissingCategory
	}

	if p.Date.IsZero() {
		return ErrMissingDate
	}

	return nil
}

type ListFilter struct {
	Type      *Type
	StartDate *time.Time
	EndDate   *time.Time
}

// Record validates and stores a single transaction. Income transactions are
// additionally applied to the savings goal after a successful insert.
func (s *Service) Record(ctx context.Context, params RecordParams) (*Transaction, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	tx := &Transaction{
		Amount:   params.Amount,
		Type:     params.Type,
		Category: strings.TrimSpace(params.Category),
		Memo:     params.Memo,
		Date:     params.Date,
	}
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	if tx.Type == TypeIncome {
		if err := s.goals.ApplyIncome(ctx, tx.Amount); err != nil {
			return nil, fmt.Errorf("applying income to goal: %w", err)
		}
	}

	return tx, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, filter)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteTransaction(ctx, id)
}

type ImportResult struct {
	Imported  []*Transaction
	New       []RecordParams
	Conflicts []Conflict
}

type Conflict struct {
	Incoming RecordParams
	Existing *Transaction
}

// ImportBatch stores a batch of parsed statement rows, skipping nothing
// silently: rows that look like already-stored transactions are returned as
// conflicts for the caller to confirm via ConfirmBatch.
func (s *Service) ImportBatch(ctx context.Context, params []RecordParams) (*ImportResult, error) {
	if len(params) == 0 {
		return &ImportResult{}, nil
	}

	if err := validateBatch(params); err != nil {
		return nil, err
	}

	minDate, maxDate := dateRange(params)

	itx, err := s.repo.BeginImport(ctx, minDate, maxDate)
	if err != nil {
		return nil, fmt.Errorf("begin import: %w", err)
	}
	defer itx.Rollback()

	duplicates, err := itx.FindDuplicates(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("find duplicates: %w", err)
	}

	lookup := make(map[dupKey]*Transaction, len(duplicates))
	for _, d := range duplicates {
		lookup[keyOfTransaction(d)] = d
	}

	var newParams []RecordParams

	var conflicts []Conflict

	for _, p := range params {
		existing, found := lookup[keyOfParams(p)]
		if found {
			conflicts = append(conflicts, Conflict{Incoming: p, Existing: existing})
			continue
		}

		newParams = append(newParams, p)
	}

	if len(conflicts) > 0 {
		return &ImportResult{New: newParams, Conflicts: conflicts}, nil
	}

	txs, err := s.commitBatch(ctx, itx, newParams)
	if err != nil {
		return nil, err
	}

	return &ImportResult{Imported: txs}, nil
}

// ConfirmBatch stores a batch without duplicate detection. Used after the
// caller has reviewed the conflicts reported by ImportBatch.
func (s *Service) ConfirmBatch(ctx context.Context, params []RecordParams) ([]*Transaction, error) {
	if len(params) == 0 {
		return nil, nil
	}

	if err := validateBatch(params); err != nil {
		return nil, err
	}

	minDate, maxDate := dateRange(params)

	itx, err := s.repo.BeginImport(ctx, minDate, maxDate)
	if err != nil {
		return nil, fmt.Errorf("begin import: %w", err)
	}
	defer itx.Rollback()

	return s.commitBatch(ctx, itx, params)
}

func (s *Service) commitBatch(ctx context.Context, itx ImportTx, params []RecordParams) ([]*Transaction, error) {
	txs := paramsToTransactions(params)
	if err := itx.CreateTransactions(ctx, txs); err != nil {
		return nil, fmt.Errorf("create transactions: %w", err)
	}

	if err := itx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}

	var incomeTotal int64

	for _, tx := range txs {
		if tx.Type == TypeIncome {
			incomeTotal += tx.Amount
		}
	}

	if incomeTotal > 0 {
		if err := s.goals.ApplyIncome(ctx, incomeTotal); err != nil {
			return nil, fmt.Errorf("applying imported income to goal: %w", err)
		}
	}

	return txs, nil
}

type dupKey struct {
	Date   string
	Amount int64
	Type   Type
	Memo   string
}

func keyOfParams(p RecordParams) dupKey {
	return dupKey{
		Date:   p.Date.Format(time.DateOnly),
		Amount: p.Amount,
		Type:   p.Type,
		Memo:   p.Memo,
	}
}

func keyOfTransaction(tx *Transaction) dupKey {
	return dupKey{
		Date:   tx.Date.Format(time.DateOnly),
		Amount: tx.Amount,
		Type:   tx.Type,
		Memo:   tx.Memo,
	}
}

// validateBatch applies the single-record rules to every row. The wrap
// keeps the sentinels matchable with errors.Is.
func validateBatch(params []RecordParams) error {
	for i, p := range params {
		if err := p.validate(); err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	return nil
}

func dateRange(params []RecordParams) (time.Time, time.Time) {
	minDate := params[0].Date
	maxDate := params[0].Date

	for _, p := range params[1:] {
		if p.Date.Before(minDate) {
			minDate = p.Date
		}

		if p.Date.After(maxDate) {
			maxDate = p.Date
		}
	}

	return minDate, maxDate
}

func paramsToTransactions(params []RecordParams) []*Transaction {
	txs := make([]*Transaction, len(params))
	for i, p := range params {
		txs[i] = &Transaction{
			Amount:   p.Amount,
			Type:     p.Type,
			Category: p.Category,
			Memo:     p.Memo,
			Date:     p.Date,
		}
	}

	return txs
}
