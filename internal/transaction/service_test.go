package transaction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/akiramoriyama0316-alt/money-tracker/internal/transaction"
)

func TestService_Record(t *testing.T) {
	type args struct {
		params transaction.RecordParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(repo *transaction.MockRepository, goals *transaction.MockGoalApplier)
		wantErr   error
	}

	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []testCase{
		{
			name: "ExpenseDoesNotTouchGoal",
			args: args{
				params: transaction.RecordParams{
					Amount:   1500,
					Type:     transaction.TypeExpense,
					Category: "groceries",
					Memo:     "weekly shop",
					Date:     date,
				},
			},
			setupMock: func(repo *transaction.MockRepository, goals *transaction.MockGoalApplier) {
				repo.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
						tx.ID = uuid.New()
						tx.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name: "IncomeAppliedToGoalOnce",
			args: args{
				params: transaction.RecordParams{
					Amount:   250000,
					Type:     transaction.TypeIncome,
					Category: "salary",
					Date:     date,
				},
			},
			setupMock: func(repo *transaction.MockRepository, goals *transaction.MockGoalApplier) {
				repo.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
						tx.ID = uuid.New()
						return nil
					})
				goals.EXPECT().
					ApplyIncome(gomock.Any(), int64(250000)).
					Return(nil).
					Times(1)
			},
		},
		{
			name: "ZeroAmount",
			args: args{
				params: transaction.RecordParams{
					Amount:   0,
					Type:     transaction.TypeExpense,
					Category: "groceries",
					Date:     date,
				},
			},
			wantErr: transaction.ErrInvalidAmount,
		},
		{
			name: "NegativeAmount",
			args: args{
				params: transaction.RecordParams{
					Amount:   -100,
					Type:     transaction.TypeExpense,
					Category: "groceries",
					Date:     date,
				},
			},
			wantErr: transaction.ErrInvalidAmount,
		},
		{
			name: "BlankCategory",
			args: args{
				params: transaction.RecordParams{
					Amount:   100,
					Type:     transaction.TypeExpense,
					Category: "   ",
					Date:     date,
				},
			},
			wantErr: transaction.ErrMissingCategory,
		},
		{
			name: "MissingDate",
			args: args{
				params: transaction.RecordParams{
					Amount:   100,
					Type:     transaction.TypeExpense,
					Category: "groceries",
				},
			},
			wantErr: transaction.ErrMissingDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			goals := transaction.NewMockGoalApplier(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo, goals)
			}

			svc := transaction.NewService(repo, goals)
			got, err := svc.Record(context.Background(), tt.args.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, got)
		})
	}
}

func TestService_Record_GoalFailureSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	goals := transaction.NewMockGoalApplier(ctrl)

	repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		Return(nil)
	goals.EXPECT().
		ApplyIncome(gomock.Any(), int64(500)).
		Return(errors.New("db error"))

	svc := transaction.NewService(repo, goals)
	got, err := svc.Record(context.Background(), transaction.RecordParams{
		Amount:   500,
		Type:     transaction.TypeIncome,
		Category: "salary",
		Date:     time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	})

	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestService_List(t *testing.T) {
	type args struct {
		filter transaction.ListFilter
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *transaction.MockRepository)
		wantLen   int
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{filter: transaction.ListFilter{}},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					ListTransactions(gomock.Any(), transaction.ListFilter{}).
					Return([]*transaction.Transaction{
						{ID: uuid.New()},
						{ID: uuid.New()},
					}, nil)
			},
			wantLen: 2,
			wantErr: false,
		},
		{
			name: "Error",
			args: args{filter: transaction.ListFilter{}},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					ListTransactions(gomock.Any(), transaction.ListFilter{}).
					Return(nil, errors.New("list error"))
			},
			wantLen: 0,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := transaction.NewService(repo, transaction.NewMockGoalApplier(ctrl))
			got, err := svc.List(context.Background(), tt.args.filter)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestService_ImportBatch_NoConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	goals := transaction.NewMockGoalApplier(ctrl)
	itx := transaction.NewMockImportTx(ctrl)
	svc := transaction.NewService(repo, goals)

	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	params := []transaction.RecordParams{
		{
			Amount:   1000,
			Type:     transaction.TypeExpense,
			Category: "dining",
			Memo:     "COFFEE SHOP",
			Date:     date,
		},
	}

	repo.EXPECT().BeginImport(gomock.Any(), date, date).Return(itx, nil)
	itx.EXPECT().FindDuplicates(gomock.Any(), params).Return(nil, nil)
	itx.EXPECT().CreateTransactions(gomock.Any(), gomock.Any()).Return(nil)
	itx.EXPECT().Commit().Return(nil)
	itx.EXPECT().Rollback().Return(nil)

	result, err := svc.ImportBatch(context.Background(), params)
	require.NoError(t, err)
	assert.Len(t, result.Imported, 1)
	assert.Empty(t, result.Conflicts)
	assert.Empty(t, result.New)
}

func TestService_ImportBatch_WithConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	goals := transaction.NewMockGoalApplier(ctrl)
	itx := transaction.NewMockImportTx(ctrl)
	svc := transaction.NewService(repo, goals)

	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	params := []transaction.RecordParams{
		{
			Amount:   1000,
			Type:     transaction.TypeExpense,
			Category: "dining",
			Memo:     "COFFEE SHOP",
			Date:     date,
		},
		{
			Amount:   2000,
			Type:     transaction.TypeExpense,
			Category: "dining",
			Memo:     "LUNCH PLACE",
			Date:     date,
		},
	}

	existing := &transaction.Transaction{
		ID:     uuid.New(),
		Amount: 1000,
		Type:   transaction.TypeExpense,
		Memo:   "COFFEE SHOP",
		Date:   date,
	}

	repo.EXPECT().BeginImport(gomock.Any(), date, date).Return(itx, nil)
	itx.EXPECT().FindDuplicates(gomock.Any(), params).Return([]*transaction.Transaction{existing}, nil)
	itx.EXPECT().Rollback().Return(nil)

	result, err := svc.ImportBatch(context.Background(), params)
	require.NoError(t, err)
	assert.Empty(t, result.Imported)
	assert.Len(t, result.New, 1)
	assert.Len(t, result.Conflicts, 1)
	assert.Equal(t, params[0], result.Conflicts[0].Incoming)
	assert.Equal(t, existing, result.Conflicts[0].Existing)
}

func TestService_ImportBatch_IncomeAppliedAsOneIncrement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	goals := transaction.NewMockGoalApplier(ctrl)
	itx := transaction.NewMockImportTx(ctrl)
	svc := transaction.NewService(repo, goals)

	jan := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	params := []transaction.RecordParams{
		{Amount: 100000, Type: transaction.TypeIncome, Category: "salary", Date: jan},
		{Amount: 50000, Type: transaction.TypeIncome, Category: "bonus", Date: feb},
		{Amount: 2000, Type: transaction.TypeExpense, Category: "dining", Date: feb},
	}

	repo.EXPECT().BeginImport(gomock.Any(), jan, feb).Return(itx, nil)
	itx.EXPECT().FindDuplicates(gomock.Any(), params).Return(nil, nil)
	itx.EXPECT().CreateTransactions(gomock.Any(), gomock.Any()).Return(nil)
	itx.EXPECT().Commit().Return(nil)
	itx.EXPECT().Rollback().Return(nil)
	goals.EXPECT().ApplyIncome(gomock.Any(), int64(150000)).Return(nil).Times(1)

	result, err := svc.ImportBatch(context.Background(), params)
	require.NoError(t, err)
	assert.Len(t, result.Imported, 3)
}

func TestService_ImportBatch_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	svc := transaction.NewService(repo, transaction.NewMockGoalApplier(ctrl))

	result, err := svc.ImportBatch(context.Background(), []transaction.RecordParams{})
	require.NoError(t, err)
	assert.Empty(t, result.Imported)
	assert.Empty(t, result.Conflicts)
	assert.Empty(t, result.New)
}

func TestService_ConfirmBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	goals := transaction.NewMockGoalApplier(ctrl)
	itx := transaction.NewMockImportTx(ctrl)
	svc := transaction.NewService(repo, goals)

	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	params := []transaction.RecordParams{
		{
			Amount:   1000,
			Type:     transaction.TypeExpense,
			Category: "dining",
			Memo:     "COFFEE SHOP",
			Date:     date,
		},
	}

	repo.EXPECT().BeginImport(gomock.Any(), date, date).Return(itx, nil)
	itx.EXPECT().CreateTransactions(gomock.Any(), gomock.Any()).Return(nil)
	itx.EXPECT().Commit().Return(nil)
	itx.EXPECT().Rollback().Return(nil)

	txs, err := svc.ConfirmBatch(context.Background(), params)
	require.NoError(t, err)
	assert.Len(t, txs, 1)
	assert.Equal(t, int64(1000), txs[0].Amount)
	assert.Equal(t, transaction.TypeExpense, txs[0].Type)
}

func TestService_ConfirmBatch_ValidatesRows(t *testing.T) {
	type testCase struct {
		name    string
		params  []transaction.RecordParams
		wantErr error
	}

	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []testCase{
		{
			name: "NegativeAmount",
			params: []transaction.RecordParams{
				{Amount: -500, Type: transaction.TypeExpense, Category: "dining", Date: date},
			},
			wantErr: transaction.ErrInvalidAmount,
		},
		{
			name: "EmptyCategory",
			params: []transaction.RecordParams{
				{Amount: 500, Type: transaction.TypeExpense, Category: "", Date: date},
			},
			wantErr: transaction.ErrMissingCategory,
		},
		{
			name: "BadRowAmongGoodOnes",
			params: []transaction.RecordParams{
				{Amount: 500, Type: transaction.TypeExpense, Category: "dining", Date: date},
				{Amount: 700, Type: transaction.TypeExpense, Category: "dining"},
			},
			wantErr: transaction.ErrMissingDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// No repository calls expected: rejection happens before the
			// import transaction is opened.
			repo := transaction.NewMockRepository(ctrl)
			svc := transaction.NewService(repo, transaction.NewMockGoalApplier(ctrl))

			txs, err := svc.ConfirmBatch(context.Background(), tt.params)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, txs)
		})
	}
}

func TestService_ImportBatch_ValidatesRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	svc := transaction.NewService(repo, transaction.NewMockGoalApplier(ctrl))

	params := []transaction.RecordParams{
		{
			Amount:   -500,
			Type:     transaction.TypeExpense,
			Category: "dining",
			Date:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	result, err := svc.ImportBatch(context.Background(), params)
	assert.ErrorIs(t, err, transaction.ErrInvalidAmount)
	assert.Nil(t, result)
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	svc := transaction.NewService(repo, transaction.NewMockGoalApplier(ctrl))

	id := uuid.New()
	repo.EXPECT().DeleteTransaction(gomock.Any(), id).Return(transaction.ErrNotFound)

	err := svc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, transaction.ErrNotFound)
}
