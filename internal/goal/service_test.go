package goal_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/akiramoriyama0316-alt/money-tracker/internal/goal"
)

const defaultTarget = int64(100000000)

func TestService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := goal.NewMockRepository(ctrl)
	svc := goal.NewService(repo, defaultTarget)

	want := &goal.Goal{Key: goal.DefaultKey, TargetAmount: defaultTarget}
	repo.EXPECT().
		GetOrCreateGoal(gomock.Any(), goal.DefaultKey, defaultTarget).
		Return(want, nil)

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestService_UpdateSettings(t *testing.T) {
	type testCase struct {
		name      string
		params    goal.SettingsParams
		setupMock func(m *goal.MockRepository)
		wantErr   error
	}

	targetDate := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []testCase{
		{
			name:   "Success",
			params: goal.SettingsParams{TargetAmount: 500000, TargetDate: &targetDate},
			setupMock: func(m *goal.MockRepository) {
				m.EXPECT().
					GetOrCreateGoal(gomock.Any(), goal.DefaultKey, defaultTarget).
					Return(&goal.Goal{Key: goal.DefaultKey}, nil)
				m.EXPECT().
					UpdateSettings(gomock.Any(), goal.DefaultKey, int64(500000), &targetDate).
					Return(&goal.Goal{Key: goal.DefaultKey, TargetAmount: 500000, TargetDate: &targetDate}, nil)
			},
		},
		{
			name:   "ClearTargetDate",
			params: goal.SettingsParams{TargetAmount: 500000},
			setupMock: func(m *goal.MockRepository) {
				m.EXPECT().
					GetOrCreateGoal(gomock.Any(), goal.DefaultKey, defaultTarget).
					Return(&goal.Goal{Key: goal.DefaultKey}, nil)
				m.EXPECT().
					UpdateSettings(gomock.Any(), goal.DefaultKey, int64(500000), nil).
					Return(&goal.Goal{Key: goal.DefaultKey, TargetAmount: 500000}, nil)
			},
		},
		{
			name:    "ZeroTarget",
			params:  goal.SettingsParams{TargetAmount: 0},
			wantErr: goal.ErrInvalidTarget,
		},
		{
			name:    "NegativeTarget",
			params:  goal.SettingsParams{TargetAmount: -1},
			wantErr: goal.ErrInvalidTarget,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := goal.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := goal.NewService(repo, defaultTarget)
			got, err := svc.UpdateSettings(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.params.TargetAmount, got.TargetAmount)
		})
	}
}

func TestService_ApplyIncome(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := goal.NewMockRepository(ctrl)
		repo.EXPECT().
			GetOrCreateGoal(gomock.Any(), goal.DefaultKey, defaultTarget).
			Return(&goal.Goal{Key: goal.DefaultKey}, nil)
		repo.EXPECT().
			IncrementCurrentAmount(gomock.Any(), goal.DefaultKey, int64(2500)).
			Return(nil)

		svc := goal.NewService(repo, defaultTarget)
		assert.NoError(t, svc.ApplyIncome(context.Background(), 2500))
	})

	t.Run("RejectsNonPositive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := goal.NewService(goal.NewMockRepository(ctrl), defaultTarget)
		assert.ErrorIs(t, svc.ApplyIncome(context.Background(), 0), goal.ErrInvalidAmount)
		assert.ErrorIs(t, svc.ApplyIncome(context.Background(), -100), goal.ErrInvalidAmount)
	})
}

func TestService_Reset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := goal.NewMockRepository(ctrl)
	repo.EXPECT().
		GetOrCreateGoal(gomock.Any(), goal.DefaultKey, defaultTarget).
		Return(&goal.Goal{Key: goal.DefaultKey, CurrentAmount: 5000}, nil)
	repo.EXPECT().
		ResetCurrentAmount(gomock.Any(), goal.DefaultKey).
		Return(&goal.Goal{Key: goal.DefaultKey, CurrentAmount: 0, ResetAt: time.Now()}, nil)

	svc := goal.NewService(repo, defaultTarget)
	got, err := svc.Reset(context.Background())
	require.NoError(t, err)
	assert.Zero(t, got.CurrentAmount)
}

func TestService_Reconcile(t *testing.T) {
	resetAt := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("NoDrift", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := goal.NewMockRepository(ctrl)
		repo.EXPECT().
			GetOrCreateGoal(gomock.Any(), goal.DefaultKey, defaultTarget).
			Return(&goal.Goal{Key: goal.DefaultKey, CurrentAmount: 30000, ResetAt: resetAt}, nil)
		repo.EXPECT().
			IncomeSince(gomock.Any(), resetAt).
			Return(int64(30000), nil)

		svc := goal.NewService(repo, defaultTarget)
		result, err := svc.Reconcile(context.Background())
		require.NoError(t, err)
		assert.Zero(t, result.Drift)
		assert.Equal(t, int64(30000), result.Recorded)
		assert.Equal(t, int64(30000), result.Actual)
	})

	t.Run("DriftCorrected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := goal.NewMockRepository(ctrl)
		repo.EXPECT().
			GetOrCreateGoal(gomock.Any(), goal.DefaultKey, defaultTarget).
			Return(&goal.Goal{Key: goal.DefaultKey, CurrentAmount: 45000, ResetAt: resetAt}, nil)
		repo.EXPECT().
			IncomeSince(gomock.Any(), resetAt).
			Return(int64(30000), nil)
		repo.EXPECT().
			SetCurrentAmount(gomock.Any(), goal.DefaultKey, int64(30000)).
			Return(&goal.Goal{Key: goal.DefaultKey, CurrentAmount: 30000, ResetAt: resetAt}, nil)

		svc := goal.NewService(repo, defaultTarget)
		result, err := svc.Reconcile(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(15000), result.Drift)
		assert.Equal(t, int64(30000), result.Goal.CurrentAmount)
	})

	t.Run("SumError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := goal.NewMockRepository(ctrl)
		repo.EXPECT().
			GetOrCreateGoal(gomock.Any(), goal.DefaultKey, defaultTarget).
			Return(&goal.Goal{Key: goal.DefaultKey, ResetAt: resetAt}, nil)
		repo.EXPECT().
			IncomeSince(gomock.Any(), resetAt).
			Return(int64(0), errors.New("db error"))

		svc := goal.NewService(repo, defaultTarget)
		result, err := svc.Reconcile(context.Background())
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}
