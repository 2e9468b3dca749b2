package reportservice

import (
	"context"
	"testing"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestTotalBalance(t *testing.T) {
	testCases := []struct {
		name       string
		buildStubs func(repo *MockRepo)
		want       string
		wantErr    error
	}{
		{
			name: "OK",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Sum(gomock.Any()).Times(1).Return(decimal.RequireFromString("1050.75"), nil)
			},
			want: "1050.75",
		},
		{
			name: "NoAccounts",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Sum(gomock.Any()).Times(1).Return(decimal.Zero, nil)
			},
			want: "0.00",
		},
		{
			name: "RepoErr",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Sum(gomock.Any()).Times(1).Return(decimal.Zero, errorspkg.ErrOperationFailed)
			},
			wantErr: errorspkg.ErrOperationFailed,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			tc.buildStubs(repo)

			got, err := New(repo).TotalBalance(context.Background())
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.want, got.StringFixed(2))
		})
	}
}

func TestAccountCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	repo.EXPECT().Count(gomock.Any()).Times(1).Return(int64(4), nil)

	got, err := New(repo).AccountCount(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 4, got)
}

func TestMinimumBalanceAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	want := domain.Account{ID: "CHK-1", Variant: domain.Checking, Balance: decimal.RequireFromString("-5")}

	repo := NewMockRepo(ctrl)
	gomock.InOrder(
		repo.EXPECT().MinBalance(gomock.Any()).Times(1).Return(want, nil),
		repo.EXPECT().MinBalance(gomock.Any()).Times(1).Return(domain.Account{}, domain.ErrAccountNotFound),
	)

	s := New(repo)

	got, err := s.MinimumBalanceAccount(context.Background())
	require.NoError(t, err)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MinimumBalanceAccount() returned unexpected diff: %s", diff)
	}

	_, err = s.MinimumBalanceAccount(context.Background())
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestAccountsByBalanceAscending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	want := []domain.Account{
		{ID: "CHK-1", Variant: domain.Checking, Balance: decimal.RequireFromString("-5")},
		{ID: "SAV-1", Variant: domain.Savings, Balance: decimal.RequireFromString("20")},
	}

	repo := NewMockRepo(ctrl)
	repo.EXPECT().ListByBalance(gomock.Any()).Times(1).Return(want, nil)

	got, err := New(repo).AccountsByBalanceAscending(context.Background())
	require.NoError(t, err)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AccountsByBalanceAscending() returned unexpected diff: %s", diff)
	}
}
