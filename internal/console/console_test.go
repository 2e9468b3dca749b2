package console

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
	"github.com/go-petr/pet-ledger/pkg/passpkg"
)

const adminPassword = "s3cret"

var adminHash string

func TestMain(m *testing.M) {
	color.NoColor = true

	var err error

	adminHash, err = passpkg.Hash(adminPassword)
	if err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

type eqDecimalMatcher struct {
	want decimal.Decimal
}

func (e eqDecimalMatcher) Matches(x interface{}) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(e.want)
}

func (e eqDecimalMatcher) String() string {
	return fmt.Sprintf("is decimal equal to %v", e.want)
}

func eqDecimal(s string) gomock.Matcher {
	return eqDecimalMatcher{decimal.RequireFromString(s)}
}

func passwords(pw ...string) PasswordReader {
	return func() (string, error) {
		if len(pw) == 0 {
			return "", errors.New("no more passwords")
		}

		p := pw[0]
		pw = pw[1:]

		return p, nil
	}
}

func run(t *testing.T, input []string, readPassword PasswordReader, buildStubs func(ledger *MockLedger, reports *MockReports)) string {
	t.Helper()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := NewMockLedger(ctrl)
	reports := NewMockReports(ctrl)

	if buildStubs != nil {
		buildStubs(ledger, reports)
	}

	if readPassword == nil {
		readPassword = passwords()
	}

	var out bytes.Buffer

	c := New(ledger, reports, strings.NewReader(strings.Join(input, "\n")+"\n"), &out, readPassword, adminHash)
	require.NoError(t, c.Run(context.Background()))

	return out.String()
}

func TestRunExits(t *testing.T) {
	out := run(t, []string{"3"}, nil, nil)
	require.Contains(t, out, "Bye.")

	out = run(t, []string{"9", "3"}, nil, nil)
	require.Contains(t, out, `Error: unknown option "9"`)
}

func TestRunEndsOnEOF(t *testing.T) {
	out := run(t, []string{"1"}, nil, nil)
	require.Contains(t, out, "--- Client ---")
}

func TestClientMenu(t *testing.T) {
	savings := domain.Account{
		ID:           "SAV-1",
		Variant:      domain.Savings,
		Balance:      decimal.RequireFromString("100"),
		InterestRate: decimal.RequireFromString("0.02"),
	}
	checking := domain.Account{
		ID:         "CHK-1",
		Variant:    domain.Checking,
		Balance:    decimal.RequireFromString("20"),
		MonthlyFee: decimal.RequireFromString("10"),
	}

	testCases := []struct {
		name       string
		input      []string
		buildStubs func(ledger *MockLedger, reports *MockReports)
		want       []string
	}{
		{
			name:  "CreateAccount",
			input: []string{"1", "1", "savings", "100", "7", "3"},
			buildStubs: func(ledger *MockLedger, reports *MockReports) {
				ledger.EXPECT().
					CreateAccount(gomock.Any(), domain.Savings, eqDecimal("100")).
					Times(1).
					Return(savings, nil)
			},
			want: []string{"Account SAV-1 opened.", "SAV-1", "100.00", "rate 0.02"},
		},
		{
			name:  "CreateAccountUnknownVariant",
			input: []string{"1", "1", "credit", "7", "3"},
			want:  []string{"Error: " + domain.ErrUnknownVariant.Error()},
		},
		{
			name:  "CreateAccountMalformedBalance",
			input: []string{"1", "1", "checking", "ten", "7", "3"},
			want:  []string{"Error: malformed amount"},
		},
		{
			name:  "ViewAccountNotFound",
			input: []string{"1", "2", "SAV-X", "7", "3"},
			buildStubs: func(ledger *MockLedger, reports *MockReports) {
				ledger.EXPECT().FindAccount(gomock.Any(), "SAV-X").Times(1).Return(domain.Account{}, domain.ErrAccountNotFound)
			},
			want: []string{"Error: account not found"},
		},
		{
			name:  "Deposit",
			input: []string{"1", "3", "CHK-1", "5.5", "7", "3"},
			buildStubs: func(ledger *MockLedger, reports *MockReports) {
				after := checking
				after.Balance = decimal.RequireFromString("25.5")
				ledger.EXPECT().Deposit(gomock.Any(), "CHK-1", eqDecimal("5.5")).Times(1).Return(after, nil)
			},
			want: []string{"5.50 deposited. New balance: 25.50"},
		},
		{
			name:  "WithdrawInsufficientFunds",
			input: []string{"1", "4", "CHK-1", "50", "7", "3"},
			buildStubs: func(ledger *MockLedger, reports *MockReports) {
				ledger.EXPECT().
					Withdraw(gomock.Any(), "CHK-1", eqDecimal("50")).
					Times(1).
					Return(domain.Account{}, &domain.InsufficientFundsError{
						AccountID: "CHK-1",
						Requested: decimal.RequireFromString("50"),
						Available: decimal.RequireFromString("20"),
					})
			},
			want: []string{"Error: insufficient funds in account CHK-1: requested 50.00, available 20.00"},
		},
		{
			name:  "Transfer",
			input: []string{"1", "5", "SAV-1", "CHK-1", "30", "7", "3"},
			buildStubs: func(ledger *MockLedger, reports *MockReports) {
				from := savings
				from.Balance = decimal.RequireFromString("70")
				to := checking
				to.Balance = decimal.RequireFromString("50")

				ledger.EXPECT().
					Transfer(gomock.Any(), "SAV-1", "CHK-1", eqDecimal("30")).
					Times(1).
					Return(domain.TransferResult{FromAccount: from, ToAccount: to}, nil)
			},
			want: []string{"30.00 transferred.", "70.00", "50.00", "fee 10.00"},
		},
		{
			name:  "TransferOperationFailed",
			input: []string{"1", "5", "SAV-1", "CHK-1", "30", "7", "3"},
			buildStubs: func(ledger *MockLedger, reports *MockReports) {
				ledger.EXPECT().
					Transfer(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.TransferResult{}, errorspkg.ErrOperationFailed)
			},
			want: []string{"Error: " + errorspkg.ErrOperationFailed.Error()},
		},
		{
			name:  "ViewTransactions",
			input: []string{"1", "6", "SAV-1", "6", "SAV-2", "7", "3"},
			buildStubs: func(ledger *MockLedger, reports *MockReports) {
				ledger.EXPECT().
					TransactionHistory(gomock.Any(), "SAV-1").
					Times(1).
					Return([]domain.Transaction{
						{ID: 2, AccountID: "SAV-1", Amount: decimal.RequireFromString("-30")},
						{ID: 1, AccountID: "SAV-1", Amount: decimal.RequireFromString("100")},
					}, nil)
				ledger.EXPECT().TransactionHistory(gomock.Any(), "SAV-2").Times(1).Return([]domain.Transaction{}, nil)
			},
			want: []string{"AMOUNT", "-30.00", "100.00", "No transactions."},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := run(t, tc.input, nil, tc.buildStubs)

			for _, w := range tc.want {
				require.Contains(t, out, w)
			}
		})
	}
}

func TestAdminLogin(t *testing.T) {
	t.Run("RejectsWrongPassword", func(t *testing.T) {
		out := run(t, []string{"2", "3"}, passwords("a", "b", "c"), nil)
		require.Equal(t, maxLoginAttempts, strings.Count(out, "Wrong password."))
		require.NotContains(t, out, "--- Admin ---")
	})

	t.Run("AcceptsSecondAttempt", func(t *testing.T) {
		out := run(t, []string{"2", "8", "3"}, passwords("wrong", adminPassword), nil)
		require.Equal(t, 1, strings.Count(out, "Wrong password."))
		require.Contains(t, out, "--- Admin ---")
	})
}

func TestAdminMenu(t *testing.T) {
	accounts := []domain.Account{
		{ID: "CHK-1", Variant: domain.Checking, Balance: decimal.RequireFromString("-5"), MonthlyFee: decimal.RequireFromString("10")},
		{ID: "SAV-1", Variant: domain.Savings, Balance: decimal.RequireFromString("204"), InterestRate: decimal.RequireFromString("0.02")},
	}

	testCases := []struct {
		name       string
		input      []string
		buildStubs func(ledger *MockLedger, reports *MockReports)
		want       []string
	}{
		{
			name:  "ApplyAdjustments",
			input: []string{"2", "1", "8", "3"},
			buildStubs: func(ledger *MockLedger, reports *MockReports) {
				ledger.EXPECT().ApplyMonthlyAdjustments(gomock.Any()).Times(1).Return(domain.AdjustmentSummary{
					Processed: 2,
					Failed:    1,
					Failures:  []domain.AdjustmentFailure{{AccountID: "SAV-9", Error: "operation failed"}},
				}, nil)
			},
			want: []string{"Adjusted 2 account(s).", "Skipped SAV-9: operation failed"},
		},
		{
			name:  "Reports",
			input: []string{"2", "2", "3", "4", "5", "8", "3"},
			buildStubs: func(ledger *MockLedger, reports *MockReports) {
				reports.EXPECT().TotalBalance(gomock.Any()).Times(1).Return(decimal.RequireFromString("199"), nil)
				reports.EXPECT().AccountsByBalanceAscending(gomock.Any()).Times(1).Return(accounts, nil)
				reports.EXPECT().MinimumBalanceAccount(gomock.Any()).Times(1).Return(accounts[0], nil)
				reports.EXPECT().AccountCount(gomock.Any()).Times(1).Return(int64(2), nil)
			},
			want: []string{"Total balance: 199.00", "-5.00", "204.00", "Accounts: 2"},
		},
		{
			name:  "EmptyReports",
			input: []string{"2", "3", "4", "8", "3"},
			buildStubs: func(ledger *MockLedger, reports *MockReports) {
				reports.EXPECT().AccountsByBalanceAscending(gomock.Any()).Times(1).Return([]domain.Account{}, nil)
				reports.EXPECT().MinimumBalanceAccount(gomock.Any()).Times(1).Return(domain.Account{}, domain.ErrAccountNotFound)
			},
			want: []string{"No accounts.", "Error: account not found"},
		},
		{
			name:  "ClearTransactions",
			input: []string{"2", "6", "y", "8", "3"},
			buildStubs: func(ledger *MockLedger, reports *MockReports) {
				ledger.EXPECT().ResetAllTransactions(gomock.Any()).Times(1).Return(int64(4), nil)
				ledger.EXPECT().ResetAllAccounts(gomock.Any()).Times(0)
			},
			want: []string{"Deleted 4 transactions."},
		},
		{
			name:  "ClearAccountsCancelled",
			input: []string{"2", "7", "n", "8", "3"},
			buildStubs: func(ledger *MockLedger, reports *MockReports) {
				ledger.EXPECT().ResetAllAccounts(gomock.Any()).Times(0)
			},
			want: []string{"Cancelled."},
		},
		{
			name:  "ClearAccounts",
			input: []string{"2", "7", "yes", "8", "3"},
			buildStubs: func(ledger *MockLedger, reports *MockReports) {
				ledger.EXPECT().ResetAllAccounts(gomock.Any()).Times(1).Return(int64(2), nil)
				ledger.EXPECT().ResetAllTransactions(gomock.Any()).Times(0)
			},
			want: []string{"Deleted 2 accounts."},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := run(t, tc.input, passwords(adminPassword), tc.buildStubs)

			for _, w := range tc.want {
				require.Contains(t, out, w)
			}
		})
	}
}
