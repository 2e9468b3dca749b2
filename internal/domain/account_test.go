package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var testTerms = Terms{
	InterestRate: decimal.RequireFromString("0.02"),
	MonthlyFee:   decimal.RequireFromString("10.00"),
}

func mustAccount(t *testing.T, v Variant, balance string) Account {
	t.Helper()

	a, err := NewAccount(NewAccountID(v), v, decimal.RequireFromString(balance), testTerms)
	require.NoError(t, err)

	return a
}

func TestParseVariant(t *testing.T) {
	testCases := []struct {
		input   string
		want    Variant
		wantErr error
	}{
		{input: "SAVINGS", want: Savings},
		{input: " savings ", want: Savings},
		{input: "Checking", want: Checking},
		{input: "credit", wantErr: ErrUnknownVariant},
		{input: "", wantErr: ErrUnknownVariant},
	}

	for _, tc := range testCases {
		got, err := ParseVariant(tc.input)
		require.ErrorIs(t, err, tc.wantErr)
		require.Equal(t, tc.want, got)
	}
}

func TestNewAccount(t *testing.T) {
	savings := mustAccount(t, Savings, "100")
	require.True(t, strings.HasPrefix(savings.ID, "SAV-"))
	require.True(t, savings.InterestRate.Equal(testTerms.InterestRate))
	require.True(t, savings.MonthlyFee.IsZero())

	checking := mustAccount(t, Checking, "0")
	require.True(t, strings.HasPrefix(checking.ID, "CHK-"))
	require.True(t, checking.MonthlyFee.Equal(testTerms.MonthlyFee))
	require.True(t, checking.InterestRate.IsZero())

	_, err := NewAccount("X", Savings, decimal.RequireFromString("-0.01"), testTerms)
	require.ErrorIs(t, err, ErrNegativeInitialBalance)

	_, err = NewAccount("X", Variant("CREDIT"), decimal.Zero, testTerms)
	require.ErrorIs(t, err, ErrUnknownVariant)
}

func TestDeposit(t *testing.T) {
	a := mustAccount(t, Checking, "10.50")

	require.NoError(t, a.Deposit(decimal.RequireFromString("0.25")))
	require.Equal(t, "10.75", a.Balance.StringFixed(2))

	for _, amount := range []string{"0", "-1"} {
		err := a.Deposit(decimal.RequireFromString(amount))
		require.ErrorIs(t, err, ErrInvalidAmount)
	}

	require.Equal(t, "10.75", a.Balance.StringFixed(2))
}

func TestWithdraw(t *testing.T) {
	a := mustAccount(t, Savings, "50.00")

	err := a.Withdraw(decimal.RequireFromString("100.00"))
	require.ErrorIs(t, err, ErrInsufficientFunds)

	var insufficient *InsufficientFundsError
	require.True(t, errors.As(err, &insufficient))
	require.Equal(t, a.ID, insufficient.AccountID)
	require.Equal(t, "100.00", insufficient.Requested.StringFixed(2))
	require.Equal(t, "50.00", insufficient.Available.StringFixed(2))
	require.Equal(t, "50.00", a.Balance.StringFixed(2))

	require.ErrorIs(t, a.Withdraw(decimal.Zero), ErrInvalidAmount)

	require.NoError(t, a.Withdraw(decimal.RequireFromString("50.00")))
	require.True(t, a.Balance.IsZero())
}

func TestApplyMonthlyAdjustment(t *testing.T) {
	testCases := []struct {
		name        string
		variant     Variant
		balance     string
		wantBalance string
		wantDelta   string
	}{
		{name: "SavingsInterest", variant: Savings, balance: "1000.00", wantBalance: "1020.00", wantDelta: "20.00"},
		{name: "SavingsRoundsToCents", variant: Savings, balance: "33.33", wantBalance: "34.00", wantDelta: "0.67"},
		{name: "SavingsZero", variant: Savings, balance: "0", wantBalance: "0.00", wantDelta: "0.00"},
		{name: "CheckingFee", variant: Checking, balance: "100.00", wantBalance: "90.00", wantDelta: "-10.00"},
		{name: "CheckingFeeDrivesNegative", variant: Checking, balance: "5.00", wantBalance: "-5.00", wantDelta: "-10.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := mustAccount(t, tc.variant, tc.balance)

			delta, err := a.ApplyMonthlyAdjustment()
			require.NoError(t, err)
			require.Equal(t, tc.wantBalance, a.Balance.StringFixed(2))
			require.Equal(t, tc.wantDelta, delta.StringFixed(2))
		})
	}
}
