package randompkg

import (
	"testing"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestMoneyAmountBetween(t *testing.T) {
	for i := 0; i < 100; i++ {
		got := MoneyAmountBetween(1, 5)
		require.Equal(t, got, got.Round(2))
		require.True(t, got.IntPart() >= 1 && got.IntPart() <= 5, got.String())
	}
}

func TestString(t *testing.T) {
	require.Len(t, String(12), 12)
}

func TestVariant(t *testing.T) {
	got := Variant()
	require.Contains(t, []domain.Variant{domain.Savings, domain.Checking}, got)
}
