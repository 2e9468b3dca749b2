//go:build integration

package accountrepo_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-ledger/internal/accountrepo"
	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/integrationtest"
)

var terms = domain.Terms{
	InterestRate: decimal.RequireFromString("0.02"),
	MonthlyFee:   decimal.RequireFromString("10.00"),
}

func TestRepoPGS(t *testing.T) {
	config := integrationtest.LoadConfig(t, "../../configs")
	tx := integrationtest.SetupTX(t, config.DBDriver, config.DBSource)
	repo := accountrepo.NewRepoPGS(tx)
	ctx := context.Background()

	_, err := tx.Exec(`DELETE FROM accounts`)
	require.NoError(t, err)

	_, err = repo.MinBalance(ctx)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)

	sum, err := repo.Sum(ctx)
	require.NoError(t, err)
	require.True(t, sum.IsZero())

	a := integrationtest.SeedAccount(t, tx, domain.Savings, "0.10", terms)
	b := integrationtest.SeedAccount(t, tx, domain.Checking, "0.20", terms)
	c := integrationtest.SeedAccount(t, tx, domain.Savings, "0.10", terms)

	// the unique violation aborts the transaction unless it is contained in a savepoint
	_, err = tx.Exec(`SAVEPOINT duplicate`)
	require.NoError(t, err)

	_, err = repo.Create(ctx, a)
	require.ErrorIs(t, err, domain.ErrDuplicateAccount)

	_, err = tx.Exec(`ROLLBACK TO SAVEPOINT duplicate`)
	require.NoError(t, err)

	got, err := repo.Get(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, domain.Checking, got.Variant)
	require.Equal(t, "10.00", got.MonthlyFee.StringFixed(2))

	sum, err = repo.Sum(ctx)
	require.NoError(t, err)
	require.Equal(t, "0.40", sum.StringFixed(2))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(3), count)

	first, second := a.ID, c.ID
	if second < first {
		first, second = second, first
	}

	min, err := repo.MinBalance(ctx)
	require.NoError(t, err)
	require.Equal(t, first, min.ID)

	accounts, err := repo.ListByBalance(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 3)
	require.Equal(t, []string{first, second, b.ID}, []string{accounts[0].ID, accounts[1].ID, accounts[2].ID})

	updated, err := repo.SetBalance(ctx, b.ID, decimal.RequireFromString("-9.80"))
	require.NoError(t, err)
	require.Equal(t, "-9.80", updated.Balance.StringFixed(2))

	_, err = repo.SetBalance(ctx, "CHK-missing", decimal.Zero)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)

	locked, err := repo.GetPairForUpdate(ctx, a.ID, "SAV-missing")
	require.NoError(t, err)
	require.Len(t, locked, 1)
	require.Contains(t, locked, a.ID)

	n, err := repo.DeleteAll(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(3), n)
}
