package console

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/moneypkg"
	"github.com/go-petr/pet-ledger/pkg/passpkg"
)

func (c *Console) adminLogin(ctx context.Context) error {
	l := zerolog.Ctx(ctx)

	for attempt := 1; attempt <= maxLoginAttempts; attempt++ {
		fmt.Fprint(c.out, "Admin password: ")

		password, err := c.readPassword()
		fmt.Fprintln(c.out)

		if err != nil {
			return err
		}

		if err := passpkg.Check(password, c.adminHash); err == nil {
			return c.adminMenu(ctx)
		}

		l.Warn().Int("attempt", attempt).Msg("admin login rejected")
		failure.Fprintln(c.out, "Wrong password.")
	}

	return nil
}

func (c *Console) adminMenu(ctx context.Context) error {
	for {
		heading.Fprintln(c.out, "\n--- Admin ---")
		fmt.Fprintln(c.out, "1. Apply monthly adjustments")
		fmt.Fprintln(c.out, "2. Total balance")
		fmt.Fprintln(c.out, "3. Accounts by balance")
		fmt.Fprintln(c.out, "4. Minimum balance account")
		fmt.Fprintln(c.out, "5. Account count")
		fmt.Fprintln(c.out, "6. Clear transactions")
		fmt.Fprintln(c.out, "7. Clear accounts")
		fmt.Fprintln(c.out, "8. Exit")

		choice, err := c.prompt("Choose an option: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			c.applyAdjustments(ctx)
		case "2":
			c.totalBalance(ctx)
		case "3":
			c.accountsByBalance(ctx)
		case "4":
			c.minimumBalance(ctx)
		case "5":
			c.accountCount(ctx)
		case "6":
			err = c.reset(ctx, "transactions", c.ledger.ResetAllTransactions)
		case "7":
			err = c.reset(ctx, "accounts", c.ledger.ResetAllAccounts)
		case "8":
			return nil
		default:
			c.fail(fmt.Errorf("unknown option %q", choice))
		}

		if err != nil {
			return err
		}
	}
}

func (c *Console) applyAdjustments(ctx context.Context) {
	summary, err := c.ledger.ApplyMonthlyAdjustments(ctx)
	if err != nil {
		c.logged(ctx, err)
		return
	}

	c.ok("Adjusted %d account(s).", summary.Processed)

	for _, f := range summary.Failures {
		failure.Fprintf(c.out, "Skipped %s: %s\n", f.AccountID, f.Error)
	}
}

func (c *Console) totalBalance(ctx context.Context) {
	total, err := c.reports.TotalBalance(ctx)
	if err != nil {
		c.logged(ctx, err)
		return
	}

	fmt.Fprintf(c.out, "Total balance: %s\n", moneypkg.Format(total))
}

func (c *Console) accountsByBalance(ctx context.Context) {
	accounts, err := c.reports.AccountsByBalanceAscending(ctx)
	if err != nil {
		c.logged(ctx, err)
		return
	}

	if len(accounts) == 0 {
		fmt.Fprintln(c.out, "No accounts.")
		return
	}

	c.renderAccounts(accounts)
}

func (c *Console) minimumBalance(ctx context.Context) {
	account, err := c.reports.MinimumBalanceAccount(ctx)
	if err != nil {
		c.logged(ctx, err)
		return
	}

	c.renderAccounts([]domain.Account{account})
}

func (c *Console) accountCount(ctx context.Context) {
	count, err := c.reports.AccountCount(ctx)
	if err != nil {
		c.logged(ctx, err)
		return
	}

	fmt.Fprintf(c.out, "Accounts: %d\n", count)
}

func (c *Console) reset(ctx context.Context, what string, op func(ctx context.Context) (int64, error)) error {
	yes, err := c.confirm("Delete all " + what + "?")
	if err != nil {
		return err
	}

	if !yes {
		fmt.Fprintln(c.out, "Cancelled.")
		return nil
	}

	n, err := op(ctx)
	if err != nil {
		c.logged(ctx, err)
		return nil
	}

	c.ok("Deleted %d %s.", n, what)

	return nil
}
