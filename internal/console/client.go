package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/moneypkg"
)

func (c *Console) clientMenu(ctx context.Context) error {
	for {
		heading.Fprintln(c.out, "\n--- Client ---")
		fmt.Fprintln(c.out, "1. Create account")
		fmt.Fprintln(c.out, "2. View account")
		fmt.Fprintln(c.out, "3. Deposit")
		fmt.Fprintln(c.out, "4. Withdraw")
		fmt.Fprintln(c.out, "5. Transfer")
		fmt.Fprintln(c.out, "6. View transactions")
		fmt.Fprintln(c.out, "7. Exit")

		choice, err := c.prompt("Choose an option: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = c.createAccount(ctx)
		case "2":
			err = c.viewAccount(ctx)
		case "3":
			err = c.deposit(ctx)
		case "4":
			err = c.withdraw(ctx)
		case "5":
			err = c.transfer(ctx)
		case "6":
			err = c.viewTransactions(ctx)
		case "7":
			return nil
		default:
			c.fail(fmt.Errorf("unknown option %q", choice))
		}

		if err != nil {
			return err
		}
	}
}

func (c *Console) createAccount(ctx context.Context) error {
	s, err := c.prompt("Variant (SAVINGS/CHECKING): ")
	if err != nil {
		return err
	}

	variant, err := domain.ParseVariant(s)
	if err != nil {
		c.fail(err)
		return nil
	}

	balance, err := c.promptAmount("Initial balance: ")
	if err != nil {
		return c.inputErr(err)
	}

	account, err := c.ledger.CreateAccount(ctx, variant, balance)
	if err != nil {
		c.logged(ctx, err)
		return nil
	}

	c.ok("Account %s opened.", account.ID)
	c.renderAccounts([]domain.Account{account})

	return nil
}

func (c *Console) viewAccount(ctx context.Context) error {
	id, err := c.prompt("Account id: ")
	if err != nil {
		return err
	}

	account, err := c.ledger.FindAccount(ctx, id)
	if err != nil {
		c.logged(ctx, err)
		return nil
	}

	c.renderAccounts([]domain.Account{account})

	return nil
}

func (c *Console) deposit(ctx context.Context) error {
	return c.move(ctx, "deposited", c.ledger.Deposit)
}

func (c *Console) withdraw(ctx context.Context) error {
	return c.move(ctx, "withdrawn", c.ledger.Withdraw)
}

func (c *Console) move(ctx context.Context, verb string, op func(ctx context.Context, id string, amount decimal.Decimal) (domain.Account, error)) error {
	id, err := c.prompt("Account id: ")
	if err != nil {
		return err
	}

	amount, err := c.promptAmount("Amount: ")
	if err != nil {
		return c.inputErr(err)
	}

	account, err := op(ctx, id, amount)
	if err != nil {
		c.logged(ctx, err)
		return nil
	}

	c.ok("%s %s. New balance: %s", moneypkg.Format(amount), verb, moneypkg.Format(account.Balance))

	return nil
}

func (c *Console) transfer(ctx context.Context) error {
	fromID, err := c.prompt("From account id: ")
	if err != nil {
		return err
	}

	toID, err := c.prompt("To account id: ")
	if err != nil {
		return err
	}

	amount, err := c.promptAmount("Amount: ")
	if err != nil {
		return c.inputErr(err)
	}

	result, err := c.ledger.Transfer(ctx, fromID, toID, amount)
	if err != nil {
		c.logged(ctx, err)
		return nil
	}

	c.ok("%s transferred.", moneypkg.Format(amount))
	c.renderAccounts([]domain.Account{result.FromAccount, result.ToAccount})

	return nil
}

func (c *Console) viewTransactions(ctx context.Context) error {
	id, err := c.prompt("Account id: ")
	if err != nil {
		return err
	}

	transactions, err := c.ledger.TransactionHistory(ctx, id)
	if err != nil {
		c.logged(ctx, err)
		return nil
	}

	if len(transactions) == 0 {
		fmt.Fprintln(c.out, "No transactions.")
		return nil
	}

	c.renderTransactions(transactions)

	return nil
}

// inputErr reports a malformed amount and keeps the menu running. Other errors end the session.
func (c *Console) inputErr(err error) error {
	if !errors.Is(err, moneypkg.ErrMalformedAmount) {
		return err
	}

	c.fail(err)

	return nil
}
