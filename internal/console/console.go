// Package console is the interactive terminal front end of the ledger.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
	"github.com/go-petr/pet-ledger/pkg/moneypkg"
)

// Ledger provides the ledger operations driven from the console.
//
//go:generate mockgen -source console.go -destination console_mock.go -package console
type Ledger interface {
	CreateAccount(ctx context.Context, v domain.Variant, initialBalance decimal.Decimal) (domain.Account, error)
	FindAccount(ctx context.Context, id string) (domain.Account, error)
	Deposit(ctx context.Context, id string, amount decimal.Decimal) (domain.Account, error)
	Withdraw(ctx context.Context, id string, amount decimal.Decimal) (domain.Account, error)
	Transfer(ctx context.Context, fromID, toID string, amount decimal.Decimal) (domain.TransferResult, error)
	TransactionHistory(ctx context.Context, id string) ([]domain.Transaction, error)
	ApplyMonthlyAdjustments(ctx context.Context) (domain.AdjustmentSummary, error)
	ResetAllAccounts(ctx context.Context) (int64, error)
	ResetAllTransactions(ctx context.Context) (int64, error)
}

// Reports provides the aggregate views shown to admins.
type Reports interface {
	TotalBalance(ctx context.Context) (decimal.Decimal, error)
	AccountCount(ctx context.Context) (int64, error)
	MinimumBalanceAccount(ctx context.Context) (domain.Account, error)
	AccountsByBalanceAscending(ctx context.Context) ([]domain.Account, error)
}

// PasswordReader reads a secret without echoing it.
type PasswordReader func() (string, error)

// maxLoginAttempts is the number of wrong admin secrets accepted before returning to the role prompt.
const maxLoginAttempts = 3

var (
	heading = color.New(color.FgCyan, color.Bold)
	success = color.New(color.FgGreen)
	failure = color.New(color.FgRed)
)

// errQuit is returned by prompts when the input is exhausted.
var errQuit = errors.New("quit")

// Console holds the collaborators and the terminal streams of a session.
type Console struct {
	ledger       Ledger
	reports      Reports
	in           *bufio.Scanner
	out          io.Writer
	readPassword PasswordReader
	adminHash    string
}

// New returns a console reading commands from in and writing to out.
// adminHash is the bcrypt hash of the shared admin secret.
func New(ledger Ledger, reports Reports, in io.Reader, out io.Writer, readPassword PasswordReader, adminHash string) *Console {
	return &Console{
		ledger:       ledger,
		reports:      reports,
		in:           bufio.NewScanner(in),
		out:          out,
		readPassword: readPassword,
		adminHash:    adminHash,
	}
}

// Run serves the role prompt until the user exits or the input ends.
func (c *Console) Run(ctx context.Context) error {
	for {
		heading.Fprintln(c.out, "\n=== LEDGER ===")
		fmt.Fprintln(c.out, "1. Client")
		fmt.Fprintln(c.out, "2. Admin")
		fmt.Fprintln(c.out, "3. Exit")

		choice, err := c.prompt("Choose a role: ")
		if err != nil {
			return ignoreQuit(err)
		}

		switch choice {
		case "1":
			err = c.clientMenu(ctx)
		case "2":
			err = c.adminLogin(ctx)
		case "3":
			fmt.Fprintln(c.out, "Bye.")
			return nil
		default:
			c.fail(fmt.Errorf("unknown option %q", choice))
		}

		if err != nil {
			return ignoreQuit(err)
		}
	}
}

func ignoreQuit(err error) error {
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

func (c *Console) prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)

	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", errQuit
	}

	return strings.TrimSpace(c.in.Text()), nil
}

func (c *Console) promptAmount(label string) (decimal.Decimal, error) {
	s, err := c.prompt(label)
	if err != nil {
		return decimal.Zero, err
	}

	return moneypkg.Parse(s)
}

func (c *Console) confirm(label string) (bool, error) {
	s, err := c.prompt(label + " [y/N]: ")
	if err != nil {
		return false, err
	}

	return strings.EqualFold(s, "y") || strings.EqualFold(s, "yes"), nil
}

// fail reports err to the user. Errors outside the ledger taxonomy are hidden behind
// errorspkg.ErrOperationFailed.
func (c *Console) fail(err error) {
	msg := err.Error()
	if errors.Is(err, errorspkg.ErrOperationFailed) {
		msg = errorspkg.ErrOperationFailed.Error()
	}

	failure.Fprintf(c.out, "Error: %s\n", msg)
}

func (c *Console) ok(format string, a ...any) {
	success.Fprintf(c.out, format+"\n", a...)
}

// logged reports err and logs it at the level it deserves.
func (c *Console) logged(ctx context.Context, err error) {
	l := zerolog.Ctx(ctx)

	if errors.Is(err, errorspkg.ErrOperationFailed) {
		l.Error().Err(err).Send()
	} else {
		l.Info().Err(err).Send()
	}

	c.fail(err)
}
