// Package ledgerservice is the ledger engine. It is the only place where a balance change
// is chained with a transaction log append, and every such pair runs in one db transaction.
package ledgerservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-petr/pet-ledger/internal/accountrepo"
	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/transactionrepo"
	"github.com/go-petr/pet-ledger/pkg/dbpkg"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Service facilitates ledger business logic.
type Service struct {
	conn         *sql.DB
	terms        domain.Terms
	accounts     *accountrepo.RepoPGS
	transactions *transactionrepo.RepoPGS
}

// New returns the ledger service working on conn. Accounts opened by it get terms.
func New(conn *sql.DB, terms domain.Terms) *Service {
	return &Service{
		conn:         conn,
		terms:        terms,
		accounts:     accountrepo.NewRepoPGS(conn),
		transactions: transactionrepo.NewRepoPGS(conn),
	}
}

// txRepos are the repositories bound to a single db transaction.
type txRepos struct {
	accounts     *accountrepo.RepoPGS
	transactions *transactionrepo.RepoPGS
}

func (s *Service) inTx(ctx context.Context, fn func(r txRepos) error) error {
	err := dbpkg.ExecTx(ctx, s.conn, func(tx *sql.Tx) error {
		return fn(txRepos{
			accounts:     accountrepo.NewRepoPGS(tx),
			transactions: transactionrepo.NewRepoPGS(tx),
		})
	})

	return failed(ctx, err)
}

// failed maps anything outside the error taxonomy to errorspkg.ErrOperationFailed.
func failed(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	known := []error{
		domain.ErrAccountNotFound,
		domain.ErrDuplicateAccount,
		domain.ErrInvalidAmount,
		domain.ErrNegativeInitialBalance,
		domain.ErrInsufficientFunds,
		domain.ErrUnknownVariant,
		errorspkg.ErrOperationFailed,
	}
	for _, k := range known {
		if errors.Is(err, k) {
			return err
		}
	}

	zerolog.Ctx(ctx).Error().Err(err).Send()

	return errorspkg.ErrOperationFailed
}

// CreateAccount opens an account of the variant with a non-negative initial balance.
// A positive opening balance is recorded in the transaction log.
func (s *Service) CreateAccount(ctx context.Context, v domain.Variant, initialBalance decimal.Decimal) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	a, err := domain.NewAccount(domain.NewAccountID(v), v, initialBalance, s.terms)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.Account{}, err
	}

	var created domain.Account

	err = s.inTx(ctx, func(r txRepos) error {
		created, err = r.accounts.Create(ctx, a)
		if err != nil {
			return err
		}

		if initialBalance.IsPositive() {
			if _, err := r.transactions.Append(ctx, created.ID, initialBalance); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return domain.Account{}, err
	}

	l.Info().Str("account_id", created.ID).Str("variant", string(v)).Msg("account opened")

	return created, nil
}

// FindAccount returns the current state of the account.
func (s *Service) FindAccount(ctx context.Context, id string) (domain.Account, error) {
	return s.accounts.Get(ctx, id)
}

// Deposit adds amount to the account and logs it.
func (s *Service) Deposit(ctx context.Context, id string, amount decimal.Decimal) (domain.Account, error) {
	if !amount.IsPositive() {
		zerolog.Ctx(ctx).Info().Str("amount", amount.String()).Msg(domain.ErrInvalidAmount.Error())
		return domain.Account{}, domain.ErrInvalidAmount
	}

	return s.mutate(ctx, id, amount, func(a *domain.Account) error {
		return a.Deposit(amount)
	})
}

// Withdraw takes amount from the account and logs it.
// It fails with *domain.InsufficientFundsError leaving the account unchanged
// when the balance is lower than amount.
func (s *Service) Withdraw(ctx context.Context, id string, amount decimal.Decimal) (domain.Account, error) {
	if !amount.IsPositive() {
		zerolog.Ctx(ctx).Info().Str("amount", amount.String()).Msg(domain.ErrInvalidAmount.Error())
		return domain.Account{}, domain.ErrInvalidAmount
	}

	return s.mutate(ctx, id, amount.Neg(), func(a *domain.Account) error {
		return a.Withdraw(amount)
	})
}

// mutate locks the account, applies op, stores the balance and appends a record of delta.
func (s *Service) mutate(ctx context.Context, id string, delta decimal.Decimal, op func(a *domain.Account) error) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	var updated domain.Account

	err := s.inTx(ctx, func(r txRepos) error {
		a, err := r.accounts.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if err := op(&a); err != nil {
			l.Info().Err(err).Send()
			return err
		}

		updated, err = r.accounts.SetBalance(ctx, a.ID, a.Balance)
		if err != nil {
			return err
		}

		_, err = r.transactions.Append(ctx, a.ID, delta)

		return err
	})
	if err != nil {
		return domain.Account{}, err
	}

	return updated, nil
}

// Transfer moves amount between two accounts. Both legs and both records land together or not at all.
//
// The source is checked for funds before the destination is looked at.
// Transferring to the same account is allowed and yields two records.
func (s *Service) Transfer(ctx context.Context, fromID, toID string, amount decimal.Decimal) (domain.TransferResult, error) {
	l := zerolog.Ctx(ctx)

	if !amount.IsPositive() {
		l.Info().Str("amount", amount.String()).Msg(domain.ErrInvalidAmount.Error())
		return domain.TransferResult{}, domain.ErrInvalidAmount
	}

	var result domain.TransferResult

	err := s.inTx(ctx, func(r txRepos) error {
		// Rows are locked in id order to avoid deadlocks between opposite transfers.
		locked, err := r.accounts.GetPairForUpdate(ctx, fromID, toID)
		if err != nil {
			return err
		}

		from, ok := locked[fromID]
		if !ok {
			l.Info().Str("account_id", fromID).Msg(domain.ErrAccountNotFound.Error())
			return domain.ErrAccountNotFound
		}

		if err := from.Withdraw(amount); err != nil {
			l.Info().Err(err).Send()
			return err
		}

		to := &from
		if toID != fromID {
			dst, ok := locked[toID]
			if !ok {
				l.Info().Str("account_id", toID).Msg(domain.ErrAccountNotFound.Error())
				return domain.ErrAccountNotFound
			}
			to = &dst
		}

		if err := to.Deposit(amount); err != nil {
			return err
		}

		result.FromAccount, err = r.accounts.SetBalance(ctx, from.ID, from.Balance)
		if err != nil {
			return err
		}

		result.FromTransaction, err = r.transactions.Append(ctx, from.ID, amount.Neg())
		if err != nil {
			return err
		}

		if toID == fromID {
			result.ToAccount = result.FromAccount
		} else {
			result.ToAccount, err = r.accounts.SetBalance(ctx, to.ID, to.Balance)
			if err != nil {
				return err
			}
		}

		result.ToTransaction, err = r.transactions.Append(ctx, to.ID, amount)

		return err
	})
	if err != nil {
		return domain.TransferResult{}, err
	}

	return result, nil
}

// ApplyMonthlyAdjustments credits interest or charges the fee on every account.
//
// Each account is adjusted in its own db transaction; a failing account is logged,
// reported in the summary and skipped.
func (s *Service) ApplyMonthlyAdjustments(ctx context.Context) (domain.AdjustmentSummary, error) {
	l := zerolog.Ctx(ctx)

	summary := domain.AdjustmentSummary{Failures: []domain.AdjustmentFailure{}}

	ids, err := s.accounts.ListIDs(ctx)
	if err != nil {
		return summary, err
	}

	for _, id := range ids {
		if err := s.adjust(ctx, id); err != nil {
			l.Warn().Err(err).Str("account_id", id).Msg("monthly adjustment skipped")

			summary.Failed++
			summary.Failures = append(summary.Failures, domain.AdjustmentFailure{
				AccountID: id,
				Error:     err.Error(),
			})

			continue
		}

		summary.Processed++
	}

	l.Info().Int("processed", summary.Processed).Int("failed", summary.Failed).Msg("monthly adjustments applied")

	return summary, nil
}

func (s *Service) adjust(ctx context.Context, id string) error {
	return s.inTx(ctx, func(r txRepos) error {
		a, err := r.accounts.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}

		delta, err := a.ApplyMonthlyAdjustment()
		if err != nil {
			return err
		}

		if _, err := r.accounts.SetBalance(ctx, a.ID, a.Balance); err != nil {
			return err
		}

		_, err = r.transactions.Append(ctx, a.ID, delta)

		return err
	})
}

// TransactionHistory returns the account's records, most recent first.
func (s *Service) TransactionHistory(ctx context.Context, id string) ([]domain.Transaction, error) {
	return s.transactions.ListByAccount(ctx, id)
}

// ResetAllAccounts deletes every account. Transaction history is left untouched.
func (s *Service) ResetAllAccounts(ctx context.Context) (int64, error) {
	n, err := s.accounts.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}

	zerolog.Ctx(ctx).Warn().Int64("deleted", n).Msg("all accounts deleted")

	return n, nil
}

// ResetAllTransactions deletes every transaction record. Accounts are left untouched.
func (s *Service) ResetAllTransactions(ctx context.Context) (int64, error) {
	n, err := s.transactions.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}

	zerolog.Ctx(ctx).Warn().Int64("deleted", n).Msg("all transactions deleted")

	return n, nil
}
