// Package accountrepo manages repository layer of accounts.
package accountrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/dbpkg"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const uniqueViolation = "23505"

// RepoPGS facilitates account repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns account RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(row scanner) (domain.Account, error) {
	var a domain.Account

	err := row.Scan(
		&a.ID,
		&a.Variant,
		&a.Balance,
		&a.InterestRate,
		&a.MonthlyFee,
		&a.CreatedAt,
	)

	return a, err
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}

	return false
}

const createQuery = `
INSERT INTO
	accounts (account_id, variant, balance, interest_rate, monthly_fee)
VALUES
	($1, $2, $3, $4, $5)
RETURNING account_id, variant, balance, interest_rate, monthly_fee, created_at
`

// Create inserts the account and then returns it.
func (r *RepoPGS) Create(ctx context.Context, a domain.Account) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, a.ID, string(a.Variant), a.Balance, a.InterestRate, a.MonthlyFee)

	created, err := scanAccount(row)
	if err != nil {
		if isUniqueViolation(err) {
			l.Info().Err(err).Str("account_id", a.ID).Send()
			return domain.Account{}, domain.ErrDuplicateAccount
		}

		l.Error().Err(err).Send()

		return domain.Account{}, errorspkg.ErrOperationFailed
	}

	return created, nil
}

const getQuery = `
SELECT
	account_id, variant, balance, interest_rate, monthly_fee, created_at
FROM accounts
WHERE account_id = $1
`

// Get returns the account with the given id.
func (r *RepoPGS) Get(ctx context.Context, id string) (domain.Account, error) {
	return r.getOne(ctx, id, getQuery, id)
}

const getForUpdateQuery = getQuery + `FOR UPDATE
`

// GetForUpdate returns the account with the given id and locks its row until the
// enclosing transaction ends.
func (r *RepoPGS) GetForUpdate(ctx context.Context, id string) (domain.Account, error) {
	return r.getOne(ctx, id, getForUpdateQuery, id)
}

// getOne scans a single account row. A missing row is reported as domain.ErrAccountNotFound.
func (r *RepoPGS) getOne(ctx context.Context, id, query string, args ...any) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	a, err := scanAccount(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			l.Info().Str("account_id", id).Msg(domain.ErrAccountNotFound.Error())
			return domain.Account{}, domain.ErrAccountNotFound
		}

		l.Error().Err(err).Send()

		return domain.Account{}, errorspkg.ErrOperationFailed
	}

	return a, nil
}

const getPairForUpdateQuery = `
SELECT
	account_id, variant, balance, interest_rate, monthly_fee, created_at
FROM accounts
WHERE account_id IN ($1, $2)
ORDER BY account_id
FOR UPDATE
`

// GetPairForUpdate locks the rows of both accounts in id order and returns those found,
// keyed by id. Both ids may be the same.
func (r *RepoPGS) GetPairForUpdate(ctx context.Context, firstID, secondID string) (map[string]domain.Account, error) {
	accounts, err := r.list(ctx, getPairForUpdateQuery, firstID, secondID)
	if err != nil {
		return nil, err
	}

	found := make(map[string]domain.Account, len(accounts))
	for _, a := range accounts {
		found[a.ID] = a
	}

	return found, nil
}

const setBalanceQuery = `
UPDATE accounts
SET balance = $1
WHERE account_id = $2
RETURNING account_id, variant, balance, interest_rate, monthly_fee, created_at
`

// SetBalance overwrites the stored balance and returns the changed account.
func (r *RepoPGS) SetBalance(ctx context.Context, id string, balance decimal.Decimal) (domain.Account, error) {
	return r.getOne(ctx, id, setBalanceQuery, balance, id)
}

const listByBalanceQuery = `
SELECT
	account_id, variant, balance, interest_rate, monthly_fee, created_at
FROM accounts
ORDER BY balance, account_id
`

// ListByBalance returns all accounts ordered ascending by balance.
func (r *RepoPGS) ListByBalance(ctx context.Context) ([]domain.Account, error) {
	return r.list(ctx, listByBalanceQuery)
}

const listIDsQuery = `
SELECT account_id
FROM accounts
ORDER BY account_id
`

// ListIDs returns the ids of all accounts.
func (r *RepoPGS) ListIDs(ctx context.Context) ([]string, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listIDsQuery)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrOperationFailed
	}
	defer rows.Close()

	ids := []string{}

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrOperationFailed
		}

		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrOperationFailed
	}

	return ids, nil
}

func (r *RepoPGS) list(ctx context.Context, query string, args ...any) ([]domain.Account, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrOperationFailed
	}
	defer rows.Close()

	items := []domain.Account{}

	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrOperationFailed
		}

		items = append(items, a)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrOperationFailed
	}

	return items, nil
}

const sumQuery = `
SELECT COALESCE(SUM(balance), 0)
FROM accounts
`

// Sum returns the total balance over all accounts, zero when there are none.
func (r *RepoPGS) Sum(ctx context.Context) (decimal.Decimal, error) {
	l := zerolog.Ctx(ctx)

	var total decimal.Decimal
	if err := r.db.QueryRowContext(ctx, sumQuery).Scan(&total); err != nil {
		l.Error().Err(err).Send()
		return decimal.Zero, errorspkg.ErrOperationFailed
	}

	return total, nil
}

const countQuery = `
SELECT COUNT(*)
FROM accounts
`

// Count returns the number of accounts.
func (r *RepoPGS) Count(ctx context.Context) (int64, error) {
	l := zerolog.Ctx(ctx)

	var n int64
	if err := r.db.QueryRowContext(ctx, countQuery).Scan(&n); err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrOperationFailed
	}

	return n, nil
}

const minBalanceQuery = `
SELECT
	account_id, variant, balance, interest_rate, monthly_fee, created_at
FROM accounts
ORDER BY balance, account_id
LIMIT 1
`

// MinBalance returns the account with the lowest balance.
// It fails with domain.ErrAccountNotFound when there are no accounts.
func (r *RepoPGS) MinBalance(ctx context.Context) (domain.Account, error) {
	return r.getOne(ctx, "", minBalanceQuery)
}

const deleteAllQuery = `
DELETE FROM accounts
`

// DeleteAll removes every account and returns how many were removed.
func (r *RepoPGS) DeleteAll(ctx context.Context) (int64, error) {
	l := zerolog.Ctx(ctx)

	res, err := r.db.ExecContext(ctx, deleteAllQuery)
	if err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrOperationFailed
	}

	n, err := res.RowsAffected()
	if err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrOperationFailed
	}

	return n, nil
}
