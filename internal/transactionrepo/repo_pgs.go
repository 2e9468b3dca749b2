// Package transactionrepo manages the append-only transaction log.
package transactionrepo

import (
	"context"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/dbpkg"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// RepoPGS facilitates transaction log repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns transaction RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const appendQuery = `
INSERT INTO
	transactions (account_id, amount)
VALUES
	($1, $2)
RETURNING id, account_id, amount, created_at
`

// Append writes a record of a signed balance change and returns it.
func (r *RepoPGS) Append(ctx context.Context, accountID string, amount decimal.Decimal) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, appendQuery, accountID, amount)

	var t domain.Transaction

	err := row.Scan(
		&t.ID,
		&t.AccountID,
		&t.Amount,
		&t.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Str("account_id", accountID).Send()
		return domain.Transaction{}, errorspkg.ErrOperationFailed
	}

	return t, nil
}

const listByAccountQuery = `
SELECT id, account_id, amount, created_at
FROM transactions
WHERE account_id = $1
ORDER BY created_at DESC, id DESC
`

// ListByAccount returns the account's records, most recent first.
// An account without records yields an empty slice.
func (r *RepoPGS) ListByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listByAccountQuery, accountID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrOperationFailed
	}
	defer rows.Close()

	items := []domain.Transaction{}

	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(&t.ID, &t.AccountID, &t.Amount, &t.CreatedAt); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrOperationFailed
		}

		items = append(items, t)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrOperationFailed
	}

	return items, nil
}

const deleteAllQuery = `
DELETE FROM transactions
`

// DeleteAll removes every record and returns how many were removed.
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
