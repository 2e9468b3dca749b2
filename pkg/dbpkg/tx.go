package dbpkg

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"
)

// ExecTx executes fn within a database transaction.
//
// The transaction is committed when fn returns nil and rolled back on any error or panic.
// Errors returned by fn are passed through unchanged.
func ExecTx(ctx context.Context, conn *sql.DB, fn func(tx *sql.Tx) error) (err error) {
	l := zerolog.Ctx(ctx)

	tx, err := conn.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				l.Error().Err(rbErr).Msg("rollback after panic")
			}
			panic(p)
		}
	}()

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			l.Error().Err(rbErr).Msg("rollback")
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}
