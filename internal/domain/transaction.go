package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is an immutable transaction log record.
//
// AccountID is a weak reference: the account may be gone after an administrative reset.
type Transaction struct {
	ID        int64           `json:"id"`
	AccountID string          `json:"account_id"`
	Amount    decimal.Decimal `json:"amount"` // positive for money in, negative for money out
	CreatedAt time.Time       `json:"created_at"`
}

// TransferResult is the result of the transfer transaction.
type TransferResult struct {
	FromAccount     Account     `json:"from_account"`
	ToAccount       Account     `json:"to_account"`
	FromTransaction Transaction `json:"from_transaction"`
	ToTransaction   Transaction `json:"to_transaction"`
}

// AdjustmentFailure describes an account skipped by a monthly adjustment run.
type AdjustmentFailure struct {
	AccountID string `json:"account_id"`
	Error     string `json:"error"`
}

// AdjustmentSummary is the outcome of a monthly adjustment run.
type AdjustmentSummary struct {
	Processed int                 `json:"processed"`
	Failed    int                 `json:"failed"`
	Failures  []AdjustmentFailure `json:"failures,omitempty"`
}
