// Package reportservice manages read-only aggregate views over accounts.
package reportservice

import (
	"context"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

// Repo provides data access layer interface needed by report service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package reportservice
type Repo interface {
	Sum(ctx context.Context) (decimal.Decimal, error)
	Count(ctx context.Context) (int64, error)
	MinBalance(ctx context.Context) (domain.Account, error)
	ListByBalance(ctx context.Context) ([]domain.Account, error)
}

// Service facilitates report service layer logic.
type Service struct {
	repo Repo
}

// New returns report service struct.
func New(r Repo) *Service {
	return &Service{repo: r}
}

// TotalBalance returns the sum of all balances, zero when there are no accounts.
func (s *Service) TotalBalance(ctx context.Context) (decimal.Decimal, error) {
	return s.repo.Sum(ctx)
}

// AccountCount returns the number of accounts.
func (s *Service) AccountCount(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// MinimumBalanceAccount returns the account with the lowest balance.
// Ties are broken by account id. It fails with domain.ErrAccountNotFound when there are no accounts.
func (s *Service) MinimumBalanceAccount(ctx context.Context) (domain.Account, error) {
	return s.repo.MinBalance(ctx)
}

// AccountsByBalanceAscending lists all accounts from the lowest balance to the highest.
func (s *Service) AccountsByBalanceAscending(ctx context.Context) ([]domain.Account, error) {
	return s.repo.ListByBalance(ctx)
}
