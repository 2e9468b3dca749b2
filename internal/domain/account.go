// Package domain provides defenitions of all entities and the account business rules.
package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateAccount indicates that an account with the given id already exists.
	ErrDuplicateAccount = errors.New("account already exists")
	// ErrInvalidAmount indicates a non-positive amount for a mutating operation.
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrNegativeInitialBalance indicates that an account cannot be opened below zero.
	ErrNegativeInitialBalance = errors.New("initial balance cannot be negative")
	// ErrInsufficientFunds indicates that the account does not have enough money.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrUnknownVariant indicates an unsupported account variant.
	ErrUnknownVariant = errors.New("unknown account variant")
)

// InsufficientFundsError describes a rejected withdrawal.
//
// It matches ErrInsufficientFunds with errors.Is.
type InsufficientFundsError struct {
	AccountID string
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds in account %s: requested %s, available %s",
		e.AccountID, e.Requested.StringFixed(2), e.Available.StringFixed(2))
}

// Is reports whether target is ErrInsufficientFunds.
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// Variant is the kind of an account. It is fixed at creation.
type Variant string

// Supported account variants.
const (
	Savings  Variant = "SAVINGS"
	Checking Variant = "CHECKING"
)

// ParseVariant converts user input into a Variant.
func ParseVariant(s string) (Variant, error) {
	switch Variant(strings.ToUpper(strings.TrimSpace(s))) {
	case Savings:
		return Savings, nil
	case Checking:
		return Checking, nil
	}

	return "", ErrUnknownVariant
}

// IDPrefix returns the prefix used for generated account ids.
func (v Variant) IDPrefix() string {
	if v == Savings {
		return "SAV"
	}
	return "CHK"
}

// NewAccountID generates a unique account id for the variant.
func NewAccountID(v Variant) string {
	return v.IDPrefix() + "-" + uuid.NewString()
}

// Terms are the monthly adjustment parameters applied when accounts are opened.
type Terms struct {
	InterestRate decimal.Decimal // monthly, savings only
	MonthlyFee   decimal.Decimal // flat, checking only
}

// Account holds account balance and variant specific attributes.
//
// InterestRate is meaningful for savings accounts, MonthlyFee for checking accounts.
type Account struct {
	ID           string          `json:"id"`
	Variant      Variant         `json:"variant"`
	Balance      decimal.Decimal `json:"balance"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	MonthlyFee   decimal.Decimal `json:"monthly_fee"`
	CreatedAt    time.Time       `json:"created_at"`
}

// NewAccount returns an account of the variant with the terms relevant to it.
func NewAccount(id string, v Variant, balance decimal.Decimal, terms Terms) (Account, error) {
	if balance.IsNegative() {
		return Account{}, ErrNegativeInitialBalance
	}

	a := Account{ID: id, Variant: v, Balance: balance}

	switch v {
	case Savings:
		a.InterestRate = terms.InterestRate
	case Checking:
		a.MonthlyFee = terms.MonthlyFee
	default:
		return Account{}, ErrUnknownVariant
	}

	return a, nil
}

// Deposit adds amount to the balance.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	a.Balance = a.Balance.Add(amount)

	return nil
}

// Withdraw takes amount from the balance. The balance never goes below zero.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	if a.Balance.LessThan(amount) {
		return &InsufficientFundsError{
			AccountID: a.ID,
			Requested: amount,
			Available: a.Balance,
		}
	}

	a.Balance = a.Balance.Sub(amount)

	return nil
}

// ApplyMonthlyAdjustment credits interest on savings and charges the flat fee on checking.
// It returns the delta actually applied.
//
// The checking fee is charged even when it drives the balance negative.
func (a *Account) ApplyMonthlyAdjustment() (decimal.Decimal, error) {
	old := a.Balance

	switch a.Variant {
	case Savings:
		interest := a.Balance.Mul(a.InterestRate).Round(2)
		a.Balance = a.Balance.Add(interest)
	case Checking:
		a.Balance = a.Balance.Sub(a.MonthlyFee)
	default:
		return decimal.Zero, ErrUnknownVariant
	}

	return a.Balance.Sub(old), nil
}
