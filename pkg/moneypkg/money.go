// Package moneypkg provides common money related functionality for apps.
package moneypkg

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ErrMalformedAmount indicates that the amount is not a decimal number.
var ErrMalformedAmount = errors.New("malformed amount")

// Parse converts user input into an exact decimal amount.
//
// Exponent notation is rejected so that amounts always read as plain numbers.
func Parse(s string) (decimal.Decimal, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "$")
	if s == "" || strings.ContainsAny(s, "eE") {
		return decimal.Zero, ErrMalformedAmount
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrMalformedAmount
	}

	return d, nil
}

// Format renders an amount with two decimal places.
func Format(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// ValidAmount validates whether the field holds a decimal amount.
var ValidAmount validator.Func = func(fl validator.FieldLevel) bool {
	if s, ok := fl.Field().Interface().(string); ok {
		_, err := Parse(s)
		return err == nil
	}
	return false
}
