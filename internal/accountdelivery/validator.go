package accountdelivery

import (
	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-playground/validator/v10"
)

// ValidVariant validates whether the account variant is supported.
var ValidVariant validator.Func = func(fl validator.FieldLevel) bool {
	if v, ok := fl.Field().Interface().(string); ok {
		_, err := domain.ParseVariant(v)
		return err == nil
	}
	return false
}
