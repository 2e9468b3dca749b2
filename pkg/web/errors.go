package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
	"github.com/go-petr/pet-ledger/pkg/moneypkg"
)

// InsufficientFunds is the data of a rejected withdrawal or transfer.
type InsufficientFunds struct {
	AccountID string `json:"account_id"`
	Requested string `json:"requested"`
	Available string `json:"available"`
}

// StatusCode maps err to the HTTP status reported to clients.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrNegativeInitialBalance),
		errors.Is(err, domain.ErrUnknownVariant),
		errors.Is(err, moneypkg.ErrMalformedAmount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateAccount):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity
	}

	return http.StatusInternalServerError
}

// RespondError writes err as a JSON error response.
// Errors outside the ledger taxonomy are reported as errorspkg.ErrOperationFailed.
func RespondError(gctx *gin.Context, err error) {
	status := StatusCode(err)

	res := Error(err)
	if status == http.StatusInternalServerError {
		res = Error(errorspkg.ErrOperationFailed)
	}

	var insufficient *domain.InsufficientFundsError
	if errors.As(err, &insufficient) {
		res.Data = InsufficientFunds{
			AccountID: insufficient.AccountID,
			Requested: moneypkg.Format(insufficient.Requested),
			Available: moneypkg.Format(insufficient.Available),
		}
	}

	gctx.JSON(status, res)
}
