package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestStatusCode(t *testing.T) {
	testCases := []struct {
		err  error
		want int
	}{
		{err: domain.ErrInvalidAmount, want: http.StatusBadRequest},
		{err: domain.ErrNegativeInitialBalance, want: http.StatusBadRequest},
		{err: domain.ErrAccountNotFound, want: http.StatusNotFound},
		{err: fmt.Errorf("lookup: %w", domain.ErrAccountNotFound), want: http.StatusNotFound},
		{err: domain.ErrDuplicateAccount, want: http.StatusConflict},
		{err: &domain.InsufficientFundsError{}, want: http.StatusUnprocessableEntity},
		{err: errorspkg.ErrOperationFailed, want: http.StatusInternalServerError},
		{err: errors.New("unexpected"), want: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		require.Equal(t, tc.want, StatusCode(tc.err), tc.err.Error())
	}
}

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("InsufficientFunds", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		gctx, _ := gin.CreateTestContext(recorder)

		RespondError(gctx, &domain.InsufficientFundsError{
			AccountID: "SAV-1",
			Requested: decimal.RequireFromString("100"),
			Available: decimal.RequireFromString("50.5"),
		})

		require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)

		res := Response{Data: &InsufficientFunds{}}
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&res))
		require.Equal(t, &InsufficientFunds{AccountID: "SAV-1", Requested: "100.00", Available: "50.50"}, res.Data)
	})

	t.Run("HidesStorageDetails", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		gctx, _ := gin.CreateTestContext(recorder)

		RespondError(gctx, errors.New("pq: relation does not exist"))

		require.Equal(t, http.StatusInternalServerError, recorder.Code)

		var res Response
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&res))
		require.Equal(t, errorspkg.ErrOperationFailed.Error(), res.Error)
	})
}
