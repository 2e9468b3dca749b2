// Package accountdelivery manages delivery layer of accounts.
package accountdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/moneypkg"
	"github.com/go-petr/pet-ledger/pkg/web"
)

// Service provides service layer interface needed by account delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package accountdelivery
type Service interface {
	CreateAccount(ctx context.Context, v domain.Variant, initialBalance decimal.Decimal) (domain.Account, error)
	FindAccount(ctx context.Context, id string) (domain.Account, error)
	Deposit(ctx context.Context, id string, amount decimal.Decimal) (domain.Account, error)
	Withdraw(ctx context.Context, id string, amount decimal.Decimal) (domain.Account, error)
	TransactionHistory(ctx context.Context, id string) ([]domain.Transaction, error)
}

// Handler facilitates account delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns account handler.
func NewHandler(as Service) Handler {
	return Handler{service: as}
}

type data struct {
	Account domain.Account `json:"account"`
}

type response struct {
	Data data `json:"data,omitempty"`
}

type createRequest struct {
	Variant        string `json:"variant" binding:"required,variant"`
	InitialBalance string `json:"initial_balance" binding:"omitempty,amount"`
}

// Create handles http request to open an account.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindingErrorMsg(err)})

		return
	}

	variant, err := domain.ParseVariant(req.Variant)
	if err != nil {
		web.RespondError(gctx, err)
		return
	}

	initialBalance := decimal.Zero
	if req.InitialBalance != "" {
		initialBalance, err = moneypkg.Parse(req.InitialBalance)
		if err != nil {
			web.RespondError(gctx, err)
			return
		}
	}

	account, err := h.service.CreateAccount(ctx, variant, initialBalance)
	if err != nil {
		web.RespondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusCreated, response{Data: data{account}})
}

type uriRequest struct {
	ID string `uri:"id" binding:"required"`
}

// Get handles http request to get account.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req uriRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindingErrorMsg(err)})

		return
	}

	account, err := h.service.FindAccount(ctx, req.ID)
	if err != nil {
		web.RespondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{account}})
}

type amountRequest struct {
	Amount string `json:"amount" binding:"required,amount"`
}

// Deposit handles http request to deposit money into the account.
func (h *Handler) Deposit(gctx *gin.Context) {
	h.move(gctx, h.service.Deposit)
}

// Withdraw handles http request to withdraw money from the account.
func (h *Handler) Withdraw(gctx *gin.Context) {
	h.move(gctx, h.service.Withdraw)
}

func (h *Handler) move(gctx *gin.Context, op func(ctx context.Context, id string, amount decimal.Decimal) (domain.Account, error)) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri uriRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindingErrorMsg(err)})

		return
	}

	var req amountRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindingErrorMsg(err)})

		return
	}

	amount, err := moneypkg.Parse(req.Amount)
	if err != nil {
		web.RespondError(gctx, err)
		return
	}

	account, err := op(ctx, uri.ID, amount)
	if err != nil {
		web.RespondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{account}})
}

type dataTransactions struct {
	Transactions []domain.Transaction `json:"transactions"`
}

type responseTransactions struct {
	Data dataTransactions `json:"data,omitempty"`
}

// History handles http request to list the account's transactions, most recent first.
func (h *Handler) History(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req uriRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindingErrorMsg(err)})

		return
	}

	transactions, err := h.service.TransactionHistory(ctx, req.ID)
	if err != nil {
		web.RespondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseTransactions{Data: dataTransactions{transactions}})
}
