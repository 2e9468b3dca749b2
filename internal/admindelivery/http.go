// Package admindelivery manages delivery layer of the privileged admin operations.
package admindelivery

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/moneypkg"
	"github.com/go-petr/pet-ledger/pkg/passpkg"
	"github.com/go-petr/pet-ledger/pkg/tokenpkg"
	"github.com/go-petr/pet-ledger/pkg/web"
)

// Username is the token subject of the admin session.
const Username = "admin"

// ErrWrongPassword indicates that the admin secret does not match.
var ErrWrongPassword = errors.New("wrong admin password")

// LedgerService provides the ledger operations reserved to admins.
//
//go:generate mockgen -source http.go -destination http_mock.go -package admindelivery
type LedgerService interface {
	ApplyMonthlyAdjustments(ctx context.Context) (domain.AdjustmentSummary, error)
	ResetAllAccounts(ctx context.Context) (int64, error)
	ResetAllTransactions(ctx context.Context) (int64, error)
}

// ReportService provides the aggregate views over accounts.
type ReportService interface {
	TotalBalance(ctx context.Context) (decimal.Decimal, error)
	AccountCount(ctx context.Context) (int64, error)
	MinimumBalanceAccount(ctx context.Context) (domain.Account, error)
	AccountsByBalanceAscending(ctx context.Context) ([]domain.Account, error)
}

// Handler facilitates admin delivery layer logic.
type Handler struct {
	ledger        LedgerService
	reports       ReportService
	tokenMaker    tokenpkg.Maker
	passwordHash  string
	tokenDuration time.Duration
}

// NewHandler returns admin handler.
// passwordHash is the bcrypt hash of the shared admin secret.
func NewHandler(
	ls LedgerService,
	rs ReportService,
	tokenMaker tokenpkg.Maker,
	passwordHash string,
	tokenDuration time.Duration,
) *Handler {
	return &Handler{
		ledger:        ls,
		reports:       rs,
		tokenMaker:    tokenMaker,
		passwordHash:  passwordHash,
		tokenDuration: tokenDuration,
	}
}

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

// Login handles http request to open an admin session.
func (h *Handler) Login(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req loginRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindingErrorMsg(err)})

		return
	}

	if err := passpkg.Check(req.Password, h.passwordHash); err != nil {
		l.Warn().Err(err).Msg("admin login rejected")
		gctx.JSON(http.StatusUnauthorized, web.Error(ErrWrongPassword))

		return
	}

	token, payload, err := h.tokenMaker.CreateToken(Username, h.tokenDuration)
	if err != nil {
		l.Error().Err(err).Send()
		web.RespondError(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, web.Response{
		AccessToken:          token,
		AccessTokenExpiresAt: payload.ExpiredAt,
	})
}

type adjustmentsResponse struct {
	Data struct {
		Summary domain.AdjustmentSummary `json:"summary"`
	} `json:"data"`
}

// ApplyAdjustments handles http request to run the monthly adjustment batch.
func (h *Handler) ApplyAdjustments(gctx *gin.Context) {
	summary, err := h.ledger.ApplyMonthlyAdjustments(gctx.Request.Context())
	if err != nil {
		web.RespondError(gctx, err)
		return
	}

	var res adjustmentsResponse
	res.Data.Summary = summary

	gctx.JSON(http.StatusOK, res)
}

type totalBalanceResponse struct {
	Data struct {
		TotalBalance string `json:"total_balance"`
	} `json:"data"`
}

// TotalBalance handles http request to get the sum of all balances.
func (h *Handler) TotalBalance(gctx *gin.Context) {
	total, err := h.reports.TotalBalance(gctx.Request.Context())
	if err != nil {
		web.RespondError(gctx, err)
		return
	}

	var res totalBalanceResponse
	res.Data.TotalBalance = moneypkg.Format(total)

	gctx.JSON(http.StatusOK, res)
}

type accountCountResponse struct {
	Data struct {
		AccountCount int64 `json:"account_count"`
	} `json:"data"`
}

// AccountCount handles http request to get the number of accounts.
func (h *Handler) AccountCount(gctx *gin.Context) {
	count, err := h.reports.AccountCount(gctx.Request.Context())
	if err != nil {
		web.RespondError(gctx, err)
		return
	}

	var res accountCountResponse
	res.Data.AccountCount = count

	gctx.JSON(http.StatusOK, res)
}

type accountResponse struct {
	Data struct {
		Account domain.Account `json:"account"`
	} `json:"data"`
}

// MinimumBalance handles http request to get the account with the lowest balance.
func (h *Handler) MinimumBalance(gctx *gin.Context) {
	account, err := h.reports.MinimumBalanceAccount(gctx.Request.Context())
	if err != nil {
		web.RespondError(gctx, err)
		return
	}

	var res accountResponse
	res.Data.Account = account

	gctx.JSON(http.StatusOK, res)
}

type accountsResponse struct {
	Data struct {
		Accounts []domain.Account `json:"accounts"`
	} `json:"data"`
}

// Accounts handles http request to list all accounts by balance, lowest first.
func (h *Handler) Accounts(gctx *gin.Context) {
	accounts, err := h.reports.AccountsByBalanceAscending(gctx.Request.Context())
	if err != nil {
		web.RespondError(gctx, err)
		return
	}

	var res accountsResponse
	res.Data.Accounts = accounts

	gctx.JSON(http.StatusOK, res)
}

type deletedResponse struct {
	Data struct {
		Deleted int64 `json:"deleted"`
	} `json:"data"`
}

// ResetAccounts handles http request to remove every account.
func (h *Handler) ResetAccounts(gctx *gin.Context) {
	h.reset(gctx, h.ledger.ResetAllAccounts)
}

// ResetTransactions handles http request to remove every transaction record.
func (h *Handler) ResetTransactions(gctx *gin.Context) {
	h.reset(gctx, h.ledger.ResetAllTransactions)
}

func (h *Handler) reset(gctx *gin.Context, op func(ctx context.Context) (int64, error)) {
	deleted, err := op(gctx.Request.Context())
	if err != nil {
		web.RespondError(gctx, err)
		return
	}

	var res deletedResponse
	res.Data.Deleted = deleted

	gctx.JSON(http.StatusOK, res)
}
