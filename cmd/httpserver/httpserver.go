// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/accountdelivery"
	"github.com/go-petr/pet-ledger/internal/accountrepo"
	"github.com/go-petr/pet-ledger/internal/admindelivery"
	"github.com/go-petr/pet-ledger/internal/ledgerservice"
	"github.com/go-petr/pet-ledger/internal/middleware"
	"github.com/go-petr/pet-ledger/internal/reportservice"
	"github.com/go-petr/pet-ledger/internal/transferdelivery"
	"github.com/go-petr/pet-ledger/pkg/configpkg"
	"github.com/go-petr/pet-ledger/pkg/moneypkg"
	"github.com/go-petr/pet-ledger/pkg/tokenpkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB         *sql.DB
	Engine     *gin.Engine
	Config     configpkg.Config
	TokenMaker tokenpkg.Maker
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	tokenMaker, err := tokenpkg.New(config.TokenKind, config.TokenSymmetricKey)
	if err != nil {
		return nil, errors.New("cannot create token maker")
	}

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("variant", accountdelivery.ValidVariant); err != nil {
			return nil, errors.New("cannot register variant validator")
		}

		if err := v.RegisterValidation("amount", moneypkg.ValidAmount); err != nil {
			return nil, errors.New("cannot register amount validator")
		}
	}

	ledgerService := ledgerservice.New(conn, config.Terms())
	reportService := reportservice.New(accountrepo.NewRepoPGS(conn))

	accountHandler := accountdelivery.NewHandler(ledgerService)
	transferHandler := transferdelivery.NewHandler(ledgerService)
	adminHandler := admindelivery.NewHandler(
		ledgerService,
		reportService,
		tokenMaker,
		config.AdminPasswordHash,
		config.AccessTokenDuration,
	)

	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))

	engine.POST("/accounts", accountHandler.Create)
	engine.GET("/accounts/:id", accountHandler.Get)
	engine.POST("/accounts/:id/deposits", accountHandler.Deposit)
	engine.POST("/accounts/:id/withdrawals", accountHandler.Withdraw)
	engine.GET("/accounts/:id/transactions", accountHandler.History)

	engine.POST("/transfers", transferHandler.Create)

	engine.POST("/admin/sessions", adminHandler.Login)

	adminRoutes := engine.Group("/admin").Use(middleware.AuthMiddleware(tokenMaker))

	adminRoutes.POST("/adjustments", adminHandler.ApplyAdjustments)
	adminRoutes.GET("/reports/total-balance", adminHandler.TotalBalance)
	adminRoutes.GET("/reports/account-count", adminHandler.AccountCount)
	adminRoutes.GET("/reports/minimum-balance", adminHandler.MinimumBalance)
	adminRoutes.GET("/accounts", adminHandler.Accounts)
	adminRoutes.DELETE("/accounts", adminHandler.ResetAccounts)
	adminRoutes.DELETE("/transactions", adminHandler.ResetTransactions)

	server := &Server{
		DB:         conn,
		Engine:     engine,
		Config:     config,
		TokenMaker: tokenMaker,
	}

	return server, nil
}
