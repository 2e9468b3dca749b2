// Package main runs the interactive ledger console against the configured database.
package main

import (
	"context"
	"os"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/go-petr/pet-ledger/internal/accountrepo"
	"github.com/go-petr/pet-ledger/internal/console"
	"github.com/go-petr/pet-ledger/internal/ledgerservice"
	"github.com/go-petr/pet-ledger/internal/middleware"
	"github.com/go-petr/pet-ledger/internal/reportservice"
	"github.com/go-petr/pet-ledger/pkg/configpkg"
	"github.com/go-petr/pet-ledger/pkg/dbpkg"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	// Keep the menus readable: only warnings and worse reach the terminal.
	logger := middleware.CreateLogger(config).Level(zerolog.WarnLevel)

	db, err := dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to database")
	}
	defer db.Close()

	readPassword := func() (string, error) {
		b, err := term.ReadPassword(int(syscall.Stdin))
		return string(b), err
	}

	c := console.New(
		ledgerservice.New(db, config.Terms()),
		reportservice.New(accountrepo.NewRepoPGS(db)),
		os.Stdin,
		os.Stdout,
		readPassword,
		config.AdminPasswordHash,
	)

	if err := c.Run(logger.WithContext(context.Background())); err != nil {
		logger.Error().Err(err).Msg("console stopped")
	}
}
