// Command server runs the statement parsing HTTP API.
package main

import (
	"fmt"
	"os"

	"github.com/cardlens/statement-parser/internal/api"
	"github.com/cardlens/statement-parser/internal/config"
	"github.com/cardlens/statement-parser/internal/logger"
	"github.com/cardlens/statement-parser/internal/parser"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	engine := parser.NewEngine(
		parser.WithMaxTransactions(cfg.Parser.MaxTransactions),
		parser.WithMinKeywordScore(cfg.Parser.MinKeywordScore),
		parser.WithLogger(log),
	)

	app := api.NewApp(cfg, engine, log)

	log.Info().
		Str("port", cfg.Server.Port).
		Strs("issuers", parser.SupportedIssuers()).
		Msg("statement parser listening")

	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
