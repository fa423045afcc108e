// cmd/import/main.go
// Imports every ticket-resale CSV under the data directory into the local
// SQLite database, scoring each sale against its event.
//
// Usage:
//
//	DATA_DIR=./data DB_PATH=./db.sqlite go run ./cmd/import
package main

import (
	"context"
	"flag"
	"os"

	"go.uber.org/zap"

	"github.com/sammykao/RL-TicketPricing-Agent/config"
	bundb "github.com/sammykao/RL-TicketPricing-Agent/db"
	"github.com/sammykao/RL-TicketPricing-Agent/importer"
	applog "github.com/sammykao/RL-TicketPricing-Agent/logger"
	"github.com/sammykao/RL-TicketPricing-Agent/models"
)

func main() {
	dataDir := flag.String("data", "", "data directory (overrides DATA_DIR)")
	flag.Parse()

	cfg := config.Load()
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}

	logger, err := applog.New(cfg.Debug)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	if _, err := os.Stat(cfg.DataDir); err != nil {
		logger.Fatal("data directory not found", zap.String("dir", cfg.DataDir), zap.Error(err))
	}

	ctx := context.Background()

	db := bundb.Setup(cfg)
	defer db.Close()

	if err := bundb.CreateTables(ctx, db); err != nil {
		logger.Fatal("create tables failed", zap.Error(err))
	}

	im := importer.New(db, logger, cfg)
	total, err := im.ImportDir(ctx, cfg.DataDir)
	if err != nil {
		logger.Fatal("import failed", zap.Error(err))
	}

	events, err := db.NewSelect().Model((*models.Event)(nil)).Count(ctx)
	if err != nil {
		logger.Fatal("count events failed", zap.Error(err))
	}
	sales, err := db.NewSelect().Model((*models.TicketSale)(nil)).Count(ctx)
	if err != nil {
		logger.Fatal("count ticket sales failed", zap.Error(err))
	}

	logger.Info("import complete",
		zap.Int("rows_imported", total),
		zap.Int("events", events),
		zap.Int("ticket_sales", sales),
	)
}
