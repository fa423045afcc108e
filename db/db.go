package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/driver/sqliteshim"
	"github.com/uptrace/bun/extra/bundebug"

	"github.com/sammykao/RL-TicketPricing-Agent/config"
	"github.com/sammykao/RL-TicketPricing-Agent/models"
)

// Setup opens the local SQLite database used by the importer.
func Setup(cfg *config.Config) *bun.DB {
	sqldb, err := sql.Open(sqliteshim.ShimName, "file:"+cfg.DBPath+"?cache=shared")
	if err != nil {
		log.Fatal("failed to open database:", err)
	}
	// SQLite allows a single writer; the pipeline is synchronous anyway.
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())

	if cfg.Debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}

	if err := db.PingContext(context.Background()); err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	return db
}

// SetupPostgres opens the PostgreSQL target used by cmd/migrate.
func SetupPostgres(cfg *config.Config) *bun.DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.PostgresDSN())))
	db := bun.NewDB(sqldb, pgdialect.New())

	if cfg.Debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}

	if err := db.PingContext(context.Background()); err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	return db
}

// CreateTables creates all tables in dependency order.
func CreateTables(ctx context.Context, db *bun.DB) error {
	tables := []interface{}{
		(*models.Event)(nil),
		(*models.TicketSale)(nil),
	}

	for _, model := range tables {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("creating table for %T: %w", model, err)
		}
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_ticket_sales_event_id ON ticket_sales (event_id)`,
		`CREATE INDEX IF NOT EXISTS idx_ticket_sales_date_time ON ticket_sales (date_time)`,
	}
	for _, stmt := range indexes {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			log.Printf("index: %v", err)
		}
	}

	return nil
}

// GetOrCreateEvent returns the event_id for the event's
// (away_team, home_team, event_date, event_time) identity, inserting the row
// on first encounter. Existing events are never updated, so re-importing a
// file is idempotent at the event level.
func GetOrCreateEvent(ctx context.Context, idb bun.IDB, ev *models.Event) (int, error) {
	var existing models.Event
	err := idb.NewSelect().
		Model(&existing).
		Column("event_id").
		Where("away_team = ?", ev.AwayTeam).
		Where("home_team = ?", ev.HomeTeam).
		Where("event_date = ?", ev.EventDate).
		Where("event_time = ?", ev.EventTime).
		Scan(ctx)
	if err == nil {
		return existing.EventID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("looking up event: %w", err)
	}

	if _, err := idb.NewInsert().Model(ev).Exec(ctx); err != nil {
		return 0, fmt.Errorf("inserting event: %w", err)
	}
	return ev.EventID, nil
}

// InsertTicketSale inserts a single sale row. Sales are append-only and never
// deduplicated.
func InsertTicketSale(ctx context.Context, idb bun.IDB, sale *models.TicketSale) error {
	if _, err := idb.NewInsert().Model(sale).Exec(ctx); err != nil {
		return fmt.Errorf("inserting ticket sale: %w", err)
	}
	return nil
}
