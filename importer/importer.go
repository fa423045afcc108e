// Package importer drives the per-file import pipeline: filename parsing,
// event resolution, row normalization, quality scoring, persistence.
package importer

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/sammykao/RL-TicketPricing-Agent/config"
	"github.com/sammykao/RL-TicketPricing-Agent/db"
	"github.com/sammykao/RL-TicketPricing-Agent/ingest"
	"github.com/sammykao/RL-TicketPricing-Agent/models"
	"github.com/sammykao/RL-TicketPricing-Agent/parse"
	"github.com/sammykao/RL-TicketPricing-Agent/quality"
)

// Importer holds the shared dependencies of the import pipeline.
type Importer struct {
	db  *bun.DB
	log *zap.Logger

	venue string
	city  string
	state string

	priceWeight     float64
	clearanceWeight float64
}

// New creates an Importer with the given database connection and settings.
func New(bdb *bun.DB, log *zap.Logger, cfg *config.Config) *Importer {
	return &Importer{
		db:              bdb,
		log:             log,
		venue:           cfg.Venue,
		city:            cfg.City,
		state:           cfg.State,
		priceWeight:     cfg.PriceWeight,
		clearanceWeight: cfg.ClearanceWeight,
	}
}

// ImportFile imports one sale CSV and returns the number of rows persisted.
// A file that cannot be attributed to an event (unrecognized filename,
// invalid event date-time) is skipped with a diagnostic and yields zero rows;
// a row that fails to persist is skipped without aborting the rest. Event
// resolution and row insertion run in one transaction so a crash mid-file
// leaves at most this file partially applied.
func (im *Importer) ImportFile(ctx context.Context, path string) (int, error) {
	id, err := parse.Filename(path)
	if err != nil {
		im.log.Warn("skipping file: could not parse filename", zap.String("file", filepath.Base(path)))
		return 0, nil
	}

	eventDate, eventTime := parse.EventDateTime(id.Year, id.Month, id.Day, id.RawTime)
	eventAt, err := parse.EventInstant(id.Year, id.Month, id.Day, eventTime)
	if err != nil {
		im.log.Warn("skipping file: bad event date-time",
			zap.String("file", filepath.Base(path)), zap.Error(err))
		return 0, nil
	}

	venue := im.venue
	if venue == "" {
		venue = VenueFromPath(path)
	}

	ev := &models.Event{
		AwayTeam:  id.AwayTeam,
		HomeTeam:  id.HomeTeam,
		EventDate: eventDate,
		EventTime: eventTime,
		DayOfWeek: id.DayOfWeek,
		Venue:     opt(venue),
		City:      opt(im.city),
		State:     opt(im.state),
		Year:      &id.Year,
		Month:     &id.Month,
		Day:       &id.Day,
	}

	inserted := 0
	err = im.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		eventID, err := db.GetOrCreateEvent(ctx, tx, ev)
		if err != nil {
			return fmt.Errorf("resolving event for %s: %w", filepath.Base(path), err)
		}

		sales, err := ingest.ProcessFile(path, eventAt)
		if err != nil {
			// The event row stands; the file just contributes no sales.
			im.log.Warn("could not process file", zap.String("file", filepath.Base(path)), zap.Error(err))
			return nil
		}

		tickets := make([]quality.Ticket, len(sales))
		for i, s := range sales {
			tickets[i] = quality.Ticket{Price: s.Price, TimeToEvent: s.TimeToEvent}
		}
		for i, score := range quality.ScoreEvent(tickets, im.priceWeight, im.clearanceWeight) {
			q := fmt.Sprintf("%.4f", score)
			sales[i].Quality = &q
		}

		for i, s := range sales {
			row := &models.TicketSale{
				EventID:       eventID,
				DateTime:      s.DateTime,
				TimeToEvent:   s.TimeToEvent,
				Zone:          s.Zone,
				Section:       s.Section,
				Row:           s.Row,
				Qty:           s.Qty,
				TicketQuality: s.Quality,
				Price:         s.Price,
			}
			if err := db.InsertTicketSale(ctx, tx, row); err != nil {
				im.log.Warn("skipping sale row",
					zap.String("file", filepath.Base(path)), zap.Int("row", i+1), zap.Error(err))
				continue
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

// ImportDir walks root, imports every .csv file found, and returns the total
// number of rows persisted. Files are processed one at a time; a failing file
// is logged and skipped.
func (im *Importer) ImportDir(ctx context.Context, root string) (int, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".csv") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("walking %s: %w", root, err)
	}

	im.log.Info("found csv files", zap.Int("count", len(files)), zap.String("dir", root))

	total := 0
	for i, path := range files {
		im.log.Info("processing file",
			zap.Int("n", i+1), zap.Int("of", len(files)), zap.String("file", filepath.Base(path)))
		n, err := im.ImportFile(ctx, path)
		if err != nil {
			im.log.Warn("file import failed", zap.String("file", filepath.Base(path)), zap.Error(err))
			continue
		}
		im.log.Info("imported rows", zap.Int("rows", n), zap.String("file", filepath.Base(path)))
		total += n
	}
	return total, nil
}

// VenueFromPath infers the venue from the path segment immediately following
// a segment literally named "data" (.../data/VenueName/file.csv).
func VenueFromPath(path string) string {
	parts := strings.Split(filepath.ToSlash(path), "/")
	for i, p := range parts {
		if p == "data" {
			if i+1 < len(parts) {
				return parts[i+1]
			}
			break
		}
	}
	return "Unknown"
}

func opt(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
