// Package ingest reads resale CSV exports and normalizes their rows into
// typed, event-relative sale records.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sammykao/RL-TicketPricing-Agent/parse"
)

// Column labels consumed from the exports. The sale-timestamp label varies
// by timezone suffix ("Date/Time (EDT)", "Date/Time (EST)", ...) so it is
// matched by substring; the rest are exact. Unknown columns are ignored.
const (
	dateTimeLabel = "Date/Time"
	zoneLabel     = "Zone"
	sectionLabel  = "Section"
	rowLabel      = "Row"
	qtyLabel      = "Qty"
	priceLabel    = "Price"
)

// RawRow is one as-read CSV row. Every field may be blank.
type RawRow struct {
	DateTime string
	Zone     string
	Section  string
	Row      string
	Qty      string
	Price    string
}

// Sale is the normalized, event-relative form of a RawRow. Nil fields record
// absent or unparseable source values; a malformed field is a data-quality
// signal, not an error. Quality stays nil until the full event batch has been
// scored.
type Sale struct {
	SaleAt      *time.Time // nil when the sale timestamp did not parse
	DateTime    *string    // ISO-8601 form of SaleAt
	TimeToEvent *float64   // hours; positive = sold before the event
	Zone        *string
	Section     *string
	Row         *string
	Qty         *int
	Price       *float64
	Quality     *string // fixed 4-decimal string, set by the importer
}

// Normalize converts one raw row into a Sale relative to the event instant.
func Normalize(raw RawRow, eventAt time.Time) Sale {
	s := Sale{
		Zone:    optString(raw.Zone),
		Section: optString(raw.Section),
		Row:     optString(raw.Row),
	}

	if at, ok := parse.SaleDateTime(raw.DateTime); ok {
		iso := at.Format("2006-01-02T15:04:05")
		hours := eventAt.Sub(at).Hours()
		s.SaleAt = &at
		s.DateTime = &iso
		s.TimeToEvent = &hours
	}

	if v := stripQuotes(raw.Qty); v != "" {
		if qty, err := strconv.Atoi(v); err == nil {
			s.Qty = &qty
		}
	}
	if v := stripQuotes(raw.Price); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			s.Price = &price
		}
	}

	return s
}

// ProcessFile reads every row of a CSV export and returns the normalized
// sales in file order.
func ProcessFile(path string, eventAt time.Time) ([]Sale, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate ragged rows

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header of %s: %w", path, err)
	}
	cols := columnIndex(header)

	var sales []Sale
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		sales = append(sales, Normalize(cols.rawRow(record), eventAt))
	}
	return sales, nil
}

// columns maps the consumed labels to their positions in the header.
// A value of -1 means the column is missing from this export.
type columns struct {
	dateTime int
	zone     int
	section  int
	row      int
	qty      int
	price    int
}

func columnIndex(header []string) columns {
	cols := columns{dateTime: -1, zone: -1, section: -1, row: -1, qty: -1, price: -1}
	for i, label := range header {
		label = strings.TrimSpace(stripQuotes(label))
		switch {
		case strings.Contains(label, dateTimeLabel):
			if cols.dateTime == -1 {
				cols.dateTime = i
			}
		case label == zoneLabel:
			cols.zone = i
		case label == sectionLabel:
			cols.section = i
		case label == rowLabel:
			cols.row = i
		case label == qtyLabel:
			cols.qty = i
		case label == priceLabel:
			cols.price = i
		}
	}
	return cols
}

func (c columns) rawRow(record []string) RawRow {
	return RawRow{
		DateTime: field(record, c.dateTime),
		Zone:     field(record, c.zone),
		Section:  field(record, c.section),
		Row:      field(record, c.row),
		Qty:      field(record, c.qty),
		Price:    field(record, c.price),
	}
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}

// stripQuotes removes a single layer of surrounding quote characters.
func stripQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// optString strips quotes and maps the empty string to nil.
func optString(s string) *string {
	s = stripQuotes(s)
	if s == "" {
		return nil
	}
	return &s
}
