package models

import "github.com/uptrace/bun"

// TicketSale is one resale transaction belonging to an event. Every sale
// field may be absent: the source CSVs carry blank and malformed values which
// are imported as NULL rather than dropped.
type TicketSale struct {
	bun.BaseModel `bun:"table:ticket_sales,alias:ts"`

	SaleID  int `bun:"sale_id,pk,autoincrement" json:"saleID"`
	EventID int `bun:"event_id,notnull" json:"eventID"`

	DateTime    *string  `bun:"date_time" json:"dateTime,omitempty"` // ISO-8601 sale instant
	TimeToEvent *float64 `bun:"time_to_event" json:"timeToEvent,omitempty"`
	Zone        *string  `bun:"zone" json:"zone,omitempty"`
	Section     *string  `bun:"section" json:"section,omitempty"`
	Row         *string  `bun:"row" json:"row,omitempty"`
	Qty         *int     `bun:"qty" json:"qty,omitempty"`

	// Quality is stored as a fixed 4-decimal numeric string, e.g. "0.8243".
	TicketQuality *string  `bun:"ticket_quality" json:"ticketQuality,omitempty"`
	Price         *float64 `bun:"price" json:"price,omitempty"`

	Event *Event `bun:"rel:belongs-to,join:event_id=event_id" json:"-"`
}
