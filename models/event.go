package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Event represents one game at a venue. Identity is the
// (away_team, home_team, event_date, event_time) tuple; an event row is
// created on first sight of that tuple and never updated afterwards.
type Event struct {
	bun.BaseModel `bun:"table:events,alias:e"`

	EventID   int     `bun:"event_id,pk,autoincrement" json:"eventID"`
	AwayTeam  string  `bun:"away_team,notnull,unique:events_identity" json:"awayTeam"`
	HomeTeam  string  `bun:"home_team,notnull,unique:events_identity" json:"homeTeam"`
	EventDate string  `bun:"event_date,notnull,unique:events_identity" json:"eventDate"` // YYYY-MM-DD
	EventTime string  `bun:"event_time,notnull,unique:events_identity" json:"eventTime"` // HH:MM, 24-hour
	DayOfWeek *string `bun:"day_of_week" json:"dayOfWeek,omitempty"`
	Venue     *string `bun:"venue" json:"venue,omitempty"`
	City      *string `bun:"city" json:"city,omitempty"`
	State     *string `bun:"state" json:"state,omitempty"`

	// Decomposed date fields kept for query convenience; consistent with
	// EventDate by construction.
	Year  *int `bun:"year" json:"year,omitempty"`
	Month *int `bun:"month" json:"month,omitempty"`
	Day   *int `bun:"day" json:"day,omitempty"`

	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"createdAt"`
}
