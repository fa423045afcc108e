// Package parse recovers structured event and sale timestamps from the
// filename and free-text conventions used by the resale CSV exports.
package parse

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// EventIdentity holds the event fields recovered from a sale-file name.
type EventIdentity struct {
	AwayTeam  string
	HomeTeam  string
	Year      int
	Month     int
	Day       int
	DayOfWeek *string // nil when the filename omits it
	RawTime   string  // AM/PM-suffixed digit string, e.g. "700PM"
}

// The exports use several filename conventions. Patterns are tried in order
// and the first full match wins; team segments match non-greedily so they can
// absorb underscores only when the fixed-width tail requires it.
//
//	Cavaliers_Celtics_2024_05_07_Tue_700PM.csv   full form
//	Mavs_Celtics_2024_03_01_730PM.csv            missing day-of-week
//	Warriors_Celtics_202_03_03_Sun_330PM.csv     truncated year
var (
	fullPattern     = regexp.MustCompile(`^(.+?)_(.+?)_(\d{4})_(\d{1,2})_(\d{1,2})_([A-Za-z]{3})_(\d{1,4}(?i:[AP]M))$`)
	noDowPattern    = regexp.MustCompile(`^(.+?)_(.+?)_(\d{4})_(\d{1,2})_(\d{1,2})_(\d{1,4}(?i:[AP]M))$`)
	typoYearPattern = regexp.MustCompile(`^(.+?)_(.+?)_(\d{2,3})_(\d{1,2})_(\d{1,2})_([A-Za-z]{3})_(\d{1,4}(?i:[AP]M))$`)
)

// Filename parses a sale-file name into an EventIdentity. It never returns a
// partial identity: either one of the known conventions matches fully or an
// error is returned and the caller skips the file.
func Filename(name string) (*EventIdentity, error) {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))

	if m := fullPattern.FindStringSubmatch(base); m != nil {
		dow := m[6]
		return &EventIdentity{
			AwayTeam:  m[1],
			HomeTeam:  m[2],
			Year:      atoi(m[3]),
			Month:     atoi(m[4]),
			Day:       atoi(m[5]),
			DayOfWeek: &dow,
			RawTime:   m[7],
		}, nil
	}

	if m := noDowPattern.FindStringSubmatch(base); m != nil {
		return &EventIdentity{
			AwayTeam: m[1],
			HomeTeam: m[2],
			Year:     atoi(m[3]),
			Month:    atoi(m[4]),
			Day:      atoi(m[5]),
			RawTime:  m[6],
		}, nil
	}

	if m := typoYearPattern.FindStringSubmatch(base); m != nil {
		// Known typo in the data set: a 3-digit year lost its final "4"
		// (202 -> 2024). A 2-digit year is kept as-is; callers tolerate
		// the implausible value.
		year := m[3]
		if len(year) == 3 {
			year += "4"
		}
		dow := m[6]
		return &EventIdentity{
			AwayTeam:  m[1],
			HomeTeam:  m[2],
			Year:      atoi(year),
			Month:     atoi(m[4]),
			Day:       atoi(m[5]),
			DayOfWeek: &dow,
			RawTime:   m[7],
		}, nil
	}

	return nil, fmt.Errorf("unrecognized filename %q", name)
}

// atoi converts a digit string captured by one of the patterns above. The
// patterns guarantee the input is numeric.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
