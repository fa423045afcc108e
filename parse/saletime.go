package parse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var saleClockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*((?i:AM|PM))`)

// SaleDateTime parses the free-text sale timestamp column, expected as
// `MM-DD-YY / HH:MM AM/PM` and possibly wrapped in quotes, e.g.
// `"05-07-24 / 04:48 PM"`. A 2-digit year is promoted into the 2000s.
//
// Any deviation from the expected shape reports ok=false instead of an
// error: a bad timestamp nulls the dependent fields of its row but never
// aborts the batch.
func SaleDateTime(s string) (t time.Time, ok bool) {
	s = strings.Trim(s, `"`)

	parts := strings.Split(s, " / ")
	if len(parts) != 2 {
		return time.Time{}, false
	}

	dateParts := strings.Split(parts[0], "-")
	if len(dateParts) != 3 {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(dateParts[0])
	if err != nil {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(dateParts[1])
	if err != nil {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(dateParts[2])
	if err != nil {
		return time.Time{}, false
	}
	if year < 100 {
		year += 2000
	}

	m := saleClockPattern.FindStringSubmatch(parts[1])
	if m == nil {
		return time.Time{}, false
	}
	hour := atoi(m[1])
	minute := atoi(m[2])

	switch strings.ToUpper(m[3]) {
	case "PM":
		if hour != 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}

	return civilTime(year, month, day, hour, minute)
}
