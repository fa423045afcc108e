package parse

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// EventDateTime formats the parsed filename fields as an event date
// ("YYYY-MM-DD") and 24-hour event time ("HH:MM").
//
// rawTime is an AM/PM-suffixed digit string with no hour/minute separator.
// A 4-digit body is ambiguous: "1000" is 10:00 but "7300" is a legacy way of
// writing 7:30. The historical reading is kept for compatibility: when the
// leading two digits form an hour in [10,12] the body is HHMM, otherwise the
// first digit is the hour and the remaining three digits are the minute
// field. That minute field can exceed 59 ("7300" yields minute 300); the
// anomaly is preserved here and rejected later by EventInstant, never
// silently corrected.
func EventDateTime(year, month, day int, rawTime string) (eventDate, eventTime string) {
	upper := strings.ToUpper(rawTime)
	isPM := strings.Contains(upper, "PM")
	isAM := strings.Contains(upper, "AM")

	body := strings.TrimSpace(strings.NewReplacer("PM", "", "AM", "").Replace(upper))

	var hour, minute int
	switch n := len(body); {
	case n == 3: // "700" -> 7:00, "330" -> 3:30
		hour = atoi(body[:1])
		minute = atoi(body[1:3])
	case n == 4:
		if first := atoi(body[:2]); first >= 10 && first <= 12 {
			hour = first
			minute = atoi(body[2:4])
		} else {
			hour = atoi(body[:1])
			minute = atoi(body[1:4])
		}
	case n >= 2: // fallback: last two digits are the minutes
		minute = atoi(body[n-2:])
		if n > 2 {
			hour = atoi(body[:n-2])
		}
	default:
		hour = atoi(body)
	}

	if isPM && hour != 12 {
		hour += 12
	} else if isAM && hour == 12 {
		hour = 0
	}

	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), fmt.Sprintf("%02d:%02d", hour, minute)
}

// EventInstant combines decomposed date fields and an "HH:MM" event time into
// an absolute instant, rejecting anything that is not a valid calendar
// date-time (month 13, minute 300, ...).
func EventInstant(year, month, day int, eventTime string) (time.Time, error) {
	parts := strings.Split(eventTime, ":")
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("malformed event time %q", eventTime)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed event time %q", eventTime)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed event time %q", eventTime)
	}

	t, ok := civilTime(year, month, day, hour, minute)
	if !ok {
		return time.Time{}, fmt.Errorf("invalid calendar instant %04d-%02d-%02d %s", year, month, day, eventTime)
	}
	return t, nil
}

// civilTime builds a UTC instant and reports whether the components describe
// a real calendar date-time. time.Date silently normalizes out-of-range
// components (minute 300 rolls into hours), so the result is compared back
// against the inputs.
func civilTime(year, month, day, hour, minute int) (time.Time, bool) {
	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day ||
		t.Hour() != hour || t.Minute() != minute {
		return time.Time{}, false
	}
	return t, true
}
