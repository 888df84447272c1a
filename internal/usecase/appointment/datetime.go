package appointment

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateTimeLayout = "2006-01-02T15:04"

// ParseDateTime combines a calendar date and a 24-hour clock time into one
// value. Times given as "9:00" are left-padded to "09:00" before parsing.
func ParseDateTime(date, clock string) (time.Time, error) {
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)
	for len(clock) < 5 {
		clock = "0" + clock
	}
	return time.Parse(dateTimeLayout, date+"T"+clock)
}

// ParseCombined parses an already combined "YYYY-MM-DDTHH:MM" value, as
// accepted by partial updates.
func ParseCombined(value string) (time.Time, error) {
	return time.Parse(dateTimeLayout, strings.TrimSpace(value))
}

// coerceUint accepts JSON numbers and numeric strings; foreign keys arrive
// in either shape.
func coerceUint(field string, v any) (uint, error) {
	switch n := v.(type) {
	case float64:
		if n < 0 {
			return 0, fmt.Errorf("invalid %s: %v", field, v)
		}
		return uint(n), nil
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil || parsed < 0 {
			return 0, fmt.Errorf("invalid %s: %q", field, n)
		}
		return uint(parsed), nil
	default:
		return 0, fmt.Errorf("invalid %s: %v", field, v)
	}
}
