package importer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"horas/internal/timeutil"
)

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// parseDate accepts ISO dates with an optional time part and returns the
// calendar date at UTC midnight.
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return timeutil.CalendarDate(parsed), nil
		}
	}

	return time.Time{}, fmt.Errorf("unsupported date format: %q", value)
}

// normalizeDecimal treats the right-most of ',' and '.' as the decimal
// separator and drops the other one as a thousands separator, so "1.234,5"
// and "1,234.5" both read as 1234.5 and "2,5" reads as 2.5.
func normalizeDecimal(value string) string {
	lastComma := strings.LastIndex(value, ",")
	lastDot := strings.LastIndex(value, ".")
	switch {
	case lastComma > lastDot:
		return strings.ReplaceAll(strings.ReplaceAll(value, ".", ""), ",", ".")
	case lastComma >= 0:
		return strings.ReplaceAll(value, ",", "")
	default:
		return value
	}
}

func parseHours(raw string) (float64, error) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return 0, fmt.Errorf("empty hours")
	}
	cleaned = normalizeDecimal(cleaned)

	hours, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("parse hours %q: %w", raw, err)
	}
	if math.IsNaN(hours) || math.IsInf(hours, 0) {
		return 0, fmt.Errorf("hours must be finite, got %q", raw)
	}
	if hours < 0 {
		return 0, fmt.Errorf("hours must not be negative")
	}
	return hours, nil
}
