package report

import (
	"sort"

	"horas/internal/timeutil"
	"horas/worklog"
)

// Point is one labelled value of a chart series.
type Point struct {
	Label string  `json:"label"`
	Hours float64 `json:"hours"`
}

// DailyTotals returns hours per calendar date, oldest first.
func DailyTotals(table worklog.Table) []Point {
	groups := groupSums(canonicalEntries(table.Entries), timeutil.DayKey)
	out := make([]Point, 0, len(groups))
	for _, group := range groups {
		out = append(out, Point{Label: group.key, Hours: group.hours})
	}
	return out
}

// ActivityTotals returns hours per activity label, sorted by label.
func ActivityTotals(table worklog.Table) []Point {
	byActivity := make(map[string]float64)
	for _, entry := range canonicalEntries(table.Entries) {
		byActivity[entry.Activity] += entry.Hours
	}

	out := make([]Point, 0, len(byActivity))
	for activity, hours := range byActivity {
		out = append(out, Point{Label: activity, Hours: hours})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Label < out[j].Label
	})
	return out
}

// Cumulative turns a series into its running total.
func Cumulative(series []Point) []Point {
	out := make([]Point, 0, len(series))
	total := 0.0
	for _, point := range series {
		total += point.Hours
		out = append(out, Point{Label: point.Label, Hours: total})
	}
	return out
}

// MaxHours returns the largest value of series, or 0 when empty.
func MaxHours(series []Point) float64 {
	highest := 0.0
	for _, point := range series {
		if point.Hours > highest {
			highest = point.Hours
		}
	}
	return highest
}
