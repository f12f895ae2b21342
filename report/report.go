package report

import (
	"sort"
	"time"

	"horas/internal/timeutil"
	"horas/worklog"
)

// Summary holds the five sidebar statistics. Values are unrounded.
type Summary struct {
	MonthTotal     float64 `json:"monthTotal"`
	WeekTotal      float64 `json:"weekTotal"`
	DailyAverage   float64 `json:"dailyAverage"`
	WeeklyAverage  float64 `json:"weeklyAverage"`
	MonthlyAverage float64 `json:"monthlyAverage"`
}

// Summarize computes the summary of table. The current month and week are
// those of the most recent date in the data, not of the wall clock. An empty
// table yields the zero Summary.
func Summarize(table worklog.Table) Summary {
	entries := canonicalEntries(table.Entries)
	if len(entries) == 0 {
		return Summary{}
	}

	latest := entries[len(entries)-1].Date
	referenceMonth := timeutil.MonthKey(latest)
	referenceWeek := timeutil.WeekKey(latest)

	var summary Summary
	for _, entry := range entries {
		if timeutil.MonthKey(entry.Date) == referenceMonth {
			summary.MonthTotal += entry.Hours
		}
		if timeutil.WeekKey(entry.Date) == referenceWeek {
			summary.WeekTotal += entry.Hours
		}
	}

	summary.DailyAverage = meanOfGroupSums(entries, timeutil.DayKey)
	summary.WeeklyAverage = meanOfGroupSums(entries, timeutil.WeekKey)
	summary.MonthlyAverage = meanOfGroupSums(entries, timeutil.MonthKey)

	return summary
}

// canonicalEntries drops dateless entries and orders the rest by date,
// activity and hours so float sums do not depend on source row order.
func canonicalEntries(entries []worklog.Entry) []worklog.Entry {
	out := make([]worklog.Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.Date.IsZero() {
			continue
		}
		out = append(out, entry)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		if out[i].Activity != out[j].Activity {
			return out[i].Activity < out[j].Activity
		}
		return out[i].Hours < out[j].Hours
	})
	return out
}

type groupSum struct {
	key   string
	hours float64
}

// groupSums sums hours per key. Keys come back in ascending order.
func groupSums(entries []worklog.Entry, keyOf func(time.Time) string) []groupSum {
	byKey := make(map[string]float64)
	for _, entry := range entries {
		byKey[keyOf(entry.Date)] += entry.Hours
	}

	out := make([]groupSum, 0, len(byKey))
	for key, hours := range byKey {
		out = append(out, groupSum{key: key, hours: hours})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].key < out[j].key
	})
	return out
}

func meanOfGroupSums(entries []worklog.Entry, keyOf func(time.Time) string) float64 {
	groups := groupSums(entries, keyOf)
	if len(groups) == 0 {
		return 0
	}
	total := 0.0
	for _, group := range groups {
		total += group.hours
	}
	return total / float64(len(groups))
}
