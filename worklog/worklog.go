package worklog

import "time"

// Column names of the canonical source table, in export order.
const (
	ColumnDate     = "Data"
	ColumnActivity = "Atividade"
	ColumnHours    = "Horas Totais"
)

// Columns is the fixed column set every loaded table carries, even when empty.
var Columns = []string{ColumnDate, ColumnActivity, ColumnHours}

// Entry is one logged record of hours spent on an activity on a given date.
type Entry struct {
	Date     time.Time
	Activity string
	Hours    float64
}

// Table is the loaded record store. The zero value is the empty table.
type Table struct {
	Entries []Entry
}

func (t Table) Columns() []string {
	return append([]string(nil), Columns...)
}

func (t Table) Len() int {
	return len(t.Entries)
}

func (t Table) Empty() bool {
	return len(t.Entries) == 0
}

// MaxDate returns the most recent non-zero date in the table.
func (t Table) MaxDate() (time.Time, bool) {
	var latest time.Time
	found := false
	for _, entry := range t.Entries {
		if entry.Date.IsZero() {
			continue
		}
		if !found || entry.Date.After(latest) {
			latest = entry.Date
			found = true
		}
	}
	return latest, found
}
