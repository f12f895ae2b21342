package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"horas/internal/timeutil"
	"horas/worklog"
)

// CSVWriter serializes a table with the canonical Data,Atividade,Horas Totais
// header. Hours keep full precision so the file loads back unchanged.
type CSVWriter struct{}

func (w *CSVWriter) Write(path string, table worklog.Table) error {
	return writeFile(path, func(out io.Writer) error {
		return w.Encode(out, table)
	})
}

func (w *CSVWriter) Encode(out io.Writer, table worklog.Table) error {
	writer := csv.NewWriter(out)

	if err := writer.Write(worklog.Columns); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}

	for _, entry := range table.Entries {
		row := []string{
			timeutil.DayKey(entry.Date),
			entry.Activity,
			FormatHours(entry.Hours),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv output: %w", err)
	}

	return nil
}

// FormatHours renders hours with the shortest representation that parses
// back to the same float.
func FormatHours(hours float64) string {
	return strconv.FormatFloat(hours, 'f', -1, 64)
}
