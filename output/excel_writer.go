package output

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"horas/internal/timeutil"
	"horas/worklog"
)

type ExcelWriter struct{}

func (w *ExcelWriter) Write(path string, table worklog.Table) error {
	return writeFile(path, func(out io.Writer) error {
		return w.Encode(out, table)
	})
}

func (w *ExcelWriter) Encode(out io.Writer, table worklog.Table) error {
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)

	for col, header := range worklog.Columns {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("set excel header %s: %w", cell, err)
		}
	}

	for i, entry := range table.Entries {
		row := i + 2
		values := []any{
			timeutil.DayKey(entry.Date),
			entry.Activity,
			entry.Hours,
		}

		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("set excel value %s: %w", cell, err)
			}
		}
	}

	if _, err := file.WriteTo(out); err != nil {
		return fmt.Errorf("write excel output: %w", err)
	}

	return nil
}
