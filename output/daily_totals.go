package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"

	"github.com/xuri/excelize/v2"
	"horas/report"
)

var dailyTotalsHeaders = []string{"Data", "Horas Totais"}

// WriteDailyTotals exports per-day hour sums, rounded to two decimals.
func WriteDailyTotals(path, format string, totals []report.Point) error {
	switch normalizeFormat(format) {
	case "csv":
		return writeFile(path, func(out io.Writer) error {
			return encodeDailyTotalsCSV(out, totals)
		})
	case "excel", "xlsx":
		return writeFile(path, func(out io.Writer) error {
			return encodeDailyTotalsExcel(out, totals)
		})
	default:
		return fmt.Errorf("unsupported output format for daily totals: %s", format)
	}
}

func encodeDailyTotalsCSV(out io.Writer, totals []report.Point) error {
	writer := csv.NewWriter(out)

	if err := writer.Write(dailyTotalsHeaders); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}
	for _, point := range totals {
		if err := writer.Write([]string{point.Label, fmt.Sprintf("%.2f", point.Hours)}); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv output: %w", err)
	}
	return nil
}

func encodeDailyTotalsExcel(out io.Writer, totals []report.Point) error {
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	if err := file.SetSheetRow(sheet, "A1", &dailyTotalsHeaders); err != nil {
		return fmt.Errorf("set excel headers: %w", err)
	}

	for i, point := range totals {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := file.SetSheetRow(sheet, cell, &[]any{point.Label, roundHours(point.Hours)}); err != nil {
			return fmt.Errorf("set excel row %s: %w", cell, err)
		}
	}

	if _, err := file.WriteTo(out); err != nil {
		return fmt.Errorf("write excel output: %w", err)
	}
	return nil
}

func roundHours(value float64) float64 {
	return math.Round(value*100) / 100
}
