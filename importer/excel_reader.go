package importer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ExcelReader reads the first sheet of a workbook. Date cells stored as
// serial numbers are converted to ISO dates.
type ExcelReader struct{}

func (r *ExcelReader) Read(path string) ([]string, []Record, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open excel file %s: %w", path, err)
	}
	defer file.Close()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, nil, fmt.Errorf("excel file has no sheets: %s", path)
	}

	rows, err := file.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, fmt.Errorf("read rows from sheet %s: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}

	normalizedHeaders := normalizeHeaders(rows[0])

	records := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		values := recordValues(normalizedHeaders, row)
		for header, value := range values {
			if matchesAlias(header, dateAliases) {
				values[header] = serialToISODate(value)
			}
		}

		records = append(records, Record{RowNumber: i + 2, Values: values})
	}

	return normalizedHeaders, records, nil
}

// serialToISODate leaves non-numeric values untouched so text dates still
// go through the regular date parser.
func serialToISODate(value string) string {
	serial, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return value
	}
	parsed, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return value
	}
	return parsed.Format("2006-01-02 15:04:05")
}
