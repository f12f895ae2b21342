package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// CSVReader reads delimited text. A leading BOM is consumed, and UTF-16
// sources announced by their BOM are decoded to UTF-8.
type CSVReader struct {
	// Comma defaults to ',' when zero.
	Comma rune
}

func (r *CSVReader) Read(path string) ([]string, []Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open csv file %s: %w", path, err)
	}
	defer file.Close()

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	reader := csv.NewReader(transform.NewReader(file, decoder))
	reader.FieldsPerRecord = -1
	if r.Comma != 0 {
		reader.Comma = r.Comma
	}

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read csv header: %w", err)
	}

	normalizedHeaders := normalizeHeaders(headers)

	records := make([]Record, 0, 128)
	rowNumber := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read csv row %d: %w", rowNumber+1, err)
		}

		records = append(records, Record{RowNumber: rowNumber + 1, Values: recordValues(normalizedHeaders, row)})
		rowNumber++
	}

	return normalizedHeaders, records, nil
}
