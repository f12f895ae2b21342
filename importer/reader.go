package importer

import "fmt"

// Reader reads a tabular source into normalized headers and data records.
// A source without a header row yields no headers and no records.
type Reader interface {
	Read(path string) ([]string, []Record, error)
}

func ReaderForFormat(format string, options Options) (Reader, error) {
	switch normalizeHeader(format) {
	case "csv", "txt", "tsv":
		comma := options.Delimiter
		if normalizeHeader(format) == "tsv" {
			comma = '\t'
		}
		return &CSVReader{Comma: comma}, nil
	case "excel", "xlsx", "xlsm", "xls":
		return &ExcelReader{}, nil
	case "sqlite", "sqlite3", "db":
		return &SQLiteReader{Table: options.SQLiteTable}, nil
	default:
		return nil, fmt.Errorf("unsupported input format: %s", format)
	}
}
